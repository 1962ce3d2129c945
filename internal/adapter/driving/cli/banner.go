package cli

import (
	"fmt"

	"github.com/diillson/electricity-dashboard-go/pkg/version"
	"github.com/fatih/color"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(_ string) {
	banner := `
      ______ _           _        _      _ _           
     |  ____| |         | |      (_)    (_) |          
     | |__  | | ___  ___| |_ _ __ _  ___ _| |_ _   _   
     |  __| | |/ _ \/ __| __| '__| |/ __| | __| | | |  
     | |____| |  __/ (__| |_| |  | | (__| | |_| |_| |  
     |______|_|\___|\___|\__|_|  |_|\___|_|\__|\__, |  
                                                __/ |  
           Users & Usage Dashboard             |___/   
        `
	yellow := color.New(color.FgYellow, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(yellow(banner))
	fmt.Println(blue(fmt.Sprintf("Electricity Dashboard CLI (v%s)", version.FormatVersion())))
}
