package main

import (
	"fmt"
	"os"

	"github.com/diillson/electricity-dashboard-go/internal/adapter/driven/chart"
	"github.com/diillson/electricity-dashboard-go/internal/adapter/driven/config"
	"github.com/diillson/electricity-dashboard-go/internal/adapter/driven/dataset"
	"github.com/diillson/electricity-dashboard-go/internal/adapter/driven/export"
	"github.com/diillson/electricity-dashboard-go/internal/adapter/driving/cli"
	"github.com/diillson/electricity-dashboard-go/internal/application/usecase"
	"github.com/diillson/electricity-dashboard-go/pkg/console"
	"github.com/diillson/electricity-dashboard-go/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	datasetRepo := dataset.NewDatasetRepository()
	chartRepo := chart.NewChartRepository()
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	// Inicializa o caso de uso
	dashboardUseCase := usecase.NewDashboardUseCase(
		datasetRepo,
		chartRepo,
		exportRepo,
		configRepo,
		consoleImpl,
	)

	app.SetDashboardUseCase(dashboardUseCase)
	app.SetConsole(consoleImpl)

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
