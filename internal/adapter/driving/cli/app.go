package cli

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/diillson/electricity-dashboard-go/internal/adapter/driving/httpapi"
	"github.com/diillson/electricity-dashboard-go/internal/application/usecase"
	"github.com/diillson/electricity-dashboard-go/internal/shared/types"
	"github.com/diillson/electricity-dashboard-go/pkg/version"
	"github.com/spf13/cobra"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd          *cobra.Command
	dashboardUseCase *usecase.DashboardUseCase
	console          types.ConsoleInterface
	version          string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	rootCmd := &cobra.Command{
		Use:           "electricity-dashboard",
		Short:         "Electricity users and usage dashboard per province",
		Version:       version.FormatVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          app.runCommand,
	}
	rootCmd.SetVersionTemplate(`{{printf "Electricity Dashboard version: %s\n" .Version}}`)

	flags := rootCmd.PersistentFlags()
	flags.StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	flags.String("users", "", "Users dataset location: file path, http(s):// or s3:// URL, .json or .xlsx (default \""+types.DefaultUsersSource+"\")")
	flags.String("usages", "", "Usages dataset location: file path, http(s):// or s3:// URL, .json or .xlsx (default \""+types.DefaultUsagesSource+"\")")
	flags.String("usage-wrapper", "", "Field (or worksheet) holding the usage records (default \"Sheet1\")")
	flags.DurationP("timeout", "t", 0, "Timeout for loading both datasets (default 30s)")
	flags.String("aws-profile", "", "AWS profile used for s3:// sources")
	flags.String("aws-region", "", "AWS region used for s3:// sources")

	rootCmd.Flags().StringP("province", "p", "", "Show a single province (exact name)")
	rootCmd.Flags().StringP("search", "q", "", "Case-insensitive substring filter on province names")
	rootCmd.Flags().Int("top-n", 0, "Number of provinces in the usage ranking (default 10)")
	rootCmd.Flags().BoolP("interactive", "i", false, "Pick province and search interactively")
	rootCmd.Flags().Bool("list-provinces", false, "List the province selector options and exit")
	rootCmd.Flags().StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	rootCmd.Flags().StringSliceP("report-type", "y", nil, "Specify report types: csv, json, pdf, xlsx (default csv)")
	rootCmd.Flags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	rootCmd.Flags().String("chart-dir", "", "Directory to save the chart images as PNG")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard as a JSON and PNG API",
		RunE:  app.runServe,
	}
	serveCmd.Flags().String("listen", "", "Address to listen on (default \""+types.DefaultListen+"\")")
	serveCmd.Flags().Int("top-n", 0, "Number of provinces in the usage ranking (default 10)")
	rootCmd.AddCommand(serveCmd)

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs lê as flags definidas no comando. Flags ausentes ficam com valor zero
// para que o arquivo de configuração e os padrões possam preenchê-las depois.
func (app *CLIApp) parseArgs(cmd *cobra.Command) (*types.CLIArgs, error) {
	flags := cmd.Flags()

	getString := func(name string) string {
		v, _ := flags.GetString(name)
		return v
	}
	getBool := func(name string) bool {
		v, _ := flags.GetBool(name)
		return v
	}

	topN, _ := flags.GetInt("top-n")
	timeout, _ := flags.GetDuration("timeout")
	reportType, _ := flags.GetStringSlice("report-type")

	args := &types.CLIArgs{
		ConfigFile:    getString("config-file"),
		UsersSource:   getString("users"),
		UsagesSource:  getString("usages"),
		UsageWrapper:  getString("usage-wrapper"),
		Province:      getString("province"),
		Search:        getString("search"),
		TopN:          topN,
		Interactive:   getBool("interactive"),
		ListProvinces: getBool("list-provinces"),
		ReportName:    getString("report-name"),
		ReportType:    reportType,
		ChartDir:      getString("chart-dir"),
		Timeout:       timeout,
		AWSProfile:    getString("aws-profile"),
		AWSRegion:     getString("aws-region"),
		Listen:        getString("listen"),
	}

	// Converte para caminho absoluto
	if dir := getString("dir"); dir != "" {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		args.Dir = absDir
	}

	return args, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, _ []string) error {
	cliArgs, err := app.parseArgs(cmd)
	if err != nil {
		return err
	}

	if !cliArgs.ListProvinces {
		displayWelcomeBanner(app.version)
		go version.CheckLatestVersion(app.version)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.dashboardUseCase.RunDashboard(ctx, cliArgs)
}

// runServe carrega os datasets uma vez e serve a API até receber um sinal.
func (app *CLIApp) runServe(cmd *cobra.Command, _ []string) error {
	cliArgs, err := app.parseArgs(cmd)
	if err != nil {
		return err
	}

	displayWelcomeBanner(app.version)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dashboard, err := app.dashboardUseCase.Prepare(ctx, cliArgs)
	if err != nil {
		return err
	}

	server := httpapi.NewServer(dashboard, app.dashboardUseCase.ChartRepository(), app.console, os.Stdout)
	return server.Serve(ctx, cliArgs.Listen)
}

// SetDashboardUseCase sets the dashboard use case for the CLI app.
func (app *CLIApp) SetDashboardUseCase(useCase *usecase.DashboardUseCase) {
	app.dashboardUseCase = useCase
}

// SetConsole define o console usado pelo servidor HTTP.
func (app *CLIApp) SetConsole(console types.ConsoleInterface) {
	app.console = console
}
