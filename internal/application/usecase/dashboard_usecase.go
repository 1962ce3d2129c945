package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/diillson/electricity-dashboard-go/internal/application/pipeline"
	"github.com/diillson/electricity-dashboard-go/internal/domain/entity"
	"github.com/diillson/electricity-dashboard-go/internal/domain/repository"
	"github.com/diillson/electricity-dashboard-go/internal/shared/types"
)

// Opções fixas do seletor de províncias.
const (
	AllProvincesOption = "All provinces"
	QuitOption         = "Quit"
	NoDataMessage      = "No data found"
)

// DashboardUseCase handles the main dashboard functionality.
type DashboardUseCase struct {
	datasetRepo repository.DatasetRepository
	chartRepo   repository.ChartRepository
	exportRepo  repository.ExportRepository
	configRepo  repository.ConfigRepository
	console     types.ConsoleInterface
}

// NewDashboardUseCase creates a new dashboard use case.
func NewDashboardUseCase(
	datasetRepo repository.DatasetRepository,
	chartRepo repository.ChartRepository,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	console types.ConsoleInterface,
) *DashboardUseCase {
	return &DashboardUseCase{
		datasetRepo: datasetRepo,
		chartRepo:   chartRepo,
		exportRepo:  exportRepo,
		configRepo:  configRepo,
		console:     console,
	}
}

// ChartRepository returns the renderer used for chart images.
func (uc *DashboardUseCase) ChartRepository() repository.ChartRepository {
	return uc.chartRepo
}

// Prepare resolve a configuração, carrega os dois datasets e monta o pipeline.
// Uma falha de carga interrompe tudo: não existe merge parcial.
func (uc *DashboardUseCase) Prepare(ctx context.Context, args *types.CLIArgs) (*pipeline.Pipeline, error) {
	if err := uc.configRepo.Resolve(args); err != nil {
		return nil, err
	}

	status := uc.console.Status("Loading electricity datasets...")
	records, err := pipeline.Load(ctx, uc.datasetRepo, sourcesFromArgs(args))
	status.Stop()

	if err != nil {
		uc.console.LogError("Failed to load datasets: %s", err)
		uc.console.DisplayPanel("Error", loadErrorMessage(err))
		return nil, err
	}

	uc.console.LogSuccess("Loaded %d provinces", len(records))
	return pipeline.New(records, pipeline.WithTopN(args.TopN)), nil
}

// RunDashboard executa a funcionalidade principal do dashboard.
func (uc *DashboardUseCase) RunDashboard(ctx context.Context, args *types.CLIArgs) error {
	p, err := uc.Prepare(ctx, args)
	if err != nil {
		return err
	}

	if args.ListProvinces {
		uc.listProvinces(p)
		return nil
	}

	slots := NewChartSlots(uc.chartRepo)
	query := entity.Query{Province: args.Province, Search: args.Search}

	var view entity.DashboardView
	for {
		view = p.View(query)
		uc.render(view)

		if args.ChartDir != "" {
			paths, err := slots.Render(view, args.ChartDir)
			if err != nil {
				uc.console.LogError("Failed to render charts: %s", err)
				_ = slots.Close()
				return err
			}
			for _, path := range paths {
				uc.console.LogInfo("Chart saved to %s", path)
			}
		}

		if !args.Interactive {
			break
		}

		next, quit, err := uc.promptQuery(p, query)
		if err != nil {
			return err
		}
		if quit {
			break
		}
		query = next
	}

	if args.ReportName != "" {
		uc.export(view, args)
	}
	return nil
}

// promptQuery pede a província e o termo de busca do próximo filtro.
func (uc *DashboardUseCase) promptQuery(p *pipeline.Pipeline, current entity.Query) (entity.Query, bool, error) {
	options := append(ProvinceOptions(p.Provinces()), QuitOption)

	defaultOption := AllProvincesOption
	if current.Province != "" {
		defaultOption = current.Province
	}

	choice, err := uc.console.Select("Select a province", options, defaultOption)
	if err != nil {
		return current, false, err
	}
	if choice == QuitOption {
		return current, true, nil
	}

	province := choice
	if choice == AllProvincesOption {
		province = ""
	}

	search, err := uc.console.TextInput("Search province (empty for all)", current.Search)
	if err != nil {
		return current, false, err
	}

	return entity.Query{Province: province, Search: search}, false, nil
}

// ProvinceOptions returns the selector entries: "All provinces" then every name.
func ProvinceOptions(provinces []string) []string {
	return append([]string{AllProvincesOption}, provinces...)
}

func (uc *DashboardUseCase) listProvinces(p *pipeline.Pipeline) {
	for _, option := range ProvinceOptions(p.Provinces()) {
		uc.console.Println(option)
	}
}

// render mostra os cartões de resumo, a tabela e os três gráficos em barras.
func (uc *DashboardUseCase) render(view entity.DashboardView) {
	uc.console.DisplayPanel(viewTitle(view.Query), summaryText(view.Cards))

	table := uc.console.CreateTable()
	for _, header := range view.Table.Headers {
		table.AddColumn(header)
	}
	if view.Empty {
		cells := make([]interface{}, len(view.Table.Headers))
		cells[0] = NoDataMessage
		for i := 1; i < len(cells); i++ {
			cells[i] = ""
		}
		table.AddRow(cells...)
	} else {
		for _, row := range view.Table.Display {
			cells := make([]interface{}, len(row))
			for i, cell := range row {
				cells[i] = cell
			}
			table.AddRow(cells...)
		}
	}
	uc.console.Print(table.Render())

	for _, kind := range entity.ChartKinds {
		series, _ := view.Series(kind)
		if series.IsEmpty() {
			uc.console.LogInfo("%s: %s", series.Title, NoDataMessage)
			continue
		}
		uc.console.DisplayBars(series.Title, Bars(series))
	}
}

// Bars converts a chart series into terminal bars.
func Bars(series entity.ChartSeries) []types.BarValue {
	bars := make([]types.BarValue, 0, len(series.Points))
	for _, p := range series.Points {
		bars = append(bars, types.BarValue{
			Label:     p.Label,
			Value:     p.Value.InexactFloat64(),
			Formatted: p.Display,
		})
	}
	return bars
}

func (uc *DashboardUseCase) export(view entity.DashboardView, args *types.CLIArgs) {
	for _, reportType := range args.ReportType {
		var (
			path string
			err  error
		)

		switch strings.ToLower(strings.TrimSpace(reportType)) {
		case "csv":
			path, err = uc.exportRepo.ExportToCSV(view, args.ReportName, args.Dir)
		case "json":
			path, err = uc.exportRepo.ExportToJSON(view, args.ReportName, args.Dir)
		case "pdf":
			path, err = uc.exportRepo.ExportToPDF(view, args.ReportName, args.Dir)
		case "xlsx":
			path, err = uc.exportRepo.ExportToXLSX(view, args.ReportName, args.Dir)
		default:
			uc.console.LogError("%s: %q", types.ErrUnknownReportType, reportType)
			continue
		}

		if err != nil {
			uc.console.LogError("Failed to export dashboard to %s: %s", strings.ToUpper(reportType), err)
		} else {
			uc.console.LogSuccess("Successfully exported dashboard to %s: %s", strings.ToUpper(reportType), path)
		}
	}
}

func sourcesFromArgs(args *types.CLIArgs) entity.Sources {
	return entity.Sources{
		Users:        args.UsersSource,
		Usages:       args.UsagesSource,
		UsageWrapper: args.UsageWrapper,
		Timeout:      args.Timeout,
		AWSProfile:   args.AWSProfile,
		AWSRegion:    args.AWSRegion,
	}
}

func loadErrorMessage(err error) string {
	switch {
	case errors.Is(err, entity.ErrNetwork):
		return fmt.Sprintf("Could not fetch the electricity datasets.\n\n%s", err)
	case errors.Is(err, entity.ErrParse):
		return fmt.Sprintf("The electricity datasets are not in the expected format.\n\n%s", err)
	default:
		return err.Error()
	}
}

func viewTitle(q entity.Query) string {
	title := "Electricity Dashboard"
	if q.Province != "" {
		title += " | " + q.Province
	}
	if q.Search != "" {
		title += fmt.Sprintf(" | search: %q", q.Search)
	}
	return title
}

func summaryText(cards entity.SummaryCards) string {
	return fmt.Sprintf(
		"Total Users:          %s\nTotal Usage:          %s kWh\nProvinces:            %s\nEV Charging Sessions: %s",
		cards.TotalUsers, cards.TotalUsage, cards.ProvinceCount, cards.EVChargingSessions,
	)
}
