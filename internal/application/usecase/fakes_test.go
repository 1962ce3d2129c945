package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/diillson/electricity-dashboard-go/internal/domain/entity"
	"github.com/diillson/electricity-dashboard-go/internal/domain/repository"
	"github.com/diillson/electricity-dashboard-go/internal/shared/types"
	"github.com/shopspring/decimal"
)

type fakeConsole struct {
	mu      sync.Mutex
	lines   []string
	panels  map[string]string
	bars    map[string][]types.BarValue
	tables  []*fakeTable
	selects []string
	inputs  []string
}

func newFakeConsole() *fakeConsole {
	return &fakeConsole{panels: map[string]string{}, bars: map[string][]types.BarValue{}}
}

func (c *fakeConsole) log(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = append(c.lines, s)
}

func (c *fakeConsole) output() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return strings.Join(c.lines, "\n")
}

func (c *fakeConsole) Print(a ...interface{})                 { c.log(fmt.Sprint(a...)) }
func (c *fakeConsole) Printf(format string, a ...interface{}) { c.log(fmt.Sprintf(format, a...)) }
func (c *fakeConsole) Println(a ...interface{})               { c.log(fmt.Sprint(a...)) }
func (c *fakeConsole) LogInfo(format string, a ...interface{}) {
	c.log("INFO " + fmt.Sprintf(format, a...))
}
func (c *fakeConsole) LogWarning(format string, a ...interface{}) {
	c.log("WARN " + fmt.Sprintf(format, a...))
}
func (c *fakeConsole) LogError(format string, a ...interface{}) {
	c.log("ERROR " + fmt.Sprintf(format, a...))
}
func (c *fakeConsole) LogSuccess(format string, a ...interface{}) {
	c.log("OK " + fmt.Sprintf(format, a...))
}
func (c *fakeConsole) Status(string) types.StatusHandle { return fakeStatus{} }

func (c *fakeConsole) CreateTable() types.TableInterface {
	t := &fakeTable{}
	c.tables = append(c.tables, t)
	return t
}

func (c *fakeConsole) DisplayPanel(title, content string) { c.panels[title] = content }

func (c *fakeConsole) DisplayBars(title string, bars []types.BarValue) { c.bars[title] = bars }

// Select pops the next scripted answer.
func (c *fakeConsole) Select(_ string, options []string, _ string) (string, error) {
	if len(c.selects) == 0 {
		return QuitOption, nil
	}
	choice := c.selects[0]
	c.selects = c.selects[1:]
	for _, o := range options {
		if o == choice {
			return choice, nil
		}
	}
	return "", fmt.Errorf("option %q not offered", choice)
}

func (c *fakeConsole) TextInput(_ string, defaultValue string) (string, error) {
	if len(c.inputs) == 0 {
		return defaultValue, nil
	}
	in := c.inputs[0]
	c.inputs = c.inputs[1:]
	return in, nil
}

type fakeStatus struct{}

func (fakeStatus) Update(string) {}
func (fakeStatus) Stop()         {}

type fakeTable struct {
	columns []string
	rows    [][]interface{}
}

func (t *fakeTable) AddColumn(name string, _ ...interface{}) { t.columns = append(t.columns, name) }
func (t *fakeTable) AddRow(cells ...interface{})             { t.rows = append(t.rows, cells) }
func (t *fakeTable) Render() string                          { return fmt.Sprint(t.rows) }

type fakeDatasets struct {
	datasets entity.Datasets
	err      error
	sources  entity.Sources
}

func (f *fakeDatasets) Load(_ context.Context, sources entity.Sources) (entity.Datasets, error) {
	f.sources = sources
	return f.datasets, f.err
}

type fakeConfig struct {
	err      error
	resolved int
}

func (f *fakeConfig) LoadConfigFile(string) (*types.Config, error) { return &types.Config{}, nil }

func (f *fakeConfig) Resolve(args *types.CLIArgs) error {
	f.resolved++
	if f.err != nil {
		return f.err
	}
	if args.TopN == 0 {
		args.TopN = types.DefaultTopN
	}
	return nil
}

type fakeHandle struct {
	kind     entity.ChartKind
	path     string
	disposed int
	events   *[]string
}

func (h *fakeHandle) Kind() entity.ChartKind { return h.kind }
func (h *fakeHandle) Bytes() []byte          { return []byte("png") }
func (h *fakeHandle) Path() string           { return h.path }
func (h *fakeHandle) Dispose() error {
	h.disposed++
	*h.events = append(*h.events, "dispose "+string(h.kind))
	return nil
}

type fakeCharts struct {
	events  []string
	handles []*fakeHandle
	err     error
}

func (f *fakeCharts) Render(series entity.ChartSeries, dir string) (repository.ChartHandle, error) {
	if f.err != nil {
		return nil, f.err
	}
	if series.IsEmpty() {
		return nil, entity.ErrEmptySeries
	}
	f.events = append(f.events, "render "+string(series.Kind))
	h := &fakeHandle{kind: series.Kind, events: &f.events}
	if dir != "" {
		h.path = dir + "/" + string(series.Kind) + ".png"
	}
	f.handles = append(f.handles, h)
	return h, nil
}

type fakeExports struct {
	calls []string
	views []entity.DashboardView
}

func (f *fakeExports) record(kind string, view entity.DashboardView, name string) (string, error) {
	f.calls = append(f.calls, kind)
	f.views = append(f.views, view)
	return name + "." + kind, nil
}

func (f *fakeExports) ExportToCSV(v entity.DashboardView, name, _ string) (string, error) {
	return f.record("csv", v, name)
}
func (f *fakeExports) ExportToJSON(v entity.DashboardView, name, _ string) (string, error) {
	return f.record("json", v, name)
}
func (f *fakeExports) ExportToPDF(v entity.DashboardView, name, _ string) (string, error) {
	return f.record("pdf", v, name)
}
func (f *fakeExports) ExportToXLSX(v entity.DashboardView, name, _ string) (string, error) {
	return f.record("xlsx", v, name)
}

func datasets() entity.Datasets {
	return entity.Datasets{
		Users: []entity.UserRecord{
			{ProvinceCode: entity.StringCode("11"), ProvinceName: "Aceh", ResidentialCount: 1000, SmallBusinessCount: 100, EVChargingCount: 3},
			{ProvinceCode: entity.StringCode("12"), ProvinceName: "North Sumatra", ResidentialCount: 3000, LargeBusinessCount: 5},
			{ProvinceCode: entity.StringCode("31"), ProvinceName: "Jakarta", ResidentialCount: 5000},
		},
		Usages: []entity.UsageRecord{
			{ProvinceCode: entity.StringCode("11"), ResidentialKWh: decimal.NewFromInt(1500), EVChargingKWh: decimal.NewFromFloat(2.5)},
			{ProvinceCode: entity.StringCode("12"), ResidentialKWh: decimal.NewFromInt(4000), LargeBusinessKWh: decimal.NewFromInt(900)},
		},
	}
}

type harness struct {
	uc      *DashboardUseCase
	console *fakeConsole
	data    *fakeDatasets
	config  *fakeConfig
	charts  *fakeCharts
	exports *fakeExports
}

func newHarness() *harness {
	h := &harness{
		console: newFakeConsole(),
		data:    &fakeDatasets{datasets: datasets()},
		config:  &fakeConfig{},
		charts:  &fakeCharts{},
		exports: &fakeExports{},
	}
	h.uc = NewDashboardUseCase(h.data, h.charts, h.exports, h.config, h.console)
	return h
}

func decimalOf(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}
