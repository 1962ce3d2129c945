package usecase

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/diillson/electricity-dashboard-go/internal/domain/entity"
	"github.com/diillson/electricity-dashboard-go/internal/shared/types"
	"github.com/shopspring/decimal"
)

func TestRunDashboard(t *testing.T) {
	h := newHarness()
	args := &types.CLIArgs{UsageWrapper: "Sheet1", UsersSource: "users.json", UsagesSource: "usages.json"}

	if err := h.uc.RunDashboard(context.Background(), args); err != nil {
		t.Fatalf("RunDashboard: %v", err)
	}

	if h.config.resolved != 1 {
		t.Fatalf("config resolved %d times", h.config.resolved)
	}
	if h.data.sources.Users != "users.json" || h.data.sources.UsageWrapper != "Sheet1" {
		t.Fatalf("sources not forwarded: %+v", h.data.sources)
	}

	summary, ok := h.console.panels["Electricity Dashboard"]
	if !ok || !strings.Contains(summary, "9,105") || !strings.HasSuffix(strings.Split(summary, "\n")[2], " 3") {
		t.Fatalf("unexpected summary panel: %q", summary)
	}

	if len(h.console.tables) != 1 {
		t.Fatalf("expected one table, got %d", len(h.console.tables))
	}
	table := h.console.tables[0]
	if len(table.columns) != 6 || len(table.rows) != 3 || table.rows[0][0] != "Aceh" {
		t.Fatalf("unexpected table: %+v", table)
	}

	top := h.console.bars["Top 10 Provinces by Usage"]
	if len(top) != 3 || top[0].Label != "North Sumatra" || top[0].Formatted != "4,900 kWh" {
		t.Fatalf("unexpected ranking bars: %+v", top)
	}
	if _, ok := h.console.bars["Users by Category"]; !ok {
		t.Fatal("user categories chart not displayed")
	}
	if len(h.charts.events) != 0 {
		t.Fatalf("no chart files without a chart dir: %v", h.charts.events)
	}
}

func TestRunDashboardEmptyView(t *testing.T) {
	h := newHarness()

	if err := h.uc.RunDashboard(context.Background(), &types.CLIArgs{Search: "zzz"}); err != nil {
		t.Fatalf("RunDashboard: %v", err)
	}

	rows := h.console.tables[0].rows
	if len(rows) != 1 || rows[0][0] != NoDataMessage {
		t.Fatalf("expected no data row, got %+v", rows)
	}
	if len(h.console.bars) != 0 {
		t.Fatalf("empty charts must not be drawn: %v", h.console.bars)
	}
	if !strings.Contains(h.console.output(), NoDataMessage) {
		t.Fatal("charts should report missing data")
	}
}

func TestRunDashboardLoadError(t *testing.T) {
	h := newHarness()
	h.data.err = entity.NewNetworkError("users.json", errors.New("connection refused"))

	err := h.uc.RunDashboard(context.Background(), &types.CLIArgs{})
	if !errors.Is(err, entity.ErrNetwork) {
		t.Fatalf("expected network error, got %v", err)
	}
	if !strings.Contains(h.console.panels["Error"], "Could not fetch") {
		t.Fatalf("unexpected error panel: %q", h.console.panels["Error"])
	}
	if len(h.console.tables) != 0 {
		t.Fatal("nothing should render after a failed load")
	}
}

func TestRunDashboardParseErrorPanel(t *testing.T) {
	h := newHarness()
	h.data.err = entity.NewParseError("usages.json", errors.New("missing Sheet1"))

	err := h.uc.RunDashboard(context.Background(), &types.CLIArgs{})
	if !errors.Is(err, entity.ErrParse) {
		t.Fatalf("expected parse error, got %v", err)
	}
	if !strings.Contains(h.console.panels["Error"], "expected format") {
		t.Fatalf("unexpected error panel: %q", h.console.panels["Error"])
	}
}

func TestRunDashboardConfigError(t *testing.T) {
	h := newHarness()
	h.config.err = types.ErrInvalidTimeout

	err := h.uc.RunDashboard(context.Background(), &types.CLIArgs{ConfigFile: "bad.toml"})
	if !errors.Is(err, types.ErrInvalidTimeout) {
		t.Fatalf("expected config error, got %v", err)
	}
	if h.data.sources.Users != "" || len(h.console.tables) != 0 {
		t.Fatal("datasets must not load with an invalid configuration")
	}
}

func TestListProvinces(t *testing.T) {
	h := newHarness()

	if err := h.uc.RunDashboard(context.Background(), &types.CLIArgs{ListProvinces: true}); err != nil {
		t.Fatalf("RunDashboard: %v", err)
	}
	if !strings.Contains(h.console.output(), "All provinces\nAceh\nJakarta\nNorth Sumatra") {
		t.Fatalf("unexpected province list:\n%s", h.console.output())
	}
	if len(h.console.tables) != 0 {
		t.Fatal("listing provinces does not render the dashboard")
	}
}

func TestInteractiveSearchIsNotTrimmed(t *testing.T) {
	h := newHarness()
	h.console.selects = []string{AllProvincesOption}
	h.console.inputs = []string{" sum "}
	args := &types.CLIArgs{Interactive: true, ReportName: "dash", ReportType: []string{"json"}}

	if err := h.uc.RunDashboard(context.Background(), args); err != nil {
		t.Fatalf("RunDashboard: %v", err)
	}

	if got := h.exports.views[0].Query.Search; got != " sum " {
		t.Fatalf("search should reach the filter verbatim, got %q", got)
	}
	if rows := h.console.tables[1].rows; len(rows) != 1 || rows[0][0] != NoDataMessage {
		t.Fatalf("padded search should match nothing: %+v", rows)
	}
}

func TestInteractiveLoopReplacesCharts(t *testing.T) {
	h := newHarness()
	h.console.selects = []string{"Aceh", AllProvincesOption}
	h.console.inputs = []string{"", "sum"}
	args := &types.CLIArgs{
		Interactive: true,
		ChartDir:    "charts",
		ReportName:  "dash",
		ReportType:  []string{"csv", "xlsx", "docx", "JSON"},
	}

	if err := h.uc.RunDashboard(context.Background(), args); err != nil {
		t.Fatalf("RunDashboard: %v", err)
	}

	if len(h.console.tables) != 3 {
		t.Fatalf("expected three renders, got %d", len(h.console.tables))
	}
	if rows := h.console.tables[1].rows; len(rows) != 1 || rows[0][0] != "Aceh" {
		t.Fatalf("province filter not applied: %+v", rows)
	}
	if rows := h.console.tables[2].rows; len(rows) != 1 || rows[0][0] != "North Sumatra" {
		t.Fatalf("search filter not applied: %+v", rows)
	}

	wantStart := []string{
		"render top-provinces", "render usage-distribution", "render user-categories",
		"dispose top-provinces", "render top-provinces",
	}
	if !reflect.DeepEqual(h.charts.events[:5], wantStart) {
		t.Fatalf("charts must be disposed before re-render: %v", h.charts.events)
	}
	if len(h.charts.handles) != 9 {
		t.Fatalf("expected nine chart renders, got %d", len(h.charts.handles))
	}
	for i, handle := range h.charts.handles {
		want := 1
		if i >= 6 {
			want = 0
		}
		if handle.disposed != want {
			t.Fatalf("handle %d disposed %d times, want %d", i, handle.disposed, want)
		}
	}

	if !reflect.DeepEqual(h.exports.calls, []string{"csv", "xlsx", "json"}) {
		t.Fatalf("unexpected exports: %v", h.exports.calls)
	}
	if got := h.exports.views[0].Query; got.Search != "sum" || got.Province != "" {
		t.Fatalf("exports should use the last view, got %+v", got)
	}
	if !strings.Contains(h.console.output(), "unknown report type") {
		t.Fatal("unknown report type should be reported")
	}
}

func TestRunDashboardChartError(t *testing.T) {
	h := newHarness()
	h.charts.err = errors.New("disk full")

	err := h.uc.RunDashboard(context.Background(), &types.CLIArgs{ChartDir: "charts"})
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("expected chart error, got %v", err)
	}
}

func TestBars(t *testing.T) {
	series := entity.ChartSeries{Points: []entity.Point{
		{Label: "Residential", Value: decimal.RequireFromString("1500.5"), Display: "1,501 kWh"},
	}}

	bars := Bars(series)
	if len(bars) != 1 || bars[0].Value != 1500.5 || bars[0].Formatted != "1,501 kWh" {
		t.Fatalf("unexpected bars: %+v", bars)
	}
}
