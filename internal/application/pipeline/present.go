package pipeline

import (
	"strconv"

	"github.com/diillson/electricity-dashboard-go/internal/domain/entity"
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// TableHeaders are the dashboard table columns.
var TableHeaders = []string{
	"Province",
	"Residential Users",
	"Business Users",
	"Total Usage (kWh)",
	"EV Charging (kWh)",
	"EV Charging Sessions",
}

// FormatInt groups digits in threes with commas, whatever the locale.
func FormatInt(n int64) string {
	return humanize.Comma(n)
}

// RoundKWh rounds a consumption to the nearest whole kWh.
func RoundKWh(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}

// FormatKWh rounds and groups a consumption for display.
func FormatKWh(d decimal.Decimal) string {
	return FormatInt(RoundKWh(d))
}

// BuildRow selects the table columns of one record, using the same category
// groups as Summarize.
func BuildRow(r entity.MergedRecord) entity.TableRow {
	return entity.TableRow{
		ProvinceName:       r.ProvinceName,
		ResidentialUsers:   r.Count(entity.Residential),
		BusinessUsers:      SumCounts(r, BusinessCategories),
		TotalUsageKWh:      RoundKWh(SumKWh(r, UsageCategories)),
		EVChargingKWh:      RoundKWh(r.KWh(entity.EVCharging)),
		EVChargingSessions: r.Count(entity.EVCharging),
	}
}

// FormatRow returns the display cells of a table row.
func FormatRow(row entity.TableRow) []string {
	return []string{
		row.ProvinceName,
		FormatInt(row.ResidentialUsers),
		FormatInt(row.BusinessUsers),
		FormatInt(row.TotalUsageKWh),
		FormatInt(row.EVChargingKWh),
		FormatInt(row.EVChargingSessions),
	}
}

// BuildTable builds one row per record, in record order.
func BuildTable(records []entity.MergedRecord) entity.Table {
	table := entity.Table{
		Headers: append([]string(nil), TableHeaders...),
		Rows:    make([]entity.TableRow, 0, len(records)),
		Display: make([][]string, 0, len(records)),
	}
	for _, r := range records {
		row := BuildRow(r)
		table.Rows = append(table.Rows, row)
		table.Display = append(table.Display, FormatRow(row))
	}
	return table
}

// Cards formats the summary for the headline cards.
func Cards(s entity.AggregateSummary) entity.SummaryCards {
	return entity.SummaryCards{
		TotalUsers:         FormatInt(s.TotalUsers),
		TotalUsage:         FormatKWh(s.TotalUsageKWh),
		ProvinceCount:      strconv.Itoa(s.ProvinceCount),
		EVChargingSessions: FormatInt(s.EVChargingSessions),
	}
}

// Decorate fills the chart metadata and the display text of every point.
func Decorate(series entity.ChartSeries, kind entity.ChartKind, title, unit string) entity.ChartSeries {
	series.Kind = kind
	series.Title = title
	series.Unit = unit
	points := make([]entity.Point, len(series.Points))
	for i, p := range series.Points {
		p.Display = FormatKWh(p.Value) + " " + unit
		points[i] = p
	}
	series.Points = points
	return series
}
