package entity

import "github.com/shopspring/decimal"

// ChartKind identifies one of the dashboard charts.
type ChartKind string

const (
	ChartTopProvinces      ChartKind = "top-provinces"
	ChartUsageDistribution ChartKind = "usage-distribution"
	ChartUserCategories    ChartKind = "user-categories"
)

// ChartKinds lists the dashboard charts in display order.
var ChartKinds = []ChartKind{ChartTopProvinces, ChartUsageDistribution, ChartUserCategories}

// Point is one labelled value of a chart series.
type Point struct {
	Label   string          `json:"label"`
	Value   decimal.Decimal `json:"value"`
	Display string          `json:"display"`
}

// ChartSeries is an ordered sequence of points feeding one chart.
type ChartSeries struct {
	Kind   ChartKind `json:"kind"`
	Title  string    `json:"title"`
	Unit   string    `json:"unit"`
	Points []Point   `json:"points"`
}

// Total returns the sum of all point values.
func (s ChartSeries) Total() decimal.Decimal {
	total := decimal.Zero
	for _, p := range s.Points {
		total = total.Add(p.Value)
	}
	return total
}

// IsEmpty reports whether the series has nothing to draw.
func (s ChartSeries) IsEmpty() bool {
	return len(s.Points) == 0 || s.Total().IsZero()
}
