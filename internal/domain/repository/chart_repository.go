package repository

import "github.com/diillson/electricity-dashboard-go/internal/domain/entity"

// ChartHandle is a rendered chart. It must be disposed before the chart it
// belongs to is rendered again.
type ChartHandle interface {
	Kind() entity.ChartKind
	Bytes() []byte
	Path() string
	Dispose() error
}

// ChartRepository renders chart series to images. When outputDir is empty the
// image is only kept in memory.
type ChartRepository interface {
	Render(series entity.ChartSeries, outputDir string) (ChartHandle, error)
}
