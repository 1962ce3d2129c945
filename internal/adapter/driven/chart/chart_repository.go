package chart

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/diillson/electricity-dashboard-go/internal/domain/entity"
	"github.com/diillson/electricity-dashboard-go/internal/domain/repository"
	"github.com/dustin/go-humanize"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Paleta fixa: a cor de cada categoria depende só da sua posição na série.
var palette = []drawing.Color{
	drawing.ColorFromHex("2563eb"),
	drawing.ColorFromHex("10b981"),
	drawing.ColorFromHex("f59e0b"),
	drawing.ColorFromHex("ef4444"),
	drawing.ColorFromHex("8b5cf6"),
}

const (
	chartWidth  = 1024
	chartHeight = 512
	pieSize     = 512
)

// ChartRepositoryImpl renderiza as séries do dashboard como PNG usando go-chart.
type ChartRepositoryImpl struct{}

// NewChartRepository cria uma nova implementação do ChartRepository.
func NewChartRepository() repository.ChartRepository {
	return &ChartRepositoryImpl{}
}

// Render draws the series and, when outputDir is set, writes <kind>.png there.
func (r *ChartRepositoryImpl) Render(series entity.ChartSeries, outputDir string) (repository.ChartHandle, error) {
	if series.IsEmpty() {
		return nil, entity.ErrEmptySeries
	}

	var buf bytes.Buffer
	var err error
	switch series.Kind {
	case entity.ChartTopProvinces:
		err = renderBar(series, &buf)
	case entity.ChartUsageDistribution:
		err = renderDonut(series, &buf)
	case entity.ChartUserCategories:
		err = renderPie(series, &buf)
	default:
		return nil, fmt.Errorf("unsupported chart kind: %s", series.Kind)
	}
	if err != nil {
		return nil, fmt.Errorf("error rendering %s chart: %w", series.Kind, err)
	}

	handle := &pngHandle{kind: series.Kind, data: buf.Bytes()}
	if outputDir == "" {
		return handle, nil
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating chart directory '%s': %w", outputDir, err)
	}
	handle.path = filepath.Join(outputDir, string(series.Kind)+".png")
	if err := os.WriteFile(handle.path, handle.data, 0644); err != nil {
		return nil, fmt.Errorf("error writing chart file: %w", err)
	}
	return handle, nil
}

func renderBar(series entity.ChartSeries, buf *bytes.Buffer) error {
	maxValue := 0.0
	bars := make([]chart.Value, 0, len(series.Points))
	for _, p := range series.Points {
		v := p.Value.InexactFloat64()
		if v > maxValue {
			maxValue = v
		}
		bars = append(bars, chart.Value{
			Label: p.Label,
			Value: v,
			Style: chart.Style{
				FillColor:   palette[0].WithAlpha(204),
				StrokeColor: palette[0],
				StrokeWidth: 1,
			},
		})
	}

	graph := chart.BarChart{
		Title:      fmt.Sprintf("%s (%s)", series.Title, series.Unit),
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20}},
		Width:      chartWidth,
		Height:     chartHeight,
		BarWidth:   60,
		BarSpacing: 30,
		YAxis: chart.YAxis{
			Range:          &chart.ContinuousRange{Min: 0, Max: maxValue},
			ValueFormatter: formatAxisValue,
		},
		Bars: bars,
	}
	return graph.Render(chart.PNG, buf)
}

func renderDonut(series entity.ChartSeries, buf *bytes.Buffer) error {
	graph := chart.DonutChart{
		Title:  series.Title,
		Width:  pieSize,
		Height: pieSize,
		Values: sliceValues(series),
	}
	return graph.Render(chart.PNG, buf)
}

func renderPie(series entity.ChartSeries, buf *bytes.Buffer) error {
	graph := chart.PieChart{
		Title:  series.Title,
		Width:  pieSize,
		Height: pieSize,
		Values: sliceValues(series),
	}
	return graph.Render(chart.PNG, buf)
}

// sliceValues drops zero slices but keeps the color of each category's position.
func sliceValues(series entity.ChartSeries) []chart.Value {
	values := make([]chart.Value, 0, len(series.Points))
	for i, p := range series.Points {
		if p.Value.IsZero() {
			continue
		}
		values = append(values, chart.Value{
			Label: p.Label,
			Value: p.Value.InexactFloat64(),
			Style: chart.Style{FillColor: palette[i%len(palette)]},
		})
	}
	return values
}

func formatAxisValue(v interface{}) string {
	if f, ok := v.(float64); ok {
		return humanize.Comma(int64(f))
	}
	return fmt.Sprint(v)
}

type pngHandle struct {
	kind     entity.ChartKind
	data     []byte
	path     string
	disposed bool
}

func (h *pngHandle) Kind() entity.ChartKind { return h.kind }
func (h *pngHandle) Bytes() []byte          { return h.data }
func (h *pngHandle) Path() string           { return h.path }

// Dispose libera o buffer e remove o arquivo gerado, se houver.
func (h *pngHandle) Dispose() error {
	if h.disposed {
		return nil
	}
	h.disposed = true
	h.data = nil
	if h.path == "" {
		return nil
	}
	if err := os.Remove(h.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error removing chart file: %w", err)
	}
	return nil
}
