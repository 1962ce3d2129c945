package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/diillson/electricity-dashboard-go/internal/domain/entity"
	"github.com/diillson/electricity-dashboard-go/internal/domain/repository"
	"github.com/jung-kurt/gofpdf"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// ExportToCSV writes the table rows followed by the summary block.
func (r *ExportRepositoryImpl) ExportToCSV(view entity.DashboardView, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.WriteAll(sheetRows(view)); err != nil {
		return "", fmt.Errorf("error writing CSV file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToJSON(view entity.DashboardView, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(view); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToPDF(view entity.DashboardView, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{37, 99, 235}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	sectionTitle := func(title string) {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)

		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)
	}

	drawSection := func(title string, content string) {
		if content == "" {
			return
		}
		sectionTitle(title)
		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.MultiCell(190, 5, tr(content), "", "L", false)
		pdf.Ln(8)
	}

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		footerText := fmt.Sprintf("Generated by Electricity Dashboard (Go) | %s", time.Now().Format("2006-01-02"))
		pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "R", false, 0, "")
	})

	pdf.AddPage()

	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr("  Electricity Users & Usage Dashboard"), "", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.CellFormat(0, 8, tr("  "+queryText(view.Query)), "", 1, "L", true, 0, "")
	pdf.Ln(10)

	drawSection("Summary", summaryText(view))

	sectionTitle("Provinces")
	if view.Empty {
		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.CellFormat(190, 7, "No data found", "", 1, "C", false, 0, "")
	} else {
		widths := []float64{50, 28, 28, 30, 27, 27}
		pdf.SetFont("Arial", "B", 8)
		pdf.SetFillColor(230, 230, 230)
		for i, header := range view.Table.Headers {
			pdf.CellFormat(widths[i], 7, tr(header), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Arial", "", 8)
		for _, row := range view.Table.Display {
			for i, cell := range row {
				align := "R"
				if i == 0 {
					align = "L"
				}
				pdf.CellFormat(widths[i], 6, tr(cell), "1", 0, align, false, 0, "")
			}
			pdf.Ln(-1)
		}
	}
	pdf.Ln(8)

	for _, kind := range entity.ChartKinds {
		series, _ := view.Series(kind)
		drawSection(series.Title, seriesText(series))
	}

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Funções Auxiliares ---

// generateFilename cria um nome de arquivo único com timestamp e garante que o diretório exista.
func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}

// sheetRows monta as linhas usadas por CSV e XLSX: tabela, linha vazia e resumo.
func sheetRows(view entity.DashboardView) [][]string {
	rows := make([][]string, 0, len(view.Table.Rows)+7)
	rows = append(rows, view.Table.Headers)
	for _, row := range view.Table.Rows {
		rows = append(rows, []string{
			row.ProvinceName,
			fmt.Sprint(row.ResidentialUsers),
			fmt.Sprint(row.BusinessUsers),
			fmt.Sprint(row.TotalUsageKWh),
			fmt.Sprint(row.EVChargingKWh),
			fmt.Sprint(row.EVChargingSessions),
		})
	}

	rows = append(rows,
		[]string{},
		[]string{"Total Users", fmt.Sprint(view.Summary.TotalUsers)},
		[]string{"Total Usage (kWh)", view.Summary.TotalUsageKWh.String()},
		[]string{"Provinces", fmt.Sprint(view.Summary.ProvinceCount)},
		[]string{"EV Charging Sessions", fmt.Sprint(view.Summary.EVChargingSessions)},
	)
	return rows
}

func queryText(q entity.Query) string {
	province := q.Province
	if province == "" {
		province = "All provinces"
	}
	if q.Search == "" {
		return "Province: " + province
	}
	return fmt.Sprintf("Province: %s | Search: %q", province, q.Search)
}

func summaryText(view entity.DashboardView) string {
	return strings.Join([]string{
		"Total Users: " + view.Cards.TotalUsers,
		"Total Usage: " + view.Cards.TotalUsage + " kWh",
		"Provinces: " + view.Cards.ProvinceCount,
		"EV Charging Sessions: " + view.Cards.EVChargingSessions,
	}, "\n")
}

func seriesText(series entity.ChartSeries) string {
	if series.IsEmpty() {
		return ""
	}
	lines := make([]string, 0, len(series.Points))
	for _, p := range series.Points {
		lines = append(lines, fmt.Sprintf("%s: %s", p.Label, p.Display))
	}
	return strings.Join(lines, "\n")
}
