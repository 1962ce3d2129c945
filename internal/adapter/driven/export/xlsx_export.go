package export

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/diillson/electricity-dashboard-go/internal/domain/entity"
	"github.com/xuri/excelize/v2"
)

const (
	provincesSheet = "Provinces"
	chartsSheet    = "Charts"
)

// ExportToXLSX writes the table and summary on one sheet and the chart series on another.
func (r *ExportRepositoryImpl) ExportToXLSX(view entity.DashboardView, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "xlsx")
	if err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", provincesSheet); err != nil {
		return "", fmt.Errorf("error preparing XLSX sheet: %w", err)
	}
	if err := writeRows(f, provincesSheet, sheetRows(view)); err != nil {
		return "", err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		_ = f.SetRowStyle(provincesSheet, 1, 1, bold)
	}
	_ = f.SetColWidth(provincesSheet, "A", "A", 24)
	_ = f.SetColWidth(provincesSheet, "B", "F", 20)

	if _, err := f.NewSheet(chartsSheet); err != nil {
		return "", fmt.Errorf("error creating XLSX sheet: %w", err)
	}
	if err := writeRows(f, chartsSheet, chartRows(view)); err != nil {
		return "", err
	}

	if err := f.SaveAs(outputFilename); err != nil {
		return "", fmt.Errorf("error writing XLSX file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// writeRows grava as células, convertendo números para que o Excel possa somá-los.
func writeRows(f *excelize.File, sheet string, rows [][]string) error {
	for i, row := range rows {
		values := make([]interface{}, len(row))
		for j, cell := range row {
			values[j] = numericCell(cell)
		}

		axis, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, axis, &values); err != nil {
			return fmt.Errorf("error writing XLSX row %d: %w", i+1, err)
		}
	}
	return nil
}

func numericCell(cell string) interface{} {
	if cell == "" || !strings.ContainsRune("-0123456789", rune(cell[0])) {
		return cell
	}
	if n, err := strconv.ParseInt(cell, 10, 64); err == nil {
		return n
	}
	if v, err := strconv.ParseFloat(cell, 64); err == nil {
		return v
	}
	return cell
}

func chartRows(view entity.DashboardView) [][]string {
	rows := [][]string{{"Chart", "Label", "Value"}}
	for _, kind := range entity.ChartKinds {
		series, _ := view.Series(kind)
		for _, p := range series.Points {
			rows = append(rows, []string{series.Title, p.Label, p.Value.String()})
		}
	}
	return rows
}
