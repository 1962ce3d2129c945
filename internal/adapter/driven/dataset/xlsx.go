package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// textColumns are never converted to numbers.
var textColumns = map[string]bool{
	"province_name": true,
}

// decodeSheet reads a worksheet whose first row holds the record field names
// and decodes every following row into out. An empty sheet name selects the
// first worksheet. Empty cells are left out of the record.
func decodeSheet(raw []byte, sheet string, out interface{}) error {
	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return fmt.Errorf("workbook has no sheets")
		}
		sheet = sheets[0]
	}
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return fmt.Errorf("sheet %q not found", sheet)
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("sheet %q has no header row", sheet)
	}

	header := make([]string, len(rows[0]))
	for i, name := range rows[0] {
		header[i] = strings.TrimSpace(name)
	}

	records := make([]map[string]interface{}, 0, len(rows)-1)
	for r, row := range rows[1:] {
		record := make(map[string]interface{}, len(header))
		for i, cell := range row {
			if i >= len(header) || header[i] == "" {
				continue
			}
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			if header[i] == "province_code" {
				record[header[i]] = codeValue(f, sheet, i+1, r+2, cell)
				continue
			}
			record[header[i]] = cellValue(header[i], cell)
		}
		if len(record) == 0 {
			continue
		}
		records = append(records, record)
	}

	// Reaproveita as tags JSON das entidades para o mapeamento das colunas.
	encoded, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encoding sheet %q rows: %w", sheet, err)
	}
	if err := json.Unmarshal(encoded, out); err != nil {
		return fmt.Errorf("decoding sheet %q rows: %w", sheet, err)
	}
	return nil
}

// codeValue keeps the stored type of a province code cell: text cells stay
// strings, numeric cells become JSON numbers.
func codeValue(f *excelize.File, sheet string, col, row int, cell string) interface{} {
	axis, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return cell
	}
	switch kind, _ := f.GetCellType(sheet, axis); kind {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
		return cell
	}
	if _, err := strconv.ParseFloat(cell, 64); err == nil {
		return json.Number(cell)
	}
	return cell
}

func cellValue(column, cell string) interface{} {
	if textColumns[column] {
		return cell
	}
	if _, err := strconv.ParseFloat(cell, 64); err == nil {
		return json.Number(cell)
	}
	return cell
}
