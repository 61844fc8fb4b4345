// Package parser reads written workbooks back into plain Go values.
package parser

import (
	"strconv"

	"github.com/ukaji3/xlsxfixture/pkg/xlsxfixture/models"
	"github.com/xuri/excelize/v2"
)

// ExtractCells reads a sheet and returns its non-empty rows.
func ExtractCells(f *excelize.File, sheetName string) ([]models.CellRow, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	return CellRows(rows), nil
}

// CellRows converts the formatted rows returned by excelize into CellRows,
// skipping rows with no data.
func CellRows(rows [][]string) []models.CellRow {
	var result []models.CellRow
	for rowIdx, row := range rows {
		cellMap := make(map[string]interface{})
		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}
			cellMap[strconv.Itoa(colIdx+1)] = parseValue(cellValue)
		}
		if len(cellMap) > 0 {
			result = append(result, models.CellRow{
				R: rowIdx + 1,
				C: cellMap,
			})
		}
	}
	return result
}

// Header returns the first non-empty row, trailing blanks removed.
func Header(rows [][]string) []string {
	for _, row := range rows {
		end := len(row)
		for end > 0 && row[end-1] == "" {
			end--
		}
		if end > 0 {
			return append([]string(nil), row[:end]...)
		}
	}
	return nil
}

// parseValue turns a formatted cell into int64, float64, bool or string.
func parseValue(s string) interface{} {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// excelize renders boolean cells as TRUE/FALSE
	switch s {
	case "TRUE":
		return true
	case "FALSE":
		return false
	}
	return s
}
