package models

// SheetSchema describes the structure of one sheet, ignoring cell values.
type SheetSchema struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// Columns is the header row in column order.
	Columns []string `json:"columns"`
	// DataRows is the number of non-empty rows below the header.
	DataRows int `json:"data_rows"`
	// TableRange is the detected data region (e.g. "A1:F101"), empty for a blank sheet.
	TableRange string `json:"table_range,omitempty"`
	// Density is the share of non-empty cells inside TableRange.
	Density float64 `json:"density"`
}

// WorkbookSchema is the structure of a workbook, sheets in file order.
type WorkbookSchema struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets lists the sheets in the order they appear in the file.
	Sheets []SheetSchema `json:"sheets"`
}

// CellRow is one non-empty row read back from a sheet.
type CellRow struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// C maps column index (string, 1-based) to the parsed cell value.
	C map[string]interface{} `json:"c"`
}
