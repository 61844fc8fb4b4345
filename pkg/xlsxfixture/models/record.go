// Package models defines the fixture records and the table shapes written to workbooks.
package models

// Record is a single fixture row with a fixed column layout.
type Record interface {
	// Columns returns the header names in field declaration order.
	Columns() []string
	// Values returns the cell values, aligned with Columns.
	Values() []interface{}
}

// Table is a named sheet: a header row followed by data rows.
type Table struct {
	// Name is the sheet name. Empty means the workbook's default sheet.
	Name string
	// Columns is the header row.
	Columns []string
	// Rows holds one slice of cell values per data row.
	Rows [][]interface{}
}

// NewTable builds a Table from typed records. Columns come from the zero
// value of T so that an empty slice still produces a header row.
func NewTable[T Record](name string, records []T) Table {
	var zero T
	t := Table{
		Name:    name,
		Columns: zero.Columns(),
		Rows:    make([][]interface{}, 0, len(records)),
	}
	for _, r := range records {
		t.Rows = append(t.Rows, r.Values())
	}
	return t
}
