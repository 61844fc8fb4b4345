package xlsxfixture

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/ukaji3/xlsxfixture/pkg/xlsxfixture/models"
	"github.com/ukaji3/xlsxfixture/pkg/xlsxfixture/parser"
	"github.com/xuri/excelize/v2"
	"go.uber.org/multierr"
)

// Inspect reads the structure of the workbook at path: sheet names in file
// order, header columns, data row counts and the occupied range.
func Inspect(path string) (*models.WorkbookSchema, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	schema := &models.WorkbookSchema{BookName: filepath.Base(path)}
	for _, sheetName := range f.GetSheetList() {
		rows, err := f.GetRows(sheetName)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", sheetName, err)
		}

		// first non-empty row is the header
		dataRows := len(parser.CellRows(rows)) - 1
		if dataRows < 0 {
			dataRows = 0
		}
		schema.Sheets = append(schema.Sheets, models.SheetSchema{
			Name:       sheetName,
			Columns:    parser.Header(rows),
			DataRows:   dataRows,
			TableRange: parser.DataRange(rows),
			Density:    parser.Density(rows),
		})
	}
	return schema, nil
}

// ExpectedMultiSheet is the structure of test-multi-sheet.xlsx.
func ExpectedMultiSheet() []models.SheetSchema {
	return []models.SheetSchema{
		{
			Name:       ProductsSheet,
			Columns:    models.Product{}.Columns(),
			DataRows:   ProductCount,
			TableRange: "A1:F101",
			Density:    1,
		},
		{
			Name:       SalesSheet,
			Columns:    models.Sale{}.Columns(),
			DataRows:   SaleCount,
			TableRange: "A1:E51",
			Density:    1,
		},
	}
}

// ExpectedSimple is the structure of test-simple.xlsx.
func ExpectedSimple() []models.SheetSchema {
	products := ExpectedMultiSheet()[0]
	products.Name = DefaultSheet
	return []models.SheetSchema{products}
}

// Verify checks the workbook at path against want. Every difference is
// reported; each one wraps ErrSchemaMismatch. Empty TableRange and zero
// Density in want are not checked.
func Verify(path string, want []models.SheetSchema) error {
	got, err := Inspect(path)
	if err != nil {
		return err
	}
	return compareSchema(got, want)
}

func compareSchema(got *models.WorkbookSchema, want []models.SheetSchema) error {
	var errs error
	mismatch := func(format string, args ...interface{}) {
		errs = multierr.Append(errs, fmt.Errorf("%w: %s: %s", ErrSchemaMismatch, got.BookName, fmt.Sprintf(format, args...)))
	}

	if len(got.Sheets) != len(want) {
		mismatch("%d sheets, want %d", len(got.Sheets), len(want))
	}
	for i := 0; i < len(got.Sheets) && i < len(want); i++ {
		g, w := got.Sheets[i], want[i]
		if g.Name != w.Name {
			mismatch("sheet %d is %q, want %q", i+1, g.Name, w.Name)
		}
		if !slices.Equal(g.Columns, w.Columns) {
			mismatch("sheet %q columns %v, want %v", g.Name, g.Columns, w.Columns)
		}
		if g.DataRows != w.DataRows {
			mismatch("sheet %q has %d data rows, want %d", g.Name, g.DataRows, w.DataRows)
		}
		if w.TableRange != "" && g.TableRange != w.TableRange {
			mismatch("sheet %q range %s, want %s", g.Name, g.TableRange, w.TableRange)
		}
		if w.Density > 0 && g.Density < w.Density {
			mismatch("sheet %q density %.3f, want %.3f", g.Name, g.Density, w.Density)
		}
	}
	return errs
}
