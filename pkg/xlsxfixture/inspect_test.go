package xlsxfixture

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/xlsxfixture/pkg/xlsxfixture/models"
	"go.uber.org/multierr"
)

func TestInspectMissingFile(t *testing.T) {
	_, err := Inspect(filepath.Join(t.TempDir(), "nope.xlsx"))
	assert.Error(t, err)
}

func TestExpectedSchemas(t *testing.T) {
	multi := ExpectedMultiSheet()
	require.Len(t, multi, 2)
	assert.Equal(t, []string{"id", "name", "category", "price", "in_stock", "created_date"}, multi[0].Columns)
	assert.Equal(t, []string{"sale_id", "product_id", "quantity", "sale_date", "customer"}, multi[1].Columns)

	simple := ExpectedSimple()
	require.Len(t, simple, 1)
	assert.Equal(t, DefaultSheet, simple[0].Name)
	assert.Equal(t, ProductCount, simple[0].DataRows)
	// ExpectedSimple must not alias the multi-sheet schema
	assert.Equal(t, ProductsSheet, ExpectedMultiSheet()[0].Name)
}

func TestCompareSchema(t *testing.T) {
	want := ExpectedMultiSheet()

	tests := []struct {
		name       string
		mutate     func(s *models.WorkbookSchema)
		mismatches int
	}{
		{"identical", func(s *models.WorkbookSchema) {}, 0},
		{"missing sheet", func(s *models.WorkbookSchema) { s.Sheets = s.Sheets[:1] }, 1},
		{"renamed sheet", func(s *models.WorkbookSchema) { s.Sheets[1].Name = "Orders" }, 1},
		{"reordered columns", func(s *models.WorkbookSchema) {
			s.Sheets[0].Columns[0], s.Sheets[0].Columns[1] = s.Sheets[0].Columns[1], s.Sheets[0].Columns[0]
		}, 1},
		{"short sheet", func(s *models.WorkbookSchema) {
			s.Sheets[0].DataRows = 99
			s.Sheets[0].TableRange = "A1:F100"
		}, 2},
		{"holes", func(s *models.WorkbookSchema) { s.Sheets[1].Density = 0.9 }, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := &models.WorkbookSchema{BookName: MultiSheetFile, Sheets: ExpectedMultiSheet()}
			tt.mutate(got)

			err := compareSchema(got, want)
			if tt.mismatches == 0 {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrSchemaMismatch)
			assert.Len(t, multierr.Errors(err), tt.mismatches)
		})
	}
}

func TestVerifyDetectsWrongWorkbook(t *testing.T) {
	products, _ := fixtures(t, 4)
	path := filepath.Join(t.TempDir(), SimpleFile)
	require.NoError(t, WriteSimple(path, products))

	err := Verify(path, ExpectedMultiSheet())
	assert.ErrorIs(t, err, ErrSchemaMismatch)
}
