package xlsxfixture

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ukaji3/xlsxfixture/pkg/xlsxfixture/models"
	"go.uber.org/zap"
)

// SheetReport is the row count written to one sheet.
type SheetReport struct {
	Name string `json:"name"`
	Rows int    `json:"rows"`
}

// FileReport describes one written file.
type FileReport struct {
	Path   string        `json:"path"`
	Sheets []SheetReport `json:"sheets"`
}

// Summary is a human-readable confirmation line.
func (r FileReport) Summary() string {
	parts := make([]string, 0, len(r.Sheets))
	for _, s := range r.Sheets {
		parts = append(parts, fmt.Sprintf("%s=%d rows", s.Name, s.Rows))
	}
	return fmt.Sprintf("Created %s: %s", filepath.Base(r.Path), strings.Join(parts, ", "))
}

// Report lists the files written by Run, in write order.
type Report struct {
	Files []FileReport `json:"files"`
}

func (r *Report) add(path string, tables ...models.Table) {
	fr := FileReport{Path: path}
	for _, t := range tables {
		name := t.Name
		if name == "" {
			name = DefaultSheet
		}
		fr.Sheets = append(fr.Sheets, SheetReport{Name: name, Rows: len(t.Rows)})
	}
	r.Files = append(r.Files, fr)
}

// Run generates the products and sales and writes both workbooks into
// opts.Dir, then the CSV files when opts.CSV is set. The first error aborts
// the run; files already written are left in place.
func Run(opts Options) (*Report, error) {
	log := opts.logger()

	gen, err := NewGenerator(opts)
	if err != nil {
		return nil, err
	}
	products, err := gen.GenerateProducts()
	if err != nil {
		return nil, err
	}
	sales, err := gen.GenerateSales()
	if err != nil {
		return nil, err
	}
	log.Debug("fixtures generated", zap.Int("products", len(products)), zap.Int("sales", len(sales)))

	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	report := &Report{}

	productsTable := models.NewTable(ProductsSheet, products)
	salesTable := models.NewTable(SalesSheet, sales)
	multiPath := filepath.Join(dir, MultiSheetFile)
	if err := writeTables(log, multiPath, []models.Table{productsTable, salesTable}); err != nil {
		return nil, err
	}
	report.add(multiPath, productsTable, salesTable)

	simpleTable := models.NewTable(DefaultSheet, products)
	simplePath := filepath.Join(dir, SimpleFile)
	if err := writeTables(log, simplePath, []models.Table{simpleTable}); err != nil {
		return nil, err
	}
	report.add(simplePath, simpleTable)

	if opts.CSV {
		productsPath := filepath.Join(dir, ProductsCSV)
		if err := WriteCSV(productsPath, products); err != nil {
			return nil, err
		}
		report.add(productsPath, productsTable)

		salesPath := filepath.Join(dir, SalesCSV)
		if err := WriteCSV(salesPath, sales); err != nil {
			return nil, err
		}
		report.add(salesPath, salesTable)
		log.Debug("csv written", zap.String("dir", dir))
	}

	return report, nil
}
