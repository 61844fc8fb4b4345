// Package xlsxfixture generates synthetic product and sales tables and
// writes them to xlsx workbooks for use as test fixtures.
package xlsxfixture

import (
	"time"

	"go.uber.org/zap"
)

// Fixed fixture shape.
const (
	ProductCount = 100
	SaleCount    = 50

	MultiSheetFile = "test-multi-sheet.xlsx"
	SimpleFile     = "test-simple.xlsx"
	ProductsCSV    = "products.csv"
	SalesCSV       = "sales.csv"

	ProductsSheet = "Products"
	SalesSheet    = "Sales"
	// DefaultSheet is the sheet excelize creates in a new workbook.
	DefaultSheet = "Sheet1"
)

// Options configures a generator run.
type Options struct {
	// Dir is the output directory. Empty means the working directory.
	Dir string
	// Seed makes the random source deterministic.
	// If nil, the generator is seeded from crypto/rand.
	Seed *uint64
	// Now is the clock. If nil, time.Now is used.
	Now func() time.Time
	// CSV also writes products.csv and sales.csv next to the workbooks.
	CSV bool
	// Logger receives debug events. If nil, logging is disabled.
	Logger *zap.Logger
}

// DefaultOptions returns options that reproduce the fixed fixture run.
func DefaultOptions() Options {
	return Options{
		Dir: ".",
	}
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}

func (o Options) clock() func() time.Time {
	if o.Now != nil {
		return o.Now
	}
	return time.Now
}
