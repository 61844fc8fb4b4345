package xlsxfixture

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ukaji3/xlsxfixture/pkg/xlsxfixture/models"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// TimestampFormat is the number format applied to timestamp columns.
const TimestampFormat = "yyyy-mm-dd hh:mm:ss"

var (
	errNoSheets       = errors.New("workbook needs at least one sheet")
	errDuplicateSheet = errors.New("duplicate sheet name")
)

// WriteWorkbook writes one sheet per table, in slice order, to path.
// The file is created or overwritten.
func WriteWorkbook(path string, tables []models.Table) error {
	return writeTables(zap.NewNop(), path, tables)
}

// WriteSimple writes products to the default sheet of a new workbook at path.
func WriteSimple(path string, products []models.Product) error {
	return writeTables(zap.NewNop(), path, []models.Table{models.NewTable("", products)})
}

type sheetStyles struct {
	header    int
	timestamp int
}

func newSheetStyles(f *excelize.File) (sheetStyles, error) {
	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return sheetStyles{}, err
	}
	format := TimestampFormat
	timestamp, err := f.NewStyle(&excelize.Style{CustomNumFmt: &format})
	if err != nil {
		return sheetStyles{}, err
	}
	return sheetStyles{header: header, timestamp: timestamp}, nil
}

func writeTables(log *zap.Logger, path string, tables []models.Table) (err error) {
	if len(tables) == 0 {
		return serializationError(path, "", errNoSheets)
	}

	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = ioError("close", path, cerr)
		}
	}()

	styles, err := newSheetStyles(f)
	if err != nil {
		return serializationError(path, "", err)
	}

	// excelize compares sheet names case-insensitively
	seen := make(map[string]bool, len(tables))
	for i, t := range tables {
		name := t.Name
		if name == "" {
			name = DefaultSheet
		}
		key := strings.ToLower(name)
		if seen[key] {
			return serializationError(path, name, errDuplicateSheet)
		}
		seen[key] = true

		if i == 0 {
			if name != DefaultSheet {
				if err := f.SetSheetName(DefaultSheet, name); err != nil {
					return serializationError(path, name, err)
				}
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return serializationError(path, name, err)
		}

		if err := writeTable(f, name, t, styles); err != nil {
			return serializationError(path, name, err)
		}
		log.Debug("sheet written",
			zap.String("path", path),
			zap.String("sheet", name),
			zap.Int("rows", len(t.Rows)))
	}
	f.SetActiveSheet(0)

	if err := f.SaveAs(path); err != nil {
		return ioError("save", path, err)
	}
	log.Debug("workbook saved", zap.String("path", path), zap.Int("sheets", len(tables)))
	return nil
}

// writeTable writes the header at A1 and one row per record below it.
func writeTable(f *excelize.File, sheet string, t models.Table, styles sheetStyles) error {
	if len(t.Columns) == 0 {
		return nil
	}

	header := make([]interface{}, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return fmt.Errorf("row %d has %d values, want %d", i+1, len(row), len(t.Columns))
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
	}

	lastHeader, err := excelize.CoordinatesToCellName(len(t.Columns), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", lastHeader, styles.header); err != nil {
		return err
	}

	if len(t.Rows) == 0 {
		return nil
	}
	for col, v := range t.Rows[0] {
		if _, ok := v.(time.Time); !ok {
			continue
		}
		top, err := excelize.CoordinatesToCellName(col+1, 2)
		if err != nil {
			return err
		}
		bottom, err := excelize.CoordinatesToCellName(col+1, len(t.Rows)+1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, top, bottom, styles.timestamp); err != nil {
			return err
		}
	}
	return nil
}
