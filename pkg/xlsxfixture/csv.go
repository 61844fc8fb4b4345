package xlsxfixture

import (
	"os"

	"github.com/gocarina/gocsv"
	"github.com/ukaji3/xlsxfixture/pkg/xlsxfixture/models"
)

// WriteCSV writes records to path using their csv struct tags as the header.
func WriteCSV[T models.Record](path string, records []T) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return ioError("csv", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = ioError("close", path, cerr)
		}
	}()

	if err := gocsv.Marshal(records, file); err != nil {
		return ioError("csv", path, err)
	}
	return nil
}
