package marks

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ReadWorkbook parses the first sheet of an XLSX workbook using the same
// validation rules as ReadCSV.
func ReadWorkbook(r io.Reader) (*Table, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("malformed workbook: %w", err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}

	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	return buildTable(rows)
}
