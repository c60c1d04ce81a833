package marks

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrEmptyTable is returned when the input has a header but no data rows.
var ErrEmptyTable = errors.New("no data rows found")

const utf8BOM = "\xef\xbb\xbf"

// ReadCSV parses an uploaded mark sheet. The first row is the header:
// student name column followed by at least one subject column. Every data
// row must carry an integer mark in [0,100] for every subject.
func ReadCSV(r io.Reader) (*Table, error) {
	buffered := bufio.NewReader(r)
	if lead, err := buffered.Peek(len(utf8BOM)); err == nil && string(lead) == utf8BOM {
		buffered.Discard(len(utf8BOM))
	}

	reader := csv.NewReader(buffered)
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("malformed CSV: %w", err)
	}
	return buildTable(rows)
}

// buildTable validates raw rows and assembles the table. Shared by the
// CSV and workbook readers.
func buildTable(rows [][]string) (*Table, error) {
	if len(rows) == 0 {
		return nil, errors.New("missing header row")
	}

	header := rows[0]
	if len(header) < 2 {
		return nil, errors.New("header must have a name column and at least one subject column")
	}
	if name := strings.TrimSpace(header[0]); name != NameColumn {
		return nil, fmt.Errorf("first column must be %q, got %q", NameColumn, name)
	}

	subjects := make([]string, 0, len(header)-1)
	seen := make(map[string]bool, len(header)-1)
	for i, col := range header[1:] {
		name := strings.TrimSpace(col)
		if name == "" {
			return nil, fmt.Errorf("subject column %d has an empty name", i+2)
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate subject column %q", name)
		}
		seen[name] = true
		subjects = append(subjects, name)
	}

	table := &Table{Subjects: subjects, Records: []Record{}}
	for i, row := range rows[1:] {
		rowNum := i + 2 // 1-based, counting the header
		if isBlankRow(row) {
			continue
		}
		if len(row) != len(header) {
			return nil, fmt.Errorf("row %d: expected %d columns, got %d", rowNum, len(header), len(row))
		}

		rec := Record{
			Name:  strings.TrimSpace(row[0]),
			Marks: make(map[string]int, len(subjects)),
		}
		for j, subject := range subjects {
			mark, err := strconv.Atoi(strings.TrimSpace(row[j+1]))
			if err != nil {
				return nil, fmt.Errorf("row %d: %s: invalid mark %q", rowNum, subject, row[j+1])
			}
			if mark < 0 || mark > 100 {
				return nil, fmt.Errorf("row %d: %s: mark %d out of range 0-100", rowNum, subject, mark)
			}
			rec.Marks[subject] = mark
		}
		table.Records = append(table.Records, rec)
	}

	if len(table.Records) == 0 {
		return nil, ErrEmptyTable
	}
	return table, nil
}

func isBlankRow(row []string) bool {
	for _, field := range row {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}
