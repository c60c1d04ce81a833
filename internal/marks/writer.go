package marks

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteCSV serializes the table with the upload schema: the name column
// followed by the subject columns in header order.
func WriteCSV(w io.Writer, t *Table) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(t.Header()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	row := make([]string, len(t.Subjects)+1)
	for i, rec := range t.Records {
		row[0] = rec.Name
		for j, subject := range t.Subjects {
			row[j+1] = strconv.Itoa(rec.Marks[subject])
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteSummaryCSV serializes a subject-wise summary.
func WriteSummaryCSV(w io.Writer, summaries []SubjectSummary) error {
	writer := csv.NewWriter(w)

	header := []string{"Subject", "Average", "Passed", "Failed", "Total", "Pass Percentage"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, s := range summaries {
		row := []string{
			s.Subject,
			strconv.FormatFloat(s.Average, 'f', 2, 64),
			strconv.Itoa(s.Passed),
			strconv.Itoa(s.Failed),
			strconv.Itoa(s.Total),
			fmt.Sprintf("%.2f%%", s.PassPercentage),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write summary for %s: %w", s.Subject, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
