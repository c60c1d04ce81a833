// Package marks holds the domain core: parsing uploaded mark sheets,
// grading against a pass threshold, filtering and aggregating them.
package marks

// NameColumn is the header of the first CSV column.
const NameColumn = "Student Name"

// DefaultThreshold is the minimum mark (inclusive) counted as passing.
const DefaultThreshold = 40

// Record is one student's row of marks.
type Record struct {
	Name  string         `json:"student_name"`
	Marks map[string]int `json:"marks"`
}

// Table is an ordered set of records plus the subject order from the header.
type Table struct {
	Subjects []string `json:"subjects"`
	Records  []Record `json:"records"`
}

// HasSubject reports whether the table declares the given subject column.
func (t *Table) HasSubject(subject string) bool {
	for _, s := range t.Subjects {
		if s == subject {
			return true
		}
	}
	return false
}

// Header returns the CSV header row: name column followed by subjects.
func (t *Table) Header() []string {
	header := make([]string, 0, len(t.Subjects)+1)
	header = append(header, NameColumn)
	return append(header, t.Subjects...)
}

// Filter returns a new table containing the records matching p,
// preserving the original order.
func (t *Table) Filter(p Predicate) *Table {
	filtered := &Table{Subjects: t.Subjects, Records: []Record{}}
	for _, rec := range t.Records {
		if p(rec) {
			filtered.Records = append(filtered.Records, rec)
		}
	}
	return filtered
}
