package marks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"marksheet/internal/marks"
)

func TestGradeBoundary(t *testing.T) {
	tests := []struct {
		name      string
		mark      int
		threshold int
		wantPass  bool
	}{
		{"above threshold", 85, 40, true},
		{"equal to threshold passes", 40, 40, true},
		{"one below threshold", 39, 40, false},
		{"zero mark", 0, 40, false},
		{"full mark", 100, 40, true},
		{"zero threshold passes everything", 0, 0, true},
		{"custom threshold boundary", 50, 50, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := marks.Record{Name: "John", Marks: map[string]int{"Math": tt.mark}}
			grades := marks.Grade(rec, tt.threshold)
			assert.Equal(t, tt.wantPass, grades["Math"])
		})
	}
}

func TestGrade(t *testing.T) {
	rec := marks.Record{
		Name:  "John Smith",
		Marks: map[string]int{"Math": 85, "English": 78, "Science": 12},
	}

	grades := marks.Grade(rec, 40)

	assert.Equal(t, map[string]bool{"Math": true, "English": true, "Science": false}, grades)
}

func TestRecordStatus(t *testing.T) {
	tests := []struct {
		name        string
		marks       map[string]int
		wantPassed  int
		wantFailed  int
		wantOverall bool
	}{
		{"all pass", map[string]int{"Math": 85, "English": 78}, 2, 0, true},
		{"one fail", map[string]int{"Math": 85, "English": 12}, 1, 1, false},
		{"all fail", map[string]int{"Math": 10, "English": 12}, 0, 2, false},
		{"boundary passes", map[string]int{"Math": 40}, 1, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := marks.RecordStatus(marks.Record{Name: "X", Marks: tt.marks}, 40)
			assert.Equal(t, tt.wantPassed, status.PassedSubjects)
			assert.Equal(t, tt.wantFailed, status.FailedSubjects)
			assert.Equal(t, tt.wantOverall, status.OverallPass)
		})
	}
}
