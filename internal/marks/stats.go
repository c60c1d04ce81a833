package marks

import "math"

// SubjectSummary holds the pass/fail breakdown for one subject column.
type SubjectSummary struct {
	Subject        string  `json:"subject"`
	Average        float64 `json:"average"`
	Passed         int     `json:"passed"`
	Failed         int     `json:"failed"`
	Total          int     `json:"total"`
	PassPercentage float64 `json:"pass_percentage"`
}

// Overview holds class-level statistics over a table.
type Overview struct {
	TotalStudents  int     `json:"total_students"`
	PassedStudents int     `json:"passed_students"`
	FailedStudents int     `json:"failed_students"`
	PassPercentage float64 `json:"pass_percentage"`
	AverageMark    float64 `json:"average_mark"`
	HighestMark    int     `json:"highest_mark"`
	LowestMark     int     `json:"lowest_mark"`
}

// Summarize computes per-subject statistics in header order.
// An empty table yields zero counts and a zero average for every subject.
func Summarize(t *Table, threshold int) []SubjectSummary {
	summaries := make([]SubjectSummary, 0, len(t.Subjects))
	for _, subject := range t.Subjects {
		summary := SubjectSummary{Subject: subject, Total: len(t.Records)}
		sum := 0
		for _, rec := range t.Records {
			mark := rec.Marks[subject]
			sum += mark
			if mark >= threshold {
				summary.Passed++
			} else {
				summary.Failed++
			}
		}
		if summary.Total > 0 {
			summary.Average = round2(float64(sum) / float64(summary.Total))
			summary.PassPercentage = round2(float64(summary.Passed) / float64(summary.Total) * 100)
		}
		summaries = append(summaries, summary)
	}
	return summaries
}

// Overall computes class-level statistics. An empty table reports zeros.
func Overall(t *Table, threshold int) Overview {
	overview := Overview{TotalStudents: len(t.Records)}
	if len(t.Records) == 0 || len(t.Subjects) == 0 {
		return overview
	}

	sum := 0
	count := 0
	highest := math.MinInt
	lowest := math.MaxInt
	for _, rec := range t.Records {
		if RecordStatus(rec, threshold).OverallPass {
			overview.PassedStudents++
		}
		for _, subject := range t.Subjects {
			mark := rec.Marks[subject]
			sum += mark
			count++
			if mark > highest {
				highest = mark
			}
			if mark < lowest {
				lowest = mark
			}
		}
	}
	overview.FailedStudents = overview.TotalStudents - overview.PassedStudents
	overview.PassPercentage = round2(float64(overview.PassedStudents) / float64(overview.TotalStudents) * 100)
	overview.AverageMark = round2(float64(sum) / float64(count))
	overview.HighestMark = highest
	overview.LowestMark = lowest
	return overview
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
