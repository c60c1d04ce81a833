package marks

// Grade flags each subject of a record as pass (true) or fail (false).
// A mark equal to the threshold passes.
func Grade(rec Record, threshold int) map[string]bool {
	grades := make(map[string]bool, len(rec.Marks))
	for subject, mark := range rec.Marks {
		grades[subject] = mark >= threshold
	}
	return grades
}

// Status summarizes one record's grading outcome.
type Status struct {
	PassedSubjects int  `json:"passed_subjects"`
	FailedSubjects int  `json:"failed_subjects"`
	OverallPass    bool `json:"overall_pass"`
}

// RecordStatus counts passed and failed subjects for a record.
// The record passes overall only when no subject fails.
func RecordStatus(rec Record, threshold int) Status {
	var status Status
	for _, mark := range rec.Marks {
		if mark >= threshold {
			status.PassedSubjects++
		} else {
			status.FailedSubjects++
		}
	}
	status.OverallPass = status.FailedSubjects == 0
	return status
}
