package marks

// Predicate selects records during filtering.
type Predicate func(Record) bool

// All matches every record.
func All() Predicate {
	return func(Record) bool { return true }
}

// PassedAll matches records whose every subject mark meets the threshold.
func PassedAll(threshold int) Predicate {
	return func(rec Record) bool {
		return RecordStatus(rec, threshold).OverallPass
	}
}

// FailedAny matches records that failed at least one subject.
func FailedAny(threshold int) Predicate {
	return func(rec Record) bool {
		return !RecordStatus(rec, threshold).OverallPass
	}
}

// SubjectPass matches records that passed the given subject.
func SubjectPass(subject string, threshold int) Predicate {
	return func(rec Record) bool {
		return rec.Marks[subject] >= threshold
	}
}

// SubjectFail matches records that failed the given subject.
func SubjectFail(subject string, threshold int) Predicate {
	return func(rec Record) bool {
		return rec.Marks[subject] < threshold
	}
}
