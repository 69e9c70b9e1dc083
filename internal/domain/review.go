package domain

// ReviewStatus is the workflow state of a reviewable record.
// The workflow is a cycle: unreviewed → in_progress → done → unreviewed.
type ReviewStatus string

const (
	ReviewUnreviewed ReviewStatus = "unreviewed"
	ReviewInProgress ReviewStatus = "in_progress"
	ReviewDone       ReviewStatus = "done"
)

// Next returns the status that follows s in the review cycle.
// It is total: any unrecognized or empty value is treated as unreviewed,
// so legacy rows without a status advance to in_progress like fresh ones.
func (s ReviewStatus) Next() ReviewStatus {
	switch s {
	case ReviewUnreviewed:
		return ReviewInProgress
	case ReviewInProgress:
		return ReviewDone
	case ReviewDone:
		return ReviewUnreviewed
	default:
		return ReviewInProgress
	}
}

// IsValid reports whether s is one of the three known statuses.
func (s ReviewStatus) IsValid() bool {
	switch s {
	case ReviewUnreviewed, ReviewInProgress, ReviewDone:
		return true
	}
	return false
}

func (s ReviewStatus) String() string { return string(s) }

// ParseReviewStatus converts a stored value into a ReviewStatus.
// Empty strings (including NULL columns scanned as "") map to unreviewed;
// rows predate the review workflow and must still enter the cycle.
func ParseReviewStatus(s string) ReviewStatus {
	status := ReviewStatus(s)
	if !status.IsValid() {
		return ReviewUnreviewed
	}
	return status
}
