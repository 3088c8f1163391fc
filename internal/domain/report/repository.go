package report

import (
	"context"
	"time"
)

// ReportRepository defines read-only access to attendance for reporting.
type ReportRepository interface {
	// ListRange returns all attendance records whose calendar day falls in
	// [from, to] inclusive, joined with employee name and code, ordered by
	// date descending then arrival descending with a stable id tiebreak.
	ListRange(ctx context.Context, from, to time.Time) ([]RangeRecord, error)
}
