package report

import (
	"time"
)

// RangeRecord is one attendance row within a queried date range, joined with
// the owning employee's identity. It is a read-only projection.
type RangeRecord struct {
	ID           string
	Date         time.Time
	ArrivedAt    time.Time
	LeftAt       *time.Time
	EmployeeCode string
	EmployeeName string
}
