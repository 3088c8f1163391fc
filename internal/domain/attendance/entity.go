package attendance

import (
	"time"
)

// Attendance is one employee's presence on one calendar day. Date is the
// calendar day of ArrivedAt in the application time zone; together with
// EmployeeID it is unique. ArrivedAt is set once at creation, LeftAt moves
// from null to a value exactly once, and the row is terminal after that.
type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	ArrivedAt  time.Time
	LeftAt     *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Outcome is the result of a registration call.
type Outcome string

const (
	// OutcomeArrived means a new record was created with arrived_at set.
	OutcomeArrived Outcome = "arrived"
	// OutcomeDeparted means left_at was set on the existing record.
	OutcomeDeparted Outcome = "departed"
	// OutcomeAlreadyComplete means both timestamps were already set; the
	// record was returned unchanged. It is a terminal state, not an error.
	OutcomeAlreadyComplete Outcome = "already_complete"
)
