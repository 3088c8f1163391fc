package attendance

import (
	"context"
)

// AttendanceService defines the registration state machine
type AttendanceService interface {
	// Register converts a "register presence now" event into exactly one
	// state transition for the employee's current calendar day:
	// no record -> Arrived, open record -> Departed, closed record ->
	// AlreadyComplete (no mutation).
	Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error)
}
