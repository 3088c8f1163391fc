package attendance

import "errors"

// Attendance domain errors
var (
	ErrAttendanceNotFound = errors.New("attendance record not found")

	// ErrConflictRetryExhausted means the per-employee-day registration race
	// could not be won after the bounded number of retries. Callers may retry.
	ErrConflictRetryExhausted = errors.New("attendance registration conflict, retries exhausted")
)
