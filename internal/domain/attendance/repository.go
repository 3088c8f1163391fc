package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records.
type AttendanceRepository interface {
	// Create inserts a new attendance record. The unique constraint on
	// (employee_id, date) makes a concurrent duplicate insert fail with a
	// unique violation, which the register service retries on.
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// GetByEmployeeAndDate retrieves the record for an employee on a calendar
	// day, or nil when none exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// GetByEmployeeAndDateForUpdate is GetByEmployeeAndDate with a row lock,
	// for use inside the registration transaction.
	GetByEmployeeAndDateForUpdate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// SetLeftAt records the departure on an open record. It only succeeds
	// while left_at is still null, so a concurrent double departure loses.
	SetLeftAt(ctx context.Context, id string, leftAt time.Time) (Attendance, error)

	// DeleteByEmployee removes all records for an employee, for the
	// employee-removal cascade.
	DeleteByEmployee(ctx context.Context, employeeID string) error
}
