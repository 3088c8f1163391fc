package attendance

import (
	"github.com/nexhr/attendance-backend-go/internal/domain/employee"
)

// RecordedEvent is emitted after an Arrived or Departed transition commits.
// It is never emitted for AlreadyComplete.
type RecordedEvent struct {
	Employee employee.Employee
	Record   Attendance
	Outcome  Outcome
}

// Dispatcher delivers recorded events to notification consumers.
// Dispatch is fire-and-forget: it must return promptly and delivery failure
// must never surface to the registration caller.
type Dispatcher interface {
	AttendanceRecorded(event RecordedEvent)
}
