package notification

import (
	"log/slog"
	"time"

	"github.com/nexhr/attendance-backend-go/internal/domain/attendance"
	"github.com/nexhr/attendance-backend-go/internal/pkg/email"
)

const emailTimestampFormat = "2006-01-02 03:04:05 PM"

type emailDispatcher struct {
	emailService email.EmailService
	location     *time.Location
}

// NewEmailDispatcher returns a dispatcher that emails the employee after
// each recorded check-in or check-out. Delivery runs in the background and
// failures are logged, never surfaced: the attendance record is already
// committed by the time the event fires.
func NewEmailDispatcher(emailService email.EmailService, location *time.Location) attendance.Dispatcher {
	return &emailDispatcher{
		emailService: emailService,
		location:     location,
	}
}

// AttendanceRecorded implements attendance.Dispatcher.
func (d *emailDispatcher) AttendanceRecorded(event attendance.RecordedEvent) {
	go func() {
		arrivedAt := event.Record.ArrivedAt.In(d.location).Format(emailTimestampFormat)

		var leftAt *string
		if event.Record.LeftAt != nil {
			formatted := event.Record.LeftAt.In(d.location).Format(emailTimestampFormat)
			leftAt = &formatted
		}

		err := d.emailService.SendAttendanceRecorded(event.Employee.Email, event.Employee.Name, arrivedAt, leftAt)
		if err != nil {
			slog.Error("failed to send attendance notification",
				slog.String("employee_id", event.Employee.ID),
				slog.String("outcome", string(event.Outcome)),
				slog.Any("error", err),
			)
		}
	}()
}
