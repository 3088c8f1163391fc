package attendance

import (
	"time"

	"github.com/nexhr/attendance-backend-go/internal/pkg/validator"
)

type RegisterRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r *RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	ArrivedAt  string  `json:"arrived_at"`
	LeftAt     *string `json:"left_at"`
}

type RegisterResponse struct {
	Outcome    Outcome            `json:"outcome"`
	Attendance AttendanceResponse `json:"attendance"`
}

// ToResponse maps an Attendance entity to its API shape.
func ToResponse(att Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:         att.ID,
		EmployeeID: att.EmployeeID,
		Date:       att.Date.Format("2006-01-02"),
		ArrivedAt:  att.ArrivedAt.Format("2006-01-02 15:04:05"),
	}
	if att.LeftAt != nil {
		leftAt := att.LeftAt.Format("2006-01-02 15:04:05")
		resp.LeftAt = &leftAt
	}
	return resp
}

// DayOf projects a timestamp onto its calendar day in the given location.
// Every per-day key in the system derives from this single projection.
func DayOf(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}
