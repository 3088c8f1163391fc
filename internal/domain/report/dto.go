package report

import (
	"time"

	"github.com/nexhr/attendance-backend-go/internal/pkg/validator"
)

type RangeRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func (r *RangeRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.From); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: "from must be a date in YYYY-MM-DD format",
		})
	}

	if _, ok := validator.IsValidDate(r.To); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must be a date in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Bounds returns the parsed inclusive day bounds. Validate must have passed.
func (r *RangeRequest) Bounds() (from, to time.Time) {
	from, _ = time.Parse("2006-01-02", r.From)
	to, _ = time.Parse("2006-01-02", r.To)
	return from, to
}

// AttendanceRow is one record inside a day group. The raw timestamps are
// kept alongside the display strings so the export renderers can flatten the
// same structure without re-querying.
type AttendanceRow struct {
	EmployeeCode  string  `json:"employee_code"`
	EmployeeName  string  `json:"employee_name"`
	ArrivedAtTime string  `json:"time_arrived_at"`
	LeftAtTime    *string `json:"time_left_at"`

	arrivedAt time.Time
	leftAt    *time.Time
}

// DayGroup is all attendance for one calendar date, newest arrival first.
type DayGroup struct {
	Date    string          `json:"date"`
	Records []AttendanceRow `json:"data"`
}

type RangeResponse struct {
	From string     `json:"from"`
	To   string     `json:"to"`
	Days []DayGroup `json:"days"`
}

// ExportRow is the flattened shape consumed by the spreadsheet and document
// renderers: one row per record with the literal date string prefixed.
type ExportRow struct {
	Date         string
	EmployeeCode string
	EmployeeName string
	ArrivedAt    string
	LeftAt       string
}
