package employee

import (
	"github.com/nexhr/attendance-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	NationalID string `json:"national_id"`
	DOB        string `json:"dob"`
	Status     string `json:"status"`
	Position   string `json:"position"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "a valid email is required",
		})
	}

	if !validator.IsValidPhoneNumber(r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone must be a valid Rwandan number (250...)",
		})
	}

	if validator.IsEmpty(r.NationalID) {
		errs = append(errs, validator.ValidationError{
			Field:   "national_id",
			Message: "national_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.DOB); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "dob",
			Message: "dob must be a date in YYYY-MM-DD format",
		})
	}

	if !validator.IsInSlice(r.Position, Positions()) {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position must be one of manager, developer, cleaner",
		})
	}

	if !validator.IsInSlice(r.Status, Statuses()) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be active or suspended",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateEmployeeRequest carries the same editable fields as creation; the
// employee code is never updatable.
type UpdateEmployeeRequest = CreateEmployeeRequest

type SearchFilter struct {
	Name     *string
	Email    *string
	Phone    *string
	Code     *string
	Position *string
	Page     int
	Limit    int
}

type TodayAttendance struct {
	ArrivedAt string  `json:"arrived_at"`
	LeftAt    *string `json:"left_at"`
}

type EmployeeResponse struct {
	ID              string           `json:"id"`
	Code            string           `json:"code"`
	Name            string           `json:"name"`
	Email           string           `json:"email"`
	Phone           *string          `json:"phone"`
	NationalID      string           `json:"national_id"`
	DOB             string           `json:"dob"`
	Status          string           `json:"status"`
	Position        string           `json:"position"`
	TodayAttendance *TodayAttendance `json:"today_attendance,omitempty"`
	CreatedAt       string           `json:"created_at"`
}

type SearchEmployeeResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
	Employees  []EmployeeResponse `json:"employees"`
}

// ToResponse maps an Employee entity to its API shape. Password hashes and
// reset codes never leave the service layer.
func ToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:         e.ID,
		Code:       e.Code,
		Name:       e.Name,
		Email:      e.Email,
		Phone:      e.Phone,
		NationalID: e.NationalID,
		DOB:        e.DOB.Format("2006-01-02"),
		Status:     string(e.Status),
		Position:   string(e.Position),
		CreatedAt:  e.CreatedAt.Format("2006-01-02 15:04:05"),
	}

	if e.TodayArrivedAt != nil {
		today := &TodayAttendance{
			ArrivedAt: e.TodayArrivedAt.Format("2006-01-02 15:04:05"),
		}
		if e.TodayLeftAt != nil {
			leftAt := e.TodayLeftAt.Format("2006-01-02 15:04:05")
			today.LeftAt = &leftAt
		}
		resp.TodayAttendance = today
	}

	return resp
}
