package response

import (
	"errors"
	"net/http"

	"github.com/nexhr/attendance-backend-go/internal/domain/attendance"
	"github.com/nexhr/attendance-backend-go/internal/domain/auth"
	"github.com/nexhr/attendance-backend-go/internal/domain/employee"
	"github.com/nexhr/attendance-backend-go/internal/domain/report"
	"github.com/nexhr/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrAccountSuspended):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrResetCodeInvalid):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, auth.ErrAccountNotFound):
		NotFound(w, err.Error())

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrNationalIDExists):
		Conflict(w, "National ID already registered")
	case errors.Is(err, employee.ErrPhoneExists):
		Conflict(w, "Phone number already registered")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrConflictRetryExhausted):
		ServiceUnavailable(w, "Attendance could not be recorded, please retry")

	// Report domain errors
	case errors.Is(err, report.ErrInvalidRange):
		BadRequest(w, "from must not be after to", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
