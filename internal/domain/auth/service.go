package auth

import (
	"context"

	"github.com/nexhr/attendance-backend-go/internal/domain/employee"
)

// AuthService defines manager authentication and password recovery
type AuthService interface {
	// Login authenticates a manager by email and password
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// Signup registers a new manager account and returns a session token
	Signup(ctx context.Context, req SignupRequest) (SignupResponse, error)

	// Me resolves the authenticated employee from their id claim
	Me(ctx context.Context, employeeID string) (employee.EmployeeResponse, error)

	// Logout revokes the presented token
	Logout(ctx context.Context, token string) error

	// RequestResetLink issues a reset code for a manager account and emails
	// the reset link; delivery is best effort
	RequestResetLink(ctx context.Context, req RequestResetLinkRequest) error

	// ResetPassword sets a new password for the manager holding an
	// unexpired reset code, then clears the code
	ResetPassword(ctx context.Context, resetCode string, req ResetPasswordRequest) error
}
