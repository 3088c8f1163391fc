package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/nexhr/attendance-backend-go/internal/domain/auth"
	"github.com/nexhr/attendance-backend-go/internal/domain/employee"
	"github.com/nexhr/attendance-backend-go/internal/pkg/clock"
	"github.com/nexhr/attendance-backend-go/internal/pkg/email"
	"github.com/nexhr/attendance-backend-go/internal/pkg/jwt"
	employeesvc "github.com/nexhr/attendance-backend-go/internal/service/employee"
)

// resetCodeTTL is how long a password reset link stays usable.
const resetCodeTTL = 2 * time.Hour

type authServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	jwtService   jwt.Service
	emailService email.EmailService
	clock        clock.Clock
	baseURL      string
}

func NewAuthService(
	employeeRepo employee.EmployeeRepository,
	jwtService jwt.Service,
	emailService email.EmailService,
	clk clock.Clock,
	baseURL string,
) auth.AuthService {
	return &authServiceImpl{
		employeeRepo: employeeRepo,
		jwtService:   jwtService,
		emailService: emailService,
		clock:        clk,
		baseURL:      baseURL,
	}
}

// Login implements auth.AuthService.
func (s *authServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	emp, err := s.employeeRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, err
	}

	if emp.PasswordHash == nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*emp.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	if !emp.IsActive() {
		return auth.LoginResponse{}, auth.ErrAccountSuspended
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(emp.ID, emp.Email, emp.Position)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      employee.ToResponse(emp),
	}, nil
}

// Signup implements auth.AuthService. Self-registered accounts are managers;
// non-manager employees are created through the employee endpoints and never
// hold credentials.
func (s *authServiceImpl) Signup(ctx context.Context, req auth.SignupRequest) (auth.SignupResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.SignupResponse{}, err
	}

	code, err := employeesvc.GenerateEmployeeCode(ctx, s.employeeRepo)
	if err != nil {
		return auth.SignupResponse{}, err
	}

	dob, err := time.Parse("2006-01-02", req.DOB)
	if err != nil {
		return auth.SignupResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.SignupResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	passwordHash := string(hash)

	var phone *string
	if req.Phone != "" {
		phone = &req.Phone
	}

	emp, err := s.employeeRepo.Create(ctx, employee.Employee{
		Code:         code,
		Name:         req.Name,
		NationalID:   req.NationalID,
		Phone:        phone,
		Email:        req.Email,
		PasswordHash: &passwordHash,
		DOB:          dob,
		Status:       employee.StatusActive,
		Position:     employee.PositionManager,
	})
	if err != nil {
		return auth.SignupResponse{}, err
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(emp.ID, emp.Email, emp.Position)
	if err != nil {
		return auth.SignupResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.SignupResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      employee.ToResponse(emp),
	}, nil
}

// Me implements auth.AuthService.
func (s *authServiceImpl) Me(ctx context.Context, employeeID string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(emp), nil
}

// Logout implements auth.AuthService.
func (s *authServiceImpl) Logout(_ context.Context, token string) error {
	if token == "" {
		return auth.ErrInvalidToken
	}

	s.jwtService.RevokeToken(token)
	return nil
}

// RequestResetLink implements auth.AuthService.
func (s *authServiceImpl) RequestResetLink(ctx context.Context, req auth.RequestResetLinkRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	emp, err := s.employeeRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.ErrAccountNotFound
		}
		return err
	}

	resetCode := uuid.NewString()
	expiresAt := s.clock.Now().Add(resetCodeTTL)

	if err := s.employeeRepo.SetResetCode(ctx, emp.ID, resetCode, expiresAt); err != nil {
		return err
	}

	resetLink := fmt.Sprintf("%s/reset-password/%s", s.baseURL, resetCode)

	go func() {
		err := s.emailService.SendPasswordReset(emp.Email, resetLink, expiresAt.Format("2006-01-02 03:04:05 PM"))
		if err != nil {
			slog.Error("failed to send password reset email",
				slog.String("employee_id", emp.ID),
				slog.Any("error", err),
			)
		}
	}()

	return nil
}

// ResetPassword implements auth.AuthService.
func (s *authServiceImpl) ResetPassword(ctx context.Context, resetCode string, req auth.ResetPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	emp, err := s.employeeRepo.GetByResetCode(ctx, resetCode)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.ErrResetCodeInvalid
		}
		return err
	}

	if emp.ResetCodeExpiresAt == nil || s.clock.Now().After(*emp.ResetCodeExpiresAt) {
		return auth.ErrResetCodeInvalid
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.employeeRepo.UpdatePassword(ctx, emp.ID, string(hash))
}
