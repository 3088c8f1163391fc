package employee

import (
	"context"
	"time"
)

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByCode(ctx context.Context, code string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	GetByResetCode(ctx context.Context, resetCode string) (Employee, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, emp Employee) error
	Delete(ctx context.Context, id string) error

	// Search lists employees ordered by creation time descending, joined
	// with today's attendance when one exists.
	Search(ctx context.Context, filter SearchFilter, today time.Time) ([]Employee, int64, error)

	SetResetCode(ctx context.Context, id string, resetCode string, expiresAt time.Time) error
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
}
