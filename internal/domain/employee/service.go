package employee

import (
	"context"
)

// EmployeeService defines business logic for employee management
type EmployeeService interface {
	// Create registers a new employee with a generated unique code
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// GetByCode retrieves a single employee by their employee code
	GetByCode(ctx context.Context, code string) (EmployeeResponse, error)

	// Update replaces the editable fields of the employee with the given code
	Update(ctx context.Context, code string, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// Delete removes the employee and cascades their attendance records
	Delete(ctx context.Context, code string) (EmployeeResponse, error)

	// Search lists employees with filters and pagination
	Search(ctx context.Context, filter SearchFilter) (SearchEmployeeResponse, error)
}
