package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/nexhr/attendance-backend-go/internal/domain/employee"
	"github.com/nexhr/attendance-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `id, code, name, national_id, phone, email, password_hash, dob,
	reset_code, reset_code_expires_at, status, position, created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.Code, &emp.Name, &emp.NationalID, &emp.Phone, &emp.Email,
		&emp.PasswordHash, &emp.DOB, &emp.ResetCode, &emp.ResetCodeExpiresAt,
		&emp.Status, &emp.Position, &emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

func (e *employeeRepositoryImpl) getByColumn(ctx context.Context, column string, value string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := fmt.Sprintf(`SELECT %s FROM employees WHERE %s = $1`, employeeColumns, column)

	emp, err := scanEmployee(q.QueryRow(ctx, query, value))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by %s: %w", column, err)
	}

	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return e.getByColumn(ctx, "id", id)
}

// GetByCode implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByCode(ctx context.Context, code string) (employee.Employee, error) {
	return e.getByColumn(ctx, "code", code)
}

// GetByEmail implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	return e.getByColumn(ctx, "email", email)
}

// GetByResetCode implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByResetCode(ctx context.Context, resetCode string) (employee.Employee, error) {
	return e.getByColumn(ctx, "reset_code", resetCode)
}

// ExistsByCode implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ExistsByCode(ctx context.Context, code string) (bool, error) {
	q := GetQuerier(ctx, e.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM employees WHERE code = $1)`, code).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check employee code: %w", err)
	}

	return exists, nil
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (code, name, national_id, phone, email, password_hash, dob, status, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newEmployee.Code,
		newEmployee.Name,
		newEmployee.NationalID,
		newEmployee.Phone,
		newEmployee.Email,
		newEmployee.PasswordHash,
		newEmployee.DOB,
		newEmployee.Status,
		newEmployee.Position,
	).Scan(&newEmployee.ID, &newEmployee.CreatedAt, &newEmployee.UpdatedAt)

	if err != nil {
		return employee.Employee{}, mapEmployeeConstraintError(err)
	}

	return newEmployee, nil
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET name = $1, national_id = $2, phone = $3, email = $4, dob = $5,
			status = $6, position = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		emp.Name, emp.NationalID, emp.Phone, emp.Email, emp.DOB,
		emp.Status, emp.Position, emp.ID,
	).Scan(&updatedID)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return mapEmployeeConstraintError(err)
	}

	return nil
}

// Delete implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Search implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Search(ctx context.Context, filter employee.SearchFilter, today time.Time) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, e.db)

	// Build WHERE clause
	baseWhere := "1 = 1"
	args := []interface{}{}
	argIdx := 1

	if filter.Name != nil && *filter.Name != "" {
		baseWhere += fmt.Sprintf(" AND e.name ILIKE $%d", argIdx)
		args = append(args, *filter.Name+"%")
		argIdx++
	}
	if filter.Email != nil && *filter.Email != "" {
		baseWhere += fmt.Sprintf(" AND e.email ILIKE $%d", argIdx)
		args = append(args, *filter.Email+"%")
		argIdx++
	}
	if filter.Phone != nil && *filter.Phone != "" {
		baseWhere += fmt.Sprintf(" AND e.phone LIKE $%d", argIdx)
		args = append(args, *filter.Phone+"%")
		argIdx++
	}
	if filter.Position != nil && *filter.Position != "" {
		baseWhere += fmt.Sprintf(" AND e.position = $%d", argIdx)
		args = append(args, *filter.Position)
		argIdx++
	}
	if filter.Code != nil && *filter.Code != "" {
		baseWhere += fmt.Sprintf(" AND e.code = $%d", argIdx)
		args = append(args, *filter.Code)
		argIdx++
	}

	// Count total
	countQuery := "SELECT COUNT(*) FROM employees e WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	// Build query with pagination and today's attendance
	selectQuery := fmt.Sprintf(`
		SELECT e.id, e.code, e.name, e.national_id, e.phone, e.email, e.password_hash, e.dob,
			e.reset_code, e.reset_code_expires_at, e.status, e.position, e.created_at, e.updated_at,
			a.arrived_at, a.left_at
		FROM employees e
		LEFT JOIN attendances a ON a.employee_id = e.id AND a.date = $%d
		WHERE %s
		ORDER BY e.created_at DESC, e.id DESC
		LIMIT $%d OFFSET $%d
	`, argIdx, baseWhere, argIdx+1, argIdx+2)

	limit := filter.Limit
	if limit == 0 {
		limit = 15
	}
	page := filter.Page
	if page == 0 {
		page = 1
	}
	offset := (page - 1) * limit
	args = append(args, today, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID, &emp.Code, &emp.Name, &emp.NationalID, &emp.Phone, &emp.Email,
			&emp.PasswordHash, &emp.DOB, &emp.ResetCode, &emp.ResetCodeExpiresAt,
			&emp.Status, &emp.Position, &emp.CreatedAt, &emp.UpdatedAt,
			&emp.TodayArrivedAt, &emp.TodayLeftAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

// SetResetCode implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) SetResetCode(ctx context.Context, id string, resetCode string, expiresAt time.Time) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET reset_code = $1, reset_code_expires_at = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, resetCode, expiresAt, id).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to set reset code: %w", err)
	}

	return nil
}

// UpdatePassword implements employee.EmployeeRepository. It also clears any
// outstanding reset code.
func (e *employeeRepositoryImpl) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET password_hash = $1, reset_code = NULL, reset_code_expires_at = NULL, updated_at = NOW()
		WHERE id = $2
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, passwordHash, id).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

// mapEmployeeConstraintError translates unique-violation errors on the
// employees table into domain errors.
func mapEmployeeConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch {
		case strings.Contains(pgErr.ConstraintName, "email"):
			return employee.ErrEmailExists
		case strings.Contains(pgErr.ConstraintName, "national_id"):
			return employee.ErrNationalIDExists
		case strings.Contains(pgErr.ConstraintName, "phone"):
			return employee.ErrPhoneExists
		case strings.Contains(pgErr.ConstraintName, "code"):
			return employee.ErrEmployeeCodeExists
		}
	}
	return fmt.Errorf("failed to write employee: %w", err)
}
