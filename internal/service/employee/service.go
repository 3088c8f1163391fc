package employee

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/nexhr/attendance-backend-go/internal/domain/attendance"
	"github.com/nexhr/attendance-backend-go/internal/domain/employee"
	"github.com/nexhr/attendance-backend-go/internal/pkg/clock"
	"github.com/nexhr/attendance-backend-go/internal/pkg/database"
	"github.com/nexhr/attendance-backend-go/internal/pkg/validator"
)

// maxCodeAttempts bounds the employee code generation loop. With 10000
// possible codes a collision streak this long means the keyspace is close to
// exhausted.
const maxCodeAttempts = 10

type employeeServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	txManager      database.TxManager
	clock          clock.Clock
	location       *time.Location
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	txManager database.TxManager,
	clk clock.Clock,
	location *time.Location,
) employee.EmployeeService {
	return &employeeServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		txManager:      txManager,
		clock:          clk,
		location:       location,
	}
}

// GenerateEmployeeCode produces an unused EMP-prefixed four digit code.
func GenerateEmployeeCode(ctx context.Context, repo employee.EmployeeRepository) (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code := fmt.Sprintf("EMP%04d", rand.IntN(10000))

		exists, err := repo.ExistsByCode(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}

	return "", fmt.Errorf("failed to generate an unused employee code after %d attempts", maxCodeAttempts)
}

// Create implements employee.EmployeeService.
func (s *employeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	code, err := GenerateEmployeeCode(ctx, s.employeeRepo)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	dob, err := time.Parse("2006-01-02", req.DOB)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	var phone *string
	if req.Phone != "" {
		phone = &req.Phone
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		Code:       code,
		Name:       req.Name,
		NationalID: req.NationalID,
		Phone:      phone,
		Email:      req.Email,
		DOB:        dob,
		Status:     employee.Status(req.Status),
		Position:   employee.Position(req.Position),
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(created), nil
}

// GetByCode implements employee.EmployeeService.
func (s *employeeServiceImpl) GetByCode(ctx context.Context, code string) (employee.EmployeeResponse, error) {
	// malformed codes can never match, skip the lookup
	if !validator.IsValidEmployeeCode(code) {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
	}

	emp, err := s.employeeRepo.GetByCode(ctx, code)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(emp), nil
}

// Update implements employee.EmployeeService.
func (s *employeeServiceImpl) Update(ctx context.Context, code string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByCode(ctx, code)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	dob, err := time.Parse("2006-01-02", req.DOB)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp.Name = req.Name
	emp.NationalID = req.NationalID
	emp.Email = req.Email
	emp.DOB = dob
	emp.Status = employee.Status(req.Status)
	emp.Position = employee.Position(req.Position)
	if req.Phone != "" {
		emp.Phone = &req.Phone
	} else {
		emp.Phone = nil
	}

	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(emp), nil
}

// Delete implements employee.EmployeeService. Attendance history goes with
// the employee, inside one transaction.
func (s *employeeServiceImpl) Delete(ctx context.Context, code string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByCode(ctx, code)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.attendanceRepo.DeleteByEmployee(txCtx, emp.ID); err != nil {
			return err
		}
		return s.employeeRepo.Delete(txCtx, emp.ID)
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(emp), nil
}

// Search implements employee.EmployeeService.
func (s *employeeServiceImpl) Search(ctx context.Context, filter employee.SearchFilter) (employee.SearchEmployeeResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 15
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}

	today := attendance.DayOf(s.clock.Now().In(s.location), s.location)

	employees, total, err := s.employeeRepo.Search(ctx, filter, today)
	if err != nil {
		return employee.SearchEmployeeResponse{}, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp))
	}

	totalPages := int(total) / filter.Limit
	if int(total)%filter.Limit != 0 {
		totalPages++
	}

	return employee.SearchEmployeeResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Employees:  responses,
	}, nil
}
