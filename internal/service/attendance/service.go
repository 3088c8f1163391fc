package attendance

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/nexhr/attendance-backend-go/internal/domain/attendance"
	"github.com/nexhr/attendance-backend-go/internal/domain/employee"
	"github.com/nexhr/attendance-backend-go/internal/pkg/clock"
	"github.com/nexhr/attendance-backend-go/internal/pkg/database"
)

// maxRegisterRetries bounds how many times a register attempt is replayed
// after losing a concurrent-insert race on the (employee, date) unique key.
const maxRegisterRetries = 3

type attendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	txManager      database.TxManager
	dispatcher     attendance.Dispatcher
	clock          clock.Clock
	location       *time.Location
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	txManager database.TxManager,
	dispatcher attendance.Dispatcher,
	clk clock.Clock,
	location *time.Location,
) attendance.AttendanceService {
	return &attendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		txManager:      txManager,
		dispatcher:     dispatcher,
		clock:          clk,
		location:       location,
	}
}

// Register implements attendance.AttendanceService. Each call advances the
// employee's record for the current day by exactly one step:
//
//	no record        -> row created with arrival time
//	arrived          -> departure time stamped
//	already departed -> no change, reported as complete
//
// The step runs inside a transaction holding a row lock on the day's record,
// so two simultaneous calls for the same employee serialize. When both calls
// race to create the first record, the loser hits the unique constraint and
// the whole attempt is replayed, landing on the departure branch.
func (s *attendanceServiceImpl) Register(ctx context.Context, req attendance.RegisterRequest) (attendance.RegisterResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RegisterResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.RegisterResponse{}, err
	}

	var record attendance.Attendance
	var outcome attendance.Outcome

	for attempt := 0; ; attempt++ {
		// Reread the clock per attempt: a replay after losing a race must
		// stamp a later instant than the row it now races against, or the
		// left_at > arrived_at constraint rejects an equal-instant
		// departure.
		now := s.clock.Now().In(s.location)
		day := attendance.DayOf(now, s.location)

		err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
			existing, lookupErr := s.attendanceRepo.GetByEmployeeAndDateForUpdate(txCtx, emp.ID, day)
			if lookupErr != nil {
				return lookupErr
			}

			if existing == nil {
				created, createErr := s.attendanceRepo.Create(txCtx, attendance.Attendance{
					EmployeeID: emp.ID,
					Date:       day,
					ArrivedAt:  now,
				})
				if createErr != nil {
					return createErr
				}

				record = created
				outcome = attendance.OutcomeArrived
				return nil
			}

			if existing.LeftAt != nil {
				record = *existing
				outcome = attendance.OutcomeAlreadyComplete
				return nil
			}

			updated, updateErr := s.attendanceRepo.SetLeftAt(txCtx, existing.ID, now)
			if updateErr != nil {
				return updateErr
			}

			record = updated
			outcome = attendance.OutcomeDeparted
			return nil
		})

		if err == nil {
			break
		}

		if isRetriableConflict(err) && attempt < maxRegisterRetries-1 {
			slog.Warn("attendance register lost concurrent race, retrying",
				slog.String("employee_id", emp.ID),
				slog.Int("attempt", attempt+1),
			)
			continue
		}

		if isRetriableConflict(err) {
			return attendance.RegisterResponse{}, attendance.ErrConflictRetryExhausted
		}

		return attendance.RegisterResponse{}, err
	}

	if outcome != attendance.OutcomeAlreadyComplete {
		s.dispatcher.AttendanceRecorded(attendance.RecordedEvent{
			Employee: emp,
			Record:   record,
			Outcome:  outcome,
		})
	}

	return attendance.RegisterResponse{
		Outcome:    outcome,
		Attendance: attendance.ToResponse(record),
	}, nil
}

// isRetriableConflict reports whether err is a conflict another attempt can
// resolve: a lost insert race on the per-day unique key (23505), or a
// departure stamped at the same instant as the winning arrival, rejected by
// the left_at > arrived_at check (23514). Both clear on replay with a fresh
// clock reading.
func isRetriableConflict(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "23505" || pgErr.Code == "23514"
}
