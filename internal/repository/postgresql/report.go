package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/nexhr/attendance-backend-go/internal/domain/report"
	"github.com/nexhr/attendance-backend-go/internal/pkg/database"
)

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepositoryImpl{db: db}
}

// ListRange implements report.ReportRepository. Rows come back newest day
// first, and within a day newest arrival first, so the service can group them
// in a single pass. The id tiebreak keeps equal arrival times deterministic.
func (r *reportRepositoryImpl) ListRange(ctx context.Context, from time.Time, to time.Time) ([]report.RangeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.date, a.arrived_at, a.left_at, e.code, e.name
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.date BETWEEN $1 AND $2
		  AND a.arrived_at IS NOT NULL
		ORDER BY a.date DESC, a.arrived_at DESC, a.id DESC
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance range: %w", err)
	}
	defer rows.Close()

	var records []report.RangeRecord
	for rows.Next() {
		var rec report.RangeRecord
		err := rows.Scan(&rec.ID, &rec.Date, &rec.ArrivedAt, &rec.LeftAt, &rec.EmployeeCode, &rec.EmployeeName)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance range row: %w", err)
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
