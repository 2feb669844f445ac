package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/employee"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgForeignKeyViolation = "23503"

// mapAttendanceWriteError turns a missing employee reference into employee.ErrEmployeeNotFound
func mapAttendanceWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return employee.ErrEmployeeNotFound
	}
	return err
}

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const upsertAttendanceQuery = `
	INSERT INTO attendance (employee_id, date, status)
	VALUES ($1, $2, $3)
	ON CONFLICT (employee_id, date) DO UPDATE SET
		status = EXCLUDED.status,
		updated_at = NOW()
	RETURNING id, employee_id, date, status, created_at, updated_at
`

func scanAttendance(row pgx.Row) (attendance.Record, error) {
	var r attendance.Record
	err := row.Scan(&r.ID, &r.EmployeeID, &r.Date, &r.Status, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}

func collectAttendance(rows pgx.Rows) ([]attendance.Record, error) {
	defer rows.Close()

	records := make([]attendance.Record, 0)
	for rows.Next() {
		r, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance: %w", err)
	}
	return records, nil
}

func (r *attendanceRepositoryImpl) Upsert(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	saved, err := scanAttendance(q.QueryRow(ctx, upsertAttendanceQuery, record.EmployeeID, record.Date, record.Status))
	if err != nil {
		if mapped := mapAttendanceWriteError(err); mapped != err {
			return attendance.Record{}, mapped
		}
		return attendance.Record{}, fmt.Errorf("failed to upsert attendance: %w", err)
	}

	return saved, nil
}

// BulkUpsert sends every upsert in one batch inside a transaction
func (r *attendanceRepositoryImpl) BulkUpsert(ctx context.Context, records []attendance.Record) error {
	if len(records) == 0 {
		return nil
	}

	return WithTransaction(ctx, r.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, r.db)

		batch := &pgx.Batch{}
		for _, rec := range records {
			batch.Queue(upsertAttendanceQuery, rec.EmployeeID, rec.Date, rec.Status)
		}

		results := q.SendBatch(ctx, batch)
		for range records {
			if _, err := results.Exec(); err != nil {
				_ = results.Close()
				if mapped := mapAttendanceWriteError(err); mapped != err {
					return mapped
				}
				return fmt.Errorf("failed to upsert attendance batch: %w", err)
			}
		}
		return results.Close()
	})
}

func (r *attendanceRepositoryImpl) Delete(ctx context.Context, companyID string, employeeID string, date time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM attendance a
		USING employees e
		WHERE a.employee_id = e.id AND e.company_id = $1 AND a.employee_id = $2 AND a.date = $3
	`

	tag, err := q.Exec(ctx, query, companyID, employeeID, date)
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

func (r *attendanceRepositoryImpl) ListByEmployeesInRange(ctx context.Context, employeeIDs []string, start, end time.Time) ([]attendance.Record, error) {
	if len(employeeIDs) == 0 {
		return []attendance.Record{}, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, status, created_at, updated_at
		FROM attendance
		WHERE employee_id = ANY($1) AND date BETWEEN $2 AND $3
		ORDER BY employee_id, date
	`

	rows, err := q.Query(ctx, query, employeeIDs, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	return collectAttendance(rows)
}

func (r *attendanceRepositoryImpl) ListByCompanyAndDate(ctx context.Context, companyID string, date time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, a.date, a.status, a.created_at, a.updated_at
		FROM attendance a
		JOIN employees e ON e.id = a.employee_id
		WHERE e.company_id = $1 AND a.date = $2
	`

	rows, err := q.Query(ctx, query, companyID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for date: %w", err)
	}

	return collectAttendance(rows)
}
