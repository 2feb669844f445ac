package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// ========== WORKING DAY CONFIG ==========

type workingDayConfigRepository struct {
	db *database.DB
}

func NewWorkingDayConfigRepository(db *database.DB) calendar.WorkingDayConfigRepository {
	return &workingDayConfigRepository{db: db}
}

func (r *workingDayConfigRepository) GetByCompanyID(ctx context.Context, companyID string) (calendar.WorkingDayConfig, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, monday, tuesday, wednesday, thursday, friday, saturday, sunday,
			   created_at, updated_at
		FROM working_days_config
		WHERE company_id = $1
	`

	var c calendar.WorkingDayConfig
	err := q.QueryRow(ctx, query, companyID).Scan(
		&c.ID, &c.CompanyID, &c.Monday, &c.Tuesday, &c.Wednesday, &c.Thursday, &c.Friday, &c.Saturday, &c.Sunday,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return calendar.WorkingDayConfig{}, calendar.ErrWorkingDayConfigNotFound
		}
		return calendar.WorkingDayConfig{}, fmt.Errorf("failed to get working day config: %w", err)
	}

	return c, nil
}

func (r *workingDayConfigRepository) Upsert(ctx context.Context, cfg calendar.WorkingDayConfig) (calendar.WorkingDayConfig, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO working_days_config (company_id, monday, tuesday, wednesday, thursday, friday, saturday, sunday)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (company_id) DO UPDATE SET
			monday = EXCLUDED.monday,
			tuesday = EXCLUDED.tuesday,
			wednesday = EXCLUDED.wednesday,
			thursday = EXCLUDED.thursday,
			friday = EXCLUDED.friday,
			saturday = EXCLUDED.saturday,
			sunday = EXCLUDED.sunday,
			updated_at = NOW()
		RETURNING id, company_id, monday, tuesday, wednesday, thursday, friday, saturday, sunday,
			created_at, updated_at
	`

	var c calendar.WorkingDayConfig
	err := q.QueryRow(ctx, query,
		cfg.CompanyID, cfg.Monday, cfg.Tuesday, cfg.Wednesday, cfg.Thursday, cfg.Friday, cfg.Saturday, cfg.Sunday,
	).Scan(
		&c.ID, &c.CompanyID, &c.Monday, &c.Tuesday, &c.Wednesday, &c.Thursday, &c.Friday, &c.Saturday, &c.Sunday,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return calendar.WorkingDayConfig{}, fmt.Errorf("failed to upsert working day config: %w", err)
	}

	return c, nil
}

// ========== EVENTS ==========

type eventRepository struct {
	db *database.DB
}

func NewEventRepository(db *database.DB) calendar.EventRepository {
	return &eventRepository{db: db}
}

const eventColumns = `id, company_id, title, date, type, affects_attendance, description, created_at, updated_at`

func scanEvent(row pgx.Row) (calendar.Event, error) {
	var e calendar.Event
	err := row.Scan(
		&e.ID, &e.CompanyID, &e.Title, &e.Date, &e.Type, &e.AffectsAttendance, &e.Description,
		&e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

func collectEvents(rows pgx.Rows) ([]calendar.Event, error) {
	defer rows.Close()

	events := make([]calendar.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate events: %w", err)
	}
	return events, nil
}

func (r *eventRepository) Create(ctx context.Context, event calendar.Event) (calendar.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO events (company_id, title, date, type, affects_attendance, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + eventColumns

	created, err := scanEvent(q.QueryRow(ctx, query,
		event.CompanyID, event.Title, event.Date, event.Type, event.AffectsAttendance, event.Description,
	))
	if err != nil {
		return calendar.Event{}, fmt.Errorf("failed to create event: %w", err)
	}

	return created, nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string, companyID string) (calendar.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1 AND company_id = $2`

	e, err := scanEvent(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return calendar.Event{}, calendar.ErrEventNotFound
		}
		return calendar.Event{}, fmt.Errorf("failed to get event: %w", err)
	}

	return e, nil
}

func (r *eventRepository) Update(ctx context.Context, event calendar.Event) (calendar.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE events
		SET title = $1, date = $2, type = $3, affects_attendance = $4, description = $5, updated_at = NOW()
		WHERE id = $6 AND company_id = $7
		RETURNING ` + eventColumns

	updated, err := scanEvent(q.QueryRow(ctx, query,
		event.Title, event.Date, event.Type, event.AffectsAttendance, event.Description, event.ID, event.CompanyID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return calendar.Event{}, calendar.ErrEventNotFound
		}
		return calendar.Event{}, fmt.Errorf("failed to update event: %w", err)
	}

	return updated, nil
}

func (r *eventRepository) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM events WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return calendar.ErrEventNotFound
	}

	return nil
}

func (r *eventRepository) ListByDate(ctx context.Context, companyID string, date time.Time) ([]calendar.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + eventColumns + ` FROM events WHERE company_id = $1 AND date = $2 ORDER BY created_at`

	rows, err := q.Query(ctx, query, companyID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list events by date: %w", err)
	}

	return collectEvents(rows)
}

func (r *eventRepository) ListInRange(ctx context.Context, companyID string, start, end time.Time) ([]calendar.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE company_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date, created_at
	`

	rows, err := q.Query(ctx, query, companyID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list events in range: %w", err)
	}

	return collectEvents(rows)
}

func (r *eventRepository) ListCompanyIDsWithHoliday(ctx context.Context, date time.Time) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT company_id
		FROM events
		WHERE date = $1 AND type = $2 AND affects_attendance = TRUE
	`

	rows, err := q.Query(ctx, query, date, calendar.EventTypeHoliday)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies with holiday: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan company id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
