package calendar

import (
	"context"
	"time"
)

// WorkingDayConfigRepository stores the weekly pattern, one row per company.
type WorkingDayConfigRepository interface {
	// GetByCompanyID returns ErrWorkingDayConfigNotFound when the company has no row
	GetByCompanyID(ctx context.Context, companyID string) (WorkingDayConfig, error)
	Upsert(ctx context.Context, cfg WorkingDayConfig) (WorkingDayConfig, error)
}

// EventRepository defines data access methods for calendar events.
// All methods include companyID parameter to prevent cross-company data access.
type EventRepository interface {
	Create(ctx context.Context, event Event) (Event, error)
	GetByID(ctx context.Context, id string, companyID string) (Event, error)
	Update(ctx context.Context, event Event) (Event, error)
	Delete(ctx context.Context, id string, companyID string) error

	// ListByDate returns every event of the company on date
	ListByDate(ctx context.Context, companyID string, date time.Time) ([]Event, error)

	// ListInRange returns events with start <= date <= end, ordered by date
	ListInRange(ctx context.Context, companyID string, start, end time.Time) ([]Event, error)

	// ListCompanyIDsWithHoliday returns companies that have an attendance-affecting holiday on date
	ListCompanyIDsWithHoliday(ctx context.Context, date time.Time) ([]string, error)
}
