package calendar

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Service resolves working days for a company and manages its events
type Service interface {
	IsWorkingDay(ctx context.Context, companyID string, date time.Time) (bool, error)
	EventsForDate(ctx context.Context, companyID string, date time.Time) ([]Event, error)
	ShouldShowAttendance(ctx context.Context, companyID string, date time.Time) (bool, error)

	// WorkingDaysInMonth sums per-day credits; the result moves in 0.5 steps
	WorkingDaysInMonth(ctx context.Context, companyID string, month Month) (decimal.Decimal, error)

	ResolveDay(ctx context.Context, companyID string, date time.Time) (DayResolution, error)
	ResolveMonth(ctx context.Context, companyID string, month Month) (MonthSummary, error)

	// Events
	CreateEvent(ctx context.Context, companyID string, req CreateEventRequest) (EventResponse, error)
	UpdateEvent(ctx context.Context, companyID string, req UpdateEventRequest) (EventResponse, error)
	DeleteEvent(ctx context.Context, companyID string, id string) error
	ListEvents(ctx context.Context, companyID string, filter EventFilter) ([]EventResponse, error)

	// InvalidateCompany drops cached month summaries of the company
	InvalidateCompany(companyID string)
}
