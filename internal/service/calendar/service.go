package calendar

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/pkg/cache"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type CalendarServiceImpl struct {
	configRepo calendar.WorkingDayConfigRepository
	eventRepo  calendar.EventRepository
	monthCache *cache.Cache[calendar.MonthSummary]
	cacheTTL   time.Duration
	dependents []cache.Invalidator
}

// NewCalendarService builds the resolver. dependents are caches holding results derived
// from calendar data; they are invalidated together with the month cache.
func NewCalendarService(
	configRepo calendar.WorkingDayConfigRepository,
	eventRepo calendar.EventRepository,
	monthCache *cache.Cache[calendar.MonthSummary],
	cacheTTL time.Duration,
	dependents ...cache.Invalidator,
) calendar.Service {
	return &CalendarServiceImpl{
		configRepo: configRepo,
		eventRepo:  eventRepo,
		monthCache: monthCache,
		cacheTTL:   cacheTTL,
		dependents: dependents,
	}
}

// weeklyConfig returns the stored pattern or the Mon-Fri default. The default is not persisted.
func (s *CalendarServiceImpl) weeklyConfig(ctx context.Context, companyID string) (calendar.WorkingDayConfig, error) {
	cfg, err := s.configRepo.GetByCompanyID(ctx, companyID)
	if err != nil {
		if errors.Is(err, calendar.ErrWorkingDayConfigNotFound) {
			return calendar.DefaultWorkingDayConfig(companyID), nil
		}
		return calendar.WorkingDayConfig{}, fmt.Errorf("failed to get working day config: %w", err)
	}
	return cfg, nil
}

// ========== RESOLUTION ==========

func (s *CalendarServiceImpl) ResolveDay(ctx context.Context, companyID string, date time.Time) (calendar.DayResolution, error) {
	date = calendar.DateOnly(date)

	if summary, ok := s.monthCache.Get(calendar.CacheKey(companyID, calendar.MonthOf(date))); ok {
		return summary.Days[date.Day()-1], nil
	}

	var (
		cfg    calendar.WorkingDayConfig
		events []calendar.Event
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		cfg, err = s.weeklyConfig(gCtx, companyID)
		return err
	})

	g.Go(func() error {
		var err error
		events, err = s.eventRepo.ListByDate(gCtx, companyID, date)
		if err != nil {
			return fmt.Errorf("failed to get events for %s: %w", date.Format(calendar.DateLayout), err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return calendar.DayResolution{}, err
	}

	return calendar.Classify(cfg, date, events), nil
}

func (s *CalendarServiceImpl) ResolveMonth(ctx context.Context, companyID string, month calendar.Month) (calendar.MonthSummary, error) {
	key := calendar.CacheKey(companyID, month)
	if summary, ok := s.monthCache.Get(key); ok {
		slog.Debug("Calendar cache hit", "company_id", companyID, "month", month.Key())
		return summary, nil
	}

	var (
		cfg    calendar.WorkingDayConfig
		events []calendar.Event
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		cfg, err = s.weeklyConfig(gCtx, companyID)
		return err
	})

	// One ranged query for the whole month, grouped in memory
	g.Go(func() error {
		var err error
		events, err = s.eventRepo.ListInRange(gCtx, companyID, month.Start(), month.End())
		if err != nil {
			return fmt.Errorf("failed to get events for %s: %w", month.Key(), err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		slog.Error("Failed to resolve month", "company_id", companyID, "month", month.Key(), "error", err)
		return calendar.MonthSummary{}, err
	}

	summary := calendar.SummarizeMonth(companyID, cfg, month, calendar.GroupByDate(events))
	s.monthCache.Set(key, summary, s.cacheTTL)

	slog.Debug("Calendar month resolved",
		"company_id", companyID,
		"month", month.Key(),
		"working_days", summary.WorkingDays.String(),
		"event_count", len(events),
	)

	return summary, nil
}

func (s *CalendarServiceImpl) IsWorkingDay(ctx context.Context, companyID string, date time.Time) (bool, error) {
	day, err := s.ResolveDay(ctx, companyID, date)
	if err != nil {
		return false, err
	}
	return day.IsWorkingDay(), nil
}

func (s *CalendarServiceImpl) ShouldShowAttendance(ctx context.Context, companyID string, date time.Time) (bool, error) {
	day, err := s.ResolveDay(ctx, companyID, date)
	if err != nil {
		return false, err
	}
	return day.ShowAttendance, nil
}

// EventsForDate returns every event on date, including types that never affect the count.
func (s *CalendarServiceImpl) EventsForDate(ctx context.Context, companyID string, date time.Time) ([]calendar.Event, error) {
	events, err := s.eventRepo.ListByDate(ctx, companyID, calendar.DateOnly(date))
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	return events, nil
}

func (s *CalendarServiceImpl) WorkingDaysInMonth(ctx context.Context, companyID string, month calendar.Month) (decimal.Decimal, error) {
	summary, err := s.ResolveMonth(ctx, companyID, month)
	if err != nil {
		return decimal.Zero, err
	}
	return summary.WorkingDays, nil
}

// ========== EVENTS ==========

func (s *CalendarServiceImpl) CreateEvent(ctx context.Context, companyID string, req calendar.CreateEventRequest) (calendar.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return calendar.EventResponse{}, err
	}

	date, err := calendar.ParseDate(req.Date)
	if err != nil {
		return calendar.EventResponse{}, err
	}

	eventType := calendar.EventType(req.Type)
	affectsAttendance := eventType.DefaultAffectsAttendance()
	if req.AffectsAttendance != nil {
		affectsAttendance = *req.AffectsAttendance
	}

	created, err := s.eventRepo.Create(ctx, calendar.Event{
		CompanyID:         companyID,
		Title:             req.Title,
		Date:              date,
		Type:              eventType,
		AffectsAttendance: affectsAttendance,
		Description:       req.Description,
	})
	if err != nil {
		return calendar.EventResponse{}, err
	}

	s.InvalidateCompany(companyID)
	slog.Info("Event created", "company_id", companyID, "event_id", created.ID, "type", created.Type, "date", req.Date)

	return calendar.NewEventResponse(created), nil
}

func (s *CalendarServiceImpl) UpdateEvent(ctx context.Context, companyID string, req calendar.UpdateEventRequest) (calendar.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return calendar.EventResponse{}, err
	}

	current, err := s.eventRepo.GetByID(ctx, req.ID, companyID)
	if err != nil {
		return calendar.EventResponse{}, err
	}

	if req.Title != nil {
		current.Title = *req.Title
	}
	if req.Date != nil {
		date, err := calendar.ParseDate(*req.Date)
		if err != nil {
			return calendar.EventResponse{}, err
		}
		current.Date = date
	}
	if req.Type != nil {
		current.Type = calendar.EventType(*req.Type)
		if req.AffectsAttendance == nil {
			current.AffectsAttendance = current.Type.DefaultAffectsAttendance()
		}
	}
	if req.AffectsAttendance != nil {
		current.AffectsAttendance = *req.AffectsAttendance
	}
	if req.Description != nil {
		current.Description = req.Description
	}

	updated, err := s.eventRepo.Update(ctx, current)
	if err != nil {
		return calendar.EventResponse{}, err
	}

	s.InvalidateCompany(companyID)

	return calendar.NewEventResponse(updated), nil
}

func (s *CalendarServiceImpl) DeleteEvent(ctx context.Context, companyID string, id string) error {
	if err := s.eventRepo.Delete(ctx, id, companyID); err != nil {
		return err
	}

	s.InvalidateCompany(companyID)
	slog.Info("Event deleted", "company_id", companyID, "event_id", id)
	return nil
}

func (s *CalendarServiceImpl) ListEvents(ctx context.Context, companyID string, filter calendar.EventFilter) ([]calendar.EventResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	start, _ := calendar.ParseDate(filter.StartDate)
	end, _ := calendar.ParseDate(filter.EndDate)

	events, err := s.eventRepo.ListInRange(ctx, companyID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	return calendar.NewEventResponses(events), nil
}

// ========== CACHE ==========

func (s *CalendarServiceImpl) InvalidateCompany(companyID string) {
	scope := cache.CompanyScope(companyID)
	removed := s.monthCache.Invalidate(calendar.CacheKeyPrefix(companyID))
	for _, dep := range s.dependents {
		removed += dep.Invalidate(scope)
	}
	slog.Debug("Calendar caches invalidated", "company_id", companyID, "removed", removed)
}
