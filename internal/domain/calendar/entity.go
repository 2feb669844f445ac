package calendar

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkingDayConfig - Company weekly working pattern
type WorkingDayConfig struct {
	ID        string
	CompanyID string
	Monday    bool
	Tuesday   bool
	Wednesday bool
	Thursday  bool
	Friday    bool
	Saturday  bool
	Sunday    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultWorkingDayConfig returns the Mon-Fri pattern used when a company has no stored row.
func DefaultWorkingDayConfig(companyID string) WorkingDayConfig {
	return WorkingDayConfig{
		CompanyID: companyID,
		Monday:    true,
		Tuesday:   true,
		Wednesday: true,
		Thursday:  true,
		Friday:    true,
		Saturday:  false,
		Sunday:    false,
	}
}

// IsWorkingWeekday checks if the weekly pattern marks weekday as working
func (w WorkingDayConfig) IsWorkingWeekday(weekday time.Weekday) bool {
	switch weekday {
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	case time.Sunday:
		return w.Sunday
	default:
		return false
	}
}

// WorkingDaysPerWeek counts the working weekdays of the pattern
func (w WorkingDayConfig) WorkingDaysPerWeek() int {
	n := 0
	for d := time.Sunday; d <= time.Saturday; d++ {
		if w.IsWorkingWeekday(d) {
			n++
		}
	}
	return n
}

// EventType enum
type EventType string

const (
	EventTypeHoliday    EventType = "holiday"
	EventTypeWorkingDay EventType = "working_day"
	EventTypeHalfDay    EventType = "half_day"
	EventTypeOffDay     EventType = "off_day"
	EventTypeMeeting    EventType = "meeting"
	EventTypeTraining   EventType = "training"
)

var validEventTypes = map[EventType]bool{
	EventTypeHoliday:    true,
	EventTypeWorkingDay: true,
	EventTypeHalfDay:    true,
	EventTypeOffDay:     true,
	EventTypeMeeting:    true,
	EventTypeTraining:   true,
}

func (t EventType) IsValid() bool {
	return validEventTypes[t]
}

// DefaultAffectsAttendance is the affects_attendance value used when a request leaves it unset.
func (t EventType) DefaultAffectsAttendance() bool {
	switch t {
	case EventTypeHoliday, EventTypeWorkingDay, EventTypeHalfDay, EventTypeOffDay:
		return true
	default:
		return false
	}
}

// Event - Single calendar entry. Several events may share a date.
type Event struct {
	ID                string
	CompanyID         string
	Title             string
	Date              time.Time
	Type              EventType
	AffectsAttendance bool
	Description       *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// DayKind enum
type DayKind string

const (
	DayKindWorking DayKind = "working"
	DayKindHalfDay DayKind = "half_day"
	DayKindHoliday DayKind = "holiday"
	DayKindOffDay  DayKind = "off_day"
	DayKindOff     DayKind = "off"
)

// DayResolution - Resolved state of one calendar date
type DayResolution struct {
	Date           time.Time
	Kind           DayKind
	Credit         decimal.Decimal // contribution to the monthly working-day count
	ShowAttendance bool
	Events         []Event
}

// IsWorkingDay reports whether the date counts toward the monthly working days.
func (d DayResolution) IsWorkingDay() bool {
	return d.Credit.IsPositive()
}

// MonthSummary - Resolved month
type MonthSummary struct {
	CompanyID   string
	Month       Month
	WorkingDays decimal.Decimal
	Holidays    int
	HalfDays    int
	OffDays     int
	Days        []DayResolution
}
