package calendar

import (
	"fmt"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

// Month identifies a calendar month
type Month struct {
	Year  int
	Month time.Month
}

func NewMonth(year int, month time.Month) Month {
	return Month{Year: year, Month: month}
}

// MonthOf returns the month containing t
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// ParseMonth parses "YYYY-MM"
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(MonthLayout, s)
	if err != nil {
		return Month{}, fmt.Errorf("%w: %q", ErrInvalidMonth, s)
	}
	return MonthOf(t), nil
}

// Start is the first day of the month at 00:00 UTC
func (m Month) Start() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End is the last day of the month at 00:00 UTC
func (m Month) End() time.Time {
	return m.Start().AddDate(0, 1, -1)
}

// Days lists every date of the month in order
func (m Month) Days() []time.Time {
	end := m.End()
	days := make([]time.Time, 0, end.Day())
	for d := m.Start(); !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

func (m Month) Key() string {
	return m.Start().Format(MonthLayout)
}

func (m Month) String() string {
	return m.Key()
}

func (m Month) IsZero() bool {
	return m.Year == 0 && m.Month == 0
}

// DateOnly truncates t to its calendar day in UTC
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses "YYYY-MM-DD" into a UTC date
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// CacheKey is the calendar cache key for a company month
func CacheKey(companyID string, month Month) string {
	return CacheKeyPrefix(companyID) + month.Key()
}

// CacheKeyPrefix matches every cached month of a company
func CacheKeyPrefix(companyID string) string {
	return "calendar:" + companyID + ":"
}
