package calendar

import (
	"time"

	"github.com/shopspring/decimal"
)

var (
	fullDayCredit = decimal.NewFromInt(1)
	halfDayCredit = decimal.New(5, -1)
)

// Classify resolves a single date from the weekly pattern and the events stored for that date.
// Only events with AffectsAttendance participate. Precedence: holiday, off_day, then
// working_day or the weekly pattern (halved by half_day).
func Classify(cfg WorkingDayConfig, date time.Time, events []Event) DayResolution {
	var hasHoliday, hasOffDay, hasWorkingDay, hasHalfDay bool
	for _, e := range events {
		if !e.AffectsAttendance {
			continue
		}
		switch e.Type {
		case EventTypeHoliday:
			hasHoliday = true
		case EventTypeOffDay:
			hasOffDay = true
		case EventTypeWorkingDay:
			hasWorkingDay = true
		case EventTypeHalfDay:
			hasHalfDay = true
		}
	}

	res := DayResolution{
		Date:   DateOnly(date),
		Events: events,
	}

	switch {
	case hasHoliday:
		// paid day off
		res.Kind = DayKindHoliday
		res.Credit = fullDayCredit
		res.ShowAttendance = false
	case hasOffDay:
		res.Kind = DayKindOffDay
		res.Credit = decimal.Zero
		res.ShowAttendance = false
	case hasWorkingDay || cfg.IsWorkingWeekday(date.Weekday()):
		res.ShowAttendance = true
		if hasHalfDay {
			res.Kind = DayKindHalfDay
			res.Credit = halfDayCredit
		} else {
			res.Kind = DayKindWorking
			res.Credit = fullDayCredit
		}
	default:
		res.Kind = DayKindOff
		res.Credit = decimal.Zero
		res.ShowAttendance = false
	}

	return res
}

// SummarizeMonth classifies every date of month. eventsByDate is keyed by DateLayout.
func SummarizeMonth(companyID string, cfg WorkingDayConfig, month Month, eventsByDate map[string][]Event) MonthSummary {
	summary := MonthSummary{
		CompanyID:   companyID,
		Month:       month,
		WorkingDays: decimal.Zero,
	}

	for _, day := range month.Days() {
		res := Classify(cfg, day, eventsByDate[day.Format(DateLayout)])
		summary.WorkingDays = summary.WorkingDays.Add(res.Credit)
		switch res.Kind {
		case DayKindHoliday:
			summary.Holidays++
		case DayKindHalfDay:
			summary.HalfDays++
		case DayKindOffDay:
			summary.OffDays++
		}
		summary.Days = append(summary.Days, res)
	}

	return summary
}

// GroupByDate buckets events by their DateLayout key
func GroupByDate(events []Event) map[string][]Event {
	grouped := make(map[string][]Event)
	for _, e := range events {
		key := e.Date.Format(DateLayout)
		grouped[key] = append(grouped[key], e)
	}
	return grouped
}
