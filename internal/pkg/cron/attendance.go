package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/calendar"
)

type AttendanceJobs struct {
	eventRepo     calendar.EventRepository
	attendanceSvc attendance.AttendanceService
	now           func() time.Time
}

func NewAttendanceJobs(eventRepo calendar.EventRepository, attendanceSvc attendance.AttendanceService) *AttendanceJobs {
	return &AttendanceJobs{
		eventRepo:     eventRepo,
		attendanceSvc: attendanceSvc,
		now:           time.Now,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("auto_mark_holiday_attendance", 1*time.Hour, j.AutoMarkHolidayAttendance)
}

// AutoMarkHolidayAttendance marks every active employee present on today's holiday.
// Companies are processed independently; one failure does not stop the rest.
func (j *AttendanceJobs) AutoMarkHolidayAttendance(ctx context.Context) error {
	now := j.now().UTC()
	// Only run at midnight (00:00-00:59 UTC)
	if now.Hour() != 0 {
		return nil
	}

	today := calendar.DateOnly(now)
	slog.Info("Cron: Starting holiday attendance job", "date", today.Format(calendar.DateLayout))

	companyIDs, err := j.eventRepo.ListCompanyIDsWithHoliday(ctx, today)
	if err != nil {
		return fmt.Errorf("failed to get companies with holiday: %w", err)
	}

	if len(companyIDs) == 0 {
		slog.Info("Cron: No holidays today")
		return nil
	}

	total := 0
	failed := 0
	for _, companyID := range companyIDs {
		result, err := j.attendanceSvc.AutoMarkHolidayAttendance(ctx, companyID, today)
		if err != nil {
			slog.Error("Cron: Failed to auto-mark holiday attendance", "company_id", companyID, "error", err)
			failed++
			continue
		}
		total += result.Marked
	}

	slog.Info("Cron: Holiday attendance marked", "companies", len(companyIDs), "failed", failed, "count", total)
	return nil
}
