package attendance

import (
	"context"
	"time"
)

// AttendanceService marks daily attendance. Writes invalidate the company's cached reports.
type AttendanceService interface {
	// MarkAttendance upserts one mark; not_set clears it
	MarkAttendance(ctx context.Context, companyID string, req MarkAttendanceRequest) (AttendanceResponse, error)

	// BulkMarkAttendance applies one status to many employees on one date
	BulkMarkAttendance(ctx context.Context, companyID string, req BulkMarkAttendanceRequest) (BulkMarkResponse, error)

	ClearAttendance(ctx context.Context, companyID string, employeeID string, date string) error

	// DailySheet lists active employees with their mark and whether the date takes attendance
	DailySheet(ctx context.Context, companyID string, date string) (DailySheetResponse, error)

	// AutoMarkHolidayAttendance marks all active employees present when date has a participating holiday
	AutoMarkHolidayAttendance(ctx context.Context, companyID string, date time.Time) (AutoMarkResponse, error)
}
