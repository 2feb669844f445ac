package company

import (
	"context"

	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/calendar"
)

// SettingsService manages the per-company configuration the calendar and payroll read.
// Every write invalidates the company's calendar and report caches.
type SettingsService interface {
	// Weekly pattern
	GetWorkingDayConfig(ctx context.Context, companyID string) (calendar.WorkingDayConfigResponse, error)
	UpdateWorkingDayConfig(ctx context.Context, companyID string, req calendar.UpdateWorkingDayConfigRequest) (calendar.WorkingDayConfigResponse, error)

	// Working settings
	GetWorkingSettings(ctx context.Context, companyID string) (WorkingSettingsResponse, error)
	UpdateWorkingSettings(ctx context.Context, companyID string, req UpdateWorkingSettingsRequest) (WorkingSettingsResponse, error)

	// Monthly overrides
	GetMonthlyOverride(ctx context.Context, companyID string, month calendar.Month) (MonthlyOverrideResponse, error)
	UpsertMonthlyOverride(ctx context.Context, companyID string, req UpsertMonthlyOverrideRequest) (MonthlyOverrideResponse, error)
	DeleteMonthlyOverride(ctx context.Context, companyID string, month calendar.Month) error
}
