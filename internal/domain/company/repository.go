package company

import (
	"context"

	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/calendar"
)

// SettingsRepository stores company working settings and monthly overrides
type SettingsRepository interface {
	// GetWorkingSettings returns ErrWorkingSettingsNotFound when the company has no row
	GetWorkingSettings(ctx context.Context, companyID string) (WorkingSettings, error)
	UpsertWorkingSettings(ctx context.Context, settings WorkingSettings) (WorkingSettings, error)

	// GetMonthlyOverride returns ErrMonthlyOverrideNotFound when no override exists
	GetMonthlyOverride(ctx context.Context, companyID string, month calendar.Month) (MonthlyWorkingDaysOverride, error)
	UpsertMonthlyOverride(ctx context.Context, override MonthlyWorkingDaysOverride) (MonthlyWorkingDaysOverride, error)
	DeleteMonthlyOverride(ctx context.Context, companyID string, month calendar.Month) error
}
