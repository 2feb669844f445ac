package company

import (
	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== WORKING SETTINGS DTOs ==========

type WorkingSettingsResponse struct {
	CompanyID                  string          `json:"company_id"`
	DefaultWorkingDaysPerWeek  int             `json:"default_working_days_per_week"`
	DefaultWorkingDaysPerMonth int             `json:"default_working_days_per_month"`
	SalaryDivisor              decimal.Decimal `json:"salary_divisor"`
	WeekendSaturday            bool            `json:"weekend_saturday"`
	WeekendSunday              bool            `json:"weekend_sunday"`
	DivisorPolicy              string          `json:"divisor_policy"`
}

func NewWorkingSettingsResponse(s WorkingSettings) WorkingSettingsResponse {
	return WorkingSettingsResponse{
		CompanyID:                  s.CompanyID,
		DefaultWorkingDaysPerWeek:  s.DefaultWorkingDaysPerWeek,
		DefaultWorkingDaysPerMonth: s.DefaultWorkingDaysPerMonth,
		SalaryDivisor:              s.SalaryDivisor,
		WeekendSaturday:            s.WeekendSaturday,
		WeekendSunday:              s.WeekendSunday,
		DivisorPolicy:              string(s.DivisorPolicy),
	}
}

type UpdateWorkingSettingsRequest struct {
	DefaultWorkingDaysPerWeek  *int             `json:"default_working_days_per_week,omitempty"`
	DefaultWorkingDaysPerMonth *int             `json:"default_working_days_per_month,omitempty"`
	SalaryDivisor              *decimal.Decimal `json:"salary_divisor,omitempty"`
	WeekendSaturday            *bool            `json:"weekend_saturday,omitempty"`
	WeekendSunday              *bool            `json:"weekend_sunday,omitempty"`
	DivisorPolicy              *string          `json:"divisor_policy,omitempty"`
}

func (r *UpdateWorkingSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.DefaultWorkingDaysPerWeek != nil && (*r.DefaultWorkingDaysPerWeek < 1 || *r.DefaultWorkingDaysPerWeek > 7) {
		errs = append(errs, validator.ValidationError{Field: "default_working_days_per_week", Message: "must be between 1 and 7"})
	}
	if r.DefaultWorkingDaysPerMonth != nil && (*r.DefaultWorkingDaysPerMonth < 1 || *r.DefaultWorkingDaysPerMonth > 31) {
		errs = append(errs, validator.ValidationError{Field: "default_working_days_per_month", Message: "must be between 1 and 31"})
	}
	if r.SalaryDivisor != nil && !r.SalaryDivisor.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "salary_divisor", Message: "must be greater than zero"})
	}
	if r.DivisorPolicy != nil && !DivisorPolicy(*r.DivisorPolicy).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "divisor_policy", Message: "must be 'dynamic_calendar' or 'fixed_divisor'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Apply copies the set fields onto s
func (r *UpdateWorkingSettingsRequest) Apply(s WorkingSettings) WorkingSettings {
	if r.DefaultWorkingDaysPerWeek != nil {
		s.DefaultWorkingDaysPerWeek = *r.DefaultWorkingDaysPerWeek
	}
	if r.DefaultWorkingDaysPerMonth != nil {
		s.DefaultWorkingDaysPerMonth = *r.DefaultWorkingDaysPerMonth
	}
	if r.SalaryDivisor != nil {
		s.SalaryDivisor = *r.SalaryDivisor
	}
	if r.WeekendSaturday != nil {
		s.WeekendSaturday = *r.WeekendSaturday
	}
	if r.WeekendSunday != nil {
		s.WeekendSunday = *r.WeekendSunday
	}
	if r.DivisorPolicy != nil {
		s.DivisorPolicy = DivisorPolicy(*r.DivisorPolicy)
	}
	return s
}

// ========== MONTHLY OVERRIDE DTOs ==========

type UpsertMonthlyOverrideRequest struct {
	Month            string           `json:"-"`
	WorkingDaysCount decimal.Decimal  `json:"working_days_count"`
	DailyRateDivisor *decimal.Decimal `json:"daily_rate_divisor,omitempty"`
}

func (r *UpsertMonthlyOverrideRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidMonth(r.Month); !ok {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be in YYYY-MM format"})
	}
	if !validator.IsNonNegative(r.WorkingDaysCount) {
		errs = append(errs, validator.ValidationError{Field: "working_days_count", Message: "must be non-negative"})
	} else if !r.WorkingDaysCount.Mul(decimal.NewFromInt(2)).IsInteger() {
		errs = append(errs, validator.ValidationError{Field: "working_days_count", Message: "must be a multiple of 0.5"})
	}
	if r.DailyRateDivisor != nil && !validator.IsNonNegative(*r.DailyRateDivisor) {
		errs = append(errs, validator.ValidationError{Field: "daily_rate_divisor", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MonthlyOverrideResponse struct {
	CompanyID        string          `json:"company_id"`
	Month            string          `json:"month"`
	WorkingDaysCount decimal.Decimal `json:"working_days_count"`
	DailyRateDivisor decimal.Decimal `json:"daily_rate_divisor"`
}

func NewMonthlyOverrideResponse(o MonthlyWorkingDaysOverride) MonthlyOverrideResponse {
	return MonthlyOverrideResponse{
		CompanyID:        o.CompanyID,
		Month:            o.Month.Key(),
		WorkingDaysCount: o.WorkingDaysCount,
		DailyRateDivisor: o.DailyRateDivisor,
	}
}

// ParsedMonth returns the month of the request
func (r *UpsertMonthlyOverrideRequest) ParsedMonth() (calendar.Month, error) {
	return calendar.ParseMonth(r.Month)
}
