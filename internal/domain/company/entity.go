package company

import (
	"time"

	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/calendar"
	"github.com/shopspring/decimal"
)

// DivisorPolicy enum
type DivisorPolicy string

const (
	// DivisorPolicyDynamicCalendar divides the monthly salary by the resolved working days of the month
	DivisorPolicyDynamicCalendar DivisorPolicy = "dynamic_calendar"
	// DivisorPolicyFixedDivisor divides the monthly salary by SalaryDivisor in every month
	DivisorPolicyFixedDivisor DivisorPolicy = "fixed_divisor"
)

func (p DivisorPolicy) IsValid() bool {
	return p == DivisorPolicyDynamicCalendar || p == DivisorPolicyFixedDivisor
}

const (
	DefaultWorkingDaysPerWeek  = 5
	DefaultWorkingDaysPerMonth = 22
	DefaultSalaryDivisor       = 26
)

// WorkingSettings - Company payroll day settings
type WorkingSettings struct {
	ID                         string
	CompanyID                  string
	DefaultWorkingDaysPerWeek  int
	DefaultWorkingDaysPerMonth int // informational
	SalaryDivisor              decimal.Decimal
	WeekendSaturday            bool
	WeekendSunday              bool
	DivisorPolicy              DivisorPolicy
	CreatedAt                  time.Time
	UpdatedAt                  time.Time
}

// DefaultWorkingSettings is used while the company has no stored row
func DefaultWorkingSettings(companyID string) WorkingSettings {
	return WorkingSettings{
		CompanyID:                  companyID,
		DefaultWorkingDaysPerWeek:  DefaultWorkingDaysPerWeek,
		DefaultWorkingDaysPerMonth: DefaultWorkingDaysPerMonth,
		SalaryDivisor:              decimal.NewFromInt(DefaultSalaryDivisor),
		WeekendSaturday:            true,
		WeekendSunday:              true,
		DivisorPolicy:              DivisorPolicyDynamicCalendar,
	}
}

// MonthlyWorkingDaysOverride - Explicit working-day figures for one company month.
// A zero DailyRateDivisor means "use the divisor policy".
type MonthlyWorkingDaysOverride struct {
	ID               string
	CompanyID        string
	Month            calendar.Month
	WorkingDaysCount decimal.Decimal
	DailyRateDivisor decimal.Decimal
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
