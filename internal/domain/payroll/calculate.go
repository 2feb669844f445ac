package payroll

import (
	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/company"
	"github.com/shopspring/decimal"
)

var shortLeaveCredit = decimal.New(5, -1)

// NewBasis picks the working-day count and divisor for a month.
// An override replaces the calendar count; its DailyRateDivisor wins when positive.
func NewBasis(month calendar.Month, settings company.WorkingSettings, calendarDays decimal.Decimal, override *company.MonthlyWorkingDaysOverride) Basis {
	basis := Basis{
		Month:            month,
		TotalWorkingDays: calendarDays,
		Policy:           settings.DivisorPolicy,
	}
	if !basis.Policy.IsValid() {
		basis.Policy = company.DivisorPolicyDynamicCalendar
	}

	if override != nil {
		basis.Overridden = true
		basis.TotalWorkingDays = override.WorkingDaysCount
		if override.DailyRateDivisor.IsPositive() {
			basis.Divisor = override.DailyRateDivisor
			return basis
		}
	}

	switch basis.Policy {
	case company.DivisorPolicyFixedDivisor:
		basis.Divisor = settings.SalaryDivisor
	default:
		basis.Divisor = basis.TotalWorkingDays
	}
	return basis
}

// ActualWorkingDays credits a full day per present day and half a day per short leave
func ActualWorkingDays(presentDays, shortLeaveDays int) decimal.Decimal {
	return decimal.NewFromInt(int64(presentDays)).
		Add(decimal.NewFromInt(int64(shortLeaveDays)).Mul(shortLeaveCredit))
}

// Calculate applies the basis to one employee. No rounding is applied.
// A month without working days pays nothing, whatever the divisor.
func Calculate(basis Basis, monthlySalary decimal.Decimal, presentDays, shortLeaveDays int) SalaryCalculationResult {
	dailyRate := decimal.Zero
	if !basis.Divisor.IsZero() && !basis.TotalWorkingDays.IsZero() {
		dailyRate = monthlySalary.Div(basis.Divisor)
	}

	actual := ActualWorkingDays(presentDays, shortLeaveDays)

	return SalaryCalculationResult{
		TotalWorkingDays:  basis.TotalWorkingDays,
		DailyRate:         dailyRate,
		ActualWorkingDays: actual,
		CalculatedSalary:  dailyRate.Mul(actual),
	}
}
