package payroll

import (
	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/company"
	"github.com/shopspring/decimal"
)

// Basis - Month-level inputs shared by every employee of a company
type Basis struct {
	Month            calendar.Month
	TotalWorkingDays decimal.Decimal
	Divisor          decimal.Decimal
	Policy           company.DivisorPolicy
	Overridden       bool // a MonthlyWorkingDaysOverride was applied
}

// SalaryCalculationResult - Derived, never persisted
type SalaryCalculationResult struct {
	TotalWorkingDays  decimal.Decimal
	DailyRate         decimal.Decimal
	ActualWorkingDays decimal.Decimal
	CalculatedSalary  decimal.Decimal
}
