package payroll

import (
	"context"

	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/calendar"
	"github.com/shopspring/decimal"
)

type Service interface {
	// ResolveBasis returns the working days and divisor of a company month
	ResolveBasis(ctx context.Context, companyID string, month calendar.Month) (Basis, error)

	CalculateEmployeeSalary(ctx context.Context, companyID string, month calendar.Month, monthlySalary decimal.Decimal, presentDays, shortLeaveDays int) (SalaryCalculationResult, error)

	// Calculate is CalculateEmployeeSalary for a validated request
	Calculate(ctx context.Context, companyID string, req CalculateSalaryRequest) (SalaryCalculationResponse, error)
}
