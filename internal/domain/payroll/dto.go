package payroll

import (
	"github.com/cmlabs-hris/hris-payroll-engine/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CalculateSalaryRequest struct {
	Month          string          `json:"month"`
	MonthlySalary  decimal.Decimal `json:"monthly_salary"`
	PresentDays    int             `json:"present_days"`
	ShortLeaveDays int             `json:"short_leave_days"`
}

func (r *CalculateSalaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidMonth(r.Month); !ok {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be in YYYY-MM format"})
	}
	if r.PresentDays < 0 {
		errs = append(errs, validator.ValidationError{Field: "present_days", Message: "must be non-negative"})
	}
	if r.ShortLeaveDays < 0 {
		errs = append(errs, validator.ValidationError{Field: "short_leave_days", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SalaryCalculationResponse struct {
	Month             string          `json:"month"`
	DivisorPolicy     string          `json:"divisor_policy"`
	Divisor           decimal.Decimal `json:"divisor"`
	TotalWorkingDays  decimal.Decimal `json:"total_working_days"`
	DailyRate         decimal.Decimal `json:"daily_rate"`
	ActualWorkingDays decimal.Decimal `json:"actual_working_days"`
	CalculatedSalary  decimal.Decimal `json:"calculated_salary"`
}

func NewSalaryCalculationResponse(basis Basis, r SalaryCalculationResult) SalaryCalculationResponse {
	return SalaryCalculationResponse{
		Month:             basis.Month.Key(),
		DivisorPolicy:     string(basis.Policy),
		Divisor:           basis.Divisor,
		TotalWorkingDays:  r.TotalWorkingDays,
		DailyRate:         r.DailyRate,
		ActualWorkingDays: r.ActualWorkingDays,
		CalculatedSalary:  r.CalculatedSalary,
	}
}
