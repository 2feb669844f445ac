package report

import (
	"time"

	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// EmployeeSalaryRow - One employee's salary for the month
type EmployeeSalaryRow struct {
	EmployeeID        string          `json:"employee_id"`
	Name              string          `json:"name"`
	Rank              string          `json:"rank"`
	MonthlySalary     decimal.Decimal `json:"monthly_salary"`
	PresentDays       int             `json:"present_days"`
	ShortLeaveDays    int             `json:"short_leave_days"`
	LeaveDays         int             `json:"leave_days"`
	TotalWorkingDays  decimal.Decimal `json:"total_working_days"`
	DailyRate         decimal.Decimal `json:"daily_rate"`
	ActualWorkingDays decimal.Decimal `json:"actual_working_days"`
	CalculatedSalary  decimal.Decimal `json:"calculated_salary"`
}

type ReportStats struct {
	EmployeeCount         int             `json:"employee_count"`
	TotalWorkingDays      decimal.Decimal `json:"total_working_days"`
	TotalCalculatedSalary decimal.Decimal `json:"total_calculated_salary"`
	TotalBudgetSalary     decimal.Decimal `json:"total_budget_salary"`
	AverageAttendance     decimal.Decimal `json:"average_attendance"`
	AverageDailyRate      decimal.Decimal `json:"average_daily_rate"`
	TotalPresentDays      int             `json:"total_present_days"`
	TotalShortLeaveDays   int             `json:"total_short_leave_days"`
	TotalLeaveDays        int             `json:"total_leave_days"`
}

// ReportData - Salary report of a company month. Cached as a whole.
type ReportData struct {
	CompanyID     string              `json:"company_id"`
	Month         calendar.Month      `json:"-"`
	Period        string              `json:"month"`
	DivisorPolicy string              `json:"divisor_policy"`
	Divisor       decimal.Decimal     `json:"divisor"`
	GeneratedAt   time.Time           `json:"generated_at"`
	EmployeeData  []EmployeeSalaryRow `json:"employee_data"`
	Stats         ReportStats         `json:"stats"`
}

// Row returns the row of employeeID, if present
func (d ReportData) Row(employeeID string) (EmployeeSalaryRow, bool) {
	for _, r := range d.EmployeeData {
		if r.EmployeeID == employeeID {
			return r, true
		}
	}
	return EmployeeSalaryRow{}, false
}

// EmptyReport is returned for a company without active employees
func EmptyReport(companyID string, basis payroll.Basis, generatedAt time.Time) ReportData {
	return ReportData{
		CompanyID:     companyID,
		Month:         basis.Month,
		Period:        basis.Month.Key(),
		DivisorPolicy: string(basis.Policy),
		Divisor:       basis.Divisor,
		GeneratedAt:   generatedAt,
		EmployeeData:  []EmployeeSalaryRow{},
		Stats: ReportStats{
			TotalWorkingDays:      basis.TotalWorkingDays,
			TotalCalculatedSalary: decimal.Zero,
			TotalBudgetSalary:     decimal.Zero,
			AverageAttendance:     decimal.Zero,
			AverageDailyRate:      decimal.Zero,
		},
	}
}
