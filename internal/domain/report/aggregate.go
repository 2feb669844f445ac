package report

import (
	"time"

	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/employee"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// NewEmployeeSalaryRow applies basis to one employee's counts
func NewEmployeeSalaryRow(basis payroll.Basis, e employee.Employee, c attendance.Counts) EmployeeSalaryRow {
	result := payroll.Calculate(basis, e.WageRate, c.Present, c.ShortLeave)
	return EmployeeSalaryRow{
		EmployeeID:        e.ID,
		Name:              e.Name,
		Rank:              e.Rank,
		MonthlySalary:     e.WageRate,
		PresentDays:       c.Present,
		ShortLeaveDays:    c.ShortLeave,
		LeaveDays:         c.Leave,
		TotalWorkingDays:  result.TotalWorkingDays,
		DailyRate:         result.DailyRate,
		ActualWorkingDays: result.ActualWorkingDays,
		CalculatedSalary:  result.CalculatedSalary,
	}
}

// Aggregate builds the report rows in employee order and their stats.
// Every employee shares the same basis.
func Aggregate(companyID string, basis payroll.Basis, employees []employee.Employee, records []attendance.Record, generatedAt time.Time) ReportData {
	data := EmptyReport(companyID, basis, generatedAt)
	if len(employees) == 0 {
		return data
	}

	counts := attendance.Tally(records)
	rows := make([]EmployeeSalaryRow, 0, len(employees))

	var (
		totalActual    = decimal.Zero
		totalDailyRate = decimal.Zero
	)

	for _, e := range employees {
		row := NewEmployeeSalaryRow(basis, e, counts[e.ID])
		rows = append(rows, row)

		data.Stats.TotalCalculatedSalary = data.Stats.TotalCalculatedSalary.Add(row.CalculatedSalary)
		data.Stats.TotalBudgetSalary = data.Stats.TotalBudgetSalary.Add(row.MonthlySalary)
		data.Stats.TotalPresentDays += row.PresentDays
		data.Stats.TotalShortLeaveDays += row.ShortLeaveDays
		data.Stats.TotalLeaveDays += row.LeaveDays
		totalActual = totalActual.Add(row.ActualWorkingDays)
		totalDailyRate = totalDailyRate.Add(row.DailyRate)
	}

	n := decimal.NewFromInt(int64(len(rows)))
	data.EmployeeData = rows
	data.Stats.EmployeeCount = len(rows)
	data.Stats.AverageAttendance = totalActual.Div(n)
	data.Stats.AverageDailyRate = totalDailyRate.Div(n)

	return data
}
