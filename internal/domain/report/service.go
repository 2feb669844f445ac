package report

import (
	"context"

	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/calendar"
)

// ReportService produces monthly salary reports
type ReportService interface {
	// FetchReportData returns the cached report or builds it from the store
	FetchReportData(ctx context.Context, companyID string, month calendar.Month) (ReportData, error)

	// EmployeeSalary returns one employee's row with the same basis as the report
	EmployeeSalary(ctx context.Context, companyID string, employeeID string, month calendar.Month) (EmployeeSalaryRow, error)

	// InvalidateCompany drops cached reports of the company
	InvalidateCompany(companyID string)
}
