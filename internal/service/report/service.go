package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/employee"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/report"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/pkg/cache"
	"golang.org/x/sync/errgroup"
)

type ReportServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	payrollSvc     payroll.Service
	reportCache    *cache.Cache[report.ReportData]
	cacheTTL       time.Duration
	now            func() time.Time
}

func NewReportService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	payrollSvc payroll.Service,
	reportCache *cache.Cache[report.ReportData],
	cacheTTL time.Duration,
) report.ReportService {
	return &ReportServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		payrollSvc:     payrollSvc,
		reportCache:    reportCache,
		cacheTTL:       cacheTTL,
		now:            time.Now,
	}
}

// FetchReportData fails fast: any store error aborts the report and nothing is cached.
func (s *ReportServiceImpl) FetchReportData(ctx context.Context, companyID string, month calendar.Month) (report.ReportData, error) {
	key := report.CacheKey(companyID, month)
	if data, ok := s.reportCache.Get(key); ok {
		slog.Debug("Report cache hit", "company_id", companyID, "month", month.Key())
		return data, nil
	}

	var (
		employees []employee.Employee
		basis     payroll.Basis
	)

	// Employees and the month basis are independent
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		employees, err = s.employeeRepo.GetActiveByCompanyID(gCtx, companyID)
		if err != nil {
			return fmt.Errorf("failed to get active employees: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		basis, err = s.payrollSvc.ResolveBasis(gCtx, companyID, month)
		return err
	})

	if err := g.Wait(); err != nil {
		slog.Error("Failed to build salary report", "company_id", companyID, "month", month.Key(), "error", err)
		return report.ReportData{}, err
	}

	var records []attendance.Record
	if len(employees) > 0 {
		employeeIDs := make([]string, 0, len(employees))
		for _, e := range employees {
			employeeIDs = append(employeeIDs, e.ID)
		}

		var err error
		records, err = s.attendanceRepo.ListByEmployeesInRange(ctx, employeeIDs, month.Start(), month.End())
		if err != nil {
			slog.Error("Failed to build salary report", "company_id", companyID, "month", month.Key(), "error", err)
			return report.ReportData{}, fmt.Errorf("failed to get attendance: %w", err)
		}
	}

	data := report.Aggregate(companyID, basis, employees, records, s.now())
	s.reportCache.Set(key, data, s.cacheTTL)

	slog.Info("Salary report generated",
		"company_id", companyID,
		"month", month.Key(),
		"employees", data.Stats.EmployeeCount,
		"attendance_records", len(records),
		"total_calculated_salary", data.Stats.TotalCalculatedSalary.String(),
	)

	return data, nil
}

func (s *ReportServiceImpl) EmployeeSalary(ctx context.Context, companyID string, employeeID string, month calendar.Month) (report.EmployeeSalaryRow, error) {
	if data, ok := s.reportCache.Get(report.CacheKey(companyID, month)); ok {
		if row, found := data.Row(employeeID); found {
			return row, nil
		}
	}

	var (
		e     employee.Employee
		basis payroll.Basis
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		e, err = s.employeeRepo.GetByID(gCtx, employeeID, companyID)
		return err
	})

	g.Go(func() error {
		var err error
		basis, err = s.payrollSvc.ResolveBasis(gCtx, companyID, month)
		return err
	})

	if err := g.Wait(); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return report.EmployeeSalaryRow{}, err
		}
		return report.EmployeeSalaryRow{}, fmt.Errorf("failed to calculate employee salary: %w", err)
	}

	records, err := s.attendanceRepo.ListByEmployeesInRange(ctx, []string{e.ID}, month.Start(), month.End())
	if err != nil {
		return report.EmployeeSalaryRow{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	return report.NewEmployeeSalaryRow(basis, e, attendance.Tally(records)[e.ID]), nil
}

func (s *ReportServiceImpl) InvalidateCompany(companyID string) {
	removed := s.reportCache.Invalidate(report.CacheKeyPrefix(companyID))
	slog.Debug("Report cache invalidated", "company_id", companyID, "removed", removed)
}
