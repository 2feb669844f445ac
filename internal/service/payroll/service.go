package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/company"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type PayrollServiceImpl struct {
	settingsRepo company.SettingsRepository
	calendarSvc  calendar.Service
}

func NewPayrollService(
	settingsRepo company.SettingsRepository,
	calendarSvc calendar.Service,
) payroll.Service {
	return &PayrollServiceImpl{
		settingsRepo: settingsRepo,
		calendarSvc:  calendarSvc,
	}
}

// ========== BASIS ==========

func (s *PayrollServiceImpl) ResolveBasis(ctx context.Context, companyID string, month calendar.Month) (payroll.Basis, error) {
	var (
		settings     company.WorkingSettings
		override     *company.MonthlyWorkingDaysOverride
		calendarDays decimal.Decimal
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		settings, err = s.settingsRepo.GetWorkingSettings(gCtx, companyID)
		if err != nil {
			if errors.Is(err, company.ErrWorkingSettingsNotFound) {
				settings = company.DefaultWorkingSettings(companyID)
				return nil
			}
			return fmt.Errorf("failed to get working settings: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		o, err := s.settingsRepo.GetMonthlyOverride(gCtx, companyID, month)
		if err != nil {
			if errors.Is(err, company.ErrMonthlyOverrideNotFound) {
				return nil
			}
			return fmt.Errorf("failed to get monthly override: %w", err)
		}
		override = &o
		return nil
	})

	g.Go(func() error {
		var err error
		calendarDays, err = s.calendarSvc.WorkingDaysInMonth(gCtx, companyID, month)
		if err != nil {
			return fmt.Errorf("failed to resolve working days: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return payroll.Basis{}, err
	}

	basis := payroll.NewBasis(month, settings, calendarDays, override)

	slog.Debug("Payroll basis resolved",
		"company_id", companyID,
		"month", month.Key(),
		"policy", basis.Policy,
		"total_working_days", basis.TotalWorkingDays.String(),
		"divisor", basis.Divisor.String(),
		"overridden", basis.Overridden,
	)

	return basis, nil
}

// ========== CALCULATION ==========

func (s *PayrollServiceImpl) CalculateEmployeeSalary(
	ctx context.Context,
	companyID string,
	month calendar.Month,
	monthlySalary decimal.Decimal,
	presentDays, shortLeaveDays int,
) (payroll.SalaryCalculationResult, error) {
	basis, err := s.ResolveBasis(ctx, companyID, month)
	if err != nil {
		return payroll.SalaryCalculationResult{}, err
	}

	return payroll.Calculate(basis, monthlySalary, presentDays, shortLeaveDays), nil
}

func (s *PayrollServiceImpl) Calculate(ctx context.Context, companyID string, req payroll.CalculateSalaryRequest) (payroll.SalaryCalculationResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SalaryCalculationResponse{}, err
	}

	month, err := calendar.ParseMonth(req.Month)
	if err != nil {
		return payroll.SalaryCalculationResponse{}, err
	}

	basis, err := s.ResolveBasis(ctx, companyID, month)
	if err != nil {
		return payroll.SalaryCalculationResponse{}, err
	}

	result := payroll.Calculate(basis, req.MonthlySalary, req.PresentDays, req.ShortLeaveDays)
	return payroll.NewSalaryCalculationResponse(basis, result), nil
}
