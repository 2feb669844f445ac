package company

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/company"
	"github.com/shopspring/decimal"
)

type SettingsServiceImpl struct {
	settingsRepo company.SettingsRepository
	configRepo   calendar.WorkingDayConfigRepository
	calendarSvc  calendar.Service
}

func NewSettingsService(
	settingsRepo company.SettingsRepository,
	configRepo calendar.WorkingDayConfigRepository,
	calendarSvc calendar.Service,
) company.SettingsService {
	return &SettingsServiceImpl{
		settingsRepo: settingsRepo,
		configRepo:   configRepo,
		calendarSvc:  calendarSvc,
	}
}

// ========== WEEKLY PATTERN ==========

func (s *SettingsServiceImpl) workingDayConfig(ctx context.Context, companyID string) (calendar.WorkingDayConfig, error) {
	cfg, err := s.configRepo.GetByCompanyID(ctx, companyID)
	if err != nil {
		if errors.Is(err, calendar.ErrWorkingDayConfigNotFound) {
			return calendar.DefaultWorkingDayConfig(companyID), nil
		}
		return calendar.WorkingDayConfig{}, fmt.Errorf("failed to get working day config: %w", err)
	}
	return cfg, nil
}

func (s *SettingsServiceImpl) GetWorkingDayConfig(ctx context.Context, companyID string) (calendar.WorkingDayConfigResponse, error) {
	cfg, err := s.workingDayConfig(ctx, companyID)
	if err != nil {
		return calendar.WorkingDayConfigResponse{}, err
	}
	return calendar.NewWorkingDayConfigResponse(cfg), nil
}

func (s *SettingsServiceImpl) UpdateWorkingDayConfig(ctx context.Context, companyID string, req calendar.UpdateWorkingDayConfigRequest) (calendar.WorkingDayConfigResponse, error) {
	current, err := s.workingDayConfig(ctx, companyID)
	if err != nil {
		return calendar.WorkingDayConfigResponse{}, err
	}

	saved, err := s.configRepo.Upsert(ctx, req.Apply(current))
	if err != nil {
		return calendar.WorkingDayConfigResponse{}, fmt.Errorf("failed to save working day config: %w", err)
	}

	s.calendarSvc.InvalidateCompany(companyID)
	slog.Info("Working day config updated", "company_id", companyID, "working_days_per_week", saved.WorkingDaysPerWeek())

	return calendar.NewWorkingDayConfigResponse(saved), nil
}

// ========== WORKING SETTINGS ==========

func (s *SettingsServiceImpl) workingSettings(ctx context.Context, companyID string) (company.WorkingSettings, error) {
	settings, err := s.settingsRepo.GetWorkingSettings(ctx, companyID)
	if err != nil {
		if errors.Is(err, company.ErrWorkingSettingsNotFound) {
			return company.DefaultWorkingSettings(companyID), nil
		}
		return company.WorkingSettings{}, fmt.Errorf("failed to get working settings: %w", err)
	}
	return settings, nil
}

func (s *SettingsServiceImpl) GetWorkingSettings(ctx context.Context, companyID string) (company.WorkingSettingsResponse, error) {
	settings, err := s.workingSettings(ctx, companyID)
	if err != nil {
		return company.WorkingSettingsResponse{}, err
	}
	return company.NewWorkingSettingsResponse(settings), nil
}

func (s *SettingsServiceImpl) UpdateWorkingSettings(ctx context.Context, companyID string, req company.UpdateWorkingSettingsRequest) (company.WorkingSettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return company.WorkingSettingsResponse{}, err
	}

	current, err := s.workingSettings(ctx, companyID)
	if err != nil {
		return company.WorkingSettingsResponse{}, err
	}

	saved, err := s.settingsRepo.UpsertWorkingSettings(ctx, req.Apply(current))
	if err != nil {
		return company.WorkingSettingsResponse{}, fmt.Errorf("failed to save working settings: %w", err)
	}

	s.calendarSvc.InvalidateCompany(companyID)
	slog.Info("Working settings updated",
		"company_id", companyID,
		"divisor_policy", saved.DivisorPolicy,
		"salary_divisor", saved.SalaryDivisor.String(),
	)

	return company.NewWorkingSettingsResponse(saved), nil
}

// ========== MONTHLY OVERRIDES ==========

func (s *SettingsServiceImpl) GetMonthlyOverride(ctx context.Context, companyID string, month calendar.Month) (company.MonthlyOverrideResponse, error) {
	override, err := s.settingsRepo.GetMonthlyOverride(ctx, companyID, month)
	if err != nil {
		return company.MonthlyOverrideResponse{}, err
	}
	return company.NewMonthlyOverrideResponse(override), nil
}

func (s *SettingsServiceImpl) UpsertMonthlyOverride(ctx context.Context, companyID string, req company.UpsertMonthlyOverrideRequest) (company.MonthlyOverrideResponse, error) {
	if err := req.Validate(); err != nil {
		return company.MonthlyOverrideResponse{}, err
	}

	month, err := req.ParsedMonth()
	if err != nil {
		return company.MonthlyOverrideResponse{}, err
	}

	divisor := decimal.Zero
	if req.DailyRateDivisor != nil {
		divisor = *req.DailyRateDivisor
	}

	saved, err := s.settingsRepo.UpsertMonthlyOverride(ctx, company.MonthlyWorkingDaysOverride{
		CompanyID:        companyID,
		Month:            month,
		WorkingDaysCount: req.WorkingDaysCount,
		DailyRateDivisor: divisor,
	})
	if err != nil {
		return company.MonthlyOverrideResponse{}, fmt.Errorf("failed to save monthly override: %w", err)
	}

	s.calendarSvc.InvalidateCompany(companyID)
	slog.Info("Monthly override saved", "company_id", companyID, "month", month.Key(), "working_days", saved.WorkingDaysCount.String())

	return company.NewMonthlyOverrideResponse(saved), nil
}

func (s *SettingsServiceImpl) DeleteMonthlyOverride(ctx context.Context, companyID string, month calendar.Month) error {
	if err := s.settingsRepo.DeleteMonthlyOverride(ctx, companyID, month); err != nil {
		return err
	}

	s.calendarSvc.InvalidateCompany(companyID)
	slog.Info("Monthly override deleted", "company_id", companyID, "month", month.Key())
	return nil
}
