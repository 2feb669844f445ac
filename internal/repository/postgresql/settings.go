package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/company"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type settingsRepository struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) company.SettingsRepository {
	return &settingsRepository{db: db}
}

// ========== WORKING SETTINGS ==========

func (r *settingsRepository) GetWorkingSettings(ctx context.Context, companyID string) (company.WorkingSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, default_working_days_per_week, default_working_days_per_month,
			   salary_divisor, weekend_saturday, weekend_sunday, divisor_policy,
			   created_at, updated_at
		FROM company_working_settings
		WHERE company_id = $1
	`

	var s company.WorkingSettings
	err := q.QueryRow(ctx, query, companyID).Scan(
		&s.ID, &s.CompanyID, &s.DefaultWorkingDaysPerWeek, &s.DefaultWorkingDaysPerMonth,
		&s.SalaryDivisor, &s.WeekendSaturday, &s.WeekendSunday, &s.DivisorPolicy,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.WorkingSettings{}, company.ErrWorkingSettingsNotFound
		}
		return company.WorkingSettings{}, fmt.Errorf("failed to get working settings: %w", err)
	}

	return s, nil
}

func (r *settingsRepository) UpsertWorkingSettings(ctx context.Context, settings company.WorkingSettings) (company.WorkingSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO company_working_settings (
			company_id, default_working_days_per_week, default_working_days_per_month,
			salary_divisor, weekend_saturday, weekend_sunday, divisor_policy
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (company_id) DO UPDATE SET
			default_working_days_per_week = EXCLUDED.default_working_days_per_week,
			default_working_days_per_month = EXCLUDED.default_working_days_per_month,
			salary_divisor = EXCLUDED.salary_divisor,
			weekend_saturday = EXCLUDED.weekend_saturday,
			weekend_sunday = EXCLUDED.weekend_sunday,
			divisor_policy = EXCLUDED.divisor_policy,
			updated_at = NOW()
		RETURNING id, company_id, default_working_days_per_week, default_working_days_per_month,
			salary_divisor, weekend_saturday, weekend_sunday, divisor_policy,
			created_at, updated_at
	`

	var s company.WorkingSettings
	err := q.QueryRow(ctx, query,
		settings.CompanyID, settings.DefaultWorkingDaysPerWeek, settings.DefaultWorkingDaysPerMonth,
		settings.SalaryDivisor, settings.WeekendSaturday, settings.WeekendSunday, settings.DivisorPolicy,
	).Scan(
		&s.ID, &s.CompanyID, &s.DefaultWorkingDaysPerWeek, &s.DefaultWorkingDaysPerMonth,
		&s.SalaryDivisor, &s.WeekendSaturday, &s.WeekendSunday, &s.DivisorPolicy,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return company.WorkingSettings{}, fmt.Errorf("failed to upsert working settings: %w", err)
	}

	return s, nil
}

// ========== MONTHLY OVERRIDES ==========

func scanOverride(row pgx.Row) (company.MonthlyWorkingDaysOverride, error) {
	var (
		o     company.MonthlyWorkingDaysOverride
		month string
	)
	if err := row.Scan(
		&o.ID, &o.CompanyID, &month, &o.WorkingDaysCount, &o.DailyRateDivisor, &o.CreatedAt, &o.UpdatedAt,
	); err != nil {
		return company.MonthlyWorkingDaysOverride{}, err
	}

	m, err := calendar.ParseMonth(month)
	if err != nil {
		return company.MonthlyWorkingDaysOverride{}, err
	}
	o.Month = m

	return o, nil
}

func (r *settingsRepository) GetMonthlyOverride(ctx context.Context, companyID string, month calendar.Month) (company.MonthlyWorkingDaysOverride, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, month, working_days_count, daily_rate_divisor, created_at, updated_at
		FROM monthly_working_days
		WHERE company_id = $1 AND month = $2
	`

	o, err := scanOverride(q.QueryRow(ctx, query, companyID, month.Key()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.MonthlyWorkingDaysOverride{}, company.ErrMonthlyOverrideNotFound
		}
		return company.MonthlyWorkingDaysOverride{}, fmt.Errorf("failed to get monthly override: %w", err)
	}

	return o, nil
}

func (r *settingsRepository) UpsertMonthlyOverride(ctx context.Context, override company.MonthlyWorkingDaysOverride) (company.MonthlyWorkingDaysOverride, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO monthly_working_days (company_id, month, working_days_count, daily_rate_divisor)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (company_id, month) DO UPDATE SET
			working_days_count = EXCLUDED.working_days_count,
			daily_rate_divisor = EXCLUDED.daily_rate_divisor,
			updated_at = NOW()
		RETURNING id, company_id, month, working_days_count, daily_rate_divisor, created_at, updated_at
	`

	o, err := scanOverride(q.QueryRow(ctx, query,
		override.CompanyID, override.Month.Key(), override.WorkingDaysCount, override.DailyRateDivisor,
	))
	if err != nil {
		return company.MonthlyWorkingDaysOverride{}, fmt.Errorf("failed to upsert monthly override: %w", err)
	}

	return o, nil
}

func (r *settingsRepository) DeleteMonthlyOverride(ctx context.Context, companyID string, month calendar.Month) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM monthly_working_days WHERE company_id = $1 AND month = $2`, companyID, month.Key())
	if err != nil {
		return fmt.Errorf("failed to delete monthly override: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return company.ErrMonthlyOverrideNotFound
	}

	return nil
}
