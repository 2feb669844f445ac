package company

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/company"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCompanyID = "22222222-2222-2222-2222-222222222222"

type fakeSettingsRepo struct {
	settings  map[string]company.WorkingSettings
	overrides map[string]company.MonthlyWorkingDaysOverride
	err       error
	upserts   int
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{
		settings:  map[string]company.WorkingSettings{},
		overrides: map[string]company.MonthlyWorkingDaysOverride{},
	}
}

func (f *fakeSettingsRepo) GetWorkingSettings(ctx context.Context, companyID string) (company.WorkingSettings, error) {
	if f.err != nil {
		return company.WorkingSettings{}, f.err
	}
	s, ok := f.settings[companyID]
	if !ok {
		return company.WorkingSettings{}, company.ErrWorkingSettingsNotFound
	}
	return s, nil
}

func (f *fakeSettingsRepo) UpsertWorkingSettings(ctx context.Context, s company.WorkingSettings) (company.WorkingSettings, error) {
	f.upserts++
	s.UpdatedAt = time.Now()
	f.settings[s.CompanyID] = s
	return s, nil
}

func (f *fakeSettingsRepo) GetMonthlyOverride(ctx context.Context, companyID string, month calendar.Month) (company.MonthlyWorkingDaysOverride, error) {
	o, ok := f.overrides[calendar.CacheKey(companyID, month)]
	if !ok {
		return company.MonthlyWorkingDaysOverride{}, company.ErrMonthlyOverrideNotFound
	}
	return o, nil
}

func (f *fakeSettingsRepo) UpsertMonthlyOverride(ctx context.Context, o company.MonthlyWorkingDaysOverride) (company.MonthlyWorkingDaysOverride, error) {
	f.upserts++
	f.overrides[calendar.CacheKey(o.CompanyID, o.Month)] = o
	return o, nil
}

func (f *fakeSettingsRepo) DeleteMonthlyOverride(ctx context.Context, companyID string, month calendar.Month) error {
	key := calendar.CacheKey(companyID, month)
	if _, ok := f.overrides[key]; !ok {
		return company.ErrMonthlyOverrideNotFound
	}
	delete(f.overrides, key)
	return nil
}

type fakeConfigRepo struct {
	configs map[string]calendar.WorkingDayConfig
	upserts int
}

func (f *fakeConfigRepo) GetByCompanyID(ctx context.Context, companyID string) (calendar.WorkingDayConfig, error) {
	cfg, ok := f.configs[companyID]
	if !ok {
		return calendar.WorkingDayConfig{}, calendar.ErrWorkingDayConfigNotFound
	}
	return cfg, nil
}

func (f *fakeConfigRepo) Upsert(ctx context.Context, cfg calendar.WorkingDayConfig) (calendar.WorkingDayConfig, error) {
	f.upserts++
	if f.configs == nil {
		f.configs = map[string]calendar.WorkingDayConfig{}
	}
	f.configs[cfg.CompanyID] = cfg
	return cfg, nil
}

// invalidationRecorder only implements InvalidateCompany; other calls panic
type invalidationRecorder struct {
	calendar.Service
	companies []string
}

func (r *invalidationRecorder) InvalidateCompany(companyID string) {
	r.companies = append(r.companies, companyID)
}

func newTestSettingsService() (company.SettingsService, *fakeSettingsRepo, *fakeConfigRepo, *invalidationRecorder) {
	settingsRepo := newFakeSettingsRepo()
	configRepo := &fakeConfigRepo{}
	recorder := &invalidationRecorder{}
	return NewSettingsService(settingsRepo, configRepo, recorder), settingsRepo, configRepo, recorder
}

func TestSettingsService_GetWorkingSettings_DefaultsWithoutRow(t *testing.T) {
	svc, repo, _, _ := newTestSettingsService()

	got, err := svc.GetWorkingSettings(context.Background(), testCompanyID)

	require.NoError(t, err)
	assert.Equal(t, 5, got.DefaultWorkingDaysPerWeek)
	assert.Equal(t, 22, got.DefaultWorkingDaysPerMonth)
	assert.True(t, decimal.NewFromInt(26).Equal(got.SalaryDivisor))
	assert.True(t, got.WeekendSaturday)
	assert.True(t, got.WeekendSunday)
	assert.Equal(t, "dynamic_calendar", got.DivisorPolicy)
	assert.Equal(t, 0, repo.upserts)
}

func TestSettingsService_GetWorkingSettings_StoreErrorPropagates(t *testing.T) {
	svc, repo, _, _ := newTestSettingsService()
	repo.err = errors.New("timeout")

	_, err := svc.GetWorkingSettings(context.Background(), testCompanyID)

	assert.ErrorContains(t, err, "timeout")
}

func TestSettingsService_UpdateWorkingSettings(t *testing.T) {
	svc, repo, _, recorder := newTestSettingsService()
	policy := "fixed_divisor"
	divisor := decimal.NewFromInt(30)

	got, err := svc.UpdateWorkingSettings(context.Background(), testCompanyID, company.UpdateWorkingSettingsRequest{
		DivisorPolicy: &policy,
		SalaryDivisor: &divisor,
	})

	require.NoError(t, err)
	assert.Equal(t, "fixed_divisor", got.DivisorPolicy)
	assert.True(t, divisor.Equal(got.SalaryDivisor))
	// untouched fields keep their defaults
	assert.Equal(t, 5, got.DefaultWorkingDaysPerWeek)
	assert.Equal(t, 1, repo.upserts)
	assert.Equal(t, []string{testCompanyID}, recorder.companies)
}

func TestSettingsService_UpdateWorkingSettings_Invalid(t *testing.T) {
	svc, repo, _, recorder := newTestSettingsService()
	policy := "per_moon_phase"
	zero := decimal.Zero

	_, err := svc.UpdateWorkingSettings(context.Background(), testCompanyID, company.UpdateWorkingSettingsRequest{
		DivisorPolicy: &policy,
		SalaryDivisor: &zero,
	})

	require.Error(t, err)
	assert.Equal(t, 0, repo.upserts)
	assert.Empty(t, recorder.companies)
}

func TestSettingsService_UpdateWorkingDayConfig_StartsFromDefault(t *testing.T) {
	svc, _, configRepo, recorder := newTestSettingsService()
	yes := true

	got, err := svc.UpdateWorkingDayConfig(context.Background(), testCompanyID, calendar.UpdateWorkingDayConfigRequest{Saturday: &yes})

	require.NoError(t, err)
	assert.True(t, got.Monday)
	assert.True(t, got.Friday)
	assert.True(t, got.Saturday)
	assert.False(t, got.Sunday)
	assert.Equal(t, 1, configRepo.upserts)
	assert.Len(t, recorder.companies, 1)
}

func TestSettingsService_GetWorkingDayConfig_DoesNotPersistDefault(t *testing.T) {
	svc, _, configRepo, _ := newTestSettingsService()

	got, err := svc.GetWorkingDayConfig(context.Background(), testCompanyID)

	require.NoError(t, err)
	assert.True(t, got.Wednesday)
	assert.False(t, got.Saturday)
	assert.Equal(t, 0, configRepo.upserts)
}

func TestSettingsService_MonthlyOverrideLifecycle(t *testing.T) {
	svc, _, _, recorder := newTestSettingsService()
	ctx := context.Background()
	june := calendar.NewMonth(2026, time.June)

	_, err := svc.GetMonthlyOverride(ctx, testCompanyID, june)
	assert.ErrorIs(t, err, company.ErrMonthlyOverrideNotFound)

	saved, err := svc.UpsertMonthlyOverride(ctx, testCompanyID, company.UpsertMonthlyOverrideRequest{
		Month:            "2026-06",
		WorkingDaysCount: decimal.RequireFromString("20.5"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-06", saved.Month)
	assert.True(t, saved.DailyRateDivisor.IsZero())

	got, err := svc.GetMonthlyOverride(ctx, testCompanyID, june)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("20.5").Equal(got.WorkingDaysCount))

	require.NoError(t, svc.DeleteMonthlyOverride(ctx, testCompanyID, june))
	assert.ErrorIs(t, svc.DeleteMonthlyOverride(ctx, testCompanyID, june), company.ErrMonthlyOverrideNotFound)

	// one invalidation for the upsert, one for the successful delete
	assert.Len(t, recorder.companies, 2)
}

func TestSettingsService_UpsertMonthlyOverride_Validation(t *testing.T) {
	svc, _, _, _ := newTestSettingsService()
	negative := decimal.NewFromInt(-1)

	cases := []company.UpsertMonthlyOverrideRequest{
		{Month: "June", WorkingDaysCount: decimal.NewFromInt(20)},
		{Month: "2026-06", WorkingDaysCount: decimal.NewFromInt(-2)},
		{Month: "2026-06", WorkingDaysCount: decimal.RequireFromString("20.25")},
		{Month: "2026-06", WorkingDaysCount: decimal.NewFromInt(20), DailyRateDivisor: &negative},
	}

	for _, req := range cases {
		_, err := svc.UpsertMonthlyOverride(context.Background(), testCompanyID, req)
		assert.Error(t, err, "month=%s count=%s", req.Month, req.WorkingDaysCount)
	}
}
