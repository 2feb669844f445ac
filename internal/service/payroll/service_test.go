package payroll

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/company"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const companyID = "33333333-3333-3333-3333-333333333333"

var june = calendar.NewMonth(2026, time.June)

type fakeSettingsRepo struct {
	settings    *company.WorkingSettings
	override    *company.MonthlyWorkingDaysOverride
	settingsErr error
	overrideErr error
}

func (f *fakeSettingsRepo) GetWorkingSettings(ctx context.Context, companyID string) (company.WorkingSettings, error) {
	if f.settingsErr != nil {
		return company.WorkingSettings{}, f.settingsErr
	}
	if f.settings == nil {
		return company.WorkingSettings{}, company.ErrWorkingSettingsNotFound
	}
	return *f.settings, nil
}

func (f *fakeSettingsRepo) UpsertWorkingSettings(ctx context.Context, s company.WorkingSettings) (company.WorkingSettings, error) {
	f.settings = &s
	return s, nil
}

func (f *fakeSettingsRepo) GetMonthlyOverride(ctx context.Context, companyID string, month calendar.Month) (company.MonthlyWorkingDaysOverride, error) {
	if f.overrideErr != nil {
		return company.MonthlyWorkingDaysOverride{}, f.overrideErr
	}
	if f.override == nil || f.override.Month != month {
		return company.MonthlyWorkingDaysOverride{}, company.ErrMonthlyOverrideNotFound
	}
	return *f.override, nil
}

func (f *fakeSettingsRepo) UpsertMonthlyOverride(ctx context.Context, o company.MonthlyWorkingDaysOverride) (company.MonthlyWorkingDaysOverride, error) {
	f.override = &o
	return o, nil
}

func (f *fakeSettingsRepo) DeleteMonthlyOverride(ctx context.Context, companyID string, month calendar.Month) error {
	f.override = nil
	return nil
}

// fakeCalendar answers WorkingDaysInMonth only
type fakeCalendar struct {
	calendar.Service
	days  decimal.Decimal
	err   error
	calls atomic.Int32
}

func (f *fakeCalendar) WorkingDaysInMonth(ctx context.Context, companyID string, month calendar.Month) (decimal.Decimal, error) {
	f.calls.Add(1)
	return f.days, f.err
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got.String())
}

func TestCalculateEmployeeSalary_DynamicDefault(t *testing.T) {
	cal := &fakeCalendar{days: decimal.NewFromInt(22)}
	svc := NewPayrollService(&fakeSettingsRepo{}, cal)

	got, err := svc.CalculateEmployeeSalary(context.Background(), companyID, june, decimal.NewFromInt(4400000), 20, 2)

	require.NoError(t, err)
	assertDecimal(t, "22", got.TotalWorkingDays)
	assertDecimal(t, "200000", got.DailyRate)
	assertDecimal(t, "21", got.ActualWorkingDays)
	assertDecimal(t, "4200000", got.CalculatedSalary)
}

func TestCalculateEmployeeSalary_FixedDivisor(t *testing.T) {
	settings := company.DefaultWorkingSettings(companyID)
	settings.DivisorPolicy = company.DivisorPolicyFixedDivisor
	cal := &fakeCalendar{days: decimal.NewFromInt(22)}
	svc := NewPayrollService(&fakeSettingsRepo{settings: &settings}, cal)

	got, err := svc.CalculateEmployeeSalary(context.Background(), companyID, june, decimal.NewFromInt(26000), 20, 4)

	require.NoError(t, err)
	// calendar count is still reported
	assertDecimal(t, "22", got.TotalWorkingDays)
	assertDecimal(t, "1000", got.DailyRate)
	assertDecimal(t, "22000", got.CalculatedSalary)
}

func TestCalculateEmployeeSalary_ZeroWorkingDays(t *testing.T) {
	cal := &fakeCalendar{days: decimal.Zero}
	svc := NewPayrollService(&fakeSettingsRepo{}, cal)

	got, err := svc.CalculateEmployeeSalary(context.Background(), companyID, june, decimal.NewFromInt(5000000), 0, 0)

	require.NoError(t, err)
	assertDecimal(t, "0", got.DailyRate)
	assertDecimal(t, "0", got.CalculatedSalary)
}

func TestCalculateEmployeeSalary_OverrideTakesPrecedence(t *testing.T) {
	override := company.MonthlyWorkingDaysOverride{
		CompanyID:        companyID,
		Month:            june,
		WorkingDaysCount: decimal.NewFromInt(20),
	}
	cal := &fakeCalendar{days: decimal.NewFromInt(22)}
	svc := NewPayrollService(&fakeSettingsRepo{override: &override}, cal)

	got, err := svc.CalculateEmployeeSalary(context.Background(), companyID, june, decimal.NewFromInt(2000000), 20, 0)

	require.NoError(t, err)
	assertDecimal(t, "20", got.TotalWorkingDays)
	assertDecimal(t, "100000", got.DailyRate)
	assertDecimal(t, "2000000", got.CalculatedSalary)
}

func TestCalculateEmployeeSalary_Idempotent(t *testing.T) {
	cal := &fakeCalendar{days: decimal.RequireFromString("21.5")}
	svc := NewPayrollService(&fakeSettingsRepo{}, cal)
	ctx := context.Background()

	a, err := svc.CalculateEmployeeSalary(ctx, companyID, june, decimal.NewFromInt(7000000), 18, 3)
	require.NoError(t, err)
	b, err := svc.CalculateEmployeeSalary(ctx, companyID, june, decimal.NewFromInt(7000000), 18, 3)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestCalculateEmployeeSalary_FixedDivisorZeroWorkingDays(t *testing.T) {
	settings := company.DefaultWorkingSettings(companyID)
	settings.DivisorPolicy = company.DivisorPolicyFixedDivisor
	svc := NewPayrollService(&fakeSettingsRepo{settings: &settings}, &fakeCalendar{days: decimal.Zero})

	got, err := svc.CalculateEmployeeSalary(context.Background(), companyID, june, decimal.NewFromInt(26000), 3, 0)

	require.NoError(t, err)
	assertDecimal(t, "0", got.DailyRate)
	assertDecimal(t, "0", got.CalculatedSalary)
}

func TestCalculateEmployeeSalary_CountsAreNotValidated(t *testing.T) {
	cal := &fakeCalendar{days: decimal.NewFromInt(20)}
	svc := NewPayrollService(&fakeSettingsRepo{}, cal)

	got, err := svc.CalculateEmployeeSalary(context.Background(), companyID, june, decimal.NewFromInt(1000), -1, 0)

	require.NoError(t, err)
	assertDecimal(t, "50", got.DailyRate)
	assertDecimal(t, "-1", got.ActualWorkingDays)
	assertDecimal(t, "-50", got.CalculatedSalary)
	assert.Equal(t, int32(1), cal.calls.Load())
}

func TestResolveBasis_StoreErrorsPropagate(t *testing.T) {
	cases := map[string]struct {
		repo *fakeSettingsRepo
		cal  *fakeCalendar
	}{
		"settings": {repo: &fakeSettingsRepo{settingsErr: errors.New("settings down")}, cal: &fakeCalendar{}},
		"override": {repo: &fakeSettingsRepo{overrideErr: errors.New("override down")}, cal: &fakeCalendar{}},
		"calendar": {repo: &fakeSettingsRepo{}, cal: &fakeCalendar{err: errors.New("calendar down")}},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			svc := NewPayrollService(c.repo, c.cal)

			_, err := svc.ResolveBasis(context.Background(), companyID, june)

			assert.ErrorContains(t, err, name+" down")
		})
	}
}

func TestCalculate_Request(t *testing.T) {
	cal := &fakeCalendar{days: decimal.NewFromInt(26)}
	svc := NewPayrollService(&fakeSettingsRepo{}, cal)

	got, err := svc.Calculate(context.Background(), companyID, payroll.CalculateSalaryRequest{
		Month:          "2026-06",
		MonthlySalary:  decimal.NewFromInt(26000),
		PresentDays:    20,
		ShortLeaveDays: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-06", got.Month)
	assert.Equal(t, "dynamic_calendar", got.DivisorPolicy)
	assertDecimal(t, "22000", got.CalculatedSalary)

	_, err = svc.Calculate(context.Background(), companyID, payroll.CalculateSalaryRequest{Month: "2026/06"})
	assert.Error(t, err)
}
