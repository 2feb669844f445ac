package attendance

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/employee"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/pkg/cache"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	companyID = "55555555-5555-5555-5555-555555555555"
	ani       = "aaaaaaaa-0000-0000-0000-000000000001"
	budi      = "aaaaaaaa-0000-0000-0000-000000000002"
	citra     = "aaaaaaaa-0000-0000-0000-000000000003"
	outsider  = "bbbbbbbb-0000-0000-0000-000000000001"
)

// ========== FAKES ==========

type fakeAttendanceRepo struct {
	mu        sync.Mutex
	rows      map[string]attendance.Record
	batches   int
	upsertErr error
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{rows: map[string]attendance.Record{}}
}

func key(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format(calendar.DateLayout)
}

func (f *fakeAttendanceRepo) Upsert(ctx context.Context, r attendance.Record) (attendance.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.upsertErr != nil {
		return attendance.Record{}, f.upsertErr
	}
	f.rows[key(r.EmployeeID, r.Date)] = r
	return r, nil
}

func (f *fakeAttendanceRepo) BulkUpsert(ctx context.Context, records []attendance.Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.batches++
	for _, r := range records {
		f.rows[key(r.EmployeeID, r.Date)] = r
	}
	return nil
}

func (f *fakeAttendanceRepo) Delete(ctx context.Context, companyID string, employeeID string, date time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	k := key(employeeID, date)
	if _, ok := f.rows[k]; !ok {
		return attendance.ErrAttendanceNotFound
	}
	delete(f.rows, k)
	return nil
}

func (f *fakeAttendanceRepo) ListByEmployeesInRange(ctx context.Context, employeeIDs []string, start, end time.Time) ([]attendance.Record, error) {
	return nil, errors.New("not used")
}

func (f *fakeAttendanceRepo) ListByCompanyAndDate(ctx context.Context, companyID string, date time.Time) ([]attendance.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []attendance.Record
	for _, r := range f.rows {
		if r.Date.Equal(date) {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string, companyID string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id && e.CompanyID == companyID {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	f.employees = append(f.employees, e)
	return e, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string, companyID string) error {
	return nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context, companyID string, status *employee.Status) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		if e.CompanyID == companyID && (status == nil || e.Status == *status) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeEmployeeRepo) GetActiveByCompanyID(ctx context.Context, companyID string) ([]employee.Employee, error) {
	active := employee.StatusActive
	return f.List(ctx, companyID, &active)
}

// fakeCalendar resolves days from a fixed event list with the default weekly pattern
type fakeCalendar struct {
	calendar.Service
	events []calendar.Event
}

func (f *fakeCalendar) ResolveDay(ctx context.Context, companyID string, date time.Time) (calendar.DayResolution, error) {
	var onDate []calendar.Event
	for _, e := range f.events {
		if e.Date.Equal(date) {
			onDate = append(onDate, e)
		}
	}
	return calendar.Classify(calendar.DefaultWorkingDayConfig(companyID), date, onDate), nil
}

type fixture struct {
	svc         attendance.AttendanceService
	attendance  *fakeAttendanceRepo
	calendar    *fakeCalendar
	reportCache *cache.Cache[string]
}

func newFixture() fixture {
	employees := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: budi, CompanyID: companyID, Name: "Budi", WageRate: decimal.NewFromInt(100), Status: employee.StatusActive},
		{ID: ani, CompanyID: companyID, Name: "Ani", WageRate: decimal.NewFromInt(100), Status: employee.StatusActive},
		{ID: citra, CompanyID: companyID, Name: "Citra", WageRate: decimal.NewFromInt(100), Status: employee.StatusInactive},
		{ID: outsider, CompanyID: "other", Name: "Zed", WageRate: decimal.NewFromInt(100), Status: employee.StatusActive},
	}}
	f := fixture{
		attendance:  newFakeAttendanceRepo(),
		calendar:    &fakeCalendar{},
		reportCache: cache.New[string](),
	}
	f.svc = NewAttendanceService(f.attendance, employees, f.calendar, f.reportCache)
	return f
}

func (f fixture) seedReport() {
	f.reportCache.Set("report:"+companyID+":2026-06", "cached", time.Hour)
}

var june3 = time.Date(2026, time.June, 3, 0, 0, 0, 0, time.UTC)

// ========== TESTS ==========

func TestMarkAttendance_UpsertsAndInvalidates(t *testing.T) {
	f := newFixture()
	f.seedReport()
	ctx := context.Background()

	_, err := f.svc.MarkAttendance(ctx, companyID, attendance.MarkAttendanceRequest{EmployeeID: ani, Date: "2026-06-03", Status: "present"})
	require.NoError(t, err)
	got, err := f.svc.MarkAttendance(ctx, companyID, attendance.MarkAttendanceRequest{EmployeeID: ani, Date: "2026-06-03", Status: "short_leave"})
	require.NoError(t, err)

	assert.Equal(t, "short_leave", got.Status)
	assert.Len(t, f.attendance.rows, 1)
	assert.Equal(t, 0, f.reportCache.Len())
}

func TestMarkAttendance_NotSetClearsRecord(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.MarkAttendance(ctx, companyID, attendance.MarkAttendanceRequest{EmployeeID: ani, Date: "2026-06-03", Status: "leave"})
	require.NoError(t, err)

	got, err := f.svc.MarkAttendance(ctx, companyID, attendance.MarkAttendanceRequest{EmployeeID: ani, Date: "2026-06-03", Status: "not_set"})
	require.NoError(t, err)
	assert.Equal(t, "not_set", got.Status)
	assert.Empty(t, f.attendance.rows)

	// clearing an empty slot is not an error
	_, err = f.svc.MarkAttendance(ctx, companyID, attendance.MarkAttendanceRequest{EmployeeID: ani, Date: "2026-06-03", Status: "not_set"})
	assert.NoError(t, err)
}

func TestMarkAttendance_RejectsOtherCompanyEmployee(t *testing.T) {
	f := newFixture()

	_, err := f.svc.MarkAttendance(context.Background(), companyID, attendance.MarkAttendanceRequest{EmployeeID: outsider, Date: "2026-06-03", Status: "present"})

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.Empty(t, f.attendance.rows)
}

func TestMarkAttendance_InvalidStatus(t *testing.T) {
	f := newFixture()

	_, err := f.svc.MarkAttendance(context.Background(), companyID, attendance.MarkAttendanceRequest{EmployeeID: ani, Date: "2026-06-03", Status: "sick"})

	require.Error(t, err)
}

func TestMarkAttendance_StoreErrorDoesNotInvalidate(t *testing.T) {
	f := newFixture()
	f.seedReport()
	f.attendance.upsertErr = errors.New("write failed")

	_, err := f.svc.MarkAttendance(context.Background(), companyID, attendance.MarkAttendanceRequest{EmployeeID: ani, Date: "2026-06-03", Status: "present"})

	assert.ErrorContains(t, err, "write failed")
	assert.Equal(t, 1, f.reportCache.Len())
}

func TestBulkMarkAttendance_AllActiveInOneBatch(t *testing.T) {
	f := newFixture()

	got, err := f.svc.BulkMarkAttendance(context.Background(), companyID, attendance.BulkMarkAttendanceRequest{Date: "2026-06-03", Status: "present"})

	require.NoError(t, err)
	assert.Equal(t, 2, got.Marked)
	assert.Equal(t, 1, f.attendance.batches)
	assert.Contains(t, f.attendance.rows, key(ani, june3))
	assert.Contains(t, f.attendance.rows, key(budi, june3))
	assert.NotContains(t, f.attendance.rows, key(citra, june3))
}

func TestBulkMarkAttendance_SelectedEmployees(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	got, err := f.svc.BulkMarkAttendance(ctx, companyID, attendance.BulkMarkAttendanceRequest{
		Date: "2026-06-03", Status: "leave", EmployeeIDs: []string{budi, budi},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, got.Marked)

	_, err = f.svc.BulkMarkAttendance(ctx, companyID, attendance.BulkMarkAttendanceRequest{
		Date: "2026-06-03", Status: "leave", EmployeeIDs: []string{budi, outsider},
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestBulkMarkAttendance_NotSetRejected(t *testing.T) {
	f := newFixture()

	_, err := f.svc.BulkMarkAttendance(context.Background(), companyID, attendance.BulkMarkAttendanceRequest{Date: "2026-06-03", Status: "not_set"})

	require.Error(t, err)
	assert.Equal(t, 0, f.attendance.batches)
}

func TestClearAttendance_NotFound(t *testing.T) {
	f := newFixture()

	err := f.svc.ClearAttendance(context.Background(), companyID, ani, "2026-06-03")

	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}

func TestDailySheet(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.MarkAttendance(ctx, companyID, attendance.MarkAttendanceRequest{EmployeeID: budi, Date: "2026-06-03", Status: "short_leave"})
	require.NoError(t, err)

	sheet, err := f.svc.DailySheet(ctx, companyID, "2026-06-03")

	require.NoError(t, err)
	assert.True(t, sheet.ShowAttendance)
	assert.Equal(t, "working", sheet.Day.Kind)
	require.Len(t, sheet.Rows, 2)
	assert.Equal(t, "Ani", sheet.Rows[0].Name)
	assert.Equal(t, "not_set", sheet.Rows[0].Status)
	assert.Equal(t, "Budi", sheet.Rows[1].Name)
	assert.Equal(t, "short_leave", sheet.Rows[1].Status)
}

func TestDailySheet_HolidayHidesAttendance(t *testing.T) {
	f := newFixture()
	f.calendar.events = []calendar.Event{{Date: june3, Type: calendar.EventTypeHoliday, AffectsAttendance: true}}

	sheet, err := f.svc.DailySheet(context.Background(), companyID, "2026-06-03")

	require.NoError(t, err)
	assert.False(t, sheet.ShowAttendance)
	assert.Len(t, sheet.Day.Events, 1)
}

func TestAutoMarkHolidayAttendance(t *testing.T) {
	f := newFixture()
	f.calendar.events = []calendar.Event{{Date: june3, Type: calendar.EventTypeHoliday, AffectsAttendance: true}}
	f.seedReport()

	got, err := f.svc.AutoMarkHolidayAttendance(context.Background(), companyID, june3.Add(9*time.Hour))

	require.NoError(t, err)
	assert.True(t, got.HolidayFound)
	assert.Equal(t, 2, got.Marked)
	assert.Equal(t, attendance.StatusPresent, f.attendance.rows[key(ani, june3)].Status)
	assert.Equal(t, 0, f.reportCache.Len())
}

func TestAutoMarkHolidayAttendance_NoHoliday(t *testing.T) {
	f := newFixture()
	// non-participating holiday does not trigger
	f.calendar.events = []calendar.Event{{Date: june3, Type: calendar.EventTypeHoliday, AffectsAttendance: false}}

	got, err := f.svc.AutoMarkHolidayAttendance(context.Background(), companyID, june3)

	require.NoError(t, err)
	assert.False(t, got.HolidayFound)
	assert.Empty(t, f.attendance.rows)
}

func TestTally(t *testing.T) {
	counts := attendance.Tally([]attendance.Record{
		{EmployeeID: ani, Status: attendance.StatusPresent},
		{EmployeeID: ani, Status: attendance.StatusPresent},
		{EmployeeID: ani, Status: attendance.StatusShortLeave},
		{EmployeeID: budi, Status: attendance.StatusLeave},
	})

	assert.Equal(t, attendance.Counts{Present: 2, ShortLeave: 1}, counts[ani])
	assert.Equal(t, attendance.Counts{Leave: 1}, counts[budi])
	assert.Equal(t, attendance.Counts{}, counts[citra])
}
