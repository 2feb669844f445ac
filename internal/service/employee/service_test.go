package employee

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/employee"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/pkg/cache"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const companyID = "44444444-4444-4444-4444-444444444444"

type fakeEmployeeRepo struct {
	rows map[string]employee.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{rows: map[string]employee.Employee{}}
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string, companyID string) (employee.Employee, error) {
	e, ok := f.rows[id]
	if !ok || e.CompanyID != companyID {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	e.ID = uuid.NewString()
	f.rows[e.ID] = e
	return e, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	if _, ok := f.rows[e.ID]; !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	f.rows[e.ID] = e
	return e, nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string, companyID string) error {
	if e, ok := f.rows[id]; !ok || e.CompanyID != companyID {
		return employee.ErrEmployeeNotFound
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context, companyID string, status *employee.Status) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.rows {
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

func newTestService() (employee.EmployeeService, *fakeEmployeeRepo, *cache.Cache[string]) {
	repo := newFakeEmployeeRepo()
	reportCache := cache.New[string]()
	return NewEmployeeService(repo, reportCache), repo, reportCache
}

func seedReport(c *cache.Cache[string]) {
	c.Set("report:"+companyID+":2026-06", "cached", time.Hour)
}

func TestEmployeeService_Create_DefaultsToActive(t *testing.T) {
	svc, _, reportCache := newTestService()
	seedReport(reportCache)

	got, err := svc.CreateEmployee(context.Background(), companyID, employee.CreateEmployeeRequest{
		Name:     "  Sari Wulandari ",
		Rank:     "Staff",
		WageRate: decimal.NewFromInt(5200000),
	})

	require.NoError(t, err)
	assert.Equal(t, "Sari Wulandari", got.Name)
	assert.Equal(t, "active", got.Status)
	assert.Equal(t, 0, reportCache.Len())
}

func TestEmployeeService_Create_Invalid(t *testing.T) {
	svc, repo, _ := newTestService()

	_, err := svc.CreateEmployee(context.Background(), companyID, employee.CreateEmployeeRequest{
		Name:     " ",
		WageRate: decimal.NewFromInt(-1),
		Status:   "retired",
	})

	require.Error(t, err)
	assert.Empty(t, repo.rows)
}

func TestEmployeeService_Update_InvalidatesReports(t *testing.T) {
	svc, _, reportCache := newTestService()
	ctx := context.Background()

	created, err := svc.CreateEmployee(ctx, companyID, employee.CreateEmployeeRequest{Name: "Budi", WageRate: decimal.NewFromInt(100)})
	require.NoError(t, err)
	seedReport(reportCache)

	inactive := "inactive"
	wage := decimal.NewFromInt(250)
	got, err := svc.UpdateEmployee(ctx, companyID, employee.UpdateEmployeeRequest{ID: created.ID, Status: &inactive, WageRate: &wage})

	require.NoError(t, err)
	assert.Equal(t, "inactive", got.Status)
	assert.True(t, wage.Equal(got.WageRate))
	assert.Equal(t, "Budi", got.Name)
	assert.Equal(t, 0, reportCache.Len())
}

func TestEmployeeService_Update_OtherCompany(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreateEmployee(ctx, companyID, employee.CreateEmployeeRequest{Name: "Budi", WageRate: decimal.NewFromInt(100)})
	require.NoError(t, err)

	name := "Mallory"
	_, err = svc.UpdateEmployee(ctx, uuid.NewString(), employee.UpdateEmployeeRequest{ID: created.ID, Name: &name})

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeService_Delete(t *testing.T) {
	svc, repo, reportCache := newTestService()
	ctx := context.Background()

	created, err := svc.CreateEmployee(ctx, companyID, employee.CreateEmployeeRequest{Name: "Citra", WageRate: decimal.NewFromInt(100)})
	require.NoError(t, err)
	seedReport(reportCache)

	require.NoError(t, svc.DeleteEmployee(ctx, companyID, created.ID))
	assert.Empty(t, repo.rows)
	assert.Equal(t, 0, reportCache.Len())

	assert.ErrorIs(t, svc.DeleteEmployee(ctx, companyID, created.ID), employee.ErrEmployeeNotFound)
}

func TestEmployeeService_List_FiltersByStatus(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	for _, req := range []employee.CreateEmployeeRequest{
		{Name: "Dewi", WageRate: decimal.NewFromInt(1)},
		{Name: "Agus", WageRate: decimal.NewFromInt(1)},
		{Name: "Eka", WageRate: decimal.NewFromInt(1), Status: "inactive"},
	} {
		_, err := svc.CreateEmployee(ctx, companyID, req)
		require.NoError(t, err)
	}

	all, err := svc.ListEmployees(ctx, companyID, employee.EmployeeFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	active := "active"
	got, err := svc.ListEmployees(ctx, companyID, employee.EmployeeFilter{Status: &active})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Agus", got[0].Name)
	assert.Equal(t, "Dewi", got[1].Name)

	bogus := "ghost"
	_, err = svc.ListEmployees(ctx, companyID, employee.EmployeeFilter{Status: &bogus})
	assert.Error(t, err)
}
