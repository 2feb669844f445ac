package employee

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/employee"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/pkg/cache"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	reportCache  cache.Invalidator
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, reportCache cache.Invalidator) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		reportCache:  reportCache,
	}
}

func (s *EmployeeServiceImpl) invalidateReports(companyID string) {
	removed := s.reportCache.Invalidate(cache.CompanyScope(companyID))
	slog.Debug("Report cache invalidated", "company_id", companyID, "removed", removed)
}

func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, companyID string, id string) (employee.EmployeeResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.NewEmployeeResponse(e), nil
}

func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, companyID string, filter employee.EmployeeFilter) ([]employee.EmployeeResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	var status *employee.Status
	if filter.Status != nil {
		st := employee.Status(*filter.Status)
		status = &st
	}

	employees, err := s.employeeRepo.List(ctx, companyID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	result := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		result = append(result, employee.NewEmployeeResponse(e))
	}
	return result, nil
}

func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, companyID string, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	status := employee.StatusActive
	if req.Status != "" {
		status = employee.Status(req.Status)
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		CompanyID: companyID,
		Name:      strings.TrimSpace(req.Name),
		Rank:      strings.TrimSpace(req.Rank),
		WageRate:  req.WageRate,
		Status:    status,
	})
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	s.invalidateReports(companyID)
	slog.Info("Employee created", "company_id", companyID, "employee_id", created.ID)

	return employee.NewEmployeeResponse(created), nil
}

func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, companyID string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	current, err := s.employeeRepo.GetByID(ctx, req.ID, companyID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Name != nil {
		current.Name = strings.TrimSpace(*req.Name)
	}
	if req.Rank != nil {
		current.Rank = strings.TrimSpace(*req.Rank)
	}
	if req.WageRate != nil {
		current.WageRate = *req.WageRate
	}
	if req.Status != nil {
		current.Status = employee.Status(*req.Status)
	}

	updated, err := s.employeeRepo.Update(ctx, current)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	s.invalidateReports(companyID)

	return employee.NewEmployeeResponse(updated), nil
}

func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, companyID string, id string) error {
	if err := s.employeeRepo.Delete(ctx, id, companyID); err != nil {
		return err
	}

	s.invalidateReports(companyID)
	slog.Info("Employee deleted", "company_id", companyID, "employee_id", id)
	return nil
}
