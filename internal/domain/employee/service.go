package employee

import (
	"context"
)

// EmployeeService defines business logic for employee operations.
// Writes invalidate the company's cached salary reports.
type EmployeeService interface {
	GetEmployee(ctx context.Context, companyID string, id string) (EmployeeResponse, error)
	CreateEmployee(ctx context.Context, companyID string, req CreateEmployeeRequest) (EmployeeResponse, error)
	UpdateEmployee(ctx context.Context, companyID string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	// DeleteEmployee hard deletes the employee
	DeleteEmployee(ctx context.Context, companyID string, id string) error
	ListEmployees(ctx context.Context, companyID string, filter EmployeeFilter) ([]EmployeeResponse, error)
}
