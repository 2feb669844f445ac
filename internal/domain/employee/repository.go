package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string, companyID string) (Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, e Employee) (Employee, error)
	// Delete removes the row and its attendance
	Delete(ctx context.Context, id string, companyID string) error

	// List returns employees ordered by name; a nil status returns all
	List(ctx context.Context, companyID string, status *Status) ([]Employee, error)
	// GetActiveByCompanyID returns active employees ordered by name
	GetActiveByCompanyID(ctx context.Context, companyID string) ([]Employee, error)
}
