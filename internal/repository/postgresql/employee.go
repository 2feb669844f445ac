package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/employee"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `id, company_id, name, rank, wage_rate, status, created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(&e.ID, &e.CompanyID, &e.Name, &e.Rank, &e.WageRate, &e.Status, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}

func collectEmployees(rows pgx.Rows) ([]employee.Employee, error) {
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}
	return employees, nil
}

// GetActiveByCompanyID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetActiveByCompanyID(ctx context.Context, companyID string) ([]employee.Employee, error) {
	active := employee.StatusActive
	return e.List(ctx, companyID, &active)
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context, companyID string, status *employee.Status) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE company_id = $1 AND ($2::text IS NULL OR status = $2)
		ORDER BY name, id
	`

	var statusArg *string
	if status != nil {
		s := string(*status)
		statusArg = &s
	}

	rows, err := q.Query(ctx, query, companyID, statusArg)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	return collectEmployees(rows)
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1 AND company_id = $2`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee with id %s: %w", id, err)
	}

	return emp, nil
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (company_id, name, rank, wage_rate, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		newEmployee.CompanyID, newEmployee.Name, newEmployee.Rank, newEmployee.WageRate, newEmployee.Status,
	))
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET name = $1, rank = $2, wage_rate = $3, status = $4, updated_at = NOW()
		WHERE id = $5 AND company_id = $6
		RETURNING ` + employeeColumns

	updated, err := scanEmployee(q.QueryRow(ctx, query,
		emp.Name, emp.Rank, emp.WageRate, emp.Status, emp.ID, emp.CompanyID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee with id %s: %w", emp.ID, err)
	}

	return updated, nil
}

// Delete implements employee.EmployeeRepository. Attendance rows cascade.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, e.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete employee with id %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
