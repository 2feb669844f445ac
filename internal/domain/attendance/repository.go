package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
// Company isolation goes through the employees table.
type AttendanceRepository interface {
	// Upsert writes the status for (EmployeeID, Date), replacing any existing mark
	Upsert(ctx context.Context, record Record) (Record, error)

	// BulkUpsert writes all records in one batch
	BulkUpsert(ctx context.Context, records []Record) error

	// Delete removes the mark of an employee on date, scoped to the company
	Delete(ctx context.Context, companyID string, employeeID string, date time.Time) error

	// ListByEmployeesInRange returns marks of employeeIDs with start <= date <= end
	ListByEmployeesInRange(ctx context.Context, employeeIDs []string, start, end time.Time) ([]Record, error)

	// ListByCompanyAndDate returns every mark of the company's employees on date
	ListByCompanyAndDate(ctx context.Context, companyID string, date time.Time) ([]Record, error)
}
