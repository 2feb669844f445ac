package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/company"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/employee"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Calendar domain errors
	case errors.Is(err, calendar.ErrEventNotFound):
		NotFound(w, "Event not found")
	case errors.Is(err, calendar.ErrInvalidDate),
		errors.Is(err, calendar.ErrInvalidMonth),
		errors.Is(err, calendar.ErrInvalidDateRange),
		errors.Is(err, calendar.ErrInvalidEventType):
		BadRequest(w, err.Error(), nil)

	// Company settings errors
	case errors.Is(err, company.ErrMonthlyOverrideNotFound):
		NotFound(w, "Monthly working days override not found")
	case errors.Is(err, company.ErrInvalidDivisorPolicy):
		BadRequest(w, err.Error(), nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrInvalidStatus),
		errors.Is(err, employee.ErrNegativeWageRate):
		BadRequest(w, err.Error(), nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInvalidStatus),
		errors.Is(err, attendance.ErrNoEmployees):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
