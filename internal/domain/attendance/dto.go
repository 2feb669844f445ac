package attendance

import (
	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/pkg/validator"
)

func validStatus(s string) bool {
	st := Status(s)
	return st.IsStorable() || st == StatusNotSet
}

type MarkAttendanceRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "must be a valid UUID"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be in YYYY-MM-DD format"})
	}
	if !validStatus(r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: ErrInvalidStatus.Error()})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BulkMarkAttendanceRequest struct {
	Date        string   `json:"date"`
	Status      string   `json:"status"`
	EmployeeIDs []string `json:"employee_ids,omitempty"` // Empty = all active employees
}

func (r *BulkMarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be in YYYY-MM-DD format"})
	}
	if !Status(r.Status).IsStorable() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be present, short_leave or leave"})
	}
	for _, id := range r.EmployeeIDs {
		if !validator.IsValidUUID(id) {
			errs = append(errs, validator.ValidationError{Field: "employee_ids", Message: "must contain valid UUIDs"})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

func NewAttendanceResponse(r Record) AttendanceResponse {
	return AttendanceResponse{
		EmployeeID: r.EmployeeID,
		Date:       r.Date.Format(calendar.DateLayout),
		Status:     string(r.Status),
	}
}

type BulkMarkResponse struct {
	Date   string `json:"date"`
	Status string `json:"status"`
	Marked int    `json:"marked"`
}

type DailySheetRow struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Rank       string `json:"rank"`
	Status     string `json:"status"`
}

type DailySheetResponse struct {
	Date           string                         `json:"date"`
	ShowAttendance bool                           `json:"show_attendance"`
	Day            calendar.DayResolutionResponse `json:"day"`
	Rows           []DailySheetRow                `json:"rows"`
}

type AutoMarkResponse struct {
	Date         string `json:"date"`
	HolidayFound bool   `json:"holiday_found"`
	Marked       int    `json:"marked"`
}
