package calendar

import (
	"strings"

	"github.com/cmlabs-hris/hris-payroll-engine/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== EVENT DTOs ==========

type CreateEventRequest struct {
	Title             string  `json:"title"`
	Date              string  `json:"date"`
	Type              string  `json:"type"`
	AffectsAttendance *bool   `json:"affects_attendance,omitempty"`
	Description       *string `json:"description,omitempty"`
}

func (r *CreateEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be in YYYY-MM-DD format"})
	}
	if !EventType(r.Type).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be one of holiday, working_day, half_day, off_day, meeting, training"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEventRequest struct {
	ID                string  `json:"-"`
	Title             *string `json:"title,omitempty"`
	Date              *string `json:"date,omitempty"`
	Type              *string `json:"type,omitempty"`
	AffectsAttendance *bool   `json:"affects_attendance,omitempty"`
	Description       *string `json:"description,omitempty"`
}

func (r *UpdateEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ID == "" {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "is required"})
	}
	if r.Title != nil && validator.IsEmpty(*r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "cannot be empty"})
	}
	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "must be in YYYY-MM-DD format"})
		}
	}
	if r.Type != nil && !EventType(*r.Type).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be one of holiday, working_day, half_day, off_day, meeting, training"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EventFilter struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (f *EventFilter) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(f.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be in YYYY-MM-DD format"})
	}
	end, endOK := validator.IsValidDate(f.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be in YYYY-MM-DD format"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EventResponse struct {
	ID                string  `json:"id"`
	CompanyID         string  `json:"company_id"`
	Title             string  `json:"title"`
	Date              string  `json:"date"`
	Type              string  `json:"type"`
	AffectsAttendance bool    `json:"affects_attendance"`
	Description       *string `json:"description,omitempty"`
}

func NewEventResponse(e Event) EventResponse {
	return EventResponse{
		ID:                e.ID,
		CompanyID:         e.CompanyID,
		Title:             strings.TrimSpace(e.Title),
		Date:              e.Date.Format(DateLayout),
		Type:              string(e.Type),
		AffectsAttendance: e.AffectsAttendance,
		Description:       e.Description,
	}
}

func NewEventResponses(events []Event) []EventResponse {
	result := make([]EventResponse, 0, len(events))
	for _, e := range events {
		result = append(result, NewEventResponse(e))
	}
	return result
}

// ========== RESOLUTION DTOs ==========

type DayResolutionResponse struct {
	Date           string          `json:"date"`
	DayOfWeek      string          `json:"day_of_week"`
	Kind           string          `json:"kind"`
	IsWorkingDay   bool            `json:"is_working_day"`
	Credit         decimal.Decimal `json:"credit"`
	ShowAttendance bool            `json:"show_attendance"`
	Events         []EventResponse `json:"events"`
}

func NewDayResolutionResponse(d DayResolution) DayResolutionResponse {
	return DayResolutionResponse{
		Date:           d.Date.Format(DateLayout),
		DayOfWeek:      d.Date.Weekday().String(),
		Kind:           string(d.Kind),
		IsWorkingDay:   d.IsWorkingDay(),
		Credit:         d.Credit,
		ShowAttendance: d.ShowAttendance,
		Events:         NewEventResponses(d.Events),
	}
}

type MonthSummaryResponse struct {
	Month       string                  `json:"month"`
	WorkingDays decimal.Decimal         `json:"working_days"`
	Holidays    int                     `json:"holidays"`
	HalfDays    int                     `json:"half_days"`
	OffDays     int                     `json:"off_days"`
	Days        []DayResolutionResponse `json:"days"`
}

func NewMonthSummaryResponse(s MonthSummary) MonthSummaryResponse {
	days := make([]DayResolutionResponse, 0, len(s.Days))
	for _, d := range s.Days {
		days = append(days, NewDayResolutionResponse(d))
	}
	return MonthSummaryResponse{
		Month:       s.Month.Key(),
		WorkingDays: s.WorkingDays,
		Holidays:    s.Holidays,
		HalfDays:    s.HalfDays,
		OffDays:     s.OffDays,
		Days:        days,
	}
}

// ========== WORKING DAY CONFIG DTOs ==========

type WorkingDayConfigResponse struct {
	CompanyID string `json:"company_id"`
	Monday    bool   `json:"monday"`
	Tuesday   bool   `json:"tuesday"`
	Wednesday bool   `json:"wednesday"`
	Thursday  bool   `json:"thursday"`
	Friday    bool   `json:"friday"`
	Saturday  bool   `json:"saturday"`
	Sunday    bool   `json:"sunday"`
}

func NewWorkingDayConfigResponse(c WorkingDayConfig) WorkingDayConfigResponse {
	return WorkingDayConfigResponse{
		CompanyID: c.CompanyID,
		Monday:    c.Monday,
		Tuesday:   c.Tuesday,
		Wednesday: c.Wednesday,
		Thursday:  c.Thursday,
		Friday:    c.Friday,
		Saturday:  c.Saturday,
		Sunday:    c.Sunday,
	}
}

// UpdateWorkingDayConfigRequest - nil fields keep their current value
type UpdateWorkingDayConfigRequest struct {
	Monday    *bool `json:"monday,omitempty"`
	Tuesday   *bool `json:"tuesday,omitempty"`
	Wednesday *bool `json:"wednesday,omitempty"`
	Thursday  *bool `json:"thursday,omitempty"`
	Friday    *bool `json:"friday,omitempty"`
	Saturday  *bool `json:"saturday,omitempty"`
	Sunday    *bool `json:"sunday,omitempty"`
}

func (r *UpdateWorkingDayConfigRequest) Apply(c WorkingDayConfig) WorkingDayConfig {
	set := func(dst *bool, v *bool) {
		if v != nil {
			*dst = *v
		}
	}
	set(&c.Monday, r.Monday)
	set(&c.Tuesday, r.Tuesday)
	set(&c.Wednesday, r.Wednesday)
	set(&c.Thursday, r.Thursday)
	set(&c.Friday, r.Friday)
	set(&c.Saturday, r.Saturday)
	set(&c.Sunday, r.Sunday)
	return c
}
