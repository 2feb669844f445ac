package employee

import (
	"strings"

	"github.com/cmlabs-hris/hris-payroll-engine/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	Name     string          `json:"name"`
	Rank     string          `json:"rank"`
	WageRate decimal.Decimal `json:"wage_rate"`
	Status   string          `json:"status,omitempty"` // defaults to active
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !validator.IsNonNegative(r.WageRate) {
		errs = append(errs, validator.ValidationError{Field: "wage_rate", Message: ErrNegativeWageRate.Error()})
	}
	if r.Status != "" && !Status(r.Status).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: ErrInvalidStatus.Error()})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID       string           `json:"-"`
	Name     *string          `json:"name,omitempty"`
	Rank     *string          `json:"rank,omitempty"`
	WageRate *decimal.Decimal `json:"wage_rate,omitempty"`
	Status   *string          `json:"status,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "must be a valid UUID"})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "cannot be empty"})
	}
	if r.WageRate != nil && !validator.IsNonNegative(*r.WageRate) {
		errs = append(errs, validator.ValidationError{Field: "wage_rate", Message: ErrNegativeWageRate.Error()})
	}
	if r.Status != nil && !Status(*r.Status).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: ErrInvalidStatus.Error()})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeFilter struct {
	Status *string `json:"status,omitempty"`
}

func (f *EmployeeFilter) Validate() error {
	if f.Status != nil && !Status(*f.Status).IsValid() {
		return validator.ValidationErrors{{Field: "status", Message: ErrInvalidStatus.Error()}}
	}
	return nil
}

type EmployeeResponse struct {
	ID        string          `json:"id"`
	CompanyID string          `json:"company_id"`
	Name      string          `json:"name"`
	Rank      string          `json:"rank"`
	WageRate  decimal.Decimal `json:"wage_rate"`
	Status    string          `json:"status"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:        e.ID,
		CompanyID: e.CompanyID,
		Name:      strings.TrimSpace(e.Name),
		Rank:      e.Rank,
		WageRate:  e.WageRate,
		Status:    string(e.Status),
	}
}
