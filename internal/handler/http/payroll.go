package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/handler/http/response"
)

type PayrollHandler interface {
	Calculate(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.Service
}

func NewPayrollHandler(payrollService payroll.Service) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// Calculate prices explicit attendance counts against the company's month basis
func (h *payrollHandlerImpl) Calculate(w http.ResponseWriter, r *http.Request) {
	companyID, err := middleware.GetCompanyID(r.Context())
	if err != nil {
		response.Forbidden(w, err.Error())
		return
	}

	var req payroll.CalculateSalaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.Calculate(r.Context(), companyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
