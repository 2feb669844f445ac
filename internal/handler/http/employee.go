package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/employee"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/handler/http/response"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{employeeService: employeeService}
}

func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	companyID, err := middleware.GetCompanyID(r.Context())
	if err != nil {
		response.Forbidden(w, err.Error())
		return
	}

	var filter employee.EmployeeFilter
	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}

	result, err := h.employeeService.ListEmployees(r.Context(), companyID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	companyID, err := middleware.GetCompanyID(r.Context())
	if err != nil {
		response.Forbidden(w, err.Error())
		return
	}

	id, ok := uuidParam(w, r, "id", "Employee ID")
	if !ok {
		return
	}

	result, err := h.employeeService.GetEmployee(r.Context(), companyID, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *employeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	companyID, err := middleware.GetCompanyID(r.Context())
	if err != nil {
		response.Forbidden(w, err.Error())
		return
	}

	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.employeeService.CreateEmployee(r.Context(), companyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created", result)
}

func (h *employeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	companyID, err := middleware.GetCompanyID(r.Context())
	if err != nil {
		response.Forbidden(w, err.Error())
		return
	}

	id, ok := uuidParam(w, r, "id", "Employee ID")
	if !ok {
		return
	}

	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.employeeService.UpdateEmployee(r.Context(), companyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *employeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	companyID, err := middleware.GetCompanyID(r.Context())
	if err != nil {
		response.Forbidden(w, err.Error())
		return
	}

	id, ok := uuidParam(w, r, "id", "Employee ID")
	if !ok {
		return
	}

	if err := h.employeeService.DeleteEmployee(r.Context(), companyID, id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deleted successfully", nil)
}
