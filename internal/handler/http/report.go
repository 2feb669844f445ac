package http

import (
	"net/http"

	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/report"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/handler/http/response"
)

type ReportHandler interface {
	SalaryReport(w http.ResponseWriter, r *http.Request)
	EmployeeSalary(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

func (h *reportHandlerImpl) SalaryReport(w http.ResponseWriter, r *http.Request) {
	companyID, err := middleware.GetCompanyID(r.Context())
	if err != nil {
		response.Forbidden(w, err.Error())
		return
	}

	month, err := calendar.ParseMonth(r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reportService.FetchReportData(r.Context(), companyID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *reportHandlerImpl) EmployeeSalary(w http.ResponseWriter, r *http.Request) {
	companyID, err := middleware.GetCompanyID(r.Context())
	if err != nil {
		response.Forbidden(w, err.Error())
		return
	}

	month, err := calendar.ParseMonth(r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	employeeID, ok := uuidParam(w, r, "employeeId", "Employee ID")
	if !ok {
		return
	}

	result, err := h.reportService.EmployeeSalary(r.Context(), companyID, employeeID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
