package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	DailySheet(w http.ResponseWriter, r *http.Request)
	Mark(w http.ResponseWriter, r *http.Request)
	BulkMark(w http.ResponseWriter, r *http.Request)
	Clear(w http.ResponseWriter, r *http.Request)
	HolidayAutofill(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

func (h *attendanceHandlerImpl) DailySheet(w http.ResponseWriter, r *http.Request) {
	companyID, err := middleware.GetCompanyID(r.Context())
	if err != nil {
		response.Forbidden(w, err.Error())
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		response.BadRequest(w, "date query parameter is required", nil)
		return
	}

	result, err := h.attendanceService.DailySheet(r.Context(), companyID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *attendanceHandlerImpl) Mark(w http.ResponseWriter, r *http.Request) {
	companyID, err := middleware.GetCompanyID(r.Context())
	if err != nil {
		response.Forbidden(w, err.Error())
		return
	}

	var req attendance.MarkAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.attendanceService.MarkAttendance(r.Context(), companyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *attendanceHandlerImpl) BulkMark(w http.ResponseWriter, r *http.Request) {
	companyID, err := middleware.GetCompanyID(r.Context())
	if err != nil {
		response.Forbidden(w, err.Error())
		return
	}

	var req attendance.BulkMarkAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.attendanceService.BulkMarkAttendance(r.Context(), companyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *attendanceHandlerImpl) Clear(w http.ResponseWriter, r *http.Request) {
	companyID, err := middleware.GetCompanyID(r.Context())
	if err != nil {
		response.Forbidden(w, err.Error())
		return
	}

	employeeID, ok := uuidParam(w, r, "employeeId", "Employee ID")
	if !ok {
		return
	}
	date := chi.URLParam(r, "date")

	if err := h.attendanceService.ClearAttendance(r.Context(), companyID, employeeID, date); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance cleared", nil)
}

func (h *attendanceHandlerImpl) HolidayAutofill(w http.ResponseWriter, r *http.Request) {
	companyID, err := middleware.GetCompanyID(r.Context())
	if err != nil {
		response.Forbidden(w, err.Error())
		return
	}

	date, err := calendar.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.AutoMarkHolidayAttendance(r.Context(), companyID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
