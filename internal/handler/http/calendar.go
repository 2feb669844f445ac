package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type CalendarHandler interface {
	GetDay(w http.ResponseWriter, r *http.Request)
	GetMonth(w http.ResponseWriter, r *http.Request)

	// Events
	ListEvents(w http.ResponseWriter, r *http.Request)
	CreateEvent(w http.ResponseWriter, r *http.Request)
	UpdateEvent(w http.ResponseWriter, r *http.Request)
	DeleteEvent(w http.ResponseWriter, r *http.Request)
}

type calendarHandlerImpl struct {
	calendarService calendar.Service
}

func NewCalendarHandler(calendarService calendar.Service) CalendarHandler {
	return &calendarHandlerImpl{calendarService: calendarService}
}

// ========== RESOLUTION ==========

func (h *calendarHandlerImpl) GetDay(w http.ResponseWriter, r *http.Request) {
	companyID, err := middleware.GetCompanyID(r.Context())
	if err != nil {
		response.Forbidden(w, err.Error())
		return
	}

	date, err := calendar.ParseDate(chi.URLParam(r, "date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	day, err := h.calendarService.ResolveDay(r.Context(), companyID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, calendar.NewDayResolutionResponse(day))
}

func (h *calendarHandlerImpl) GetMonth(w http.ResponseWriter, r *http.Request) {
	companyID, err := middleware.GetCompanyID(r.Context())
	if err != nil {
		response.Forbidden(w, err.Error())
		return
	}

	month, err := calendar.ParseMonth(chi.URLParam(r, "month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	summary, err := h.calendarService.ResolveMonth(r.Context(), companyID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, calendar.NewMonthSummaryResponse(summary))
}

// ========== EVENTS ==========

func (h *calendarHandlerImpl) ListEvents(w http.ResponseWriter, r *http.Request) {
	companyID, err := middleware.GetCompanyID(r.Context())
	if err != nil {
		response.Forbidden(w, err.Error())
		return
	}

	filter := calendar.EventFilter{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	result, err := h.calendarService.ListEvents(r.Context(), companyID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *calendarHandlerImpl) CreateEvent(w http.ResponseWriter, r *http.Request) {
	companyID, err := middleware.GetCompanyID(r.Context())
	if err != nil {
		response.Forbidden(w, err.Error())
		return
	}

	var req calendar.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.calendarService.CreateEvent(r.Context(), companyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Event created", result)
}

func (h *calendarHandlerImpl) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	companyID, err := middleware.GetCompanyID(r.Context())
	if err != nil {
		response.Forbidden(w, err.Error())
		return
	}

	id, ok := uuidParam(w, r, "id", "Event ID")
	if !ok {
		return
	}

	var req calendar.UpdateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.calendarService.UpdateEvent(r.Context(), companyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *calendarHandlerImpl) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	companyID, err := middleware.GetCompanyID(r.Context())
	if err != nil {
		response.Forbidden(w, err.Error())
		return
	}

	id, ok := uuidParam(w, r, "id", "Event ID")
	if !ok {
		return
	}

	if err := h.calendarService.DeleteEvent(r.Context(), companyID, id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Event deleted successfully", nil)
}
