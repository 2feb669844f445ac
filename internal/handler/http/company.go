package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/company"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type SettingsHandler interface {
	// Weekly pattern
	GetWorkingDays(w http.ResponseWriter, r *http.Request)
	UpdateWorkingDays(w http.ResponseWriter, r *http.Request)

	// Working settings
	GetWorkingSettings(w http.ResponseWriter, r *http.Request)
	UpdateWorkingSettings(w http.ResponseWriter, r *http.Request)

	// Monthly overrides
	GetMonthlyOverride(w http.ResponseWriter, r *http.Request)
	UpsertMonthlyOverride(w http.ResponseWriter, r *http.Request)
	DeleteMonthlyOverride(w http.ResponseWriter, r *http.Request)
}

type settingsHandlerImpl struct {
	settingsService company.SettingsService
}

func NewSettingsHandler(settingsService company.SettingsService) SettingsHandler {
	return &settingsHandlerImpl{settingsService: settingsService}
}

// ========== WORKING DAYS ==========

func (h *settingsHandlerImpl) GetWorkingDays(w http.ResponseWriter, r *http.Request) {
	companyID, err := middleware.GetCompanyID(r.Context())
	if err != nil {
		response.Forbidden(w, err.Error())
		return
	}

	result, err := h.settingsService.GetWorkingDayConfig(r.Context(), companyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *settingsHandlerImpl) UpdateWorkingDays(w http.ResponseWriter, r *http.Request) {
	companyID, err := middleware.GetCompanyID(r.Context())
	if err != nil {
		response.Forbidden(w, err.Error())
		return
	}

	var req calendar.UpdateWorkingDayConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.settingsService.UpdateWorkingDayConfig(r.Context(), companyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ========== WORKING SETTINGS ==========

func (h *settingsHandlerImpl) GetWorkingSettings(w http.ResponseWriter, r *http.Request) {
	companyID, err := middleware.GetCompanyID(r.Context())
	if err != nil {
		response.Forbidden(w, err.Error())
		return
	}

	result, err := h.settingsService.GetWorkingSettings(r.Context(), companyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *settingsHandlerImpl) UpdateWorkingSettings(w http.ResponseWriter, r *http.Request) {
	companyID, err := middleware.GetCompanyID(r.Context())
	if err != nil {
		response.Forbidden(w, err.Error())
		return
	}

	var req company.UpdateWorkingSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.settingsService.UpdateWorkingSettings(r.Context(), companyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ========== MONTHLY OVERRIDES ==========

func (h *settingsHandlerImpl) GetMonthlyOverride(w http.ResponseWriter, r *http.Request) {
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

	result, err := h.settingsService.GetMonthlyOverride(r.Context(), companyID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *settingsHandlerImpl) UpsertMonthlyOverride(w http.ResponseWriter, r *http.Request) {
	companyID, err := middleware.GetCompanyID(r.Context())
	if err != nil {
		response.Forbidden(w, err.Error())
		return
	}

	var req company.UpsertMonthlyOverrideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.Month = chi.URLParam(r, "month")

	result, err := h.settingsService.UpsertMonthlyOverride(r.Context(), companyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *settingsHandlerImpl) DeleteMonthlyOverride(w http.ResponseWriter, r *http.Request) {
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

	if err := h.settingsService.DeleteMonthlyOverride(r.Context(), companyID, month); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Monthly override deleted successfully", nil)
}
