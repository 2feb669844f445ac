package http

import (
	"net/http"

	"github.com/cmlabs-hris/hris-payroll-engine/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

// uuidParam reads a UUID path parameter, writing a 400 when it is missing or malformed
func uuidParam(w http.ResponseWriter, r *http.Request, name string, label string) (string, bool) {
	id := chi.URLParam(r, name)
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, label+" must be a valid UUID", nil)
		return "", false
	}
	return id, true
}
