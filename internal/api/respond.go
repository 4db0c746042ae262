package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/yourusername/bet-ledger/internal/models"
	"github.com/yourusername/bet-ledger/internal/service"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Field   string `json:"field,omitempty"`
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response
func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{Error: code, Message: message})
}

// respondServiceError maps service and model errors onto status codes.
func (s *Server) respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *models.ValidationError
	var re *service.ReportError

	switch {
	case errors.As(err, &ve):
		respondJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "validation_failed",
			Message: ve.Message,
			Field:   ve.Field,
		})
	case errors.Is(err, models.ErrNotFound):
		respondError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, models.ErrDuplicateKey):
		respondError(w, http.StatusConflict, "duplicate", err.Error())
	case errors.As(err, &re):
		respondJSON(w, http.StatusInternalServerError, re)
	default:
		s.logger.WithError(err).WithField("path", r.URL.Path).Error("Request failed")
		respondError(w, http.StatusInternalServerError, "internal_error", "an internal error occurred")
	}
}

func decodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return models.NewValidationError("", "invalid request body: "+err.Error())
	}
	return nil
}
