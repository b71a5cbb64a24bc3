package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vkazankov/voicebank/internal/logger"
	"github.com/vkazankov/voicebank/internal/model"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// handleError maps service errors to HTTP responses. Validation and
// not-found errors surface as-is; everything else is logged with a
// component tag and returned as an opaque 500.
func handleError(w http.ResponseWriter, log *logger.Logger, component string, err error) {
	var validationErr *model.ValidationError
	switch {
	case errors.As(err, &validationErr):
		writeError(w, http.StatusBadRequest, validationErr.Error())
	case errors.Is(err, model.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, model.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	default:
		log.Error(component+": request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
