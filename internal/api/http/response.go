package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"scooter-backoffice/internal/domain"
	"scooter-backoffice/internal/logger"
)

// ActionState is the uniform result shape for every mutation. Reads return
// the requested data directly and fall back to this shape on failure.
type ActionState struct {
	Success     bool                `json:"success"`
	Message     string              `json:"message,omitempty"`
	FieldErrors map[string][]string `json:"fieldErrors,omitempty"`
	Data        any                 `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func writeData(w http.ResponseWriter, v any) {
	writeJSON(w, http.StatusOK, v)
}

func writeSuccess(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, ActionState{Success: true, Message: message})
}

func writeSuccessData(w http.ResponseWriter, message string, data any) {
	writeJSON(w, http.StatusOK, ActionState{Success: true, Message: message, Data: data})
}

func writeValidationError(w http.ResponseWriter, fieldErrors map[string][]string) {
	writeJSON(w, http.StatusBadRequest, ActionState{
		Success:     false,
		Message:     "Validation failed",
		FieldErrors: fieldErrors,
	})
}

// writeError maps a service error kind to a status code and the uniform
// shape. Unexpected failures are logged and reported as a generic message so
// nothing internal leaks to the caller.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrScooterNotFound),
		errors.Is(err, domain.ErrClientNotFound),
		errors.Is(err, domain.ErrRentalNotFound),
		errors.Is(err, domain.ErrExpenseNotFound):
		writeJSON(w, http.StatusNotFound, ActionState{Success: false, Message: err.Error()})
	case errors.Is(err, domain.ErrScooterUnavailable),
		errors.Is(err, domain.ErrScooterHasRentals),
		errors.Is(err, domain.ErrRentalNotActive),
		errors.Is(err, domain.ErrRentalNotCompleted):
		writeJSON(w, http.StatusConflict, ActionState{Success: false, Message: err.Error()})
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusBadRequest, ActionState{Success: false, Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, ActionState{Success: false, Message: err.Error()})
	default:
		logger.Error("Request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, ActionState{Success: false, Message: "An unexpected error occurred"})
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, ActionState{Success: false, Message: "Invalid request body"})
		return false
	}
	return true
}
