package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"carshowroom-backend/internal/domain"
	"carshowroom-backend/internal/logger"
)

type errorResponse struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Message: message})
}

// writeError maps domain errors onto the wire contract. Anything
// unrecognized is a 500 and logged; the raw error never leaks to the client.
func writeError(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Message: "Validation failed due to some errors.",
			Errors:  ve.Fields,
		})
	case errors.Is(err, domain.ErrUnauthorized):
		writeMessage(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		writeMessage(w, http.StatusForbidden, "Unauthorized access!")
	case errors.Is(err, domain.ErrNotFound):
		writeMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrNoInventory):
		writeMessage(w, http.StatusBadRequest, err.Error())
	default:
		logger.Error("request failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, "An unexpected error occurred, please try again!!")
	}
}
