package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"rentadesk-backend/internal/domain"
)

type response struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, status bool, message string, data, errs any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response{
		Status:  status,
		Message: message,
		Data:    data,
		Errors:  errs,
	})
}

func respondOK(w http.ResponseWriter, message string, data any) {
	writeJSON(w, http.StatusOK, true, message, data, nil)
}

func respondCreated(w http.ResponseWriter, message string, data any) {
	writeJSON(w, http.StatusCreated, true, message, data, nil)
}

// respondError maps the domain error taxonomy onto HTTP status codes.
func respondError(w http.ResponseWriter, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusBadRequest, false, "validation failed", nil, verr.Fields)
		return
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, false, err.Error(), nil, nil)
	case errors.Is(err, domain.ErrIllegalTransition), errors.Is(err, domain.ErrDuplicateRecord):
		writeJSON(w, http.StatusConflict, false, err.Error(), nil, nil)
	default:
		var perr *domain.PersistenceError
		if errors.As(err, &perr) {
			writeJSON(w, http.StatusBadGateway, false, err.Error(), nil, nil)
			return
		}
		writeJSON(w, http.StatusInternalServerError, false, err.Error(), nil, nil)
	}
}
