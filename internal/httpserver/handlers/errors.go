package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/theankitdev/yogivibes/internal/store"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError maps store-level error kinds onto HTTP status codes.
// The handlers are the only layer that translates errors; repository
// and cache surface them unchanged.
func writeError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")

	var resp errorResponse
	var status int
	switch {
	case errors.Is(err, store.ErrInvalidArgument):
		status = http.StatusBadRequest
		resp = errorResponse{Code: "INVALID_ARGUMENT", Message: err.Error()}
	case errors.Is(err, store.ErrNotFound):
		status = http.StatusNotFound
		resp = errorResponse{Code: "NOT_FOUND", Message: err.Error()}
	case errors.Is(err, store.ErrUnavailable):
		status = http.StatusServiceUnavailable
		resp = errorResponse{Code: "STORE_UNAVAILABLE", Message: "the backing store is unavailable, retry later"}
	default:
		status = http.StatusInternalServerError
		resp = errorResponse{Code: "INTERNAL_ERROR", Message: "an unexpected error occurred"}
	}

	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
