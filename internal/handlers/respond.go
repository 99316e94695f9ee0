package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pushkind/filehub/pkg/storage"
)

// successResponse is the envelope for 2xx responses.
type successResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// errorResponse is the envelope for error responses.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    int    `json:"code"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondData(w http.ResponseWriter, status int, data any, message string) {
	respondJSON(w, status, successResponse{
		Success: true,
		Data:    data,
		Message: message,
	})
}

func respondError(w http.ResponseWriter, code int, message string) {
	respondJSON(w, code, errorResponse{
		Success: false,
		Error:   message,
		Code:    code,
	})
}

// errorStatus maps service errors onto HTTP status codes and safe messages.
// Filesystem failures collapse into a plain 500; their details reach the logs,
// not the client.
func errorStatus(err error) (int, string) {
	var validation *storage.ValidationError
	var maxBytes *http.MaxBytesError

	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest, validation.Reason
	case errors.Is(err, storage.ErrInvalidPath):
		return http.StatusBadRequest, "invalid path"
	case errors.Is(err, storage.ErrInvalidFileName):
		return http.StatusBadRequest, "invalid file name"
	case errors.Is(err, storage.ErrUnauthorized):
		return http.StatusForbidden, "missing required role"
	case errors.As(err, &maxBytes):
		return http.StatusRequestEntityTooLarge, "upload too large"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}
