package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"linkhub/internal/registry"
)

const (
	ErrCodeInvalidRequest     = "INVALID_REQUEST"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeForbidden          = "FORBIDDEN"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeConflict           = "CONFLICT"
	ErrCodeProtectedAccount   = "PROTECTED_ACCOUNT"
	ErrCodeStoreUnavailable   = "STORE_UNAVAILABLE"
	ErrCodeInternal           = "INTERNAL_ERROR"
)

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

func badRequest(w http.ResponseWriter, message string) {
	writeError(w, http.StatusBadRequest, ErrCodeInvalidRequest, message)
}

func unauthorized(w http.ResponseWriter, message string) {
	writeError(w, http.StatusUnauthorized, ErrCodeUnauthorized, message)
}

func forbidden(w http.ResponseWriter, message string) {
	writeError(w, http.StatusForbidden, ErrCodeForbidden, message)
}

func notFound(w http.ResponseWriter, message string) {
	writeError(w, http.StatusNotFound, ErrCodeNotFound, message)
}

func conflict(w http.ResponseWriter, message string) {
	writeError(w, http.StatusConflict, ErrCodeConflict, message)
}

func internalError(w http.ResponseWriter) {
	writeError(w, http.StatusInternalServerError, ErrCodeInternal, "An internal error occurred")
}

// domainError translates registry sentinels into the wire taxonomy.
func domainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, registry.ErrValidation):
		badRequest(w, err.Error())
	case errors.Is(err, registry.ErrConflict):
		conflict(w, "Username taken")
	case errors.Is(err, registry.ErrNotFound):
		notFound(w, "User not found")
	case errors.Is(err, registry.ErrCredentials):
		writeError(w, http.StatusUnauthorized, ErrCodeInvalidCredentials, "Wrong password")
	case errors.Is(err, registry.ErrProtected):
		writeError(w, http.StatusForbidden, ErrCodeProtectedAccount, "This account is protected")
	case errors.Is(err, registry.ErrPersistence):
		writeError(w, http.StatusServiceUnavailable, ErrCodeStoreUnavailable, "Could not save changes, please try again")
	default:
		slog.Error("unhandled domain error", "error", err)
		internalError(w)
	}
}
