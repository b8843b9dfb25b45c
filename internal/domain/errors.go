package domain

import (
	"errors"
	"net/http"
)

// Sentinel errors for domain-level error discrimination.
// Infrastructure wraps these so handlers can map to HTTP status codes
// without leaking SDK details.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrBadRequest   = errors.New("bad request")
	ErrUnavailable  = errors.New("service unavailable")
)

// AppError is the canonical application failure: a status code, a category
// label, and a human-readable message. Every error leaving the HTTP boundary
// reduces to this shape.
type AppError struct {
	StatusCode int
	Kind       string
	Message    string
}

func (e *AppError) Error() string { return e.Message }

// NewAppError builds an AppError with an explicit status and category.
func NewAppError(statusCode int, kind, message string) *AppError {
	return &AppError{StatusCode: statusCode, Kind: kind, Message: message}
}

// Validation wraps one or more field violations into a 400.
func Validation(message string) *AppError {
	return &AppError{StatusCode: http.StatusBadRequest, Kind: "Validation Error", Message: message}
}

// Unauthorized builds a 401. The message must never reveal why a credential
// was rejected beyond "invalid or expired".
func Unauthorized(message string) *AppError {
	return &AppError{StatusCode: http.StatusUnauthorized, Kind: "Unauthorized", Message: message}
}

// Conflict builds a 409 for duplicate signups and lost conditional writes.
func Conflict(message string) *AppError {
	return &AppError{StatusCode: http.StatusConflict, Kind: "Conflict", Message: message}
}

// NotFoundError builds a 404 for absent update/delete targets.
func NotFoundError(message string) *AppError {
	return &AppError{StatusCode: http.StatusNotFound, Kind: "Not Found", Message: message}
}

// Configuration builds a 500 for missing required environment/secrets.
func Configuration(message string) *AppError {
	return &AppError{StatusCode: http.StatusInternalServerError, Kind: "Configuration Error", Message: message}
}
