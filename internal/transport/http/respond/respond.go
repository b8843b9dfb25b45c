// Package respond owns the response contract: one JSON writer, one error
// mapper, one hardening-header builder shared by every success and failure
// path.
package respond

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-todo-api/internal/domain"
	"github.com/go-todo-api/internal/pkg/validate"
)

// ErrorResponse is the canonical error payload. Every failure leaving the
// service reduces to this shape.
type ErrorResponse struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
	Timestamp  string `json:"timestamp"`
	Path       string `json:"path,omitempty"`
}

// Writer renders responses. The production flag controls whether unexpected
// errors leak their real message.
type Writer struct {
	production bool
}

func NewWriter(production bool) *Writer {
	return &Writer{production: production}
}

// JSON writes a success payload with the shared hardening headers.
func (wr *Writer) JSON(w http.ResponseWriter, status int, v interface{}) {
	setHeaders(w)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Err maps any error to the canonical payload. Mapping order: explicit
// AppError, validation failure, malformed body, not found, conflict,
// unavailable, unauthorized, then 500 for everything else.
func (wr *Writer) Err(w http.ResponseWriter, r *http.Request, err error) {
	status, kind, message := wr.classify(err)

	if status >= http.StatusInternalServerError {
		slog.Error("request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	}

	setHeaders(w)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error:      kind,
		Message:    message,
		StatusCode: status,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Path:       r.URL.Path,
	})
}

func (wr *Writer) classify(err error) (status int, kind, message string) {
	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode, appErr.Kind, appErr.Message
	}

	var ve validate.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, "Validation Error", ve.Error()
	}

	// json.Decoder reports an empty body as io.EOF and a truncated one as
	// io.ErrUnexpectedEOF, not as a *json.SyntaxError.
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) ||
		errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return http.StatusBadRequest, "Bad Request", "request body contains invalid JSON"
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "Resource Not Found", "the requested resource was not found"
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, "Conflict", "the operation conflicts with the current state"
	case errors.Is(err, domain.ErrUnavailable):
		return http.StatusServiceUnavailable, "Service Unavailable", "the service is temporarily unavailable, please try again later"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "Unauthorized", "invalid or expired token"
	case errors.Is(err, domain.ErrBadRequest):
		return http.StatusBadRequest, "Bad Request", err.Error()
	}

	message = "an unexpected error occurred"
	if !wr.production {
		message = err.Error()
	}
	return http.StatusInternalServerError, "Internal Server Error", message
}

// setHeaders applies the fixed response headers: JSON content type plus
// content-sniffing, framing and XSS hardening.
func setHeaders(w http.ResponseWriter) {
	h := w.Header()
	h.Set("Content-Type", "application/json")
	h.Set("X-Content-Type-Options", "nosniff")
	h.Set("X-Frame-Options", "DENY")
	h.Set("X-XSS-Protection", "1; mode=block")
}
