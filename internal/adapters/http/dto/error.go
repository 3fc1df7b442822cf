package dto

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/expense-ledger/internal/domain"
	"github.com/jsamuelsen11/expense-ledger/internal/platform/logging"
)

// MsgInternal is the body of every 500 response. Details stay in the logs.
const MsgInternal = "Internal server error."

// RequestError is a failure to interpret the request itself, before any
// service is involved: an unknown path, an unparseable id or body.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

// InvalidID reports a path id that is not a UUID.
func InvalidID(raw string) *RequestError {
	return &RequestError{Status: http.StatusBadRequest, Message: "Invalid id: " + raw}
}

// NoSuchEndpoint reports a path no route matches.
func NoSuchEndpoint(path string) *RequestError {
	return &RequestError{Status: http.StatusBadRequest, Message: "No such endpoint: " + path}
}

// MethodNotAllowed reports a known path used with the wrong method.
func MethodNotAllowed(method string) *RequestError {
	return &RequestError{Status: http.StatusMethodNotAllowed, Message: "Method not allowed: " + method}
}

// ErrTrailingData reports extra input after the JSON value in a request body.
var ErrTrailingData = errors.New("trailing characters after the JSON value")

// BodyError classifies a JSON decoding failure. Bodies that are not JSON at
// all are 400; JSON of the wrong shape (type mismatches, bad ids or dates)
// is 422.
func BodyError(err error) *RequestError {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, ErrTrailingData) {
		return &RequestError{
			Status:  http.StatusBadRequest,
			Message: "Failed to parse the request body as JSON: " + err.Error(),
		}
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return &RequestError{
			Status:  http.StatusRequestEntityTooLarge,
			Message: "Request body too large.",
		}
	}

	return &RequestError{
		Status:  http.StatusUnprocessableEntity,
		Message: "Failed to deserialize the JSON body into the target type: " + err.Error(),
	}
}

// ErrorResponse is the rendered form of an error: a status code and the
// plain-text body sent to the client.
type ErrorResponse struct {
	Status  int
	Message string
}

// NewErrorResponse maps err onto a status and client-facing message.
// Application errors carry their own message; anything unrecognised is a
// 500 with a fixed body.
func NewErrorResponse(err error) ErrorResponse {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return ErrorResponse{Status: reqErr.Status, Message: reqErr.Message}
	}

	var appErr *domain.Error
	if errors.As(err, &appErr) {
		return ErrorResponse{Status: kindToStatus(appErr.Kind), Message: appErr.Message}
	}

	// Untranslated validation errors still belong to the client.
	if errors.Is(err, domain.ErrValidation) {
		return ErrorResponse{Status: http.StatusUnprocessableEntity, Message: err.Error()}
	}

	return ErrorResponse{Status: http.StatusInternalServerError, Message: MsgInternal}
}

// WriteErrorResponse writes err as a text/plain response. Server-side
// failures are logged with the request-scoped logger.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(err)

	if resp.Status >= http.StatusInternalServerError {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "request failed",
			slog.Int("status", resp.Status),
			slog.Any("error", err),
		)
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(resp.Status)

	if _, writeErr := io.WriteString(w, resp.Message); writeErr != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to write error response",
			slog.Any("error", writeErr),
		)
	}
}

func kindToStatus(kind domain.Kind) int {
	switch kind {
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindValidationFailed:
		return http.StatusUnprocessableEntity
	case domain.KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
