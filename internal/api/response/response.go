// internal/api/response/response.go
package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/newthinker/tacall/internal/core"
	"github.com/newthinker/tacall/internal/native"
)

// Meta contains response metadata.
type Meta struct {
	Timestamp time.Time `json:"timestamp"`
}

// SuccessResponse is the standard success response format.
type SuccessResponse struct {
	Data any  `json:"data"`
	Meta Meta `json:"meta"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Cause   string `json:"cause,omitempty"`
	Status  string `json:"status,omitempty"` // native status name, for COMPUTATION_FAILED
}

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// JSON writes a success response with data. Data that cannot be encoded
// turns into a 500 error response.
func JSON(w http.ResponseWriter, status int, data any) {
	resp := SuccessResponse{
		Data: data,
		Meta: Meta{Timestamp: time.Now().UTC()},
	}
	body, err := json.Marshal(resp)
	if err != nil {
		Error(w, http.StatusInternalServerError, fmt.Errorf("encoding response: %w", err))
		return
	}
	write(w, status, body)
}

// Error writes an error response.
func Error(w http.ResponseWriter, status int, err error) {
	detail := ErrorDetail{
		Code:    "INTERNAL_ERROR",
		Message: "an internal error occurred",
	}

	var coreErr *core.Error
	if errors.As(err, &coreErr) {
		detail.Code = coreErr.Code
		detail.Message = coreErr.Message
		if coreErr.Cause != nil {
			detail.Cause = coreErr.Cause.Error()
		}
	}
	var statusErr *native.StatusError
	if errors.As(err, &statusErr) {
		detail.Status = statusErr.Code.String()
	}

	body, _ := json.Marshal(ErrorResponse{Error: detail})
	write(w, status, body)
}

func write(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(body, '\n'))
}

// Fail writes err with the HTTP status its code maps to.
func Fail(w http.ResponseWriter, err error) {
	Error(w, StatusFor(err), err)
}

// StatusFor maps an error code to an HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, core.ErrShapeMismatch),
		errors.Is(err, core.ErrInvalidInput),
		errors.Is(err, core.ErrConfigInvalid):
		return http.StatusBadRequest
	case errors.Is(err, core.ErrUnknownFunction),
		errors.Is(err, core.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, core.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, core.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, core.ErrComputationFailed):
		return http.StatusUnprocessableEntity
	case errors.Is(err, core.ErrLifecycleFailed):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
