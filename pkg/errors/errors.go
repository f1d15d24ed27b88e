package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// NewAPIError returns a new APIError with the given status code and message.
func NewAPIError(statusCode int, code, message string) *APIError {
	if message == "" {
		message = http.StatusText(statusCode)
	}
	return &APIError{
		StatusCode: statusCode,
		Code:       code,
		Message:    message,
	}
}

// FromResponse builds an APIError from a non-2xx response body. The body is
// expected to be the backend's JSON error envelope; anything else falls back
// to the HTTP status text.
func FromResponse(statusCode int, body []byte) *APIError {
	var envelope apiErrorBody
	if err := json.Unmarshal(body, &envelope); err == nil {
		message := envelope.Message
		if message == "" {
			message = envelope.Error
		}
		if message != "" {
			return NewAPIError(statusCode, envelope.Code, message)
		}
	}
	return NewAPIError(statusCode, "", "")
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// IsStatus reports whether err is an APIError with the given HTTP status.
func IsStatus(err error, statusCode int) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == statusCode
	}
	return false
}

// IsUnauthorized reports whether err is a 401 APIError.
func IsUnauthorized(err error) bool {
	return IsStatus(err, http.StatusUnauthorized)
}
