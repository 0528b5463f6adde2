package grocy

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error is the uniform error returned for any non-2xx Grocy API response.
// It carries the HTTP status code and the message extracted from the
// response body's error_message field, falling back to the standard status
// text when the body is not in the expected shape.
type Error struct {
	StatusCode int    // HTTP status code of the failed response
	Message    string // Server-provided error message or status text
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("grocy: %s (status %d)", e.Message, e.StatusCode)
}

// IsClientError reports whether the error was caused by the request (4xx).
func (e *Error) IsClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

// IsServerError reports whether the error was caused by the backend (5xx).
func (e *Error) IsServerError() bool {
	return e.StatusCode >= 500
}

// newError builds an *Error from a failed response body. Grocy reports
// errors as {"error_message": "..."}; anything else falls back to the
// standard status text.
func newError(statusCode int, body []byte) *Error {
	msg := http.StatusText(statusCode)
	var payload struct {
		ErrorMessage string `json:"error_message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.ErrorMessage != "" {
		msg = payload.ErrorMessage
	}
	return &Error{StatusCode: statusCode, Message: msg}
}

// AsError extracts the *Error from err's chain, if present.
func AsError(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

// IsNotFound reports whether err is a Grocy API error with status 404.
// Both Get and Delete on a missing object fail this way.
func IsNotFound(err error) bool {
	e, ok := AsError(err)
	return ok && e.StatusCode == http.StatusNotFound
}
