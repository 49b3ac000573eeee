package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strings"
)

// Kind represents the category of failure raised by a client operation
type Kind string

const (
	// KindInvalidArgument indicates bad local input; no request was sent
	KindInvalidArgument Kind = "invalid argument"
	// KindConnection indicates the server was unreachable (dial, DNS, refused)
	KindConnection Kind = "connection"
	// KindTimeout indicates no response arrived within the configured deadline
	KindTimeout Kind = "timeout"
	// KindHTTP indicates the server responded with a non-2xx status
	KindHTTP Kind = "http"
	// KindMalformedResponse indicates a 2xx body that was not valid JSON
	KindMalformedResponse Kind = "malformed response"
)

// APIError is the classified failure returned by every client operation.
// Exactly one is produced per failed call; callers retrieve it with
// errors.As and switch on Kind.
type APIError struct {
	Kind       Kind
	StatusCode int
	Message    string
	Details    string
	Cause      error
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s error (status %d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *APIError) Unwrap() error {
	return e.Cause
}

// NewInvalidArgumentError creates an invalid-argument error
func NewInvalidArgumentError(message string) *APIError {
	return &APIError{
		Kind:    KindInvalidArgument,
		Message: message,
	}
}

// NewConnectionError creates a connection error
func NewConnectionError(cause error) *APIError {
	return &APIError{
		Kind:    KindConnection,
		Message: "could not connect to the API server",
		Cause:   cause,
	}
}

// NewTimeoutError creates a timeout error
func NewTimeoutError(cause error) *APIError {
	return &APIError{
		Kind:    KindTimeout,
		Message: "request timed out",
		Cause:   cause,
	}
}

// NewMalformedResponseError creates a malformed-response error
func NewMalformedResponseError(cause error) *APIError {
	return &APIError{
		Kind:    KindMalformedResponse,
		Message: "response body is not valid JSON",
		Cause:   cause,
	}
}

// errorBody is the structured error shape the server attaches to failed
// responses: {"error": "...", "details": "..."}
type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

// NewHTTPError creates an http error from a non-2xx response. When the body
// carries the server's structured error object, its message and details are
// lifted into the error; otherwise the raw body text is kept as details.
func NewHTTPError(statusCode int, body []byte) *APIError {
	e := &APIError{
		Kind:       KindHTTP,
		StatusCode: statusCode,
		Message:    "server returned an error",
	}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil && eb.Error != "" {
		e.Message = eb.Error
		e.Details = eb.Details
		return e
	}

	if text := strings.TrimSpace(string(body)); text != "" {
		e.Details = text
	}
	return e
}

// Classify maps a transport-level error into the appropriate APIError.
// Context cancellation is passed through untouched so callers can tell a
// user interrupt apart from a failure.
func Classify(err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}

	var ne net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout()) {
		return NewTimeoutError(err)
	}

	return NewConnectionError(err)
}
