package errors

import (
	"fmt"
	"net/http"
)

// ErrorKind classifies an API error and selects its HTTP status
type ErrorKind string

const (
	KindNotFound           ErrorKind = "not_found"
	KindMethodNotAllowed   ErrorKind = "method_not_allowed"
	KindInternal           ErrorKind = "internal"
	KindServiceUnavailable ErrorKind = "service_unavailable"
)

var statusByKind = map[ErrorKind]int{
	KindNotFound:           http.StatusNotFound,
	KindMethodNotAllowed:   http.StatusMethodNotAllowed,
	KindInternal:           http.StatusInternalServerError,
	KindServiceUnavailable: http.StatusServiceUnavailable,
}

// APIError is the JSON body of every failed response
type APIError struct {
	Kind      ErrorKind         `json:"kind"`
	Message   string            `json:"message"`
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty"`

	cause error
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// Unwrap returns the error the API error was built from, if any
func (e *APIError) Unwrap() error {
	return e.cause
}

// HTTPStatus maps the kind to a status code; unknown kinds are 500
func (e *APIError) HTTPStatus() int {
	if status, ok := statusByKind[e.Kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// New creates an API error of kind
func New(kind ErrorKind, format string, args ...interface{}) *APIError {
	return &APIError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NotFound reports an unknown resource, e.g. NotFound("route /api/x")
func NotFound(resource string) *APIError {
	return New(KindNotFound, "%s not found", resource)
}

// MethodNotAllowed reports a known route hit with the wrong method
func MethodNotAllowed(method string) *APIError {
	return New(KindMethodNotAllowed, "method %s not allowed", method)
}

// From turns err into an API error of kind with a client-safe message. The
// original error stays reachable through errors.Is/As but is never rendered.
// Details of an APIError cause are kept.
func From(err error, kind ErrorKind, message string) *APIError {
	if err == nil {
		return nil
	}

	apiErr := &APIError{Kind: kind, Message: message, cause: err}
	if orig, ok := err.(*APIError); ok {
		apiErr.Details = orig.Details
	}
	return apiErr
}
