// Package errors defines the error taxonomy shared by services, storage and
// the HTTP surface. Every public operation resolves to either a value or an
// ErrorWithStatusCode; anything else is treated as an internal server error
// at the handler boundary.
package errors

import "net/http"

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

// NewValidation marks client-fixable input errors (400).
func NewValidation(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusBadRequest}
}

// NewNotFound marks a missing record or remote asset (404).
func NewNotFound(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusNotFound}
}

// NewUnauthorized marks missing/invalid/expired credentials (401).
func NewUnauthorized(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusUnauthorized}
}

// IsNotFound reports whether err carries a 404 status.
func IsNotFound(err error) bool {
	e, ok := err.(*ErrorWithStatusCode)
	return ok && e.StatusCode == http.StatusNotFound
}
