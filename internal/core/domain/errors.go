package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested recipe does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrTransport indicates the recipe backend could not be reached
	// or returned an unusable response.
	ErrTransport = errors.New("transport failure")

	// ErrOperationInFlight indicates a mutation was rejected because
	// another one has not completed yet.
	ErrOperationInFlight = errors.New("operation in flight")

	// ErrNotConfigured indicates a required collaborator was not wired.
	ErrNotConfigured = errors.New("not configured")
)

// ValidationError reports required fields that were left empty.
// It matches ErrInvalidInput with errors.Is.
type ValidationError struct {
	Fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid input"
	}
	return fmt.Sprintf("required: %s", strings.Join(e.Fields, ", "))
}

// Is reports whether target is ErrInvalidInput.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// TransportError describes a failed call to the recipe backend.
// It matches ErrTransport with errors.Is.
type TransportError struct {
	// Op is the recipe source operation (list, create, update, delete).
	Op string

	// Method and URL identify the HTTP request.
	Method string
	URL    string

	// StatusCode is the HTTP status, or 0 if no response was received.
	StatusCode int

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	msg := fmt.Sprintf("%s: %s %s", e.Op, e.Method, e.URL)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s: status %d", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrTransport.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}
