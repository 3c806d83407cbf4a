// Package apierr defines the application error carried from the catalog
// layers up to the HTTP boundary, where it is written out verbatim.
package apierr

import (
	"errors"
	"net/http"
)

// Error is an application error with an HTTP status and a client-facing message.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

// Payload is the JSON body written for the error.
func (e *Error) Payload() map[string]string {
	return map[string]string{"message": e.Message}
}

// New creates an application error.
func New(status int, message string) *Error {
	return &Error{StatusCode: status, Message: message}
}

var (
	// NotFound is returned when an item lookup misses.
	NotFound = New(http.StatusNotFound, "Item Not Found")
	// BadRoute is returned for paths outside the known route table.
	BadRoute = New(http.StatusNotFound, "Not Found")
	// ServerError is what any unexpected failure degrades to.
	ServerError = New(http.StatusInternalServerError, "Server Error")
)

// From translates err into an application error. Errors that are not
// application errors become ServerError; the boolean reports whether
// that degradation happened so the caller can log the cause.
func From(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, false
	}
	return ServerError, true
}
