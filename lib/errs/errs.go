package errs

import (
	"errors"
	"net/http"
)

// HTTPError is the closed set of failures that may cross the API boundary
// with their own status code and message. Anything else is coerced to a
// generic 500 by Response.
type HTTPError interface {
	error
	Status() int
}

type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

func (e ValidationError) Status() int {
	return http.StatusBadRequest
}

// MalformedInputError covers request bodies that are not parseable at all,
// as opposed to parseable bodies that fail field validation.
type MalformedInputError struct {
	Message string
}

func (e MalformedInputError) Error() string {
	return e.Message
}

func (e MalformedInputError) Status() int {
	return http.StatusBadRequest
}

type UnauthorizedError struct {
	Message string
}

func (e UnauthorizedError) Error() string {
	if e.Message == "" {
		return "Unauthorized"
	}
	return e.Message
}

func (e UnauthorizedError) Status() int {
	return http.StatusUnauthorized
}

// InternalError carries the underlying cause for logging. The cause is never
// part of the caller-facing message.
type InternalError struct {
	Message string
	Err     error
}

func (e InternalError) Error() string {
	if e.Message == "" {
		return "Internal Server Error"
	}
	return e.Message
}

func (e InternalError) Status() int {
	return http.StatusInternalServerError
}

func (e InternalError) Unwrap() error {
	return e.Err
}

// Response resolves any error to the status code and message a caller is
// allowed to see. Unrecognized errors collapse to 500 with a generic message.
func Response(err error) (int, string) {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Status(), httpErr.Error()
	}
	return http.StatusInternalServerError, "Internal Server Error"
}
