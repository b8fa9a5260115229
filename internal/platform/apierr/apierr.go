package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// FieldErrors maps an input field name to the message describing why it was
// rejected.
type FieldErrors map[string]string

type Error struct {
	Status int
	Code   string
	Err    error
	Fields FieldErrors
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

// Validation rejects a request before any mutation. Fields carries one
// message per offending input field.
func Validation(fields FieldErrors) *Error {
	return &Error{
		Status: http.StatusBadRequest,
		Code:   "validation_failed",
		Err:    errors.New("validation failed"),
		Fields: fields,
	}
}

func Unauthorized() *Error {
	return New(http.StatusUnauthorized, "unauthorized", errors.New("unauthorized"))
}

// NotFound covers both a missing row and a row owned by another user; the
// two causes must stay indistinguishable to the caller.
func NotFound(what string) *Error {
	return New(http.StatusNotFound, "not_found", fmt.Errorf("%s not found", what))
}

// From normalizes any error into an *Error, treating unclassified failures
// as internal.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return New(http.StatusInternalServerError, "internal_error", err)
}
