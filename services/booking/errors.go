package booking

import (
	"errors"
	"fmt"
)

// Engine error codes.
const (
	CodeNotFound     = "notFound"
	CodeInvalidInput = "invalidInput"
	CodeConflict     = "conflict"
	CodeForbidden    = "forbidden"
)

// Error is a booking engine failure with a machine-readable code.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newError(code, format string, args ...any) error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// CodeOf returns the engine error code carried by err, or an empty string
// for errors that did not originate from validation.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
