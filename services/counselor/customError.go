package counselor

import "errors"

// ErrNotFound is returned when the counselor profile does not exist.
var ErrNotFound = errors.New("counselor not found")

// ValidationError carries a user-facing message for out-of-policy profile
// input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidation reports whether err is a profile validation failure.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
