package user

import "errors"

// ErrInvalidCredentials is returned for unknown emails and wrong passwords
// alike, so login responses do not leak which one failed.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrAccountDisabled is returned when a banned or deleted account signs in.
var ErrAccountDisabled = errors.New("account is disabled")

// ValidationError carries a user-facing message for malformed registration
// input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidation reports whether err is a registration validation failure.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
