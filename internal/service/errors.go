package service

import "errors"

var (
	// ErrInvalidCredentials indicates that provided login credentials are incorrect.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailTaken is returned when registering or updating to an email that already exists.
	ErrEmailTaken = errors.New("email already in use")
	// ErrNotFound indicates the referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden indicates the caller is authenticated but not permitted.
	ErrForbidden = errors.New("forbidden")
	// ErrValidation indicates a request failed input validation.
	ErrValidation = errors.New("validation failed")
)

// validationError wraps a human-readable validation message so handlers can
// distinguish bad input from internal failures.
func validationError(msg string) error {
	return &valErr{msg: msg}
}

type valErr struct {
	msg string
}

func (e *valErr) Error() string { return e.msg }

func (e *valErr) Is(target error) bool { return target == ErrValidation }
