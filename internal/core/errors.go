package core

import (
	"github.com/pkg/errors"
)

var (
	// ErrNotFound is returned by repositories when no document matches.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned by repositories when a unique key is already taken.
	ErrDuplicate = errors.New("duplicate key")
	// ErrInvalidCredentials is returned when a login does not match a user.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// FieldError is used to indicate an error with a specific JSON field.
type FieldError struct {
	Field string
	Error string
}

// ValidationError reports a request the caller can fix.
type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{Err: err, Fields: flds}
}

// Invalid is shorthand for a validation error on a single field.
func Invalid(field, msg string) error {
	return NewValidationError(errors.New(msg), FieldError{Field: field, Error: msg})
}

func (err *ValidationError) Error() string {
	if err.Err == nil {
		return "validation failed"
	}
	return err.Err.Error()
}

func (err *ValidationError) Unwrap() error {
	return err.Err
}

// IsNotFound reports whether err is, or wraps, ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicate reports whether err is, or wraps, ErrDuplicate.
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
