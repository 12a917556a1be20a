package errs

import (
	"github.com/pkg/errors"
)

// Sentinel failure classes raised by services. The webserver boundary maps
// each class to a fixed HTTP status, so handlers never translate errors
// themselves.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrConflict     = errors.New("operation conflicts with related records")
	ErrInvalid      = errors.New("invalid argument")
	ErrUnauthorized = errors.New("invalid credentials")
)

// NotFound wraps ErrNotFound with a resource description.
func NotFound(what string, id interface{}) error {
	return errors.Wrapf(ErrNotFound, "%s %v", what, id)
}

// Invalid wraps ErrInvalid with a user-facing message.
func Invalid(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalid, format, args...)
}

// Conflict wraps ErrConflict with a user-facing message.
func Conflict(format string, args ...interface{}) error {
	return errors.Wrapf(ErrConflict, format, args...)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
