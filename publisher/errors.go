package publisher

import (
	"errors"

	"github.com/samgozman/orc-brief/pkg/errlvl"
)

var (
	errEmptyCredentials = errors.New("telegram token and chat id are required")
	errSend             = errors.New("failed to send telegram message")
)

// Error is a custom error type that contains the severity level of the error.
type Error struct {
	// severity level of the error
	level errlvl.Lvl
	// errors stack (preferably generic error + the real error)
	errs []error
}

// Error returns the string representation of the error.
func (e *Error) Error() string {
	return e.Unwrap().Error()
}

// Unwrap returns the leveled error stack so errors.Is works on both the level and the cause.
func (e *Error) Unwrap() error {
	if len(e.errs) == 1 {
		return errlvl.Wrap(e.errs[0], e.level)
	}

	return errlvl.Wrap(errors.Join(e.errs...), e.level)
}

// newError creates a new Error instance with the given errors.
func newError(lvl errlvl.Lvl, errs ...error) *Error {
	return &Error{
		level: lvl,
		errs:  errs,
	}
}
