package journalist

import (
	"errors"
	"fmt"

	"github.com/samgozman/orc-brief/pkg/errlvl"
)

var (
	errFetchingFeed = errors.New("failed to fetch feed")
	errPanicFetch   = errors.New("panic in RssProvider.Fetch")
)

// Error is the error type for the Journalist.
type Error struct {
	level        errlvl.Lvl // severity level of the error
	errs         []error
	providerName string
}

func (e *Error) Error() string {
	return e.getWrappedError().Error()
}

func (e *Error) Unwrap() error {
	return e.getWrappedError()
}

func (e *Error) WithProvider(providerName string) *Error {
	e.providerName = providerName
	return e
}

func (e *Error) getWrappedError() error {
	err := errors.Join(e.errs...)

	if e.providerName != "" {
		return errlvl.Wrap(fmt.Errorf("provider %s: %w", e.providerName, err), e.level)
	}

	return errlvl.Wrap(err, e.level)
}

// Cause returns the underlying errors without the journalist sentinel, level and provider prefix.
func (e *Error) Cause() error {
	if len(e.errs) > 1 {
		return errors.Join(e.errs[1:]...)
	}
	return errors.Join(e.errs...)
}

// newError creates a new Error instance.
func newError(lvl errlvl.Lvl, errs ...error) *Error {
	return &Error{
		level: lvl,
		errs:  errs,
	}
}
