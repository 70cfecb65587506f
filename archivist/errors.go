package archivist

import (
	"errors"

	"github.com/samgozman/orc-brief/pkg/errlvl"
)

// archivistError is a service-level error type.
type archivistError error

var (
	errCreateDir   archivistError = errors.New("failed to create output directory")
	errWriteReport archivistError = errors.New("failed to write report")
	errEncodeState archivistError = errors.New("failed to encode state")
	errWriteState  archivistError = errors.New("failed to write state")
	errReadState   archivistError = errors.New("failed to read state")
)

// newError creates a wrapped error instance with the given errors.
func newError(lvl errlvl.Lvl, genericErr archivistError, err error) error {
	var wrappedErr error
	if err != nil {
		wrappedErr = errlvl.Wrap(errors.Join(genericErr, err), lvl)
	} else {
		wrappedErr = errlvl.Wrap(genericErr, lvl)
	}

	return wrappedErr
}
