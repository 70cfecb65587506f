package errlvl

import (
	"errors"
	"fmt"
	"log/slog"
)

type Lvl uint8

const (
	DEBUG Lvl = iota + 1
	INFO
	WARN
	ERROR
	FATAL
)

// ErrorLevel is a type that represents the severity of an error in the application.
//
// Every package of the brief tags its errors with one of these levels, so the job can decide
// how loud a failure should be (inline placeholder, warning log or fatal exit).
type ErrorLevel error

var (
	ErrDebug ErrorLevel = errors.New("[DEBUG]")
	ErrInfo  ErrorLevel = errors.New("[INFO]")
	ErrWarn  ErrorLevel = errors.New("[WARN]")
	ErrError ErrorLevel = errors.New("[ERROR]")
	ErrFatal ErrorLevel = errors.New("[FATAL]")
)

// Wrap wraps the given error with the given level. Errors that already carry a level are returned as is.
func Wrap(err error, level Lvl) error {
	if hasLevel(err) {
		return err
	}

	switch level {
	case DEBUG:
		return fmt.Errorf("%w %w", ErrDebug, err)
	case INFO:
		return fmt.Errorf("%w %w", ErrInfo, err)
	case WARN:
		return fmt.Errorf("%w %w", ErrWarn, err)
	case ERROR:
		return fmt.Errorf("%w %w", ErrError, err)
	case FATAL:
		return fmt.Errorf("%w %w", ErrFatal, err)
	default:
		return fmt.Errorf("%w %w", ErrError, err)
	}
}

// LevelOf returns the level the error was wrapped with. Untagged errors are treated as ERROR.
func LevelOf(err error) Lvl {
	switch {
	case err == nil:
		return DEBUG
	case errors.Is(err, ErrFatal):
		return FATAL
	case errors.Is(err, ErrError):
		return ERROR
	case errors.Is(err, ErrWarn):
		return WARN
	case errors.Is(err, ErrInfo):
		return INFO
	case errors.Is(err, ErrDebug):
		return DEBUG
	default:
		return ERROR
	}
}

// SlogLevel maps the level of the error to the slog level it should be logged with.
func SlogLevel(err error) slog.Level {
	switch LevelOf(err) {
	case DEBUG:
		return slog.LevelDebug
	case INFO:
		return slog.LevelInfo
	case WARN:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// hasLevel checks if the given error has a level set already.
func hasLevel(err error) bool {
	return errors.Is(err, ErrDebug) || errors.Is(err, ErrInfo) || errors.Is(err, ErrWarn) || errors.Is(err, ErrError) || errors.Is(err, ErrFatal)
}
