package loghive

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorCode identifies a class of loghive failure.
type ErrorCode int

const (
	// ErrCodeUnknown represents an unclassified error
	ErrCodeUnknown ErrorCode = iota

	// ErrCodeInvalidLevel means a supplied level name is outside the recognized set
	ErrCodeInvalidLevel

	// ErrCodeNotInitialized means a configuration step ran without a config present
	ErrCodeNotInitialized

	// ErrCodeDirCreate means the log directory could not be created
	ErrCodeDirCreate

	// ErrCodeSinkSetup means a destination could not be opened or connected
	ErrCodeSinkSetup
)

// Error is a structured loghive error with the failed operation and,
// where applicable, the path or address involved.
type Error struct {
	Code ErrorCode
	Op   string
	Path string
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("loghive: %s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("loghive: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error by code, or the underlying error directly.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	if targetErr, ok := target.(*Error); ok {
		return e.Code == targetErr.Code
	}
	return e.Err != nil && e.Err == target
}

// ErrInvalidLevel matches any invalid-level error via errors.Is.
var ErrInvalidLevel = &Error{Code: ErrCodeInvalidLevel, Op: "parse level"}

// InvalidLevelError builds the error returned when a level name is not
// recognized. The message names the offending value.
func InvalidLevelError(value string) *Error {
	return &Error{
		Code: ErrCodeInvalidLevel,
		Op:   "parse level",
		Err:  errors.Errorf("invalid log level: %s", value),
	}
}

func sinkError(op, path string, err error) *Error {
	return &Error{
		Code: ErrCodeSinkSetup,
		Op:   op,
		Path: path,
		Err:  err,
	}
}
