// Package errors provides code-typed errors for cloudgram.
//
// Every failure that crosses a package boundary carries a [Code], so the CLI
// can branch on the class of failure without string matching, and users see
// one consistent message shape.
//
// Codes group by prefix:
//   - INVALID_*: input validation failures
//   - UNKNOWN_*: unresolvable references in a topology
//   - DUPLICATE_*: identifier collisions
//   - RENDER_*: failures surfaced by the rendering backend
//
// Construct errors with [New] or [Wrap], test them with [Is]:
//
//	err := errors.New(errors.ErrCodeInvalidTopology, "node %q has no id", id)
//	if errors.Is(err, errors.ErrCodeInvalidTopology) { ... }
package errors

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error class.
type Code string

const (
	// Input validation
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidTopology Code = "INVALID_TOPOLOGY"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidID       Code = "INVALID_ID"
	ErrCodeInvalidPath     Code = "INVALID_PATH"

	// Topology references
	ErrCodeDuplicateID     Code = "DUPLICATE_ID"
	ErrCodeUnknownParent   Code = "UNKNOWN_PARENT"
	ErrCodeUnknownNode     Code = "UNKNOWN_NODE"
	ErrCodeUnknownCategory Code = "UNKNOWN_CATEGORY"

	// Missing resources
	ErrCodeFileNotFound         Code = "FILE_NOT_FOUND"
	ErrCodeArchitectureNotFound Code = "ARCHITECTURE_NOT_FOUND"

	// Rendering
	ErrCodeRenderBackend Code = "RENDER_BACKEND"

	// Everything else
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error pairs a Code with a human-readable message and an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return string(e.Code) + ": " + e.Message
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
}

// Unwrap exposes the cause to the errors.Is/As chain.
func (e *Error) Unwrap() error { return e.Cause }

// New builds an Error from a code and a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds an Error around a cause. The cause stays reachable through
// errors.Is and errors.As.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether any error in err's chain carries the given code.
func Is(err error, code Code) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}

// GetCode returns the code of the first *Error in err's chain, or the empty
// code when there is none.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns err's message without the code prefix, suitable for
// terminal display. Non-*Error values print as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
