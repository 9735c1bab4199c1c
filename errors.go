package jvmdesc

import (
	"errors"
	"fmt"
)

// ErrorCode classifies descriptor failures so callers can tell caller misuse
// apart from an environment that cannot satisfy a well-formed descriptor.
type ErrorCode string

const (
	// CodeInvalidArgument reports a missing required input or a void type
	// used where a parameter type is expected.
	CodeInvalidArgument ErrorCode = "invalid_argument"

	// CodeOutOfBounds reports an index or range outside its documented bounds.
	CodeOutOfBounds ErrorCode = "out_of_bounds"

	// CodeSyntax reports malformed descriptor text.
	CodeSyntax ErrorCode = "syntax"

	// CodeResolution reports a well-formed descriptor the runtime environment
	// cannot satisfy: an unknown class name, or a method type exceeding what
	// the runtime representation supports.
	CodeResolution ErrorCode = "resolution"
)

// Error is the error value returned by every operation in this module.
type Error struct {
	Code    ErrorCode
	Message string
	Details map[string]any
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewError creates a new descriptor error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Errorf creates a new descriptor error with a formatted message.
func Errorf(code ErrorCode, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// WithDetail returns a new Error with the key-value pair added to details.
// The receiver is not modified.
func (e *Error) WithDetail(key string, value any) *Error {
	details := make(map[string]any, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details[key] = value
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
	}
}

// CodeOf extracts the ErrorCode from err, unwrapping as needed.
// It returns the empty code for nil and for errors of other types.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
