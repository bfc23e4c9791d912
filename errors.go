package chrono

import (
	"errors"
	"fmt"
)

// ErrorCode represents calendar error categories.
type ErrorCode string

// Error codes for all calendar error categories.
const (
	// Invalid argument errors — rejected at construction time.
	ErrCodeValueOutOfRange ErrorCode = "VALUE_OUT_OF_RANGE"
	ErrCodeParse           ErrorCode = "PARSE_ERROR"

	// Unsupported temporal errors — the receiving type cannot answer.
	ErrCodeUnsupportedField ErrorCode = "UNSUPPORTED_FIELD"
	ErrCodeUnsupportedUnit  ErrorCode = "UNSUPPORTED_UNIT"

	// Comparison errors.
	ErrCodeTypeMismatch ErrorCode = "TYPE_MISMATCH"
)

// Error is the standard calendar error type.
type Error struct {
	Code    ErrorCode      `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
	cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.cause
}

// WithCause sets the underlying cause.
func (e *Error) WithCause(cause error) *Error {
	e.cause = cause
	return e
}

// WithDetail adds a detail to the error.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// Is checks if the error matches a target error code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return errors.Is(e.cause, target)
}

// AsType is a generic error type assertion.
// Returns the error as type T and true if the error chain contains type T.
func AsType[T error](err error) (T, bool) {
	var target T
	if errors.As(err, &target) {
		return target, true
	}
	return target, false
}

// IsCode reports whether err carries the given error code.
func IsCode(err error, code ErrorCode) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// newError creates a new Error with the given code and message.
func newError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// errValueOutOfRange creates a range violation error for a field.
func errValueOutOfRange(field Field, value int64) *Error {
	return newError(ErrCodeValueOutOfRange,
		fmt.Sprintf("%s out of range: %d (valid: %s)", field, value, field.Range())).
		WithDetail("field", field.String()).
		WithDetail("value", value)
}

// errParse creates a parse failure error.
func errParse(kind, text string) *Error {
	return newError(ErrCodeParse, fmt.Sprintf("invalid %s format: %q", kind, text)).
		WithDetail("text", text)
}

// errUnsupportedField creates an unsupported field error.
func errUnsupportedField(t Temporal, field Field) *Error {
	return newError(ErrCodeUnsupportedField,
		fmt.Sprintf("field %s not supported by %T", field, t)).
		WithDetail("field", field.String())
}

// errUnsupportedUnit creates an unsupported unit error.
func errUnsupportedUnit(t Temporal, unit Unit) *Error {
	return newError(ErrCodeUnsupportedUnit,
		fmt.Sprintf("unit %s not supported by %T", unit, t)).
		WithDetail("unit", unit.String())
}

// errTypeMismatch creates a comparison error for incomparable types.
func errTypeMismatch(a, b Temporal) *Error {
	return newError(ErrCodeTypeMismatch,
		fmt.Sprintf("cannot compare %T with %T", a, b))
}
