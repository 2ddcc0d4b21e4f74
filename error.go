package kmp

import "fmt"

// ErrInvalidConfig indicates that a Config failed validation.
var ErrInvalidConfig = &Error{
	Kind:    InvalidConfig,
	Message: "invalid matcher configuration",
}

// ErrNeedleTooLong indicates that a needle exceeds Config.MaxNeedleLen.
var ErrNeedleTooLong = &Error{
	Kind:    NeedleTooLong,
	Message: "needle too long",
}

// ErrorKind classifies matcher construction errors
type ErrorKind uint8

const (
	// InvalidConfig indicates configuration validation failed
	InvalidConfig ErrorKind = iota

	// NeedleTooLong indicates the needle is longer than the configured limit
	NeedleTooLong
)

// String returns a human-readable error kind name
func (k ErrorKind) String() string {
	switch k {
	case InvalidConfig:
		return "InvalidConfig"
	case NeedleTooLong:
		return "NeedleTooLong"
	default:
		return fmt.Sprintf("UnknownErrorKind(%d)", k)
	}
}

// Error is returned when a Matcher cannot be built.
//
// Prepare and Search never fail; only the Compile functions return errors.
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error // Optional underlying error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("kmp: %s: %v", e.Message, e.Cause)
	}
	return "kmp: " + e.Message
}

// Unwrap returns the underlying error (for errors.Is/As)
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}
