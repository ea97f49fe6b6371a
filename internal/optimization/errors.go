package optimization

import (
	"errors"
	"fmt"
)

// Kind classifies an engine error. Every error the engine returns carries
// exactly one kind so callers can branch without string matching.
type Kind int

const (
	// KindInvalidConfiguration marks bad constructor parameters.
	KindInvalidConfiguration Kind = iota + 1
	// KindInvalidState marks an operation invoked in a state that forbids it.
	KindInvalidState
	// KindNotFound marks an archive lookup on an unknown id.
	KindNotFound
)

// String returns the canonical name of the kind.
func (k Kind) String() string {
	switch k {
	case KindInvalidConfiguration:
		return "invalid configuration"
	case KindInvalidState:
		return "invalid state"
	case KindNotFound:
		return "not found"
	default:
		return "unknown"
	}
}

// Error represents an engine error with context. All rejected calls are
// validate-then-apply: when an Error comes back, no state was mutated.
type Error struct {
	// Kind is the error classification.
	Kind Kind
	// Op is the operation that rejected the call.
	Op string
	// Message describes what was wrong.
	Message string
	// Err is the underlying error, if any.
	Err error
}

// Error returns the string representation of the error.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Message
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.Op != "" {
		msg = fmt.Sprintf("%s: %s", e.Op, msg)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error, if any.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// WithOperation adds operation context to the error.
func (e *Error) WithOperation(op string) *Error {
	e.Op = op
	return e
}

// NewError creates a new engine error of the given kind.
func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// NewErrorf creates a new engine error with a formatted message.
func NewErrorf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err (or any error it wraps) is an engine error of
// the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// IsInvalidConfiguration reports whether err is a configuration error.
func IsInvalidConfiguration(err error) bool { return IsKind(err, KindInvalidConfiguration) }

// IsInvalidState reports whether err is a state machine violation.
func IsInvalidState(err error) bool { return IsKind(err, KindInvalidState) }

// IsNotFound reports whether err is an unknown-id lookup.
func IsNotFound(err error) bool { return IsKind(err, KindNotFound) }
