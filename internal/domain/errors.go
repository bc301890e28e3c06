package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failure so that callers can map it to a response
// without inspecting provider-specific error types.
type ErrorKind int

// Error kinds. The zero value is KindUnknown.
const (
	KindUnknown ErrorKind = iota
	KindValidation
	KindProvider
	KindUnexpected
)

// String returns the lower-case name of the kind, used as a log attribute.
func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindProvider:
		return "provider"
	case KindUnexpected:
		return "unexpected"
	default:
		return "unknown"
	}
}

// Sentinel errors matched by kind through errors.Is.
var (
	// ErrValidation matches any error whose kind is KindValidation.
	ErrValidation = errors.New("validation failed")

	// ErrProvider matches any error whose kind is KindProvider.
	ErrProvider = errors.New("provider failed")

	// ErrUnexpected matches any error whose kind is KindUnexpected.
	ErrUnexpected = errors.New("unexpected failure")
)

// Error is the single error type crossing the service boundary.
// Message is safe to show to API callers; Err is the underlying cause and
// is only ever written to logs.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for this error's kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrValidation:
		return e.Kind == KindValidation
	case ErrProvider:
		return e.Kind == KindProvider
	case ErrUnexpected:
		return e.Kind == KindUnexpected
	}
	return false
}

// NewValidationError reports malformed caller input.
func NewValidationError(message string) error {
	return &Error{Kind: KindValidation, Message: message}
}

// NewProviderError reports a failure of the external generation provider.
func NewProviderError(message string, cause error) error {
	return &Error{Kind: KindProvider, Message: message, Err: cause}
}

// NewUnexpectedError reports an internal failure that fits no other kind.
func NewUnexpectedError(message string, cause error) error {
	return &Error{Kind: KindUnexpected, Message: message, Err: cause}
}

// KindOf returns the kind of the first *Error in err's chain.
// Errors that carry no kind are reported as KindUnexpected; nil is KindUnknown.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindUnknown
	}
	var de *Error
	if errors.As(err, &de) && de.Kind != KindUnknown {
		return de.Kind
	}
	return KindUnexpected
}
