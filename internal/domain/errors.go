package domain

import (
	"errors"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrUnavailable = errors.New("unavailable")
)

// Kind classifies an application error. Every error that leaves the service
// layer with a client-facing message carries exactly one Kind.
type Kind int

const (
	KindNotFound Kind = iota
	KindValidationFailed
	KindUnavailable
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindValidationFailed:
		return "validation_failed"
	case KindUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// sentinel returns the package sentinel matching k.
func (k Kind) sentinel() error {
	switch k {
	case KindNotFound:
		return ErrNotFound
	case KindValidationFailed:
		return ErrValidation
	case KindUnavailable:
		return ErrUnavailable
	default:
		return nil
	}
}

// Error is the application error returned by services and storage adapters.
// Message is the exact text shown to clients.
//
// Use errors.Is(err, ErrNotFound) for simple checks, or errors.As(err, &aerr)
// to read the Kind and Message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind.sentinel()
}

// NotFound returns an *Error of KindNotFound carrying msg.
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// ValidationFailed returns an *Error of KindValidationFailed carrying msg.
func ValidationFailed(msg string) *Error {
	return &Error{Kind: KindValidationFailed, Message: msg}
}

// Unavailable returns an *Error of KindUnavailable carrying msg.
func Unavailable(msg string) *Error {
	return &Error{Kind: KindUnavailable, Message: msg}
}
