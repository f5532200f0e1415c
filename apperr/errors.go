// Package apperr defines the error kinds shared by the service and handler
// layers. Handlers map kinds to HTTP status codes in a single place instead
// of deciding codes ad hoc per endpoint.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindForbidden
	KindPersistence
	KindIntegrity
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Forbidden(format string, args ...any) *Error {
	return &Error{Kind: KindForbidden, Message: fmt.Sprintf(format, args...)}
}

// Persistence wraps a storage failure. The message is safe to log; handlers
// must not expose err details to callers.
func Persistence(err error, format string, args ...any) *Error {
	return &Error{Kind: KindPersistence, Message: fmt.Sprintf(format, args...), Err: err}
}

// Integrity marks a failure that may have left orphaned records behind.
// It is logged as a data-integrity event, never returned to callers.
func Integrity(err error, format string, args ...any) *Error {
	return &Error{Kind: KindIntegrity, Message: fmt.Sprintf(format, args...), Err: err}
}

// InsufficientStockError is a validation error that names the product and
// carries the available vs requested quantities.
type InsufficientStockError struct {
	Product   string
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Insufficient stock for product '%s'. Available: %d, Requested: %d",
		e.Product, e.Available, e.Requested)
}

// KindOf extracts the Kind from err, defaulting to KindPersistence for
// unclassified errors.
func KindOf(err error) Kind {
	var ise *InsufficientStockError
	if errors.As(err, &ise) {
		return KindValidation
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindPersistence
}
