// internal/core/domain/errors.go
package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies failures surfaced by the core operations.
type ErrorKind int

// Error kinds
const (
	KindUnknown ErrorKind = iota
	KindValidation
	KindReference
	KindInsufficientStock
	KindStorageUnavailable
	KindConstraintViolation
	KindNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindReference:
		return "reference_error"
	case KindInsufficientStock:
		return "insufficient_stock"
	case KindStorageUnavailable:
		return "storage_unavailable"
	case KindConstraintViolation:
		return "constraint_violation"
	case KindNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is comparisons. Matching is by kind only.
var (
	ErrValidation          = &Error{Kind: KindValidation}
	ErrReference           = &Error{Kind: KindReference}
	ErrInsufficientStock   = &Error{Kind: KindInsufficientStock}
	ErrStorageUnavailable  = &Error{Kind: KindStorageUnavailable}
	ErrConstraintViolation = &Error{Kind: KindConstraintViolation}
	ErrNotFound            = &Error{Kind: KindNotFound}
)

// Error is a typed failure carrying a kind, the operation that produced it,
// a human readable message and the underlying cause.
type Error struct {
	Kind ErrorKind
	Op   string
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	if e.Msg != "" {
		b.WriteString(e.Msg)
	} else {
		b.WriteString(e.Kind.String())
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// NewError builds a typed error.
func NewError(kind ErrorKind, op, msg string, cause error) *Error {
	return &Error{Kind: kind, Op: op, Msg: msg, Err: cause}
}

// Errorf builds a typed error with a formatted message and no cause.
func Errorf(kind ErrorKind, op, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of the outermost *Error in err's chain.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnknown
}

// OrderCreationFailed is returned by order placement on any failure.
// No order exists when this error is returned.
type OrderCreationFailed struct {
	Cause error
}

func (e *OrderCreationFailed) Error() string {
	return fmt.Sprintf("order creation failed: %v", e.Cause)
}

func (e *OrderCreationFailed) Unwrap() error { return e.Cause }

// Kind returns the most specific kind carried by the cause.
func (e *OrderCreationFailed) Kind() ErrorKind { return KindOf(e.Cause) }

// StockShortage describes a single guarded decrement that could not be applied.
type StockShortage struct {
	InventoryID int64
	Required    int
	Available   int
}

func (s StockShortage) String() string {
	return fmt.Sprintf("inventory %d requires %d, %d on hand", s.InventoryID, s.Required, s.Available)
}
