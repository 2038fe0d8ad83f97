package domain

import (
	"errors"
	"fmt"
	"strings"
)

type Kind int

const (
	KindNotFound Kind = iota + 1
	KindOutOfStock
	KindInsufficientFunds
	KindConflict
	KindInvalidTransition
	KindStoreUnavailable
	KindInvalidInput
	KindAlreadyExists
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindOutOfStock:
		return "out_of_stock"
	case KindInsufficientFunds:
		return "insufficient_funds"
	case KindConflict:
		return "conflict"
	case KindInvalidTransition:
		return "invalid_transition"
	case KindStoreUnavailable:
		return "store_unavailable"
	case KindInvalidInput:
		return "invalid_input"
	case KindAlreadyExists:
		return "already_exists"
	}
	return "unknown"
}

// Error is the structured error returned by services. Callers branch on Kind
// with errors.Is against the sentinels below, and read the context fields
// with errors.As.
type Error struct {
	Kind      Kind
	Entity    string
	ID        string
	Shortfall int64
	Message   string
	Op        string
	Err       error
}

var (
	ErrNotFound          = &Error{Kind: KindNotFound}
	ErrOutOfStock        = &Error{Kind: KindOutOfStock}
	ErrInsufficientFunds = &Error{Kind: KindInsufficientFunds}
	ErrConflict          = &Error{Kind: KindConflict}
	ErrInvalidTransition = &Error{Kind: KindInvalidTransition}
	ErrStoreUnavailable  = &Error{Kind: KindStoreUnavailable}
	ErrInvalidInput      = &Error{Kind: KindInvalidInput}
	ErrAlreadyExists     = &Error{Kind: KindAlreadyExists}
)

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(strings.ReplaceAll(e.Kind.String(), "_", " "))
	if e.Entity != "" {
		b.WriteString(": ")
		b.WriteString(e.Entity)
		if e.ID != "" {
			b.WriteString(" ")
			b.WriteString(e.ID)
		}
	}
	if e.Kind == KindInsufficientFunds && e.Shortfall > 0 {
		fmt.Fprintf(&b, " (shortfall %d)", e.Shortfall)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Op != "" {
		b.WriteString(" [")
		b.WriteString(e.Op)
		b.WriteString("]")
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func NotFound(entity, id string) error {
	return &Error{Kind: KindNotFound, Entity: entity, ID: id}
}

func OutOfStock(productID string) error {
	return &Error{Kind: KindOutOfStock, Entity: "product", ID: productID}
}

func InsufficientFunds(userID string, shortfall int64) error {
	return &Error{Kind: KindInsufficientFunds, Entity: "user", ID: userID, Shortfall: shortfall}
}

func Conflict(entity, id string) error {
	return &Error{Kind: KindConflict, Entity: entity, ID: id}
}

func InvalidTransition(orderID string, from, to OrderStatus) error {
	return &Error{
		Kind:    KindInvalidTransition,
		Entity:  "order",
		ID:      orderID,
		Message: fmt.Sprintf("%s -> %s", from, to),
	}
}

// Finalized reports an order whose terminal state was written by a
// concurrent caller.
func Finalized(orderID string) error {
	return &Error{Kind: KindInvalidTransition, Entity: "order", ID: orderID, Message: "already finalized"}
}

// StillProcessing reports an operation that requires a terminal order.
func StillProcessing(orderID string) error {
	return &Error{Kind: KindInvalidTransition, Entity: "order", ID: orderID, Message: "order is still processing"}
}

func StoreUnavailable(op string, err error) error {
	return &Error{Kind: KindStoreUnavailable, Op: op, Err: err}
}

func InvalidInput(field, msg string) error {
	return &Error{Kind: KindInvalidInput, Entity: field, Message: msg}
}

func AlreadyExists(entity, msg string) error {
	return &Error{Kind: KindAlreadyExists, Entity: entity, Message: msg}
}

// KindOf returns the kind of a structured error, or zero for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
