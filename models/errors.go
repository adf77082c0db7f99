package models

import (
	"errors"
	"fmt"
)

// Domain errors shared by the controllers. Handlers translate these into
// HTTP status codes; anything else is logged and reported as a generic 500.
var (
	ErrNotFound      = errors.New("not found")
	ErrEmptyCart     = errors.New("no items in cart")
	ErrBagReferenced = errors.New("cannot delete bag that has been ordered")
)

// ValidationError marks bad or missing input.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

type InsufficientStockError struct {
	BagID     uint
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("bag %d not available in the requested quantity (%d)", e.BagID, e.Requested)
}

type InvalidTransitionError struct {
	From OrderStatus
	To   OrderStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot change status from %s to %s", e.From, e.To)
}
