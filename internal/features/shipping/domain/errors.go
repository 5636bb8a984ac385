package domain

import "errors"

var (
	// ErrMissingDestination is returned when the request has no destination state.
	ErrMissingDestination = errors.New("missing destination state")
	// ErrEmptyCart is returned when the request has no items.
	ErrEmptyCart = errors.New("empty cart")
	// ErrInvalidQuantity is returned when a cart line has a non-positive quantity.
	ErrInvalidQuantity = errors.New("invalid item quantity")
	// ErrComputation signals a corrupt rate table or another unexpected pricing fault.
	ErrComputation = errors.New("shipping computation failed")
)
