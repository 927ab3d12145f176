package entity

import (
	"errors"
	"fmt"
)

// Domain errors shared by services and controllers. All of them are
// recovered at the point of the user action and surfaced as one
// human-readable notification; none are retried.
var (
	ErrCouponNotFound = errors.New("coupon not found")
	ErrEmptyCart      = errors.New("cart is empty")
	ErrNotAuthorized  = errors.New("not authorized")
)

// MinimumNotMetError means the cart subtotal is below the coupon's minimum.
// Shortfall is carried for display ("add Rp X more").
type MinimumNotMetError struct {
	Minimum   int64
	Subtotal  int64
	Shortfall int64
}

func (e *MinimumNotMetError) Error() string {
	return fmt.Sprintf("cart subtotal below coupon minimum, add %d more", e.Shortfall)
}

// IllegalTransitionError means the requested status edge is not one of the
// two legal ones (PENDING->PREPARING, PREPARING->DELIVERED).
type IllegalTransitionError struct {
	From OrderStatus
	To   OrderStatus
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("illegal order status transition %s -> %s", e.From, e.To)
}

// AmountMismatchError is the simulated payment gate rejection: the entered
// amount must equal the expected amount exactly.
type AmountMismatchError struct {
	Expected int64
}

func (e *AmountMismatchError) Error() string {
	return fmt.Sprintf("entered amount does not match, expected %d", e.Expected)
}

// CollaboratorError wraps a failure from an external boundary
// (media host, mail delivery). Op names the boundary.
type CollaboratorError struct {
	Op  string
	Err error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *CollaboratorError) Unwrap() error { return e.Err }
