package order

import (
	"errors"
	"fmt"

	"ordermgmt/internal/core/domain/model/kernel"
)

var (
	// ErrInvalidTransition is the sentinel for transitions that are not an
	// edge of the status graph. Non-retryable; the caller must pick a legal
	// target.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrForbidden is the sentinel for transitions the actor's role does not
	// permit. Distinct from ErrInvalidTransition so the boundary can render
	// 403 instead of 400.
	ErrForbidden = errors.New("role is not permitted to set status")

	// ErrNotCancellable is the sentinel for cancellation requests against
	// orders whose current status excludes them from cancellation.
	ErrNotCancellable = errors.New("order is not cancellable")

	// ErrStaleTransition is the sentinel raised when the compare-and-swap
	// status write finds the order no longer in the expected status. Safe to
	// retry after re-reading the order.
	ErrStaleTransition = errors.New("order status changed concurrently")
)

// InvalidTransitionError reports a (from, to) pair that is not an edge of the
// transition graph.
type InvalidTransitionError struct {
	From Status
	To   Status
}

// NewInvalidTransitionError creates an InvalidTransitionError for the pair.
func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// ForbiddenError reports a role lacking permission for the target status.
type ForbiddenError struct {
	Role Role
	To   Status
}

// NewForbiddenError creates a ForbiddenError for the role and target status.
func NewForbiddenError(role Role, to Status) *ForbiddenError {
	return &ForbiddenError{Role: role, To: to}
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("%s: role %s cannot set status %s", ErrForbidden, e.Role, e.To)
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// NotCancellableError reports an order whose current status excludes it from
// cancellation. Reason carries the human explanation.
type NotCancellableError struct {
	Status Status
	Reason string
}

// NewNotCancellableError creates a NotCancellableError for the status.
func NewNotCancellableError(status Status, reason string) *NotCancellableError {
	return &NotCancellableError{Status: status, Reason: reason}
}

func (e *NotCancellableError) Error() string {
	return fmt.Sprintf("%s: %s", ErrNotCancellable, e.Reason)
}

func (e *NotCancellableError) Unwrap() error {
	return ErrNotCancellable
}

// StaleTransitionError reports a lost compare-and-swap: the order was not in
// the status the caller read before requesting the transition.
type StaleTransitionError struct {
	OrderID  kernel.UUID
	Expected Status
}

// NewStaleTransitionError creates a StaleTransitionError for the order.
func NewStaleTransitionError(orderID kernel.UUID, expected Status) *StaleTransitionError {
	return &StaleTransitionError{OrderID: orderID, Expected: expected}
}

func (e *StaleTransitionError) Error() string {
	return fmt.Sprintf("%s: order %s is no longer in status %s", ErrStaleTransition, e.OrderID, e.Expected)
}

func (e *StaleTransitionError) Unwrap() error {
	return ErrStaleTransition
}
