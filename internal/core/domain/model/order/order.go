package order

import (
	"errors"
	"fmt"

	"ordermgmt/internal/core/domain/model/kernel"
	"ordermgmt/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root of the order lifecycle. It owns the status
// field; only the status transitioner may move it, and every accepted move is
// recorded as a flow record plus a history entry in the same transaction.
//
// Invariants:
//   - a valid unique identifier
//   - totalAmount is never negative
//   - status is one of the enumeration and moves only along graph edges
//   - instances are created only via NewOrder or RestoreOrder
type Order struct {
	id kernel.UUID

	status Status

	// totalAmount is denormalized by the surrounding order-management system
	// (line items, custom pricing); the lifecycle never recomputes it.
	totalAmount int64

	isConstructed bool
}

// NewOrder creates an order in draft status.
// totalAmount is in minor currency units and must not be negative.
func NewOrder(id kernel.UUID, totalAmount int64) (*Order, error) {
	o := &Order{
		status:        StatusDraft,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setTotalAmount(totalAmount),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence. Unlike NewOrder it
// accepts any valid status, not only draft.
func RestoreOrder(id kernel.UUID, status Status, totalAmount int64) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setStatus(status),
		o.setTotalAmount(totalAmount),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the instance was built through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// TotalAmount returns the order total in minor currency units.
func (o *Order) TotalAmount() int64 {
	return o.totalAmount
}

// TransitionTo moves the order to the target status when the transition graph
// permits it. The permission check is the transitioner's concern, not the
// aggregate's.
func (o *Order) TransitionTo(to Status) error {
	if !IsValidTransition(o.status, to) {
		return NewInvalidTransitionError(o.status, to)
	}

	o.status = to
	return nil
}

// CanCancel reports whether the order is eligible for cancellation and, when
// it is not, a human-readable reason. Eligibility is derived from the
// transition graph (an edge into cancelled must exist), so this predicate
// cannot drift from the registry.
func (o *Order) CanCancel() (bool, string) {
	if IsValidTransition(o.status, StatusCancelled) {
		return true, ""
	}
	return false, fmt.Sprintf("order in %s status cannot be cancelled", o.status.Description())
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setTotalAmount(totalAmount int64) error {
	if totalAmount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("totalAmount",
			fmt.Errorf("%d is negative", totalAmount))
	}
	o.totalAmount = totalAmount
	return nil
}
