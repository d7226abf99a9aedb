package commands

import (
	"errors"

	"ordermgmt/internal/core/domain/model/kernel"
	"ordermgmt/internal/core/domain/model/order"
	"ordermgmt/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// DefaultCancellationRemark is recorded when the caller supplies no remark.
const DefaultCancellationRemark = "order cancelled"

// CancelOrderCommand represents a request to cancel an order through the
// cancellation policy: a stricter entry point than a plain transition to
// cancelled, with its own eligibility check and a default remark.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	operator string
	role     order.Role
	remark   string

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a cancellation command. An empty remark is
// replaced by DefaultCancellationRemark.
func NewCancelOrderCommand(
	orderID kernel.UUID,
	operator string,
	role order.Role,
	remark string,
) (CancelOrderCommand, error) {
	if remark == "" {
		remark = DefaultCancellationRemark
	}

	cmd := CancelOrderCommand{
		role:   role,
		remark: remark,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOperator(operator),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to cancel.
func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Operator returns the identity of the requesting actor.
func (c CancelOrderCommand) Operator() string {
	return c.operator
}

// Role returns the actor's role.
func (c CancelOrderCommand) Role() order.Role {
	return c.role
}

// Remark returns the cancellation note, never empty.
func (c CancelOrderCommand) Remark() string {
	return c.remark
}

func (c *CancelOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CancelOrderCommand) setOperator(operator string) error {
	if operator == "" {
		return ErrOperatorIsRequired
	}
	c.operator = operator
	return nil
}
