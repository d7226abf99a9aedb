package commands

import (
	"errors"

	"ordermgmt/internal/core/domain/model/kernel"
	"ordermgmt/internal/core/domain/model/order"
	"ordermgmt/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand represents a request to move an order into a new
// lifecycle status. The role is carried as-is: an unknown role is not a
// command validation failure, it surfaces downstream as a permission error so
// the boundary can answer 403 rather than 400.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	targetStatus order.Status
	operator     string
	role         order.Role
	remark       string

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to transition an order.
// remark is optional free text attached to the audit trail.
func NewChangeOrderStatusCommand(
	orderID kernel.UUID,
	targetStatus order.Status,
	operator string,
	role order.Role,
	remark string,
) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		role:   role,
		remark: remark,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTargetStatus(targetStatus),
		cmd.setOperator(operator),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TargetStatus returns the status the order should move into.
func (c ChangeOrderStatusCommand) TargetStatus() order.Status {
	return c.targetStatus
}

// Operator returns the identity of the requesting actor.
func (c ChangeOrderStatusCommand) Operator() string {
	return c.operator
}

// Role returns the actor's role.
func (c ChangeOrderStatusCommand) Role() order.Role {
	return c.role
}

// Remark returns the optional free-text note.
func (c ChangeOrderStatusCommand) Remark() string {
	return c.remark
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setTargetStatus(targetStatus order.Status) error {
	if err := targetStatus.Validate(); err != nil {
		return err
	}
	c.targetStatus = targetStatus
	return nil
}

func (c *ChangeOrderStatusCommand) setOperator(operator string) error {
	if operator == "" {
		return ErrOperatorIsRequired
	}
	c.operator = operator
	return nil
}
