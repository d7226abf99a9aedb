package commands

import (
	"errors"

	"ordermgmt/internal/core/domain/model/kernel"
	"ordermgmt/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrTotalAmountIsInvalid = errors.New("totalAmount must not be negative")
	ErrOperatorIsRequired   = errors.New("operator is required")
)

// CreateOrderCommand represents a request to register a new order.
// New orders always start in draft status; the total amount is computed by
// the surrounding order-management system before the command is issued.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	totalAmount int64
	operator    string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that the order ID is valid, the total amount is not negative,
// and the operator identity is present.
func NewCreateOrderCommand(orderID kernel.UUID, totalAmount int64, operator string) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTotalAmount(totalAmount),
		cmd.setOperator(operator),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TotalAmount returns the order total in minor currency units.
func (c CreateOrderCommand) TotalAmount() int64 {
	return c.totalAmount
}

// Operator returns the identity of the actor creating the order.
func (c CreateOrderCommand) Operator() string {
	return c.operator
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setTotalAmount(totalAmount int64) error {
	if totalAmount < 0 {
		return ErrTotalAmountIsInvalid
	}
	c.totalAmount = totalAmount
	return nil
}

func (c *CreateOrderCommand) setOperator(operator string) error {
	if operator == "" {
		return ErrOperatorIsRequired
	}
	c.operator = operator
	return nil
}
