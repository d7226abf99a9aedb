package commands

import (
	"context"

	"ordermgmt/internal/core/domain/model/kernel"
	"ordermgmt/internal/core/domain/model/order"
)

// CreateOrderCommandHandler registers new orders. The order row and its
// order_created history entry are written in one transaction so the audit
// timeline never misses a creation event.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.TotalAmount())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	created, err := order.NewOrderCreatedRecord(kernel.NewUUID(), newOrder.ID(), cmd.Operator())
	if err != nil {
		return err
	}

	if err = uow.StatusFlowRepository().AppendHistory(ctx, created); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
