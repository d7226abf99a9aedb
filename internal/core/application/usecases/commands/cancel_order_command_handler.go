package commands

import (
	"context"

	"ordermgmt/internal/core/domain/model/order"
	"ordermgmt/internal/core/domain/services"
)

// CancelOrderCommandHandler cancels orders through the cancellation policy:
// eligibility is checked against the order's current status, then the change
// is delegated to the same transitioner every other status change goes
// through, inside one transaction.
type CancelOrderCommandHandler struct {
	uowFactory   UoWFactory
	transitioner services.StatusTransitioner
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory UoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory:   uowFactory,
		transitioner: services.NewStatusTransitioner(),
	}
}

// Handle cancels the order when its status permits it. Ineligible orders fail
// with a NotCancellableError carrying the explanation.
func (h *CancelOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CancelOrderCommand,
) (services.TransitionResult, error) {
	if err := cmd.Validate(); err != nil {
		return services.TransitionResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.TransitionResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	current, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return services.TransitionResult{}, err
	}

	if ok, reason := current.CanCancel(); !ok {
		return services.TransitionResult{}, order.NewNotCancellableError(current.Status(), reason)
	}

	result, err := h.transitioner.Execute(ctx, uow.OrderRepository(), uow.StatusFlowRepository(),
		services.TransitionRequest{
			OrderID:    cmd.OrderID(),
			FromStatus: current.Status(),
			ToStatus:   order.StatusCancelled,
			Operator:   cmd.Operator(),
			Role:       cmd.Role(),
			Remark:     cmd.Remark(),
		})
	if err != nil {
		return services.TransitionResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return services.TransitionResult{}, err
	}

	return result, nil
}
