package commands

import (
	"context"

	"ordermgmt/internal/core/domain/services"
)

// ChangeOrderStatusCommandHandler executes requested status transitions.
// It owns the transaction boundary; the actual transition semantics (legality
// and permission checks, compare-and-swap status write, audit records) live
// in the StatusTransitioner domain service, which writes through the
// repositories of this handler's unit of work.
type ChangeOrderStatusCommandHandler struct {
	uowFactory   UoWFactory
	transitioner services.StatusTransitioner
}

// NewChangeOrderStatusCommandHandler creates a handler for status transitions.
func NewChangeOrderStatusCommandHandler(uowFactory UoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory:   uowFactory,
		transitioner: services.NewStatusTransitioner(),
	}
}

// Handle performs the transition and returns the executed change. The source
// status is read from the order row inside the same transaction; the
// compare-and-swap write then guards against a concurrent transition racing
// between that read and the update.
func (h *ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
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

	result, err := h.transitioner.Execute(ctx, uow.OrderRepository(), uow.StatusFlowRepository(),
		services.TransitionRequest{
			OrderID:    cmd.OrderID(),
			FromStatus: current.Status(),
			ToStatus:   cmd.TargetStatus(),
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
