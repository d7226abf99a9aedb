package commands

import (
	"context"
	"time"

	"ordermgmt/internal/core/domain/model/order"
	"ordermgmt/internal/core/domain/services"
)

// CancelStaleDraftsCommandHandler cancels draft orders that were never moved
// to processing within the allowed age. Each stale order goes through the
// regular transitioner, so the automatic cancellations leave the same audit
// trail as manual ones. The whole batch shares one transaction.
type CancelStaleDraftsCommandHandler struct {
	uowFactory   UoWFactory
	transitioner services.StatusTransitioner
}

// NewCancelStaleDraftsCommandHandler creates a handler for the scheduled
// stale-draft cleanup.
func NewCancelStaleDraftsCommandHandler(uowFactory UoWFactory) CancelStaleDraftsCommandHandler {
	return CancelStaleDraftsCommandHandler{
		uowFactory:   uowFactory,
		transitioner: services.NewStatusTransitioner(),
	}
}

// Handle cancels all stale drafts. Returns ErrNoStaleDraftOrders when there
// is nothing to do, so callers can tell an idle run from a failed one.
func (h *CancelStaleDraftsCommandHandler) Handle(ctx context.Context, cmd CancelStaleDraftsCommand) error {
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

	cutoff := time.Now().UTC().Add(-cmd.MaxAge())
	staleDrafts, err := uow.OrderRepository().GetStaleDrafts(ctx, cutoff)
	if err != nil {
		return err
	}

	if len(staleDrafts) == 0 {
		return ErrNoStaleDraftOrders
	}

	for _, draft := range staleDrafts {
		_, err = h.transitioner.Execute(ctx, uow.OrderRepository(), uow.StatusFlowRepository(),
			services.TransitionRequest{
				OrderID:    draft.ID(),
				FromStatus: draft.Status(),
				ToStatus:   order.StatusCancelled,
				Operator:   cmd.Operator(),
				Role:       order.RoleAdmin,
				Remark:     StaleDraftRemark,
			})
		if err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
