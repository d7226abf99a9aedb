package services

import (
	"context"

	"ordermgmt/internal/core/domain/model/kernel"
	"ordermgmt/internal/core/domain/model/order"
)

// OrderStatusWriter persists the status change of one order. The write is a
// compare-and-swap against the expected source status; implementations return
// a StaleTransitionError when the order is no longer in that status.
type OrderStatusWriter interface {
	UpdateStatus(ctx context.Context, orderID kernel.UUID, from, to order.Status) error
}

// AuditAppender appends the immutable audit records for an executed transition.
type AuditAppender interface {
	AppendFlow(ctx context.Context, record *order.FlowRecord) error
	AppendHistory(ctx context.Context, record *order.HistoryRecord) error
}

// TransitionRequest carries everything needed to execute one status change.
// FromStatus is the status the caller read before requesting the change; the
// compare-and-swap write detects when that read has gone stale.
type TransitionRequest struct {
	OrderID    kernel.UUID
	FromStatus order.Status
	ToStatus   order.Status
	Operator   string
	Role       order.Role
	Remark     string
}

// TransitionResult describes an executed status change.
type TransitionResult struct {
	FromStatus  order.Status
	ToStatus    order.Status
	Description string
}

// StatusTransitioner executes order status transitions: it re-validates
// transition legality and role permission, applies the status write, and
// appends the flow record and history entry.
//
// The transitioner deliberately does not begin or commit a transaction. All
// three writes go through repositories the caller bound to its own unit of
// work, so the transition composes with other writes (order creation,
// cancellation) under one atomic boundary, and any failure unwinds all of it.
type StatusTransitioner struct{}

// NewStatusTransitioner creates a StatusTransitioner.
func NewStatusTransitioner() StatusTransitioner {
	return StatusTransitioner{}
}

// Execute performs one validated transition.
//
// Legality and permission are re-checked here even when the boundary already
// checked them; the transitioner is reachable from internal callers that skip
// the boundary. It returns an InvalidTransitionError for pairs outside the
// graph and a ForbiddenError for roles lacking the target status, before any
// write is attempted.
func (t StatusTransitioner) Execute(
	ctx context.Context,
	orders OrderStatusWriter,
	audit AuditAppender,
	req TransitionRequest,
) (TransitionResult, error) {
	if err := req.OrderID.Validate(); err != nil {
		return TransitionResult{}, err
	}

	if !order.IsValidTransition(req.FromStatus, req.ToStatus) {
		return TransitionResult{}, order.NewInvalidTransitionError(req.FromStatus, req.ToStatus)
	}

	if !order.HasPermission(req.Role, req.ToStatus) {
		return TransitionResult{}, order.NewForbiddenError(req.Role, req.ToStatus)
	}

	if err := orders.UpdateStatus(ctx, req.OrderID, req.FromStatus, req.ToStatus); err != nil {
		return TransitionResult{}, err
	}

	from := req.FromStatus
	flow, err := order.NewFlowRecord(
		kernel.NewUUID(), req.OrderID, &from, req.ToStatus, req.Operator, req.Remark)
	if err != nil {
		return TransitionResult{}, err
	}

	if err = audit.AppendFlow(ctx, flow); err != nil {
		return TransitionResult{}, err
	}

	history, err := order.NewStatusChangedRecord(
		kernel.NewUUID(), req.OrderID, req.FromStatus, req.ToStatus, req.Operator, req.Role)
	if err != nil {
		return TransitionResult{}, err
	}

	if err = audit.AppendHistory(ctx, history); err != nil {
		return TransitionResult{}, err
	}

	return TransitionResult{
		FromStatus:  req.FromStatus,
		ToStatus:    req.ToStatus,
		Description: order.TransitionDescription(req.FromStatus, req.ToStatus),
	}, nil
}
