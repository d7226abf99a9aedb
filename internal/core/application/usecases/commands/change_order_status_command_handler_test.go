package commands_test

import (
	"errors"
	"testing"

	"ordermgmt/internal/core/application/usecases/commands"
	"ordermgmt/internal/core/domain/model/kernel"
	"ordermgmt/internal/core/domain/model/order"
	"ordermgmt/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func restoredOrder(t *testing.T, id kernel.UUID, status order.Status) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(id, status, 1000)
	require.NoError(t, err)
	return o
}

func TestChangeOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewChangeOrderStatusCommand(
		id, order.StatusProcessing, "alice", order.RoleAdmin, "approved")

	orderRepo := new(MockOrderRepository)
	flowRepo := new(MockStatusFlowRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("StatusFlowRepository").Return(flowRepo)
	orderRepo.On("Get", mock.Anything, id).
		Return(restoredOrder(t, id, order.StatusDraft), nil).Once()
	orderRepo.On("UpdateStatus", mock.Anything, id, order.StatusDraft, order.StatusProcessing).
		Return(nil).Once()
	flowRepo.On("AppendFlow", mock.Anything, mock.AnythingOfType("*order.FlowRecord")).
		Return(nil).Once()
	flowRepo.On("AppendHistory", mock.Anything, mock.AnythingOfType("*order.HistoryRecord")).
		Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusDraft, result.FromStatus)
	assert.Equal(t, order.StatusProcessing, result.ToStatus)
	assert.Equal(t, "order status changed from Draft to Processing", result.Description)
	orderRepo.AssertExpectations(t)
	flowRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_InvalidTransitionRollsBack(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	// completed is terminal; moving back to processing is not an edge.
	cmd, _ := commands.NewChangeOrderStatusCommand(
		id, order.StatusProcessing, "alice", order.RoleAdmin, "")

	orderRepo := new(MockOrderRepository)
	flowRepo := new(MockStatusFlowRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("StatusFlowRepository").Return(flowRepo)
	orderRepo.On("Get", mock.Anything, id).
		Return(restoredOrder(t, id, order.StatusCompleted), nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrInvalidTransition)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	orderRepo.AssertNotCalled(t, "UpdateStatus",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	flowRepo.AssertNotCalled(t, "AppendFlow", mock.Anything, mock.Anything)
}

func TestChangeOrderStatusCommandHandler_Handle_ForbiddenForUnknownRole(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewChangeOrderStatusCommand(
		id, order.StatusProcessing, "mallory", order.RoleUnknown, "")

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("StatusFlowRepository").Return(new(MockStatusFlowRepository))
	orderRepo.On("Get", mock.Anything, id).
		Return(restoredOrder(t, id, order.StatusDraft), nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrForbidden)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestChangeOrderStatusCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewChangeOrderStatusCommand(
		id, order.StatusProcessing, "alice", order.RoleAdmin, "")

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	orderRepo.On("Get", mock.Anything, id).
		Return(nil, errs.NewObjectNotFoundError("order", id.String())).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestChangeOrderStatusCommandHandler_Handle_StaleWriteRollsBack(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewChangeOrderStatusCommand(
		id, order.StatusProcessing, "alice", order.RoleAdmin, "")

	orderRepo := new(MockOrderRepository)
	flowRepo := new(MockStatusFlowRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("StatusFlowRepository").Return(flowRepo)
	orderRepo.On("Get", mock.Anything, id).
		Return(restoredOrder(t, id, order.StatusDraft), nil).Once()
	orderRepo.On("UpdateStatus", mock.Anything, id, order.StatusDraft, order.StatusProcessing).
		Return(order.NewStaleTransitionError(id, order.StatusDraft)).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrStaleTransition)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	flowRepo.AssertNotCalled(t, "AppendFlow", mock.Anything, mock.Anything)
}

func TestChangeOrderStatusCommandHandler_Handle_AuditFailureAbortsTransition(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewChangeOrderStatusCommand(
		id, order.StatusProcessing, "alice", order.RoleAdmin, "")

	orderRepo := new(MockOrderRepository)
	flowRepo := new(MockStatusFlowRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("StatusFlowRepository").Return(flowRepo)
	orderRepo.On("Get", mock.Anything, id).
		Return(restoredOrder(t, id, order.StatusDraft), nil).Once()
	orderRepo.On("UpdateStatus", mock.Anything, id, order.StatusDraft, order.StatusProcessing).
		Return(nil).Once()
	// Failure injected after the status write but before the audit insert:
	// the handler must roll back, never commit a partial transition.
	flowRepo.On("AppendFlow", mock.Anything, mock.AnythingOfType("*order.FlowRecord")).
		Return(errors.New("insert failed")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestNewChangeOrderStatusCommand_Validation(t *testing.T) {
	t.Run("rejects_unknown_target_status", func(t *testing.T) {
		_, err := commands.NewChangeOrderStatusCommand(
			kernel.NewUUID(), order.Status("shipped"), "alice", order.RoleAdmin, "")
		require.Error(t, err)
	})

	t.Run("rejects_missing_operator", func(t *testing.T) {
		_, err := commands.NewChangeOrderStatusCommand(
			kernel.NewUUID(), order.StatusProcessing, "", order.RoleAdmin, "")
		require.ErrorIs(t, err, commands.ErrOperatorIsRequired)
	})

	t.Run("unknown_role_is_not_a_validation_error", func(t *testing.T) {
		// Permission is the transitioner's concern; the boundary answers 403.
		cmd, err := commands.NewChangeOrderStatusCommand(
			kernel.NewUUID(), order.StatusProcessing, "mallory", order.RoleUnknown, "")
		require.NoError(t, err)
		assert.Equal(t, order.RoleUnknown, cmd.Role())
	})
}
