package services_test

import (
	"context"
	"errors"
	"testing"

	"ordermgmt/internal/core/domain/model/kernel"
	"ordermgmt/internal/core/domain/model/order"
	"ordermgmt/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderStatusWriter struct{ mock.Mock }

func (m *MockOrderStatusWriter) UpdateStatus(
	ctx context.Context, orderID kernel.UUID, from, to order.Status,
) error {
	args := m.Called(ctx, orderID, from, to)
	return args.Error(0)
}

type MockAuditAppender struct{ mock.Mock }

func (m *MockAuditAppender) AppendFlow(ctx context.Context, record *order.FlowRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockAuditAppender) AppendHistory(ctx context.Context, record *order.HistoryRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func validRequest() services.TransitionRequest {
	return services.TransitionRequest{
		OrderID:    kernel.NewUUID(),
		FromStatus: order.StatusDraft,
		ToStatus:   order.StatusProcessing,
		Operator:   "alice",
		Role:       order.RoleAdmin,
		Remark:     "approved",
	}
}

func TestStatusTransitioner_Execute_Success(t *testing.T) {
	ctx := t.Context()
	req := validRequest()

	writer := new(MockOrderStatusWriter)
	audit := new(MockAuditAppender)
	writer.On("UpdateStatus", ctx, req.OrderID, order.StatusDraft, order.StatusProcessing).
		Return(nil).Once()
	audit.On("AppendFlow", ctx, mock.AnythingOfType("*order.FlowRecord")).Return(nil).Once()
	audit.On("AppendHistory", ctx, mock.AnythingOfType("*order.HistoryRecord")).Return(nil).Once()

	result, err := services.NewStatusTransitioner().Execute(ctx, writer, audit, req)

	require.NoError(t, err)
	assert.Equal(t, order.StatusDraft, result.FromStatus)
	assert.Equal(t, order.StatusProcessing, result.ToStatus)
	assert.Equal(t, "order status changed from Draft to Processing", result.Description)
	writer.AssertExpectations(t)
	audit.AssertExpectations(t)
}

func TestStatusTransitioner_Execute_RecordsMatchRequest(t *testing.T) {
	ctx := t.Context()
	req := validRequest()

	var capturedFlow *order.FlowRecord
	var capturedHistory *order.HistoryRecord

	writer := new(MockOrderStatusWriter)
	audit := new(MockAuditAppender)
	writer.On("UpdateStatus", ctx, req.OrderID, req.FromStatus, req.ToStatus).Return(nil).Once()
	audit.On("AppendFlow", ctx, mock.AnythingOfType("*order.FlowRecord")).
		Run(func(args mock.Arguments) { capturedFlow = args.Get(1).(*order.FlowRecord) }).
		Return(nil).Once()
	audit.On("AppendHistory", ctx, mock.AnythingOfType("*order.HistoryRecord")).
		Run(func(args mock.Arguments) { capturedHistory = args.Get(1).(*order.HistoryRecord) }).
		Return(nil).Once()

	_, err := services.NewStatusTransitioner().Execute(ctx, writer, audit, req)
	require.NoError(t, err)

	require.NotNil(t, capturedFlow)
	require.NotNil(t, capturedFlow.FromStatus())
	assert.Equal(t, req.FromStatus, *capturedFlow.FromStatus())
	assert.Equal(t, req.ToStatus, capturedFlow.ToStatus())
	assert.Equal(t, req.Operator, capturedFlow.Operator())
	assert.Equal(t, req.Remark, capturedFlow.Remark())
	assert.True(t, capturedFlow.OrderID().IsEqual(req.OrderID))

	require.NotNil(t, capturedHistory)
	assert.Equal(t, order.ActionStatusChanged, capturedHistory.Action())
	assert.Equal(t, "order status changed from Draft to Processing", capturedHistory.Description())
	changes := capturedHistory.Changes()
	require.NotNil(t, changes)
	assert.Equal(t, req.FromStatus, changes.FromStatus)
	assert.Equal(t, req.ToStatus, changes.ToStatus)
	assert.Equal(t, "admin", changes.Role)
}

func TestStatusTransitioner_Execute_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	req := validRequest()
	req.FromStatus = order.StatusCompleted
	req.ToStatus = order.StatusProcessing

	// No write may be attempted for an illegal pair.
	writer := new(MockOrderStatusWriter)
	audit := new(MockAuditAppender)

	_, err := services.NewStatusTransitioner().Execute(ctx, writer, audit, req)

	require.ErrorIs(t, err, order.ErrInvalidTransition)
	writer.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	audit.AssertNotCalled(t, "AppendFlow", mock.Anything, mock.Anything)
}

func TestStatusTransitioner_Execute_Forbidden(t *testing.T) {
	ctx := t.Context()
	req := validRequest()
	req.Role = order.RoleUnknown

	writer := new(MockOrderStatusWriter)
	audit := new(MockAuditAppender)

	_, err := services.NewStatusTransitioner().Execute(ctx, writer, audit, req)

	require.ErrorIs(t, err, order.ErrForbidden)
	require.NotErrorIs(t, err, order.ErrInvalidTransition)
	writer.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestStatusTransitioner_Execute_StaleWritePropagates(t *testing.T) {
	ctx := t.Context()
	req := validRequest()
	staleErr := order.NewStaleTransitionError(req.OrderID, req.FromStatus)

	writer := new(MockOrderStatusWriter)
	audit := new(MockAuditAppender)
	writer.On("UpdateStatus", ctx, req.OrderID, req.FromStatus, req.ToStatus).
		Return(staleErr).Once()

	_, err := services.NewStatusTransitioner().Execute(ctx, writer, audit, req)

	require.ErrorIs(t, err, order.ErrStaleTransition)
	audit.AssertNotCalled(t, "AppendFlow", mock.Anything, mock.Anything)
	audit.AssertNotCalled(t, "AppendHistory", mock.Anything, mock.Anything)
}

func TestStatusTransitioner_Execute_FlowAppendFailurePropagates(t *testing.T) {
	ctx := t.Context()
	req := validRequest()

	writer := new(MockOrderStatusWriter)
	audit := new(MockAuditAppender)
	writer.On("UpdateStatus", ctx, req.OrderID, req.FromStatus, req.ToStatus).Return(nil).Once()
	audit.On("AppendFlow", ctx, mock.AnythingOfType("*order.FlowRecord")).
		Return(errors.New("insert failed")).Once()

	_, err := services.NewStatusTransitioner().Execute(ctx, writer, audit, req)

	require.Error(t, err)
	audit.AssertNotCalled(t, "AppendHistory", mock.Anything, mock.Anything)
}

func TestStatusTransitioner_Execute_MissingOperator(t *testing.T) {
	ctx := t.Context()
	req := validRequest()
	req.Operator = ""

	writer := new(MockOrderStatusWriter)
	audit := new(MockAuditAppender)
	writer.On("UpdateStatus", ctx, req.OrderID, req.FromStatus, req.ToStatus).Return(nil).Once()

	_, err := services.NewStatusTransitioner().Execute(ctx, writer, audit, req)

	require.Error(t, err)
	audit.AssertNotCalled(t, "AppendFlow", mock.Anything, mock.Anything)
}
