// Package queries contains read-only operations. Query handlers read the
// database directly and return display-shaped responses; they never mutate
// state and are safe to call concurrently with writes.
package queries

import (
	"errors"
	"time"

	"ordermgmt/internal/core/domain/model/kernel"
	"ordermgmt/internal/core/domain/model/order"
	"ordermgmt/internal/pkg/guard"
)

var ErrGetStatusFlowHistoryQueryIsNotConstructed = errors.New(
	"GetStatusFlowHistoryQuery must be created via NewGetStatusFlowHistoryQuery constructor",
)

// GetStatusFlowHistoryQuery retrieves the ordered status transition history
// of one order for display.
type GetStatusFlowHistoryQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetStatusFlowHistoryQuery creates a query for the given order.
func NewGetStatusFlowHistoryQuery(orderID kernel.UUID) (GetStatusFlowHistoryQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetStatusFlowHistoryQuery{}, err
	}

	return GetStatusFlowHistoryQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStatusFlowHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetStatusFlowHistoryQueryIsNotConstructed)
}

// OrderID returns the identifier of the order whose history is requested.
func (q GetStatusFlowHistoryQuery) OrderID() kernel.UUID {
	return q.orderID
}

// FlowView decorates one flow record with display labels. Descriptions are
// computed from the registry at read time rather than stored, so they follow
// the current registry even for records written before a label change.
type FlowView struct {
	ID      kernel.UUID
	OrderID kernel.UUID

	// FromStatus is nil for creation events.
	FromStatus      *order.Status
	FromDescription string
	ToStatus        order.Status
	ToDescription   string

	Operator  string
	Remark    string
	CreatedAt time.Time
}
