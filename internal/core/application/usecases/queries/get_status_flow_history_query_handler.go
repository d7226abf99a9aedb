package queries

import (
	"context"
	"time"

	"ordermgmt/internal/core/domain/model/kernel"
	"ordermgmt/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStatusFlowHistoryQueryHandler reconstructs the status transition history
// of an order from the flow table, ascending by creation time.
type GetStatusFlowHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetStatusFlowHistoryQueryHandler creates a handler for flow history queries.
func NewGetStatusFlowHistoryQueryHandler(db *gorm.DB) GetStatusFlowHistoryQueryHandler {
	return GetStatusFlowHistoryQueryHandler{db: db}
}

// Handle returns the order's flow records oldest first, each decorated with
// the statuses' display labels. A concurrent write may or may not be visible;
// no guarantee beyond the database's isolation level is made.
func (h GetStatusFlowHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetStatusFlowHistoryQuery,
) ([]FlowView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	views := make([]FlowView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			from_status,
			to_status,
			operator,
			remark,
			created_at
		FROM order_status_flows
		WHERE order_id = ?
		ORDER BY created_at, id
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, orderID uuid.UUID
		var fromStatus *string
		var toStatus, operator, remark string
		var createdAt time.Time

		if err = rows.Scan(&id, &orderID, &fromStatus, &toStatus, &operator, &remark, &createdAt); err != nil {
			return nil, err
		}

		recordID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		recordOrderID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}

		view := FlowView{
			ID:            recordID,
			OrderID:       recordOrderID,
			ToStatus:      order.Status(toStatus),
			ToDescription: order.Status(toStatus).Description(),
			Operator:      operator,
			Remark:        remark,
			CreatedAt:     createdAt,
		}
		if fromStatus != nil {
			from := order.Status(*fromStatus)
			view.FromStatus = &from
			view.FromDescription = from.Description()
		}

		views = append(views, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
