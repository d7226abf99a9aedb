package ports

import (
	"context"

	"ordermgmt/internal/core/domain/model/kernel"
	"ordermgmt/internal/core/domain/model/order"
)

// StatusFlowRepository defines the persistence contract for the two
// append-only audit logs written alongside status changes. Records are never
// updated or deleted.
type StatusFlowRepository interface {
	// AppendFlow persists one flow record.
	AppendFlow(ctx context.Context, record *order.FlowRecord) error

	// AppendHistory persists one history entry.
	AppendHistory(ctx context.Context, record *order.HistoryRecord) error

	// GetFlowsByOrder retrieves all flow records for an order, ascending by
	// creation time.
	GetFlowsByOrder(ctx context.Context, orderID kernel.UUID) ([]*order.FlowRecord, error)
}
