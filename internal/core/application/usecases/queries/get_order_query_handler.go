package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"ordermgmt/internal/core/domain/model/kernel"
	"ordermgmt/internal/core/domain/model/order"
	"ordermgmt/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order row and decorates it with the display
// label and the transitions currently reachable from its status.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order display queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the order's display view or an ObjectNotFoundError.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, status, total_amount, created_at, updated_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	var id uuid.UUID
	var status string
	var totalAmount int64
	var createdAt, updatedAt time.Time

	if err := row.Scan(&id, &status, &totalAmount, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderView{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return OrderView{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderView{}, err
	}

	current := order.Status(status)
	canCancel := order.IsValidTransition(current, order.StatusCancelled)

	return OrderView{
		ID:                   orderID,
		Status:               current,
		StatusDescription:    current.Description(),
		TotalAmount:          totalAmount,
		AvailableTransitions: order.AvailableTransitions(current),
		CanCancel:            canCancel,
		CreatedAt:            createdAt,
		UpdatedAt:            updatedAt,
	}, nil
}
