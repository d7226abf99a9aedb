package ports

import (
	"context"
	"time"

	"ordermgmt/internal/core/domain/model/kernel"
	"ordermgmt/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// UpdateStatus moves the order's status from one value to another as a
	// compare-and-swap: the update applies only while the row still holds the
	// expected source status. Returns a StaleTransitionError when the row
	// exists but the status no longer matches, so a lost-update race between
	// concurrent transition requests surfaces instead of silently winning.
	UpdateStatus(ctx context.Context, id kernel.UUID, from, to order.Status) error

	// GetStaleDrafts retrieves orders still in draft status created before
	// the given cutoff. Used by the automatic cancellation job.
	GetStaleDrafts(ctx context.Context, before time.Time) ([]*order.Order, error)
}
