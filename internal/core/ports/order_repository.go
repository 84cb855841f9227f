package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository persists Order aggregates. Orders are never deleted.
type OrderRepository interface {
	// Add stores a new order together with its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update stores the mutable state of an order: status, partner, refund and timestamps.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get loads an order for modification, locking it for the rest of the
	// transaction where the store supports it. Missing orders yield errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// ListAwaitingDispatch returns up to limit delivery orders in ready_for_ship
	// without a partner, oldest status change first.
	ListAwaitingDispatch(ctx context.Context, limit int) ([]*order.Order, error)

	// ListDeliveredBefore returns up to limit delivered orders whose status
	// changed before the given time, oldest first.
	ListDeliveredBefore(ctx context.Context, before time.Time, limit int) ([]*order.Order, error)
}
