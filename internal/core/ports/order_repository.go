// Package ports defines the contracts between the ordering core and its adapters:
// repositories, the unit of work and the order event publisher.
package ports

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new, initialized order with its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the mutable part of an existing order: status, tracking id and
	// failure messages.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items. Returns errs.ObjectNotFoundError when
	// no order has the id.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// GetByTrackingID retrieves an order by its public tracking id.
	GetByTrackingID(ctx context.Context, trackingID order.TrackingID) (*order.Order, error)

	// GetAllPendingCreatedBefore returns Pending orders created before cutoff, oldest
	// first. Used to cancel orders whose payment never arrived.
	GetAllPendingCreatedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
