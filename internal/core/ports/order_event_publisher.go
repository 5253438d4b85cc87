package ports

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// OrderEventPublisher notifies other services about committed order changes.
type OrderEventPublisher interface {
	PublishOrderChanged(ctx context.Context, aggregate *order.Order) error
}
