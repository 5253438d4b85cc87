package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/restaurant"
)

// RestaurantRepository reads catalog data. The catalog is owned by another context,
// so there is no write side.
type RestaurantRepository interface {
	// Get retrieves a restaurant with all its products.
	Get(ctx context.Context, id kernel.RestaurantID) (*restaurant.Restaurant, error)
}
