package services

import (
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/restaurant"
	"ordering/internal/pkg/errs"

	"github.com/samber/lo"
)

// PlacementItem is one requested order line. A zero SubTotal means "not given";
// it is then computed as Price × Quantity.
type PlacementItem struct {
	ProductID restaurant.ProductID
	Quantity  int
	Price     kernel.Money
	SubTotal  kernel.Money
}

// Placement is a customer's request as received, before it is checked.
type Placement struct {
	CustomerID      kernel.CustomerID
	DeliveryAddress kernel.StreetAddress
	Price           kernel.Money
	Items           []PlacementItem
}

// OrderPlacer is a domain service that turns a placement into an admitted order.
//
// Business rules:
//   - The restaurant must be active
//   - Every line must reference a product of that restaurant; the product snapshot
//     comes from the catalog, never from the request
//   - Prices are checked by Order.ValidateOrder before identifiers are assigned
//
// Example usage:
//
//	placer := NewOrderPlacer()
//	admitted, err := placer.Place(rest, placement)
//	if errors.Is(err, order.ErrPriceMismatch) {
//	    // the client computed a different total
//	}
//	// admitted is Pending and has its OrderID and TrackingID
type OrderPlacer struct{}

func NewOrderPlacer() OrderPlacer {
	return OrderPlacer{}
}

// Place validates the placement against rest and returns the initialized order.
func (p OrderPlacer) Place(rest *restaurant.Restaurant, placement Placement) (*order.Order, error) {
	if err := rest.Validate(); err != nil {
		return nil, err
	}

	if err := rest.ValidateActive(); err != nil {
		return nil, err
	}

	items, err := p.bindItems(rest, placement.Items)
	if err != nil {
		return nil, err
	}

	aggregate, err := order.NewOrder(order.Params{
		CustomerID:      placement.CustomerID,
		RestaurantID:    rest.ID(),
		DeliveryAddress: placement.DeliveryAddress,
		Price:           placement.Price,
		Items:           items,
	})
	if err != nil {
		return nil, err
	}

	if err = aggregate.ValidateOrder(); err != nil {
		return nil, err
	}

	if err = aggregate.Initialize(); err != nil {
		return nil, err
	}

	return aggregate, nil
}

func (p OrderPlacer) bindItems(rest *restaurant.Restaurant, requested []PlacementItem) ([]*order.OrderItem, error) {
	if len(requested) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}

	items := make([]*order.OrderItem, 0, len(requested))
	for i, line := range requested {
		product, err := rest.FindProduct(line.ProductID)
		if err != nil {
			return nil, fmt.Errorf("items[%d]: %w", i, err)
		}

		item, err := order.NewOrderItem(order.ItemParams{
			Product:  product,
			Quantity: line.Quantity,
			Price:    line.Price,
			SubTotal: lo.Ternary(line.SubTotal.IsSet(), line.SubTotal, line.Price.MultiplyQuantity(line.Quantity)),
		})
		if err != nil {
			return nil, fmt.Errorf("items[%d]: %w", i, err)
		}
		items = append(items, item)
	}

	return items, nil
}
