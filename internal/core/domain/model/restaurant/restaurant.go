package restaurant

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrRestaurantIsNotConstructed = errs.NewValueIsRequiredError("restaurant must be created via NewRestaurant")

	// ErrRestaurantIsNotActive is returned by ValidateActive for a restaurant that
	// currently does not accept orders.
	ErrRestaurantIsNotActive = errs.NewDomainError("restaurant is not active")
)

// Restaurant is the catalog aggregate that offers products. Orders reference it by id
// and read product prices from it before admission.
type Restaurant struct {
	root     kernel.AggregateRoot[kernel.RestaurantID]
	products []*Product
	active   bool
	guard    guard.ConstructorGuard
}

// NewRestaurant builds a restaurant. Every product must be constructed and product
// ids must be unique.
func NewRestaurant(id kernel.RestaurantID, products []*Product, active bool) (*Restaurant, error) {
	restaurant := &Restaurant{
		active: active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		restaurant.setID(id),
		restaurant.setProducts(products),
	); err != nil {
		return nil, err
	}

	return restaurant, nil
}

func (r *Restaurant) Validate() error {
	if r == nil {
		return ErrRestaurantIsNotConstructed
	}
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

func (r *Restaurant) ID() kernel.RestaurantID {
	return r.root.ID()
}

// Products returns a copy of the product list.
func (r *Restaurant) Products() []*Product {
	products := make([]*Product, len(r.products))
	copy(products, r.products)
	return products
}

func (r *Restaurant) IsActive() bool {
	return r.active
}

func (r *Restaurant) IsEqual(other *Restaurant) bool {
	return other != nil && r.root.IsEqual(other.root.BaseEntity)
}

// FindProduct looks a product up by id.
func (r *Restaurant) FindProduct(id ProductID) (*Product, error) {
	product, ok := kernel.IndexByID[ProductID](r.products)[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("productID", id)
	}
	return product, nil
}

// ValidateActive fails with ErrRestaurantIsNotActive when the restaurant is closed.
func (r *Restaurant) ValidateActive() error {
	if !r.active {
		return fmt.Errorf("restaurant %s: %w", r.ID(), ErrRestaurantIsNotActive)
	}
	return nil
}

func (r *Restaurant) setID(id kernel.RestaurantID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.root = kernel.NewAggregateRoot(id)
	return nil
}

func (r *Restaurant) setProducts(products []*Product) error {
	seen := make(map[ProductID]struct{}, len(products))
	checked := make([]*Product, 0, len(products))
	for i, product := range products {
		if err := product.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("products[%d]", i), err)
		}
		if _, ok := seen[product.ID()]; ok {
			return errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("products[%d]", i), fmt.Errorf("duplicate product id %s", product.ID()))
		}
		seen[product.ID()] = struct{}{}
		checked = append(checked, product)
	}
	r.products = checked
	return nil
}
