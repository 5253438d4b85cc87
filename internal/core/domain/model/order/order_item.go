package order

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/restaurant"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrOrderItemIsNotConstructed is returned for an OrderItem not created via NewOrderItem
// or RestoreOrderItem.
var ErrOrderItemIsNotConstructed = errs.NewValueIsRequiredError("order item must be created via NewOrderItem")

// ItemID is the sequence number of an item within its order, starting at 1.
type ItemID int64

// ItemParams describes one order line.
type ItemParams struct {
	// Product is the catalog product the line refers to.
	Product *restaurant.Product
	// Quantity must be positive.
	Quantity int
	// Price is the unit price charged.
	Price kernel.Money
	// SubTotal is the charged line total, expected to equal Price x Quantity.
	SubTotal kernel.Money
}

// OrderItem is one line of an Order. It is created without id and order id; both
// are assigned once, by the owning Order, when the order is initialized.
type OrderItem struct {
	entity   kernel.BaseEntity[ItemID]
	orderID  kernel.OrderID
	product  *restaurant.Product
	quantity int
	price    kernel.Money
	subTotal kernel.Money
	guard    guard.ConstructorGuard
}

// NewOrderItem validates params and returns an uninitialized item. Price consistency
// is not checked here; see IsPriceValid.
func NewOrderItem(params ItemParams) (*OrderItem, error) {
	item := &OrderItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := item.setParams(params); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreOrderItem rebuilds an item that was already initialized and persisted.
func RestoreOrderItem(id ItemID, orderID kernel.OrderID, params ItemParams) (*OrderItem, error) {
	item := &OrderItem{
		guard: guard.NewConstructorGuard(),
	}

	var idErr error
	if id <= 0 {
		idErr = errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not greater than 0", id))
	}

	if err := errors.Join(
		idErr,
		orderID.Validate(),
		item.setParams(params),
	); err != nil {
		return nil, err
	}

	item.initialize(orderID, id)
	return item, nil
}

func (i *OrderItem) Validate() error {
	if i == nil {
		return ErrOrderItemIsNotConstructed
	}
	return i.guard.Validate(ErrOrderItemIsNotConstructed)
}

// ID is zero until the owning order is initialized.
func (i *OrderItem) ID() ItemID {
	return i.entity.ID()
}

// OrderID is unset until the owning order is initialized.
func (i *OrderItem) OrderID() kernel.OrderID {
	return i.orderID
}

func (i *OrderItem) Product() *restaurant.Product {
	return i.product
}

func (i *OrderItem) Quantity() int {
	return i.quantity
}

func (i *OrderItem) Price() kernel.Money {
	return i.price
}

func (i *OrderItem) SubTotal() kernel.Money {
	return i.subTotal
}

// IsInitialized reports whether the item was assigned an id by its order.
func (i *OrderItem) IsInitialized() bool {
	return i.entity.HasID()
}

// IsEqual compares initialized items by order and item id.
func (i *OrderItem) IsEqual(other *OrderItem) bool {
	return other != nil && i.orderID.IsEqual(other.orderID) && i.entity.IsEqual(other.entity)
}

// IsPriceValid reports whether the price is positive, equals the product's canonical
// price, and multiplied by the quantity equals the subtotal.
func (i *OrderItem) IsPriceValid() bool {
	return i.price.IsGreaterThanZero() &&
		i.price.IsEqual(i.product.Price()) &&
		i.price.MultiplyQuantity(i.quantity).IsEqual(i.subTotal)
}

// initialize is called only by the owning Order.
func (i *OrderItem) initialize(orderID kernel.OrderID, id ItemID) {
	i.orderID = orderID
	i.entity.SetID(id)
}

func (i *OrderItem) setParams(params ItemParams) error {
	var quantityErr error
	if params.Quantity <= 0 {
		quantityErr = errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", params.Quantity))
	}

	if err := errors.Join(
		params.Product.Validate(),
		quantityErr,
		wrapMoneyErr("price", params.Price.Validate()),
		wrapMoneyErr("subTotal", params.SubTotal.Validate()),
	); err != nil {
		return err
	}

	i.product = params.Product
	i.quantity = params.Quantity
	i.price = params.Price
	i.subTotal = params.SubTotal
	return nil
}

func wrapMoneyErr(paramName string, err error) error {
	if err == nil {
		return nil
	}
	return errs.NewValueIsRequiredErrorWithCause(paramName, err)
}
