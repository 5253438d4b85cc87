package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"

	"github.com/samber/lo"
)

// ErrOrderIsNotConstructed is returned for an Order not created through NewOrder or
// RestoreOrder.
var ErrOrderIsNotConstructed = errs.NewValueIsRequiredError("order must be created via NewOrder")

// Params holds everything a new order is built from. Items keep their sequence: the
// item at index i receives ItemID i+1 on Initialize.
type Params struct {
	CustomerID      kernel.CustomerID
	RestaurantID    kernel.RestaurantID
	DeliveryAddress kernel.StreetAddress
	// Price is the declared total. It is checked by ValidateOrder, not by NewOrder.
	Price kernel.Money
	Items []*OrderItem
}

// RestoreParams rebuilds an order loaded from persistence. Items must already be
// initialized for ID.
type RestoreParams struct {
	Params
	ID              kernel.OrderID
	TrackingID      TrackingID
	Status          Status
	FailureMessages []string
}

// Order is the aggregate root of the ordering context.
//
// Order follows these invariants:
//   - Customer, restaurant, delivery address and at least one item are always present
//   - Once validated, the total price equals the sum of the item subtotals
//   - Id, tracking id and status are unset until Initialize and set from then on
//   - Only the id, tracking id, status and failure messages change after construction
//
// Order is not safe for concurrent use.
type Order struct {
	root            kernel.AggregateRoot[kernel.OrderID]
	customerID      kernel.CustomerID
	restaurantID    kernel.RestaurantID
	deliveryAddress kernel.StreetAddress
	price           kernel.Money
	items           []*OrderItem
	trackingID      TrackingID
	status          Status
	failureMessages []string
	guard           guard.ConstructorGuard
}

// NewOrder creates an order that is not yet admitted: it has no id, no tracking id and
// Unknown status. All field violations are reported together.
//
// Example:
//
//	item, _ := order.NewOrderItem(order.ItemParams{
//	    Product:  product,
//	    Quantity: 2,
//	    Price:    kernel.MustParseMoney("5.00"),
//	    SubTotal: kernel.MustParseMoney("10.00"),
//	})
//	o, err := order.NewOrder(order.Params{
//	    CustomerID:      customerID,
//	    RestaurantID:    restaurantID,
//	    DeliveryAddress: address,
//	    Price:           kernel.MustParseMoney("10.00"),
//	    Items:           []*order.OrderItem{item},
//	})
func NewOrder(params Params) (*Order, error) {
	order := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setCustomerID(params.CustomerID),
		order.setRestaurantID(params.RestaurantID),
		order.setDeliveryAddress(params.DeliveryAddress),
		order.setItems(params.Items, false),
	); err != nil {
		return nil, err
	}
	order.price = params.Price

	return order, nil
}

// RestoreOrder rebuilds a persisted order without running admission checks again.
func RestoreOrder(params RestoreParams) (*Order, error) {
	order := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		params.ID.Validate(),
		params.TrackingID.Validate(),
		params.Status.Validate(),
		wrapMoneyErr("price", params.Price.Validate()),
		order.setCustomerID(params.CustomerID),
		order.setRestaurantID(params.RestaurantID),
		order.setDeliveryAddress(params.DeliveryAddress),
		order.setItems(params.Items, true),
	); err != nil {
		return nil, err
	}

	for i, item := range order.items {
		if !item.OrderID().IsEqual(params.ID) {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("items[%d]", i), fmt.Errorf("item belongs to order %s", item.OrderID()))
		}
	}

	order.root = kernel.NewAggregateRoot(params.ID)
	order.trackingID = params.TrackingID
	order.status = params.Status
	order.price = params.Price
	order.failureMessages = slices.Clone(params.FailureMessages)

	return order, nil
}

// Validate ensures the order was created through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by id. Orders without an id are never equal.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.root.IsEqual(other.root.BaseEntity)
}

// ID is unset until Initialize.
func (o *Order) ID() kernel.OrderID {
	return o.root.ID()
}

func (o *Order) CustomerID() kernel.CustomerID {
	return o.customerID
}

func (o *Order) RestaurantID() kernel.RestaurantID {
	return o.restaurantID
}

func (o *Order) DeliveryAddress() kernel.StreetAddress {
	return o.deliveryAddress
}

// Price is the declared total price.
func (o *Order) Price() kernel.Money {
	return o.price
}

// Items returns a copy of the item list in sequence order.
func (o *Order) Items() []*OrderItem {
	return slices.Clone(o.items)
}

// TrackingID is unset until Initialize.
func (o *Order) TrackingID() TrackingID {
	return o.trackingID
}

func (o *Order) Status() Status {
	return o.status
}

// FailureMessages returns a copy of the accumulated failure messages.
func (o *Order) FailureMessages() []string {
	return slices.Clone(o.failureMessages)
}

// ValidateOrder admits a freshly built order. It runs three checks in sequence and
// stops at the first failure:
//
//  1. the order is not initialized yet (ErrInvalidState)
//  2. the total price is set and greater than zero (ErrInvalidTotalPrice)
//  3. every item is price-consistent (ErrInvalidItemPrice) and the subtotals, summed
//     in sequence from zero, equal the total price (ErrPriceMismatch)
//
// ValidateOrder has to succeed before Initialize assigns identifiers.
func (o *Order) ValidateOrder() error {
	if err := o.validateInitialOrder(); err != nil {
		return err
	}
	if err := o.validateTotalPrice(); err != nil {
		return err
	}
	return o.validateItemsPrice()
}

// Initialize admits the order: it assigns a fresh OrderID and TrackingID, moves the
// order to Pending and numbers the items 1..N in sequence, binding each to the order.
// An order can be initialized once; a second call fails with ErrInvalidState.
func (o *Order) Initialize() error {
	if err := o.validateInitialOrder(); err != nil {
		return err
	}

	o.root.SetID(kernel.NewOrderID())
	o.trackingID = NewTrackingID()
	o.status = Pending

	for i, item := range o.items {
		item.initialize(o.ID(), ItemID(i+1))
	}

	return nil
}

// Pay moves a Pending order to Paid.
func (o *Order) Pay() error {
	newStatus, err := o.status.Pay()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Approve moves a Paid order to Approved.
func (o *Order) Approve() error {
	newStatus, err := o.status.Approve()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// InitCancel moves a Paid order to Cancelling and records why.
func (o *Order) InitCancel(failureMessages []string) error {
	newStatus, err := o.status.InitCancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.mergeFailureMessages(failureMessages)
	return nil
}

// Cancel moves a Pending or Cancelling order to Cancelled and records why.
func (o *Order) Cancel(failureMessages []string) error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.mergeFailureMessages(failureMessages)
	return nil
}

// mergeFailureMessages adopts messages as given while no list has been stored yet. Once
// a list exists, even an empty one, only the non-blank messages are appended; duplicates
// are kept.
func (o *Order) mergeFailureMessages(messages []string) {
	if o.failureMessages == nil {
		o.failureMessages = slices.Clone(messages)
		return
	}

	o.failureMessages = append(o.failureMessages, lo.Filter(messages, func(message string, _ int) bool {
		return strings.TrimSpace(message) != ""
	})...)
}

func (o *Order) validateInitialOrder() error {
	if o.root.HasID() || o.status != Unknown {
		return newDomainError(ErrInvalidState, "order is not in correct state for initialization")
	}
	return nil
}

func (o *Order) validateTotalPrice() error {
	if !o.price.IsGreaterThanZero() {
		return newDomainError(ErrInvalidTotalPrice, "total price must be greater than zero")
	}
	return nil
}

func (o *Order) validateItemsPrice() error {
	itemsTotal := kernel.ZeroMoney
	for _, item := range o.items {
		if !item.IsPriceValid() {
			return newDomainError(ErrInvalidItemPrice,
				"order item price: %s is not valid for product %s", item.Price(), item.Product().ID())
		}
		itemsTotal = itemsTotal.Add(item.SubTotal())
	}

	if !o.price.IsEqual(itemsTotal) {
		return newDomainError(ErrPriceMismatch,
			"total price: %s is not equal to order items total: %s", o.price, itemsTotal)
	}

	return nil
}

func (o *Order) setCustomerID(id kernel.CustomerID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setRestaurantID(id kernel.RestaurantID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurantID", err)
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setDeliveryAddress(address kernel.StreetAddress) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.deliveryAddress = address
	return nil
}

func (o *Order) setItems(items []*OrderItem, initialized bool) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for i, item := range items {
		if err := item.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d]", i), err)
		}
		if item.IsInitialized() != initialized {
			return errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("items[%d]", i), fmt.Errorf("item initialized: %t", item.IsInitialized()))
		}
	}

	o.items = slices.Clone(items)
	return nil
}
