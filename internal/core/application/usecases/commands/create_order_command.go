package commands

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/restaurant"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
)

// CreateOrderItem is one requested order line as the client priced it.
type CreateOrderItem struct {
	ProductID restaurant.ProductID
	Quantity  int
	Price     kernel.Money
	SubTotal  kernel.Money
}

// CreateOrderAddress is the requested delivery address.
type CreateOrderAddress struct {
	Street     string
	PostalCode string
	City       string
}

// CreateOrderCommand represents a customer's request to place an order at a restaurant.
// Prices are taken as the client sent them; the handler checks them against the catalog.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(customerID, restaurantID,
//	    CreateOrderAddress{Street: "1 Main St", PostalCode: "10115", City: "Berlin"},
//	    kernel.MustParseMoney("17.50"),
//	    []CreateOrderItem{{ProductID: productID, Quantity: 2, Price: price, SubTotal: subTotal}},
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	trackingID, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID   kernel.CustomerID
	restaurantID kernel.RestaurantID
	address      CreateOrderAddress
	price        kernel.Money
	items        []CreateOrderItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the request shape. Street address parts and price
// rules are checked by the domain model when the order is built.
func NewCreateOrderCommand(
	customerID kernel.CustomerID,
	restaurantID kernel.RestaurantID,
	address CreateOrderAddress,
	price kernel.Money,
	items []CreateOrderItem,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		address: address,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setRestaurantID(restaurantID),
		cmd.setPrice(price),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) CustomerID() kernel.CustomerID {
	return c.customerID
}

func (c CreateOrderCommand) RestaurantID() kernel.RestaurantID {
	return c.restaurantID
}

func (c CreateOrderCommand) Address() CreateOrderAddress {
	return c.address
}

func (c CreateOrderCommand) Price() kernel.Money {
	return c.price
}

// Items returns a copy of the requested lines.
func (c CreateOrderCommand) Items() []CreateOrderItem {
	items := make([]CreateOrderItem, len(c.items))
	copy(items, c.items)
	return items
}

func (c *CreateOrderCommand) setCustomerID(id kernel.CustomerID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}
	c.customerID = id
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(id kernel.RestaurantID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurantID", err)
	}
	c.restaurantID = id
	return nil
}

func (c *CreateOrderCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("price", err)
	}
	c.price = price
	return nil
}

func (c *CreateOrderCommand) setItems(items []CreateOrderItem) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for i, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause(fmt.Sprintf("items[%d].productID", i), err)
		}
	}
	c.items = make([]CreateOrderItem, len(items))
	copy(c.items, items)
	return nil
}
