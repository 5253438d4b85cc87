package order_test

import (
	"testing"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/restaurant"

	"github.com/stretchr/testify/require"
)

func money(s string) kernel.Money {
	return kernel.MustParseMoney(s)
}

func newProduct(t *testing.T, name, price string) *restaurant.Product {
	t.Helper()
	product, err := restaurant.NewProduct(restaurant.NewProductID(), name, money(price))
	require.NoError(t, err)
	return product
}

func newItem(t *testing.T, product *restaurant.Product, quantity int, price, subTotal string) *order.OrderItem {
	t.Helper()
	item, err := order.NewOrderItem(order.ItemParams{
		Product:  product,
		Quantity: quantity,
		Price:    money(price),
		SubTotal: money(subTotal),
	})
	require.NoError(t, err)
	return item
}

func newAddress(t *testing.T) kernel.StreetAddress {
	t.Helper()
	address, err := kernel.NewStreetAddress(kernel.NewUUID(), "1 Main St", "10115", "Berlin")
	require.NoError(t, err)
	return address
}

// newTwoItemOrder builds the reference order: 5.00 x 2 = 10.00 and 7.50 x 1 = 7.50.
func newTwoItemOrder(t *testing.T, total string) *order.Order {
	t.Helper()
	o, err := order.NewOrder(order.Params{
		CustomerID:      kernel.NewCustomerID(),
		RestaurantID:    kernel.NewRestaurantID(),
		DeliveryAddress: newAddress(t),
		Price:           money(total),
		Items: []*order.OrderItem{
			newItem(t, newProduct(t, "Dumplings", "5.00"), 2, "5.00", "10.00"),
			newItem(t, newProduct(t, "Noodles", "7.50"), 1, "7.50", "7.50"),
		},
	})
	require.NoError(t, err)
	return o
}

// newOrderIn returns an admitted order driven to status.
func newOrderIn(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	o := newTwoItemOrder(t, "17.50")
	require.NoError(t, o.ValidateOrder())
	require.NoError(t, o.Initialize())

	switch status {
	case order.Pending:
	case order.Paid:
		require.NoError(t, o.Pay())
	case order.Approved:
		require.NoError(t, o.Pay())
		require.NoError(t, o.Approve())
	case order.Cancelling:
		require.NoError(t, o.Pay())
		require.NoError(t, o.InitCancel(nil))
	case order.Cancelled:
		require.NoError(t, o.Cancel(nil))
	default:
		t.Fatalf("unsupported status %s", status)
	}
	require.Equal(t, status, o.Status())
	return o
}
