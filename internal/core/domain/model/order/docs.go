// Package order implements the Order aggregate of the ordering service: the line items
// a customer buys from one restaurant, their prices, the delivery address and the
// lifecycle that takes an order from admission to approval or cancellation.
//
// The package includes:
//   - Order: the aggregate root that owns items, total price, tracking id, status and
//     failure messages
//   - OrderItem: a line item bound to a catalog product, initialized only by its Order
//   - Status: the lifecycle state machine
//   - DomainError: the error family every invariant violation belongs to
//
// Admission runs in a fixed order. The caller builds an Order with NewOrder, calls
// ValidateOrder while the order has neither id nor status, and only then calls
// Initialize, which assigns the OrderID, the TrackingID and the item ids:
//
//	o, err := order.NewOrder(order.Params{...})
//	if err != nil { ... }
//	if err := o.ValidateOrder(); err != nil { ... }
//	if err := o.Initialize(); err != nil { ... }
//
// Key business rules:
//   - The total price equals the sum of item subtotals, exactly, after rounding
//   - Every item price equals its product's canonical price, and price x quantity
//     equals the item subtotal
//   - A transition whose guard fails returns ErrInvalidState and changes nothing
//
// An Order is not safe for concurrent use. Two concurrent transitions of the same
// order are prevented by the persistence layer, not by the aggregate.
package order
