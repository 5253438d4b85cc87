package kernel

import "fmt"

type (
	orderTag      struct{}
	customerTag   struct{}
	restaurantTag struct{}
)

// TypedID is an identifier whose Go type carries the kind of entity it points to.
// T is a phantom tag: OrderID and CustomerID share the same representation but are
// different types, so one can never be passed where the other is expected.
type TypedID[T any] struct {
	value UUID
}

type (
	// OrderID identifies an order aggregate.
	OrderID = TypedID[orderTag]
	// CustomerID identifies the customer who placed an order.
	CustomerID = TypedID[customerTag]
	// RestaurantID identifies a restaurant of the catalog.
	RestaurantID = TypedID[restaurantTag]
)

// NewTypedID returns an identifier holding a fresh random UUID.
func NewTypedID[T any]() TypedID[T] {
	return TypedID[T]{value: NewUUID()}
}

// TypedIDFromUUID wraps an existing UUID. The nil UUID is rejected.
func TypedIDFromUUID[T any](value UUID) (TypedID[T], error) {
	if err := value.Validate(); err != nil {
		return TypedID[T]{}, err
	}
	return TypedID[T]{value: value}, nil
}

// TypedIDFromString parses s as a UUID and wraps it.
func TypedIDFromString[T any](s string) (TypedID[T], error) {
	value, err := UUIDFromString(s)
	if err != nil {
		return TypedID[T]{}, err
	}
	return TypedIDFromUUID[T](value)
}

func NewOrderID() OrderID {
	return NewTypedID[orderTag]()
}

func NewCustomerID() CustomerID {
	return NewTypedID[customerTag]()
}

func NewRestaurantID() RestaurantID {
	return NewTypedID[restaurantTag]()
}

func OrderIDFromUUID(id UUID) (OrderID, error) {
	return TypedIDFromUUID[orderTag](id)
}

func CustomerIDFromUUID(id UUID) (CustomerID, error) {
	return TypedIDFromUUID[customerTag](id)
}

func RestaurantIDFromUUID(id UUID) (RestaurantID, error) {
	return TypedIDFromUUID[restaurantTag](id)
}

func OrderIDFromString(s string) (OrderID, error) {
	return TypedIDFromString[orderTag](s)
}

func CustomerIDFromString(s string) (CustomerID, error) {
	return TypedIDFromString[customerTag](s)
}

func RestaurantIDFromString(s string) (RestaurantID, error) {
	return TypedIDFromString[restaurantTag](s)
}

// UUID returns the wrapped value.
func (id TypedID[T]) UUID() UUID {
	return id.value
}

func (id TypedID[T]) String() string {
	return id.value.String()
}

// GoString keeps %#v output short in test failures.
func (id TypedID[T]) GoString() string {
	return fmt.Sprintf("TypedID(%s)", id.value)
}

// IsEqual compares identifiers of the same kind by value.
func (id TypedID[T]) IsEqual(other TypedID[T]) bool {
	return id.value.IsEqual(other.value)
}

// IsZero reports whether the identifier is unset.
func (id TypedID[T]) IsZero() bool {
	return id.value.IsZero()
}

func (id TypedID[T]) Validate() error {
	return id.value.Validate()
}
