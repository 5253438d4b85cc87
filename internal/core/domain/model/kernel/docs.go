// Package kernel provides the shared domain primitives of the ordering service.
// It is the shared kernel used by the restaurant and order models.
//
// The package includes:
//   - UUID: a value object for unique identifiers backed by github.com/google/uuid
//   - TypedID: identifiers distinguished by type (OrderID, CustomerID, RestaurantID, ...)
//   - BaseEntity and AggregateRoot: identity capability composed into entities
//   - Money: a decimal amount rounded to 2 places with banker's rounding
//   - StreetAddress: a validated delivery address
//
// All value objects are immutable. Entities and aggregates built on top of them
// are not safe for concurrent use; concurrency is handled by the persistence layer.
package kernel
