// Package services provides domain services that orchestrate business operations
// across multiple domain entities of the ordering system. It implements business
// workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - OrderPlacer: admits a new order against a restaurant's catalog
//
// Domain services are stateless. They coordinate aggregates but never load or store
// them; that is left to the application layer.
package services
