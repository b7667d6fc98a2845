// Package packages implements the Package aggregate for the courier system.
// It encapsulates package identity, shipment details, the delivery lifecycle,
// and driver assignment following Domain-Driven Design principles.
//
// The package includes:
//   - Package: The aggregate root representing a delivery package
//   - Status: A value object for the delivery lifecycle state
//
// Lifecycle transitions are permissive so operators can correct recorded
// state, with two invariants enforced by the aggregate: a delivered package
// cannot be assigned to a driver, and the delivery timestamp is recorded once
// and never changes.
//
// All domain objects use the constructor guard pattern to ensure they are
// only created through their designated constructors, maintaining invariants
// at all times.
package packages
