// Package driver implements the Driver aggregate for the courier system.
// It encapsulates driver identity, availability status, and delivery tracking
// following Domain-Driven Design principles.
//
// The package includes:
//   - Driver: The aggregate root representing a delivery driver
//   - Status: A value object for driver availability (available/busy)
//   - VehicleType: A value object describing the driver's vehicle
//
// Driver availability is derived from workload: a driver with at least one
// active package is busy, a driver with none is available. Operators can
// override the status manually; the override lasts until the next workload
// change recomputes it.
//
// All domain objects use the constructor guard pattern to ensure they are
// only created through their designated constructors, maintaining invariants
// at all times.
package driver
