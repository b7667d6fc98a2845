// Package ports defines repository interfaces for the courier domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"courier/internal/core/domain/model/driver"
	"courier/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
// Provides methods for storing, retrieving, and querying driver entities
// with their complete state including assigned package IDs.
type DriverRepository interface {
	// Add persists a new driver aggregate to storage.
	// The driver must be valid and not already exist in the repository.
	// Returns errs.ObjectAlreadyExistsError if a driver with the same ID exists.
	Add(ctx context.Context, driver *driver.Driver) error

	// Update persists changes to an existing driver aggregate.
	// The driver must exist in the repository and be valid.
	Update(ctx context.Context, driver *driver.Driver) error

	// Get retrieves a driver aggregate by its unique identifier.
	// Returns the complete driver including the IDs of currently assigned
	// (not yet delivered) packages.
	// Returns errs.ObjectNotFoundError if no driver with the ID exists.
	Get(ctx context.Context, id kernel.ID) (*driver.Driver, error)

	// GetAll retrieves all drivers ordered by ID.
	GetAll(ctx context.Context) ([]*driver.Driver, error)

	// UpdateStatus persists only the availability status of a driver.
	// Used when a workload change or manual override recomputes the status
	// without touching the rest of the aggregate.
	UpdateStatus(ctx context.Context, id kernel.ID, status driver.Status) error

	// IncrementDeliveries atomically increments the lifetime delivery counter
	// of a driver. Returns errs.ObjectNotFoundError if no driver with the ID
	// exists.
	IncrementDeliveries(ctx context.Context, id kernel.ID) error
}
