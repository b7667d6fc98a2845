package ports

import (
	"context"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/packages"
)

// PackageRepository defines the persistence contract for package aggregates.
// Provides methods for storing, retrieving, and querying package entities
// based on their lifecycle status and driver assignment.
type PackageRepository interface {
	// Add persists a new package aggregate to storage.
	// The package must be valid and not already exist in the repository.
	// Returns errs.ObjectAlreadyExistsError if a package with the same ID exists.
	Add(ctx context.Context, aggregate *packages.Package) error

	// Update persists changes to an existing package aggregate.
	// The package must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *packages.Package) error

	// Get retrieves a package aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError if no package with the ID exists.
	Get(ctx context.Context, id kernel.ID) (*packages.Package, error)

	// GetAll retrieves all packages ordered by creation time.
	GetAll(ctx context.Context) ([]*packages.Package, error)

	// GetAllForDriver retrieves the packages assigned to the given driver
	// that are not yet delivered, ordered by creation time. This is the
	// driver's active workload.
	GetAllForDriver(ctx context.Context, driverID kernel.ID) ([]*packages.Package, error)

	// GetFirstPending retrieves the oldest package in pending status.
	// Used by the dispatch job to find work. Returns errs.ObjectNotFoundError
	// if no pending package exists.
	GetFirstPending(ctx context.Context) (*packages.Package, error)
}
