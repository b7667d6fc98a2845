package services

import (
	"errors"

	"courier/internal/core/domain/model/driver"
	"courier/internal/core/domain/model/packages"
)

// ErrDriverNotFound is returned when no suitable driver is available for
// package dispatch. This occurs when either no drivers are provided or none
// of the provided drivers is in the available status.
var ErrDriverNotFound = errors.New("driver not found")

// PackageDispatcher is a domain service responsible for selecting a driver
// for a pending package.
//
// Key responsibilities:
//   - Validating packages before dispatch
//   - Selecting a driver among the available ones, preferring the least loaded
//   - Executing the assignment on both aggregates
//
// Business rules:
//   - Packages must be valid and not yet delivered
//   - Only drivers in the available status are considered
//   - Among available drivers, the one with the fewest active deliveries wins;
//     ties go to the first candidate in the provided order
//
// Example usage:
//
//	dispatcher := NewPackageDispatcher()
//	assignedDriver, err := dispatcher.Dispatch(pkg, drivers)
//	if errors.Is(err, ErrDriverNotFound) {
//	    // No available drivers right now
//	    return
//	}
type PackageDispatcher struct{}

// NewPackageDispatcher creates a new PackageDispatcher instance.
func NewPackageDispatcher() PackageDispatcher {
	return PackageDispatcher{}
}

// Dispatch selects a driver for the given package and executes the
// assignment workflow on both aggregates.
//
// Parameters:
//   - pkg: The package to be dispatched (must be valid and not delivered)
//   - drivers: Slice of candidate drivers to consider
//
// Returns:
//   - *driver.Driver: The driver the package was assigned to
//   - error: ErrDriverNotFound if no available driver exists, or
//     validation/assignment errors
func (d PackageDispatcher) Dispatch(pkg *packages.Package, drivers []*driver.Driver) (*driver.Driver, error) {
	if err := pkg.Validate(); err != nil {
		return nil, err
	}

	bestDriver, err := d.findBestDriver(drivers)
	if err != nil {
		return nil, err
	}

	if err = pkg.AssignTo(bestDriver.ID()); err != nil {
		return nil, err
	}

	if err = bestDriver.RefreshStatus(bestDriver.ActiveDeliveries() + 1); err != nil {
		return nil, err
	}

	return bestDriver, nil
}

// findBestDriver searches through the candidates for the least loaded
// available driver. Ties go to the first candidate in the provided order.
func (d PackageDispatcher) findBestDriver(drivers []*driver.Driver) (*driver.Driver, error) {
	var bestDriver *driver.Driver

	for _, candidate := range drivers {
		if err := candidate.Validate(); err != nil {
			return nil, err
		}

		if !candidate.IsAvailable() {
			continue
		}

		if bestDriver == nil || candidate.ActiveDeliveries() < bestDriver.ActiveDeliveries() {
			bestDriver = candidate
		}
	}

	if bestDriver == nil {
		return nil, ErrDriverNotFound
	}

	return bestDriver, nil
}
