package commands

import (
	"context"

	"courier/internal/core/domain/model/driver"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/ports"
)

// AssignPackageCommandHandler orchestrates manual package assignment.
// Verifies both entities exist, moves the package to the assigned status,
// and keeps the derived driver statuses consistent on both sides of a
// reassignment. All updates happen within a single transaction.
//
// Example:
//
//	handler := NewAssignPackageCommandHandler(uowFactory)
//	cmd, _ := NewAssignPackageCommand(packageID, driverID)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Assignment failed: %v", err)
//	}
type AssignPackageCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignPackageCommandHandler creates a handler for manual package assignment.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewAssignPackageCommandHandler(uowFactory UoWFactory) AssignPackageCommandHandler {
	return AssignPackageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the package assignment command.
//
// Both the package and the driver are loaded first; if either is missing the
// handler returns the repository's not-found error without mutating anything.
// The package is then assigned (rejected if already delivered), the new
// driver becomes busy, and when the package was previously assigned to a
// different driver, that driver's status is recomputed from their remaining
// active workload.
func (h AssignPackageCommandHandler) Handle(ctx context.Context, command AssignPackageCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	packageRepo := uow.PackageRepository()
	driverRepo := uow.DriverRepository()

	pkg, err := packageRepo.Get(ctx, command.PackageID())
	if err != nil {
		return err
	}

	assignee, err := driverRepo.Get(ctx, command.DriverID())
	if err != nil {
		return err
	}

	previousDriverID := pkg.AssignedDriver()

	if err = pkg.AssignTo(assignee.ID()); err != nil {
		return err
	}

	if err = packageRepo.Update(ctx, pkg); err != nil {
		return err
	}

	if err = refreshDriverStatus(ctx, driverRepo, packageRepo, assignee.ID()); err != nil {
		return err
	}

	if !previousDriverID.IsZero() && !previousDriverID.IsEqual(assignee.ID()) {
		if err = refreshDriverStatus(ctx, driverRepo, packageRepo, previousDriverID); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// refreshDriverStatus recomputes a driver's availability from their active
// workload and persists it. Shared by the assignment and delivery completion
// handlers.
func refreshDriverStatus(
	ctx context.Context,
	driverRepo ports.DriverRepository,
	packageRepo ports.PackageRepository,
	driverID kernel.ID,
) error {
	activePackages, err := packageRepo.GetAllForDriver(ctx, driverID)
	if err != nil {
		return err
	}

	return driverRepo.UpdateStatus(ctx, driverID, driver.StatusForWorkload(len(activePackages)))
}
