package commands

import (
	"context"

	"courier/internal/core/domain/model/packages"
)

// CompleteDeliveryCommandHandler handles delivery completion.
// Marks the package delivered, credits the assigned driver with the delivery,
// and recomputes the driver's availability from their remaining workload.
// All updates happen within a single transaction.
//
// The operation is idempotent: a package that is already delivered is left
// untouched and the driver's counter is not incremented again.
//
// Example:
//
//	handler := NewCompleteDeliveryCommandHandler(uowFactory)
//	cmd, _ := NewCompleteDeliveryCommand(packageID)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Completion failed: %v", err)
//	}
type CompleteDeliveryCommandHandler struct {
	uowFactory UoWFactory
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery completion.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewCompleteDeliveryCommandHandler(uowFactory UoWFactory) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery completion command.
//
// If the package is already delivered the handler commits without changes.
// Otherwise the package moves to the delivered status (recording the delivery
// timestamp), the assigned driver's lifetime counter is incremented exactly
// once, and the driver becomes available again when no active packages
// remain. Unassigned packages can be completed too; only the package is
// updated in that case.
func (h CompleteDeliveryCommandHandler) Handle(ctx context.Context, command CompleteDeliveryCommand) error {
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

	if pkg.IsDelivered() {
		return uow.Commit(ctx)
	}

	if err = pkg.UpdateStatus(packages.StatusDelivered); err != nil {
		return err
	}

	if err = packageRepo.Update(ctx, pkg); err != nil {
		return err
	}

	if pkg.HasAssignedDriver() {
		driverID := pkg.AssignedDriver()

		if err = driverRepo.IncrementDeliveries(ctx, driverID); err != nil {
			return err
		}

		if err = refreshDriverStatus(ctx, driverRepo, packageRepo, driverID); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
