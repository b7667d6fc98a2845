package commands

import (
	"context"
)

// UpdatePackageStatusCommandHandler handles free-form package status updates.
// Lifecycle transitions are permissive, so any valid status can be recorded
// from any other. The assigned driver's status and delivery counter are left
// untouched; the full completion workflow lives in
// CompleteDeliveryCommandHandler.
type UpdatePackageStatusCommandHandler struct {
	uowFactory PackageUoWFactory
}

// NewUpdatePackageStatusCommandHandler creates a handler for package status updates.
// Requires a PackageUoWFactory for transactional persistence operations.
func NewUpdatePackageStatusCommandHandler(uowFactory PackageUoWFactory) UpdatePackageStatusCommandHandler {
	return UpdatePackageStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status update command.
// Loads the package, applies the new status (recording the delivery
// timestamp on the first transition to delivered), and persists the change
// within a transaction.
func (h UpdatePackageStatusCommandHandler) Handle(ctx context.Context, command UpdatePackageStatusCommand) error {
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

	pkg, err := packageRepo.Get(ctx, command.PackageID())
	if err != nil {
		return err
	}

	if err = pkg.UpdateStatus(command.Status()); err != nil {
		return err
	}

	if err = packageRepo.Update(ctx, pkg); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
