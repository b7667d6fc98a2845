package commands

import (
	"context"
)

// UpdateDriverStatusCommandHandler handles manual driver status overrides.
// The override is applied through the aggregate so the status value is
// validated, then persisted within a transaction.
type UpdateDriverStatusCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewUpdateDriverStatusCommandHandler creates a handler for driver status overrides.
// Requires a DriverUoWFactory for transactional persistence operations.
func NewUpdateDriverStatusCommandHandler(uowFactory DriverUoWFactory) UpdateDriverStatusCommandHandler {
	return UpdateDriverStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver status override command.
// Loads the driver so a missing ID surfaces as a not-found error, applies
// the override on the aggregate, and persists only the status column.
func (h UpdateDriverStatusCommandHandler) Handle(ctx context.Context, command UpdateDriverStatusCommand) error {
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

	driverRepo := uow.DriverRepository()

	driverEntity, err := driverRepo.Get(ctx, command.DriverID())
	if err != nil {
		return err
	}

	if err = driverEntity.OverrideStatus(command.Status()); err != nil {
		return err
	}

	if err = driverRepo.UpdateStatus(ctx, driverEntity.ID(), driverEntity.Status()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
