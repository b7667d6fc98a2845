package commands

import (
	"context"

	"courier/internal/core/domain/model/driver"
)

// CreateDriverCommandHandler handles the business logic for driver registration.
// Creates and persists new driver entities in the available status.
//
// Example:
//
//	handler := NewCreateDriverCommandHandler(uowFactory)
//	cmd, _ := NewCreateDriverCommand(id, "Alice", "555-0101", driver.VehicleBike)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("driver registration failed: %w", err)
//	}
type CreateDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewCreateDriverCommandHandler creates a handler for driver registration.
// Requires a DriverUoWFactory for transactional persistence operations.
func NewCreateDriverCommandHandler(uowFactory DriverUoWFactory) CreateDriverCommandHandler {
	return CreateDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver creation command.
// Creates a new driver entity and persists it within a transaction.
// Returns errs.ErrObjectAlreadyExists if a driver with the same ID is
// already registered. Automatically rolls back on any error to prevent
// partial data.
func (h CreateDriverCommandHandler) Handle(ctx context.Context, cmd CreateDriverCommand) error {
	if err := cmd.Validate(); err != nil {
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
	driverEntity, err := driver.NewDriver(cmd.DriverID(), cmd.Name(), cmd.Phone(), cmd.VehicleType())
	if err != nil {
		return err
	}

	if err = driverRepo.Add(ctx, driverEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
