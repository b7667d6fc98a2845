package commands

import (
	"context"
	"errors"

	"courier/internal/core/domain/services"
	"courier/internal/pkg/errs"
)

var (
	ErrNoAvailableDriversFound = errors.New("no available drivers found")
	ErrNoPendingPackageFound   = errors.New("no pending package found")
)

// DispatchPackageCommandHandler orchestrates automatic package dispatch.
// Finds the oldest pending package and matches it with an available driver
// using the PackageDispatcher domain service. Ensures transactional
// consistency when updating both package and driver states.
//
// Example:
//
//	handler := NewDispatchPackageCommandHandler(uowFactory)
//	cmd := NewDispatchPackageCommand()
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoPendingPackageFound):
//	    log.Println("No pending packages")
//	case errors.Is(err, ErrNoAvailableDriversFound):
//	    log.Println("All drivers are busy")
//	case err != nil:
//	    log.Printf("Dispatch failed: %v", err)
//	default:
//	    log.Println("Package dispatched successfully")
//	}
type DispatchPackageCommandHandler struct {
	uowFactory UoWFactory
}

// NewDispatchPackageCommandHandler creates a handler for automatic dispatch operations.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewDispatchPackageCommandHandler(uowFactory UoWFactory) DispatchPackageCommandHandler {
	return DispatchPackageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dispatch command.
// Retrieves the oldest pending package, loads all drivers, and uses
// PackageDispatcher to select the least loaded available one. Updates both
// entities within a single transaction. Returns specific errors for no
// pending packages (ErrNoPendingPackageFound) or no available drivers
// (ErrNoAvailableDriversFound).
func (h DispatchPackageCommandHandler) Handle(ctx context.Context, command DispatchPackageCommand) error {
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
	packageRepo := uow.PackageRepository()

	pkg, err := packageRepo.GetFirstPending(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoPendingPackageFound
	}
	if err != nil {
		return err
	}

	drivers, err := driverRepo.GetAll(ctx)
	if err != nil {
		return err
	}

	assignedDriver, err := services.NewPackageDispatcher().Dispatch(pkg, drivers)
	if errors.Is(err, services.ErrDriverNotFound) {
		return ErrNoAvailableDriversFound
	}
	if err != nil {
		return err
	}

	if err = packageRepo.Update(ctx, pkg); err != nil {
		return err
	}

	if err = driverRepo.UpdateStatus(ctx, assignedDriver.ID(), assignedDriver.Status()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
