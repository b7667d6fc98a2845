package commands

import (
	"context"

	"courier/internal/core/domain/model/packages"
)

// CreatePackageCommandHandler handles the business logic for package registration.
// Creates and persists new package entities in the pending status.
type CreatePackageCommandHandler struct {
	uowFactory PackageUoWFactory
}

// NewCreatePackageCommandHandler creates a handler for package registration.
// Requires a PackageUoWFactory for transactional persistence operations.
func NewCreatePackageCommandHandler(uowFactory PackageUoWFactory) CreatePackageCommandHandler {
	return CreatePackageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the package creation command.
// Creates a new package entity and persists it within a transaction.
// Returns errs.ErrObjectAlreadyExists if a package with the same ID is
// already registered. Automatically rolls back on any error to prevent
// partial data.
func (h CreatePackageCommandHandler) Handle(ctx context.Context, cmd CreatePackageCommand) error {
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

	packageRepo := uow.PackageRepository()
	packageEntity, err := packages.NewPackage(cmd.PackageID(), cmd.SenderName(), cmd.SenderAddress(),
		cmd.RecipientName(), cmd.RecipientAddress(), cmd.Weight())
	if err != nil {
		return err
	}

	if err = packageRepo.Add(ctx, packageEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
