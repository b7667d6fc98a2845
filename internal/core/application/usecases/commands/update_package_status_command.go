package commands

import (
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/packages"
	"courier/internal/pkg/guard"
)

var ErrUpdatePackageStatusCommandIsNotConstructed = errors.New(
	"UpdatePackageStatusCommand must be created via NewUpdatePackageStatusCommand constructor",
)

// UpdatePackageStatusCommand represents a request to move a package to an
// arbitrary lifecycle status. Used by drivers reporting progress (picked_up,
// in_transit, out_for_delivery) and by operators correcting recorded state.
//
// Moving a package to delivered through this command records the delivery
// timestamp but deliberately does not credit the assigned driver; use
// CompleteDeliveryCommand for the full completion workflow.
type UpdatePackageStatusCommand struct { //nolint:recvcheck //using for validation
	packageID kernel.ID
	status    packages.Status

	guard guard.ConstructorGuard
}

// NewUpdatePackageStatusCommand creates a command to update a package's status.
// Validates that the identifier is constructed and the status is a valid
// lifecycle value.
func NewUpdatePackageStatusCommand(packageID kernel.ID, status packages.Status) (UpdatePackageStatusCommand, error) {
	command := UpdatePackageStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPackageID(packageID),
		command.setStatus(status),
	); err != nil {
		return UpdatePackageStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdatePackageStatusCommandIsNotConstructed if validation fails.
func (c UpdatePackageStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePackageStatusCommandIsNotConstructed)
}

// PackageID returns the package ID from the command.
func (c UpdatePackageStatusCommand) PackageID() kernel.ID {
	return c.packageID
}

// Status returns the target status from the command.
func (c UpdatePackageStatusCommand) Status() packages.Status {
	return c.status
}

func (c *UpdatePackageStatusCommand) setPackageID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.packageID = id
	return nil
}

func (c *UpdatePackageStatusCommand) setStatus(status packages.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
