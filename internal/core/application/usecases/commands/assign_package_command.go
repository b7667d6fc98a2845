package commands

import (
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/guard"
)

var ErrAssignPackageCommandIsNotConstructed = errors.New(
	"AssignPackageCommand must be created via NewAssignPackageCommand constructor",
)

// AssignPackageCommand represents a request to assign a specific package to a
// specific driver. This is the manual assignment operation used by
// dispatchers; automatic dispatch of pending packages is handled by
// DispatchPackageCommand.
//
// Example:
//
//	cmd, err := NewAssignPackageCommand(packageID, driverID)
//	if err != nil {
//	    return err
//	}
//	handler := NewAssignPackageCommandHandler(uowFactory)
//	err = handler.Handle(ctx, cmd)
type AssignPackageCommand struct { //nolint:recvcheck //using for validation
	packageID kernel.ID
	driverID  kernel.ID

	guard guard.ConstructorGuard
}

// NewAssignPackageCommand creates a command to assign a package to a driver.
// Validates that both identifiers are constructed.
func NewAssignPackageCommand(packageID kernel.ID, driverID kernel.ID) (AssignPackageCommand, error) {
	command := AssignPackageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPackageID(packageID),
		command.setDriverID(driverID),
	); err != nil {
		return AssignPackageCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignPackageCommandIsNotConstructed if validation fails.
func (c AssignPackageCommand) Validate() error {
	return c.guard.Validate(ErrAssignPackageCommandIsNotConstructed)
}

// PackageID returns the package ID from the command.
func (c AssignPackageCommand) PackageID() kernel.ID {
	return c.packageID
}

// DriverID returns the driver ID from the command.
func (c AssignPackageCommand) DriverID() kernel.ID {
	return c.driverID
}

func (c *AssignPackageCommand) setPackageID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.packageID = id
	return nil
}

func (c *AssignPackageCommand) setDriverID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.driverID = id
	return nil
}
