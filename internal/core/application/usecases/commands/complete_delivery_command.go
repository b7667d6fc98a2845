package commands

import (
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand represents a request to mark a package as
// delivered. The operation is idempotent: completing an already delivered
// package succeeds without changing anything.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	packageID kernel.ID

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a command to complete a delivery.
// Validates that the package identifier is constructed.
func NewCompleteDeliveryCommand(packageID kernel.ID) (CompleteDeliveryCommand, error) {
	command := CompleteDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setPackageID(packageID); err != nil {
		return CompleteDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCompleteDeliveryCommandIsNotConstructed if validation fails.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

// PackageID returns the package ID from the command.
func (c CompleteDeliveryCommand) PackageID() kernel.ID {
	return c.packageID
}

func (c *CompleteDeliveryCommand) setPackageID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.packageID = id
	return nil
}
