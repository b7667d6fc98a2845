package commands

import (
	"errors"

	"courier/internal/pkg/guard"
)

var ErrDispatchPackageCommandIsNotConstructed = errors.New(
	"DispatchPackageCommand must be created via NewDispatchPackageCommand constructor",
)

// DispatchPackageCommand triggers automatic assignment of a pending package
// to an available driver. This command represents the business operation of
// matching delivery resources with waiting packages. It finds the oldest
// package in pending status and assigns the least loaded available driver.
//
// Example:
//
//	cmd := NewDispatchPackageCommand()
//	handler := NewDispatchPackageCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("No packages to dispatch or no available drivers: %v", err)
//	}
type DispatchPackageCommand struct {
	guard guard.ConstructorGuard
}

// NewDispatchPackageCommand creates a new command to trigger package dispatch.
// This is a parameterless command that initiates the driver-package matching process.
func NewDispatchPackageCommand() DispatchPackageCommand {
	return DispatchPackageCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrDispatchPackageCommandIsNotConstructed if validation fails.
func (c *DispatchPackageCommand) Validate() error {
	return c.guard.Validate(
		ErrDispatchPackageCommandIsNotConstructed,
	)
}
