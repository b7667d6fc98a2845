package commands

import (
	"errors"

	"courier/internal/core/domain/model/driver"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/guard"
)

var ErrUpdateDriverStatusCommandIsNotConstructed = errors.New(
	"UpdateDriverStatusCommand must be created via NewUpdateDriverStatusCommand constructor",
)

// UpdateDriverStatusCommand represents an operator's manual override of a
// driver's availability. The override bypasses workload derivation and may
// diverge from it (for example forcing a loaded driver available); the next
// assignment or delivery completion recomputes the status from the workload.
type UpdateDriverStatusCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.ID
	status   driver.Status

	guard guard.ConstructorGuard
}

// NewUpdateDriverStatusCommand creates a command to override a driver's status.
// Validates that the identifier is constructed and the status is valid.
func NewUpdateDriverStatusCommand(driverID kernel.ID, status driver.Status) (UpdateDriverStatusCommand, error) {
	command := UpdateDriverStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDriverID(driverID),
		command.setStatus(status),
	); err != nil {
		return UpdateDriverStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateDriverStatusCommandIsNotConstructed if validation fails.
func (c UpdateDriverStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDriverStatusCommandIsNotConstructed)
}

// DriverID returns the driver ID from the command.
func (c UpdateDriverStatusCommand) DriverID() kernel.ID {
	return c.driverID
}

// Status returns the target status from the command.
func (c UpdateDriverStatusCommand) Status() driver.Status {
	return c.status
}

func (c *UpdateDriverStatusCommand) setDriverID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.driverID = id
	return nil
}

func (c *UpdateDriverStatusCommand) setStatus(status driver.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
