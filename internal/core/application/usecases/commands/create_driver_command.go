package commands

import (
	"errors"

	"courier/internal/core/domain/model/driver"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/guard"
)

var (
	ErrCreateDriverCommandIsNotConstructed = errors.New(
		"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
	)
	ErrNameIsRequired  = errors.New("name is required")
	ErrPhoneIsRequired = errors.New("phone is required")
)

// CreateDriverCommand represents a request to register a new driver in the
// courier system. Encapsulates all data needed to create a driver entity.
//
// The driver ID is supplied by the caller, matching the registration flow
// where dispatchers hand out well-known identifiers like "D1".
//
// Example:
//
//	id, _ := kernel.ParseID("D1")
//	cmd, err := NewCreateDriverCommand(id, "Alice", "555-0101", driver.VehicleBike)
//	if err != nil {
//	    return fmt.Errorf("invalid driver data: %w", err)
//	}
//
//	handler := NewCreateDriverCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create driver: %w", err)
//	}
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID    kernel.ID
	name        string
	phone       string
	vehicleType driver.VehicleType

	guard guard.ConstructorGuard
}

// NewCreateDriverCommand creates a command to register a new driver.
// Validates that the ID is constructed, name and phone are non-empty,
// and the vehicle type is valid.
func NewCreateDriverCommand(
	driverID kernel.ID,
	name string,
	phone string,
	vehicleType driver.VehicleType,
) (CreateDriverCommand, error) {
	command := CreateDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDriverID(driverID),
		command.setName(name),
		command.setPhone(phone),
		command.setVehicleType(vehicleType),
	); err != nil {
		return CreateDriverCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateDriverCommandIsNotConstructed if validation fails.
func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

// DriverID returns the driver ID from the command.
func (c CreateDriverCommand) DriverID() kernel.ID {
	return c.driverID
}

// Name returns the driver name from the command.
func (c CreateDriverCommand) Name() string {
	return c.name
}

// Phone returns the driver phone number from the command.
func (c CreateDriverCommand) Phone() string {
	return c.phone
}

// VehicleType returns the vehicle type from the command.
func (c CreateDriverCommand) VehicleType() driver.VehicleType {
	return c.vehicleType
}

func (c *CreateDriverCommand) setDriverID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.driverID = id
	return nil
}

func (c *CreateDriverCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateDriverCommand) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}

	c.phone = phone
	return nil
}

func (c *CreateDriverCommand) setVehicleType(vehicleType driver.VehicleType) error {
	if err := vehicleType.Validate(); err != nil {
		return err
	}

	c.vehicleType = vehicleType
	return nil
}
