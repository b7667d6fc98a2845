package driver

import (
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

// Domain errors for driver operations.
var (
	// ErrNameIsRequired is returned when attempting to create a driver without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPhoneIsRequired is returned when attempting to create a driver without a phone number.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")
)

// Driver represents a delivery driver in the courier system.
// It is an aggregate root that manages driver identity, availability status,
// and the set of packages currently assigned to the driver.
//
// Key responsibilities:
//   - Managing driver identity (ID, name, phone, vehicle type)
//   - Deriving availability status from the active delivery workload
//   - Supporting manual status overrides by an operator
//   - Tracking the lifetime count of completed deliveries
//
// Business rules:
//   - Driver must have a valid ID, non-empty name, phone and vehicle type
//   - A newly registered driver starts available with zero deliveries
//   - Status is busy while the driver has at least one active package,
//     available otherwise; a manual override can temporarily diverge from
//     this rule until the next workload change recomputes the status
//   - The delivery counter only ever increases
//
// Example usage:
//
//	id, _ := kernel.ParseID("D1")
//	d, err := NewDriver(id, "Alice", "555-0101", driver.VehicleBike)
//	if err != nil {
//	    // Handle construction error
//	}
//	// Driver is available and ready for assignments
type Driver struct {
	// id uniquely identifies the driver
	id kernel.ID
	// name is the driver's full name
	name string
	// phone is the driver's contact phone number
	phone string
	// vehicleType describes the vehicle the driver operates
	vehicleType VehicleType
	// status is the driver's current availability
	status Status
	// totalDeliveries is the lifetime count of completed deliveries
	totalDeliveries int
	// assignedPackages are the IDs of packages currently assigned to the driver
	assignedPackages []kernel.ID
	// guard ensures the driver was properly constructed
	guard guard.ConstructorGuard
}

// NewDriver creates a new Driver with the specified parameters.
// This is the only way to register a fresh driver in the system.
//
// The constructor validates all input parameters. A new driver always starts
// in the available status with a zero delivery counter and no assigned
// packages.
//
// Parameters:
//   - id: Unique identifier for the driver (must be valid)
//   - name: Driver's full name (must be non-empty)
//   - phone: Contact phone number (must be non-empty)
//   - vehicleType: Vehicle description (must be non-empty)
//
// Returns:
//   - *Driver: A fully initialized driver ready for assignments
//   - error: Validation error if any parameter is invalid (aggregated errors
//     for multiple issues)
func NewDriver(id kernel.ID, name string, phone string, vehicleType VehicleType) (*Driver, error) {
	d := &Driver{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setPhone(phone),
		d.setVehicleType(vehicleType),
		d.setStatus(StatusAvailable),
		d.setTotalDeliveries(0),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver reconstructs a Driver aggregate from persistent storage.
// Unlike NewDriver which registers fresh drivers, this constructor restores a
// driver to its previously persisted state, including its status, delivery
// counter and currently assigned package IDs.
//
// The restored driver behaves identically to one created through normal
// domain operations.
func RestoreDriver(
	id kernel.ID,
	name string,
	phone string,
	vehicleType VehicleType,
	status Status,
	totalDeliveries int,
	assignedPackages []kernel.ID,
) (*Driver, error) {
	d := &Driver{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setPhone(phone),
		d.setVehicleType(vehicleType),
		d.setStatus(status),
		d.setTotalDeliveries(totalDeliveries),
		d.setAssignedPackages(assignedPackages),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// IsEqual compares two drivers for equality based on their unique identifiers.
// Two drivers are considered equal if they have the same ID, regardless of
// other attributes.
func (d *Driver) IsEqual(other *Driver) bool {
	if other == nil {
		return false
	}
	return d.id.IsEqual(other.id)
}

// Validate checks if the Driver was properly constructed using one of the
// constructor functions. The zero value of Driver is invalid and will fail
// this validation.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// ID returns the unique identifier of the driver.
func (d *Driver) ID() kernel.ID {
	return d.id
}

// Name returns the driver's full name.
func (d *Driver) Name() string {
	return d.name
}

// Phone returns the driver's contact phone number.
func (d *Driver) Phone() string {
	return d.phone
}

// VehicleType returns the description of the driver's vehicle.
func (d *Driver) VehicleType() VehicleType {
	return d.vehicleType
}

// Status returns the driver's current availability status.
func (d *Driver) Status() Status {
	return d.status
}

// IsAvailable reports whether the driver can accept new assignments.
func (d *Driver) IsAvailable() bool {
	return d.status == StatusAvailable
}

// TotalDeliveries returns the lifetime count of completed deliveries.
func (d *Driver) TotalDeliveries() int {
	return d.totalDeliveries
}

// AssignedPackages returns the IDs of packages currently assigned to the
// driver. The returned slice is a copy to prevent external modification.
func (d *Driver) AssignedPackages() []kernel.ID {
	out := make([]kernel.ID, len(d.assignedPackages))
	copy(out, d.assignedPackages)
	return out
}

// ActiveDeliveries returns the number of packages currently assigned to the
// driver. Delivered packages are not part of the assigned set, so this is the
// driver's active workload.
func (d *Driver) ActiveDeliveries() int {
	return len(d.assignedPackages)
}

// RefreshStatus recomputes the driver's availability from the given active
// workload: busy when the driver has at least one active package, available
// otherwise.
//
// This method is called after every assignment and delivery completion so
// the derived status stays consistent with the workload. It also clears any
// earlier manual override.
//
// Parameters:
//   - activeDeliveries: Number of packages assigned to the driver that are
//     not yet delivered (must be non-negative)
//
// Returns:
//   - error: Validation error if activeDeliveries is negative
func (d *Driver) RefreshStatus(activeDeliveries int) error {
	if activeDeliveries < 0 {
		return errs.NewValueIsInvalidError("activeDeliveries")
	}
	d.status = StatusForWorkload(activeDeliveries)
	return nil
}

// OverrideStatus sets the driver's status directly, bypassing workload
// derivation. An operator can use this to force a driver busy or available
// regardless of their current assignments; the override lasts until the next
// workload change recomputes the status.
//
// Parameters:
//   - status: The status to force (must be a valid status value)
//
// Returns:
//   - error: Validation error if the status is invalid
func (d *Driver) OverrideStatus(status Status) error {
	return d.setStatus(status)
}

// RecordDelivery increments the lifetime delivery counter.
// Called exactly once per package when a delivery is completed; completing an
// already delivered package again does not call this method.
func (d *Driver) RecordDelivery() {
	d.totalDeliveries++
}

func (d *Driver) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	d.name = name
	return nil
}

func (d *Driver) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}
	d.phone = phone
	return nil
}

func (d *Driver) setVehicleType(vehicleType VehicleType) error {
	if err := vehicleType.Validate(); err != nil {
		return err
	}
	d.vehicleType = vehicleType
	return nil
}

func (d *Driver) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}

func (d *Driver) setTotalDeliveries(totalDeliveries int) error {
	if totalDeliveries < 0 {
		return errs.NewValueIsInvalidError("totalDeliveries")
	}
	d.totalDeliveries = totalDeliveries
	return nil
}

func (d *Driver) setAssignedPackages(assignedPackages []kernel.ID) error {
	for _, packageID := range assignedPackages {
		if err := packageID.Validate(); err != nil {
			return err
		}
	}
	d.assignedPackages = assignedPackages
	return nil
}
