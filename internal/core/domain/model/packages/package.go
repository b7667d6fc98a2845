package packages

import (
	"errors"
	"fmt"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

const (
	// maxNameLength is the maximum length of sender and recipient names,
	// matching the width of the corresponding database columns.
	maxNameLength = 100
	// maxAddressLength is the maximum length of sender and recipient
	// addresses, matching the width of the corresponding database columns.
	maxAddressLength = 255
)

// Domain errors for package operations.
var (
	// ErrSenderNameIsRequired is returned when attempting to create a package without a sender name.
	ErrSenderNameIsRequired = errs.NewValueIsRequiredError("senderName")
	// ErrSenderAddressIsRequired is returned when attempting to create a package without a sender address.
	ErrSenderAddressIsRequired = errs.NewValueIsRequiredError("senderAddress")
	// ErrRecipientNameIsRequired is returned when attempting to create a package without a recipient name.
	ErrRecipientNameIsRequired = errs.NewValueIsRequiredError("recipientName")
	// ErrRecipientAddressIsRequired is returned when attempting to create a package without a recipient address.
	ErrRecipientAddressIsRequired = errs.NewValueIsRequiredError("recipientAddress")
	// ErrPackageIsNotConstructed is returned when using an improperly initialized Package.
	ErrPackageIsNotConstructed = errors.New("Package must be created via NewPackage constructor")
	// ErrPackageAlreadyDelivered is returned when attempting to assign a package
	// that has already been delivered.
	ErrPackageAlreadyDelivered = errs.NewValueIsInvalidErrorWithCause("package",
		fmt.Errorf("a delivered package cannot be assigned to a driver"))
)

// Package represents a delivery package in the courier system.
// It is an aggregate root that manages package identity, sender and recipient
// details, the delivery lifecycle status, and the assigned driver.
//
// Key responsibilities:
//   - Managing package identity and shipment details
//   - Enforcing the delivery lifecycle (see Status)
//   - Tracking the assigned driver, if any
//   - Recording creation and delivery timestamps
//
// Business rules:
//   - Package must have a valid ID, non-empty sender/recipient details and
//     positive weight
//   - A newly registered package starts pending with no driver assigned
//   - A delivered package cannot be assigned to a driver
//   - The delivery timestamp is recorded once, the first time the package
//     reaches the delivered status, and never changes afterwards
//
// Example usage:
//
//	id, _ := kernel.ParseID("P1")
//	p, err := NewPackage(id, "Acme Corp", "1 Industrial Way", "Jane Doe", "42 Oak St", 2.5)
//	if err != nil {
//	    // Handle construction error
//	}
//	// Package is pending and ready for dispatch
type Package struct {
	// id uniquely identifies the package
	id kernel.ID
	// senderName is the name of the sender
	senderName string
	// senderAddress is the pickup address
	senderAddress string
	// recipientName is the name of the recipient
	recipientName string
	// recipientAddress is the delivery address
	recipientAddress string
	// weight is the package weight in kilograms
	weight float64
	// status is the current delivery lifecycle state
	status Status
	// assignedDriver is the ID of the assigned driver, zero if unassigned
	assignedDriver kernel.ID
	// createdAt is when the package was registered
	createdAt time.Time
	// deliveredAt is when the package was delivered, nil until then
	deliveredAt *time.Time
	// guard ensures the package was properly constructed
	guard guard.ConstructorGuard
}

// NewPackage creates a new Package with the specified parameters.
// This is the only way to register a fresh package in the system.
//
// The constructor validates all input parameters. A new package always starts
// in the pending status with no driver assigned, and records the current time
// as its creation timestamp.
//
// Parameters:
//   - id: Unique identifier for the package (must be valid)
//   - senderName: Name of the sender (must be non-empty)
//   - senderAddress: Pickup address (must be non-empty)
//   - recipientName: Name of the recipient (must be non-empty)
//   - recipientAddress: Delivery address (must be non-empty)
//   - weight: Package weight in kilograms (must be positive)
//
// Returns:
//   - *Package: A fully initialized package ready for dispatch
//   - error: Validation error if any parameter is invalid (aggregated errors
//     for multiple issues)
func NewPackage(
	id kernel.ID,
	senderName string,
	senderAddress string,
	recipientName string,
	recipientAddress string,
	weight float64,
) (*Package, error) {
	p := &Package{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setSenderName(senderName),
		p.setSenderAddress(senderAddress),
		p.setRecipientName(recipientName),
		p.setRecipientAddress(recipientAddress),
		p.setWeight(weight),
		p.setStatus(StatusPending),
	); err != nil {
		return nil, err
	}

	p.createdAt = time.Now().UTC()
	return p, nil
}

// RestorePackage reconstructs a Package aggregate from persistent storage.
// Unlike NewPackage which registers fresh packages, this constructor restores
// a package to its previously persisted state, including its status, assigned
// driver and timestamps.
//
// The restored package behaves identically to one created through normal
// domain operations.
func RestorePackage(
	id kernel.ID,
	senderName string,
	senderAddress string,
	recipientName string,
	recipientAddress string,
	weight float64,
	status Status,
	assignedDriver kernel.ID,
	createdAt time.Time,
	deliveredAt *time.Time,
) (*Package, error) {
	p := &Package{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setSenderName(senderName),
		p.setSenderAddress(senderAddress),
		p.setRecipientName(recipientName),
		p.setRecipientAddress(recipientAddress),
		p.setWeight(weight),
		p.setStatus(status),
	); err != nil {
		return nil, err
	}

	p.assignedDriver = assignedDriver
	p.createdAt = createdAt
	p.deliveredAt = deliveredAt
	return p, nil
}

// IsEqual compares two packages for equality based on their unique identifiers.
// Two packages are considered equal if they have the same ID, regardless of
// other attributes.
func (p *Package) IsEqual(other *Package) bool {
	if other == nil {
		return false
	}
	return p.id.IsEqual(other.id)
}

// Validate checks if the Package was properly constructed using one of the
// constructor functions. The zero value of Package is invalid and will fail
// this validation.
func (p *Package) Validate() error {
	if p == nil {
		return ErrPackageIsNotConstructed
	}
	return p.guard.Validate(ErrPackageIsNotConstructed)
}

// ID returns the unique identifier of the package.
func (p *Package) ID() kernel.ID {
	return p.id
}

// SenderName returns the name of the sender.
func (p *Package) SenderName() string {
	return p.senderName
}

// SenderAddress returns the pickup address.
func (p *Package) SenderAddress() string {
	return p.senderAddress
}

// RecipientName returns the name of the recipient.
func (p *Package) RecipientName() string {
	return p.recipientName
}

// RecipientAddress returns the delivery address.
func (p *Package) RecipientAddress() string {
	return p.recipientAddress
}

// Weight returns the package weight in kilograms.
func (p *Package) Weight() float64 {
	return p.weight
}

// Status returns the current delivery lifecycle state of the package.
func (p *Package) Status() Status {
	return p.status
}

// IsDelivered reports whether the package has reached the delivered status.
func (p *Package) IsDelivered() bool {
	return p.status.IsDelivered()
}

// AssignedDriver returns the ID of the driver the package is assigned to.
// The returned ID is zero if the package has never been assigned.
func (p *Package) AssignedDriver() kernel.ID {
	return p.assignedDriver
}

// HasAssignedDriver reports whether a driver has been assigned to the package.
// The assigned driver is retained for history even after delivery.
func (p *Package) HasAssignedDriver() bool {
	return !p.assignedDriver.IsZero()
}

// CreatedAt returns the time the package was registered.
func (p *Package) CreatedAt() time.Time {
	return p.createdAt
}

// DeliveredAt returns the time the package was delivered, or nil if the
// package has not been delivered yet.
func (p *Package) DeliveredAt() *time.Time {
	return p.deliveredAt
}

// AssignTo assigns the package to the given driver and moves it to the
// assigned status. Reassignment from one driver to another is allowed as long
// as the package has not been delivered.
//
// Parameters:
//   - driverID: ID of the driver to assign (must be valid)
//
// Returns:
//   - error: ErrPackageAlreadyDelivered if the package is delivered, or a
//     validation error if the driver ID is invalid
//
// State changes:
//   - assignedDriver is set to the given driver
//   - status becomes assigned
func (p *Package) AssignTo(driverID kernel.ID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if p.IsDelivered() {
		return ErrPackageAlreadyDelivered
	}

	p.assignedDriver = driverID
	p.status = StatusAssigned
	return nil
}

// UpdateStatus moves the package to the given lifecycle status.
// Transitions are permissive: any valid status can be set from any other,
// which lets operators correct mistakes in the recorded lifecycle.
//
// When the package first reaches the delivered status, the delivery timestamp
// is recorded. Subsequent transitions never change it: moving a package out
// of delivered and back keeps the original timestamp.
//
// Parameters:
//   - status: The status to set (must be a valid status value)
//
// Returns:
//   - error: Validation error if the status is invalid
func (p *Package) UpdateStatus(status Status) error {
	if err := p.setStatus(status); err != nil {
		return err
	}

	if p.status.IsDelivered() && p.deliveredAt == nil {
		now := time.Now().UTC()
		p.deliveredAt = &now
	}
	return nil
}

func (p *Package) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Package) setSenderName(senderName string) error {
	if senderName == "" {
		return ErrSenderNameIsRequired
	}
	if len(senderName) > maxNameLength {
		return errs.NewValueIsOutOfRangeError("senderName", len(senderName), 1, maxNameLength)
	}
	p.senderName = senderName
	return nil
}

func (p *Package) setSenderAddress(senderAddress string) error {
	if senderAddress == "" {
		return ErrSenderAddressIsRequired
	}
	if len(senderAddress) > maxAddressLength {
		return errs.NewValueIsOutOfRangeError("senderAddress", len(senderAddress), 1, maxAddressLength)
	}
	p.senderAddress = senderAddress
	return nil
}

func (p *Package) setRecipientName(recipientName string) error {
	if recipientName == "" {
		return ErrRecipientNameIsRequired
	}
	if len(recipientName) > maxNameLength {
		return errs.NewValueIsOutOfRangeError("recipientName", len(recipientName), 1, maxNameLength)
	}
	p.recipientName = recipientName
	return nil
}

func (p *Package) setRecipientAddress(recipientAddress string) error {
	if recipientAddress == "" {
		return ErrRecipientAddressIsRequired
	}
	if len(recipientAddress) > maxAddressLength {
		return errs.NewValueIsOutOfRangeError("recipientAddress", len(recipientAddress), 1, maxAddressLength)
	}
	p.recipientAddress = recipientAddress
	return nil
}

func (p *Package) setWeight(weight float64) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("weight must be positive, got %v", weight))
	}
	p.weight = weight
	return nil
}

func (p *Package) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}
