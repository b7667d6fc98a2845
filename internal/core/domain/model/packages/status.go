package packages

import (
	"fmt"

	"courier/internal/pkg/errs"
)

// Status represents the delivery lifecycle state of a package.
//
// The usual progression is:
//
//	pending ──> assigned ──> picked_up ──> in_transit ──> out_for_delivery ──> delivered
//
// Transitions are deliberately permissive: a package may move between any two
// valid statuses, which lets operators correct mistakes (for example moving a
// package back from in_transit to assigned). The only hard rule lives on the
// aggregate: a delivered package cannot be assigned to a driver, and the
// delivery timestamp is recorded once, the first time the package reaches
// delivered.
//
// Status is stored as its string representation for persistence and display.
type Status string

const (
	// StatusPending is the initial status of a newly registered package,
	// waiting to be assigned to a driver.
	StatusPending Status = "pending"

	// StatusAssigned indicates the package has been assigned to a driver.
	StatusAssigned Status = "assigned"

	// StatusPickedUp indicates the driver has collected the package
	// from the sender.
	StatusPickedUp Status = "picked_up"

	// StatusInTransit indicates the package is travelling toward the
	// recipient's area.
	StatusInTransit Status = "in_transit"

	// StatusOutForDelivery indicates the package is on the final leg
	// to the recipient.
	StatusOutForDelivery Status = "out_for_delivery"

	// StatusDelivered indicates the package has reached the recipient.
	// Delivered packages cannot be assigned to a driver.
	StatusDelivered Status = "delivered"
)

// getValidStatuses returns the set of valid Status values.
func getValidStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		StatusPending:        {},
		StatusAssigned:       {},
		StatusPickedUp:       {},
		StatusInTransit:      {},
		StatusOutForDelivery: {},
		StatusDelivered:      {},
	}
}

// ParseStatus converts a raw string into a Status.
// Returns a validation error if the string is not a recognized status value.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: pending, assigned, picked_up, in_transit,
// out_for_delivery, delivered. The empty string and any other values are
// invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid package status", string(s)))
	}
	return nil
}

// IsDelivered reports whether the status is the terminal delivered state.
func (s Status) IsDelivered() bool {
	return s == StatusDelivered
}

// String returns the raw string representation of the status.
func (s Status) String() string {
	return string(s)
}
