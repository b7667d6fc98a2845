package driver

import (
	"fmt"

	"courier/internal/pkg/errs"
)

// Status represents the availability state of a driver.
//
// A driver's status is normally derived from their workload: a driver with at
// least one active delivery is busy, a driver with none is available. The
// status can also be set directly through a manual override, which bypasses
// the derivation until the next workload change recomputes it.
//
// Status is stored as its string representation for persistence and display.
type Status string

const (
	// StatusAvailable indicates the driver has no active deliveries
	// and can accept new package assignments.
	StatusAvailable Status = "available"

	// StatusBusy indicates the driver currently has at least one
	// active (not yet delivered) package assigned.
	StatusBusy Status = "busy"
)

// getValidStatuses returns the set of valid Status values.
func getValidStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		StatusAvailable: {},
		StatusBusy:      {},
	}
}

// ParseStatus converts a raw string into a Status.
// Returns a validation error if the string is not a recognized status value.
//
// This function is typically used when accepting status values from transport
// payloads or when reconstructing drivers from persistence.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// StatusForWorkload derives the status implied by the given number of active
// (not yet delivered) packages: busy when positive, available otherwise.
func StatusForWorkload(activeDeliveries int) Status {
	if activeDeliveries > 0 {
		return StatusBusy
	}
	return StatusAvailable
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: available, busy.
// The empty string and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid driver status", string(s)))
	}
	return nil
}

// String returns the raw string representation of the status.
func (s Status) String() string {
	return string(s)
}
