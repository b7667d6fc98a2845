package driver

import (
	"strings"

	"courier/internal/pkg/errs"
)

// MaxVehicleTypeLength is the maximum number of characters a vehicle type
// may contain. It matches the width of the vehicle_type column in the
// database schema.
const MaxVehicleTypeLength = 20

// VehicleType describes the kind of vehicle a driver operates.
//
// The well-known values are VehicleBike, VehicleVan and VehicleTruck, but the
// type is deliberately open: dispatch does not branch on the vehicle, so any
// non-empty description is accepted.
type VehicleType string

const (
	VehicleBike  VehicleType = "bike"
	VehicleVan   VehicleType = "van"
	VehicleTruck VehicleType = "truck"
)

// ParseVehicleType converts a raw string into a VehicleType.
// Leading and trailing whitespace is trimmed. The remaining value must be
// non-empty and no longer than MaxVehicleTypeLength characters.
func ParseVehicleType(s string) (VehicleType, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errs.NewValueIsRequiredError("vehicleType")
	}
	if len(s) > MaxVehicleTypeLength {
		return "", errs.NewValueIsOutOfRangeError("vehicleType", len(s), 1, MaxVehicleTypeLength)
	}
	return VehicleType(s), nil
}

// Validate checks that the vehicle type is non-empty and within the length limit.
func (v VehicleType) Validate() error {
	if v == "" {
		return errs.NewValueIsRequiredError("vehicleType")
	}
	if len(v) > MaxVehicleTypeLength {
		return errs.NewValueIsOutOfRangeError("vehicleType", len(v), 1, MaxVehicleTypeLength)
	}
	return nil
}

// String returns the raw string representation of the vehicle type.
func (v VehicleType) String() string {
	return string(v)
}
