// Package driverrepo provides data transfer objects and mapping functions for driver persistence.
// This package implements the repository pattern for the driver domain aggregate, handling
// the conversion between domain entities and database representations.
package driverrepo

import (
	"courier/internal/core/domain/model/driver"
	"courier/internal/core/domain/model/kernel"
)

// DriverDTO represents the database structure for persisting driver aggregates.
// The driver's active route is not stored here: package assignments live in the
// packages table and are hydrated into the aggregate on load.
type DriverDTO struct {
	ID              string `gorm:"type:varchar(50);primaryKey"`
	Name            string `gorm:"type:varchar(100);not null"`
	Phone           string `gorm:"type:varchar(20);not null"`
	VehicleType     string `gorm:"type:varchar(20);not null"`
	Status          string `gorm:"type:varchar(20);not null;index"`
	TotalDeliveries int    `gorm:"type:int;not null;default:0"`
}

// TableName specifies the database table name for driver entities.
// Overrides GORM's default naming convention to use "drivers".
func (DriverDTO) TableName() string {
	return "drivers"
}

// fromDomain converts a driver domain aggregate to its database representation.
// Assigned packages are intentionally dropped: the packages table owns the
// assignment relation via its assigned_driver column.
func fromDomain(aggregate *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:              aggregate.ID().String(),
		Name:            aggregate.Name(),
		Phone:           aggregate.Phone(),
		VehicleType:     string(aggregate.VehicleType()),
		Status:          string(aggregate.Status()),
		TotalDeliveries: aggregate.TotalDeliveries(),
	}
}

// toDomain converts a database DTO to a driver domain aggregate.
// The caller supplies the IDs of the driver's undelivered packages, loaded
// from the packages table, so the restored aggregate knows its active route.
func toDomain(dto DriverDTO, assignedPackages []kernel.ID) (*driver.Driver, error) {
	id, err := kernel.ParseID(dto.ID)
	if err != nil {
		return nil, err
	}

	vehicleType, err := driver.ParseVehicleType(dto.VehicleType)
	if err != nil {
		return nil, err
	}

	status, err := driver.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(id, dto.Name, dto.Phone, vehicleType, status,
		dto.TotalDeliveries, assignedPackages)
}
