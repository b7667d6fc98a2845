// Package packagerepo provides data transfer objects and mapping functions for package persistence.
// This package implements the repository pattern for the package domain aggregate, handling
// the conversion between domain entities and database representations.
package packagerepo

import (
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/packages"
)

// PackageDTO represents the database structure for persisting package aggregates.
// AssignedDriver and DeliveredAt are nullable: a pending package has neither.
type PackageDTO struct {
	ID               string     `gorm:"type:varchar(50);primaryKey"`
	SenderName       string     `gorm:"type:varchar(100);not null"`
	SenderAddress    string     `gorm:"type:varchar(255);not null"`
	RecipientName    string     `gorm:"type:varchar(100);not null"`
	RecipientAddress string     `gorm:"type:varchar(255);not null"`
	Weight           float64    `gorm:"not null"`
	Status           string     `gorm:"type:varchar(20);not null;index"`
	AssignedDriver   *string    `gorm:"type:varchar(50);index"`
	CreatedAt        time.Time  `gorm:"not null"`
	DeliveredAt      *time.Time `gorm:""`
}

// TableName specifies the database table name for package entities.
// Overrides GORM's default naming convention to use "packages".
func (PackageDTO) TableName() string {
	return "packages"
}

// fromDomain converts a package domain aggregate to its database representation.
func fromDomain(aggregate *packages.Package) PackageDTO {
	var assignedDriver *string
	if aggregate.HasAssignedDriver() {
		raw := aggregate.AssignedDriver().String()
		assignedDriver = &raw
	}

	return PackageDTO{
		ID:               aggregate.ID().String(),
		SenderName:       aggregate.SenderName(),
		SenderAddress:    aggregate.SenderAddress(),
		RecipientName:    aggregate.RecipientName(),
		RecipientAddress: aggregate.RecipientAddress(),
		Weight:           aggregate.Weight(),
		Status:           string(aggregate.Status()),
		AssignedDriver:   assignedDriver,
		CreatedAt:        aggregate.CreatedAt(),
		DeliveredAt:      aggregate.DeliveredAt(),
	}
}

// toDomain converts a database DTO to a package domain aggregate.
// Reconstructs the complete aggregate including assignment and timestamps
// using RestorePackage.
func toDomain(dto PackageDTO) (*packages.Package, error) {
	id, err := kernel.ParseID(dto.ID)
	if err != nil {
		return nil, err
	}

	status, err := packages.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var assignedDriver kernel.ID
	if dto.AssignedDriver != nil {
		assignedDriver, err = kernel.ParseID(*dto.AssignedDriver)
		if err != nil {
			return nil, err
		}
	}

	return packages.RestorePackage(id, dto.SenderName, dto.SenderAddress,
		dto.RecipientName, dto.RecipientAddress, dto.Weight, status,
		assignedDriver, dto.CreatedAt, dto.DeliveredAt)
}
