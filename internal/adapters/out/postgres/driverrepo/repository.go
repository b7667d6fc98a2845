package driverrepo

import (
	"context"
	"errors"

	"courier/internal/core/domain/model/driver"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/packages"
	"courier/internal/pkg/errs"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

// GormDriverRepository implements DriverRepository using GORM.
type GormDriverRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// NewGormDriverRepository creates a new GORM driver repository.
func NewGormDriverRepository(db *gorm.DB, tracker aggregateTracker) *GormDriverRepository {
	return &GormDriverRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new driver to the database.
func (r *GormDriverRepository) Add(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsError("driver", aggregate.ID().String())
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing driver to the database.
func (r *GormDriverRepository) Update(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DriverDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("driver", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a driver by ID, including the IDs of the undelivered packages
// currently assigned to them.
func (r *GormDriverRepository) Get(ctx context.Context, id kernel.ID) (*driver.Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DriverDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", id.String())
		}
		return nil, err
	}

	assignedPackages, err := r.activePackageIDs(ctx, id)
	if err != nil {
		return nil, err
	}

	return toDomain(dto, assignedPackages)
}

// GetAll retrieves every driver with their active package assignments.
// Assignments are loaded in a single query and grouped per driver to avoid
// one query per aggregate.
func (r *GormDriverRepository) GetAll(ctx context.Context) ([]*driver.Driver, error) {
	var dtos []DriverDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	type assignmentRow struct {
		ID             string
		AssignedDriver string
	}

	var assignments []assignmentRow
	if err := r.db.WithContext(ctx).
		Table("packages").
		Select("id, assigned_driver").
		Where("assigned_driver IS NOT NULL AND status != ?", packages.StatusDelivered).
		Order("created_at, id").
		Find(&assignments).Error; err != nil {
		return nil, err
	}

	byDriver := lo.GroupBy(assignments, func(row assignmentRow) string {
		return row.AssignedDriver
	})

	drivers := make([]*driver.Driver, 0, len(dtos))
	for _, dto := range dtos {
		assignedPackages := make([]kernel.ID, 0, len(byDriver[dto.ID]))
		for _, row := range byDriver[dto.ID] {
			packageID, err := kernel.ParseID(row.ID)
			if err != nil {
				return nil, err
			}
			assignedPackages = append(assignedPackages, packageID)
		}

		d, err := toDomain(dto, assignedPackages)
		if err != nil {
			return nil, err
		}
		drivers = append(drivers, d)
	}

	return drivers, nil
}

// UpdateStatus changes the persisted status of a single driver without
// loading the full aggregate.
func (r *GormDriverRepository) UpdateStatus(ctx context.Context, id kernel.ID, status driver.Status) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if err := status.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&DriverDTO{}).
		Where("id = ?", id.String()).
		Update("status", string(status))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("driver", id.String())
	}

	return nil
}

// IncrementDeliveries bumps the driver's lifetime delivery counter by one.
// The increment happens in the database so concurrent completions never lose
// counts.
func (r *GormDriverRepository) IncrementDeliveries(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&DriverDTO{}).
		Where("id = ?", id.String()).
		Update("total_deliveries", gorm.Expr("total_deliveries + 1"))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("driver", id.String())
	}

	return nil
}

func (r *GormDriverRepository) activePackageIDs(ctx context.Context, driverID kernel.ID) ([]kernel.ID, error) {
	var rawIDs []string
	if err := r.db.WithContext(ctx).
		Table("packages").
		Where("assigned_driver = ? AND status != ?", driverID.String(), packages.StatusDelivered).
		Order("created_at, id").
		Pluck("id", &rawIDs).Error; err != nil {
		return nil, err
	}

	ids := make([]kernel.ID, 0, len(rawIDs))
	for _, raw := range rawIDs {
		id, err := kernel.ParseID(raw)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}
