package packagerepo

import (
	"context"
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/packages"
	"courier/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPackageRepository implements PackageRepository using GORM.
type GormPackageRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// NewGormPackageRepository creates a new GORM package repository.
func NewGormPackageRepository(db *gorm.DB, tracker aggregateTracker) *GormPackageRepository {
	return &GormPackageRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new package to the database.
func (r *GormPackageRepository) Add(ctx context.Context, aggregate *packages.Package) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsError("package", aggregate.ID().String())
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing package to the database.
func (r *GormPackageRepository) Update(ctx context.Context, aggregate *packages.Package) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&PackageDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("package", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a package by ID.
func (r *GormPackageRepository) Get(ctx context.Context, id kernel.ID) (*packages.Package, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PackageDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("package", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every package, oldest first.
func (r *GormPackageRepository) GetAll(ctx context.Context) ([]*packages.Package, error) {
	var dtos []PackageDTO
	if err := r.db.WithContext(ctx).Order("created_at, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return r.toDomainSlice(dtos)
}

// GetAllForDriver retrieves the undelivered packages currently assigned to
// the given driver, oldest first. Delivered packages are history, not route.
func (r *GormPackageRepository) GetAllForDriver(ctx context.Context, driverID kernel.ID) ([]*packages.Package, error) {
	if err := driverID.Validate(); err != nil {
		return nil, err
	}

	var dtos []PackageDTO
	if err := r.db.WithContext(ctx).
		Where("assigned_driver = ? AND status != ?", driverID.String(), packages.StatusDelivered).
		Order("created_at, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return r.toDomainSlice(dtos)
}

// GetFirstPending retrieves the oldest package still waiting for dispatch.
func (r *GormPackageRepository) GetFirstPending(ctx context.Context) (*packages.Package, error) {
	var dto PackageDTO
	if err := r.db.WithContext(ctx).
		Where("status = ?", packages.StatusPending).
		Order("created_at, id").
		First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("package", "first pending")
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormPackageRepository) toDomainSlice(dtos []PackageDTO) ([]*packages.Package, error) {
	pkgs := make([]*packages.Package, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		pkgs = append(pkgs, p)
	}

	return pkgs, nil
}
