package regionrepo

import (
	"context"
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/region"
	"booking/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRegionRepository implements ports.RegionRepository using GORM.
type GormRegionRepository struct {
	db *gorm.DB
}

// NewGormRegionRepository creates a new GORM region repository.
func NewGormRegionRepository(db *gorm.DB) *GormRegionRepository {
	return &GormRegionRepository{db: db}
}

// Add saves a new region.
func (r *GormRegionRepository) Add(ctx context.Context, aggregate *region.ServiceRegion) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing region.
func (r *GormRegionRepository) Update(ctx context.Context, aggregate *region.ServiceRegion) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("region", aggregate.ID().String())
	}
	return nil
}

// Get retrieves a region by ID.
func (r *GormRegionRepository) Get(ctx context.Context, id kernel.UUID) (*region.ServiceRegion, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RegionDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("region", id.String())
		}
		return nil, err
	}
	return toDomain(dto)
}

// GetAllActive retrieves every active region for geofence matching.
func (r *GormRegionRepository) GetAllActive(ctx context.Context) ([]*region.ServiceRegion, error) {
	var dtos []RegionDTO
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	regions := make([]*region.ServiceRegion, 0, len(dtos))
	for _, dto := range dtos {
		reg, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		regions = append(regions, reg)
	}
	return regions, nil
}
