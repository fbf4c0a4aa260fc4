package servicerepo

import (
	"context"
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/service"
	"booking/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormServiceRepository implements ports.ServiceRepository using GORM.
type GormServiceRepository struct {
	db *gorm.DB
}

// NewGormServiceRepository creates a new GORM catalog repository.
func NewGormServiceRepository(db *gorm.DB) *GormServiceRepository {
	return &GormServiceRepository{db: db}
}

// Add saves a new catalog entry.
func (r *GormServiceRepository) Add(ctx context.Context, aggregate *service.Service) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing catalog entry.
func (r *GormServiceRepository) Update(ctx context.Context, aggregate *service.Service) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("service", aggregate.ID().String())
	}
	return nil
}

// Get retrieves a catalog entry by ID.
func (r *GormServiceRepository) Get(ctx context.Context, id kernel.UUID) (*service.Service, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ServiceDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("service", id.String())
		}
		return nil, err
	}
	return toDomain(dto)
}

// GetAllActive retrieves every bookable catalog entry.
func (r *GormServiceRepository) GetAllActive(ctx context.Context) ([]*service.Service, error) {
	var dtos []ServiceDTO
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	entries := make([]*service.Service, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, s)
	}
	return entries, nil
}
