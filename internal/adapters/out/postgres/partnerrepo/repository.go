package partnerrepo

import (
	"context"
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/partner"
	"booking/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPartnerRepository implements ports.PartnerRepository using GORM.
type GormPartnerRepository struct {
	db *gorm.DB
}

// NewGormPartnerRepository creates a new GORM partner repository.
func NewGormPartnerRepository(db *gorm.DB) *GormPartnerRepository {
	return &GormPartnerRepository{db: db}
}

// Add saves a new partner.
func (r *GormPartnerRepository) Add(ctx context.Context, aggregate *partner.ServicePartner) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing partner.
func (r *GormPartnerRepository) Update(ctx context.Context, aggregate *partner.ServicePartner) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("partner", aggregate.ID().String())
	}
	return nil
}

// Get retrieves a partner by ID.
func (r *GormPartnerRepository) Get(ctx context.Context, id kernel.UUID) (*partner.ServicePartner, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PartnerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("partner", id.String())
		}
		return nil, err
	}
	return toDomain(dto)
}

// GetByPhone retrieves a partner by phone number.
func (r *GormPartnerRepository) GetByPhone(ctx context.Context, phone string) (*partner.ServicePartner, error) {
	var dto PartnerDTO
	if err := r.db.WithContext(ctx).First(&dto, "phone = ?", phone).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("partner", phone)
		}
		return nil, err
	}
	return toDomain(dto)
}

// GetAllActive retrieves every active partner. Eligibility and availability
// filtering runs in the domain services over this set.
func (r *GormPartnerRepository) GetAllActive(ctx context.Context) ([]*partner.ServicePartner, error) {
	var dtos []PartnerDTO
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	partners := make([]*partner.ServicePartner, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		partners = append(partners, p)
	}
	return partners, nil
}
