// Package servicerepo persists catalog services and their priced variants.
package servicerepo

import (
	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/service"

	"github.com/google/uuid"
)

// ServiceDTO is the database representation of a catalog entry.
type ServiceDTO struct {
	ID             uuid.UUID    `gorm:"type:uuid;primaryKey"`
	Name           string       `gorm:"type:varchar(255);not null"`
	Capability     string       `gorm:"type:varchar(128);not null;index"`
	BasePriceCents int64
	VisitRequired  bool
	IsActive       bool         `gorm:"not null;index"`
	Variants       []VariantDTO `gorm:"serializer:json;type:jsonb"`
}

// TableName maps the DTO to the "services" table.
func (ServiceDTO) TableName() string {
	return "services"
}

// VariantDTO is one priced option inside the services JSON column.
type VariantDTO struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	PriceCents int64     `json:"priceCents"`
}

func fromDomain(s *service.Service) ServiceDTO {
	variants := s.Variants()
	variantDTOs := make([]VariantDTO, 0, len(variants))
	for _, v := range variants {
		variantDTOs = append(variantDTOs, VariantDTO{
			ID:         v.ID.Bytes(),
			Name:       v.Name,
			PriceCents: v.PriceCents,
		})
	}

	return ServiceDTO{
		ID:             s.ID().Bytes(),
		Name:           s.Name(),
		Capability:     s.Capability(),
		BasePriceCents: s.BasePriceCents(),
		VisitRequired:  s.VisitRequired(),
		IsActive:       s.IsActive(),
		Variants:       variantDTOs,
	}
}

func toDomain(dto ServiceDTO) (*service.Service, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	variants := make([]service.Variant, 0, len(dto.Variants))
	for _, v := range dto.Variants {
		variantID, variantErr := kernel.UUIDFromBytes(v.ID[:])
		if variantErr != nil {
			return nil, variantErr
		}
		variants = append(variants, service.Variant{
			ID:         variantID,
			Name:       v.Name,
			PriceCents: v.PriceCents,
		})
	}

	return service.RestoreService(
		id, dto.Name, dto.Capability, dto.BasePriceCents,
		dto.VisitRequired, dto.IsActive, variants,
	)
}
