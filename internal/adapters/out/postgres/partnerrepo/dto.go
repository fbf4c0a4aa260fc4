// Package partnerrepo persists service-partner aggregates. Capabilities,
// servable regions and the weekly schedule live in JSON columns; eligibility
// filtering happens in the domain, not in SQL.
package partnerrepo

import (
	"time"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/partner"

	"github.com/google/uuid"
)

// PartnerDTO is the database representation of a service partner.
type PartnerDTO struct {
	ID             uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Name           string      `gorm:"type:varchar(255);not null"`
	Phone          string      `gorm:"type:varchar(32);uniqueIndex;not null"`
	Email          string      `gorm:"type:varchar(255)"`
	Services       []string    `gorm:"serializer:json;type:jsonb"`
	Regions        []uuid.UUID `gorm:"serializer:json;type:jsonb"`
	Availability   []SlotDTO   `gorm:"serializer:json;type:jsonb"`
	IsActive       bool        `gorm:"not null;index"`
	LastAssignedAt *time.Time  `gorm:"index"`
	PushToken      string      `gorm:"type:text"`
}

// TableName maps the DTO to the "partners" table.
func (PartnerDTO) TableName() string {
	return "partners"
}

// SlotDTO is one weekly-availability row inside the partners JSON column.
// Times are minutes since midnight.
type SlotDTO struct {
	Day          int  `json:"day"`
	StartMinutes int  `json:"start"`
	EndMinutes   int  `json:"end"`
	Available    bool `json:"available"`
}

func fromDomain(p *partner.ServicePartner) PartnerDTO {
	regions := make([]uuid.UUID, 0, len(p.ServiceRegions()))
	for _, r := range p.ServiceRegions() {
		regions = append(regions, r.Bytes())
	}

	availability := p.Availability()
	slots := make([]SlotDTO, 0, len(availability))
	for _, s := range availability {
		slots = append(slots, SlotDTO{
			Day:          int(s.Day()),
			StartMinutes: s.Start().Minutes(),
			EndMinutes:   s.End().Minutes(),
			Available:    s.IsAvailable(),
		})
	}

	return PartnerDTO{
		ID:             p.ID().Bytes(),
		Name:           p.Name(),
		Phone:          p.Phone(),
		Email:          p.Email(),
		Services:       p.Services(),
		Regions:        regions,
		Availability:   slots,
		IsActive:       p.IsActive(),
		LastAssignedAt: p.LastAssignedAt(),
		PushToken:      p.PushToken(),
	}
}

func toDomain(dto PartnerDTO) (*partner.ServicePartner, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	regions := make([]kernel.UUID, 0, len(dto.Regions))
	for _, raw := range dto.Regions {
		r, regionErr := kernel.UUIDFromBytes(raw[:])
		if regionErr != nil {
			return nil, regionErr
		}
		regions = append(regions, r)
	}

	slots := make([]partner.AvailabilitySlot, 0, len(dto.Availability))
	for _, s := range dto.Availability {
		start, slotErr := kernel.NewTimeOfDay(s.StartMinutes/60, s.StartMinutes%60)
		if slotErr != nil {
			return nil, slotErr
		}
		end, slotErr := kernel.NewTimeOfDay(s.EndMinutes/60, s.EndMinutes%60)
		if slotErr != nil {
			return nil, slotErr
		}
		slot, slotErr := partner.NewAvailabilitySlot(time.Weekday(s.Day), start, end, s.Available)
		if slotErr != nil {
			return nil, slotErr
		}
		slots = append(slots, slot)
	}

	return partner.RestoreServicePartner(
		id, dto.Name, dto.Phone, dto.Email, dto.Services,
		regions, slots, dto.IsActive, dto.LastAssignedAt, dto.PushToken,
	)
}
