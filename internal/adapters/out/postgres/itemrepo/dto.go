// Package itemrepo persists order-item aggregates. Updates are guarded by an
// optimistic-concurrency version column so two actors racing on the same item
// cannot silently overwrite each other's transition.
package itemrepo

import (
	"time"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/orderitem"

	"github.com/google/uuid"
)

// OrderItemDTO is the database representation of an order item.
type OrderItemDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	BookingID      uuid.UUID `gorm:"type:uuid;not null;index"`
	ServiceID      uuid.UUID `gorm:"type:uuid;not null"`
	VariantID      *uuid.UUID
	ServiceName    string `gorm:"type:varchar(255);not null"`
	VariantName    string `gorm:"type:varchar(255)"`
	UnitPriceCents int64
	Quantity       int
	VisitRequired  bool
	PartnerID      *uuid.UUID `gorm:"type:uuid;index"`
	LocationID     *uuid.UUID `gorm:"type:uuid"`
	StartOTP       string     `gorm:"type:varchar(4);not null"`
	EndOTP         string     `gorm:"type:varchar(4);not null"`
	Status         string     `gorm:"type:varchar(32);not null;index"`
	Holds          []HoldDTO  `gorm:"serializer:json;type:jsonb"`
	Version        int        `gorm:"not null;default:0"`
	CreatedAt      time.Time  `gorm:"not null;index"`
}

// TableName maps the DTO to the "order_items" table.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// HoldDTO is one hold-history entry inside the order_items JSON column.
type HoldDTO struct {
	Reason    string     `json:"reason"`
	Remark    string     `json:"remark,omitempty"`
	StartedAt time.Time  `json:"startedAt"`
	EndedAt   *time.Time `json:"endedAt,omitempty"`
	ActorRole string     `json:"actorRole"`
	ActorID   string     `json:"actorId"`
}

func fromDomain(item *orderitem.OrderItem) OrderItemDTO {
	var variantID, partnerID, locationID *uuid.UUID
	if item.VariantID() != nil {
		raw := item.VariantID().Bytes()
		variantID = &raw
	}
	if item.PartnerID() != nil {
		raw := item.PartnerID().Bytes()
		partnerID = &raw
	}
	if item.LocationID() != nil {
		raw := item.LocationID().Bytes()
		locationID = &raw
	}

	holds := item.Holds()
	holdDTOs := make([]HoldDTO, 0, len(holds))
	for _, h := range holds {
		holdDTOs = append(holdDTOs, HoldDTO{
			Reason:    h.Reason(),
			Remark:    h.Remark(),
			StartedAt: h.StartedAt(),
			EndedAt:   h.EndedAt(),
			ActorRole: string(h.Actor().Role),
			ActorID:   h.Actor().ID,
		})
	}

	return OrderItemDTO{
		ID:             item.ID().Bytes(),
		BookingID:      item.BookingID().Bytes(),
		ServiceID:      item.ServiceID().Bytes(),
		VariantID:      variantID,
		ServiceName:    item.ServiceName(),
		VariantName:    item.VariantName(),
		UnitPriceCents: item.UnitPriceCents(),
		Quantity:       item.Quantity(),
		VisitRequired:  item.VisitRequired(),
		PartnerID:      partnerID,
		LocationID:     locationID,
		StartOTP:       item.StartJobOTP().String(),
		EndOTP:         item.EndJobOTP().String(),
		Status:         item.Status().String(),
		Holds:          holdDTOs,
		Version:        item.Version(),
	}
}

func toDomain(dto OrderItemDTO) (*orderitem.OrderItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	bookingID, err := kernel.UUIDFromBytes(dto.BookingID[:])
	if err != nil {
		return nil, err
	}
	serviceID, err := kernel.UUIDFromBytes(dto.ServiceID[:])
	if err != nil {
		return nil, err
	}

	variantID, err := optionalUUID(dto.VariantID)
	if err != nil {
		return nil, err
	}
	partnerID, err := optionalUUID(dto.PartnerID)
	if err != nil {
		return nil, err
	}
	locationID, err := optionalUUID(dto.LocationID)
	if err != nil {
		return nil, err
	}

	startOTP, err := orderitem.JobOTPFromString(dto.StartOTP)
	if err != nil {
		return nil, err
	}
	endOTP, err := orderitem.JobOTPFromString(dto.EndOTP)
	if err != nil {
		return nil, err
	}
	status, err := orderitem.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	holds := make([]orderitem.Hold, 0, len(dto.Holds))
	for _, h := range dto.Holds {
		actor := orderitem.Actor{Role: orderitem.Role(h.ActorRole), ID: h.ActorID}
		hold, holdErr := orderitem.RestoreHold(h.Reason, h.Remark, h.StartedAt, h.EndedAt, actor)
		if holdErr != nil {
			return nil, holdErr
		}
		holds = append(holds, hold)
	}

	return orderitem.RestoreOrderItem(
		id, bookingID, serviceID, variantID,
		dto.ServiceName, dto.VariantName,
		dto.UnitPriceCents, dto.Quantity, dto.VisitRequired,
		partnerID, locationID, startOTP, endOTP, status, holds, dto.Version,
	)
}

func optionalUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
