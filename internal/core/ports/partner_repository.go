package ports

import (
	"context"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/partner"
)

// PartnerRepository defines the persistence contract for service partners.
type PartnerRepository interface {
	// Add persists a new partner profile.
	Add(ctx context.Context, aggregate *partner.ServicePartner) error

	// Update persists changes to an existing partner, including the
	// round-robin lastAssignedAt bump.
	Update(ctx context.Context, aggregate *partner.ServicePartner) error

	// Get retrieves a partner by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*partner.ServicePartner, error)

	// GetByPhone retrieves a partner by phone number. Phone is unique across
	// partners.
	GetByPhone(ctx context.Context, phone string) (*partner.ServicePartner, error)

	// GetAllActive retrieves every active partner. Capability and region
	// filtering happen in the domain, not in the query, so the eligibility
	// rules live in exactly one place.
	GetAllActive(ctx context.Context) ([]*partner.ServicePartner, error)
}
