package ports

import (
	"context"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/region"
)

// RegionRepository defines the persistence contract for service regions.
type RegionRepository interface {
	// Add persists a new region.
	Add(ctx context.Context, aggregate *region.ServiceRegion) error

	// Update persists changes to an existing region.
	Update(ctx context.Context, aggregate *region.ServiceRegion) error

	// Get retrieves a region by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*region.ServiceRegion, error)

	// GetAllActive retrieves every active region for geofence matching.
	GetAllActive(ctx context.Context) ([]*region.ServiceRegion, error)
}
