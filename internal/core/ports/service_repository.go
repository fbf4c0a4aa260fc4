package ports

import (
	"context"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/service"
)

// ServiceRepository defines the persistence contract for catalog services.
type ServiceRepository interface {
	// Add persists a new catalog entry.
	Add(ctx context.Context, aggregate *service.Service) error

	// Update persists changes to an existing catalog entry.
	Update(ctx context.Context, aggregate *service.Service) error

	// Get retrieves a service by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*service.Service, error)

	// GetAllActive retrieves every bookable service.
	GetAllActive(ctx context.Context) ([]*service.Service, error)
}
