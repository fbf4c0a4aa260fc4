package ports

import (
	"context"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/orderitem"
)

// OrderItemRepository defines the persistence contract for order items.
type OrderItemRepository interface {
	// Add persists a new order item.
	Add(ctx context.Context, aggregate *orderitem.OrderItem) error

	// Update persists changes to an existing item with a compare-and-swap on
	// its version field. Returns errs.ErrVersionIsInvalid when the stored
	// version no longer matches the one the aggregate was loaded with, which
	// means a concurrent transition won the race and the caller must reload
	// and retry.
	Update(ctx context.Context, aggregate *orderitem.OrderItem) error

	// Get retrieves an item by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*orderitem.OrderItem, error)

	// GetByBooking retrieves all items of a booking in creation order.
	GetByBooking(ctx context.Context, bookingID kernel.UUID) ([]*orderitem.OrderItem, error)

	// GetAllUnassigned retrieves items that still have no partner and are not
	// in a settled status. Used by the assignment retry job and the admin
	// dashboard.
	GetAllUnassigned(ctx context.Context) ([]*orderitem.OrderItem, error)
}
