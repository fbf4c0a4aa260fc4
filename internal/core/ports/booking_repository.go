package ports

import (
	"context"
	"time"

	"booking/internal/core/domain/model/booking"
	"booking/internal/core/domain/model/kernel"
)

// BookingRepository defines the persistence contract for booking aggregates.
type BookingRepository interface {
	// Add persists a new booking aggregate to storage.
	Add(ctx context.Context, aggregate *booking.Booking) error

	// Update persists changes to an existing booking aggregate, including
	// status changes and appended audit-log entries.
	Update(ctx context.Context, aggregate *booking.Booking) error

	// Get retrieves a booking aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error)

	// GetByNumber retrieves a booking by its human-readable number.
	GetByNumber(ctx context.Context, number booking.Number) (*booking.Booking, error)

	// CountCreatedOn returns how many bookings were created on the given UTC
	// calendar day. Used to build the next daily booking-number sequence.
	CountCreatedOn(ctx context.Context, day time.Time) (int64, error)
}
