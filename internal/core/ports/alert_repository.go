package ports

import (
	"context"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/sosalert"
)

// AlertRepository defines the persistence contract for SOS alerts.
type AlertRepository interface {
	// Add persists a new alert record.
	Add(ctx context.Context, aggregate *sosalert.SOSAlert) error

	// Update persists changes to an existing alert, including mirrored status
	// and appended log entries.
	Update(ctx context.Context, aggregate *sosalert.SOSAlert) error

	// Get retrieves an alert by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*sosalert.SOSAlert, error)

	// GetByBooking retrieves the alert linked to a booking.
	GetByBooking(ctx context.Context, bookingID kernel.UUID) (*sosalert.SOSAlert, error)

	// CountOpenByCustomer returns how many alerts of the customer are still
	// open. Used to enforce the free SOS quota.
	CountOpenByCustomer(ctx context.Context, customerID kernel.UUID) (int64, error)
}
