package queries

import (
	"context"

	"booking/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Statuses that no longer need a partner; items in them never surface as
// unassigned work.
var settledItemStatuses = []string{"COMPLETED", "CANCELLED", "REFUND_INITIATED", "REFUNDED"}

// GetUnassignedItemsQueryHandler lists items awaiting a partner, oldest
// booking first so the longest-waiting work is retried first.
type GetUnassignedItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetUnassignedItemsQueryHandler creates a handler for unassigned-item
// queries. Requires a GORM database connection for query execution.
func NewGetUnassignedItemsQueryHandler(db *gorm.DB) GetUnassignedItemsQueryHandler {
	return GetUnassignedItemsQueryHandler{db: db}
}

// Handle executes the query.
func (h GetUnassignedItemsQueryHandler) Handle(
	ctx context.Context,
	query GetUnassignedItemsQuery,
) ([]GetUnassignedItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			i.id,
			b.id,
			b.number,
			b.kind,
			i.service_name,
			i.status
		FROM order_items i
		JOIN bookings b ON b.id = i.booking_id
		WHERE i.partner_id IS NULL
		  AND i.status NOT IN ?
		ORDER BY b.created_at, i.created_at
	`, settledItemStatuses).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]GetUnassignedItemsQueryResponse, 0)
	for rows.Next() {
		var (
			item      GetUnassignedItemsQueryResponse
			itemID    uuid.UUID
			bookingID uuid.UUID
		)

		err = rows.Scan(&itemID, &bookingID, &item.BookingNumber, &item.BookingKind,
			&item.ServiceName, &item.Status)
		if err != nil {
			return nil, err
		}

		if item.ItemID, err = kernel.UUIDFromBytes(itemID[:]); err != nil {
			return nil, err
		}
		if item.BookingID, err = kernel.UUIDFromBytes(bookingID[:]); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
