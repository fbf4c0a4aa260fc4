package queries

import (
	"context"
	"database/sql"
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetBookingQueryHandler reads the booking detail view straight from the
// database, bypassing the aggregates.
type GetBookingQueryHandler struct {
	db *gorm.DB
}

// NewGetBookingQueryHandler creates a handler for booking detail queries.
// Requires a GORM database connection for query execution.
func NewGetBookingQueryHandler(db *gorm.DB) GetBookingQueryHandler {
	return GetBookingQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ErrObjectNotFound when the booking
// does not exist.
func (h GetBookingQueryHandler) Handle(ctx context.Context, query GetBookingQuery) (GetBookingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetBookingQueryResponse{}, err
	}

	var resp GetBookingQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			kind,
			status,
			payment_status,
			address_text,
			total_cents
		FROM bookings
		WHERE id = ?
	`, query.BookingID().String()).Row()

	var id uuid.UUID
	err := row.Scan(&id, &resp.Number, &resp.Kind, &resp.Status, &resp.PaymentStatus,
		&resp.AddressText, &resp.TotalCents)
	if errors.Is(err, sql.ErrNoRows) {
		return GetBookingQueryResponse{}, errs.NewObjectNotFoundError("booking", query.BookingID().String())
	}
	if err != nil {
		return GetBookingQueryResponse{}, err
	}
	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetBookingQueryResponse{}, err
	}

	items, err := h.loadItems(ctx, query.BookingID())
	if err != nil {
		return GetBookingQueryResponse{}, err
	}
	resp.Items = items
	return resp, nil
}

func (h GetBookingQueryHandler) loadItems(ctx context.Context, bookingID kernel.UUID) ([]GetBookingItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			i.id,
			i.service_name,
			i.variant_name,
			i.status,
			i.quantity,
			i.unit_price_cents,
			i.partner_id,
			COALESCE(p.name, '')
		FROM order_items i
		LEFT JOIN partners p ON p.id = i.partner_id
		WHERE i.booking_id = ?
		ORDER BY i.created_at
	`, bookingID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]GetBookingItemResponse, 0)
	for rows.Next() {
		var (
			item      GetBookingItemResponse
			id        uuid.UUID
			partnerID *uuid.UUID
		)

		err = rows.Scan(&id, &item.ServiceName, &item.VariantName, &item.Status,
			&item.Quantity, &item.PriceCents, &partnerID, &item.PartnerName)
		if err != nil {
			return nil, err
		}

		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if partnerID != nil {
			pid, pidErr := kernel.UUIDFromBytes((*partnerID)[:])
			if pidErr != nil {
				return nil, pidErr
			}
			item.PartnerID = &pid
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
