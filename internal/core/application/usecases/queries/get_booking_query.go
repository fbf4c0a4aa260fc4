// Package queries contains read-only operations returning view models
// directly from the database. Implements the query side of the CQRS
// architecture: no aggregates, no transactions, raw SQL projections.
package queries

import (
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/guard"
)

var ErrGetBookingQueryIsNotConstructed = errors.New(
	"GetBookingQuery must be created via NewGetBookingQuery constructor",
)

// GetBookingQuery retrieves one booking with its items for detail views.
//
// Example:
//
//	query, err := NewGetBookingQuery(bookingID)
//	if err != nil {
//	    return err
//	}
//	view, err := handler.Handle(ctx, query)
type GetBookingQuery struct { //nolint:recvcheck //using for validation
	bookingID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetBookingQuery creates a booking detail query.
func NewGetBookingQuery(bookingID kernel.UUID) (GetBookingQuery, error) {
	q := GetBookingQuery{guard: guard.NewConstructorGuard()}
	if err := bookingID.Validate(); err != nil {
		return GetBookingQuery{}, err
	}
	q.bookingID = bookingID
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBookingQuery) Validate() error {
	return q.guard.Validate(ErrGetBookingQueryIsNotConstructed)
}

// BookingID returns the booking to fetch.
func (q GetBookingQuery) BookingID() kernel.UUID {
	return q.bookingID
}

// GetBookingItemResponse is one line item of the booking detail view.
type GetBookingItemResponse struct {
	ID          kernel.UUID
	ServiceName string
	VariantName string
	Status      string
	Quantity    int
	PriceCents  int64
	PartnerID   *kernel.UUID
	PartnerName string
}

// GetBookingQueryResponse is the booking detail view.
type GetBookingQueryResponse struct {
	ID            kernel.UUID
	Number        string
	Kind          string
	Status        string
	PaymentStatus string
	AddressText   string
	TotalCents    int64
	Items         []GetBookingItemResponse
}
