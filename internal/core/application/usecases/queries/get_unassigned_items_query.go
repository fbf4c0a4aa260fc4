package queries

import (
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/guard"
)

var ErrGetUnassignedItemsQueryIsNotConstructed = errors.New(
	"GetUnassignedItemsQuery must be created via NewGetUnassignedItemsQuery constructor",
)

// GetUnassignedItemsQuery retrieves all order items that still lack a
// partner, for the admin dashboard and assignment retries.
type GetUnassignedItemsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUnassignedItemsQuery creates a parameterless unassigned-items query.
func NewGetUnassignedItemsQuery() GetUnassignedItemsQuery {
	return GetUnassignedItemsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetUnassignedItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetUnassignedItemsQueryIsNotConstructed)
}

// GetUnassignedItemsQueryResponse is one unassigned item with enough booking
// context to act on it.
type GetUnassignedItemsQueryResponse struct {
	ItemID        kernel.UUID
	BookingID     kernel.UUID
	BookingNumber string
	BookingKind   string
	ServiceName   string
	Status        string
}
