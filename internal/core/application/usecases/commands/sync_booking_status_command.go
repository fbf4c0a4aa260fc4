package commands

import (
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/orderitem"
	"booking/internal/pkg/guard"
)

var ErrSyncBookingStatusCommandIsNotConstructed = errors.New(
	"SyncBookingStatusCommand must be created via NewSyncBookingStatusCommand constructor",
)

// SyncBookingStatusCommand requests recomputation of a booking's aggregate
// status from its item statuses.
type SyncBookingStatusCommand struct { //nolint:recvcheck //using for validation
	bookingID kernel.UUID
	actor     orderitem.Actor

	guard guard.ConstructorGuard
}

// NewSyncBookingStatusCommand creates a sync command. The actor is recorded
// in the audit log when the status actually moves.
func NewSyncBookingStatusCommand(bookingID kernel.UUID, actor orderitem.Actor) (SyncBookingStatusCommand, error) {
	cmd := SyncBookingStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		bookingID.Validate(),
		actor.Validate(),
	); err != nil {
		return SyncBookingStatusCommand{}, err
	}

	cmd.bookingID = bookingID
	cmd.actor = actor
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SyncBookingStatusCommand) Validate() error {
	return c.guard.Validate(ErrSyncBookingStatusCommandIsNotConstructed)
}

// BookingID returns the booking to synchronize.
func (c SyncBookingStatusCommand) BookingID() kernel.UUID { return c.bookingID }

// Actor returns who triggered the synchronization.
func (c SyncBookingStatusCommand) Actor() orderitem.Actor { return c.actor }
