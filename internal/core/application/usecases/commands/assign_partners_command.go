package commands

import (
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/guard"
)

var ErrAssignPartnersCommandIsNotConstructed = errors.New(
	"AssignPartnersCommand must be created via NewAssignPartnersCommand constructor",
)

// AssignPartnersCommand requests one assignment pass over a booking's
// unassigned items.
//
// Example:
//
//	cmd, err := NewAssignPartnersCommand(bookingID)
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("assignment pass failed: %w", err)
//	}
type AssignPartnersCommand struct { //nolint:recvcheck //using for validation
	bookingID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignPartnersCommand creates an assignment command for the booking.
func NewAssignPartnersCommand(bookingID kernel.UUID) (AssignPartnersCommand, error) {
	cmd := AssignPartnersCommand{
		guard: guard.NewConstructorGuard(),
	}
	if err := bookingID.Validate(); err != nil {
		return AssignPartnersCommand{}, err
	}
	cmd.bookingID = bookingID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignPartnersCommand) Validate() error {
	return c.guard.Validate(ErrAssignPartnersCommandIsNotConstructed)
}

// BookingID returns the booking whose items should be assigned.
func (c AssignPartnersCommand) BookingID() kernel.UUID {
	return c.bookingID
}
