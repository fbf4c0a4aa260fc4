package commands

import (
	"errors"
	"strings"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/orderitem"
	"booking/internal/pkg/errs"
	"booking/internal/pkg/guard"
)

var ErrCancelBookingCommandIsNotConstructed = errors.New(
	"CancelBookingCommand must be created via NewCancelBookingCommand constructor",
)

// CancelBookingCommand requests an administrative cancel of a whole booking:
// every item is cancelled first, then the aggregate is stamped.
type CancelBookingCommand struct { //nolint:recvcheck //using for validation
	bookingID kernel.UUID
	actor     orderitem.Actor
	reason    string

	guard guard.ConstructorGuard
}

// NewCancelBookingCommand creates a cancel command. A reason is mandatory, it
// goes into the audit log.
func NewCancelBookingCommand(bookingID kernel.UUID, actor orderitem.Actor, reason string) (CancelBookingCommand, error) {
	cmd := CancelBookingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		bookingID.Validate(),
		actor.Validate(),
	); err != nil {
		return CancelBookingCommand{}, err
	}
	if strings.TrimSpace(reason) == "" {
		return CancelBookingCommand{}, errs.NewValueIsRequiredError("reason")
	}

	cmd.bookingID = bookingID
	cmd.actor = actor
	cmd.reason = reason
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelBookingCommand) Validate() error {
	return c.guard.Validate(ErrCancelBookingCommandIsNotConstructed)
}

// BookingID returns the booking to cancel.
func (c CancelBookingCommand) BookingID() kernel.UUID { return c.bookingID }

// Actor returns who cancels.
func (c CancelBookingCommand) Actor() orderitem.Actor { return c.actor }

// Reason returns the audit-log reason.
func (c CancelBookingCommand) Reason() string { return c.reason }
