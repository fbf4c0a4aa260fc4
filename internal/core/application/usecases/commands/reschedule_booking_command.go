package commands

import (
	"errors"
	"time"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/orderitem"
	"booking/internal/pkg/errs"
	"booking/internal/pkg/guard"
)

var ErrRescheduleBookingCommandIsNotConstructed = errors.New(
	"RescheduleBookingCommand must be created via NewRescheduleBookingCommand constructor",
)

// RescheduleBookingCommand moves a scheduled booking to a new slot.
type RescheduleBookingCommand struct { //nolint:recvcheck //using for validation
	bookingID kernel.UUID
	date      time.Time
	timeOfDay string
	actor     orderitem.Actor

	guard guard.ConstructorGuard
}

// NewRescheduleBookingCommand creates a reschedule command. The clock time is
// accepted in 24-hour or 12-hour form.
func NewRescheduleBookingCommand(
	bookingID kernel.UUID,
	date time.Time,
	timeOfDay string,
	actor orderitem.Actor,
) (RescheduleBookingCommand, error) {
	cmd := RescheduleBookingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		bookingID.Validate(),
		actor.Validate(),
	); err != nil {
		return RescheduleBookingCommand{}, err
	}
	if date.IsZero() {
		return RescheduleBookingCommand{}, errs.NewValueIsRequiredError("date")
	}
	if timeOfDay == "" {
		return RescheduleBookingCommand{}, errs.NewValueIsRequiredError("time")
	}

	cmd.bookingID = bookingID
	cmd.date = date
	cmd.timeOfDay = timeOfDay
	cmd.actor = actor
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RescheduleBookingCommand) Validate() error {
	return c.guard.Validate(ErrRescheduleBookingCommandIsNotConstructed)
}

// BookingID returns the booking to move.
func (c RescheduleBookingCommand) BookingID() kernel.UUID { return c.bookingID }

// Date returns the new date.
func (c RescheduleBookingCommand) Date() time.Time { return c.date }

// TimeOfDay returns the new clock time as supplied by the caller.
func (c RescheduleBookingCommand) TimeOfDay() string { return c.timeOfDay }

// Actor returns who reschedules.
func (c RescheduleBookingCommand) Actor() orderitem.Actor { return c.actor }
