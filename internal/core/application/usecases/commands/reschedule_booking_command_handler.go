package commands

import (
	"context"
	"time"

	"booking/internal/core/domain/model/kernel"
)

// RescheduleBookingCommandHandler moves a scheduled booking to a new slot and
// bumps its reschedule counter.
type RescheduleBookingCommandHandler struct {
	uowFactory BookingUoWFactory
}

// NewRescheduleBookingCommandHandler creates a handler for reschedules.
func NewRescheduleBookingCommandHandler(uowFactory BookingUoWFactory) RescheduleBookingCommandHandler {
	return RescheduleBookingCommandHandler{uowFactory: uowFactory}
}

// Handle processes the reschedule command.
func (h *RescheduleBookingCommandHandler) Handle(ctx context.Context, cmd RescheduleBookingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	timeOfDay, err := kernel.ParseTimeOfDay(cmd.TimeOfDay())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.BookingRepository().Get(ctx, cmd.BookingID())
	if err != nil {
		return err
	}

	if err = aggregate.Reschedule(cmd.Date(), timeOfDay, cmd.Actor().String(), time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.BookingRepository().Update(ctx, aggregate); err != nil {
		return err
	}
	return uow.Commit(ctx)
}
