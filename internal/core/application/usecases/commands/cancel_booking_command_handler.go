package commands

import (
	"context"
	"time"

	"booking/internal/core/domain/model/orderitem"
)

// CancelBookingCommandHandler performs the administrative cancel. Cancelling
// runs through the item state machine, so a booking with work already in
// progress or finished is rejected as a whole: either every item can be
// cancelled, or nothing changes.
type CancelBookingCommandHandler struct {
	uowFactory SyncUoWFactory
	syncer     Syncer
}

// NewCancelBookingCommandHandler creates a handler for booking cancellation.
func NewCancelBookingCommandHandler(uowFactory SyncUoWFactory, syncer Syncer) CancelBookingCommandHandler {
	return CancelBookingCommandHandler{
		uowFactory: uowFactory,
		syncer:     syncer,
	}
}

// Handle processes the cancel command.
func (h *CancelBookingCommandHandler) Handle(ctx context.Context, cmd CancelBookingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.BookingRepository().Get(ctx, cmd.BookingID())
	if err != nil {
		return err
	}

	items, err := uow.OrderItemRepository().GetByBooking(ctx, aggregate.ID())
	if err != nil {
		return err
	}

	for _, item := range items {
		if item.Status().IsTerminal() || item.Status().IsCancelFamily() {
			continue
		}

		transitionErr := item.Transition(orderitem.TransitionRequest{
			Target: orderitem.StatusCancelled,
			Actor:  cmd.Actor(),
			At:     now,
		})
		if transitionErr != nil {
			return transitionErr
		}
		if err = uow.OrderItemRepository().Update(ctx, item); err != nil {
			return err
		}
	}

	if err = aggregate.ForceCancel(cmd.Actor().String(), now, cmd.Reason()); err != nil {
		return err
	}
	if err = uow.BookingRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// The aggregate status is already CANCELLED; the sync pass is for the
	// alert mirror and the admin broadcast.
	return h.syncer.Sync(ctx, aggregate.ID())
}
