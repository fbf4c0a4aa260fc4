package commands

import (
	"context"
	"log/slog"
	"time"

	"booking/internal/core/domain/model/booking"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/orderitem"
	"booking/internal/core/domain/model/sosalert"
	"booking/internal/core/ports"
)

// Admin dashboard event names for SOS status changes.
const (
	EventSOSResolved  = "sos:resolved"
	EventSOSCancelled = "sos:cancelled"
	EventSOSUpdated   = "sos:updated"
)

// SyncBookingStatusCommandHandler is the booking status synchronizer: it
// derives the aggregate status from the item statuses and writes it back only
// when it moved, making the operation idempotent.
//
// For SOS bookings with a linked alert the first item's status is mirrored
// into the alert vocabulary, the alert log is appended behind its dedup
// guard, and a real-time event goes out to admin observers. Mirroring and
// broadcasting are best-effort: their failures are logged and never roll back
// the booking update.
type SyncBookingStatusCommandHandler struct {
	uowFactory  SyncUoWFactory
	broadcaster ports.AdminBroadcaster
	logger      *slog.Logger
}

// NewSyncBookingStatusCommandHandler creates the synchronizer.
func NewSyncBookingStatusCommandHandler(
	uowFactory SyncUoWFactory,
	broadcaster ports.AdminBroadcaster,
	logger *slog.Logger,
) SyncBookingStatusCommandHandler {
	return SyncBookingStatusCommandHandler{
		uowFactory:  uowFactory,
		broadcaster: broadcaster,
		logger:      logger.With("component", "status_synchronizer"),
	}
}

// Sync recomputes the booking status on behalf of the system actor.
// Convenience wrapper implementing the Syncer interface.
func (h SyncBookingStatusCommandHandler) Sync(ctx context.Context, bookingID kernel.UUID) error {
	cmd, err := NewSyncBookingStatusCommand(bookingID, orderitem.SystemActor())
	if err != nil {
		return err
	}
	return h.Handle(ctx, cmd)
}

// Handle processes the synchronization command.
func (h SyncBookingStatusCommandHandler) Handle(ctx context.Context, cmd SyncBookingStatusCommand) error {
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

	statuses := make([]orderitem.Status, 0, len(items))
	for _, item := range items {
		statuses = append(statuses, item.Status())
	}

	derived := booking.DeriveStatus(statuses)
	changed, err := aggregate.ApplyDerivedStatus(derived, cmd.Actor().String(), now)
	if err != nil {
		return err
	}
	if changed {
		if err = uow.BookingRepository().Update(ctx, aggregate); err != nil {
			return err
		}
	}

	alertEvent := h.mirrorAlert(ctx, uow, aggregate, items, cmd.Actor().String(), now)

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if alertEvent != "" {
		h.broadcast(ctx, alertEvent, aggregate)
	}
	return nil
}

// mirrorAlert pushes the first item's status into the linked alert record.
// Returns the admin event to broadcast after commit, empty for none. Failures
// are logged, never propagated: the booking update must not roll back because
// the mirror misbehaved.
func (h SyncBookingStatusCommandHandler) mirrorAlert(
	ctx context.Context,
	uow SyncUoW,
	aggregate *booking.Booking,
	items []*orderitem.OrderItem,
	actor string,
	now time.Time,
) string {
	if !aggregate.IsSOS() || aggregate.AlertID() == nil || len(items) == 0 {
		return ""
	}

	mirrored, ok := sosalert.StatusForItem(items[0].Status())
	if !ok {
		return ""
	}

	alert, err := uow.AlertRepository().Get(ctx, *aggregate.AlertID())
	if err != nil {
		h.logger.WarnContext(ctx, "alert mirror skipped",
			"bookingId", aggregate.ID().String(), "error", err)
		return ""
	}

	changed, err := alert.Mirror(mirrored, actor, now)
	if err != nil {
		h.logger.WarnContext(ctx, "alert mirror rejected",
			"bookingId", aggregate.ID().String(), "error", err)
		return ""
	}

	if err = uow.AlertRepository().Update(ctx, alert); err != nil {
		h.logger.WarnContext(ctx, "alert mirror write failed",
			"bookingId", aggregate.ID().String(), "error", err)
		return ""
	}

	if !changed {
		return ""
	}
	switch mirrored {
	case sosalert.StatusResolved:
		return EventSOSResolved
	case sosalert.StatusCancelled:
		return EventSOSCancelled
	default:
		return EventSOSUpdated
	}
}

func (h SyncBookingStatusCommandHandler) broadcast(ctx context.Context, event string, aggregate *booking.Booking) {
	if h.broadcaster == nil {
		return
	}

	payload := map[string]string{
		"bookingId":     aggregate.ID().String(),
		"bookingNumber": aggregate.Number().String(),
		"status":        aggregate.Status().String(),
	}
	if err := h.broadcaster.EmitToAdmin(ctx, event, payload); err != nil {
		h.logger.WarnContext(ctx, "admin broadcast failed", "event", event, "error", err)
	}
}
