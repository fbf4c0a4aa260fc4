package commands

import (
	"context"
	"log/slog"
	"time"

	"booking/internal/core/domain/model/booking"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/orderitem"
	"booking/internal/core/domain/model/partner"
	"booking/internal/core/domain/services"
	"booking/internal/core/ports"
)

// Syncer recomputes a booking's aggregate status. Implemented by
// SyncBookingStatusCommandHandler.
type Syncer interface {
	Sync(ctx context.Context, bookingID kernel.UUID) error
}

// AssignPartnersCommandHandler is the assignment engine: it geo-matches the
// booking address once, then walks the unassigned items picking the first
// eligible, available partner for each in round-robin order.
//
// Items are processed sequentially and independently: one item's failure to
// find a partner is logged and never blocks the others. Push notifications go
// out after commit, fire-and-forget. When all items are processed the booking
// status is synchronized once.
type AssignPartnersCommandHandler struct {
	uowFactory AssignmentUoWFactory
	selector   services.PartnerSelector
	matcher    services.RegionMatcher
	notifier   ports.NotificationSender
	syncer     Syncer
	logger     *slog.Logger
}

// NewAssignPartnersCommandHandler creates the assignment engine.
func NewAssignPartnersCommandHandler(
	uowFactory AssignmentUoWFactory,
	settings Settings,
	notifier ports.NotificationSender,
	syncer Syncer,
	logger *slog.Logger,
) AssignPartnersCommandHandler {
	return AssignPartnersCommandHandler{
		uowFactory: uowFactory,
		selector:   services.NewPartnerSelector(settings.AvailabilityPolicy),
		matcher:    services.NewRegionMatcher(),
		notifier:   notifier,
		syncer:     syncer,
		logger:     logger.With("component", "assignment_engine"),
	}
}

// Assign runs one assignment pass for the booking. Convenience wrapper
// implementing the Assigner interface used by checkout.
func (h AssignPartnersCommandHandler) Assign(ctx context.Context, bookingID kernel.UUID) error {
	cmd, err := NewAssignPartnersCommand(bookingID)
	if err != nil {
		return err
	}
	return h.Handle(ctx, cmd)
}

// Handle processes the assignment command.
func (h AssignPartnersCommandHandler) Handle(ctx context.Context, cmd AssignPartnersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

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

	point := aggregate.Address().Point()
	if point == nil {
		h.logger.WarnContext(ctx, "booking has no coordinates, skipping assignment",
			"bookingId", aggregate.ID().String())
		return nil
	}

	items, err := uow.OrderItemRepository().GetByBooking(ctx, aggregate.ID())
	if err != nil {
		return err
	}

	regions, err := uow.RegionRepository().GetAllActive(ctx)
	if err != nil {
		return err
	}
	matched := h.matcher.MatchingRegions(*point, regions)

	partners, err := uow.PartnerRepository().GetAllActive(ctx)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	var pushes []services.PushMessage
	for _, item := range items {
		if !item.IsUnassigned() || item.Status().IsTerminal() {
			continue
		}

		msg, itemErr := h.assignItem(ctx, uow, aggregate, item, matched, partners, now)
		if itemErr != nil {
			// Per-item failures are isolated: log and move on.
			h.logger.WarnContext(ctx, "item left unassigned",
				"bookingId", aggregate.ID().String(),
				"itemId", item.ID().String(),
				"error", itemErr)
			continue
		}
		if msg != nil {
			pushes = append(pushes, *msg)
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.sendPushes(ctx, pushes)

	return h.syncer.Sync(ctx, aggregate.ID())
}

// assignItem picks a partner for one item and persists both sides. A nil push
// message means the partner has no registered device.
func (h AssignPartnersCommandHandler) assignItem(
	ctx context.Context,
	uow AssignmentUoW,
	aggregate *booking.Booking,
	item *orderitem.OrderItem,
	matched []kernel.UUID,
	partners []*partner.ServicePartner,
	now time.Time,
) (*services.PushMessage, error) {
	svc, err := uow.ServiceRepository().Get(ctx, item.ServiceID())
	if err != nil {
		return nil, err
	}

	winner, err := h.selector.Select(
		svc.Capability(), matched, partners,
		aggregate.ScheduledDate(), aggregate.ScheduledTime(),
	)
	if err != nil {
		return nil, err
	}

	if err = item.AssignPartner(winner.ID()); err != nil {
		return nil, err
	}
	if err = uow.OrderItemRepository().Update(ctx, item); err != nil {
		return nil, err
	}

	winner.MarkAssigned(now)
	if err = uow.PartnerRepository().Update(ctx, winner); err != nil {
		return nil, err
	}

	if winner.PushToken() == "" {
		return nil, nil
	}
	msg := services.ComposeAssignmentPush(aggregate, item, winner.PushToken(), now)
	return &msg, nil
}

func (h AssignPartnersCommandHandler) sendPushes(ctx context.Context, pushes []services.PushMessage) {
	if h.notifier == nil {
		return
	}
	for _, msg := range pushes {
		if err := h.notifier.Send(ctx, msg); err != nil {
			h.logger.WarnContext(ctx, "push notification failed", "error", err)
		}
	}
}
