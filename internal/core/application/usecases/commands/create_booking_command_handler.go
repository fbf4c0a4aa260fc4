package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"booking/internal/core/domain/model/booking"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/orderitem"
	"booking/internal/core/domain/model/sosalert"
	"booking/internal/pkg/errs"
)

// Assigner triggers the partner-assignment pass for a booking. Implemented by
// AssignPartnersCommandHandler; abstracted here so booking creation can fire
// it best-effort without a hard dependency.
type Assigner interface {
	Assign(ctx context.Context, bookingID kernel.UUID) error
}

// CreateBookingCommandHandler handles checkout: it builds the booking number,
// snapshots catalog names and prices onto the items, opens the SOS alert when
// needed and persists everything in one transaction.
//
// After the transaction commits the handler triggers the assignment pass.
// Assignment is best-effort: its failure is logged and never surfaces to the
// checkout caller, since an admin can retry assignment later.
type CreateBookingCommandHandler struct {
	uowFactory BookingUoWFactory
	assigner   Assigner
	settings   Settings
	logger     *slog.Logger
}

// NewCreateBookingCommandHandler creates a handler for checkout operations.
func NewCreateBookingCommandHandler(
	uowFactory BookingUoWFactory,
	assigner Assigner,
	settings Settings,
	logger *slog.Logger,
) CreateBookingCommandHandler {
	return CreateBookingCommandHandler{
		uowFactory: uowFactory,
		assigner:   assigner,
		settings:   settings,
		logger:     logger.With("component", "create_booking"),
	}
}

// Handle processes the checkout command.
func (h *CreateBookingCommandHandler) Handle(ctx context.Context, cmd CreateBookingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	address, scheduledTime, err := h.parseRequest(cmd)
	if err != nil {
		return err
	}

	now := time.Now().UTC()

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	createdToday, err := uow.BookingRepository().CountCreatedOn(ctx, now)
	if err != nil {
		return err
	}
	number, err := booking.NewNumber(now, createdToday)
	if err != nil {
		return err
	}

	items, subtotal, err := h.buildItems(ctx, uow, cmd)
	if err != nil {
		return err
	}

	total := subtotal - cmd.DiscountCents()
	if total < 0 {
		total = 0
	}

	aggregate, err := booking.NewBooking(
		cmd.BookingID(), number, cmd.CustomerID(), address,
		cmd.Kind(), cmd.ScheduledDate(), scheduledTime,
		subtotal, cmd.DiscountCents(), total,
		orderitem.SystemActor().String(), now,
	)
	if err != nil {
		return err
	}

	if cmd.Kind() == booking.KindSOS {
		if err = h.openAlert(ctx, uow, aggregate); err != nil {
			return err
		}
	}

	if err = uow.BookingRepository().Add(ctx, aggregate); err != nil {
		return err
	}
	for _, item := range items {
		if err = uow.OrderItemRepository().Add(ctx, item); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if h.assigner != nil {
		if assignErr := h.assigner.Assign(ctx, aggregate.ID()); assignErr != nil {
			h.logger.ErrorContext(ctx, "assignment pass failed, booking left for retry",
				"bookingId", aggregate.ID().String(), "error", assignErr)
		}
	}
	return nil
}

func (h *CreateBookingCommandHandler) parseRequest(cmd CreateBookingCommand) (booking.Address, *kernel.TimeOfDay, error) {
	var point *kernel.GeoPoint
	if cmd.Lat() != nil {
		p, err := kernel.NewGeoPoint(*cmd.Lat(), *cmd.Lng())
		if err != nil {
			return booking.Address{}, nil, err
		}
		point = &p
	}

	address, err := booking.NewAddress(cmd.AddressLabel(), cmd.AddressText(), cmd.AddressArea(), point)
	if err != nil {
		return booking.Address{}, nil, err
	}

	var scheduledTime *kernel.TimeOfDay
	if cmd.ScheduledTime() != "" {
		t, err := kernel.ParseTimeOfDay(cmd.ScheduledTime())
		if err != nil {
			return booking.Address{}, nil, err
		}
		scheduledTime = &t
	}
	return address, scheduledTime, nil
}

// buildItems resolves each requested service, snapshots names and prices and
// returns the item aggregates plus the subtotal.
func (h *CreateBookingCommandHandler) buildItems(
	ctx context.Context,
	uow BookingUoW,
	cmd CreateBookingCommand,
) ([]*orderitem.OrderItem, int64, error) {
	var (
		items    []*orderitem.OrderItem
		subtotal int64
	)

	for _, spec := range cmd.Items() {
		svc, err := uow.ServiceRepository().Get(ctx, spec.ServiceID)
		if err != nil {
			return nil, 0, err
		}

		price := svc.BasePriceCents()
		variantName := ""
		if spec.VariantID != nil {
			variant := svc.VariantByID(*spec.VariantID)
			if variant == nil {
				return nil, 0, errs.NewObjectNotFoundError("variant", spec.VariantID.String())
			}
			price = variant.PriceCents
			variantName = variant.Name
		}

		item, err := orderitem.NewOrderItem(
			spec.ItemID, cmd.BookingID(), spec.ServiceID, spec.VariantID,
			svc.Name(), variantName, price, spec.Quantity, svc.VisitRequired(),
		)
		if err != nil {
			return nil, 0, err
		}

		items = append(items, item)
		subtotal += price * int64(spec.Quantity)
	}
	return items, subtotal, nil
}

// openAlert enforces the free SOS quota and links a fresh alert record to the
// booking.
func (h *CreateBookingCommandHandler) openAlert(
	ctx context.Context,
	uow BookingUoW,
	aggregate *booking.Booking,
) error {
	if h.settings.MaxOpenSOSAlerts > 0 {
		open, err := uow.AlertRepository().CountOpenByCustomer(ctx, aggregate.CustomerID())
		if err != nil {
			return err
		}
		if open >= h.settings.MaxOpenSOSAlerts {
			return errs.NewBusinessRuleViolatedError(
				fmt.Sprintf("customer already has %d open SOS alerts", open))
		}
	}

	alert, err := sosalert.NewSOSAlert(kernel.NewUUID(), aggregate.ID())
	if err != nil {
		return err
	}
	if err = aggregate.LinkAlert(alert.ID()); err != nil {
		return err
	}
	return uow.AlertRepository().Add(ctx, alert)
}
