package commands

import (
	"context"
	"errors"
	"time"

	"booking/internal/core/domain/model/orderitem"
	"booking/internal/pkg/errs"
)

// transitionRetries bounds the reload-and-retry loop when a concurrent
// transition wins the version race.
const transitionRetries = 3

// TransitionOrderItemCommandHandler validates and applies one state-machine
// transition, then synchronizes the parent booking.
//
// Concurrent transitions on the same item are resolved by optimistic
// concurrency: the repository update compares the version the item was
// loaded with, and on a lost race the handler reloads and re-validates the
// transition against the fresh state. A transition that became illegal after
// the reload is rejected like any other, it is never silently overwritten.
type TransitionOrderItemCommandHandler struct {
	uowFactory SyncUoWFactory
	syncer     Syncer
}

// NewTransitionOrderItemCommandHandler creates a handler for item
// transitions.
func NewTransitionOrderItemCommandHandler(uowFactory SyncUoWFactory, syncer Syncer) TransitionOrderItemCommandHandler {
	return TransitionOrderItemCommandHandler{
		uowFactory: uowFactory,
		syncer:     syncer,
	}
}

// Handle processes the transition command.
func (h *TransitionOrderItemCommandHandler) Handle(ctx context.Context, cmd TransitionOrderItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	req := orderitem.TransitionRequest{
		Target:       cmd.Target(),
		Actor:        cmd.Actor(),
		At:           time.Now().UTC(),
		PresentedOTP: cmd.PresentedOTP(),
		HoldReason:   cmd.HoldReason(),
		HoldRemark:   cmd.HoldRemark(),
	}

	item, err := h.applyWithRetry(ctx, cmd, req)
	if err != nil {
		return err
	}

	return h.syncer.Sync(ctx, item.BookingID())
}

func (h *TransitionOrderItemCommandHandler) applyWithRetry(
	ctx context.Context,
	cmd TransitionOrderItemCommand,
	req orderitem.TransitionRequest,
) (*orderitem.OrderItem, error) {
	var lastErr error

	for attempt := 0; attempt < transitionRetries; attempt++ {
		item, err := h.applyOnce(ctx, cmd, req)
		if err == nil {
			return item, nil
		}
		if !errors.Is(err, errs.ErrVersionIsInvalid) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

func (h *TransitionOrderItemCommandHandler) applyOnce(
	ctx context.Context,
	cmd TransitionOrderItemCommand,
	req orderitem.TransitionRequest,
) (*orderitem.OrderItem, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	item, err := uow.OrderItemRepository().Get(ctx, cmd.ItemID())
	if err != nil {
		return nil, err
	}

	if err = item.Transition(req); err != nil {
		return nil, err
	}

	if err = uow.OrderItemRepository().Update(ctx, item); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return item, nil
}
