package commands

import (
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/orderitem"
	"booking/internal/pkg/guard"
)

var ErrTransitionOrderItemCommandIsNotConstructed = errors.New(
	"TransitionOrderItemCommand must be created via NewTransitionOrderItemCommand constructor",
)

// TransitionOrderItemCommand requests one state-machine transition on an
// order item: a partner going en-route, a job started with the customer's
// OTP, a hold, a cancellation.
//
// Example:
//
//	cmd, err := NewTransitionOrderItemCommand(itemID,
//	    orderitem.StatusInProgress,
//	    orderitem.Actor{Role: orderitem.RolePartner, ID: partnerID.String()},
//	    "4831", "", "")
type TransitionOrderItemCommand struct { //nolint:recvcheck //using for validation
	itemID       kernel.UUID
	target       orderitem.Status
	actor        orderitem.Actor
	presentedOTP string
	holdReason   string
	holdRemark   string

	guard guard.ConstructorGuard
}

// NewTransitionOrderItemCommand creates a transition command. The OTP, hold
// reason and remark are only consulted when the target status demands them.
func NewTransitionOrderItemCommand(
	itemID kernel.UUID,
	target orderitem.Status,
	actor orderitem.Actor,
	presentedOTP string,
	holdReason string,
	holdRemark string,
) (TransitionOrderItemCommand, error) {
	cmd := TransitionOrderItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		itemID.Validate(),
		target.Validate(),
		actor.Validate(),
	); err != nil {
		return TransitionOrderItemCommand{}, err
	}

	cmd.itemID = itemID
	cmd.target = target
	cmd.actor = actor
	cmd.presentedOTP = presentedOTP
	cmd.holdReason = holdReason
	cmd.holdRemark = holdRemark
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderItemCommandIsNotConstructed)
}

// ItemID returns the item to transition.
func (c TransitionOrderItemCommand) ItemID() kernel.UUID { return c.itemID }

// Target returns the requested status.
func (c TransitionOrderItemCommand) Target() orderitem.Status { return c.target }

// Actor returns who requests the transition.
func (c TransitionOrderItemCommand) Actor() orderitem.Actor { return c.actor }

// PresentedOTP returns the code presented for OTP-gated transitions.
func (c TransitionOrderItemCommand) PresentedOTP() string { return c.presentedOTP }

// HoldReason returns the reason for an ON_HOLD transition.
func (c TransitionOrderItemCommand) HoldReason() string { return c.holdReason }

// HoldRemark returns the optional remark for an ON_HOLD transition.
func (c TransitionOrderItemCommand) HoldRemark() string { return c.holdRemark }
