package orderitem

import (
	"errors"
	"fmt"
	"time"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/errs"
)

// ErrOrderItemIsNotConstructed is returned when an OrderItem instance was not
// created through NewOrderItem or RestoreOrderItem.
var ErrOrderItemIsNotConstructed = errors.New("OrderItem must be created via NewOrderItem or RestoreOrderItem")

// OrderItem is one billable, schedulable unit of work within a booking — the
// unit of assignment and of status tracking.
//
// Invariants:
//   - Service name and price are snapshotted at creation: later catalog edits
//     never change historical bookings.
//   - startJobOTP and endJobOTP are drawn once and immutable.
//   - A fixed-location reference is only meaningful when no customer-site
//     visit is required.
//   - Status transitions follow the explicit table in status.go; every
//     accepted transition is expected to be followed by a booking status sync.
type OrderItem struct {
	id        kernel.UUID
	bookingID kernel.UUID

	serviceID   kernel.UUID
	variantID   *kernel.UUID
	serviceName string
	variantName string

	unitPriceCents int64
	quantity       int
	visitRequired  bool

	partnerID  *kernel.UUID
	locationID *kernel.UUID

	startJobOTP JobOTP
	endJobOTP   JobOTP

	status Status
	holds  []Hold

	// version supports compare-and-swap updates; bumped by the repository.
	version int

	isConstructed bool
}

// NewOrderItem creates a pending item with freshly drawn OTPs.
// Names and price are the catalog snapshot taken at checkout time.
func NewOrderItem(
	id kernel.UUID,
	bookingID kernel.UUID,
	serviceID kernel.UUID,
	variantID *kernel.UUID,
	serviceName string,
	variantName string,
	unitPriceCents int64,
	quantity int,
	visitRequired bool,
) (*OrderItem, error) {
	item := &OrderItem{
		status:        StatusPending,
		startJobOTP:   NewJobOTP(),
		endJobOTP:     NewJobOTP(),
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setBookingID(bookingID),
		item.setService(serviceID, variantID, serviceName, variantName),
		item.setPrice(unitPriceCents),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	item.visitRequired = visitRequired
	return item, nil
}

// RestoreOrderItem reconstructs an item from persistence with its full state,
// including the persisted OTP pair, hold history and version.
func RestoreOrderItem(
	id kernel.UUID,
	bookingID kernel.UUID,
	serviceID kernel.UUID,
	variantID *kernel.UUID,
	serviceName string,
	variantName string,
	unitPriceCents int64,
	quantity int,
	visitRequired bool,
	partnerID *kernel.UUID,
	locationID *kernel.UUID,
	startJobOTP JobOTP,
	endJobOTP JobOTP,
	status Status,
	holds []Hold,
	version int,
) (*OrderItem, error) {
	item, err := NewOrderItem(id, bookingID, serviceID, variantID,
		serviceName, variantName, unitPriceCents, quantity, visitRequired)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(startJobOTP.Validate(), endJobOTP.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	if version < 0 {
		return nil, errs.NewValueIsInvalidError("version")
	}

	item.partnerID = partnerID
	item.locationID = locationID
	item.startJobOTP = startJobOTP
	item.endJobOTP = endJobOTP
	item.status = status
	item.holds = append([]Hold(nil), holds...)
	item.version = version
	return item, nil
}

// Validate ensures the item was created through a constructor.
func (i *OrderItem) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrOrderItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *OrderItem) ID() kernel.UUID { return i.id }

// BookingID returns the parent booking reference.
func (i *OrderItem) BookingID() kernel.UUID { return i.bookingID }

// ServiceID returns the catalog service reference.
func (i *OrderItem) ServiceID() kernel.UUID { return i.serviceID }

// VariantID returns the optional service variant reference.
func (i *OrderItem) VariantID() *kernel.UUID { return i.variantID }

// ServiceName returns the service name snapshotted at creation.
func (i *OrderItem) ServiceName() string { return i.serviceName }

// VariantName returns the variant name snapshotted at creation.
func (i *OrderItem) VariantName() string { return i.variantName }

// UnitPriceCents returns the price snapshotted at creation.
func (i *OrderItem) UnitPriceCents() int64 { return i.unitPriceCents }

// Quantity returns how many units of the service were ordered.
func (i *OrderItem) Quantity() int { return i.quantity }

// VisitRequired reports whether fulfillment happens at the customer site.
func (i *OrderItem) VisitRequired() bool { return i.visitRequired }

// PartnerID returns the assigned partner, nil while unassigned.
func (i *OrderItem) PartnerID() *kernel.UUID { return i.partnerID }

// LocationID returns the fixed fulfillment location, nil unless the item is
// fulfilled at a service location instead of the customer site.
func (i *OrderItem) LocationID() *kernel.UUID { return i.locationID }

// StartJobOTP returns the immutable start-job code.
func (i *OrderItem) StartJobOTP() JobOTP { return i.startJobOTP }

// EndJobOTP returns the immutable end-job code.
func (i *OrderItem) EndJobOTP() JobOTP { return i.endJobOTP }

// Status returns the current lifecycle state.
func (i *OrderItem) Status() Status { return i.status }

// Version returns the optimistic-concurrency version.
func (i *OrderItem) Version() int { return i.version }

// Holds returns a copy of the hold history, oldest first.
func (i *OrderItem) Holds() []Hold {
	out := make([]Hold, len(i.holds))
	copy(out, i.holds)
	return out
}

// OpenHold returns the currently open hold entry, nil when not on hold.
func (i *OrderItem) OpenHold() *Hold {
	for idx := len(i.holds) - 1; idx >= 0; idx-- {
		if i.holds[idx].IsOpen() {
			h := i.holds[idx]
			return &h
		}
	}
	return nil
}

// IsUnassigned reports whether no partner is assigned yet.
func (i *OrderItem) IsUnassigned() bool {
	return i.partnerID == nil
}

// TransitionRequest carries everything a transition attempt may need. Fields
// irrelevant to the requested target are ignored.
type TransitionRequest struct {
	Target Status
	Actor  Actor
	At     time.Time

	// PresentedOTP is checked against the start or end job OTP when the
	// transition demands one.
	PresentedOTP string

	// HoldReason and HoldRemark describe an ON_HOLD transition.
	HoldReason string
	HoldRemark string
}

// Transition attempts to move the item to the requested status. On any
// rejection — structural, role, or OTP — the item is left untouched.
//
// Accepted ON_HOLD transitions append an open hold entry; resuming from
// ON_HOLD closes it with the request timestamp.
func (i *OrderItem) Transition(req TransitionRequest) error {
	if err := i.Validate(); err != nil {
		return err
	}
	if err := req.Actor.Validate(); err != nil {
		return err
	}

	requirement, err := i.status.RequirementFor(req.Target)
	if err != nil {
		return err
	}

	if requirement&RequirePartnerRole != 0 && req.Actor.Role != RolePartner {
		return errs.NewBusinessRuleViolatedError(
			fmt.Sprintf("%s is a provider-facing transition", req.Target))
	}
	if requirement&RequireStartOTP != 0 && !i.startJobOTP.Matches(req.PresentedOTP) {
		return errs.NewBusinessRuleViolatedError("start job OTP mismatch")
	}
	if requirement&RequireEndOTP != 0 && !i.endJobOTP.Matches(req.PresentedOTP) {
		return errs.NewBusinessRuleViolatedError("end job OTP mismatch")
	}
	if requirement&RequireHoldReason != 0 && req.HoldReason == "" {
		return errs.NewValueIsRequiredError("hold reason")
	}

	at := req.At
	if at.IsZero() {
		at = time.Now().UTC()
	}

	if req.Target == StatusOnHold {
		hold, holdErr := NewHold(req.HoldReason, req.HoldRemark, at, req.Actor)
		if holdErr != nil {
			return holdErr
		}
		i.holds = append(i.holds, hold)
	}

	if i.status == StatusOnHold {
		for idx := range i.holds {
			if i.holds[idx].IsOpen() {
				i.holds[idx].close(at)
			}
		}
	}

	i.status = req.Target
	return nil
}

// AssignPartner records the partner chosen by the assignment engine. The item
// advances to ASSIGNED only from PENDING or CONFIRMED — a status already past
// ASSIGNED (for example a manual override) is never pulled back or overridden.
func (i *OrderItem) AssignPartner(partnerID kernel.UUID) error {
	if err := i.Validate(); err != nil {
		return err
	}
	if err := partnerID.Validate(); err != nil {
		return err
	}
	if i.status.IsTerminal() || i.status.IsCancelFamily() {
		return errs.NewBusinessRuleViolatedError(
			fmt.Sprintf("cannot assign a partner to an item in status %s", i.status))
	}

	i.partnerID = &partnerID
	if i.status == StatusPending || i.status == StatusConfirmed {
		i.status = StatusAssigned
	}
	return nil
}

// AssignLocation records the fixed fulfillment location for items that do not
// require a customer-site visit.
func (i *OrderItem) AssignLocation(locationID kernel.UUID) error {
	if err := i.Validate(); err != nil {
		return err
	}
	if i.visitRequired {
		return errs.NewBusinessRuleViolatedError(
			"a fixed location only applies when no customer-site visit is required")
	}
	if err := locationID.Validate(); err != nil {
		return err
	}
	i.locationID = &locationID
	return nil
}

func (i *OrderItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *OrderItem) setBookingID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("booking id", err)
	}
	i.bookingID = id
	return nil
}

func (i *OrderItem) setService(serviceID kernel.UUID, variantID *kernel.UUID, serviceName, variantName string) error {
	if err := serviceID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("service id", err)
	}
	if variantID != nil {
		if err := variantID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("variant id", err)
		}
	}
	if serviceName == "" {
		return errs.NewValueIsRequiredError("service name")
	}

	i.serviceID = serviceID
	i.variantID = variantID
	i.serviceName = serviceName
	i.variantName = variantName
	return nil
}

func (i *OrderItem) setPrice(priceCents int64) error {
	if priceCents < 0 {
		return errs.NewValueIsInvalidError("unit price")
	}
	i.unitPriceCents = priceCents
	return nil
}

func (i *OrderItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
