package booking

import (
	"errors"
	"fmt"
	"time"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/errs"
)

// ErrBookingIsNotConstructed signals use of a zero-value booking.
var ErrBookingIsNotConstructed = errors.New(
	"booking is not constructed, use NewBooking or RestoreBooking")

// Action types appended to the booking audit log.
const (
	ActionCreated      = "CREATED"
	ActionRescheduled  = "RESCHEDULED"
	ActionCancelled    = "CANCELLED"
	ActionStatusSynced = "STATUS_SYNCED"
)

// Booking is a customer's service request: the aggregate root over its order
// items.
//
// The aggregate status is a pure function of the child item statuses. The only
// way to change it is ApplyDerivedStatus with a value computed by
// DeriveStatus, or ForceCancel for an administrative cancel that has already
// cancelled every item. Terminal bookings are kept forever for audit.
type Booking struct {
	id              kernel.UUID
	number          Number
	customerID      kernel.UUID
	address         Address
	kind            Kind
	scheduledDate   *time.Time
	scheduledTime   *kernel.TimeOfDay
	status          Status
	paymentStatus   PaymentStatus
	subtotalCents   int64
	discountCents   int64
	totalCents      int64
	rescheduleCount int
	actions         []Action
	alertID         *kernel.UUID

	isConstructed bool
}

// NewBooking creates a pending booking and logs the creation action.
// Scheduled bookings must carry both a date and a time of day.
func NewBooking(
	id kernel.UUID,
	number Number,
	customerID kernel.UUID,
	address Address,
	kind Kind,
	scheduledDate *time.Time,
	scheduledTime *kernel.TimeOfDay,
	subtotalCents int64,
	discountCents int64,
	totalCents int64,
	actor string,
	createdAt time.Time,
) (*Booking, error) {
	b := &Booking{
		status:        StatusPending,
		paymentStatus: PaymentPending,
		isConstructed: true,
	}

	if err := errors.Join(
		b.setID(id),
		b.setNumber(number),
		b.setCustomerID(customerID),
		b.setKind(kind),
		b.setTotals(subtotalCents, discountCents, totalCents),
	); err != nil {
		return nil, err
	}
	b.address = address

	if err := b.setSchedule(kind, scheduledDate, scheduledTime); err != nil {
		return nil, err
	}

	created, err := NewAction(ActionCreated, actor, createdAt, fmt.Sprintf("booking %s created", number))
	if err != nil {
		return nil, err
	}
	b.actions = append(b.actions, created)
	return b, nil
}

// RestoreBooking reconstructs a booking from persistence.
func RestoreBooking(
	id kernel.UUID,
	number Number,
	customerID kernel.UUID,
	address Address,
	kind Kind,
	scheduledDate *time.Time,
	scheduledTime *kernel.TimeOfDay,
	status Status,
	paymentStatus PaymentStatus,
	subtotalCents int64,
	discountCents int64,
	totalCents int64,
	rescheduleCount int,
	actions []Action,
	alertID *kernel.UUID,
) (*Booking, error) {
	b := &Booking{isConstructed: true}

	if err := errors.Join(
		b.setID(id),
		b.setNumber(number),
		b.setCustomerID(customerID),
		b.setKind(kind),
		b.setTotals(subtotalCents, discountCents, totalCents),
		status.Validate(),
		paymentStatus.Validate(),
	); err != nil {
		return nil, err
	}
	b.address = address

	if err := b.setSchedule(kind, scheduledDate, scheduledTime); err != nil {
		return nil, err
	}
	if rescheduleCount < 0 {
		return nil, errs.NewValueIsInvalidError("reschedule count")
	}

	b.status = status
	b.paymentStatus = paymentStatus
	b.rescheduleCount = rescheduleCount
	b.actions = append([]Action(nil), actions...)
	b.alertID = alertID
	return b, nil
}

// Validate ensures the booking was created through a constructor.
func (b *Booking) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBookingIsNotConstructed
	}
	return nil
}

// ID returns the booking identifier.
func (b *Booking) ID() kernel.UUID { return b.id }

// Number returns the human-readable BOOK-YYYYMMDD-NNN identifier.
func (b *Booking) Number() Number { return b.number }

// CustomerID returns the customer who placed the booking.
func (b *Booking) CustomerID() kernel.UUID { return b.customerID }

// Address returns the delivery address snapshot.
func (b *Booking) Address() Address { return b.address }

// Kind returns how the booking is scheduled.
func (b *Booking) Kind() Kind { return b.kind }

// ScheduledDate returns the requested date, nil for ASAP and SOS bookings.
func (b *Booking) ScheduledDate() *time.Time { return b.scheduledDate }

// ScheduledTime returns the requested time of day, nil for ASAP and SOS
// bookings.
func (b *Booking) ScheduledTime() *kernel.TimeOfDay { return b.scheduledTime }

// Status returns the derived aggregate status.
func (b *Booking) Status() Status { return b.status }

// PaymentStatus returns the payment state, tracked separately from
// fulfillment.
func (b *Booking) PaymentStatus() PaymentStatus { return b.paymentStatus }

// SubtotalCents returns the pre-discount total.
func (b *Booking) SubtotalCents() int64 { return b.subtotalCents }

// DiscountCents returns the discount applied at checkout.
func (b *Booking) DiscountCents() int64 { return b.discountCents }

// TotalCents returns the amount charged.
func (b *Booking) TotalCents() int64 { return b.totalCents }

// RescheduleCount returns how many times the booking was moved.
func (b *Booking) RescheduleCount() int { return b.rescheduleCount }

// Actions returns a copy of the audit log, oldest first.
func (b *Booking) Actions() []Action {
	return append([]Action(nil), b.actions...)
}

// AlertID returns the linked SOS alert, nil for non-SOS bookings.
func (b *Booking) AlertID() *kernel.UUID { return b.alertID }

// IsSOS reports whether the booking is an emergency booking.
func (b *Booking) IsSOS() bool { return b.kind == KindSOS }

// IsTerminal reports whether the booking reached a final status.
func (b *Booking) IsTerminal() bool {
	return b.status == StatusCompleted || b.status == StatusCancelled || b.status == StatusRefunded
}

// ApplyDerivedStatus stores a status computed by DeriveStatus. It reports
// whether anything changed: applying the stored status again is a no-op with
// no audit entry, which is what makes synchronization idempotent.
func (b *Booking) ApplyDerivedStatus(derived Status, actor string, at time.Time) (bool, error) {
	if err := b.Validate(); err != nil {
		return false, err
	}
	if err := derived.Validate(); err != nil {
		return false, err
	}
	if derived == b.status {
		return false, nil
	}

	action, err := NewAction(ActionStatusSynced, actor, at,
		fmt.Sprintf("status %s -> %s", b.status, derived))
	if err != nil {
		return false, err
	}
	b.status = derived
	b.actions = append(b.actions, action)
	return true, nil
}

// ForceCancel is the administrative cancel. The caller must have cancelled
// every child item first; this stamps the aggregate and logs the reason.
func (b *Booking) ForceCancel(actor string, at time.Time, reason string) error {
	if err := b.Validate(); err != nil {
		return err
	}
	if b.IsTerminal() {
		return errs.NewBusinessRuleViolatedError(
			fmt.Sprintf("booking in status %s cannot be cancelled", b.status))
	}

	action, err := NewAction(ActionCancelled, actor, at, reason)
	if err != nil {
		return err
	}
	b.status = StatusCancelled
	b.actions = append(b.actions, action)
	return nil
}

// Reschedule moves a scheduled booking to a new date and time and bumps the
// reschedule counter. ASAP and SOS bookings carry no slot to move.
func (b *Booking) Reschedule(date time.Time, timeOfDay kernel.TimeOfDay, actor string, at time.Time) error {
	if err := b.Validate(); err != nil {
		return err
	}
	if b.kind != KindScheduled {
		return errs.NewBusinessRuleViolatedError(
			fmt.Sprintf("%s bookings have no schedule to move", b.kind))
	}
	if b.IsTerminal() {
		return errs.NewBusinessRuleViolatedError(
			fmt.Sprintf("booking in status %s cannot be rescheduled", b.status))
	}

	action, err := NewAction(ActionRescheduled, actor, at,
		fmt.Sprintf("moved to %s %s", date.UTC().Format("2006-01-02"), timeOfDay))
	if err != nil {
		return err
	}

	d := date.UTC()
	b.scheduledDate = &d
	b.scheduledTime = &timeOfDay
	b.rescheduleCount++
	b.actions = append(b.actions, action)
	return nil
}

// MarkPaid records a successful charge.
func (b *Booking) MarkPaid() {
	b.paymentStatus = PaymentPaid
}

// MarkRefunded records a completed refund.
func (b *Booking) MarkRefunded() {
	b.paymentStatus = PaymentRefunded
}

// LinkAlert ties the booking to its SOS alert record. Only SOS bookings may
// carry one, and the link is written once.
func (b *Booking) LinkAlert(alertID kernel.UUID) error {
	if err := b.Validate(); err != nil {
		return err
	}
	if !b.IsSOS() {
		return errs.NewBusinessRuleViolatedError("only SOS bookings carry an alert record")
	}
	if b.alertID != nil {
		return errs.NewBusinessRuleViolatedError("booking already has a linked alert")
	}
	if err := alertID.Validate(); err != nil {
		return err
	}
	b.alertID = &alertID
	return nil
}

// AppendAction adds an arbitrary audit-log entry.
func (b *Booking) AppendAction(action Action) {
	b.actions = append(b.actions, action)
}

func (b *Booking) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Booking) setNumber(number Number) error {
	if err := number.Validate(); err != nil {
		return err
	}
	b.number = number
	return nil
}

func (b *Booking) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customer id", err)
	}
	b.customerID = id
	return nil
}

func (b *Booking) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	b.kind = kind
	return nil
}

func (b *Booking) setTotals(subtotal, discount, total int64) error {
	if subtotal < 0 || discount < 0 || total < 0 {
		return errs.NewValueIsInvalidError("totals")
	}
	b.subtotalCents = subtotal
	b.discountCents = discount
	b.totalCents = total
	return nil
}

func (b *Booking) setSchedule(kind Kind, date *time.Time, timeOfDay *kernel.TimeOfDay) error {
	if kind == KindScheduled && (date == nil || timeOfDay == nil) {
		return errs.NewValueIsRequiredError("scheduled date and time")
	}
	if date != nil {
		d := date.UTC()
		b.scheduledDate = &d
	}
	b.scheduledTime = timeOfDay
	return nil
}
