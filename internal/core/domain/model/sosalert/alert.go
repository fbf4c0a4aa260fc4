package sosalert

import (
	"errors"
	"fmt"
	"time"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/orderitem"
	"booking/internal/pkg/errs"
)

// ErrSOSAlertIsNotConstructed signals use of a zero-value alert.
var ErrSOSAlertIsNotConstructed = errors.New(
	"SOS alert is not constructed, use NewSOSAlert or RestoreSOSAlert")

// Status is the alert's own status vocabulary, distinct from the order-item
// lifecycle it mirrors.
type Status string

const (
	StatusOpen            Status = "OPEN"
	StatusPartnerAssigned Status = "PARTNER_ASSIGNED"
	StatusEnRoute         Status = "EN_ROUTE"
	StatusReached         Status = "REACHED"
	StatusInProgress      Status = "IN_PROGRESS"
	StatusResolved        Status = "RESOLVED"
	StatusCancelled       Status = "CANCELLED"
)

// Validate rejects the zero value and unknown statuses.
func (s Status) Validate() error {
	switch s {
	case StatusOpen, StatusPartnerAssigned, StatusEnRoute, StatusReached,
		StatusInProgress, StatusResolved, StatusCancelled:
		return nil
	}
	return errs.NewValueIsInvalidError(fmt.Sprintf("alert status %q", s))
}

// StatusForItem maps an order-item status into the alert vocabulary. The
// second return is false for item statuses that leave the alert untouched,
// such as PENDING before a partner is found.
func StatusForItem(item orderitem.Status) (Status, bool) {
	switch item {
	case orderitem.StatusAssigned:
		return StatusPartnerAssigned, true
	case orderitem.StatusEnRoute:
		return StatusEnRoute, true
	case orderitem.StatusReached:
		return StatusReached, true
	case orderitem.StatusInProgress, orderitem.StatusOnHold:
		return StatusInProgress, true
	case orderitem.StatusCompleted:
		return StatusResolved, true
	case orderitem.StatusCancelled, orderitem.StatusRefundInitiated, orderitem.StatusRefunded:
		return StatusCancelled, true
	}
	return "", false
}

// LogEntry is one line of the alert's activity log.
type LogEntry struct {
	Action string
	Actor  string
	At     time.Time
}

// SOSAlert is the emergency-alert record mirroring an SOS booking. Its status
// follows the booking's first order item, and its log records every status
// change once — consecutive identical actions are dropped.
type SOSAlert struct {
	id        kernel.UUID
	bookingID kernel.UUID
	status    Status
	logs      []LogEntry

	isConstructed bool
}

// NewSOSAlert creates an open alert for the given booking.
func NewSOSAlert(id, bookingID kernel.UUID) (*SOSAlert, error) {
	a := &SOSAlert{status: StatusOpen, isConstructed: true}

	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := bookingID.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("booking id", err)
	}
	a.id = id
	a.bookingID = bookingID
	return a, nil
}

// RestoreSOSAlert reconstructs an alert from persistence.
func RestoreSOSAlert(id, bookingID kernel.UUID, status Status, logs []LogEntry) (*SOSAlert, error) {
	a, err := NewSOSAlert(id, bookingID)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	a.status = status
	a.logs = append([]LogEntry(nil), logs...)
	return a, nil
}

// Validate ensures the alert was created through a constructor.
func (a *SOSAlert) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrSOSAlertIsNotConstructed
	}
	return nil
}

// ID returns the alert identifier.
func (a *SOSAlert) ID() kernel.UUID { return a.id }

// BookingID returns the mirrored booking.
func (a *SOSAlert) BookingID() kernel.UUID { return a.bookingID }

// Status returns the current alert status.
func (a *SOSAlert) Status() Status { return a.status }

// Logs returns a copy of the activity log, oldest first.
func (a *SOSAlert) Logs() []LogEntry {
	return append([]LogEntry(nil), a.logs...)
}

// IsClosed reports whether the alert reached RESOLVED or CANCELLED.
func (a *SOSAlert) IsClosed() bool {
	return a.status == StatusResolved || a.status == StatusCancelled
}

// Mirror applies the alert status derived from the booking's first order item
// and logs the change. It reports whether the status actually moved. The log
// is dedup-guarded: when the new entry's action equals the last logged action
// nothing is appended, so repeated synchronization never spams the log.
func (a *SOSAlert) Mirror(status Status, actor string, at time.Time) (bool, error) {
	if err := a.Validate(); err != nil {
		return false, err
	}
	if err := status.Validate(); err != nil {
		return false, err
	}

	changed := a.status != status
	a.status = status

	action := fmt.Sprintf("status set to %s", status)
	if n := len(a.logs); n > 0 && a.logs[n-1].Action == action {
		return changed, nil
	}
	a.logs = append(a.logs, LogEntry{Action: action, Actor: actor, At: at.UTC()})
	return changed, nil
}
