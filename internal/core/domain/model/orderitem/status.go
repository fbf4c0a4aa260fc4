package orderitem

import (
	"fmt"

	"booking/internal/pkg/errs"
)

// Status represents the lifecycle state of a single order item. Transitions are
// governed by an explicit table rather than scattered membership checks: each
// current-state row lists the allowed next states together with the
// preconditions (OTP, partner role, hold reason) the transition demands.
//
// Canonical happy path:
//
//	PENDING → CONFIRMED → ASSIGNED → EN_ROUTE → REACHED → IN_PROGRESS → COMPLETED
//
// ON_HOLD, CANCELLED, REFUND_INITIATED and REFUNDED sit outside the canonical
// order and are reachable only through the explicit rows below. COMPLETED,
// CANCELLED and REFUNDED are terminal.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status of a freshly created item.
	StatusPending

	// StatusConfirmed indicates the customer's request was acknowledged.
	StatusConfirmed

	// StatusAssigned indicates a partner has been assigned to the item.
	StatusAssigned

	// StatusEnRoute indicates the partner is traveling to the customer.
	StatusEnRoute

	// StatusReached indicates the partner arrived at the customer site.
	StatusReached

	// StatusInProgress indicates work has started (start OTP was presented).
	StatusInProgress

	// StatusOnHold is a pause state entered from IN_PROGRESS; re-enterable.
	StatusOnHold

	// StatusCompleted indicates work finished (end OTP was presented). Terminal.
	StatusCompleted

	// StatusCancelled indicates the item was cancelled before work started. Terminal.
	StatusCancelled

	// StatusRefundInitiated indicates a refund is being processed.
	StatusRefundInitiated

	// StatusRefunded indicates the refund completed. Terminal.
	StatusRefunded
)

// Requirement is a bitmask of preconditions a transition demands.
type Requirement uint8

const (
	// RequireNone marks an unconditional transition.
	RequireNone Requirement = 0

	// RequirePartnerRole restricts the transition to provider-facing actors.
	RequirePartnerRole Requirement = 1 << iota

	// RequireStartOTP demands the item's immutable start-job OTP.
	RequireStartOTP

	// RequireEndOTP demands the item's immutable end-job OTP.
	RequireEndOTP

	// RequireHoldReason demands a non-empty hold reason.
	RequireHoldReason
)

// statusStrings maps every status to its wire representation.
func statusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:         "UNKNOWN",
		StatusPending:         "PENDING",
		StatusConfirmed:       "CONFIRMED",
		StatusAssigned:        "ASSIGNED",
		StatusEnRoute:         "EN_ROUTE",
		StatusReached:         "REACHED",
		StatusInProgress:      "IN_PROGRESS",
		StatusOnHold:          "ON_HOLD",
		StatusCompleted:       "COMPLETED",
		StatusCancelled:       "CANCELLED",
		StatusRefundInitiated: "REFUND_INITIATED",
		StatusRefunded:        "REFUNDED",
	}
}

// canonicalOrder assigns the monotonicity index used to forbid regressing
// through the happy path. States outside this map have no canonical position.
var canonicalOrder = map[Status]int{
	StatusPending:    0,
	StatusConfirmed:  1,
	StatusAssigned:   2,
	StatusEnRoute:    3,
	StatusReached:    4,
	StatusInProgress: 5,
	StatusCompleted:  6,
}

// cancelFamily are the statuses that abort fulfillment. They are rejected once
// work is in progress or finished.
var cancelFamily = map[Status]bool{
	StatusCancelled:       true,
	StatusRefundInitiated: true,
	StatusRefunded:        true,
}

// transitionTable is the full state machine: current status → allowed targets
// with their preconditions. Anything absent is rejected.
//
// Forward skips along the canonical path are legal (the assignment engine jumps
// PENDING→ASSIGNED); only regressions are forbidden, which the table encodes by
// simply not listing them.
var transitionTable = map[Status]map[Status]Requirement{
	StatusPending: {
		StatusConfirmed:       RequireNone,
		StatusAssigned:        RequireNone,
		StatusEnRoute:         RequirePartnerRole,
		StatusReached:         RequirePartnerRole,
		StatusInProgress:      RequireStartOTP,
		StatusCompleted:       RequireEndOTP,
		StatusCancelled:       RequireNone,
		StatusRefundInitiated: RequireNone,
		StatusRefunded:        RequireNone,
	},
	StatusConfirmed: {
		StatusAssigned:        RequireNone,
		StatusEnRoute:         RequirePartnerRole,
		StatusReached:         RequirePartnerRole,
		StatusInProgress:      RequireStartOTP,
		StatusCompleted:       RequireEndOTP,
		StatusCancelled:       RequireNone,
		StatusRefundInitiated: RequireNone,
		StatusRefunded:        RequireNone,
	},
	StatusAssigned: {
		StatusEnRoute:         RequirePartnerRole,
		StatusReached:         RequirePartnerRole,
		StatusInProgress:      RequireStartOTP,
		StatusCompleted:       RequireEndOTP,
		StatusCancelled:       RequireNone,
		StatusRefundInitiated: RequireNone,
		StatusRefunded:        RequireNone,
	},
	StatusEnRoute: {
		StatusReached:         RequirePartnerRole,
		StatusInProgress:      RequireStartOTP,
		StatusCompleted:       RequireEndOTP,
		StatusCancelled:       RequireNone,
		StatusRefundInitiated: RequireNone,
		StatusRefunded:        RequireNone,
	},
	StatusReached: {
		StatusInProgress:      RequireStartOTP,
		StatusCompleted:       RequireEndOTP,
		StatusCancelled:       RequireNone,
		StatusRefundInitiated: RequireNone,
		StatusRefunded:        RequireNone,
	},
	StatusInProgress: {
		StatusOnHold:    RequireHoldReason,
		StatusCompleted: RequireEndOTP,
	},
	StatusOnHold: {
		// Resuming needs no OTP: the start OTP was already presented when work
		// began, and the hold bookkeeping closes the open entry.
		StatusInProgress:      RequireNone,
		StatusCancelled:       RequireNone,
		StatusRefundInitiated: RequireNone,
		StatusRefunded:        RequireNone,
	},
	StatusRefundInitiated: {
		StatusRefunded:  RequireNone,
		StatusCancelled: RequireNone,
	},
	StatusCompleted: {},
	StatusCancelled: {},
	StatusRefunded:  {},
}

// Validate checks that the Status value is one of the defined states.
func (s Status) Validate() error {
	if _, ok := statusStrings()[s]; !ok || s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid order item status", s))
	}
	return nil
}

// String returns the wire name of the status, "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// StatusFromString parses a wire representation such as "EN_ROUTE".
func StatusFromString(v string) (Status, error) {
	for s, str := range statusStrings() {
		if str == v && s != StatusUnknown {
			return s, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidError(fmt.Sprintf("order item status %q", v))
}

// CanonicalIndex returns the status' position on the happy path and whether it
// is part of the canonical order at all.
func (s Status) CanonicalIndex() (int, bool) {
	idx, ok := canonicalOrder[s]
	return idx, ok
}

// IsTerminal reports whether no transition may leave this status.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusRefunded
}

// IsCancelFamily reports whether the status aborts fulfillment
// (CANCELLED, REFUND_INITIATED or REFUNDED).
func (s Status) IsCancelFamily() bool {
	return cancelFamily[s]
}

// RequirementFor validates that a transition to target is structurally legal
// and returns the preconditions it demands. It rejects, with a specific
// message: leaving a terminal state, regressing through the canonical order,
// cancelling or refunding started work, and any pair absent from the table.
func (s Status) RequirementFor(target Status) (Requirement, error) {
	if err := target.Validate(); err != nil {
		return RequireNone, err
	}

	if s.IsTerminal() {
		return RequireNone, errs.NewBusinessRuleViolatedError(
			fmt.Sprintf("no transition may leave terminal status %s", s))
	}

	if target == s {
		return RequireNone, errs.NewBusinessRuleViolatedError(
			fmt.Sprintf("item is already %s", s))
	}

	if curIdx, curOK := s.CanonicalIndex(); curOK {
		if targetIdx, targetOK := target.CanonicalIndex(); targetOK && targetIdx < curIdx {
			return RequireNone, errs.NewBusinessRuleViolatedError(
				fmt.Sprintf("cannot regress from %s to %s", s, target))
		}
	}

	if target.IsCancelFamily() && (s == StatusInProgress || s == StatusCompleted) {
		return RequireNone, errs.NewBusinessRuleViolatedError(
			fmt.Sprintf("cannot move to %s: work already started", target))
	}

	req, ok := transitionTable[s][target]
	if !ok {
		return RequireNone, errs.NewBusinessRuleViolatedError(
			fmt.Sprintf("transition from %s to %s is not allowed", s, target))
	}

	return req, nil
}
