package services

import (
	"time"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/partner"
)

// AvailabilityPolicy selects how strictly the weekly schedule is enforced.
type AvailabilityPolicy int

const (
	// PolicyEnforceWindow checks the partner's weekly schedule row and
	// working window for the requested slot.
	PolicyEnforceWindow AvailabilityPolicy = iota
	// PolicyAlwaysAvailable treats every partner as available regardless of
	// schedule. Kept as an operational toggle for markets where schedules
	// are not maintained.
	PolicyAlwaysAvailable
)

// AvailabilityEvaluator is a domain service deciding whether a partner is
// available for a requested date and time.
type AvailabilityEvaluator struct {
	policy AvailabilityPolicy
}

// NewAvailabilityEvaluator creates an evaluator with the given policy.
func NewAvailabilityEvaluator(policy AvailabilityPolicy) AvailabilityEvaluator {
	return AvailabilityEvaluator{policy: policy}
}

// IsAvailable reports whether the partner can take a job at the requested
// slot.
//
// A nil date or time means an ASAP or SOS booking with no fixed slot; timing
// is negotiated out of band and every partner counts as available. Otherwise
// the date's weekday is looked up in the partner's schedule and the time of
// day checked against the row's window, inclusive on both ends. A missing row
// means unavailable.
func (e AvailabilityEvaluator) IsAvailable(p *partner.ServicePartner, date *time.Time, timeOfDay *kernel.TimeOfDay) bool {
	if date == nil || timeOfDay == nil {
		return true
	}
	if e.policy == PolicyAlwaysAvailable {
		return true
	}

	slot := p.SlotFor(date.UTC().Weekday())
	if slot == nil {
		return false
	}
	return slot.Covers(*timeOfDay)
}
