package services

import (
	"errors"
	"time"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/partner"
)

// ErrPartnerNotFound is returned when no eligible partner is available for an
// order item. Callers treat it as a normal search exhaustion, not a failure:
// the item stays unassigned and assignment can be retried later.
var ErrPartnerNotFound = errors.New("partner not found")

// PartnerSelector is a domain service picking the partner for one order item:
// eligibility filtering, round-robin ordering and the availability check,
// composed in one place.
//
// Selection is deterministic: the first available partner in round-robin
// order wins. Two items searched back to back may pick the same partner when
// both checks independently succeed; nothing here reserves a partner within a
// booking.
type PartnerSelector struct {
	filter    EligibilityFilter
	evaluator AvailabilityEvaluator
}

// NewPartnerSelector creates a selector with the given availability policy.
func NewPartnerSelector(policy AvailabilityPolicy) PartnerSelector {
	return PartnerSelector{
		filter:    NewEligibilityFilter(),
		evaluator: NewAvailabilityEvaluator(policy),
	}
}

// Select returns the first eligible, available partner for the capability, or
// ErrPartnerNotFound when the search is exhausted.
func (s PartnerSelector) Select(
	capability string,
	matchedRegions []kernel.UUID,
	partners []*partner.ServicePartner,
	scheduledDate *time.Time,
	scheduledTime *kernel.TimeOfDay,
) (*partner.ServicePartner, error) {
	for _, p := range s.filter.EligiblePartners(capability, matchedRegions, partners) {
		if s.evaluator.IsAvailable(p, scheduledDate, scheduledTime) {
			return p, nil
		}
	}
	return nil, ErrPartnerNotFound
}
