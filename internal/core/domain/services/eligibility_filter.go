package services

import (
	"sort"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/partner"
)

// EligibilityFilter is a domain service selecting which partners may take an
// order item and ordering them for round-robin fairness.
type EligibilityFilter struct{}

// NewEligibilityFilter creates a new EligibilityFilter instance.
func NewEligibilityFilter() EligibilityFilter {
	return EligibilityFilter{}
}

// EligiblePartners returns the partners that are active, advertise the
// capability and serve one of the matched regions, ordered oldest-assigned
// first. Partners who have never been assigned sort before everyone else, so
// newcomers get work before the rotation repeats.
//
// An empty matched set, or a partner with no region restriction, passes the
// region check unconditionally.
func (f EligibilityFilter) EligiblePartners(
	capability string,
	matchedRegions []kernel.UUID,
	partners []*partner.ServicePartner,
) []*partner.ServicePartner {
	var eligible []*partner.ServicePartner
	for _, p := range partners {
		if p.Validate() != nil || !p.IsActive() {
			continue
		}
		if !p.CanServe(capability) {
			continue
		}
		if !p.ServesAnyRegion(matchedRegions) {
			continue
		}
		eligible = append(eligible, p)
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		a, b := eligible[i].LastAssignedAt(), eligible[j].LastAssignedAt()
		switch {
		case a == nil:
			return b != nil
		case b == nil:
			return false
		default:
			return a.Before(*b)
		}
	})
	return eligible
}
