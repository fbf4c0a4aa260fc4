package services

import (
	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/region"
)

// RegionMatcher is a domain service answering which active service regions
// contain a point.
type RegionMatcher struct{}

// NewRegionMatcher creates a new RegionMatcher instance.
func NewRegionMatcher() RegionMatcher {
	return RegionMatcher{}
}

// MatchingRegions returns the IDs of active regions whose polygon contains
// the point. An empty result is not an error: it signals the unrestricted
// fallback, where any partner may serve the location regardless of their
// region set.
func (m RegionMatcher) MatchingRegions(point kernel.GeoPoint, regions []*region.ServiceRegion) []kernel.UUID {
	var matched []kernel.UUID
	for _, r := range regions {
		if r.Validate() != nil || !r.IsActive() {
			continue
		}
		if r.Contains(point) {
			matched = append(matched, r.ID())
		}
	}
	return matched
}
