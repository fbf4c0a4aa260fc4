// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the booking marketplace. It
// implements logic that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - RegionMatcher: geofence matching of a point against active regions
//   - EligibilityFilter: selecting and ordering candidate partners
//   - AvailabilityEvaluator: deciding partner availability for a slot
//   - PartnerSelector: picking the partner for one order item
//   - ComposeAssignmentPush: building the assignment push payload
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
