// Package kernel contains the shared value objects of the domain model:
// identifiers, geographic primitives, and clock times. These types are immutable,
// validated at construction, and carry no behavior beyond what every aggregate
// in the marketplace needs.
package kernel
