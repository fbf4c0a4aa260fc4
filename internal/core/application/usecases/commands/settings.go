package commands

import (
	"booking/internal/core/domain/services"
)

// Settings carries operator-tunable values injected into command handlers at
// composition time. Handlers read them at call time; there is no ambient
// global configuration.
type Settings struct {
	// AvailabilityPolicy selects how strictly partner schedules are enforced
	// during assignment.
	AvailabilityPolicy services.AvailabilityPolicy

	// MaxOpenSOSAlerts caps how many unresolved SOS bookings one customer may
	// hold at a time. Zero means unlimited.
	MaxOpenSOSAlerts int64
}
