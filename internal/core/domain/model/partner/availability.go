package partner

import (
	"fmt"
	"time"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/errs"
)

// AvailabilitySlot is one row of a partner's weekly schedule: a weekday, a
// working window and a flag for days off. The window is inclusive on both
// ends.
type AvailabilitySlot struct {
	day         time.Weekday
	start       kernel.TimeOfDay
	end         kernel.TimeOfDay
	isAvailable bool
}

// NewAvailabilitySlot creates a schedule row. Start must not be after end.
func NewAvailabilitySlot(day time.Weekday, start, end kernel.TimeOfDay, isAvailable bool) (AvailabilitySlot, error) {
	if day < time.Sunday || day > time.Saturday {
		return AvailabilitySlot{}, errs.NewValueIsInvalidError("day")
	}
	if start > end {
		return AvailabilitySlot{}, errs.NewValueIsInvalidErrorWithCause("availability window",
			fmt.Errorf("start %s is after end %s", start, end))
	}
	return AvailabilitySlot{day: day, start: start, end: end, isAvailable: isAvailable}, nil
}

// Day returns the weekday this row applies to.
func (s AvailabilitySlot) Day() time.Weekday { return s.day }

// Start returns the window's opening time.
func (s AvailabilitySlot) Start() kernel.TimeOfDay { return s.start }

// End returns the window's closing time.
func (s AvailabilitySlot) End() kernel.TimeOfDay { return s.end }

// IsAvailable reports whether the partner works on this weekday at all.
func (s AvailabilitySlot) IsAvailable() bool { return s.isAvailable }

// Covers reports whether the slot marks the partner available at the given
// time of day.
func (s AvailabilitySlot) Covers(t kernel.TimeOfDay) bool {
	return s.isAvailable && t.Within(s.start, s.end)
}

// DefaultWeeklyAvailability returns a seven-row schedule covering 09:00-18:00
// every day, the onboarding default before the partner edits their hours.
func DefaultWeeklyAvailability() []AvailabilitySlot {
	start, _ := kernel.NewTimeOfDay(9, 0)
	end, _ := kernel.NewTimeOfDay(18, 0)
	slots := make([]AvailabilitySlot, 0, 7)
	for day := time.Sunday; day <= time.Saturday; day++ {
		slots = append(slots, AvailabilitySlot{day: day, start: start, end: end, isAvailable: true})
	}
	return slots
}
