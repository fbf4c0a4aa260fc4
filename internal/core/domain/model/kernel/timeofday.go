package kernel

import (
	"fmt"
	"strings"
	"time"

	"booking/internal/pkg/errs"
)

// minutesPerDay bounds a TimeOfDay value.
const minutesPerDay = 24 * 60

// TimeOfDay is a clock time expressed as minutes since midnight. It is the unit
// used to compare a requested schedule against a partner's availability window.
type TimeOfDay int

// clockLayouts are the accepted wire forms: 24-hour "HH:mm" and 12-hour
// "HH:mm AM/PM" (with or without a leading zero on the hour).
var clockLayouts = []string{"15:04", "3:04 PM", "03:04 PM"}

// ParseTimeOfDay parses a clock string in either 24-hour "HH:mm" or 12-hour
// "HH:mm AM/PM" form into minutes since midnight. The AM/PM marker is
// case-insensitive.
//
// Example:
//
//	t, _ := kernel.ParseTimeOfDay("14:30")     // 870
//	t, _ = kernel.ParseTimeOfDay("02:30 pm")   // 870
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	if normalized == "" {
		return 0, errs.NewValueIsRequiredError("time of day")
	}

	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, normalized); err == nil {
			return TimeOfDay(t.Hour()*60 + t.Minute()), nil
		}
	}

	return 0, errs.NewValueIsInvalidError(fmt.Sprintf("time of day %q", s))
}

// NewTimeOfDay creates a TimeOfDay from hour and minute components.
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 {
		return 0, errs.NewValueIsOutOfRangeError("hour", hour, 0, 23)
	}
	if minute < 0 || minute > 59 {
		return 0, errs.NewValueIsOutOfRangeError("minute", minute, 0, 59)
	}
	return TimeOfDay(hour*60 + minute), nil
}

// Validate checks that the value fits within a single day.
func (t TimeOfDay) Validate() error {
	if t < 0 || t >= minutesPerDay {
		return errs.NewValueIsOutOfRangeError("time of day", int(t), 0, minutesPerDay-1)
	}
	return nil
}

// Minutes returns the raw minutes-since-midnight value.
func (t TimeOfDay) Minutes() int {
	return int(t)
}

// Within reports whether t falls inside the [start, end] window, inclusive on
// both ends.
func (t TimeOfDay) Within(start, end TimeOfDay) bool {
	return t >= start && t <= end
}

// String implements fmt.Stringer, rendering the 24-hour "HH:mm" form.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}
