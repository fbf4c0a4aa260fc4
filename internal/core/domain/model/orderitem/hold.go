package orderitem

import (
	"time"

	"booking/internal/pkg/errs"
)

// Hold records one pause interval of an item. An entry with no end time is the
// currently open hold; resuming closes it.
type Hold struct {
	reason    string
	remark    string
	startedAt time.Time
	endedAt   *time.Time
	actor     Actor
}

// NewHold opens a hold entry. Reason and actor are mandatory, remark optional.
func NewHold(reason, remark string, startedAt time.Time, actor Actor) (Hold, error) {
	if reason == "" {
		return Hold{}, errs.NewValueIsRequiredError("hold reason")
	}
	if err := actor.Validate(); err != nil {
		return Hold{}, err
	}
	if startedAt.IsZero() {
		return Hold{}, errs.NewValueIsRequiredError("hold start time")
	}

	return Hold{
		reason:    reason,
		remark:    remark,
		startedAt: startedAt,
		actor:     actor,
	}, nil
}

// RestoreHold reconstructs a hold entry from persistence.
func RestoreHold(reason, remark string, startedAt time.Time, endedAt *time.Time, actor Actor) (Hold, error) {
	hold, err := NewHold(reason, remark, startedAt, actor)
	if err != nil {
		return Hold{}, err
	}
	hold.endedAt = endedAt
	return hold, nil
}

// Reason returns why the item was paused.
func (h Hold) Reason() string {
	return h.reason
}

// Remark returns the optional free-text remark.
func (h Hold) Remark() string {
	return h.remark
}

// StartedAt returns when the hold began.
func (h Hold) StartedAt() time.Time {
	return h.startedAt
}

// EndedAt returns when the hold ended, nil while still open.
func (h Hold) EndedAt() *time.Time {
	return h.endedAt
}

// Actor returns who placed the hold.
func (h Hold) Actor() Actor {
	return h.actor
}

// IsOpen reports whether the hold has not been closed yet.
func (h Hold) IsOpen() bool {
	return h.endedAt == nil
}

// close stamps the end time. Used by the aggregate when resuming.
func (h *Hold) close(at time.Time) {
	h.endedAt = &at
}
