package booking

import (
	"strings"
	"time"

	"booking/internal/pkg/errs"
)

// Action is one append-only audit-log entry on a booking.
type Action struct {
	actionType string
	actor      string
	at         time.Time
	detail     string
}

// NewAction creates a log entry. Timestamps are stored in UTC.
func NewAction(actionType, actor string, at time.Time, detail string) (Action, error) {
	if strings.TrimSpace(actionType) == "" {
		return Action{}, errs.NewValueIsRequiredError("action type")
	}
	if strings.TrimSpace(actor) == "" {
		return Action{}, errs.NewValueIsRequiredError("actor")
	}
	return Action{actionType: actionType, actor: actor, at: at.UTC(), detail: detail}, nil
}

// Type returns what happened ("CREATED", "RESCHEDULED", "STATUS_SYNCED", ...).
func (a Action) Type() string { return a.actionType }

// Actor returns who did it, in "ROLE:id" form.
func (a Action) Actor() string { return a.actor }

// At returns when it happened, in UTC.
func (a Action) At() time.Time { return a.at }

// Detail returns the free-text description.
func (a Action) Detail() string { return a.detail }
