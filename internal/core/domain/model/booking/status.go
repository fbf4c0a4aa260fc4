package booking

import (
	"fmt"

	"booking/internal/core/domain/model/orderitem"
	"booking/internal/pkg/errs"
)

// Status is the aggregate booking status. Outside an administrative cancel it
// is never set directly: it is always derived from the child item statuses by
// DeriveStatus.
type Status int

const (
	StatusUnknown Status = iota
	StatusPending
	StatusConfirmed
	StatusAssigned
	StatusEnRoute
	StatusReached
	StatusInProgress
	StatusCompleted
	StatusCancelled
	StatusRefundInitiated
	StatusRefunded
)

var statusNames = map[Status]string{
	StatusPending:         "PENDING",
	StatusConfirmed:       "CONFIRMED",
	StatusAssigned:        "ASSIGNED",
	StatusEnRoute:         "EN_ROUTE",
	StatusReached:         "REACHED",
	StatusInProgress:      "IN_PROGRESS",
	StatusCompleted:       "COMPLETED",
	StatusCancelled:       "CANCELLED",
	StatusRefundInitiated: "REFUND_INITIATED",
	StatusRefunded:        "REFUNDED",
}

// String returns the wire name of the status.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// StatusFromString parses a wire name into a Status.
func StatusFromString(v string) (Status, error) {
	for s, name := range statusNames {
		if name == v {
			return s, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidError(fmt.Sprintf("booking status %q", v))
}

// Validate rejects the zero value and unknown statuses.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidError("booking status")
	}
	return nil
}

// statusForCanonicalIndex maps an item's canonical-order index onto the
// booking status vocabulary.
var statusForCanonicalIndex = map[int]Status{
	0: StatusPending,
	1: StatusConfirmed,
	2: StatusAssigned,
	3: StatusEnRoute,
	4: StatusReached,
	5: StatusInProgress,
	6: StatusCompleted,
}

// DeriveStatus computes the aggregate booking status from the statuses of all
// sibling order items. The first matching rule wins:
//
//  1. every item cancelled: the booking is cancelled
//  2. every item refunded: the booking is refunded
//  3. every item in refund-initiated: the booking is refund-initiated
//  4. every item settled (completed, cancelled, refunded or refund-initiated,
//     mixed): the booking is completed
//  5. otherwise: the most advanced happy-path status present among items,
//     defaulting to pending when none is
//
// An on-hold item counts as in-progress for rule 5: it is a paused job, not a
// regressed one.
func DeriveStatus(items []orderitem.Status) Status {
	if allItems(items, orderitem.StatusCancelled) {
		return StatusCancelled
	}
	if allItems(items, orderitem.StatusRefunded) {
		return StatusRefunded
	}
	if allItems(items, orderitem.StatusRefundInitiated) {
		return StatusRefundInitiated
	}
	if allSettled(items) {
		return StatusCompleted
	}

	best := -1
	for _, s := range items {
		idx, ok := s.CanonicalIndex()
		if !ok {
			if s == orderitem.StatusOnHold {
				idx, _ = orderitem.StatusInProgress.CanonicalIndex()
			} else {
				continue
			}
		}
		if idx > best {
			best = idx
		}
	}
	if best < 0 {
		return StatusPending
	}
	return statusForCanonicalIndex[best]
}

func allItems(items []orderitem.Status, want orderitem.Status) bool {
	if len(items) == 0 {
		return false
	}
	for _, s := range items {
		if s != want {
			return false
		}
	}
	return true
}

func allSettled(items []orderitem.Status) bool {
	if len(items) == 0 {
		return false
	}
	for _, s := range items {
		if !s.IsTerminal() && !s.IsCancelFamily() {
			return false
		}
	}
	return true
}
