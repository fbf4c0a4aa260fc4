package booking

import (
	"fmt"

	"booking/internal/pkg/errs"
)

// Kind classifies how a booking is scheduled.
type Kind string

const (
	// KindASAP is fulfilled as soon as a partner can come; no slot is fixed.
	KindASAP Kind = "ASAP"
	// KindScheduled is fixed to a customer-chosen date and time.
	KindScheduled Kind = "SCHEDULED"
	// KindSOS is an emergency booking mirrored into an alert record.
	KindSOS Kind = "SOS"
)

// KindFromString parses a wire name into a Kind.
func KindFromString(v string) (Kind, error) {
	switch Kind(v) {
	case KindASAP, KindScheduled, KindSOS:
		return Kind(v), nil
	}
	return "", errs.NewValueIsInvalidError(fmt.Sprintf("booking kind %q", v))
}

// Validate rejects the zero value and unknown kinds.
func (k Kind) Validate() error {
	_, err := KindFromString(string(k))
	return err
}

// PaymentStatus tracks money separately from fulfillment.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentRefunded PaymentStatus = "REFUNDED"
)

// PaymentStatusFromString parses a wire name into a PaymentStatus.
func PaymentStatusFromString(v string) (PaymentStatus, error) {
	switch PaymentStatus(v) {
	case PaymentPending, PaymentPaid, PaymentRefunded:
		return PaymentStatus(v), nil
	}
	return "", errs.NewValueIsInvalidError(fmt.Sprintf("payment status %q", v))
}

// Validate rejects the zero value and unknown payment statuses.
func (p PaymentStatus) Validate() error {
	_, err := PaymentStatusFromString(string(p))
	return err
}
