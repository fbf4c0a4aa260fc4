package booking

import (
	"strings"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/errs"
)

// Address is the delivery address snapshotted onto the booking at checkout.
// Later edits to the customer's saved addresses never change it. Coordinates
// are optional: assignment skips geofence matching when they are absent.
type Address struct {
	label    string
	fullText string
	area     string
	point    *kernel.GeoPoint
}

// NewAddress creates an address snapshot. Only the full text is mandatory.
func NewAddress(label, fullText, area string, point *kernel.GeoPoint) (Address, error) {
	if strings.TrimSpace(fullText) == "" {
		return Address{}, errs.NewValueIsRequiredError("address text")
	}
	if point != nil {
		if err := point.Validate(); err != nil {
			return Address{}, errs.NewValueIsInvalidErrorWithCause("address coordinates", err)
		}
	}
	return Address{label: label, fullText: fullText, area: area, point: point}, nil
}

// Label returns the customer's name for the address ("Home", "Office").
func (a Address) Label() string { return a.label }

// FullText returns the full address text.
func (a Address) FullText() string { return a.fullText }

// Area returns the optional area or district name.
func (a Address) Area() string { return a.area }

// Point returns the optional coordinates, nil when the address was saved
// without them.
func (a Address) Point() *kernel.GeoPoint { return a.point }
