package commands

import (
	"errors"
	"time"

	"booking/internal/core/domain/model/booking"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/errs"
	"booking/internal/pkg/guard"
)

var (
	ErrCreateBookingCommandIsNotConstructed = errors.New(
		"CreateBookingCommand must be created via NewCreateBookingCommand constructor",
	)
	ErrNoItemsRequested = errors.New("a booking needs at least one item")
)

// CreateBookingItem describes one requested line item at checkout.
type CreateBookingItem struct {
	ItemID    kernel.UUID
	ServiceID kernel.UUID
	VariantID *kernel.UUID
	Quantity  int
}

// CreateBookingCommand represents a checkout request: the address snapshot,
// the booking kind with its optional slot, and the requested line items.
//
// Example:
//
//	cmd, err := NewCreateBookingCommand(bookingID, customerID,
//	    "Home", "Villa 12, Palm Street", "Marina", &lat, &lng,
//	    booking.KindASAP, nil, "", items, 0)
//	if err != nil {
//	    return fmt.Errorf("invalid checkout data: %w", err)
//	}
type CreateBookingCommand struct { //nolint:recvcheck //using for validation
	bookingID     kernel.UUID
	customerID    kernel.UUID
	addressLabel  string
	addressText   string
	addressArea   string
	lat           *float64
	lng           *float64
	kind          booking.Kind
	scheduledDate *time.Time
	scheduledTime string
	items         []CreateBookingItem
	discountCents int64

	guard guard.ConstructorGuard
}

// NewCreateBookingCommand creates a checkout command. The scheduled time is
// accepted in either 24-hour or 12-hour clock form and parsed by the handler.
func NewCreateBookingCommand(
	bookingID kernel.UUID,
	customerID kernel.UUID,
	addressLabel string,
	addressText string,
	addressArea string,
	lat *float64,
	lng *float64,
	kind booking.Kind,
	scheduledDate *time.Time,
	scheduledTime string,
	items []CreateBookingItem,
	discountCents int64,
) (CreateBookingCommand, error) {
	cmd := CreateBookingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBookingID(bookingID),
		cmd.setCustomerID(customerID),
		cmd.setKind(kind),
		cmd.setItems(items),
	); err != nil {
		return CreateBookingCommand{}, err
	}

	if (lat == nil) != (lng == nil) {
		return CreateBookingCommand{}, errs.NewValueIsInvalidError("coordinates need both latitude and longitude")
	}
	if discountCents < 0 {
		return CreateBookingCommand{}, errs.NewValueIsInvalidError("discount")
	}

	cmd.addressLabel = addressLabel
	cmd.addressText = addressText
	cmd.addressArea = addressArea
	cmd.lat = lat
	cmd.lng = lng
	cmd.scheduledDate = scheduledDate
	cmd.scheduledTime = scheduledTime
	cmd.discountCents = discountCents
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateBookingCommand) Validate() error {
	return c.guard.Validate(ErrCreateBookingCommandIsNotConstructed)
}

// BookingID returns the identifier the new booking will carry.
func (c CreateBookingCommand) BookingID() kernel.UUID { return c.bookingID }

// CustomerID returns the customer placing the booking.
func (c CreateBookingCommand) CustomerID() kernel.UUID { return c.customerID }

// AddressLabel returns the customer's name for the address.
func (c CreateBookingCommand) AddressLabel() string { return c.addressLabel }

// AddressText returns the full address text.
func (c CreateBookingCommand) AddressText() string { return c.addressText }

// AddressArea returns the optional area name.
func (c CreateBookingCommand) AddressArea() string { return c.addressArea }

// Lat returns the optional latitude.
func (c CreateBookingCommand) Lat() *float64 { return c.lat }

// Lng returns the optional longitude.
func (c CreateBookingCommand) Lng() *float64 { return c.lng }

// Kind returns the booking kind.
func (c CreateBookingCommand) Kind() booking.Kind { return c.kind }

// ScheduledDate returns the requested date, nil for ASAP and SOS bookings.
func (c CreateBookingCommand) ScheduledDate() *time.Time { return c.scheduledDate }

// ScheduledTime returns the requested clock time as supplied by the caller.
func (c CreateBookingCommand) ScheduledTime() string { return c.scheduledTime }

// Items returns the requested line items.
func (c CreateBookingCommand) Items() []CreateBookingItem {
	return append([]CreateBookingItem(nil), c.items...)
}

// DiscountCents returns the discount already computed at checkout.
func (c CreateBookingCommand) DiscountCents() int64 { return c.discountCents }

func (c *CreateBookingCommand) setBookingID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.bookingID = id
	return nil
}

func (c *CreateBookingCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customer id", err)
	}
	c.customerID = id
	return nil
}

func (c *CreateBookingCommand) setKind(kind booking.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	c.kind = kind
	return nil
}

func (c *CreateBookingCommand) setItems(items []CreateBookingItem) error {
	if len(items) == 0 {
		return ErrNoItemsRequested
	}
	for _, it := range items {
		if err := it.ItemID.Validate(); err != nil {
			return err
		}
		if err := it.ServiceID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("service id", err)
		}
		if it.Quantity <= 0 {
			return errs.NewValueIsInvalidError("quantity")
		}
	}
	c.items = append([]CreateBookingItem(nil), items...)
	return nil
}
