// Package bookingrepo persists booking aggregates. The address and totals are
// flattened into the bookings table; the audit log is kept as a JSON column
// since nothing queries individual entries relationally.
package bookingrepo

import (
	"time"

	"booking/internal/core/domain/model/booking"
	"booking/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BookingDTO is the database representation of a booking aggregate.
type BookingDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number           string    `gorm:"type:varchar(32);uniqueIndex;not null"`
	CustomerID       uuid.UUID `gorm:"type:uuid;not null;index"`
	AddressLabel     string    `gorm:"type:varchar(64)"`
	AddressText      string    `gorm:"type:text;not null"`
	AddressArea      string    `gorm:"type:varchar(128)"`
	Lat              *float64
	Lng              *float64
	Kind             string `gorm:"type:varchar(16);not null"`
	ScheduledDate    *time.Time
	ScheduledMinutes *int
	Status           string `gorm:"type:varchar(32);not null;index"`
	PaymentStatus    string `gorm:"type:varchar(16);not null"`
	SubtotalCents    int64
	DiscountCents    int64
	TotalCents       int64
	RescheduleCount  int
	AlertID          *uuid.UUID  `gorm:"type:uuid"`
	Actions          []ActionDTO `gorm:"serializer:json;type:jsonb"`
	CreatedAt        time.Time   `gorm:"not null;index"`
}

// TableName maps the DTO to the "bookings" table.
func (BookingDTO) TableName() string {
	return "bookings"
}

// ActionDTO is one audit-log entry inside the bookings JSON column.
type ActionDTO struct {
	Type   string    `json:"type"`
	Actor  string    `json:"actor"`
	At     time.Time `json:"at"`
	Detail string    `json:"detail,omitempty"`
}

func fromDomain(aggregate *booking.Booking) BookingDTO {
	var lat, lng *float64
	if point := aggregate.Address().Point(); point != nil {
		la, ln := point.Lat(), point.Lng()
		lat, lng = &la, &ln
	}

	var scheduledMinutes *int
	if t := aggregate.ScheduledTime(); t != nil {
		m := t.Minutes()
		scheduledMinutes = &m
	}

	var alertID *uuid.UUID
	if aggregate.AlertID() != nil {
		raw := aggregate.AlertID().Bytes()
		alertID = &raw
	}

	actions := aggregate.Actions()
	actionDTOs := make([]ActionDTO, 0, len(actions))
	for _, a := range actions {
		actionDTOs = append(actionDTOs, ActionDTO{
			Type:   a.Type(),
			Actor:  a.Actor(),
			At:     a.At(),
			Detail: a.Detail(),
		})
	}

	createdAt := time.Now().UTC()
	if len(actions) > 0 {
		createdAt = actions[0].At()
	}

	return BookingDTO{
		ID:               aggregate.ID().Bytes(),
		Number:           aggregate.Number().String(),
		CustomerID:       aggregate.CustomerID().Bytes(),
		AddressLabel:     aggregate.Address().Label(),
		AddressText:      aggregate.Address().FullText(),
		AddressArea:      aggregate.Address().Area(),
		Lat:              lat,
		Lng:              lng,
		Kind:             string(aggregate.Kind()),
		ScheduledDate:    aggregate.ScheduledDate(),
		ScheduledMinutes: scheduledMinutes,
		Status:           aggregate.Status().String(),
		PaymentStatus:    string(aggregate.PaymentStatus()),
		SubtotalCents:    aggregate.SubtotalCents(),
		DiscountCents:    aggregate.DiscountCents(),
		TotalCents:       aggregate.TotalCents(),
		RescheduleCount:  aggregate.RescheduleCount(),
		AlertID:          alertID,
		Actions:          actionDTOs,
		CreatedAt:        createdAt,
	}
}

func toDomain(dto BookingDTO) (*booking.Booking, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	number, err := booking.NumberFromString(dto.Number)
	if err != nil {
		return nil, err
	}
	kind, err := booking.KindFromString(dto.Kind)
	if err != nil {
		return nil, err
	}
	status, err := booking.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	paymentStatus, err := booking.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	var point *kernel.GeoPoint
	if dto.Lat != nil && dto.Lng != nil {
		p, pointErr := kernel.NewGeoPoint(*dto.Lat, *dto.Lng)
		if pointErr != nil {
			return nil, pointErr
		}
		point = &p
	}
	address, err := booking.NewAddress(dto.AddressLabel, dto.AddressText, dto.AddressArea, point)
	if err != nil {
		return nil, err
	}

	var scheduledTime *kernel.TimeOfDay
	if dto.ScheduledMinutes != nil {
		t, timeErr := kernel.NewTimeOfDay(*dto.ScheduledMinutes/60, *dto.ScheduledMinutes%60)
		if timeErr != nil {
			return nil, timeErr
		}
		scheduledTime = &t
	}

	var alertID *kernel.UUID
	if dto.AlertID != nil {
		aID, alertErr := kernel.UUIDFromBytes((*dto.AlertID)[:])
		if alertErr != nil {
			return nil, alertErr
		}
		alertID = &aID
	}

	actions := make([]booking.Action, 0, len(dto.Actions))
	for _, a := range dto.Actions {
		action, actionErr := booking.NewAction(a.Type, a.Actor, a.At, a.Detail)
		if actionErr != nil {
			return nil, actionErr
		}
		actions = append(actions, action)
	}

	return booking.RestoreBooking(
		id, number, customerID, address, kind,
		dto.ScheduledDate, scheduledTime,
		status, paymentStatus,
		dto.SubtotalCents, dto.DiscountCents, dto.TotalCents,
		dto.RescheduleCount, actions, alertID,
	)
}
