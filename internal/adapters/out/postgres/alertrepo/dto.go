// Package alertrepo persists SOS-alert records. The append-only log is a
// JSON column; the open-alert quota check joins bookings for the customer.
package alertrepo

import (
	"time"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/sosalert"

	"github.com/google/uuid"
)

// AlertDTO is the database representation of an SOS alert.
type AlertDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	BookingID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Status    string    `gorm:"type:varchar(32);not null;index"`
	Logs      []LogDTO  `gorm:"serializer:json;type:jsonb"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName maps the DTO to the "sos_alerts" table.
func (AlertDTO) TableName() string {
	return "sos_alerts"
}

// LogDTO is one log entry inside the alerts JSON column.
type LogDTO struct {
	Action string    `json:"action"`
	Actor  string    `json:"actor"`
	At     time.Time `json:"at"`
}

func fromDomain(a *sosalert.SOSAlert) AlertDTO {
	logs := a.Logs()
	logDTOs := make([]LogDTO, 0, len(logs))
	for _, entry := range logs {
		logDTOs = append(logDTOs, LogDTO{
			Action: entry.Action,
			Actor:  entry.Actor,
			At:     entry.At,
		})
	}

	return AlertDTO{
		ID:        a.ID().Bytes(),
		BookingID: a.BookingID().Bytes(),
		Status:    string(a.Status()),
		Logs:      logDTOs,
	}
}

func toDomain(dto AlertDTO) (*sosalert.SOSAlert, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	bookingID, err := kernel.UUIDFromBytes(dto.BookingID[:])
	if err != nil {
		return nil, err
	}

	logs := make([]sosalert.LogEntry, 0, len(dto.Logs))
	for _, entry := range dto.Logs {
		logs = append(logs, sosalert.LogEntry{
			Action: entry.Action,
			Actor:  entry.Actor,
			At:     entry.At,
		})
	}

	return sosalert.RestoreSOSAlert(id, bookingID, sosalert.Status(dto.Status), logs)
}
