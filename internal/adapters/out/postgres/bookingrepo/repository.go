package bookingrepo

import (
	"context"
	"errors"
	"time"

	"booking/internal/core/domain/model/booking"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBookingRepository implements ports.BookingRepository using GORM.
type GormBookingRepository struct {
	db *gorm.DB
}

// NewGormBookingRepository creates a new GORM booking repository.
func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

// Add saves a new booking.
func (r *GormBookingRepository) Add(ctx context.Context, aggregate *booking.Booking) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing booking.
func (r *GormBookingRepository) Update(ctx context.Context, aggregate *booking.Booking) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&BookingDTO{}).
		Where("id = ?", dto.ID).
		Select("Status", "PaymentStatus", "ScheduledDate", "ScheduledMinutes",
			"RescheduleCount", "AlertID", "Actions").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("booking", aggregate.ID().String())
	}
	return nil
}

// Get retrieves a booking by ID.
func (r *GormBookingRepository) Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BookingDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("booking", id.String())
		}
		return nil, err
	}
	return toDomain(dto)
}

// GetByNumber retrieves a booking by its human-readable number.
func (r *GormBookingRepository) GetByNumber(ctx context.Context, number booking.Number) (*booking.Booking, error) {
	if err := number.Validate(); err != nil {
		return nil, err
	}

	var dto BookingDTO
	if err := r.db.WithContext(ctx).First(&dto, "number = ?", number.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("booking", number.String())
		}
		return nil, err
	}
	return toDomain(dto)
}

// CountCreatedOn counts bookings created on the given UTC day. Feeds the
// daily sequence in booking numbers.
func (r *GormBookingRepository) CountCreatedOn(ctx context.Context, day time.Time) (int64, error) {
	start := day.UTC().Truncate(24 * time.Hour)
	end := start.Add(24 * time.Hour)

	var count int64
	err := r.db.WithContext(ctx).Model(&BookingDTO{}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Count(&count).Error
	return count, err
}
