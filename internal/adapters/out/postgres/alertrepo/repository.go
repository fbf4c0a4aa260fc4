package alertrepo

import (
	"context"
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/sosalert"
	"booking/internal/pkg/errs"

	"gorm.io/gorm"
)

// closedStatuses are the alert states that no longer count against the
// customer's open-alert quota.
var closedStatuses = []string{
	string(sosalert.StatusResolved),
	string(sosalert.StatusCancelled),
}

// GormAlertRepository implements ports.AlertRepository using GORM.
type GormAlertRepository struct {
	db *gorm.DB
}

// NewGormAlertRepository creates a new GORM alert repository.
func NewGormAlertRepository(db *gorm.DB) *GormAlertRepository {
	return &GormAlertRepository{db: db}
}

// Add saves a new alert.
func (r *GormAlertRepository) Add(ctx context.Context, aggregate *sosalert.SOSAlert) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing alert.
func (r *GormAlertRepository) Update(ctx context.Context, aggregate *sosalert.SOSAlert) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&AlertDTO{}).
		Where("id = ?", dto.ID).
		Select("Status", "Logs").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("alert", aggregate.ID().String())
	}
	return nil
}

// Get retrieves an alert by ID.
func (r *GormAlertRepository) Get(ctx context.Context, id kernel.UUID) (*sosalert.SOSAlert, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AlertDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("alert", id.String())
		}
		return nil, err
	}
	return toDomain(dto)
}

// GetByBooking retrieves the alert mirroring the given booking.
func (r *GormAlertRepository) GetByBooking(ctx context.Context, bookingID kernel.UUID) (*sosalert.SOSAlert, error) {
	if err := bookingID.Validate(); err != nil {
		return nil, err
	}

	var dto AlertDTO
	if err := r.db.WithContext(ctx).First(&dto, "booking_id = ?", bookingID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("alert", bookingID.String())
		}
		return nil, err
	}
	return toDomain(dto)
}

// CountOpenByCustomer counts the customer's alerts that are neither resolved
// nor cancelled. Enforces the free SOS quota at checkout.
func (r *GormAlertRepository) CountOpenByCustomer(ctx context.Context, customerID kernel.UUID) (int64, error) {
	if err := customerID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&AlertDTO{}).
		Joins("JOIN bookings ON bookings.id = sos_alerts.booking_id").
		Where("bookings.customer_id = ? AND sos_alerts.status NOT IN ?", customerID.Bytes(), closedStatuses).
		Count(&count).Error
	return count, err
}
