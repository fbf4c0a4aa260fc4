package itemrepo

import (
	"context"
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/orderitem"
	"booking/internal/pkg/errs"

	"gorm.io/gorm"
)

// settledStatuses are the item statuses the unassigned-work scan skips.
var settledStatuses = []string{
	orderitem.StatusCompleted.String(),
	orderitem.StatusCancelled.String(),
	orderitem.StatusRefundInitiated.String(),
	orderitem.StatusRefunded.String(),
}

// GormOrderItemRepository implements ports.OrderItemRepository using GORM.
type GormOrderItemRepository struct {
	db *gorm.DB
}

// NewGormOrderItemRepository creates a new GORM order-item repository.
func NewGormOrderItemRepository(db *gorm.DB) *GormOrderItemRepository {
	return &GormOrderItemRepository{db: db}
}

// Add saves a new order item.
func (r *GormOrderItemRepository) Add(ctx context.Context, item *orderitem.OrderItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing item with a compare-and-swap on the version
// column. A lost race surfaces as errs.ErrVersionIsInvalid so the caller can
// reload and retry.
func (r *GormOrderItemRepository) Update(ctx context.Context, item *orderitem.OrderItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	dto.Version = item.Version() + 1

	result := r.db.WithContext(ctx).Model(&OrderItemDTO{}).
		Where("id = ? AND version = ?", dto.ID, item.Version()).
		Select("PartnerID", "LocationID", "Status", "Holds", "Version").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidError("order item " + item.ID().String())
	}
	return nil
}

// Get retrieves an order item by ID.
func (r *GormOrderItemRepository) Get(ctx context.Context, id kernel.UUID) (*orderitem.OrderItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order item", id.String())
		}
		return nil, err
	}
	return toDomain(dto)
}

// GetByBooking retrieves all items of a booking, oldest first.
func (r *GormOrderItemRepository) GetByBooking(ctx context.Context, bookingID kernel.UUID) ([]*orderitem.OrderItem, error) {
	if err := bookingID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderItemDTO
	if err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID.Bytes()).
		Order("created_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}
	return toDomainList(dtos)
}

// GetAllUnassigned retrieves items that still need a partner and are not
// settled. The retry job walks these.
func (r *GormOrderItemRepository) GetAllUnassigned(ctx context.Context) ([]*orderitem.OrderItem, error) {
	var dtos []OrderItemDTO
	if err := r.db.WithContext(ctx).
		Where("partner_id IS NULL AND status NOT IN ?", settledStatuses).
		Order("created_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}
	return toDomainList(dtos)
}

func toDomainList(dtos []OrderItemDTO) ([]*orderitem.OrderItem, error) {
	items := make([]*orderitem.OrderItem, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
