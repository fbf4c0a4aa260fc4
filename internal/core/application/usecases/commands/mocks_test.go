package commands_test

import (
	"context"
	"time"

	"booking/internal/core/application/usecases/commands"
	"booking/internal/core/domain/model/account"
	"booking/internal/core/domain/model/booking"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/orderitem"
	"booking/internal/core/domain/model/partner"
	"booking/internal/core/domain/model/region"
	"booking/internal/core/domain/model/service"
	"booking/internal/core/domain/model/sosalert"
	"booking/internal/core/domain/services"
	"booking/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockBookingRepository struct{ mock.Mock }

func (m *MockBookingRepository) Add(ctx context.Context, b *booking.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByNumber(ctx context.Context, number booking.Number) (*booking.Booking, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}

func (m *MockBookingRepository) CountCreatedOn(ctx context.Context, day time.Time) (int64, error) {
	args := m.Called(ctx, day)
	return args.Get(0).(int64), args.Error(1)
}

type MockOrderItemRepository struct{ mock.Mock }

func (m *MockOrderItemRepository) Add(ctx context.Context, item *orderitem.OrderItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockOrderItemRepository) Update(ctx context.Context, item *orderitem.OrderItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockOrderItemRepository) Get(ctx context.Context, id kernel.UUID) (*orderitem.OrderItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orderitem.OrderItem), args.Error(1)
}

func (m *MockOrderItemRepository) GetByBooking(ctx context.Context, bookingID kernel.UUID) ([]*orderitem.OrderItem, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*orderitem.OrderItem), args.Error(1)
}

func (m *MockOrderItemRepository) GetAllUnassigned(ctx context.Context) ([]*orderitem.OrderItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*orderitem.OrderItem), args.Error(1)
}

type MockPartnerRepository struct{ mock.Mock }

func (m *MockPartnerRepository) Add(ctx context.Context, p *partner.ServicePartner) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPartnerRepository) Update(ctx context.Context, p *partner.ServicePartner) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPartnerRepository) Get(ctx context.Context, id kernel.UUID) (*partner.ServicePartner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.ServicePartner), args.Error(1)
}

func (m *MockPartnerRepository) GetByPhone(ctx context.Context, phone string) (*partner.ServicePartner, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.ServicePartner), args.Error(1)
}

func (m *MockPartnerRepository) GetAllActive(ctx context.Context) ([]*partner.ServicePartner, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*partner.ServicePartner), args.Error(1)
}

type MockRegionRepository struct{ mock.Mock }

func (m *MockRegionRepository) Add(ctx context.Context, r *region.ServiceRegion) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRegionRepository) Update(ctx context.Context, r *region.ServiceRegion) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRegionRepository) Get(ctx context.Context, id kernel.UUID) (*region.ServiceRegion, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*region.ServiceRegion), args.Error(1)
}

func (m *MockRegionRepository) GetAllActive(ctx context.Context) ([]*region.ServiceRegion, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*region.ServiceRegion), args.Error(1)
}

type MockServiceRepository struct{ mock.Mock }

func (m *MockServiceRepository) Add(ctx context.Context, s *service.Service) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockServiceRepository) Update(ctx context.Context, s *service.Service) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockServiceRepository) Get(ctx context.Context, id kernel.UUID) (*service.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Service), args.Error(1)
}

func (m *MockServiceRepository) GetAllActive(ctx context.Context) ([]*service.Service, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*service.Service), args.Error(1)
}

type MockAlertRepository struct{ mock.Mock }

func (m *MockAlertRepository) Add(ctx context.Context, a *sosalert.SOSAlert) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAlertRepository) Update(ctx context.Context, a *sosalert.SOSAlert) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAlertRepository) Get(ctx context.Context, id kernel.UUID) (*sosalert.SOSAlert, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sosalert.SOSAlert), args.Error(1)
}

func (m *MockAlertRepository) GetByBooking(ctx context.Context, bookingID kernel.UUID) (*sosalert.SOSAlert, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sosalert.SOSAlert), args.Error(1)
}

func (m *MockAlertRepository) CountOpenByCustomer(ctx context.Context, customerID kernel.UUID) (int64, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(int64), args.Error(1)
}

type MockAccountRepository struct{ mock.Mock }

func (m *MockAccountRepository) Add(ctx context.Context, a *account.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAccountRepository) Update(ctx context.Context, a *account.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAccountRepository) Get(ctx context.Context, id kernel.UUID) (*account.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

func (m *MockAccountRepository) GetByPhone(ctx context.Context, phone string) (*account.Account, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

// MockUoW satisfies every unit-of-work composition used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) BookingRepository() ports.BookingRepository {
	return m.Called().Get(0).(ports.BookingRepository)
}

func (m *MockUoW) OrderItemRepository() ports.OrderItemRepository {
	return m.Called().Get(0).(ports.OrderItemRepository)
}

func (m *MockUoW) PartnerRepository() ports.PartnerRepository {
	return m.Called().Get(0).(ports.PartnerRepository)
}

func (m *MockUoW) RegionRepository() ports.RegionRepository {
	return m.Called().Get(0).(ports.RegionRepository)
}

func (m *MockUoW) ServiceRepository() ports.ServiceRepository {
	return m.Called().Get(0).(ports.ServiceRepository)
}

func (m *MockUoW) AlertRepository() ports.AlertRepository {
	return m.Called().Get(0).(ports.AlertRepository)
}

func (m *MockUoW) AccountRepository() ports.AccountRepository {
	return m.Called().Get(0).(ports.AccountRepository)
}

type MockBookingUoWFactory struct{ mock.Mock }

func (m *MockBookingUoWFactory) Create() commands.BookingUoW {
	return m.Called().Get(0).(commands.BookingUoW)
}

type MockAssignmentUoWFactory struct{ mock.Mock }

func (m *MockAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return m.Called().Get(0).(commands.AssignmentUoW)
}

type MockSyncUoWFactory struct{ mock.Mock }

func (m *MockSyncUoWFactory) Create() commands.SyncUoW {
	return m.Called().Get(0).(commands.SyncUoW)
}

type MockOnboardingUoWFactory struct{ mock.Mock }

func (m *MockOnboardingUoWFactory) Create() commands.OnboardingUoW {
	return m.Called().Get(0).(commands.OnboardingUoW)
}

type MockNotificationSender struct{ mock.Mock }

func (m *MockNotificationSender) Send(ctx context.Context, msg services.PushMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

type MockAdminBroadcaster struct{ mock.Mock }

func (m *MockAdminBroadcaster) EmitToAdmin(ctx context.Context, eventName string, payload any) error {
	args := m.Called(ctx, eventName, payload)
	return args.Error(0)
}

type MockSyncer struct{ mock.Mock }

func (m *MockSyncer) Sync(ctx context.Context, bookingID kernel.UUID) error {
	args := m.Called(ctx, bookingID)
	return args.Error(0)
}

type MockAssigner struct{ mock.Mock }

func (m *MockAssigner) Assign(ctx context.Context, bookingID kernel.UUID) error {
	args := m.Called(ctx, bookingID)
	return args.Error(0)
}
