package commands_test

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"booking/internal/core/application/usecases/commands"
	"booking/internal/core/domain/model/booking"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/service"
	"booking/internal/core/domain/model/sosalert"
	"booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newCheckoutFixture(t *testing.T) (kernel.UUID, *service.Service, []commands.CreateBookingItem) {
	t.Helper()

	serviceID := kernel.NewUUID()
	svc, err := service.NewService(serviceID, "AC Repair", "ac_repair", 5000, true)
	require.NoError(t, err)

	items := []commands.CreateBookingItem{
		{ItemID: kernel.NewUUID(), ServiceID: serviceID, Quantity: 2},
	}
	return serviceID, svc, items
}

func TestCreateBookingCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	serviceID, svc, items := newCheckoutFixture(t)

	bookingID := kernel.NewUUID()
	cmd, err := commands.NewCreateBookingCommand(
		bookingID, kernel.NewUUID(),
		"Home", "Villa 12, Palm Street", "Marina", nil, nil,
		booking.KindASAP, nil, "", items, 1000)
	require.NoError(t, err)

	bookingRepo := new(MockBookingRepository)
	itemRepo := new(MockOrderItemRepository)
	serviceRepo := new(MockServiceRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("BookingRepository").Return(bookingRepo)
	uow.On("OrderItemRepository").Return(itemRepo)
	uow.On("ServiceRepository").Return(serviceRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	bookingRepo.On("CountCreatedOn", ctx, mock.AnythingOfType("time.Time")).Return(int64(4), nil).Once()
	serviceRepo.On("Get", ctx, serviceID).Return(svc, nil).Once()

	var created *booking.Booking
	bookingRepo.On("Add", ctx, mock.AnythingOfType("*booking.Booking")).Run(func(args mock.Arguments) {
		created = args.Get(1).(*booking.Booking)
	}).Return(nil).Once()
	itemRepo.On("Add", ctx, mock.AnythingOfType("*orderitem.OrderItem")).Return(nil).Once()

	assigner := new(MockAssigner)
	assigner.On("Assign", ctx, bookingID).Return(nil).Once()

	factory := new(MockBookingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateBookingCommandHandler(factory, assigner, commands.Settings{}, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, created)

	wantNumber := fmt.Sprintf("BOOK-%s-005", time.Now().UTC().Format("20060102"))
	assert.Equal(t, wantNumber, created.Number().String())
	assert.Equal(t, int64(10000), created.SubtotalCents())
	assert.Equal(t, int64(9000), created.TotalCents())

	bookingRepo.AssertExpectations(t)
	itemRepo.AssertExpectations(t)
	serviceRepo.AssertExpectations(t)
	assigner.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateBookingCommandHandler_Handle_AssignmentFailureDoesNotFailCheckout(t *testing.T) {
	ctx := t.Context()
	serviceID, svc, items := newCheckoutFixture(t)

	bookingID := kernel.NewUUID()
	cmd, err := commands.NewCreateBookingCommand(
		bookingID, kernel.NewUUID(),
		"Home", "Villa 12, Palm Street", "", nil, nil,
		booking.KindASAP, nil, "", items, 0)
	require.NoError(t, err)

	bookingRepo := new(MockBookingRepository)
	itemRepo := new(MockOrderItemRepository)
	serviceRepo := new(MockServiceRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("BookingRepository").Return(bookingRepo)
	uow.On("OrderItemRepository").Return(itemRepo)
	uow.On("ServiceRepository").Return(serviceRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	bookingRepo.On("CountCreatedOn", ctx, mock.AnythingOfType("time.Time")).Return(int64(0), nil).Once()
	serviceRepo.On("Get", ctx, serviceID).Return(svc, nil).Once()
	bookingRepo.On("Add", ctx, mock.AnythingOfType("*booking.Booking")).Return(nil).Once()
	itemRepo.On("Add", ctx, mock.AnythingOfType("*orderitem.OrderItem")).Return(nil).Once()

	assigner := new(MockAssigner)
	assigner.On("Assign", ctx, bookingID).Return(errors.New("no partners online")).Once()

	factory := new(MockBookingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateBookingCommandHandler(factory, assigner, commands.Settings{}, discardLogger())
	err = handler.Handle(ctx, cmd)

	// Checkout already committed, the failed assignment pass only gets logged.
	require.NoError(t, err)
	assigner.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateBookingCommandHandler_Handle_SOSOpensLinkedAlert(t *testing.T) {
	ctx := t.Context()
	serviceID, svc, items := newCheckoutFixture(t)

	bookingID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	cmd, err := commands.NewCreateBookingCommand(
		bookingID, customerID,
		"Home", "Villa 12, Palm Street", "", nil, nil,
		booking.KindSOS, nil, "", items, 0)
	require.NoError(t, err)

	bookingRepo := new(MockBookingRepository)
	itemRepo := new(MockOrderItemRepository)
	serviceRepo := new(MockServiceRepository)
	alertRepo := new(MockAlertRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("BookingRepository").Return(bookingRepo)
	uow.On("OrderItemRepository").Return(itemRepo)
	uow.On("ServiceRepository").Return(serviceRepo)
	uow.On("AlertRepository").Return(alertRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	bookingRepo.On("CountCreatedOn", ctx, mock.AnythingOfType("time.Time")).Return(int64(0), nil).Once()
	serviceRepo.On("Get", ctx, serviceID).Return(svc, nil).Once()
	alertRepo.On("CountOpenByCustomer", ctx, customerID).Return(int64(1), nil).Once()

	var alert *sosalert.SOSAlert
	alertRepo.On("Add", ctx, mock.AnythingOfType("*sosalert.SOSAlert")).Run(func(args mock.Arguments) {
		alert = args.Get(1).(*sosalert.SOSAlert)
	}).Return(nil).Once()

	var created *booking.Booking
	bookingRepo.On("Add", ctx, mock.AnythingOfType("*booking.Booking")).Run(func(args mock.Arguments) {
		created = args.Get(1).(*booking.Booking)
	}).Return(nil).Once()
	itemRepo.On("Add", ctx, mock.AnythingOfType("*orderitem.OrderItem")).Return(nil).Once()

	assigner := new(MockAssigner)
	assigner.On("Assign", ctx, bookingID).Return(nil).Once()

	factory := new(MockBookingUoWFactory)
	factory.On("Create").Return(uow).Once()

	settings := commands.Settings{MaxOpenSOSAlerts: 2}
	handler := commands.NewCreateBookingCommandHandler(factory, assigner, settings, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, created)
	require.NotNil(t, alert)
	require.NotNil(t, created.AlertID())
	assert.True(t, created.AlertID().IsEqual(alert.ID()))
	assert.Equal(t, sosalert.StatusOpen, alert.Status())
	assert.True(t, alert.BookingID().IsEqual(bookingID))

	alertRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateBookingCommandHandler_Handle_SOSQuotaExceeded(t *testing.T) {
	ctx := t.Context()
	serviceID, svc, items := newCheckoutFixture(t)

	customerID := kernel.NewUUID()
	cmd, err := commands.NewCreateBookingCommand(
		kernel.NewUUID(), customerID,
		"Home", "Villa 12, Palm Street", "", nil, nil,
		booking.KindSOS, nil, "", items, 0)
	require.NoError(t, err)

	bookingRepo := new(MockBookingRepository)
	serviceRepo := new(MockServiceRepository)
	alertRepo := new(MockAlertRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("BookingRepository").Return(bookingRepo)
	uow.On("ServiceRepository").Return(serviceRepo)
	uow.On("AlertRepository").Return(alertRepo)
	uow.On("Rollback", ctx).Return(nil).Once()

	bookingRepo.On("CountCreatedOn", ctx, mock.AnythingOfType("time.Time")).Return(int64(0), nil).Once()
	serviceRepo.On("Get", ctx, serviceID).Return(svc, nil).Once()
	alertRepo.On("CountOpenByCustomer", ctx, customerID).Return(int64(2), nil).Once()

	factory := new(MockBookingUoWFactory)
	factory.On("Create").Return(uow).Once()

	settings := commands.Settings{MaxOpenSOSAlerts: 2}
	handler := commands.NewCreateBookingCommandHandler(factory, nil, settings, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
	bookingRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	alertRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCreateBookingCommandHandler_Handle_UnknownVariant(t *testing.T) {
	ctx := t.Context()
	serviceID, svc, _ := newCheckoutFixture(t)

	missing := kernel.NewUUID()
	items := []commands.CreateBookingItem{
		{ItemID: kernel.NewUUID(), ServiceID: serviceID, VariantID: &missing, Quantity: 1},
	}
	cmd, err := commands.NewCreateBookingCommand(
		kernel.NewUUID(), kernel.NewUUID(),
		"Home", "Villa 12, Palm Street", "", nil, nil,
		booking.KindASAP, nil, "", items, 0)
	require.NoError(t, err)

	bookingRepo := new(MockBookingRepository)
	serviceRepo := new(MockServiceRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("BookingRepository").Return(bookingRepo)
	uow.On("ServiceRepository").Return(serviceRepo)
	uow.On("Rollback", ctx).Return(nil).Once()

	bookingRepo.On("CountCreatedOn", ctx, mock.AnythingOfType("time.Time")).Return(int64(0), nil).Once()
	serviceRepo.On("Get", ctx, serviceID).Return(svc, nil).Once()

	factory := new(MockBookingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateBookingCommandHandler(factory, nil, commands.Settings{}, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCreateBookingCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateBookingCommand{} // not constructed properly

	factory := new(MockBookingUoWFactory)
	handler := commands.NewCreateBookingCommandHandler(factory, nil, commands.Settings{}, discardLogger())
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateBookingCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestNewCreateBookingCommand_RejectsHalfCoordinates(t *testing.T) {
	lat := 25.1
	_, _, items := newCheckoutFixture(t)

	_, err := commands.NewCreateBookingCommand(
		kernel.NewUUID(), kernel.NewUUID(),
		"Home", "Villa 12, Palm Street", "", &lat, nil,
		booking.KindASAP, nil, "", items, 0)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewCreateBookingCommand_RejectsEmptyItems(t *testing.T) {
	_, err := commands.NewCreateBookingCommand(
		kernel.NewUUID(), kernel.NewUUID(),
		"Home", "Villa 12, Palm Street", "", nil, nil,
		booking.KindASAP, nil, "", nil, 0)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrNoItemsRequested)
}
