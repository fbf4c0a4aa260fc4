package commands_test

import (
	"testing"

	"booking/internal/core/application/usecases/commands"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/orderitem"
	"booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// restoredItem rebuilds an item in the given status with known OTPs so the
// tests can drive OTP-gated transitions.
func restoredItem(t *testing.T, bookingID kernel.UUID, partnerID kernel.UUID, status orderitem.Status) *orderitem.OrderItem {
	t.Helper()

	startOTP, err := orderitem.JobOTPFromString("1234")
	require.NoError(t, err)
	endOTP, err := orderitem.JobOTPFromString("9876")
	require.NoError(t, err)

	item, err := orderitem.RestoreOrderItem(
		kernel.NewUUID(), bookingID, kernel.NewUUID(), nil,
		"AC Repair", "", 5000, 1, true,
		&partnerID, nil, startOTP, endOTP, status, nil, 0)
	require.NoError(t, err)
	return item
}

func partnerActor(partnerID kernel.UUID) orderitem.Actor {
	return orderitem.Actor{Role: orderitem.RolePartner, ID: partnerID.String()}
}

func TestTransitionOrderItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	bookingID := kernel.NewUUID()
	partnerID := kernel.NewUUID()
	item := restoredItem(t, bookingID, partnerID, orderitem.StatusReached)

	cmd, err := commands.NewTransitionOrderItemCommand(
		item.ID(), orderitem.StatusInProgress, partnerActor(partnerID), "1234", "", "")
	require.NoError(t, err)

	itemRepo := new(MockOrderItemRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderItemRepository").Return(itemRepo).Once(),
		itemRepo.On("Get", ctx, item.ID()).Return(item, nil).Once(),
		uow.On("OrderItemRepository").Return(itemRepo).Once(),
		itemRepo.On("Update", ctx, item).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	syncer := new(MockSyncer)
	syncer.On("Sync", ctx, bookingID).Return(nil).Once()

	factory := new(MockSyncUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewTransitionOrderItemCommandHandler(factory, syncer)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, orderitem.StatusInProgress, item.Status())
	itemRepo.AssertExpectations(t)
	syncer.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestTransitionOrderItemCommandHandler_Handle_WrongOTPLeavesStateUntouched(t *testing.T) {
	ctx := t.Context()

	bookingID := kernel.NewUUID()
	partnerID := kernel.NewUUID()
	item := restoredItem(t, bookingID, partnerID, orderitem.StatusReached)

	cmd, err := commands.NewTransitionOrderItemCommand(
		item.ID(), orderitem.StatusInProgress, partnerActor(partnerID), "0000", "", "")
	require.NoError(t, err)

	itemRepo := new(MockOrderItemRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderItemRepository").Return(itemRepo)
	uow.On("Rollback", ctx).Return(nil).Once()
	itemRepo.On("Get", ctx, item.ID()).Return(item, nil).Once()

	syncer := new(MockSyncer)
	factory := new(MockSyncUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewTransitionOrderItemCommandHandler(factory, syncer)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
	assert.Equal(t, orderitem.StatusReached, item.Status())
	itemRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	syncer.AssertNotCalled(t, "Sync", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestTransitionOrderItemCommandHandler_Handle_RetriesOnVersionRace(t *testing.T) {
	ctx := t.Context()

	bookingID := kernel.NewUUID()
	partnerID := kernel.NewUUID()
	stale := restoredItem(t, bookingID, partnerID, orderitem.StatusAssigned)
	fresh := restoredItem(t, bookingID, partnerID, orderitem.StatusAssigned)

	cmd, err := commands.NewTransitionOrderItemCommand(
		stale.ID(), orderitem.StatusEnRoute, partnerActor(partnerID), "", "", "")
	require.NoError(t, err)

	itemRepo := new(MockOrderItemRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Twice()
	uow.On("OrderItemRepository").Return(itemRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Twice()

	itemRepo.On("Get", ctx, cmd.ItemID()).Return(stale, nil).Once()
	itemRepo.On("Update", ctx, stale).Return(errs.ErrVersionIsInvalid).Once()
	itemRepo.On("Get", ctx, cmd.ItemID()).Return(fresh, nil).Once()
	itemRepo.On("Update", ctx, fresh).Return(nil).Once()

	syncer := new(MockSyncer)
	syncer.On("Sync", ctx, bookingID).Return(nil).Once()

	factory := new(MockSyncUoWFactory)
	factory.On("Create").Return(uow).Twice()

	handler := commands.NewTransitionOrderItemCommandHandler(factory, syncer)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, orderitem.StatusEnRoute, fresh.Status())
	itemRepo.AssertExpectations(t)
	syncer.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestTransitionOrderItemCommandHandler_Handle_GivesUpAfterRepeatedRaces(t *testing.T) {
	ctx := t.Context()

	bookingID := kernel.NewUUID()
	partnerID := kernel.NewUUID()
	itemID := kernel.NewUUID()

	itemRepo := new(MockOrderItemRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Times(3)
	uow.On("OrderItemRepository").Return(itemRepo)
	uow.On("Rollback", ctx).Return(nil).Times(3)

	// Each attempt loads a fresh copy and loses the race again.
	for range 3 {
		itemRepo.On("Get", ctx, itemID).
			Return(restoredItem(t, bookingID, partnerID, orderitem.StatusAssigned), nil).Once()
	}
	itemRepo.On("Update", ctx, mock.AnythingOfType("*orderitem.OrderItem")).
		Return(errs.ErrVersionIsInvalid).Times(3)

	syncer := new(MockSyncer)
	factory := new(MockSyncUoWFactory)
	factory.On("Create").Return(uow).Times(3)

	cmd, err := commands.NewTransitionOrderItemCommand(
		itemID, orderitem.StatusEnRoute, partnerActor(partnerID), "", "", "")
	require.NoError(t, err)

	handler := commands.NewTransitionOrderItemCommandHandler(factory, syncer)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	syncer.AssertNotCalled(t, "Sync", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
