package commands_test

import (
	"errors"
	"testing"

	"booking/internal/core/application/usecases/commands"
	"booking/internal/core/domain/model/account"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/partner"
	"booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func onboardingCommand(t *testing.T, phone string) commands.CreatePartnerCommand {
	t.Helper()

	cmd, err := commands.NewCreatePartnerCommand(
		kernel.NewUUID(), kernel.NewUUID(),
		"Ravi Kumar", phone, "ravi@example.com", "s3cret-pass",
		[]string{"ac_repair"}, nil)
	require.NoError(t, err)
	return cmd
}

func TestCreatePartnerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := onboardingCommand(t, "+971500000001")

	partnerRepo := new(MockPartnerRepository)
	accountRepo := new(MockAccountRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PartnerRepository").Return(partnerRepo)
	uow.On("AccountRepository").Return(accountRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	accountRepo.On("GetByPhone", ctx, "+971500000001").
		Return(nil, errs.NewObjectNotFoundError("account", "+971500000001")).Once()

	var profile *partner.ServicePartner
	partnerRepo.On("Add", ctx, mock.AnythingOfType("*partner.ServicePartner")).Run(func(args mock.Arguments) {
		profile = args.Get(1).(*partner.ServicePartner)
	}).Return(nil).Once()

	var login *account.Account
	accountRepo.On("Add", ctx, mock.AnythingOfType("*account.Account")).Run(func(args mock.Arguments) {
		login = args.Get(1).(*account.Account)
	}).Return(nil).Once()

	factory := new(MockOnboardingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreatePartnerCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, profile)
	require.NotNil(t, login)
	assert.True(t, profile.IsActive())
	assert.Len(t, profile.Availability(), 7)
	assert.Equal(t, account.RolePartner, login.Role())
	require.NotNil(t, login.PartnerID())
	assert.True(t, login.PartnerID().IsEqual(profile.ID()))
	assert.True(t, login.CheckPassword("s3cret-pass"))

	partnerRepo.AssertExpectations(t)
	accountRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreatePartnerCommandHandler_Handle_DuplicatePhone(t *testing.T) {
	ctx := t.Context()
	cmd := onboardingCommand(t, "+971500000001")

	existing, err := account.NewAccount(
		kernel.NewUUID(), "+971500000001", "", account.RolePartner, "whatever-pass")
	require.NoError(t, err)

	partnerRepo := new(MockPartnerRepository)
	accountRepo := new(MockAccountRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("AccountRepository").Return(accountRepo)
	uow.On("Rollback", ctx).Return(nil).Once()

	accountRepo.On("GetByPhone", ctx, "+971500000001").Return(existing, nil).Once()

	factory := new(MockOnboardingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreatePartnerCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
	partnerRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	accountRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreatePartnerCommandHandler_Handle_LookupFailurePropagates(t *testing.T) {
	ctx := t.Context()
	cmd := onboardingCommand(t, "+971500000001")

	accountRepo := new(MockAccountRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("AccountRepository").Return(accountRepo)
	uow.On("Rollback", ctx).Return(nil).Once()

	accountRepo.On("GetByPhone", ctx, "+971500000001").
		Return(nil, errors.New("database error")).Once()

	factory := new(MockOnboardingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreatePartnerCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "database error")
}

func TestNewCreatePartnerCommand_RequiresServices(t *testing.T) {
	_, err := commands.NewCreatePartnerCommand(
		kernel.NewUUID(), kernel.NewUUID(),
		"Ravi Kumar", "+971500000001", "", "s3cret-pass", nil, nil)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
