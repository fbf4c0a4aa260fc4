package commands

import (
	"context"
	"errors"
	"fmt"

	"booking/internal/core/domain/model/account"
	"booking/internal/core/domain/model/partner"
	"booking/internal/pkg/errs"
)

// CreatePartnerCommandHandler onboards a partner: the profile and its login
// account are written in one transaction so a half-made pair never persists.
// Phone uniqueness is checked against existing accounts before either write.
type CreatePartnerCommandHandler struct {
	uowFactory OnboardingUoWFactory
}

// NewCreatePartnerCommandHandler creates a handler for partner onboarding.
func NewCreatePartnerCommandHandler(uowFactory OnboardingUoWFactory) CreatePartnerCommandHandler {
	return CreatePartnerCommandHandler{uowFactory: uowFactory}
}

// Handle processes the onboarding command.
func (h *CreatePartnerCommandHandler) Handle(ctx context.Context, cmd CreatePartnerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	existing, err := uow.AccountRepository().GetByPhone(ctx, cmd.Phone())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if existing != nil {
		return errs.NewBusinessRuleViolatedError(
			fmt.Sprintf("phone %s is already registered", cmd.Phone()))
	}

	profile, err := partner.NewServicePartner(
		cmd.PartnerID(), cmd.Name(), cmd.Phone(), cmd.Email(), cmd.Services())
	if err != nil {
		return err
	}
	if err = profile.SetServiceRegions(cmd.RegionIDs()); err != nil {
		return err
	}

	login, err := account.NewAccount(
		cmd.AccountID(), cmd.Phone(), cmd.Email(), account.RolePartner, cmd.Password())
	if err != nil {
		return err
	}
	if err = login.LinkPartner(profile.ID()); err != nil {
		return err
	}

	if err = uow.PartnerRepository().Add(ctx, profile); err != nil {
		return err
	}
	if err = uow.AccountRepository().Add(ctx, login); err != nil {
		return err
	}
	return uow.Commit(ctx)
}
