package commands

import (
	"errors"
	"strings"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/errs"
	"booking/internal/pkg/guard"
)

var ErrCreatePartnerCommandIsNotConstructed = errors.New(
	"CreatePartnerCommand must be created via NewCreatePartnerCommand constructor",
)

// CreatePartnerCommand onboards a new service partner together with their
// login account. Both records persist in one transaction or not at all.
type CreatePartnerCommand struct { //nolint:recvcheck //using for validation
	partnerID kernel.UUID
	accountID kernel.UUID
	name      string
	phone     string
	email     string
	password  string
	services  []string
	regionIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreatePartnerCommand creates an onboarding command. An empty region list
// makes the partner globally servable.
func NewCreatePartnerCommand(
	partnerID kernel.UUID,
	accountID kernel.UUID,
	name string,
	phone string,
	email string,
	password string,
	services []string,
	regionIDs []kernel.UUID,
) (CreatePartnerCommand, error) {
	cmd := CreatePartnerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		partnerID.Validate(),
		accountID.Validate(),
	); err != nil {
		return CreatePartnerCommand{}, err
	}
	if strings.TrimSpace(name) == "" {
		return CreatePartnerCommand{}, errs.NewValueIsRequiredError("name")
	}
	if strings.TrimSpace(phone) == "" {
		return CreatePartnerCommand{}, errs.NewValueIsRequiredError("phone")
	}
	if len(services) == 0 {
		return CreatePartnerCommand{}, errs.NewValueIsRequiredError("services")
	}

	cmd.partnerID = partnerID
	cmd.accountID = accountID
	cmd.name = name
	cmd.phone = phone
	cmd.email = email
	cmd.password = password
	cmd.services = append([]string(nil), services...)
	cmd.regionIDs = append([]kernel.UUID(nil), regionIDs...)
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePartnerCommand) Validate() error {
	return c.guard.Validate(ErrCreatePartnerCommandIsNotConstructed)
}

// PartnerID returns the identifier for the new partner profile.
func (c CreatePartnerCommand) PartnerID() kernel.UUID { return c.partnerID }

// AccountID returns the identifier for the paired login account.
func (c CreatePartnerCommand) AccountID() kernel.UUID { return c.accountID }

// Name returns the partner's display name.
func (c CreatePartnerCommand) Name() string { return c.name }

// Phone returns the partner's phone, unique across the system.
func (c CreatePartnerCommand) Phone() string { return c.phone }

// Email returns the partner's email.
func (c CreatePartnerCommand) Email() string { return c.email }

// Password returns the plaintext password to be hashed into the account.
func (c CreatePartnerCommand) Password() string { return c.password }

// Services returns the advertised capabilities.
func (c CreatePartnerCommand) Services() []string {
	return append([]string(nil), c.services...)
}

// RegionIDs returns the servable regions, empty for globally servable.
func (c CreatePartnerCommand) RegionIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), c.regionIDs...)
}
