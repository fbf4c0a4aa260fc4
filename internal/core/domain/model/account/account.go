package account

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/errs"
)

// ErrAccountIsNotConstructed signals use of a zero-value account.
var ErrAccountIsNotConstructed = errors.New(
	"account is not constructed, use NewAccount or RestoreAccount")

// Role scopes what an account may do.
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RolePartner  Role = "PARTNER"
	RoleAdmin    Role = "ADMIN"
)

// Validate rejects the zero value and unknown roles.
func (r Role) Validate() error {
	switch r {
	case RoleCustomer, RolePartner, RoleAdmin:
		return nil
	}
	return errs.NewValueIsInvalidError("role")
}

// Account is a login-capable identity. A partner account is created in the
// same transaction as its ServicePartner profile so the pair never persists
// half-made. Phone is globally unique across accounts.
type Account struct {
	id           kernel.UUID
	phone        string
	email        string
	role         Role
	passwordHash string
	partnerID    *kernel.UUID

	isConstructed bool
}

// NewAccount creates an account, hashing the password with bcrypt.
func NewAccount(id kernel.UUID, phone, email string, role Role, password string) (*Account, error) {
	a := &Account{isConstructed: true}

	if err := id.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(phone) == "" {
		return nil, errs.NewValueIsRequiredError("phone")
	}
	if err := role.Validate(); err != nil {
		return nil, err
	}
	if len(password) < 8 {
		return nil, errs.NewValueIsInvalidError("password is shorter than 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("password", err)
	}

	a.id = id
	a.phone = phone
	a.email = email
	a.role = role
	a.passwordHash = string(hash)
	return a, nil
}

// RestoreAccount reconstructs an account from persistence with its stored
// hash.
func RestoreAccount(id kernel.UUID, phone, email string, role Role, passwordHash string, partnerID *kernel.UUID) (*Account, error) {
	a := &Account{isConstructed: true}

	if err := id.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(phone) == "" {
		return nil, errs.NewValueIsRequiredError("phone")
	}
	if err := role.Validate(); err != nil {
		return nil, err
	}
	if passwordHash == "" {
		return nil, errs.NewValueIsRequiredError("password hash")
	}

	a.id = id
	a.phone = phone
	a.email = email
	a.role = role
	a.passwordHash = passwordHash
	a.partnerID = partnerID
	return a, nil
}

// Validate ensures the account was created through a constructor.
func (a *Account) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAccountIsNotConstructed
	}
	return nil
}

// ID returns the account identifier.
func (a *Account) ID() kernel.UUID { return a.id }

// Phone returns the login phone number.
func (a *Account) Phone() string { return a.phone }

// Email returns the optional email address.
func (a *Account) Email() string { return a.email }

// Role returns the account role.
func (a *Account) Role() Role { return a.role }

// PasswordHash returns the stored bcrypt hash.
func (a *Account) PasswordHash() string { return a.passwordHash }

// PartnerID returns the linked partner profile, nil for non-partner accounts.
func (a *Account) PartnerID() *kernel.UUID { return a.partnerID }

// LinkPartner ties a partner-role account to its profile.
func (a *Account) LinkPartner(partnerID kernel.UUID) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if a.role != RolePartner {
		return errs.NewBusinessRuleViolatedError("only partner accounts link to a partner profile")
	}
	if err := partnerID.Validate(); err != nil {
		return err
	}
	a.partnerID = &partnerID
	return nil
}

// CheckPassword reports whether the candidate matches the stored hash.
func (a *Account) CheckPassword(candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.passwordHash), []byte(candidate)) == nil
}
