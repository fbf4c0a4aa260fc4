package orderitem

import (
	"fmt"

	"booking/internal/pkg/errs"
)

// Role identifies which side of the marketplace requested an operation.
// EN_ROUTE and REACHED are provider-facing and demand RolePartner; the OTP
// checks apply to the customer- and admin-facing actions instead.
type Role string

const (
	// RoleCustomer is the requesting customer.
	RoleCustomer Role = "CUSTOMER"

	// RolePartner is the assigned field service partner.
	RolePartner Role = "PARTNER"

	// RoleAdmin is back-office staff.
	RoleAdmin Role = "ADMIN"

	// RoleSystem marks automatic transitions such as auto-assignment.
	RoleSystem Role = "SYSTEM"
)

// Validate checks the role is one of the defined values.
func (r Role) Validate() error {
	switch r {
	case RoleCustomer, RolePartner, RoleAdmin, RoleSystem:
		return nil
	default:
		return errs.NewValueIsInvalidError(fmt.Sprintf("actor role %q", r))
	}
}

// Actor is who performs a transition: a role plus a free-form identifier
// (user ID, partner ID, or "system").
type Actor struct {
	Role Role
	ID   string
}

// SystemActor is the actor recorded for automatic transitions.
func SystemActor() Actor {
	return Actor{Role: RoleSystem, ID: "system"}
}

// Validate checks the actor carries a valid role and an identifier.
func (a Actor) Validate() error {
	if err := a.Role.Validate(); err != nil {
		return err
	}
	if a.ID == "" {
		return errs.NewValueIsRequiredError("actor id")
	}
	return nil
}

// String renders "ROLE:id" for action logs.
func (a Actor) String() string {
	return fmt.Sprintf("%s:%s", a.Role, a.ID)
}
