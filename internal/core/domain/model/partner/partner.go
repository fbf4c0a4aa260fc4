package partner

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/errs"
)

// ErrServicePartnerIsNotConstructed signals use of a zero-value partner.
var ErrServicePartnerIsNotConstructed = errors.New(
	"service partner is not constructed, use NewServicePartner or RestoreServicePartner")

// ServicePartner is a field worker who fulfills order items on site.
//
// A partner advertises a set of service capabilities and, optionally, a set
// of regions they are willing to serve. An empty region set means the partner
// serves everywhere. The last-assigned timestamp drives round-robin fairness:
// assignment prefers partners who have waited longest since their last job.
type ServicePartner struct {
	id             kernel.UUID
	name           string
	phone          string
	email          string
	services       []string
	serviceRegions []kernel.UUID
	availability   []AvailabilitySlot
	isActive       bool
	lastAssignedAt *time.Time
	pushToken      string

	isConstructed bool
}

// NewServicePartner creates an active partner with the default weekly
// schedule. Services must name at least one capability.
func NewServicePartner(id kernel.UUID, name, phone, email string, services []string) (*ServicePartner, error) {
	p := &ServicePartner{
		availability:  DefaultWeeklyAvailability(),
		isActive:      true,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setIdentity(name, phone, email),
		p.setServices(services),
	); err != nil {
		return nil, err
	}
	return p, nil
}

// RestoreServicePartner reconstructs a partner from persistence.
func RestoreServicePartner(
	id kernel.UUID,
	name string,
	phone string,
	email string,
	services []string,
	serviceRegions []kernel.UUID,
	availability []AvailabilitySlot,
	isActive bool,
	lastAssignedAt *time.Time,
	pushToken string,
) (*ServicePartner, error) {
	p, err := NewServicePartner(id, name, phone, email, services)
	if err != nil {
		return nil, err
	}

	p.serviceRegions = append([]kernel.UUID(nil), serviceRegions...)
	if len(availability) > 0 {
		p.availability = append([]AvailabilitySlot(nil), availability...)
	}
	p.isActive = isActive
	p.lastAssignedAt = lastAssignedAt
	p.pushToken = pushToken
	return p, nil
}

// Validate ensures the partner was created through a constructor.
func (p *ServicePartner) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrServicePartnerIsNotConstructed
	}
	return nil
}

// ID returns the partner identifier.
func (p *ServicePartner) ID() kernel.UUID { return p.id }

// Name returns the partner's display name.
func (p *ServicePartner) Name() string { return p.name }

// Phone returns the partner's phone number, unique across the system.
func (p *ServicePartner) Phone() string { return p.phone }

// Email returns the partner's email address.
func (p *ServicePartner) Email() string { return p.email }

// Services returns a copy of the capability set.
func (p *ServicePartner) Services() []string {
	return append([]string(nil), p.services...)
}

// ServiceRegions returns a copy of the servable region IDs. Empty means the
// partner serves everywhere.
func (p *ServicePartner) ServiceRegions() []kernel.UUID {
	return append([]kernel.UUID(nil), p.serviceRegions...)
}

// Availability returns a copy of the weekly schedule.
func (p *ServicePartner) Availability() []AvailabilitySlot {
	return append([]AvailabilitySlot(nil), p.availability...)
}

// IsActive reports whether the partner currently accepts assignments.
func (p *ServicePartner) IsActive() bool { return p.isActive }

// LastAssignedAt returns when the partner last won an assignment, nil if
// never.
func (p *ServicePartner) LastAssignedAt() *time.Time { return p.lastAssignedAt }

// PushToken returns the device token for assignment notifications, empty when
// the partner has no registered device.
func (p *ServicePartner) PushToken() string { return p.pushToken }

// CanServe reports whether the partner advertises the given service
// capability.
func (p *ServicePartner) CanServe(service string) bool {
	for _, s := range p.services {
		if s == service {
			return true
		}
	}
	return false
}

// ServesAnyRegion reports whether the partner may serve a location matched to
// the given regions. An empty partner region set serves everywhere, and an
// empty matched set means the location fell outside every defined region, in
// which case any partner may serve it.
func (p *ServicePartner) ServesAnyRegion(matched []kernel.UUID) bool {
	if len(p.serviceRegions) == 0 || len(matched) == 0 {
		return true
	}
	for _, own := range p.serviceRegions {
		for _, m := range matched {
			if own.IsEqual(m) {
				return true
			}
		}
	}
	return false
}

// SlotFor returns the schedule row for the given weekday, nil if the
// schedule has no row for it.
func (p *ServicePartner) SlotFor(day time.Weekday) *AvailabilitySlot {
	for i := range p.availability {
		if p.availability[i].day == day {
			slot := p.availability[i]
			return &slot
		}
	}
	return nil
}

// MarkAssigned bumps the round-robin timestamp after the partner wins an
// assignment.
func (p *ServicePartner) MarkAssigned(at time.Time) {
	t := at.UTC()
	p.lastAssignedAt = &t
}

// SetAvailability replaces the weekly schedule. At most one row per weekday.
func (p *ServicePartner) SetAvailability(slots []AvailabilitySlot) error {
	seen := map[time.Weekday]bool{}
	for _, s := range slots {
		if seen[s.day] {
			return errs.NewValueIsInvalidErrorWithCause("availability",
				fmt.Errorf("duplicate row for %s", s.day))
		}
		seen[s.day] = true
	}
	p.availability = append([]AvailabilitySlot(nil), slots...)
	return nil
}

// SetServiceRegions replaces the servable region set. Pass nil to make the
// partner globally servable.
func (p *ServicePartner) SetServiceRegions(regions []kernel.UUID) error {
	for _, r := range regions {
		if err := r.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("service regions", err)
		}
	}
	p.serviceRegions = append([]kernel.UUID(nil), regions...)
	return nil
}

// SetPushToken records the partner device's notification token.
func (p *ServicePartner) SetPushToken(token string) {
	p.pushToken = token
}

// Deactivate removes the partner from the assignment pool. History is kept.
func (p *ServicePartner) Deactivate() {
	p.isActive = false
}

// Activate returns the partner to the assignment pool.
func (p *ServicePartner) Activate() {
	p.isActive = true
}

func (p *ServicePartner) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *ServicePartner) setIdentity(name, phone, email string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if strings.TrimSpace(phone) == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	p.name = name
	p.phone = phone
	p.email = email
	return nil
}

func (p *ServicePartner) setServices(services []string) error {
	if len(services) == 0 {
		return errs.NewValueIsRequiredError("services")
	}
	for _, s := range services {
		if strings.TrimSpace(s) == "" {
			return errs.NewValueIsInvalidError("services")
		}
	}
	p.services = append([]string(nil), services...)
	return nil
}
