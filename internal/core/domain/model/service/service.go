package service

import (
	"errors"
	"strings"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/errs"
)

// ErrServiceIsNotConstructed signals use of a zero-value service.
var ErrServiceIsNotConstructed = errors.New(
	"service is not constructed, use NewService or RestoreService")

// Variant is a priced option of a service ("Split unit", "Window unit").
type Variant struct {
	ID         kernel.UUID
	Name       string
	PriceCents int64
}

// Service is a catalog entry describing bookable work. The capability key is
// what partners advertise in their service sets; eligibility matches on it,
// not on the display name.
type Service struct {
	id            kernel.UUID
	name          string
	capability    string
	basePriceCents int64
	visitRequired bool
	isActive      bool
	variants      []Variant

	isConstructed bool
}

// NewService creates an active catalog entry.
func NewService(id kernel.UUID, name, capability string, basePriceCents int64, visitRequired bool) (*Service, error) {
	s := &Service{isActive: true, isConstructed: true}

	if err := id.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if strings.TrimSpace(capability) == "" {
		return nil, errs.NewValueIsRequiredError("capability")
	}
	if basePriceCents < 0 {
		return nil, errs.NewValueIsInvalidError("base price")
	}

	s.id = id
	s.name = name
	s.capability = capability
	s.basePriceCents = basePriceCents
	s.visitRequired = visitRequired
	return s, nil
}

// RestoreService reconstructs a catalog entry from persistence.
func RestoreService(
	id kernel.UUID,
	name string,
	capability string,
	basePriceCents int64,
	visitRequired bool,
	isActive bool,
	variants []Variant,
) (*Service, error) {
	s, err := NewService(id, name, capability, basePriceCents, visitRequired)
	if err != nil {
		return nil, err
	}
	s.isActive = isActive
	s.variants = append([]Variant(nil), variants...)
	return s, nil
}

// Validate ensures the service was created through a constructor.
func (s *Service) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrServiceIsNotConstructed
	}
	return nil
}

// ID returns the service identifier.
func (s *Service) ID() kernel.UUID { return s.id }

// Name returns the display name.
func (s *Service) Name() string { return s.name }

// Capability returns the capability key partners match against.
func (s *Service) Capability() string { return s.capability }

// BasePriceCents returns the price when no variant is chosen.
func (s *Service) BasePriceCents() int64 { return s.basePriceCents }

// VisitRequired reports whether fulfillment happens at the customer site.
func (s *Service) VisitRequired() bool { return s.visitRequired }

// IsActive reports whether the service is bookable.
func (s *Service) IsActive() bool { return s.isActive }

// Variants returns a copy of the priced options.
func (s *Service) Variants() []Variant {
	return append([]Variant(nil), s.variants...)
}

// VariantByID returns the variant with the given ID, nil when absent.
func (s *Service) VariantByID(id kernel.UUID) *Variant {
	for i := range s.variants {
		if s.variants[i].ID.IsEqual(id) {
			v := s.variants[i]
			return &v
		}
	}
	return nil
}

// AddVariant appends a priced option.
func (s *Service) AddVariant(v Variant) error {
	if err := v.ID.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(v.Name) == "" {
		return errs.NewValueIsRequiredError("variant name")
	}
	if v.PriceCents < 0 {
		return errs.NewValueIsInvalidError("variant price")
	}
	s.variants = append(s.variants, v)
	return nil
}

// Deactivate removes the service from booking without deleting it.
func (s *Service) Deactivate() {
	s.isActive = false
}
