package region

import (
	"errors"
	"strings"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/errs"
)

// ErrServiceRegionIsNotConstructed signals use of a zero-value region.
var ErrServiceRegionIsNotConstructed = errors.New(
	"service region is not constructed, use NewServiceRegion or RestoreServiceRegion")

// ServiceRegion is a named polygon scoping where services and partners
// operate. Only active regions take part in geofence matching.
type ServiceRegion struct {
	id       kernel.UUID
	name     string
	polygon  kernel.Polygon
	isActive bool

	isConstructed bool
}

// NewServiceRegion creates an active region around the given polygon.
func NewServiceRegion(id kernel.UUID, name string, polygon kernel.Polygon) (*ServiceRegion, error) {
	r := &ServiceRegion{isActive: true, isConstructed: true}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setPolygon(polygon),
	); err != nil {
		return nil, err
	}
	return r, nil
}

// RestoreServiceRegion reconstructs a region from persistence.
func RestoreServiceRegion(id kernel.UUID, name string, polygon kernel.Polygon, isActive bool) (*ServiceRegion, error) {
	r, err := NewServiceRegion(id, name, polygon)
	if err != nil {
		return nil, err
	}
	r.isActive = isActive
	return r, nil
}

// Validate ensures the region was created through a constructor.
func (r *ServiceRegion) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrServiceRegionIsNotConstructed
	}
	return nil
}

// ID returns the region identifier.
func (r *ServiceRegion) ID() kernel.UUID { return r.id }

// Name returns the human-readable region name.
func (r *ServiceRegion) Name() string { return r.name }

// Polygon returns the region boundary.
func (r *ServiceRegion) Polygon() kernel.Polygon { return r.polygon }

// IsActive reports whether the region takes part in matching.
func (r *ServiceRegion) IsActive() bool { return r.isActive }

// Contains reports whether the point falls inside the region boundary.
func (r *ServiceRegion) Contains(point kernel.GeoPoint) bool {
	return r.polygon.Contains(point)
}

// Deactivate removes the region from matching without deleting it.
func (r *ServiceRegion) Deactivate() {
	r.isActive = false
}

// Activate returns the region to matching.
func (r *ServiceRegion) Activate() {
	r.isActive = true
}

func (r *ServiceRegion) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *ServiceRegion) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	r.name = name
	return nil
}

func (r *ServiceRegion) setPolygon(polygon kernel.Polygon) error {
	if len(polygon.Vertices()) < kernel.MinPolygonVertices {
		return errs.NewValueIsInvalidError("polygon")
	}
	r.polygon = polygon
	return nil
}
