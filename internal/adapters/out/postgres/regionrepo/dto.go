// Package regionrepo persists service-region aggregates. The polygon is a
// JSON array of vertices; point-in-polygon evaluation happens in the domain.
package regionrepo

import (
	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/region"

	"github.com/google/uuid"
)

// RegionDTO is the database representation of a service region.
type RegionDTO struct {
	ID       uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name     string     `gorm:"type:varchar(255);not null"`
	Vertices []PointDTO `gorm:"serializer:json;type:jsonb"`
	IsActive bool       `gorm:"not null;index"`
}

// TableName maps the DTO to the "service_regions" table.
func (RegionDTO) TableName() string {
	return "service_regions"
}

// PointDTO is one polygon vertex inside the regions JSON column.
type PointDTO struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func fromDomain(r *region.ServiceRegion) RegionDTO {
	vertices := r.Polygon().Vertices()
	points := make([]PointDTO, 0, len(vertices))
	for _, v := range vertices {
		points = append(points, PointDTO{Lat: v.Lat(), Lng: v.Lng()})
	}

	return RegionDTO{
		ID:       r.ID().Bytes(),
		Name:     r.Name(),
		Vertices: points,
		IsActive: r.IsActive(),
	}
}

func toDomain(dto RegionDTO) (*region.ServiceRegion, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vertices := make([]kernel.GeoPoint, 0, len(dto.Vertices))
	for _, p := range dto.Vertices {
		point, pointErr := kernel.NewGeoPoint(p.Lat, p.Lng)
		if pointErr != nil {
			return nil, pointErr
		}
		vertices = append(vertices, point)
	}
	polygon, err := kernel.NewPolygon(vertices)
	if err != nil {
		return nil, err
	}

	return region.RestoreServiceRegion(id, dto.Name, polygon, dto.IsActive)
}
