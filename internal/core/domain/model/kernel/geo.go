package kernel

import (
	"fmt"

	"booking/internal/pkg/errs"
	"booking/internal/pkg/guard"
)

// MinPolygonVertices is the smallest vertex count that forms a valid region polygon.
const MinPolygonVertices = 3

// ErrGeoPointIsNotConstructed is returned when validating a zero-value GeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint")

// GeoPoint is an immutable WGS84 coordinate pair value object.
//
// Example:
//
//	point, err := kernel.NewGeoPoint(24.7136, 46.6753)
//	if err != nil {
//	    // latitude or longitude out of bounds
//	}
type GeoPoint struct { //nolint:recvcheck //using for validation
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint, validating that latitude is within [-90, 90]
// and longitude within [-180, 180].
func NewGeoPoint(lat, lng float64) (GeoPoint, error) {
	p := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if lat < -90 || lat > 90 {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("latitude", lat, -90, 90)
	}
	if lng < -180 || lng > 180 {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("longitude", lng, -180, 180)
	}

	p.lat = lat
	p.lng = lng
	return p, nil
}

// Lat returns the latitude in decimal degrees.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// Lng returns the longitude in decimal degrees.
func (p GeoPoint) Lng() float64 {
	return p.lng
}

// Validate ensures the point was created via NewGeoPoint.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// String implements fmt.Stringer for logging.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%.6f,%.6f)", p.lat, p.lng)
}

// Polygon is an ordered list of vertices describing a service region boundary.
// The vertex list is treated as implicitly closed: an edge runs from the last
// vertex back to the first.
type Polygon struct {
	vertices []GeoPoint
}

// NewPolygon creates a Polygon from its vertices. Every vertex must be a
// constructed GeoPoint; the vertex count itself is not validated here because a
// degenerate polygon is representable — Contains simply never matches it.
func NewPolygon(vertices []GeoPoint) (Polygon, error) {
	for i, v := range vertices {
		if err := v.Validate(); err != nil {
			return Polygon{}, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("polygon vertex %d", i), err)
		}
	}

	copied := make([]GeoPoint, len(vertices))
	copy(copied, vertices)
	return Polygon{vertices: copied}, nil
}

// Vertices returns a copy of the vertex list.
func (pg Polygon) Vertices() []GeoPoint {
	out := make([]GeoPoint, len(pg.vertices))
	copy(out, pg.vertices)
	return out
}

// Contains reports whether the point lies inside the polygon using the
// ray-casting algorithm: a horizontal ray is extended from the point and
// crossings with polygon edges are counted; an odd count means inside.
//
// A polygon with fewer than MinPolygonVertices vertices never contains any
// point — it is not a valid region.
//
// Points exactly on an edge or vertex are implementation-defined: floating-point
// comparisons at the boundary may classify them either way. Callers must not
// rely on boundary behavior.
func (pg Polygon) Contains(point GeoPoint) bool {
	n := len(pg.vertices)
	if n < MinPolygonVertices {
		return false
	}

	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi, vj := pg.vertices[i], pg.vertices[j]

		intersects := (vi.lng > point.lng) != (vj.lng > point.lng) &&
			point.lat < (vj.lat-vi.lat)*(point.lng-vi.lng)/(vj.lng-vi.lng)+vi.lat
		if intersects {
			inside = !inside
		}
	}

	return inside
}
