package collision

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/starwreck/geom"
)

// Shape is one entity's full collidable geometry: an ordered collection of
// convex polygons. A concave hull is represented as the union of convex
// parts. A shape with no polygons is legal and means "fall back to the
// owner's size-derived bounding rectangle".
type Shape struct {
	polygons []*Polygon
}

// NewShape returns an empty shape.
func NewShape() *Shape {
	return &Shape{}
}

// AddPolygon appends one convex polygon. The vertices must already be
// pivot-relative; whatever authored them (prefab hulls, shapeio imports)
// is responsible for anchor adjustment.
func (s *Shape) AddPolygon(local []mgl64.Vec2) {
	s.polygons = append(s.polygons, NewPolygon(local))
}

// Transform forwards the owner's transform to every polygon. Call exactly
// once per entity per frame, before any collision query involving this
// shape. The narrow phase never calls it, so testing one entity against
// many candidates does not recompute vertices.
func (s *Shape) Transform(position mgl64.Vec2, rotationDegrees, scale float64) {
	for _, p := range s.polygons {
		p.Transform(position, rotationDegrees, scale)
	}
}

// AABB returns the union of the polygon bounds. ok is false when the
// shape has no polygons.
func (s *Shape) AABB() (box geom.Rect, ok bool) {
	if len(s.polygons) == 0 {
		return geom.Rect{}, false
	}
	box = s.polygons[0].AABB()
	for _, p := range s.polygons[1:] {
		box = box.Union(p.AABB())
	}
	return box, true
}

// Polygons returns the shape's polygons in authoring order.
func (s *Shape) Polygons() []*Polygon { return s.polygons }

// Len returns the number of polygons.
func (s *Shape) Len() int { return len(s.polygons) }
