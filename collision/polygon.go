// Package collision implements the convex-polygon narrow phase and the
// uniform-grid broad phase used by the world update loop. Polygons are
// authored in pivot-relative local space; callers push a transform through
// Shape.Transform once per frame and everything downstream (AABBs, SAT
// tests, grid membership) reads the cached world vertices.
package collision

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/starwreck/geom"
)

// Polygon is a single convex piece of a collision shape. Local vertices
// are immutable after construction; world vertices and the world centroid
// are a cache rebuilt by Transform and must not be read before the first
// Transform call.
type Polygon struct {
	local       []mgl64.Vec2
	world       []mgl64.Vec2
	localCenter mgl64.Vec2
	worldCenter mgl64.Vec2
}

// NewPolygon builds a polygon from pivot-relative vertices. The vertices
// must be consistently wound and describe a convex hull; neither is
// checked here (cmd/hullcheck validates authored hulls).
func NewPolygon(local []mgl64.Vec2) *Polygon {
	p := &Polygon{
		local: append([]mgl64.Vec2(nil), local...),
		world: make([]mgl64.Vec2, len(local)),
	}
	if len(p.local) > 0 {
		var sum mgl64.Vec2
		for _, v := range p.local {
			sum = sum.Add(v)
		}
		p.localCenter = sum.Mul(1.0 / float64(len(p.local)))
	}
	p.worldCenter = p.localCenter
	return p
}

// Transform recomputes the world vertex cache: every local vertex is
// scaled about the local origin, rotated about it by rotation (degrees),
// then translated by position. The centroid goes through the same
// pipeline. No-op for an empty polygon.
func (p *Polygon) Transform(position mgl64.Vec2, rotationDegrees, scale float64) {
	if len(p.local) == 0 {
		return
	}

	rad := mgl64.DegToRad(rotationDegrees)
	cos := math.Cos(rad)
	sin := math.Sin(rad)

	for i, v := range p.local {
		x := v.X() * scale
		y := v.Y() * scale
		p.world[i] = mgl64.Vec2{
			position.X() + x*cos - y*sin,
			position.Y() + x*sin + y*cos,
		}
	}

	cx := p.localCenter.X() * scale
	cy := p.localCenter.Y() * scale
	p.worldCenter = mgl64.Vec2{
		position.X() + cx*cos - cy*sin,
		position.Y() + cx*sin + cy*cos,
	}
}

// AABB returns the axis-aligned bounds of the world vertices, or a zero
// rectangle at the origin when the polygon is empty.
func (p *Polygon) AABB() geom.Rect {
	if len(p.world) == 0 {
		return geom.Rect{}
	}
	minX, maxX := p.world[0].X(), p.world[0].X()
	minY, maxY := p.world[0].Y(), p.world[0].Y()
	for _, v := range p.world[1:] {
		minX = math.Min(minX, v.X())
		maxX = math.Max(maxX, v.X())
		minY = math.Min(minY, v.Y())
		maxY = math.Max(maxY, v.Y())
	}
	return geom.Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Local returns the pivot-relative vertices. Callers must not mutate the
// returned slice.
func (p *Polygon) Local() []mgl64.Vec2 { return p.local }

// World returns the cached world vertices. Valid only after Transform.
func (p *Polygon) World() []mgl64.Vec2 { return p.world }

// WorldCenter returns the transformed centroid. Valid only after Transform.
func (p *Polygon) WorldCenter() mgl64.Vec2 { return p.worldCenter }
