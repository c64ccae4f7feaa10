// Package world owns the entity collection and the spatial grid and runs
// the per-frame two-pass update/resolve loop: pass 1 moves every body and
// keeps its grid membership in sync, pass 2 finds overlapping pairs
// through the grid, confirms them with the SAT narrow phase, and splits
// the minimum translation vector between the two bodies.
package world

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/starwreck/collision"
)

// Body is the capability contract an entity exposes to the world loop.
// The world reads the transform and flags every frame and writes back
// position when it resolves a collision; everything else about the entity
// (rendering, steering, health) is its own business.
type Body interface {
	// Update advances the body's own movement or behavior by dt seconds.
	Update(dt float64)

	Position() mgl64.Vec2
	SetPosition(p mgl64.Vec2)

	// Rotation is in degrees.
	Rotation() float64
	Scale() float64

	// Size is the body's nominal width and height, used for the
	// bounding-rectangle fallback when Shape has no polygons.
	Size() mgl64.Vec2

	Shape() *collision.Shape

	Alive() bool
	Collidable() bool
}
