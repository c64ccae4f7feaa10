// Package obj holds the spawnable game objects and the camera, input,
// and debug-drawing plumbing the game shell wires them to.
package obj

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/colornames"

	"github.com/milk9111/starwreck/collision"
	"github.com/milk9111/starwreck/prefabs"
	"github.com/milk9111/starwreck/world"
)

// Object is what the shell needs from a spawned body beyond the
// collision world's view of it.
type Object interface {
	world.Body
	Name() string
	Color() color.Color
}

// core carries the prefab-derived state shared by every object type.
type core struct {
	name       string
	pos        mgl64.Vec2
	rotation   float64
	scale      float64
	size       mgl64.Vec2
	shape      *collision.Shape
	color      color.Color
	alive      bool
	collidable bool
}

func newCore(spec *prefabs.ShipSpec, pos mgl64.Vec2, rotation float64) core {
	c := core{
		name:       spec.Name,
		pos:        pos,
		rotation:   rotation,
		scale:      spec.Scale,
		size:       mgl64.Vec2{spec.Size.Width, spec.Size.Height},
		shape:      prefabs.BuildShape(spec.Hull),
		color:      colornames.White,
		alive:      true,
		collidable: true,
	}
	if c.scale == 0 {
		c.scale = 1
	}
	if spec.Color != nil && spec.Color.Color != nil {
		c.color = spec.Color.Color
	}
	return c
}

func (c *core) Position() mgl64.Vec2     { return c.pos }
func (c *core) SetPosition(p mgl64.Vec2) { c.pos = p }
func (c *core) Rotation() float64        { return c.rotation }
func (c *core) Scale() float64           { return c.scale }
func (c *core) Size() mgl64.Vec2         { return c.size }
func (c *core) Shape() *collision.Shape  { return c.shape }
func (c *core) Alive() bool              { return c.alive }
func (c *core) Collidable() bool         { return c.collidable }
func (c *core) Name() string             { return c.name }
func (c *core) Color() color.Color       { return c.color }

// Kill marks the object dead; the world drops it from the grid on the
// next update.
func (c *core) Kill() { c.alive = false }

// SetCollidable toggles grid membership without killing the object.
func (c *core) SetCollidable(v bool) { c.collidable = v }
