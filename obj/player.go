package obj

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/starwreck/geom"
	"github.com/milk9111/starwreck/prefabs"
)

const (
	defaultPlayerSpeed = 100
	boostFactor        = 2
)

// Player is the ship the pilot flies. It seeks the input target each
// frame and faces its direction of travel.
type Player struct {
	core
	input *Input
	speed float64
}

func NewPlayer(spec *prefabs.ShipSpec, pos mgl64.Vec2, rotation float64, input *Input) *Player {
	speed := spec.Behavior.Speed
	if speed == 0 {
		speed = defaultPlayerSpeed
	}
	return &Player{
		core:  newCore(spec, pos, rotation),
		input: input,
		speed: speed,
	}
}

// Update moves the ship toward the input target, never overshooting it.
// Boost doubles the travel speed while held.
func (p *Player) Update(dt float64) {
	d := p.input.TargetWorld.Sub(p.pos)
	dist := d.Len()
	if dist <= 1e-2 {
		return
	}

	speed := p.speed
	if p.input.Boost {
		speed *= boostFactor
	}

	step := math.Min(dist, speed*dt)
	p.pos = p.pos.Add(d.Mul(step / dist))
	p.rotation = geom.NormalizeDeg(mgl64.RadToDeg(math.Atan2(d.Y(), d.X())) + 90)
}
