package obj

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/starwreck/geom"
	"github.com/milk9111/starwreck/prefabs"
)

// Asteroid tumbles in place at a fixed spin rate in degrees per second.
// It still takes part in collision resolution, so ships shove it around.
type Asteroid struct {
	core
	spin float64
}

func NewAsteroid(spec *prefabs.ShipSpec, pos mgl64.Vec2, rotation float64) *Asteroid {
	return &Asteroid{
		core: newCore(spec, pos, rotation),
		spin: spec.Behavior.Spin,
	}
}

func (a *Asteroid) Update(dt float64) {
	a.rotation = geom.NormalizeDeg(a.rotation + a.spin*dt)
}
