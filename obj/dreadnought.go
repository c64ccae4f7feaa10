package obj

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/starwreck/behavior"
	"github.com/milk9111/starwreck/geom"
	"github.com/milk9111/starwreck/prefabs"
)

// Dreadnought is the capital ship. It drifts between random goals inside
// the world bounds, turning no faster than its rated rate.
type Dreadnought struct {
	core
	wander *behavior.Wander
}

func NewDreadnought(spec *prefabs.ShipSpec, pos mgl64.Vec2, rotation float64, bounds geom.Rect, seed int64) *Dreadnought {
	cfg := behavior.WanderConfig{
		Speed:        spec.Behavior.Speed,
		TurnRate:     spec.Behavior.TurnRate,
		Radius:       spec.Behavior.WanderRadius,
		GoalEpsilon:  spec.Behavior.GoalEpsilon,
		GoalInterval: spec.Behavior.GoalInterval,
	}
	return &Dreadnought{
		core:   newCore(spec, pos, rotation),
		wander: behavior.NewWander(cfg, bounds, seed),
	}
}

func (d *Dreadnought) Update(dt float64) {
	d.pos, d.rotation = d.wander.Update(dt, d.pos, d.rotation)
}

// Goal reports the current wander goal so the debug overlay can draw it.
func (d *Dreadnought) Goal() mgl64.Vec2 { return d.wander.Goal() }
