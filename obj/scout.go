package obj

import (
	"fmt"
	"log"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/starwreck/behavior"
	"github.com/milk9111/starwreck/prefabs"
)

const (
	defaultScoutSpeed    = 140
	defaultScoutTurnRate = 240
)

// Scout is a light ship driven by a prefab-authored script. The script
// places goals through the engine bindings; the ship does the steering.
type Scout struct {
	core
	script   *behavior.Script
	goal     mgl64.Vec2
	speed    float64
	turnRate float64
}

func NewScout(spec *prefabs.ShipSpec, pos mgl64.Vec2, rotation float64, seed int64) (*Scout, error) {
	if spec.Behavior.Script == "" {
		return nil, fmt.Errorf("obj: scout %s has no behavior script", spec.Name)
	}

	s := &Scout{
		core:     newCore(spec, pos, rotation),
		goal:     pos,
		speed:    spec.Behavior.Speed,
		turnRate: spec.Behavior.TurnRate,
	}
	if s.speed == 0 {
		s.speed = defaultScoutSpeed
	}
	if s.turnRate == 0 {
		s.turnRate = defaultScoutTurnRate
	}

	script, err := behavior.Compile(spec.Behavior.Script, s, seed)
	if err != nil {
		return nil, err
	}
	s.script = script
	return s, nil
}

// Goal returns the point the ship is steering toward.
func (s *Scout) Goal() mgl64.Vec2 { return s.goal }

// SetGoal retargets the ship. Scripts call this through the engine.
func (s *Scout) SetGoal(g mgl64.Vec2) { s.goal = g }

// Update runs the script, then steers toward whatever goal it left. A
// script that fails at runtime is dropped and the ship keeps flying
// toward its last goal.
func (s *Scout) Update(dt float64) {
	if s.script != nil {
		if err := s.script.Update(dt); err != nil {
			log.Printf("scout %s: disabling script: %v", s.name, err)
			s.script = nil
		}
	}
	s.pos, s.rotation = behavior.Steer(dt, s.pos, s.rotation, s.goal, s.speed, s.turnRate)
}
