// Package behavior implements autonomous ship movement: a wandering goal
// picker with rate-limited steering, and a tengo script runtime for
// prefab-authored behaviors.
package behavior

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/starwreck/geom"
)

// Tuning used when a prefab leaves a field zero.
const (
	defaultWanderSpeed    = 50.0
	defaultWanderTurnRate = 120.0
	defaultWanderRadius   = 2000.0
	defaultGoalEpsilon    = 12.0
	defaultGoalInterval   = 3.0

	// goalMargin keeps picked goals off the world edge so ships do not
	// grind against the bounds clamp.
	goalMargin = 64.0
)

// Forward converts a heading in degrees to a unit forward vector. Ships
// point up the screen at heading 0, so the forward vector lags the
// heading by a quarter turn.
func Forward(headingDeg float64) mgl64.Vec2 {
	rad := mgl64.DegToRad(headingDeg - 90)
	return mgl64.Vec2{math.Cos(rad), math.Sin(rad)}
}

// HeadingTo returns the heading that points from pos toward target.
func HeadingTo(pos, target mgl64.Vec2) float64 {
	d := target.Sub(pos)
	return geom.NormalizeDeg(mgl64.RadToDeg(math.Atan2(d.Y(), d.X())) + 90)
}

// Steer turns heading toward goal by at most turnRate*dt degrees, then
// advances pos along the new heading at speed. It returns the new
// position and heading.
func Steer(dt float64, pos mgl64.Vec2, headingDeg float64, goal mgl64.Vec2, speed, turnRate float64) (mgl64.Vec2, float64) {
	if goal.Sub(pos).Len() > 1e-9 {
		diff := geom.AngleDiffDeg(headingDeg, HeadingTo(pos, goal))
		step := turnRate * dt
		headingDeg = geom.NormalizeDeg(headingDeg + mgl64.Clamp(diff, -step, step))
	}
	return pos.Add(Forward(headingDeg).Mul(speed * dt)), headingDeg
}

// WanderConfig tunes a Wander. Zero fields fall back to defaults.
type WanderConfig struct {
	Speed        float64
	TurnRate     float64
	Radius       float64
	GoalEpsilon  float64
	GoalInterval float64
}

func (c WanderConfig) withDefaults() WanderConfig {
	if c.Speed == 0 {
		c.Speed = defaultWanderSpeed
	}
	if c.TurnRate == 0 {
		c.TurnRate = defaultWanderTurnRate
	}
	if c.Radius == 0 {
		c.Radius = defaultWanderRadius
	}
	if c.GoalEpsilon == 0 {
		c.GoalEpsilon = defaultGoalEpsilon
	}
	if c.GoalInterval == 0 {
		c.GoalInterval = defaultGoalInterval
	}
	return c
}

// Wander drifts between random goals inside the world bounds: pick a
// point within Radius of the current position, steer toward it, pick
// again after GoalInterval seconds or once within GoalEpsilon of it.
type Wander struct {
	cfg     WanderConfig
	bounds  geom.Rect
	rng     *rand.Rand
	goal    mgl64.Vec2
	timer   float64
	started bool
}

func NewWander(cfg WanderConfig, bounds geom.Rect, seed int64) *Wander {
	return &Wander{
		cfg:    cfg.withDefaults(),
		bounds: bounds,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Goal returns the current wander goal.
func (w *Wander) Goal() mgl64.Vec2 { return w.goal }

// Update re-picks the goal when reached or stale, then steers toward it.
// It returns the new position and heading.
func (w *Wander) Update(dt float64, pos mgl64.Vec2, headingDeg float64) (mgl64.Vec2, float64) {
	w.timer -= dt
	if !w.started || w.timer <= 0 || pos.Sub(w.goal).Len() <= w.cfg.GoalEpsilon {
		w.goal = w.pick(pos)
		w.timer = w.cfg.GoalInterval
		w.started = true
	}
	return Steer(dt, pos, headingDeg, w.goal, w.cfg.Speed, w.cfg.TurnRate)
}

func (w *Wander) pick(pos mgl64.Vec2) mgl64.Vec2 {
	g := mgl64.Vec2{
		pos.X() + (w.rng.Float64()*2-1)*w.cfg.Radius,
		pos.Y() + (w.rng.Float64()*2-1)*w.cfg.Radius,
	}
	// Worlds smaller than twice the margin skip the clamp.
	if minX, maxX := w.bounds.MinX()+goalMargin, w.bounds.MaxX()-goalMargin; minX < maxX {
		g[0] = mgl64.Clamp(g[0], minX, maxX)
	}
	if minY, maxY := w.bounds.MinY()+goalMargin, w.bounds.MaxY()-goalMargin; minY < maxY {
		g[1] = mgl64.Clamp(g[1], minY, maxY)
	}
	return g
}
