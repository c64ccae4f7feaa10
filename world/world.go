package world

import (
	"log"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/starwreck/collision"
	"github.com/milk9111/starwreck/geom"
)

// DefaultCellSize is the grid cell edge used when no option overrides it.
const DefaultCellSize = 512

// Contact records one resolved collision from the most recent Update.
type Contact struct {
	A, B int
	MTV  mgl64.Vec2
}

type slot struct {
	id   int
	body Body

	// aabb is the body's current bounds; gridBox is the box its grid
	// entry was inserted with. They drift apart between re-syncs, and
	// removal must always use gridBox so it exactly undoes the insert.
	aabb    geom.Rect
	gridBox geom.Rect

	cellKey int
	inGrid  bool
}

// World owns the bodies and the broad-phase grid. Construct one per
// scenario; there is no package-level instance.
type World struct {
	width  float64
	height float64

	grid  *collision.Grid
	slots []slot

	symmetricResync bool
	collide         func(a, b *collision.Shape) (mgl64.Vec2, bool)
	logger          *log.Logger

	contacts []Contact
	scratch  []int
}

// Option configures a World at construction.
type Option func(*World)

// WithCellSize overrides the broad-phase cell edge.
func WithCellSize(size float64) Option {
	return func(w *World) {
		w.grid = collision.NewGrid(w.width, w.height, size)
	}
}

// WithSymmetricResync controls whether the second body of a resolved pair
// has its grid entry re-synced immediately. On (the default) both bodies
// are re-indexed after the MTV split; off keeps the legacy behavior where
// only the first body re-syncs and the second body's entry stays stale
// until its own movement crosses a cell boundary.
func WithSymmetricResync(on bool) Option {
	return func(w *World) {
		w.symmetricResync = on
	}
}

// WithLogger routes resolve-time diagnostics to l: one line per resolved
// pair. No logger, no output.
func WithLogger(l *log.Logger) Option {
	return func(w *World) {
		w.logger = l
	}
}

// WithDeepestContact switches the narrow phase from first-colliding-pair
// to deepest-penetration across compound shapes.
func WithDeepestContact(on bool) Option {
	return func(w *World) {
		if on {
			w.collide = collision.ShapesCollideDeepest
		} else {
			w.collide = collision.ShapesCollide
		}
	}
}

// NewWorld builds an empty world covering a width x height extent.
func NewWorld(width, height float64, opts ...Option) *World {
	w := &World{
		width:           width,
		height:          height,
		grid:            collision.NewGrid(width, height, DefaultCellSize),
		symmetricResync: true,
		collide:         collision.ShapesCollide,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Spawn registers a body and returns its stable id. Ids are handed out in
// creation order and never reused, so they double as the total order that
// dedupes collision pairs.
func (w *World) Spawn(b Body) int {
	id := len(w.slots)
	s := slot{id: id, body: b}

	b.Shape().Transform(b.Position(), b.Rotation(), b.Scale())
	s.aabb = w.bodyAABB(b)
	s.gridBox = s.aabb
	s.cellKey = w.grid.CellKey(b.Position())
	if b.Alive() && b.Collidable() {
		w.grid.Insert(id, s.aabb)
		s.inGrid = true
	}

	w.slots = append(w.slots, s)
	return id
}

// Update runs one frame: pass 1 advances and re-indexes every body,
// pass 2 resolves overlapping pairs found through the grid.
func (w *World) Update(dt float64) {
	w.contacts = w.contacts[:0]
	w.updateBodies(dt)
	w.resolveCollisions()
}

func (w *World) updateBodies(dt float64) {
	for i := range w.slots {
		s := &w.slots[i]
		b := s.body

		if !b.Alive() {
			if s.inGrid {
				w.grid.Remove(s.id, s.gridBox)
				s.inGrid = false
			}
			continue
		}

		oldKey := w.grid.CellKey(b.Position())
		oldBox := s.aabb

		b.Update(dt)
		w.clampToBounds(b, oldBox)

		b.Shape().Transform(b.Position(), b.Rotation(), b.Scale())
		s.aabb = w.bodyAABB(b)
		s.cellKey = w.grid.CellKey(b.Position())

		switch {
		case !b.Collidable():
			if s.inGrid {
				w.grid.Remove(s.id, s.gridBox)
				s.inGrid = false
			}
		case !s.inGrid:
			w.grid.Insert(s.id, s.aabb)
			s.gridBox = s.aabb
			s.inGrid = true
		case s.cellKey != oldKey:
			w.grid.Remove(s.id, s.gridBox)
			w.grid.Insert(s.id, s.aabb)
			s.gridBox = s.aabb
		}
	}
}

func (w *World) resolveCollisions() {
	for i := range w.slots {
		sa := &w.slots[i]
		a := sa.body
		if !a.Alive() || !a.Collidable() {
			continue
		}

		// Collect the candidate set first: grid mutation is deferred
		// until the query has returned.
		w.scratch = w.scratch[:0]
		w.grid.Query(sa.aabb, func(id int) {
			w.scratch = append(w.scratch, id)
		})

		seen := make(map[int]struct{}, len(w.scratch))
		for _, id := range w.scratch {
			if id == sa.id {
				continue
			}
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}

			// Each unordered pair is tested once, by the body with the
			// smaller id.
			if id < sa.id {
				continue
			}

			sb := &w.slots[id]
			b := sb.body
			if !b.Alive() || !b.Collidable() {
				continue
			}

			mtv, ok := w.collide(a.Shape(), b.Shape())
			if !ok {
				continue
			}

			half := mtv.Mul(0.5)
			a.SetPosition(a.Position().Sub(half))
			b.SetPosition(b.Position().Add(half))

			w.resync(sa)
			if w.symmetricResync {
				w.resync(sb)
			}

			if w.logger != nil {
				w.logger.Printf("resolve %d<->%d mtv=(%.4f, %.4f)", sa.id, sb.id, mtv.X(), mtv.Y())
			}
			w.contacts = append(w.contacts, Contact{A: sa.id, B: sb.id, MTV: mtv})
		}
	}
}

// resync rebuilds a body's world vertices and AABB after a position
// correction and re-indexes its grid entry.
func (w *World) resync(s *slot) {
	b := s.body
	b.Shape().Transform(b.Position(), b.Rotation(), b.Scale())

	newBox := w.bodyAABB(b)
	if s.inGrid {
		w.grid.Remove(s.id, s.gridBox)
		w.grid.Insert(s.id, newBox)
		s.gridBox = newBox
	}
	s.aabb = newBox
	s.cellKey = w.grid.CellKey(b.Position())
}

// Teleport moves a body without tripping the stale-entry hazards of a
// direct SetPosition: the grid entry is removed at the old AABB and
// reinserted at the new one.
func (w *World) Teleport(id int, pos mgl64.Vec2) {
	if id < 0 || id >= len(w.slots) {
		return
	}
	s := &w.slots[id]
	s.body.SetPosition(pos)
	w.resync(s)
}

// clampToBounds keeps the body's box inside the world, using the box
// dimensions recorded before the movement update.
func (w *World) clampToBounds(b Body, box geom.Rect) {
	halfW := box.Width / 2
	halfH := box.Height / 2
	p := b.Position()
	clamped := mgl64.Vec2{
		mgl64.Clamp(p.X(), halfW, w.width-halfW),
		mgl64.Clamp(p.Y(), halfH, w.height-halfH),
	}
	if clamped != p {
		b.SetPosition(clamped)
	}
}

// bodyAABB is the union of the shape's polygon bounds, or the
// size-derived rectangle centered on the body when the shape is empty.
func (w *World) bodyAABB(b Body) geom.Rect {
	if box, ok := b.Shape().AABB(); ok {
		return box
	}
	half := b.Size().Mul(b.Scale() * 0.5)
	p := b.Position()
	return geom.Rect{
		X:      p.X() - half.X(),
		Y:      p.Y() - half.Y(),
		Width:  half.X() * 2,
		Height: half.Y() * 2,
	}
}

// Bounds returns the world extent as a rectangle at the origin.
func (w *World) Bounds() geom.Rect {
	return geom.Rect{Width: w.width, Height: w.height}
}

// Grid exposes the broad-phase index for debug rendering.
func (w *World) Grid() *collision.Grid { return w.grid }

// Contacts returns the collisions resolved by the most recent Update.
// The slice is reused across frames.
func (w *World) Contacts() []Contact { return w.contacts }

// AABBOf returns the cached bounds of a body.
func (w *World) AABBOf(id int) (geom.Rect, bool) {
	if id < 0 || id >= len(w.slots) {
		return geom.Rect{}, false
	}
	return w.slots[id].aabb, true
}

// BodyOf returns the body registered under id.
func (w *World) BodyOf(id int) (Body, bool) {
	if id < 0 || id >= len(w.slots) {
		return nil, false
	}
	return w.slots[id].body, true
}

// Each visits every body in creation order.
func (w *World) Each(fn func(id int, b Body)) {
	for i := range w.slots {
		fn(w.slots[i].id, w.slots[i].body)
	}
}

// Len returns the number of registered bodies, dead ones included.
func (w *World) Len() int { return len(w.slots) }
