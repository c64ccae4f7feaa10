package obj

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/starwreck/geom"
	"github.com/milk9111/starwreck/world"
)

// mtvScale stretches contact translation vectors so shallow overlaps are
// still visible on screen.
const mtvScale = 8

// Debug draws the collision internals over the scene: broad-phase grid
// lines, body bounds, the contacts resolved this frame, and behavior
// goals.
type Debug struct {
	Enabled bool
}

func (d *Debug) Draw(view *ebiten.Image, w *world.World, cam *Camera) {
	if !d.Enabled {
		return
	}
	d.drawGrid(view, w, cam)
	d.drawBounds(view, w, cam)
	d.drawGoals(view, w, cam)
	d.drawContacts(view, w, cam)
}

func (d *Debug) drawGrid(view *ebiten.Image, w *world.World, cam *Camera) {
	cell := w.Grid().CellSize()
	bounds := w.Bounds()
	vr := cam.ViewRect()
	if !vr.Intersects(bounds) {
		return
	}

	x0 := math.Max(vr.MinX(), bounds.MinX())
	x1 := math.Min(vr.MaxX(), bounds.MaxX())
	y0 := math.Max(vr.MinY(), bounds.MinY())
	y1 := math.Min(vr.MaxY(), bounds.MaxY())

	for col := int(math.Ceil(x0 / cell)); float64(col)*cell <= x1; col++ {
		x := float64(col) * cell
		sx, sy0 := cam.WorldToScreen(x, y0)
		_, sy1 := cam.WorldToScreen(x, y1)
		vector.StrokeLine(view, float32(sx), float32(sy0), float32(sx), float32(sy1), 1, colornames.Dimgray, false)
	}
	for row := int(math.Ceil(y0 / cell)); float64(row)*cell <= y1; row++ {
		y := float64(row) * cell
		sx0, sy := cam.WorldToScreen(x0, y)
		sx1, _ := cam.WorldToScreen(x1, y)
		vector.StrokeLine(view, float32(sx0), float32(sy), float32(sx1), float32(sy), 1, colornames.Dimgray, false)
	}
}

func (d *Debug) drawBounds(view *ebiten.Image, w *world.World, cam *Camera) {
	w.Each(func(id int, b world.Body) {
		if !b.Alive() {
			return
		}
		box, ok := w.AABBOf(id)
		if !ok {
			return
		}
		d.strokeRect(view, cam, box, colornames.Green)
	})
}

func (d *Debug) drawGoals(view *ebiten.Image, w *world.World, cam *Camera) {
	w.Each(func(id int, b world.Body) {
		if !b.Alive() {
			return
		}
		seeker, ok := b.(interface{ Goal() mgl64.Vec2 })
		if !ok {
			return
		}
		goal := seeker.Goal()
		px, py := cam.WorldToScreen(b.Position().X(), b.Position().Y())
		gx, gy := cam.WorldToScreen(goal.X(), goal.Y())
		vector.StrokeLine(view, float32(px), float32(py), float32(gx), float32(gy), 1, colornames.Cyan, false)
		vector.DrawFilledCircle(view, float32(gx), float32(gy), 3, colornames.Cyan, false)
	})
}

func (d *Debug) drawContacts(view *ebiten.Image, w *world.World, cam *Camera) {
	for _, ct := range w.Contacts() {
		a, okA := w.BodyOf(ct.A)
		b, okB := w.BodyOf(ct.B)
		if !okA || !okB {
			continue
		}
		mid := a.Position().Add(b.Position()).Mul(0.5)
		mx, my := cam.WorldToScreen(mid.X(), mid.Y())
		tip := mid.Add(ct.MTV.Mul(mtvScale))
		tx, ty := cam.WorldToScreen(tip.X(), tip.Y())
		vector.DrawFilledCircle(view, float32(mx), float32(my), 4, colornames.Yellow, false)
		vector.StrokeLine(view, float32(mx), float32(my), float32(tx), float32(ty), 2, colornames.Yellow, false)
	}
}

func (d *Debug) strokeRect(view *ebiten.Image, cam *Camera, box geom.Rect, clr color.Color) {
	x, y := cam.WorldToScreen(box.MinX(), box.MinY())
	vector.StrokeRect(view, float32(x), float32(y), float32(box.Width*cam.Zoom()), float32(box.Height*cam.Zoom()), 1, clr, false)
}
