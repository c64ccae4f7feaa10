package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DrawObject strokes the object's hull polygons in its prefab color,
// using the world vertices cached by the last transform. An object with
// no hull gets its size rectangle instead so it is still visible.
func DrawObject(view *ebiten.Image, cam *Camera, o Object) {
	shape := o.Shape()
	if shape == nil || shape.Len() == 0 {
		drawSizeRect(view, cam, o)
		return
	}

	for _, poly := range shape.Polygons() {
		verts := poly.World()
		if len(verts) < 2 {
			continue
		}
		for i := range verts {
			a := verts[i]
			b := verts[(i+1)%len(verts)]
			ax, ay := cam.WorldToScreen(a.X(), a.Y())
			bx, by := cam.WorldToScreen(b.X(), b.Y())
			vector.StrokeLine(view, float32(ax), float32(ay), float32(bx), float32(by), 1, o.Color(), true)
		}
	}
}

func drawSizeRect(view *ebiten.Image, cam *Camera, o Object) {
	size := o.Size().Mul(o.Scale())
	p := o.Position()
	x, y := cam.WorldToScreen(p.X()-size.X()/2, p.Y()-size.Y()/2)
	w := float32(size.X() * cam.Zoom())
	h := float32(size.Y() * cam.Zoom())
	vector.StrokeRect(view, float32(x), float32(y), w, h, 1, o.Color(), true)
}
