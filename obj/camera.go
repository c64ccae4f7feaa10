package obj

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/starwreck/geom"
)

// Camera renders the world centered on a given world coordinate and
// supports zoom.
type Camera struct {
	PosX float64
	PosY float64

	screenW int
	screenH int
	zoom    float64
	off     *ebiten.Image

	// smoothing factor (0..1). higher -> faster follow.
	smooth float64
	// world bounds in pixels (0 means unbounded)
	worldW float64
	worldH float64
}

// NewCamera creates a camera with the given logical screen size and
// initial zoom.
func NewCamera(screenW, screenH int, zoom float64) *Camera {
	if zoom <= 0 {
		zoom = 1
	}
	c := &Camera{screenW: screenW, screenH: screenH, zoom: zoom, smooth: 0.15}
	c.off = ebiten.NewImage(screenW, screenH)
	c.PosX = float64(screenW) / 2.0
	c.PosY = float64(screenH) / 2.0
	return c
}

// SetZoom updates the camera zoom.
func (c *Camera) SetZoom(z float64) {
	if z <= 0 {
		return
	}
	c.zoom = z
}

// Zoom returns the current camera zoom.
func (c *Camera) Zoom() float64 { return c.zoom }

// SetWorldBounds sets the world dimensions used to clamp the view.
func (c *Camera) SetWorldBounds(w, h float64) {
	c.worldW = w
	c.worldH = h
}

// ViewTopLeft returns the world-space top-left of the current view.
func (c *Camera) ViewTopLeft() (float64, float64) {
	viewW := float64(c.screenW) / c.zoom
	viewH := float64(c.screenH) / c.zoom
	return c.PosX - viewW/2.0, c.PosY - viewH/2.0
}

// ViewRect returns the world-space rectangle currently on screen.
func (c *Camera) ViewRect() geom.Rect {
	x, y := c.ViewTopLeft()
	return geom.Rect{X: x, Y: y, Width: float64(c.screenW) / c.zoom, Height: float64(c.screenH) / c.zoom}
}

// ScreenToWorld maps a screen pixel to world coordinates.
func (c *Camera) ScreenToWorld(x, y float64) (float64, float64) {
	vx, vy := c.ViewTopLeft()
	return vx + x/c.zoom, vy + y/c.zoom
}

// WorldToScreen maps a world point to screen pixels.
func (c *Camera) WorldToScreen(x, y float64) (float64, float64) {
	vx, vy := c.ViewTopLeft()
	return (x - vx) * c.zoom, (y - vy) * c.zoom
}

// Update moves the camera toward the target world coordinate. Call from
// the fixed-rate update loop to get consistent smoothing.
func (c *Camera) Update(targetX, targetY float64) {
	if c.smooth <= 0 {
		c.PosX = targetX
		c.PosY = targetY
	} else {
		c.PosX = geom.Lerp(c.PosX, targetX, c.smooth)
		c.PosY = geom.Lerp(c.PosY, targetY, c.smooth)
	}
	c.settle()
}

// SnapTo immediately centers the camera, skipping the smoothing. Use
// after a scenario load so the first frame is already framed.
func (c *Camera) SnapTo(x, y float64) {
	c.PosX = x
	c.PosY = y
	c.settle()
}

// settle snaps the position to the 1/zoom grid so source texels align to
// integer screen pixels, then clamps the view inside the world bounds.
func (c *Camera) settle() {
	c.PosX = math.Round(c.PosX*c.zoom) / c.zoom
	c.PosY = math.Round(c.PosY*c.zoom) / c.zoom

	halfW := float64(c.screenW) / c.zoom / 2.0
	halfH := float64(c.screenH) / c.zoom / 2.0
	if c.worldW > 0 {
		if c.worldW-halfW < halfW {
			// world smaller than view: center on world
			c.PosX = c.worldW / 2.0
		} else {
			c.PosX = mgl64.Clamp(c.PosX, halfW, c.worldW-halfW)
		}
	}
	if c.worldH > 0 {
		if c.worldH-halfH < halfH {
			c.PosY = c.worldH / 2.0
		} else {
			c.PosY = mgl64.Clamp(c.PosY, halfH, c.worldH-halfH)
		}
	}
}

// Render clears the offscreen image, lets the caller draw the world into
// it, then blits it to the screen.
func (c *Camera) Render(screen *ebiten.Image, drawWorld func(view *ebiten.Image)) {
	if c.off == nil {
		c.off = ebiten.NewImage(c.screenW, c.screenH)
	}

	c.off.Clear()
	if drawWorld != nil {
		drawWorld(c.off)
	}

	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(c.off, op)
}
