package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Lerp interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Perp returns v rotated a quarter turn.
func Perp(v mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{-v.Y(), v.X()}
}

// RotateDeg rotates v about the origin by the given angle in degrees.
func RotateDeg(v mgl64.Vec2, degrees float64) mgl64.Vec2 {
	return mgl64.Rotate2D(mgl64.DegToRad(degrees)).Mul2x1(v)
}

// NormalizeDeg wraps an angle in degrees into [0, 360).
func NormalizeDeg(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// AngleDiffDeg returns the shortest signed arc from angle a to angle b,
// in (-180, 180].
func AngleDiffDeg(a, b float64) float64 {
	d := math.Mod(b-a, 360)
	if d > 180 {
		d -= 360
	} else if d <= -180 {
		d += 360
	}
	return d
}
