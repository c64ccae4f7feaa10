package geom

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func nearly(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9
}

func nearlyVec(a, b mgl64.Vec2) bool {
	return nearly(a.X(), b.X()) && nearly(a.Y(), b.Y())
}

func TestRotateDeg(t *testing.T) {
	cases := []struct {
		name string
		v    mgl64.Vec2
		deg  float64
		want mgl64.Vec2
	}{
		{"zero", mgl64.Vec2{1, 0}, 0, mgl64.Vec2{1, 0}},
		{"quarter", mgl64.Vec2{1, 0}, 90, mgl64.Vec2{0, 1}},
		{"half", mgl64.Vec2{1, 0}, 180, mgl64.Vec2{-1, 0}},
		{"quarter_of_y", mgl64.Vec2{0, 1}, 90, mgl64.Vec2{-1, 0}},
		{"full_circle", mgl64.Vec2{3, 4}, 360, mgl64.Vec2{3, 4}},
		{"negative", mgl64.Vec2{1, 0}, -90, mgl64.Vec2{0, -1}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := RotateDeg(c.v, c.deg); !nearlyVec(got, c.want) {
				t.Fatalf("RotateDeg(%v, %v) = %v, want %v", c.v, c.deg, got, c.want)
			}
		})
	}
}

func TestRotateDegPreservesLength(t *testing.T) {
	v := mgl64.Vec2{3, -4}
	for _, deg := range []float64{13, 77, 191, 304} {
		if got := RotateDeg(v, deg); !nearly(got.Len(), 5) {
			t.Fatalf("RotateDeg(%v, %v) changed length: %v", v, deg, got.Len())
		}
	}
}

func TestPerp(t *testing.T) {
	for _, v := range []mgl64.Vec2{{1, 0}, {0, 1}, {3, -4}, {-2, -5}} {
		p := Perp(v)
		if !nearly(v.Dot(p), 0) {
			t.Fatalf("Perp(%v) = %v is not perpendicular", v, p)
		}
		if !nearly(p.Len(), v.Len()) {
			t.Fatalf("Perp(%v) = %v changed length", v, p)
		}
		// Perp is the same quarter turn RotateDeg makes.
		if want := RotateDeg(v, 90); !nearlyVec(p, want) {
			t.Fatalf("Perp(%v) = %v, want %v", v, p, want)
		}
	}
}

func TestLerp(t *testing.T) {
	cases := []struct {
		a, b, t, want float64
	}{
		{0, 10, 0, 0},
		{0, 10, 1, 10},
		{0, 10, 0.5, 5},
		{-4, 4, 0.25, -2},
	}
	for _, c := range cases {
		if got := Lerp(c.a, c.b, c.t); !nearly(got, c.want) {
			t.Errorf("Lerp(%v, %v, %v) = %v, want %v", c.a, c.b, c.t, got, c.want)
		}
	}
}

func TestNormalizeDeg(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{360, 0},
		{370, 10},
		{-10, 350},
		{-360, 0},
		{725, 5},
	}
	for _, c := range cases {
		if got := NormalizeDeg(c.in); !nearly(got, c.want) {
			t.Errorf("NormalizeDeg(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestAngleDiffDeg(t *testing.T) {
	cases := []struct {
		a, b, want float64
	}{
		{0, 30, 30},
		{30, 0, -30},
		{350, 10, 20},
		{10, 350, -20},
		{0, 180, 180},
		{90, 90, 0},
	}
	for _, c := range cases {
		if got := AngleDiffDeg(c.a, c.b); !nearly(got, c.want) {
			t.Errorf("AngleDiffDeg(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}
