package collision

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const testEps = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= testEps
}

func vecAlmostEqual(a, b mgl64.Vec2) bool {
	return almostEqual(a.X(), b.X()) && almostEqual(a.Y(), b.Y())
}

func square(cx, cy, side float64) []mgl64.Vec2 {
	h := side / 2
	return []mgl64.Vec2{
		{cx - h, cy - h},
		{cx + h, cy - h},
		{cx + h, cy + h},
		{cx - h, cy + h},
	}
}

// transformedPolygon builds a polygon and pushes one transform through it.
func transformedPolygon(local []mgl64.Vec2, pos mgl64.Vec2, rot, scale float64) *Polygon {
	p := NewPolygon(local)
	p.Transform(pos, rot, scale)
	return p
}

func TestNewPolygonCentroid(t *testing.T) {
	cases := []struct {
		name   string
		local  []mgl64.Vec2
		center mgl64.Vec2
	}{
		{"empty_is_origin", nil, mgl64.Vec2{}},
		{"unit_square", square(0, 0, 2), mgl64.Vec2{0, 0}},
		{"offset_square", square(4, 6, 2), mgl64.Vec2{4, 6}},
		{"triangle", []mgl64.Vec2{{0, 0}, {6, 0}, {0, 6}}, mgl64.Vec2{2, 2}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := NewPolygon(c.local)
			if !vecAlmostEqual(p.localCenter, c.center) {
				t.Fatalf("expected centroid %v, got %v", c.center, p.localCenter)
			}
			if len(p.World()) != len(c.local) {
				t.Fatalf("expected world cache of %d vertices, got %d", len(c.local), len(p.World()))
			}
		})
	}
}

func TestPolygonTransformPipeline(t *testing.T) {
	cases := []struct {
		name  string
		local mgl64.Vec2
		pos   mgl64.Vec2
		rot   float64
		scale float64
		want  mgl64.Vec2
	}{
		{"identity", mgl64.Vec2{1, 0}, mgl64.Vec2{}, 0, 1, mgl64.Vec2{1, 0}},
		{"translate_only", mgl64.Vec2{1, 2}, mgl64.Vec2{10, 20}, 0, 1, mgl64.Vec2{11, 22}},
		{"scale_then_translate", mgl64.Vec2{1, 0}, mgl64.Vec2{5, 5}, 0, 3, mgl64.Vec2{8, 5}},
		{"rotate_90", mgl64.Vec2{1, 0}, mgl64.Vec2{}, 90, 1, mgl64.Vec2{0, 1}},
		{"rotate_180", mgl64.Vec2{1, 0}, mgl64.Vec2{}, 180, 1, mgl64.Vec2{-1, 0}},
		{"scale_rotate_translate", mgl64.Vec2{1, 0}, mgl64.Vec2{10, 10}, 90, 2, mgl64.Vec2{10, 12}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := transformedPolygon([]mgl64.Vec2{c.local}, c.pos, c.rot, c.scale)
			if !vecAlmostEqual(p.World()[0], c.want) {
				t.Fatalf("expected world vertex %v, got %v", c.want, p.World()[0])
			}
		})
	}
}

func TestPolygonTransformIdempotent(t *testing.T) {
	p := NewPolygon(square(1, 2, 4))
	p.Transform(mgl64.Vec2{7, -3}, 33, 1.5)
	first := append([]mgl64.Vec2(nil), p.World()...)
	firstCenter := p.WorldCenter()

	p.Transform(mgl64.Vec2{7, -3}, 33, 1.5)
	for i, v := range p.World() {
		if v != first[i] {
			t.Fatalf("vertex %d changed across identical transforms: %v vs %v", i, first[i], v)
		}
	}
	if p.WorldCenter() != firstCenter {
		t.Fatalf("world center changed across identical transforms: %v vs %v", firstCenter, p.WorldCenter())
	}
}

func TestPolygonTransformEmptyIsNoop(t *testing.T) {
	p := NewPolygon(nil)
	p.Transform(mgl64.Vec2{100, 100}, 45, 2)
	if len(p.World()) != 0 {
		t.Fatalf("expected empty world cache, got %d vertices", len(p.World()))
	}
	if !vecAlmostEqual(p.WorldCenter(), mgl64.Vec2{}) {
		t.Fatalf("expected world center at origin, got %v", p.WorldCenter())
	}
}

func TestPolygonWorldCenterPipeline(t *testing.T) {
	// Centroid at (2, 0) locally: scale 2 -> (4, 0), rotate 90 -> (0, 4),
	// translate (10, 10) -> (10, 14).
	p := transformedPolygon(square(2, 0, 2), mgl64.Vec2{10, 10}, 90, 2)
	want := mgl64.Vec2{10, 14}
	if !vecAlmostEqual(p.WorldCenter(), want) {
		t.Fatalf("expected world center %v, got %v", want, p.WorldCenter())
	}
}

func TestPolygonAABB(t *testing.T) {
	cases := []struct {
		name       string
		poly       *Polygon
		x, y, w, h float64
	}{
		{
			"empty_zero_rect",
			NewPolygon(nil),
			0, 0, 0, 0,
		},
		{
			"unit_square_at_origin",
			transformedPolygon(square(0, 0, 10), mgl64.Vec2{}, 0, 1),
			-5, -5, 10, 10,
		},
		{
			"translated_square",
			transformedPolygon(square(0, 0, 10), mgl64.Vec2{20, 30}, 0, 1),
			15, 25, 10, 10,
		},
		{
			"scaled_square",
			transformedPolygon(square(0, 0, 10), mgl64.Vec2{}, 0, 2),
			-10, -10, 20, 20,
		},
		{
			"rotated_45_square_grows",
			transformedPolygon(square(0, 0, 10), mgl64.Vec2{}, 45, 1),
			-5 * math.Sqrt2, -5 * math.Sqrt2, 10 * math.Sqrt2, 10 * math.Sqrt2,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			box := c.poly.AABB()
			if !almostEqual(box.X, c.x) || !almostEqual(box.Y, c.y) ||
				!almostEqual(box.Width, c.w) || !almostEqual(box.Height, c.h) {
				t.Fatalf("expected AABB (%v, %v, %v, %v), got (%v, %v, %v, %v)",
					c.x, c.y, c.w, c.h, box.X, box.Y, box.Width, box.Height)
			}
		})
	}
}

func TestShapeAABBUnion(t *testing.T) {
	s := NewShape()
	s.AddPolygon(square(-10, 0, 4))
	s.AddPolygon(square(10, 5, 4))
	s.Transform(mgl64.Vec2{}, 0, 1)

	box, ok := s.AABB()
	if !ok {
		t.Fatalf("expected AABB for non-empty shape")
	}
	if !almostEqual(box.X, -12) || !almostEqual(box.Y, -2) ||
		!almostEqual(box.Width, 24) || !almostEqual(box.Height, 9) {
		t.Fatalf("unexpected union AABB: %+v", box)
	}
}

func TestShapeAABBEmpty(t *testing.T) {
	s := NewShape()
	if _, ok := s.AABB(); ok {
		t.Fatalf("expected no AABB for empty shape")
	}
}
