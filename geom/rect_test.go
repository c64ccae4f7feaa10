package geom

import "testing"

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 0, Y: 0, Width: 10, Height: 10}

	cases := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlapping", Rect{X: 5, Y: 5, Width: 10, Height: 10}, true},
		{"contained", Rect{X: 2, Y: 2, Width: 4, Height: 4}, true},
		{"disjoint", Rect{X: 20, Y: 0, Width: 5, Height: 5}, false},
		{"shared_right_edge", Rect{X: 10, Y: 0, Width: 5, Height: 10}, false},
		{"shared_bottom_edge", Rect{X: 0, Y: 10, Width: 10, Height: 5}, false},
		{"shared_corner", Rect{X: 10, Y: 10, Width: 5, Height: 5}, false},
		{"just_inside_edge", Rect{X: 9.999, Y: 0, Width: 5, Height: 10}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := base.Intersects(c.other); got != c.want {
				t.Fatalf("Intersects(%+v) = %v, want %v", c.other, got, c.want)
			}
			// Intersection is symmetric.
			if got := c.other.Intersects(base); got != c.want {
				t.Fatalf("reverse Intersects = %v, want %v", got, c.want)
			}
		})
	}
}

func TestRectUnion(t *testing.T) {
	cases := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{
			"disjoint",
			Rect{X: 0, Y: 0, Width: 10, Height: 10},
			Rect{X: 20, Y: 30, Width: 10, Height: 10},
			Rect{X: 0, Y: 0, Width: 30, Height: 40},
		},
		{
			"contained",
			Rect{X: 0, Y: 0, Width: 10, Height: 10},
			Rect{X: 2, Y: 2, Width: 4, Height: 4},
			Rect{X: 0, Y: 0, Width: 10, Height: 10},
		},
		{
			"negative_origin",
			Rect{X: -5, Y: -5, Width: 10, Height: 10},
			Rect{X: 0, Y: 0, Width: 10, Height: 10},
			Rect{X: -5, Y: -5, Width: 15, Height: 15},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.a.Union(c.b); got != c.want {
				t.Fatalf("Union = %+v, want %+v", got, c.want)
			}
			if got := c.b.Union(c.a); got != c.want {
				t.Fatalf("reverse Union = %+v, want %+v", got, c.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 10, Height: 10}

	cases := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 5, 5, true},
		{"top_left_corner", 0, 0, true},
		{"left_edge", 0, 5, true},
		{"right_edge", 10, 5, false},
		{"bottom_edge", 5, 10, false},
		{"bottom_right_corner", 10, 10, false},
		{"outside", -1, 5, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := r.Contains(c.x, c.y); got != c.want {
				t.Fatalf("Contains(%v, %v) = %v, want %v", c.x, c.y, got, c.want)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := Rect{X: 3, Y: -4, Width: 10, Height: 20}
	if r.MinX() != 3 || r.MaxX() != 13 || r.MinY() != -4 || r.MaxY() != 16 {
		t.Fatalf("unexpected edges: %v %v %v %v", r.MinX(), r.MaxX(), r.MinY(), r.MaxY())
	}
}
