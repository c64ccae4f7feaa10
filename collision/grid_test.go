package collision

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/starwreck/geom"
)

func collectQuery(g *Grid, area geom.Rect) []int {
	var got []int
	g.Query(area, func(id int) {
		got = append(got, id)
	})
	return got
}

func TestNewGridDimensions(t *testing.T) {
	cases := []struct {
		name       string
		w, h, cell float64
		cols, rows int
	}{
		{"exact_fit", 1024, 512, 512, 2, 1},
		{"rounds_up", 10000, 15000, 512, 20, 30},
		{"tiny_world_min_one", 10, 10, 512, 1, 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := NewGrid(c.w, c.h, c.cell)
			if g.Cols() != c.cols || g.Rows() != c.rows {
				t.Fatalf("expected %dx%d cells, got %dx%d", c.cols, c.rows, g.Cols(), g.Rows())
			}
		})
	}
}

func TestGridInsertRemoveSymmetry(t *testing.T) {
	g := NewGrid(1000, 1000, 100)
	box := geom.Rect{X: 150, Y: 150, Width: 300, Height: 120}

	g.Insert(7, box)
	if got := collectQuery(g, box); len(got) == 0 {
		t.Fatalf("expected inserted id to be visible")
	}

	g.Remove(7, box)
	if got := collectQuery(g, geom.Rect{X: 0, Y: 0, Width: 1000, Height: 1000}); len(got) != 0 {
		t.Fatalf("expected no trace after remove, got %v", got)
	}
}

func TestGridQueryCompleteness(t *testing.T) {
	// Any id whose AABB overlaps the query region must show up at least
	// once; duplicates are allowed.
	g := NewGrid(1000, 1000, 100)

	boxes := map[int]geom.Rect{
		1: {X: 10, Y: 10, Width: 50, Height: 50},
		2: {X: 240, Y: 240, Width: 50, Height: 50},
		3: {X: 90, Y: 90, Width: 120, Height: 120}, // spans multiple cells
		4: {X: 700, Y: 700, Width: 50, Height: 50},
	}
	for id, box := range boxes {
		g.Insert(id, box)
	}

	area := geom.Rect{X: 0, Y: 0, Width: 300, Height: 300}
	seen := make(map[int]int)
	g.Query(area, func(id int) {
		seen[id]++
	})

	for _, id := range []int{1, 2, 3} {
		if seen[id] == 0 {
			t.Fatalf("expected id %d in query result, got %v", id, seen)
		}
	}
	if seen[4] != 0 {
		t.Fatalf("id 4 lies outside the area, got %v", seen)
	}
}

func TestGridMultiCellDuplicates(t *testing.T) {
	g := NewGrid(1000, 1000, 100)
	// Covers four cells.
	g.Insert(1, geom.Rect{X: 50, Y: 50, Width: 100, Height: 100})

	seen := 0
	g.Query(geom.Rect{X: 0, Y: 0, Width: 250, Height: 250}, func(id int) {
		if id == 1 {
			seen++
		}
	})
	if seen != 4 {
		t.Fatalf("expected 4 visits for a 4-cell span, got %d", seen)
	}
}

func TestGridRemovePreservesOrder(t *testing.T) {
	g := NewGrid(100, 100, 100)
	box := geom.Rect{X: 10, Y: 10, Width: 10, Height: 10}

	for _, id := range []int{3, 1, 4, 2} {
		g.Insert(id, box)
	}
	g.Remove(4, box)

	got := collectQuery(g, box)
	want := []int{3, 1, 2}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected insertion order %v, got %v", want, got)
		}
	}
}

func TestGridClampsOutOfBounds(t *testing.T) {
	g := NewGrid(1000, 1000, 100)

	// Far outside the world on both sides; both clamp to edge cells.
	g.Insert(1, geom.Rect{X: -500, Y: -500, Width: 100, Height: 100})
	g.Insert(2, geom.Rect{X: 1500, Y: 1500, Width: 100, Height: 100})

	if got := collectQuery(g, geom.Rect{X: 0, Y: 0, Width: 50, Height: 50}); len(got) != 1 || got[0] != 1 {
		t.Fatalf("expected clamped id 1 in the corner cell, got %v", got)
	}
	if got := collectQuery(g, geom.Rect{X: 950, Y: 950, Width: 49, Height: 49}); len(got) != 1 || got[0] != 2 {
		t.Fatalf("expected clamped id 2 in the far corner cell, got %v", got)
	}
}

func TestGridCellKey(t *testing.T) {
	g := NewGrid(1000, 1000, 100)

	cases := []struct {
		name string
		p    mgl64.Vec2
		key  int
	}{
		{"origin", mgl64.Vec2{0, 0}, 0},
		{"first_row", mgl64.Vec2{250, 50}, 2},
		{"second_row", mgl64.Vec2{50, 150}, 10},
		{"negative_clamps", mgl64.Vec2{-50, -50}, 0},
		{"beyond_clamps", mgl64.Vec2{5000, 5000}, 99},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := g.CellKey(c.p); got != c.key {
				t.Fatalf("expected cell key %d, got %d", c.key, got)
			}
		})
	}
}

func TestGridCellKeyChangesAcrossBoundary(t *testing.T) {
	g := NewGrid(1000, 1000, 100)
	a := g.CellKey(mgl64.Vec2{99, 0})
	b := g.CellKey(mgl64.Vec2{101, 0})
	if a == b {
		t.Fatalf("expected different keys across a cell boundary, got %d", a)
	}
}
