package collision

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/starwreck/geom"
)

// Grid is a uniform spatial partition of a bounded world. Each cell keeps
// an insertion-ordered bucket of entity ids whose AABB overlaps the cell.
// The grid is an index, not authoritative geometry: callers own the
// mapping from id to AABB and must keep entries in sync as bodies move.
type Grid struct {
	cellSize float64
	cols     int
	rows     int
	cells    [][]int
}

// NewGrid partitions a worldW x worldH extent into square cells. Column
// and row counts round up so the grid always covers the full extent.
func NewGrid(worldW, worldH, cellSize float64) *Grid {
	cols := int(math.Ceil(worldW / cellSize))
	if cols < 1 {
		cols = 1
	}
	rows := int(math.Ceil(worldH / cellSize))
	if rows < 1 {
		rows = 1
	}
	return &Grid{
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		cells:    make([][]int, cols*rows),
	}
}

func (g *Grid) Cols() int         { return g.cols }
func (g *Grid) Rows() int         { return g.rows }
func (g *Grid) CellSize() float64 { return g.cellSize }

// CellKey returns the flattened index of the cell containing p, clamped
// to the grid. The world update loop uses it to detect when a body's
// pivot crosses a cell boundary without rescanning the covered range.
func (g *Grid) CellKey(p mgl64.Vec2) int {
	return g.clampCol(p.X()) + g.clampRow(p.Y())*g.cols
}

// Insert adds id to every cell covered by box.
func (g *Grid) Insert(id int, box geom.Rect) {
	g.eachCell(box, func(idx int) {
		g.cells[idx] = append(g.cells[idx], id)
	})
}

// Remove deletes id from every cell covered by box, preserving the order
// of the remaining ids so later queries stay deterministic. The box must
// be the one the id was inserted with.
func (g *Grid) Remove(id int, box geom.Rect) {
	g.eachCell(box, func(idx int) {
		bucket := g.cells[idx]
		n := 0
		for _, v := range bucket {
			if v != id {
				bucket[n] = v
				n++
			}
		}
		g.cells[idx] = bucket[:n]
	})
}

// Query invokes visit for every id found in any cell covered by area. An
// id spanning several covered cells, or left stale by a missed re-sync,
// is visited once per cell it appears in: callers needing exactly-once
// semantics must deduplicate. The grid must not be mutated from inside
// visit.
func (g *Grid) Query(area geom.Rect, visit func(id int)) {
	g.eachCell(area, func(idx int) {
		for _, id := range g.cells[idx] {
			visit(id)
		}
	})
}

func (g *Grid) eachCell(box geom.Rect, fn func(idx int)) {
	c0 := g.clampCol(box.X)
	c1 := g.clampCol(box.X + box.Width)
	r0 := g.clampRow(box.Y)
	r1 := g.clampRow(box.Y + box.Height)
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			fn(c + r*g.cols)
		}
	}
}

func (g *Grid) clampCol(x float64) int {
	c := int(x / g.cellSize)
	if c < 0 {
		return 0
	}
	if c >= g.cols {
		return g.cols - 1
	}
	return c
}

func (g *Grid) clampRow(y float64) int {
	r := int(y / g.cellSize)
	if r < 0 {
		return 0
	}
	if r >= g.rows {
		return g.rows - 1
	}
	return r
}
