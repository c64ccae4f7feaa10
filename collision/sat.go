package collision

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/starwreck/geom"
)

// separationTolerance absorbs floating-point jitter at near-touching
// boundaries: two intervals count as separated only when the gap exceeds
// it, so exact contact reports a (zero-ish) collision instead of
// flickering.
const separationTolerance = 1e-3

// axisParallelDot is the dedup threshold for candidate axes: a normal
// whose absolute dot product with an accepted axis exceeds it is treated
// as the same axis.
const axisParallelDot = 0.999

// Project returns the extremes of verts projected onto axis. The axis is
// assumed unit-length. Empty input projects to (0, 0).
func Project(axis mgl64.Vec2, verts []mgl64.Vec2) (min, max float64) {
	if len(verts) == 0 {
		return 0, 0
	}
	min = verts[0].Dot(axis)
	max = min
	for _, v := range verts[1:] {
		p := v.Dot(axis)
		if p < min {
			min = p
		} else if p > max {
			max = p
		}
	}
	return min, max
}

// Overlap returns the length of the intersection of the intervals
// [minA, maxA] and [minB, maxB], or 0 when they are disjoint.
func Overlap(minA, maxA, minB, maxB float64) float64 {
	return math.Max(0, math.Min(maxA, maxB)-math.Max(minA, minB))
}

// UniqueAxes returns the candidate separating axes of a polygon: one unit
// normal per edge, with near-parallel duplicates discarded. Degenerate
// (near-zero-length) edges are skipped so the normalization never divides
// by zero. Quadratic in vertex count, which is fine at hull sizes.
func UniqueAxes(verts []mgl64.Vec2) []mgl64.Vec2 {
	if len(verts) < 2 {
		return nil
	}

	axes := make([]mgl64.Vec2, 0, len(verts))
	for i := range verts {
		edge := verts[(i+1)%len(verts)].Sub(verts[i])
		if edge.Len() < 1e-12 {
			continue
		}
		normal := geom.Perp(edge).Normalize()

		parallel := false
		for _, axis := range axes {
			if math.Abs(normal.Dot(axis)) > axisParallelDot {
				parallel = true
				break
			}
		}
		if !parallel {
			axes = append(axes, normal)
		}
	}
	return axes
}

// PolygonsCollide runs the separating-axis test over both polygons' axis
// sets. It early-exits on the first separating axis found; otherwise it
// keeps the axis of minimum overlap, orients it so the returned MTV
// pushes a away from b (non-negative dot with the centroid direction
// a→b), and scales it by the overlap. Degenerate polygons never collide.
func PolygonsCollide(a, b *Polygon) (mgl64.Vec2, bool) {
	if len(a.world) == 0 || len(b.world) == 0 {
		return mgl64.Vec2{}, false
	}

	overlap := math.Inf(1)
	var smallest mgl64.Vec2

	test := func(axes []mgl64.Vec2) bool {
		for _, axis := range axes {
			minA, maxA := Project(axis, a.world)
			minB, maxB := Project(axis, b.world)
			if maxA < minB-separationTolerance || maxB < minA-separationTolerance {
				return false
			}
			if o := Overlap(minA, maxA, minB, maxB); o < overlap {
				overlap = o
				smallest = axis
			}
		}
		return true
	}

	if !test(UniqueAxes(a.world)) {
		return mgl64.Vec2{}, false
	}
	if !test(UniqueAxes(b.world)) {
		return mgl64.Vec2{}, false
	}

	// Orient along the centroid direction so the MTV always pushes a
	// toward separation.
	if b.worldCenter.Sub(a.worldCenter).Dot(smallest) < 0 {
		smallest = smallest.Mul(-1)
	}
	return smallest.Mul(overlap), true
}

// ShapesCollide tests every polygon pair across two compound shapes and
// returns the MTV of the first colliding pair. It does not look for the
// deepest contact among simultaneously overlapping pairs; see
// ShapesCollideDeepest for that.
func ShapesCollide(a, b *Shape) (mgl64.Vec2, bool) {
	for _, pa := range a.polygons {
		for _, pb := range b.polygons {
			if mtv, ok := PolygonsCollide(pa, pb); ok {
				return mtv, true
			}
		}
	}
	return mgl64.Vec2{}, false
}

// ShapesCollideDeepest tests every polygon pair and returns the MTV with
// the largest penetration depth, which resolves compound-shape contacts
// more faithfully at the cost of never early-exiting on the first hit.
func ShapesCollideDeepest(a, b *Shape) (mgl64.Vec2, bool) {
	var (
		best    mgl64.Vec2
		deepest float64
		found   bool
	)
	for _, pa := range a.polygons {
		for _, pb := range b.polygons {
			mtv, ok := PolygonsCollide(pa, pb)
			if !ok {
				continue
			}
			if d := mtv.Len(); !found || d > deepest {
				best = mtv
				deepest = d
				found = true
			}
		}
	}
	return best, found
}
