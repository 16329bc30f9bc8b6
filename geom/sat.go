package geom

import (
	"math"

	"github.com/osuushi/convex/vec"
)

// Range of the vertices' projections onto axis. The axis need not be
// normalized; projections are only ever compared against others on the same
// axis.
func (poly *ConvexPolygon) Project(axis vec.Vector) (min, max float64) {
	min = math.Inf(1)
	max = math.Inf(-1)
	for _, v := range poly.verts {
		d := v.Vector().Dot(axis)
		min = math.Min(min, d)
		max = math.Max(max, d)
	}
	return min, max
}

// Separating axis test. Two convex polygons are disjoint iff the projections
// onto the normal of some edge of either one don't overlap. Projections that
// only touch count as overlapping, so polygons sharing an edge or a vertex
// intersect.
func Intersects(a, b *ConvexPolygon) bool {
	for _, poly := range [2]*ConvexPolygon{a, b} {
		for _, edge := range poly.edges {
			axis := edge.Orthogonal()
			minA, maxA := a.Project(axis)
			minB, maxB := b.Project(axis)
			if maxA < minB || maxB < minA {
				return false
			}
		}
	}
	return true
}

func (poly *ConvexPolygon) Intersects(other *ConvexPolygon) bool {
	return Intersects(poly, other)
}
