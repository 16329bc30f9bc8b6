// Convex polygons in the plane, with an overlap test based on the separating
// axis theorem.
//
// Polygons are built from an ordered list of vertices, which may wind either
// way but must be strictly convex. Once built, they can be translated, rotated
// and scaled, and tested against each other for overlap. Polygons that only
// touch count as overlapping.
package convex

import (
	"github.com/osuushi/convex/geom"
	"github.com/osuushi/convex/vec"
)

type Point = vec.Point
type Vector = vec.Vector
type Polygon = geom.ConvexPolygon

type ConvexityError = geom.ConvexityError
type DegenerateGeometryError = geom.DegenerateGeometryError

// Build a convex polygon. The error is a *ConvexityError if there are fewer
// than three points or they are not in strictly convex position.
func New(points ...Point) (*Polygon, error) {
	return geom.New(points)
}

func Intersects(a, b *Polygon) bool {
	return geom.Intersects(a, b)
}

// Indexes of two polygons passed to Overlapping, with A < B.
type Pair struct {
	A, B int
}

// Build a polygon from each point list and report every pair that overlaps.
// This checks all pairs, so it is quadratic in the number of polygons. If any
// point list is not a convex polygon, the result is nil and the error is the
// first one found.
func Overlapping(polygonPoints ...[]Point) (result []Pair, err error) {
	defer func() {
		recoveredErr := geom.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	polygons := make([]*Polygon, len(polygonPoints))
	for i, points := range polygonPoints {
		polygons[i] = geom.MustNew(points)
	}
	return OverlappingPolygons(polygons...), nil
}

// Like Overlapping, for polygons that are already built.
func OverlappingPolygons(polygons ...*Polygon) []Pair {
	var result []Pair
	for i, a := range polygons {
		for j := i + 1; j < len(polygons); j++ {
			if geom.Intersects(a, polygons[j]) {
				result = append(result, Pair{i, j})
			}
		}
	}
	return result
}
