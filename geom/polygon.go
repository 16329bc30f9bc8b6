// Package geom implements convex polygons in the plane: validation on
// construction, centroid, affine transforms, and an overlap test based on the
// separating axis theorem.
package geom

import (
	"fmt"
	"strings"

	"github.com/osuushi/convex/vec"
)

type Winding int

const (
	CounterClockwise Winding = 1
	Clockwise        Winding = -1
)

func (w Winding) String() string {
	if w == Clockwise {
		return "CW"
	}
	return "CCW"
}

// A convex polygon. The vertices are kept in the order they were given, and
// the edges are always derived from them: Edges()[i] is the vector from vertex
// i to vertex i+1 (wrapping around). A polygon only exists if construction
// validated it, but transforms don't re-validate, so a caller who scales by a
// negative or zero factor gets what they asked for.
type ConvexPolygon struct {
	verts   []vec.Point
	edges   []vec.Vector
	winding Winding
}

// Build a convex polygon from an ordered vertex list, which may wind either
// way. The points are copied.
func New(points []vec.Point) (*ConvexPolygon, error) {
	if len(points) < 3 {
		return nil, tooFewPoints()
	}

	poly := &ConvexPolygon{verts: make([]vec.Point, len(points))}
	copy(poly.verts, points)
	poly.rebuildEdges()

	winding, err := validateConvexity(poly.verts)
	if err != nil {
		return nil, err
	}
	poly.winding = winding
	return poly, nil
}

// Like New, but panics with the geometry error. Only for use behind
// HandlePanicRecover.
func MustNew(points []vec.Point) *ConvexPolygon {
	poly, err := New(points)
	if err != nil {
		fatal(err)
	}
	return poly
}

// For every edge, each vertex that isn't one of its endpoints must lie
// strictly on the same side, so the orientations sum to ±(n-2). Summing over
// all vertices rather than checking adjacent triples also catches
// self-intersecting orderings, whose local turns can all agree. The first edge
// fixes the winding, and every other edge has to agree with it.
func validateConvexity(verts []vec.Point) (Winding, error) {
	n := len(verts)
	var winding Winding
	for i := range verts {
		a := verts[i]
		b := verts[CircularIndex(i+1, n)]

		sum := 0
		for j, c := range verts {
			if j == i || j == CircularIndex(i+1, n) {
				continue
			}
			sum += Orient2D(a, b, c)
		}

		switch {
		case sum == n-2 && winding != Clockwise:
			winding = CounterClockwise
		case sum == 2-n && winding != CounterClockwise:
			winding = Clockwise
		default:
			return 0, notConvex(i)
		}
	}
	return winding, nil
}

// Must be called whenever verts changes.
func (poly *ConvexPolygon) rebuildEdges() {
	n := len(poly.verts)
	if len(poly.edges) != n {
		poly.edges = make([]vec.Vector, n)
	}
	for i, v := range poly.verts {
		poly.edges[i] = poly.verts[CircularIndex(i+1, n)].Sub(v)
	}
}

func (poly *ConvexPolygon) Len() int {
	return len(poly.verts)
}

// A copy of the vertices.
func (poly *ConvexPolygon) Vertices() []vec.Point {
	result := make([]vec.Point, len(poly.verts))
	copy(result, poly.verts)
	return result
}

// A copy of the edges.
func (poly *ConvexPolygon) Edges() []vec.Vector {
	result := make([]vec.Vector, len(poly.edges))
	copy(result, poly.edges)
	return result
}

// The winding of the vertices as given to New. Transforms don't update this,
// so a mirroring scale leaves it stale.
func (poly *ConvexPolygon) Winding() Winding {
	return poly.winding
}

// Computed from the current vertices, so unlike Winding, it reflects mirroring.
func (poly *ConvexPolygon) IsCCW() bool {
	return poly.SignedArea() > 0
}

func (poly *ConvexPolygon) String() string {
	verts := make([]string, len(poly.verts))
	for i, v := range poly.verts {
		verts[i] = v.String()
	}
	edges := make([]string, len(poly.edges))
	for i, e := range poly.edges {
		edges[i] = e.String()
	}
	return fmt.Sprintf("No. of Vertices: %d\nVertices %s\nEdges %s",
		len(poly.verts),
		strings.Join(verts, ", "),
		strings.Join(edges, ", "),
	)
}
