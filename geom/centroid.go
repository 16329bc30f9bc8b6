package geom

import (
	"math"

	"github.com/osuushi/convex/vec"
)

// Signed area by the shoelace formula. Positive for counterclockwise vertices.
func (poly *ConvexPolygon) SignedArea() float64 {
	var twiceArea float64
	n := len(poly.verts)
	for i, p := range poly.verts {
		q := poly.verts[CircularIndex(i+1, n)]
		twiceArea += p.X*q.Y - q.X*p.Y
	}
	return twiceArea / 2
}

func (poly *ConvexPolygon) Area() float64 {
	return math.Abs(poly.SignedArea())
}

// Area centroid of the polygon, accumulating the area and both moments in a
// single pass. Fails only if the signed area is zero, which a transform can
// cause but construction can't.
func (poly *ConvexPolygon) Centroid() (vec.Point, error) {
	var a, cx, cy float64
	n := len(poly.verts)
	for i, p := range poly.verts {
		q := poly.verts[CircularIndex(i+1, n)]
		cross := p.X*q.Y - q.X*p.Y
		a += cross
		cx += (p.X + q.X) * cross
		cy += (p.Y + q.Y) * cross
	}
	a /= 2

	if a == 0 || math.IsNaN(a) {
		return vec.Point{}, degenerate("centroid")
	}
	return vec.Point{X: cx / (6 * a), Y: cy / (6 * a)}, nil
}

// Like Centroid, but panics with the geometry error. Only for use behind
// HandlePanicRecover.
func (poly *ConvexPolygon) MustCentroid() vec.Point {
	c, err := poly.Centroid()
	if err != nil {
		fatal(err)
	}
	return c
}
