package geom

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/osuushi/convex/vec"
)

// An affine map of the plane, as a homogeneous 3x3 matrix.
type Affine struct {
	m mgl64.Mat3
}

func Identity() Affine {
	return Affine{mgl64.Ident3()}
}

func Translation(v vec.Vector) Affine {
	return Affine{mgl64.Translate2D(v.X, v.Y)}
}

// Counterclockwise rotation by angle radians about pivot.
func RotationAbout(angle float64, pivot vec.Point) Affine {
	return about(pivot, mgl64.HomogRotate2D(angle))
}

// Independent scaling of each axis, keeping center fixed.
func ScalingAbout(sx, sy float64, center vec.Point) Affine {
	return about(center, mgl64.Scale2D(sx, sy))
}

// Conjugate a linear map so it fixes p instead of the origin.
func about(p vec.Point, linear mgl64.Mat3) Affine {
	toOrigin := mgl64.Translate2D(-p.X, -p.Y)
	back := mgl64.Translate2D(p.X, p.Y)
	return Affine{back.Mul3(linear).Mul3(toOrigin)}
}

// The map that applies a, then next.
func (a Affine) Then(next Affine) Affine {
	return Affine{next.m.Mul3(a.m)}
}

func (a Affine) Apply(p vec.Point) vec.Point {
	v := a.m.Mul3x1(mgl64.Vec3{p.X, p.Y, 1})
	return vec.Point{X: v[0], Y: v[1]}
}

// Replace every vertex with its image under a and rebuild the edges. Convexity
// is not re-checked.
func (poly *ConvexPolygon) Transform(a Affine) {
	verts := make([]vec.Point, len(poly.verts))
	for i, v := range poly.verts {
		verts[i] = a.Apply(v)
	}
	poly.verts = verts
	poly.rebuildEdges()
}

func (poly *ConvexPolygon) Translate(v vec.Vector) {
	poly.Transform(Translation(v))
}

// Rotate counterclockwise by angle radians about the centroid.
func (poly *ConvexPolygon) Rotate(angle float64) error {
	pivot, err := poly.Centroid()
	if err != nil {
		return err
	}
	poly.RotateAbout(angle, pivot)
	return nil
}

func (poly *ConvexPolygon) RotateAbout(angle float64, pivot vec.Point) {
	poly.Transform(RotationAbout(angle, pivot))
}

// Scale each vertex's offset from the centroid by sx horizontally and sy
// vertically. The centroid is recomputed on every call. Zero or negative
// factors are allowed and may flatten or mirror the polygon.
func (poly *ConvexPolygon) Scale(sx, sy float64) error {
	center, err := poly.Centroid()
	if err != nil {
		return err
	}
	poly.Transform(ScalingAbout(sx, sy, center))
	return nil
}
