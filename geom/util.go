package geom

import (
	"math"

	"github.com/osuushi/convex/vec"
)

// Tolerance used by Equal. Construction does not use it: convexity is decided
// on exact signs, so a nearly collinear triple is still accepted.
const Epsilon = 1e-9

// Tolerance based equality, for comparing results of transforms, which
// accumulate rounding error.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

func PointsEqual(p, q vec.Point) bool {
	return Equal(p.X, q.X) && Equal(p.Y, q.Y)
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives
// positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Orientation of c relative to the directed line a→b: 1 if c is strictly to
// the left (counterclockwise turn), -1 if strictly to the right, and 0 if the
// three points are collinear.
func Orient2D(a, b, c vec.Point) int {
	signedArea := b.Sub(a).Cross(c.Sub(a))
	switch {
	case signedArea > 0:
		return 1
	case signedArea < 0:
		return -1
	default:
		return 0
	}
}
