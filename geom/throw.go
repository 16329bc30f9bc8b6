package geom

import (
	"fmt"

	"github.com/pkg/errors"
)

// Returned when a vertex list can't be a convex polygon. Edge is the index of
// the first edge whose orientation check failed, or -1 if there were too few
// points to check anything.
type ConvexityError struct {
	Reason string
	Edge   int
}

func (e *ConvexityError) Error() string {
	return e.Reason
}

// Returned when a computation divides by a polygon's signed area and that area
// is zero. A validated polygon can only get here if a transform collapsed it,
// e.g. Scale(0, 1).
type DegenerateGeometryError struct {
	Op string
}

func (e *DegenerateGeometryError) Error() string {
	return fmt.Sprintf("%s: polygon has zero signed area", e.Op)
}

func tooFewPoints() error {
	return errors.WithStack(&ConvexityError{Reason: "too few points", Edge: -1})
}

func notConvex(edge int) error {
	return errors.WithStack(&ConvexityError{Reason: "points do not form a convex polygon", Edge: edge})
}

func degenerate(op string) error {
	return errors.WithStack(&DegenerateGeometryError{Op: op})
}

// Reports whether err is, or wraps, one of the geometry errors above.
func IsGeometryError(err error) bool {
	var convexityErr *ConvexityError
	var degenerateErr *DegenerateGeometryError
	return errors.As(err, &convexityErr) || errors.As(err, &degenerateErr)
}

// Operations over many polygons would need to thread an error out of every
// inner loop. Instead, they use the Must variants, which panic with a geometry
// error, and the public API recovers to convert back to an error.

// Panic with err, which is expected to be a geometry error.
func fatal(err error) {
	panic(err)
}

// Use in a deferred function as HandlePanicRecover(recover()). Geometry errors
// are returned; any other panic is re-raised.
func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if err, ok := r.(error); ok && IsGeometryError(err) {
			return err
		}
		panic(r)
	}
	return nil
}
