// Package vec holds the two value types the geometry kernel is built on. A
// Point is a position in the plane and a Vector is a displacement. They share
// a representation but not an identity: you can add a Vector to a Point, and
// subtracting two Points gives a Vector, but adding two Points is meaningless
// and the types don't allow it.
package vec

import (
	"fmt"
	"math"
)

type Point struct {
	X float64
	Y float64
}

type Vector struct {
	X float64
	Y float64
}

// Both types have this underlying type, which lets the shared arithmetic be
// written once over either of them.
type xy = struct {
	X float64
	Y float64
}

type pair interface {
	~xy
}

func sum[T pair](a, b T) T {
	p, q := xy(a), xy(b)
	return T(xy{p.X + q.X, p.Y + q.Y})
}

func difference[T pair](a, b T) T {
	p, q := xy(a), xy(b)
	return T(xy{p.X - q.X, p.Y - q.Y})
}

func format[T pair](a T) string {
	p := xy(a)
	return fmt.Sprintf("x: %v y: %v", p.X, p.Y)
}

// Move the point by a displacement.
func (p Point) Add(v Vector) Point {
	return sum(p, Point(v))
}

// The displacement from q to p.
func (p Point) Sub(q Point) Vector {
	return Vector(difference(p, q))
}

// Position vector of the point, i.e. its displacement from the origin. This is
// what gets projected onto an axis.
func (p Point) Vector() Vector {
	return Vector(p)
}

func (p Point) String() string {
	return format(p)
}

func (v Vector) Add(w Vector) Vector {
	return sum(v, w)
}

func (v Vector) Sub(w Vector) Vector {
	return difference(v, w)
}

// Scalar multiplication.
func (v Vector) Scale(s float64) Vector {
	return Vector{v.X * s, v.Y * s}
}

func (v Vector) Neg() Vector {
	return Vector{-v.X, -v.Y}
}

func (v Vector) Dot(w Vector) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Z component of the 3D cross product. Positive when w is counterclockwise
// from v.
func (v Vector) Cross(w Vector) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Euclidean length.
func (v Vector) Norm() float64 {
	return math.Hypot(v.X, v.Y)
}

// The vector rotated a quarter turn counterclockwise.
func (v Vector) Orthogonal() Vector {
	return Vector{-v.Y, v.X}
}

func (v Vector) String() string {
	return format(v)
}
