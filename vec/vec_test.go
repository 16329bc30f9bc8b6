package vec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointArithmetic(t *testing.T) {
	p := Point{1, 2}
	q := Point{4, -2}

	assert.Equal(t, Vector{3, -4}, q.Sub(p))
	assert.Equal(t, q, p.Add(q.Sub(p)))
	assert.Equal(t, Vector{1, 2}, p.Vector())
}

func TestVectorArithmetic(t *testing.T) {
	v := Vector{3, 4}
	w := Vector{-1, 2}

	assert.Equal(t, Vector{2, 6}, v.Add(w))
	assert.Equal(t, Vector{4, 2}, v.Sub(w))
	assert.Equal(t, Vector{1.5, 2}, v.Scale(0.5))
	assert.Equal(t, Vector{-3, -4}, v.Neg())
	assert.Equal(t, 5.0, v.Dot(w))
	assert.Equal(t, 10.0, v.Cross(w))
	assert.Equal(t, -10.0, w.Cross(v))
	assert.Equal(t, 5.0, v.Norm())
}

func TestOrthogonal(t *testing.T) {
	v := Vector{3, 4}
	o := v.Orthogonal()
	assert.Equal(t, Vector{-4, 3}, o)
	assert.Equal(t, 0.0, v.Dot(o))
	// A quarter turn counterclockwise means positive cross product
	assert.Greater(t, v.Cross(o), 0.0)
}

func TestString(t *testing.T) {
	assert.Equal(t, "x: 1 y: 2.5", Point{1, 2.5}.String())
	assert.Equal(t, "x: -3 y: 0", Vector{-3, 0}.String())
}
