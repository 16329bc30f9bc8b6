package convex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smoke test. The internals are already tested.
func TestNew(t *testing.T) {
	poly, err := New(Point{X: 1, Y: -1}, Point{X: 1, Y: 1}, Point{X: -1, Y: 1}, Point{X: -1, Y: -1})
	require.NoError(t, err)
	assert.Equal(t, 4, poly.Len())

	_, err = New(Point{X: 0, Y: 0}, Point{X: 1, Y: 1})
	var convexityErr *ConvexityError
	assert.ErrorAs(t, err, &convexityErr)
}

func TestOverlapping(t *testing.T) {
	square := func(x, y float64) []Point {
		return []Point{{X: x, Y: y}, {X: x + 1, Y: y}, {X: x + 1, Y: y + 1}, {X: x, Y: y + 1}}
	}

	pairs, err := Overlapping(
		square(0, 0),
		square(2, 2),
		square(0.5, 0.5),
		square(1, 0),
	)
	require.NoError(t, err)
	assert.Equal(t, []Pair{{0, 2}, {0, 3}, {2, 3}}, pairs)
}

func TestOverlapping_InvalidPolygon(t *testing.T) {
	pairs, err := Overlapping(
		[]Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}},
		[]Point{{X: 0, Y: 0}, {X: 2, Y: 2}, {X: 2, Y: 0}, {X: 0, Y: 2}},
	)
	assert.Nil(t, pairs)
	assert.EqualError(t, err, "points do not form a convex polygon")
}

func TestOverlapping_Empty(t *testing.T) {
	pairs, err := Overlapping()
	assert.NoError(t, err)
	assert.Empty(t, pairs)
}

func TestIntersects(t *testing.T) {
	a, err := New(Point{X: 0, Y: 0}, Point{X: 1, Y: 0}, Point{X: 0, Y: 1})
	require.NoError(t, err)
	b, err := New(Point{X: 1, Y: 1}, Point{X: 2, Y: 1}, Point{X: 1, Y: 2})
	require.NoError(t, err)
	assert.False(t, Intersects(a, b))

	b.Translate(Vector{X: -0.5, Y: -0.5})
	assert.True(t, Intersects(a, b))
}
