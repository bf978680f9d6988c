package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDist(t *testing.T) {
	tests := []struct {
		name     string
		p, q     Point
		expected float64
	}{
		{name: "same point", p: Pt(1, 1), q: Pt(1, 1), expected: 0},
		{name: "3-4-5", p: Pt(0, 0), q: Pt(3, 4), expected: 5},
		{name: "negative coords", p: Pt(-1, -1), q: Pt(2, 3), expected: 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Dist(tt.p, tt.q), 1e-12)
			assert.InDelta(t, tt.expected, tt.q.Sub(tt.p).Norm(), 1e-12)
		})
	}
}

func TestSegmentDistance(t *testing.T) {
	a, b := Pt(0, 0), Pt(10, 0)

	tests := []struct {
		name     string
		p        Point
		expected float64
	}{
		{name: "above middle", p: Pt(5, 3), expected: 3},
		{name: "before start clamps to a", p: Pt(-3, 4), expected: 5},
		{name: "past end clamps to b", p: Pt(13, 4), expected: 5},
		{name: "on segment", p: Pt(7, 0), expected: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, SegmentDistance(tt.p, a, b), 1e-12)
		})
	}

	assert.InDelta(t, 5.0, SegmentDistance(Pt(3, 4), a, a), 1e-12, "degenerate segment")
}

func TestPolygonContains(t *testing.T) {
	square := []Point{Pt(-1, -1), Pt(1, -1), Pt(1, 1), Pt(-1, 1)}

	assert.True(t, PolygonContains(square, Pt(0, 0)))
	assert.True(t, PolygonContains(square, Pt(0.9, -0.9)))
	assert.False(t, PolygonContains(square, Pt(2, 0)))
	assert.False(t, PolygonContains(square, Pt(0, -1.5)))
	assert.False(t, PolygonContains(nil, Pt(0, 0)))
}

func TestPolygonEdgeDistance(t *testing.T) {
	square := []Point{Pt(-1, -1), Pt(1, -1), Pt(1, 1), Pt(-1, 1)}

	assert.InDelta(t, 1.0, PolygonEdgeDistance(square, Pt(0, 0)), 1e-12)
	assert.InDelta(t, 1.0, PolygonEdgeDistance(square, Pt(2, 0)), 1e-12)
	assert.True(t, math.IsInf(PolygonEdgeDistance(nil, Pt(0, 0)), 1))
}

func TestNearest(t *testing.T) {
	pts := []Point{Pt(10, 0), Pt(1, 1), Pt(-5, 0)}

	idx, d := Nearest(pts, Pt(0, 0))
	assert.Equal(t, 1, idx)
	assert.InDelta(t, math.Sqrt2, d, 1e-12)

	idx, d = Nearest(nil, Pt(0, 0))
	assert.Equal(t, -1, idx)
	assert.True(t, math.IsInf(d, 1))
}

func TestViewport(t *testing.T) {
	v := NewViewport(520, 340, Padding{Top: 30, Right: 30, Bottom: 40, Left: 45}, -1, 1, 0, 1)

	assert.InDelta(t, 45.0, v.ToScreenX(-1), 1e-9)
	assert.InDelta(t, 490.0, v.ToScreenX(1), 1e-9)
	assert.InDelta(t, 30.0, v.ToScreenY(1), 1e-9)
	assert.InDelta(t, 300.0, v.ToScreenY(0), 1e-9)

	for _, x := range []float64{-1, -0.25, 0, 0.7, 1} {
		assert.InDelta(t, x, v.ToDomainX(v.ToScreenX(x)), 1e-9)
	}
	for _, y := range []float64{0, 0.3, 1} {
		assert.InDelta(t, y, v.ToDomainY(v.ToScreenY(y)), 1e-9)
	}
}

func TestScaleAndClamp(t *testing.T) {
	assert.InDelta(t, 300.0, Scale(1, 0, 2, 50, 550), 1e-9)
	assert.InDelta(t, 50.0, Scale(1, 1, 1, 50, 550), 1e-9)

	assert.InDelta(t, 10.0, Clamp(5, 10, 120), 0)
	assert.InDelta(t, 120.0, Clamp(500, 10, 120), 0)
	assert.InDelta(t, 45.0, Clamp(45, 10, 120), 0)
}
