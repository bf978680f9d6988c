package region

import (
	"math"
	"testing"

	"github.com/Veraticus/analysis-viz/internal/common"
	"github.com/Veraticus/analysis-viz/internal/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustShape(t *testing.T, s Shape, err error) Shape {
	t.Helper()
	require.NoError(t, err)
	return s
}

func TestClassifyExamples(t *testing.T) {
	tests := []struct {
		name     string
		shape    func(t *testing.T) Shape
		p        geom.Point
		eps      float64
		wantDist float64
		want     Classification
	}{
		{
			name:     "disk exterior",
			shape:    func(t *testing.T) Shape { s, err := NewDisk(100); return mustShape(t, s, err) },
			p:        geom.Pt(150, 0),
			eps:      10,
			wantDist: 50,
			want:     Exterior,
		},
		{
			name:     "square center is interior",
			shape:    func(t *testing.T) Shape { s, err := NewSquare(50); return mustShape(t, s, err) },
			p:        geom.Pt(0, 0),
			eps:      10,
			wantDist: -50,
			want:     Interior,
		},
		{
			name:     "annulus middle of ring",
			shape:    func(t *testing.T) Shape { s, err := NewAnnulus(60, 150); return mustShape(t, s, err) },
			p:        geom.Pt(100, 0),
			eps:      10,
			wantDist: -40,
			want:     Interior,
		},
		{
			name:     "annulus hole",
			shape:    func(t *testing.T) Shape { s, err := NewAnnulus(60, 150); return mustShape(t, s, err) },
			p:        geom.Pt(0, 20),
			eps:      10,
			wantDist: 40,
			want:     Exterior,
		},
		{
			name:     "square corner region",
			shape:    func(t *testing.T) Shape { s, err := NewSquare(50); return mustShape(t, s, err) },
			p:        geom.Pt(53, 54),
			eps:      10,
			wantDist: 5,
			want:     Boundary,
		},
		{
			name:     "star center",
			shape:    func(t *testing.T) Shape { s, err := NewStar(5, 150, 65); return mustShape(t, s, err) },
			p:        geom.Pt(0, 0),
			eps:      10,
			wantDist: -65,
			want:     Interior,
		},
		{
			name:     "star tip",
			shape:    func(t *testing.T) Shape { s, err := NewStar(5, 150, 65); return mustShape(t, s, err) },
			p:        geom.Pt(0, -160),
			eps:      20,
			wantDist: 10,
			want:     Boundary,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.shape(t)
			d, got := Classify(s, tt.p, tt.eps)
			assert.InDelta(t, tt.wantDist, d, 1e-9)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBoundaryPointIsBoundaryForEveryEpsilon(t *testing.T) {
	disk, err := NewDisk(100)
	require.NoError(t, err)

	for _, eps := range []float64{1e-9, 0.5, 10, 120} {
		d, c := Classify(disk, geom.Pt(100, 0), eps)
		assert.InDelta(t, 0.0, d, 0)
		assert.Equal(t, Boundary, c, "eps=%v", eps)
	}
}

func TestSignedDistanceMatchesMembership(t *testing.T) {
	for _, ex := range Examples() {
		t.Run(ex.Key, func(t *testing.T) {
			for x := -200.0; x <= 200; x += 7.3 {
				for y := -200.0; y <= 200; y += 6.1 {
					p := geom.Pt(x, y)
					d := SignedDistance(ex.Shape, p)
					if math.Abs(d) < 1e-9 {
						continue
					}
					assert.Equal(t, Contains(ex.Shape, p), d < 0, "point %v distance %v", p, d)
				}
			}
		})
	}
}

func TestShrinkingEpsilonKeepsStrictClassification(t *testing.T) {
	epsilons := []float64{120, 80, 45, 20, 10, 1, 0.01}

	for _, ex := range Examples() {
		t.Run(ex.Key, func(t *testing.T) {
			for x := -180.0; x <= 180; x += 23 {
				for y := -180.0; y <= 180; y += 19 {
					p := geom.Pt(x, y)
					var settled *Classification
					for _, eps := range epsilons {
						_, c := Classify(ex.Shape, p, eps)
						if settled != nil {
							assert.Equal(t, *settled, c, "point %v eps %v", p, eps)
							continue
						}
						if c != Boundary {
							c := c
							settled = &c
						}
					}
				}
			}
		})
	}
}

func TestClassifyIsIdempotent(t *testing.T) {
	for _, ex := range Examples() {
		p := geom.Pt(37, -81)
		d1, c1 := Classify(ex.Shape, p, 45)
		d2, c2 := Classify(ex.Shape, p, 45)
		assert.InDelta(t, d1, d2, 0)
		assert.Equal(t, c1, c2)
	}
}

func TestConstructorsRejectInvalidParameters(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "zero disk", err: func() error { _, err := NewDisk(0); return err }()},
		{name: "negative square", err: func() error { _, err := NewSquare(-1); return err }()},
		{name: "NaN disk", err: func() error { _, err := NewDisk(math.NaN()); return err }()},
		{name: "inverted annulus", err: func() error { _, err := NewAnnulus(150, 60); return err }()},
		{name: "equal annulus", err: func() error { _, err := NewAnnulus(60, 60); return err }()},
		{name: "one-point star", err: func() error { _, err := NewStar(1, 150, 65); return err }()},
		{name: "inverted star", err: func() error { _, err := NewStar(5, 65, 150); return err }()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, common.ErrInvalidShape)
		})
	}
}

func TestStarVertices(t *testing.T) {
	star, err := NewStar(5, 150, 65)
	require.NoError(t, err)

	pts := StarVertices(star)
	require.Len(t, pts, 10)
	assert.InDelta(t, 0.0, pts[0].X, 1e-9)
	assert.InDelta(t, -150.0, pts[0].Y, 1e-9)
	for i, p := range pts {
		want := 150.0
		if i%2 == 1 {
			want = 65
		}
		assert.InDelta(t, want, p.Norm(), 1e-9)
	}
}

func TestBoundarySamples(t *testing.T) {
	disk, err := NewDisk(100)
	require.NoError(t, err)

	samples := BoundarySamples(disk, geom.Pt(100, 0), 20, 36)
	require.Len(t, samples, 36)

	var in, out int
	for _, s := range samples {
		assert.InDelta(t, 20.0, geom.Dist(s.Point, geom.Pt(100, 0)), 1e-9)
		if s.InSet {
			in++
		} else {
			out++
		}
	}
	assert.Positive(t, in)
	assert.Positive(t, out)
	assert.Nil(t, BoundarySamples(disk, geom.Pt(0, 0), 20, 0))
}

func TestLookupAndEpsilon(t *testing.T) {
	ex, err := Lookup("annulus")
	require.NoError(t, err)
	assert.Equal(t, "Ring", ex.Name)
	assert.Equal(t, Annulus, ex.Shape.Kind)

	_, err = Lookup("hexagon")
	assert.ErrorIs(t, err, common.ErrUnknownShape)

	assert.InDelta(t, MinEpsilon, ClampEpsilon(1), 0)
	assert.InDelta(t, MaxEpsilon, ClampEpsilon(1000), 0)
	assert.Contains(t, Explanation(Interior, 45), "B(x, 45) ⊆ S")
	assert.Equal(t, "Boundary Point", Boundary.Label())
	assert.Equal(t, "star", Star.String())
}
