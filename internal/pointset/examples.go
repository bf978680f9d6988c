package pointset

import (
	"fmt"
	"math"
	"time"

	"github.com/Veraticus/analysis-viz/internal/common"
	"github.com/Veraticus/analysis-viz/internal/geom"
	"github.com/valyala/fastrand"
)

// Epsilon bounds for the probe ball, in display units.
const (
	MinEpsilon     = 8.0
	MaxEpsilon     = 160.0
	DefaultEpsilon = 50.0
	EpsilonStep    = 5.0
)

// ClampEpsilon limits eps to the range the widget accepts.
func ClampEpsilon(eps float64) float64 {
	return geom.Clamp(eps, MinEpsilon, MaxEpsilon)
}

// Random is the source of uniform samples in [0, 1) used to build the
// randomized example sets.
type Random interface {
	Float64() float64
}

// FastRandom adapts fastrand.RNG to Random.
type FastRandom struct {
	rng fastrand.RNG
}

// NewRandom returns a seeded generator. Seed 0 seeds from the clock.
func NewRandom(seed uint32) *FastRandom {
	r := &FastRandom{}
	if seed == 0 {
		seed = uint32(time.Now().UnixNano()) | 1
	}
	r.rng.Seed(seed)
	return r
}

// Float64 returns a uniform sample in [0, 1).
func (r *FastRandom) Float64() float64 {
	return float64(r.rng.Uint32()) / (1 << 32)
}

// Example describes a named point set.
type Example struct {
	Key         string
	Name        string
	Description string
}

// Examples lists the point sets in display order.
func Examples() []Example {
	return []Example{
		{
			Key:         "dense_disk",
			Name:        "Disk+Outliers",
			Description: "A dense disk (all points are accumulation points) with 3 isolated outliers far away.",
		},
		{
			Key:         "sequence",
			Name:        "1/n",
			Description: "Points at x = 1/n. The origin (x=0) is an accumulation point that is NOT in the set.",
		},
		{
			Key:         "lattice",
			Name:        "Lattice",
			Description: "Evenly spaced grid — every point is isolated (a small enough ball misses all neighbors).",
		},
		{
			Key:         "clusters",
			Name:        "Clusters",
			Description: "Two dense clusters with isolated points in the gap between them.",
		},
	}
}

// LookupExample finds an example by key.
func LookupExample(key string) (Example, error) {
	for _, ex := range Examples() {
		if ex.Key == key {
			return ex, nil
		}
	}
	return Example{}, fmt.Errorf("%w: %q", common.ErrUnknownExample, key)
}

// Layout constants of the example sets.
const (
	diskPoints      = 600
	sequenceTerms   = 25
	LatticeSpacing  = 55.0
	clusterPoints   = 200
	clusterRadius   = 75.0
	clusterDistance = 135.0
)

// Generate builds the example set key for a surface of width x height with
// its origin at the surface center.
func Generate(key string, width, height float64, rng Random) (PointSet, error) {
	c := geom.Pt(width/2, height/2)
	minWH := math.Min(width, height)

	var pts PointSet
	switch key {
	case "dense_disk":
		r := minWH * 0.22
		pts = make(PointSet, 0, diskPoints+3)
		for i := 0; i < diskPoints; i++ {
			pts = append(pts, c.Add(uniformInDisk(rng, r)))
		}
		pts = append(pts,
			c.Add(geom.Pt(r+90, -50)),
			c.Add(geom.Pt(-r-100, 40)),
			c.Add(geom.Pt(50, -r-80)),
		)
	case "sequence":
		pts = make(PointSet, 0, sequenceTerms)
		for n := 1; n <= sequenceTerms; n++ {
			pts = append(pts, c.Add(geom.Pt(SequenceScale(width, height)/float64(n), 0)))
		}
	case "lattice":
		pts = make(PointSet, 0, 9*7)
		for i := -4; i <= 4; i++ {
			for j := -3; j <= 3; j++ {
				pts = append(pts, c.Add(geom.Pt(float64(i)*LatticeSpacing, float64(j)*LatticeSpacing)))
			}
		}
	case "clusters":
		pts = make(PointSet, 0, 2*clusterPoints+2)
		for _, dx := range []float64{-clusterDistance, clusterDistance} {
			center := c.Add(geom.Pt(dx, 0))
			for i := 0; i < clusterPoints; i++ {
				pts = append(pts, center.Add(uniformInDisk(rng, clusterRadius)))
			}
		}
		pts = append(pts, c.Add(geom.Pt(0, -30)), c.Add(geom.Pt(0, 30)))
	default:
		return nil, fmt.Errorf("%w: %q", common.ErrUnknownExample, key)
	}
	return pts, nil
}

// SequenceScale is the display length of the term 1/1 of the sequence set.
func SequenceScale(width, height float64) float64 {
	return math.Min(width, height) * 0.45
}

func uniformInDisk(rng Random, r float64) geom.Point {
	angle := rng.Float64() * math.Pi * 2
	return geom.Polar(math.Sqrt(rng.Float64())*r, angle)
}
