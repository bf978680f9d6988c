package region

import (
	"math"

	"github.com/Veraticus/analysis-viz/internal/geom"
)

// Classification is the position of an ε-ball relative to a region.
type Classification int

const (
	// Interior means the whole ball lies inside the region.
	Interior Classification = iota
	// Boundary means the ball meets both the region and its complement.
	Boundary
	// Exterior means the whole ball lies outside the region.
	Exterior
)

func (c Classification) String() string {
	switch c {
	case Interior:
		return "interior"
	case Boundary:
		return "boundary"
	case Exterior:
		return "exterior"
	default:
		return "unknown"
	}
}

// Label is the human-readable name shown next to a probe.
func (c Classification) Label() string {
	switch c {
	case Interior:
		return "Interior Point"
	case Boundary:
		return "Boundary Point"
	case Exterior:
		return "Exterior Point"
	default:
		return "Unknown"
	}
}

// Epsilon bounds for the probe ball, in display units.
const (
	MinEpsilon     = 10.0
	MaxEpsilon     = 120.0
	DefaultEpsilon = 45.0
	EpsilonStep    = 5.0
)

// ClampEpsilon limits eps to the range the widgets accept.
func ClampEpsilon(eps float64) float64 {
	return geom.Clamp(eps, MinEpsilon, MaxEpsilon)
}

// Classify returns the signed distance from p to the boundary of s and the
// classification of the ε-ball around p. A point exactly on the boundary is
// Boundary for every positive eps.
func Classify(s Shape, p geom.Point, eps float64) (float64, Classification) {
	d := SignedDistance(s, p)
	switch {
	case d < -eps:
		return d, Interior
	case d > eps:
		return d, Exterior
	default:
		return d, Boundary
	}
}

// Sample is a point on the rim of a probe ball.
type Sample struct {
	Point geom.Point
	InSet bool
}

// BoundarySamples returns n evenly spaced points on the circle of radius eps
// around p, each marked with whether it lies in s. For a Boundary probe the
// samples show the ball reaching both the set and its complement.
func BoundarySamples(s Shape, p geom.Point, eps float64, n int) []Sample {
	if n <= 0 {
		return nil
	}
	samples := make([]Sample, 0, n)
	for i := 0; i < n; i++ {
		angle := float64(i) / float64(n) * 2 * math.Pi
		q := p.Add(geom.Polar(eps, angle))
		samples = append(samples, Sample{Point: q, InSet: Contains(s, q)})
	}
	return samples
}
