package convergence

import "math"

// ε–δ slider ranges.
const (
	MinEpsilon     = 0.05
	MaxEpsilon     = 1.5
	DefaultEpsilon = 0.5
	MinDelta       = 0.02
	MaxDelta       = 1.5
	DefaultDelta   = 0.4
)

// ClampEpsilon clamps an ε–δ tolerance.
func ClampEpsilon(eps float64) float64 {
	return math.Max(MinEpsilon, math.Min(MaxEpsilon, eps))
}

// ClampDelta clamps an ε–δ window half-width.
func ClampDelta(delta float64) float64 {
	return math.Max(MinDelta, math.Min(MaxDelta, delta))
}

// TracePoint is one probe of the δ-window and where f sends it.
type TracePoint struct {
	X, Y  float64
	InEps bool
}

// Trace places n probes inside (X0-δ, X0+δ), alternating sides and moving
// outward, and reports whether f maps each into the ε-band around Y0.
// Probes outside the open domain or too close to a singular X0 are dropped.
func Trace(f Function, eps, delta float64, n int) []TracePoint {
	out := make([]TracePoint, 0, n)
	denom := math.Ceil(float64(n)/2) + 1
	for i := 1; i <= n; i++ {
		side := -1.0
		if i%2 == 0 {
			side = 1
		}
		frac := math.Ceil(float64(i)/2) / denom
		x := f.X0 + side*frac*delta
		if x <= f.Domain.Min || x >= f.Domain.Max {
			continue
		}
		if f.Singular && math.Abs(x-f.X0) < TraceGap {
			continue
		}
		y := f.Fn(x)
		out = append(out, TracePoint{X: x, Y: y, InEps: math.Abs(y-f.Y0) < eps})
	}
	return out
}

// AllInside reports whether every trace point landed in the ε-band.
func AllInside(trace []TracePoint) bool {
	for _, tp := range trace {
		if !tp.InEps {
			return false
		}
	}
	return true
}
