// Package sequence computes the sequence diagrams: Cauchy-style sequences
// and their tail indices, approximation from below, the √2 grid and the
// order relation built from equivalent sequences.
package sequence

import "math"

// Parameters of the sequence-limit views.
const (
	Limit      = 1.5
	LimitTerms = 25

	DefaultRadius = 0.3
	MinRadius     = 0.1
	MaxRadius     = 0.8
	RadiusStep    = 0.05

	DefaultLowerBound = 1.2
	MinLowerBound     = 0.9
	MaxLowerBound     = 1.5
	LowerBoundStep    = 0.05
)

// CauchyTerms returns limit + a/k + b·sin(1.5k)/k for k = 1..n.
func CauchyTerms(limit, a, b float64, n int) []float64 {
	seq := make([]float64, n)
	for k := 1; k <= n; k++ {
		fk := float64(k)
		seq[k-1] = limit + a/fk + b*math.Sin(1.5*fk)/fk
	}
	return seq
}

// WithinTerms is the sequence of the r-neighborhood view.
func WithinTerms() []float64 {
	return CauchyTerms(Limit, 0.8, 0.2, LimitTerms)
}

// AboveTerms is the sequence of the lower-bound view.
func AboveTerms() []float64 {
	return CauchyTerms(Limit, 0.6, 0.15, LimitTerms)
}

// IndexWithin returns the 1-based N such that every term from N on lies
// strictly within r of limit. It is len(seq)+1 when even the last term
// falls outside.
func IndexWithin(seq []float64, limit, r float64) int {
	n := 1
	for k, v := range seq {
		if math.Abs(v-limit) >= r {
			n = k + 2
		}
	}
	return n
}

// IndexAbove returns the 1-based N such that every term from N on is at
// least a.
func IndexAbove(seq []float64, a float64) int {
	n := 1
	for k, v := range seq {
		if v < a {
			n = k + 2
		}
	}
	return n
}

// Step moves v by delta and clamps it to [lo, hi], rounding to the step grid
// to keep repeated key presses from accumulating float error.
func Step(v, delta, lo, hi float64) float64 {
	v = math.Round((v+delta)/math.Abs(delta)) * math.Abs(delta)
	return math.Max(lo, math.Min(hi, v))
}
