package sequence

import "math"

// Parameters of the approximation-from-below views.
const (
	DefaultCeilingA = 2.7
	MinCeilingA     = -0.5
	MaxCeilingA     = 5.5
	CeilingStep     = 0.1

	DefaultBelowX = 1.5
	MinBelowX     = 0.5
	MaxBelowX     = 3
	BelowXStep    = 0.1
	BelowTerms    = 20
)

// Ceiling returns the integer m with m < a ≤ m+1.
func Ceiling(a float64) int {
	return int(math.Ceil(a)) - 1
}

// FromBelow returns x_k = (⌈kx⌉-1)/k for k = 1..n. Every term is strictly
// below x and within 1/k of it.
func FromBelow(x float64, n int) []float64 {
	seq := make([]float64, n)
	for k := 1; k <= n; k++ {
		fk := float64(k)
		seq[k-1] = float64(Ceiling(fk*x)) / fk
	}
	return seq
}
