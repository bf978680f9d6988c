package convergence

import "math"

// Power-family slider ranges.
const (
	MinPower         = 1
	MaxPower         = 30
	DefaultPower     = 3
	MinPowerEpsilon  = 0.01
	MaxPowerEpsilon  = 0.5
	DefaultPowerEps  = 0.2
	PowerEpsilonStep = 0.01
	PowerSampleSteps = 400
)

// Plot windows of the two power-family panels.
var (
	PointwiseDomain = Range{-0.99, 0.99}
	PointwiseRange  = Range{-0.3, 1.1}
	UniformDomain   = Range{-0.5, 0.5}
	UniformRange    = Range{-0.15, 0.35}
)

// ClampPower clamps n to [MinPower, MaxPower].
func ClampPower(n int) int {
	if n < MinPower {
		return MinPower
	}
	if n > MaxPower {
		return MaxPower
	}
	return n
}

// ClampPowerEpsilon clamps the power-family ε.
func ClampPowerEpsilon(eps float64) float64 {
	return math.Max(MinPowerEpsilon, math.Min(MaxPowerEpsilon, eps))
}

// Power returns f_n(x) = xⁿ, keeping the sign of x for odd n.
func Power(n int) func(float64) float64 {
	fn := float64(n)
	return func(x float64) float64 {
		if x >= 0 {
			return math.Pow(x, fn)
		}
		v := math.Pow(-x, fn)
		if n%2 == 0 {
			return v
		}
		return -v
	}
}

// PointwiseSupEstimate is the displayed sup|xⁿ| on (-1, 1). It evaluates at
// the plot edge 0.99 rather than computing the supremum, which is 1.
func PointwiseSupEstimate(n int) float64 {
	return math.Pow(0.99, float64(n))
}

// UniformSup is sup|xⁿ| on [-0.5, 0.5].
func UniformSup(n int) float64 {
	return math.Pow(0.5, float64(n))
}

// InsideBand reports whether a sup error fits strictly inside the ε-band.
func InsideBand(sup, eps float64) bool {
	return sup < eps
}

// EscapeX is where |xⁿ| reaches ε; beyond it f_n leaves the band.
func EscapeX(eps float64, n int) float64 {
	return math.Pow(eps, 1/float64(n))
}

// Band samples the ε-band around fn over domain, clipped to the vertical window.
func Band(fn func(float64) float64, eps float64, domain, window Range, steps int) (upper, lower []float64) {
	pts := Sample(fn, domain.Min, domain.Max, steps)
	upper = make([]float64, len(pts))
	lower = make([]float64, len(pts))
	for i, p := range pts {
		upper[i] = math.Min(window.Max, p.Y+eps)
		lower[i] = math.Max(window.Min, p.Y-eps)
	}
	return upper, lower
}
