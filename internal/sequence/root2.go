package sequence

import "math"

// Grid parameters of the √2 view.
const (
	DefaultDenominator = 4
	MinDenominator     = 2
	MaxDenominator     = 20
)

// Sqrt2Grid is the grid k/q on [0, 2] and the best grid approximation of √2
// from below.
type Sqrt2Grid struct {
	Q       int
	Points  []float64
	X       float64
	Epsilon float64
}

// NewSqrt2Grid builds the grid for denominator q, clamped to
// [MinDenominator, MaxDenominator]. X is the largest k/q with (k/q)² < 2.
func NewSqrt2Grid(q int) Sqrt2Grid {
	q = max(MinDenominator, min(MaxDenominator, q))
	g := Sqrt2Grid{Q: q, Epsilon: 1 / float64(q)}
	for k := 0; k <= 2*q; k++ {
		v := float64(k) / float64(q)
		g.Points = append(g.Points, v)
		if v*v < 2 {
			g.X = v
		}
	}
	return g
}

// Upper is X+ε, the next grid point, whose square is at least 2.
func (g Sqrt2Grid) Upper() float64 {
	return g.X + g.Epsilon
}

// Brackets reports whether X < √2 ≤ X+ε.
func (g Sqrt2Grid) Brackets() bool {
	s := math.Sqrt2
	return g.X < s && s <= g.Upper()
}
