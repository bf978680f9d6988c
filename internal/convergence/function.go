// Package convergence computes the curves, bands and sample traces of the
// ε–δ limit and pointwise/uniform convergence diagrams.
package convergence

import (
	"fmt"
	"math"

	"github.com/Veraticus/analysis-viz/internal/common"
	"github.com/Veraticus/analysis-viz/internal/geom"
)

// Range is a closed interval [Min, Max] of one axis.
type Range struct {
	Min, Max float64
}

// Span is Max-Min.
func (r Range) Span() float64 { return r.Max - r.Min }

// Function is a catalog entry for the ε–δ diagram: f(x) → Y0 as x → X0.
type Function struct {
	Key    string
	Name   string
	Desc   string
	Fn     func(float64) float64
	X0, Y0 float64
	Domain Range
	Range  Range
	// Singular marks functions left undefined at X0 in the plot.
	Singular bool
}

const (
	// PlotSteps is the sampling resolution of an ε–δ curve.
	PlotSteps = 800
	// SingularGap is the half-width skipped around a singular X0 when plotting.
	SingularGap = 0.005
	// TraceGap is the half-width skipped around a singular X0 when tracing.
	TraceGap = 0.002
	// TracePoints is the default number of trace samples.
	TracePoints = 12
)

// Functions returns the catalog in display order.
func Functions() []Function {
	return []Function{
		{
			Key:    "square",
			Name:   "f(x) = x²",
			Desc:   "A simple parabola converging to 1 at x₀ = 1.",
			Fn:     func(x float64) float64 { return x * x },
			X0:     1,
			Y0:     1,
			Domain: Range{-0.5, 2.5},
			Range:  Range{-0.5, 4},
		},
		{
			Key:  "sinc",
			Name: "f(x) = sin(x)/x",
			Desc: "Classic removable discontinuity: f isn't defined at 0, but the limit is 1.",
			Fn: func(x float64) float64 {
				if math.Abs(x) < 1e-9 {
					return 1
				}
				return math.Sin(x) / x
			},
			X0:       0,
			Y0:       1,
			Domain:   Range{-4, 4},
			Range:    Range{-0.5, 1.5},
			Singular: true,
		},
		{
			Key:  "xsin",
			Name: "f(x) = x·sin(1/x)",
			Desc: "Oscillates wildly near 0, yet still converges to 0 (squeeze!).",
			Fn: func(x float64) float64 {
				if math.Abs(x) < 1e-9 {
					return 0
				}
				return x * math.Sin(1/x)
			},
			X0:       0,
			Y0:       0,
			Domain:   Range{-1, 1},
			Range:    Range{-0.6, 0.6},
			Singular: true,
		},
	}
}

// LookupFunction finds a catalog function by key.
func LookupFunction(key string) (Function, error) {
	for _, f := range Functions() {
		if f.Key == key {
			return f, nil
		}
	}
	return Function{}, fmt.Errorf("%w: function %q", common.ErrUnknownExample, key)
}

// Sample evaluates fn at steps+1 evenly spaced points of [lo, hi].
func Sample(fn func(float64) float64, lo, hi float64, steps int) []geom.Point {
	if steps < 1 {
		steps = 1
	}
	pts := make([]geom.Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		x := lo + float64(i)/float64(steps)*(hi-lo)
		pts = append(pts, geom.Pt(x, fn(x)))
	}
	return pts
}

// Curve samples f over its domain and splits the result into polylines,
// breaking around a singular X0 and wherever the curve leaves the plotted
// range by more than one unit.
func (f Function) Curve(steps int) [][]geom.Point {
	var (
		lines [][]geom.Point
		cur   []geom.Point
	)
	flush := func() {
		if len(cur) > 0 {
			lines = append(lines, cur)
			cur = nil
		}
	}
	for _, p := range Sample(f.Fn, f.Domain.Min, f.Domain.Max, steps) {
		if f.Singular && math.Abs(p.X-f.X0) < SingularGap {
			flush()
			continue
		}
		if p.Y < f.Range.Min-1 || p.Y > f.Range.Max+1 {
			flush()
			continue
		}
		cur = append(cur, p)
	}
	flush()
	return lines
}
