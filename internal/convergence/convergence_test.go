package convergence

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/analysis-viz/internal/common"
)

func TestFunctionsCatalog(t *testing.T) {
	t.Parallel()

	fns := Functions()
	require.Len(t, fns, 3)

	for _, f := range fns {
		assert.InDelta(t, f.Y0, f.Fn(f.X0), 1e-12, f.Name)
		assert.Less(t, f.Domain.Min, f.X0)
		assert.Greater(t, f.Domain.Max, f.X0)
	}

	sinc, err := LookupFunction("sinc")
	require.NoError(t, err)
	assert.Equal(t, 1.0, sinc.Fn(0))
	assert.InDelta(t, math.Sin(2)/2, sinc.Fn(2), 1e-12)

	_, err = LookupFunction("tan")
	assert.True(t, errors.Is(err, common.ErrUnknownExample))
}

func TestSample(t *testing.T) {
	t.Parallel()

	pts := Sample(func(x float64) float64 { return 2 * x }, 0, 1, 4)
	require.Len(t, pts, 5)
	assert.InDelta(t, 0.25, pts[1].X, 1e-12)
	assert.InDelta(t, 0.5, pts[1].Y, 1e-12)
	assert.InDelta(t, 1.0, pts[4].X, 1e-12)
}

func TestCurveSkipsSingularPoint(t *testing.T) {
	t.Parallel()

	sinc, err := LookupFunction("sinc")
	require.NoError(t, err)

	lines := sinc.Curve(PlotSteps)
	require.Len(t, lines, 2)
	for _, line := range lines {
		for _, p := range line {
			assert.GreaterOrEqual(t, math.Abs(p.X), SingularGap)
		}
	}

	sq, err := LookupFunction("square")
	require.NoError(t, err)
	// x² leaves the window by more than a unit past x = √5.
	lines = sq.Curve(PlotSteps)
	require.Len(t, lines, 1)
	assert.Less(t, len(lines[0]), PlotSteps+1)
	for _, p := range lines[0] {
		assert.LessOrEqual(t, p.Y, sq.Range.Max+1)
	}
}

func TestTrace(t *testing.T) {
	t.Parallel()

	sq, err := LookupFunction("square")
	require.NoError(t, err)

	trace := Trace(sq, DefaultEpsilon, DefaultDelta, TracePoints)
	require.Len(t, trace, TracePoints)

	assert.InDelta(t, 1-0.4/7, trace[0].X, 1e-12)
	assert.InDelta(t, 1+0.4/7, trace[1].X, 1e-12)
	assert.InDelta(t, 1+0.4*6/7, trace[11].X, 1e-12)
	for _, tp := range trace {
		assert.Less(t, math.Abs(tp.X-sq.X0), DefaultDelta)
		assert.Equal(t, math.Abs(tp.Y-sq.Y0) < DefaultEpsilon, tp.InEps)
	}
	assert.False(t, AllInside(trace))

	assert.True(t, AllInside(Trace(sq, DefaultEpsilon, 0.1, TracePoints)))
}

func TestTraceDropsOutOfDomain(t *testing.T) {
	t.Parallel()

	xs, err := LookupFunction("xsin")
	require.NoError(t, err)

	trace := Trace(xs, 0.5, 1.5, TracePoints)
	for _, tp := range trace {
		assert.Greater(t, tp.X, xs.Domain.Min)
		assert.Less(t, tp.X, xs.Domain.Max)
	}
	assert.Less(t, len(trace), TracePoints)
}

func TestClamps(t *testing.T) {
	t.Parallel()

	assert.Equal(t, MinEpsilon, ClampEpsilon(0))
	assert.Equal(t, MaxEpsilon, ClampEpsilon(9))
	assert.Equal(t, 0.7, ClampEpsilon(0.7))
	assert.Equal(t, MinDelta, ClampDelta(-1))
	assert.Equal(t, MaxDelta, ClampDelta(2))
	assert.Equal(t, MinPower, ClampPower(0))
	assert.Equal(t, MaxPower, ClampPower(31))
	assert.Equal(t, MinPowerEpsilon, ClampPowerEpsilon(0))
	assert.Equal(t, MaxPowerEpsilon, ClampPowerEpsilon(1))
}

func TestPower(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n    int
		x    float64
		want float64
	}{
		{3, 0.5, 0.125},
		{3, -0.5, -0.125},
		{2, -0.5, 0.25},
		{1, -0.3, -0.3},
		{4, 0, 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, Power(tt.n)(tt.x), 1e-12, "n=%d x=%g", tt.n, tt.x)
	}
}

func TestPointwiseVersusUniform(t *testing.T) {
	t.Parallel()

	// On [-0.5, 0.5] the sup shrinks below the default ε quickly.
	assert.False(t, InsideBand(UniformSup(2), DefaultPowerEps))
	assert.True(t, InsideBand(UniformSup(3), DefaultPowerEps))

	// On (-1, 1) the displayed sup stays above ε for all n on the slider.
	for n := MinPower; n <= MaxPower; n++ {
		assert.False(t, InsideBand(PointwiseSupEstimate(n), DefaultPowerEps), "n=%d", n)
		x := EscapeX(DefaultPowerEps, n)
		assert.InDelta(t, DefaultPowerEps, Power(n)(x), 1e-9)
		assert.Less(t, x, PointwiseDomain.Max)
	}
}

func TestBand(t *testing.T) {
	t.Parallel()

	upper, lower := Band(Power(1), 0.2, UniformDomain, UniformRange, 10)
	require.Len(t, upper, 11)
	require.Len(t, lower, 11)
	for i := range upper {
		assert.LessOrEqual(t, upper[i], UniformRange.Max)
		assert.GreaterOrEqual(t, lower[i], UniformRange.Min)
	}
	assert.InDelta(t, UniformRange.Min, lower[0], 1e-12)
	assert.InDelta(t, UniformRange.Max, upper[10], 1e-12)
}
