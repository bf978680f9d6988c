package render

import (
	"fmt"
	"math"

	"github.com/fogleman/gg"

	"github.com/Veraticus/analysis-viz/internal/convergence"
	"github.com/Veraticus/analysis-viz/internal/geom"
)

func axisRange(rg convergence.Range) [2]float64 {
	return [2]float64{rg.Min, rg.Max}
}

func (r *Renderer) drawEpsDelta(dc *gg.Context) {
	f := convergence.Functions()[0]
	eps, delta := convergence.DefaultEpsilon, convergence.DefaultDelta

	p := r.diagramPlot(dc, axisRange(f.Domain), axisRange(f.Range))
	p.axes(ticks(f.Domain, 1), ticks(f.Range, 1))

	p.rect(f.Domain.Min, f.Domain.Max, f.Y0-eps, f.Y0+eps, fade(r.palette.Good, 0.15))
	p.rect(f.X0-delta, f.X0+delta, f.Range.Min, f.Range.Max, fade(r.palette.Accent, 0.15))
	p.hline(f.Y0, r.palette.Good, true)
	p.vline(f.X0, r.palette.Accent, true)

	for _, line := range f.Curve(convergence.PlotSteps) {
		p.polyline(line, r.palette.Text, 2)
	}

	trace := convergence.Trace(f, eps, delta, convergence.TracePoints)
	for _, tp := range trace {
		col := r.palette.Bad
		if tp.InEps {
			col = r.palette.Good
		}
		p.dot(geom.Pt(tp.X, tp.Y), 3.5, col)
	}
	p.ring(geom.Pt(f.X0, f.Y0), 5, r.palette.Boundary)

	verdict := "some x in the δ-window escape the ε-band: shrink δ"
	if convergence.AllInside(trace) {
		verdict = "every sampled x in the δ-window lands in the ε-band"
	}
	r.caption(dc,
		fmt.Sprintf("%s, x₀ = %g, L = %g. %s", f.Name, f.X0, f.Y0, f.Desc),
		fmt.Sprintf("ε = %.2f, δ = %.2f: %s.", eps, delta, verdict))
}

func (r *Renderer) drawPowerConv(dc *gg.Context) {
	n, eps := convergence.DefaultPower, convergence.DefaultPowerEps
	fn := convergence.Power(n)

	bx, by, bw, bh := r.body()
	bh -= r.lineHeight() * 3.5

	panels := []struct {
		title  string
		domain convergence.Range
		window convergence.Range
		sup    float64
	}{
		{"Pointwise on (-1, 1)", convergence.PointwiseDomain, convergence.PointwiseRange, convergence.PointwiseSupEstimate(n)},
		{"Uniform on [-1/2, 1/2]", convergence.UniformDomain, convergence.UniformRange, convergence.UniformSup(n)},
	}
	for i, pn := range panels {
		p := r.newPlot(dc, bx+bw/2*float64(i), by, bw/2, bh, axisRange(pn.domain), axisRange(pn.window))
		p.axes(ticks(pn.domain, 2), ticks(pn.window, 2))

		p.rect(pn.domain.Min, pn.domain.Max, -eps, eps, fade(r.palette.Accumulation, 0.15))
		p.hline(0, r.palette.Good, false)

		if !convergence.InsideBand(pn.sup, eps) {
			x := convergence.EscapeX(eps, n)
			p.rect(x, pn.domain.Max, pn.window.Min, pn.window.Max, fade(r.palette.Bad, 0.15))
			p.rect(pn.domain.Min, -x, pn.window.Min, pn.window.Max, fade(r.palette.Bad, 0.15))
		}

		p.polyline(convergence.Sample(fn, pn.domain.Min, pn.domain.Max, convergence.PowerSampleSteps), r.palette.Accent, 2.5)
		p.label(pn.title, geom.Pt(pn.domain.Min, pn.window.Max), r.palette.Text, -0.05, 1.3)
		p.label(fmt.Sprintf("sup|fₙ - f| ≈ %.3f", pn.sup), geom.Pt(pn.domain.Max, pn.window.Min), r.palette.TextDim, 1.05, -0.5)
	}
	r.caption(dc, fmt.Sprintf("fₙ(x) = x^%d, ε = %.2f. On (-1, 1) the sup never drops below ε; on [-1/2, 1/2] it does once 0.5ⁿ < ε.", n, eps))
}

// ticks returns k+2 evenly spaced values from rg.Min to rg.Max.
func ticks(rg convergence.Range, k int) []float64 {
	k = max(k, 0) + 1
	out := make([]float64, 0, k+1)
	for i := 0; i <= k; i++ {
		v := rg.Min + float64(i)/float64(k)*rg.Span()
		out = append(out, math.Round(v*100)/100)
	}
	return out
}
