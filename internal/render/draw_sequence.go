package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/fogleman/gg"

	"github.com/Veraticus/analysis-viz/internal/geom"
	"github.com/Veraticus/analysis-viz/internal/sequence"
)

func (r *Renderer) drawSeqLimits(dc *gg.Context) {
	seq := sequence.WithinTerms()
	rad := sequence.DefaultRadius
	n := sequence.IndexWithin(seq, sequence.Limit, rad)

	p := r.diagramPlot(dc, [2]float64{0, float64(len(seq) + 1)}, [2]float64{0.8, 2.2})
	p.axes([]float64{1, 5, 10, 15, 20, 25}, []float64{1, 1.5, 2})

	p.rect(0, float64(len(seq)+1), sequence.Limit-rad, sequence.Limit+rad, fade(r.palette.Good, 0.15))
	p.hline(sequence.Limit, r.palette.Good, true)
	p.vline(float64(n), r.palette.Boundary, true)
	p.label(fmt.Sprintf("N = %d", n), geom.Pt(float64(n), 2.2), r.palette.Boundary, -0.1, 1.3)

	for i, v := range seq {
		col := r.palette.TextDim
		if i+1 >= n {
			col = r.palette.Good
		}
		if math.Abs(v-sequence.Limit) >= rad {
			col = r.palette.Bad
		}
		p.dot(geom.Pt(float64(i+1), v), 4, col)
	}
	r.caption(dc, fmt.Sprintf("aₖ → %g: for r = %.2f every term from k = %d on lies in (L - r, L + r).", sequence.Limit, rad, n))
}

func (r *Renderer) drawSeqFromBelow(dc *gg.Context) {
	x := sequence.DefaultBelowX
	seq := sequence.FromBelow(x, sequence.BelowTerms)

	p := r.diagramPlot(dc, [2]float64{0, float64(len(seq) + 1)}, [2]float64{x - 0.8, x + 0.3})
	p.axes([]float64{1, 5, 10, 15, 20}, []float64{x - 0.5, x})
	p.hline(x, r.palette.Good, true)
	p.label("x", geom.Pt(float64(len(seq)+1), x), r.palette.Good, 1.5, 1.2)

	pts := make([]geom.Point, len(seq))
	for i, v := range seq {
		pts[i] = geom.Pt(float64(i+1), v)
	}
	p.polyline(pts, fade(r.palette.Accent, 0.5), 1)
	for _, pt := range pts {
		p.dot(pt, 4, r.palette.Accent)
	}
	a := sequence.DefaultCeilingA
	r.caption(dc,
		fmt.Sprintf("xₖ = (⌈kx⌉ - 1)/k < x with x - xₖ ≤ 1/k, here x = %g.", x),
		fmt.Sprintf("For a = %g the integer m = %d satisfies m < a ≤ m + 1.", a, sequence.Ceiling(a)))
}

func (r *Renderer) drawRoot2(dc *gg.Context) {
	g := sequence.NewSqrt2Grid(sequence.DefaultDenominator)
	p := r.diagramPlot(dc, [2]float64{-0.1, 2.1}, [2]float64{-1, 1})
	p.frame()
	p.line(geom.Pt(0, 0), geom.Pt(2, 0), r.palette.TextDim, false)

	for _, v := range g.Points {
		col := r.palette.TextDim
		switch {
		case math.Abs(v-g.X) < 1e-9:
			col = r.palette.Good
		case math.Abs(v-g.Upper()) < 1e-9:
			col = r.palette.Boundary
		}
		p.dot(geom.Pt(v, 0), 4, col)
		p.label(tick(v), geom.Pt(v, 0), r.palette.TextDim, 0.5, -1)
	}
	p.rect(g.X, g.Upper(), -0.15, 0.15, fade(r.palette.Good, 0.2))
	p.vline(math.Sqrt2, r.palette.Bad, true)
	p.label("√2", geom.Pt(math.Sqrt2, 0.6), r.palette.Bad, 0.5, 0.5)

	r.caption(dc, fmt.Sprintf("q = %d: x = %s has x² < 2, and x + 1/q = %s has (x + 1/q)² ≥ 2, so x < √2 ≤ x + ε with ε = %s.",
		g.Q, tick(g.X), tick(g.Upper()), tick(g.Epsilon)))
}

func (r *Renderer) drawOrder(dc *gg.Context) {
	a, b := sequence.EquivalentPairs()
	p := r.diagramPlot(dc, [2]float64{0, sequence.OrderTerms + 1}, [2]float64{0.3, 2.2})
	p.axes([]float64{1, 5, 10, 15, 20}, []float64{0.5, 1, 1.5, 2})

	series := []struct {
		seq []float64
		col color.Color
	}{
		{a.First, r.palette.Good},
		{a.Second, fade(r.palette.Good, 0.55)},
		{b.First, r.palette.Bad},
		{b.Second, fade(r.palette.Bad, 0.55)},
	}
	for _, s := range series {
		pts := make([]geom.Point, len(s.seq))
		for i, v := range s.seq {
			pts[i] = geom.Pt(float64(i+1), v)
		}
		p.polyline(pts, s.col, 1.5)
		for _, pt := range pts {
			p.dot(pt, 3, s.col)
		}
	}
	p.label(a.Name, geom.Pt(sequence.OrderTerms, 1.5), r.palette.Good, 1, 1.5)
	p.label(b.Name, geom.Pt(sequence.OrderTerms, 0.8), r.palette.Bad, 1, 1.5)

	view := sequence.OrderViews()[0]
	r.caption(dc, view.Title+": "+view.Text)
}
