package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/fogleman/gg"

	"github.com/Veraticus/analysis-viz/internal/geom"
	"github.com/Veraticus/analysis-viz/internal/pointset"
	"github.com/Veraticus/analysis-viz/internal/region"
)

// demoEpsilon is the ball radius of the exported probes, in display units.
const demoEpsilon = 20.0

// cells splits the body into a 2×2 grid, returning each cell's centre and
// the display-unit scale that fits a w×h surface inside it.
func (r *Renderer) cells(w, h float64) ([4]geom.Point, float64) {
	bx, by, bw, bh := r.body()
	bh -= r.lineHeight() * 2
	cw, ch := bw/2, bh/2
	var centers [4]geom.Point
	for i := range centers {
		centers[i] = geom.Pt(bx+cw*(float64(i%2)+0.5), by+ch*(float64(i/2)+0.5))
	}
	return centers, math.Min(cw/w, ch/h) * 0.95
}

func (r *Renderer) drawRegion(dc *gg.Context) {
	centers, k := r.cells(360, 360)
	dir := geom.Polar(1, -0.3)
	for i, ex := range region.Examples() {
		c := centers[i]
		r.shapePath(dc, ex.Shape, c, k)
		dc.SetColor(fade(r.palette.Interior, 0.25))
		dc.FillPreserve()
		dc.SetColor(r.palette.Interior)
		dc.SetLineWidth(2)
		dc.Stroke()

		tb := outerBoundary(ex.Shape, dir)
		for _, t := range []float64{tb * 0.55, tb, tb + 45} {
			p := dir.Scale(t)
			_, cls := region.Classify(ex.Shape, p, demoEpsilon)
			col := r.classColor(cls)
			s := c.Add(p.Scale(k))
			dc.SetColor(fade(col, 0.2))
			dc.DrawCircle(s.X, s.Y, demoEpsilon*k)
			dc.FillPreserve()
			dc.SetColor(col)
			dc.SetLineWidth(1.5)
			dc.Stroke()
			dc.DrawCircle(s.X, s.Y, 3)
			dc.Fill()
		}

		dc.SetFontFace(r.face)
		dc.SetColor(r.palette.Text)
		dc.DrawStringAnchored(ex.Label, c.X, c.Y-175*k, 0.5, 1)
	}
	r.caption(dc, fmt.Sprintf("ε = %g. Interior: B(x, ε) ⊆ S. Boundary: B(x, ε) meets S and Sᶜ. Exterior: B(x, ε) ⊆ Sᶜ.", demoEpsilon))
}

func (r *Renderer) classColor(c region.Classification) color.RGBA {
	switch c {
	case region.Interior:
		return r.palette.Interior
	case region.Boundary:
		return r.palette.Boundary
	default:
		return r.palette.Exterior
	}
}

// shapePath traces s centred at c with k pixels per display unit.
func (r *Renderer) shapePath(dc *gg.Context, s region.Shape, c geom.Point, k float64) {
	dc.SetFillRuleWinding()
	dc.NewSubPath()
	switch s.Kind {
	case region.Disk:
		dc.DrawCircle(c.X, c.Y, s.Radius*k)
	case region.Square:
		dc.DrawRectangle(c.X-s.Half*k, c.Y-s.Half*k, 2*s.Half*k, 2*s.Half*k)
	case region.Annulus:
		dc.SetFillRuleEvenOdd()
		dc.DrawCircle(c.X, c.Y, s.Outer*k)
		dc.NewSubPath()
		dc.DrawCircle(c.X, c.Y, s.Inner*k)
	case region.Star:
		for i, v := range region.StarVertices(s) {
			p := c.Add(v.Scale(k))
			if i == 0 {
				dc.MoveTo(p.X, p.Y)
			} else {
				dc.LineTo(p.X, p.Y)
			}
		}
		dc.ClosePath()
	}
}

// outerBoundary finds where the ray t·dir last leaves s.
func outerBoundary(s region.Shape, dir geom.Point) float64 {
	lo := 0.0
	if !region.Contains(s, geom.Point{}) {
		lo = (s.Inner + s.Outer) / 2
	}
	hi := 400.0
	for range 60 {
		mid := (lo + hi) / 2
		if region.Contains(s, dir.Scale(mid)) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}

func (r *Renderer) drawPointSet(dc *gg.Context) {
	const w, h = 600.0, 420.0
	centers, k := r.cells(w, h)
	th := pointset.ScaledThresholds(r.thresholds, w, h, ReferenceSize)

	for i, ex := range pointset.Examples() {
		set, err := pointset.Generate(ex.Key, w, h, pointset.NewRandom(r.seed+uint32(i)))
		if err != nil {
			continue
		}
		c := centers[i]
		toPx := func(p geom.Point) geom.Point {
			return c.Add(p.Sub(geom.Pt(w/2, h/2)).Scale(k))
		}

		dc.SetColor(r.palette.Surface)
		dc.DrawRectangle(c.X-w*k/2, c.Y-h*k/2, w*k, h*k)
		dc.Fill()

		for _, p := range set {
			col := r.palette.Accumulation
			if pointset.ClassifyExact(set, p, th).IsIsolated {
				col = r.palette.Isolated
			}
			s := toPx(p)
			dc.SetColor(col)
			dc.DrawCircle(s.X, s.Y, math.Max(1.2, 2.5*k))
			dc.Fill()
		}

		if ex.Key == "sequence" {
			limit := geom.Pt(w/2, h/2)
			s := toPx(limit)
			dc.SetColor(r.palette.Adherent)
			dc.SetLineWidth(1.5)
			dc.DrawCircle(s.X, s.Y, 6)
			dc.Stroke()
		}

		dc.SetFontFace(r.small)
		dc.SetColor(r.palette.Text)
		dc.DrawStringAnchored(ex.Name, c.X-w*k/2+6, c.Y-h*k/2+6, 0, 1)
	}
	r.caption(dc, "Purple: isolated points. Cyan: accumulation points. Yellow ring: an adherent point outside the set (the limit 0).")
}
