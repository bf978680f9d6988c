package render

import (
	"image/color"

	"github.com/fogleman/gg"

	"github.com/Veraticus/analysis-viz/internal/geom"
	"github.com/Veraticus/analysis-viz/internal/walkthrough"
)

// diagramPlot is a plot over the body, leaving room for a caption.
func (r *Renderer) diagramPlot(dc *gg.Context, xr, yr [2]float64) *plot {
	x, y, w, h := r.body()
	return r.newPlot(dc, x, y, w, h-r.lineHeight()*3.5, xr, yr)
}

// finalStep captions the diagram with the last step of a walkthrough.
func (r *Renderer) finalStep(dc *gg.Context, id string) walkthrough.Step {
	info, err := walkthrough.Lookup(id)
	if err != nil {
		return walkthrough.Step{}
	}
	s := info.NewStepper()
	s.Jump(s.Len() - 1)
	step := s.Current()
	r.caption(dc, step.Title+": "+step.Description)
	return step
}

func (r *Renderer) drawHeineBorel(dc *gg.Context) {
	ivs := walkthrough.HeineBorelIntervals()
	p := r.diagramPlot(dc, [2]float64{-0.05, 1.05}, [2]float64{-float64(len(ivs)), 1})
	p.axes([]float64{0, 0.25, 0.5, 0.75, 1}, nil)

	for _, iv := range ivs {
		y := -float64(iv.Level)
		col := r.palette.Accent
		if iv.Level == len(ivs)-1 {
			col = r.palette.Boundary
		}
		p.line(geom.Pt(iv.A, y), geom.Pt(iv.B, y), col, false)
		p.dot(geom.Pt(iv.A, y), 3, col)
		p.dot(geom.Pt(iv.B, y), 3, col)
		p.label(iv.Note, geom.Pt(iv.B, y), r.palette.TextDim, -0.05, -0.3)
	}
	p.vline(walkthrough.HeineBorelLimit, r.palette.Bad, true)
	p.label("c", geom.Pt(walkthrough.HeineBorelLimit, 0.5), r.palette.Bad, 0.5, 0.5)
	r.finalStep(dc, walkthrough.HeineBorel)
}

func (r *Renderer) drawOpenCovering(dc *gg.Context) {
	sets := walkthrough.CoveringSets()
	seg := walkthrough.CoveringSegment
	p := r.diagramPlot(dc, [2]float64{0, 570}, [2]float64{-1, float64(len(sets)) + 1})
	p.frame()

	chosen, _ := walkthrough.FiniteSubcover(sets, seg)
	inCover := map[int]bool{}
	for _, i := range chosen {
		inCover[i] = true
	}

	p.line(geom.Pt(seg.A, 0), geom.Pt(seg.B, 0), r.palette.Text, false)
	p.dot(geom.Pt(seg.A, 0), 4, r.palette.Text)
	p.dot(geom.Pt(seg.B, 0), 4, r.palette.Text)
	p.label("S", geom.Pt(seg.A, 0), r.palette.Text, 1.5, 0.5)

	for i, u := range sets {
		y := float64(i%3) + 1
		col := r.palette.TextDim
		if inCover[i] {
			col = r.palette.Good
		}
		p.line(geom.Pt(u.Left(), y), geom.Pt(u.Right(), y), col, false)
		p.ring(geom.Pt(u.Left(), y), 4, col)
		p.ring(geom.Pt(u.Right(), y), 4, col)
		p.label(u.Label, geom.Pt(u.Center, y), col, 0.5, -0.4)
	}
	r.finalStep(dc, walkthrough.OpenCovering)
}

func (r *Renderer) drawClosedAccumulation(dc *gg.Context) {
	r.closedAccumulation(dc, walkthrough.ClosedAccumulationPoints)
}

func (r *Renderer) drawClosedAccumulationRev(dc *gg.Context) {
	r.closedAccumulation(dc, walkthrough.ClosedAccumulationPointsRev)
}

func (r *Renderer) closedAccumulation(dc *gg.Context, id string) {
	const a, b = 0.25, 0.65
	p := r.diagramPlot(dc, [2]float64{0, 1}, [2]float64{-1, 1})
	p.axes([]float64{0, 0.5, 1}, nil)

	p.rect(a, b, -0.1, 0.1, fade(r.palette.Interior, 0.5))
	p.dot(geom.Pt(a, 0), 4, r.palette.Interior)
	p.dot(geom.Pt(b, 0), 4, r.palette.Interior)
	p.label("A", geom.Pt((a+b)/2, 0.1), r.palette.Interior, 0.5, 1.2)

	// An accumulation point at the right end: every neighbourhood meets A.
	p.rect(b-0.08, b+0.08, -0.35, 0.35, fade(r.palette.Accumulation, 0.2))
	p.dot(geom.Pt(b, 0), 5, r.palette.Good)
	p.label("a", geom.Pt(b, -0.35), r.palette.Good, 0.5, -0.3)

	// A point of the complement sits in an open interval missing A.
	p.rect(0.8, 0.92, -0.35, 0.35, fade(r.palette.Exterior, 0.3))
	p.dot(geom.Pt(0.86, 0), 4, r.palette.Exterior)

	r.finalStep(dc, id)
}

func (r *Renderer) drawCompactSet(dc *gg.Context) {
	terms := walkthrough.CompactSequence(20, nil)
	sub := walkthrough.ConvergentSubsequence(terms)
	p := r.diagramPlot(dc, [2]float64{0, 1}, [2]float64{0, 1})
	p.axes([]float64{0, 0.5, 1}, []float64{0, 0.5, 1})

	for _, t := range terms {
		p.dot(t.Point, 3, r.palette.TextDim)
	}
	pts := make([]geom.Point, 0, len(sub))
	for _, i := range sub {
		pts = append(pts, terms[i].Point)
	}
	p.polyline(pts, fade(r.palette.Good, 0.6), 1.5)
	for _, pt := range pts {
		p.dot(pt, 4, r.palette.Good)
	}
	r.finalStep(dc, walkthrough.CompactSet)
}

func (r *Renderer) drawOpenClosed(dc *gg.Context) {
	rows := []walkthrough.RealInterval{
		{A: 0.2, B: 0.8},
		{A: 0.2, B: 0.8, LeftClosed: true, RightClosed: true},
		{A: 0.2, B: 0.8, LeftClosed: true},
	}
	p := r.diagramPlot(dc, [2]float64{0, 1}, [2]float64{-float64(len(rows)), 0})
	p.frame()

	for i, iv := range rows {
		y := -float64(i) - 0.5
		col := r.palette.Accent
		switch {
		case iv.IsOpen():
			col = r.palette.Interior
		case iv.IsClosed():
			col = r.palette.Good
		}
		p.line(geom.Pt(iv.A, y), geom.Pt(iv.B, y), col, false)
		endpoint(p, geom.Pt(iv.A, y), iv.LeftClosed, col)
		endpoint(p, geom.Pt(iv.B, y), iv.RightClosed, col)

		kind := "neither"
		switch {
		case iv.IsOpen():
			kind = "open"
		case iv.IsClosed():
			kind = "closed"
		}
		p.label(iv.Notation()+"  "+kind, geom.Pt(0.5, y), r.palette.Text, 0.5, -0.6)
	}
	r.finalStep(dc, walkthrough.OpenClosedSets)
}

func endpoint(p *plot, pt geom.Point, closed bool, col color.RGBA) {
	if closed {
		p.dot(pt, 5, col)
		return
	}
	p.dot(pt, 5, p.r.palette.Surface)
	p.ring(pt, 5, col)
}
