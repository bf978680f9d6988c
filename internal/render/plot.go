package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/fogleman/gg"

	"github.com/Veraticus/analysis-viz/internal/geom"
)

// plot draws in domain coordinates on a rectangle of the image.
type plot struct {
	r  *Renderer
	dc *gg.Context
	vp geom.Viewport
}

func (r *Renderer) newPlot(dc *gg.Context, x, y, w, h float64, xr, yr [2]float64) *plot {
	pad := math.Min(w, h) * 0.08
	vp := geom.NewViewport(x+w, y+h, geom.Padding{Top: y + pad, Right: pad, Bottom: pad, Left: x + pad*1.4}, xr[0], xr[1], yr[0], yr[1])
	return &plot{r: r, dc: dc, vp: vp}
}

func (p *plot) frame() {
	p.dc.SetColor(p.r.palette.Surface)
	p.dc.DrawRectangle(p.vp.Pad.Left, p.vp.Pad.Top, p.vp.PlotWidth(), p.vp.PlotHeight())
	p.dc.Fill()
}

// axes draws the frame, grid lines at the given ticks and their labels.
func (p *plot) axes(xticks, yticks []float64) {
	p.frame()
	dc := p.dc
	dc.SetLineWidth(1)
	dc.SetFontFace(p.r.small)
	for _, x := range xticks {
		sx := p.vp.ToScreenX(x)
		dc.SetColor(p.r.palette.Grid)
		dc.DrawLine(sx, p.vp.Pad.Top, sx, p.vp.Pad.Top+p.vp.PlotHeight())
		dc.Stroke()
		dc.SetColor(p.r.palette.TextDim)
		dc.DrawStringAnchored(tick(x), sx, p.vp.Pad.Top+p.vp.PlotHeight()+4, 0.5, 1)
	}
	for _, y := range yticks {
		sy := p.vp.ToScreenY(y)
		dc.SetColor(p.r.palette.Grid)
		dc.DrawLine(p.vp.Pad.Left, sy, p.vp.Pad.Left+p.vp.PlotWidth(), sy)
		dc.Stroke()
		dc.SetColor(p.r.palette.TextDim)
		dc.DrawStringAnchored(tick(y), p.vp.Pad.Left-4, sy, 1, 0.5)
	}
}

func tick(v float64) string {
	return fmt.Sprintf("%g", math.Round(v*100)/100)
}

// polyline strokes consecutive domain points, skipping any that fall
// outside the vertical window.
func (p *plot) polyline(pts []geom.Point, c color.Color, width float64) {
	dc := p.dc
	dc.SetColor(c)
	dc.SetLineWidth(width)
	started := false
	for _, pt := range pts {
		if pt.Y < p.vp.YMin || pt.Y > p.vp.YMax {
			started = false
			continue
		}
		s := p.vp.ToScreen(pt)
		if !started {
			dc.MoveTo(s.X, s.Y)
			started = true
			continue
		}
		dc.LineTo(s.X, s.Y)
	}
	dc.Stroke()
}

func (p *plot) dot(pt geom.Point, radius float64, c color.Color) {
	s := p.vp.ToScreen(pt)
	p.dc.SetColor(c)
	p.dc.DrawCircle(s.X, s.Y, radius)
	p.dc.Fill()
}

func (p *plot) ring(pt geom.Point, radius float64, c color.Color) {
	s := p.vp.ToScreen(pt)
	p.dc.SetColor(c)
	p.dc.SetLineWidth(1.5)
	p.dc.DrawCircle(s.X, s.Y, radius)
	p.dc.Stroke()
}

func (p *plot) hline(y float64, c color.Color, dashed bool) {
	p.line(geom.Pt(p.vp.XMin, y), geom.Pt(p.vp.XMax, y), c, dashed)
}

func (p *plot) vline(x float64, c color.Color, dashed bool) {
	p.line(geom.Pt(x, p.vp.YMin), geom.Pt(x, p.vp.YMax), c, dashed)
}

func (p *plot) line(a, b geom.Point, c color.Color, dashed bool) {
	sa, sb := p.vp.ToScreen(a), p.vp.ToScreen(b)
	p.dc.SetColor(c)
	p.dc.SetLineWidth(1.5)
	if dashed {
		p.dc.SetDash(6, 4)
	}
	p.dc.DrawLine(sa.X, sa.Y, sb.X, sb.Y)
	p.dc.Stroke()
	p.dc.SetDash()
}

// rect fills the domain rectangle [x0,x1]×[y0,y1], clipped to the plot.
func (p *plot) rect(x0, x1, y0, y1 float64, c color.Color) {
	x0, x1 = geom.Clamp(x0, p.vp.XMin, p.vp.XMax), geom.Clamp(x1, p.vp.XMin, p.vp.XMax)
	y0, y1 = geom.Clamp(y0, p.vp.YMin, p.vp.YMax), geom.Clamp(y1, p.vp.YMin, p.vp.YMax)
	a := p.vp.ToScreen(geom.Pt(math.Min(x0, x1), math.Max(y0, y1)))
	b := p.vp.ToScreen(geom.Pt(math.Max(x0, x1), math.Min(y0, y1)))
	p.dc.SetColor(c)
	p.dc.DrawRectangle(a.X, a.Y, b.X-a.X, b.Y-a.Y)
	p.dc.Fill()
}

// band fills between upper and lower, sampled evenly over the x range.
func (p *plot) band(upper, lower []float64, c color.Color) {
	n := len(upper)
	if n < 2 || len(lower) != n {
		return
	}
	dc := p.dc
	dc.SetColor(c)
	x := func(i int) float64 {
		return p.vp.XMin + float64(i)/float64(n-1)*(p.vp.XMax-p.vp.XMin)
	}
	for i := 0; i < n; i++ {
		s := p.vp.ToScreen(geom.Pt(x(i), upper[i]))
		if i == 0 {
			dc.MoveTo(s.X, s.Y)
		} else {
			dc.LineTo(s.X, s.Y)
		}
	}
	for i := n - 1; i >= 0; i-- {
		s := p.vp.ToScreen(geom.Pt(x(i), lower[i]))
		dc.LineTo(s.X, s.Y)
	}
	dc.ClosePath()
	dc.Fill()
}

func (p *plot) label(s string, pt geom.Point, c color.Color, ax, ay float64) {
	sp := p.vp.ToScreen(pt)
	p.dc.SetFontFace(p.r.face)
	p.dc.SetColor(c)
	p.dc.DrawStringAnchored(s, sp.X, sp.Y, ax, ay)
}

// caption writes wrapped text across the bottom strip of the image.
func (r *Renderer) caption(dc *gg.Context, lines ...string) {
	dc.SetFontFace(r.face)
	dc.SetColor(r.palette.Text)
	y := float64(r.height) - float64(len(lines))*r.lineHeight() - 8
	for _, line := range lines {
		dc.DrawStringWrapped(line, 16, y, 0, 0, float64(r.width)-32, 1.2, gg.AlignLeft)
		y += r.lineHeight()
	}
}

func (r *Renderer) lineHeight() float64 {
	return 14 * float64(r.height) / 630 * 1.5
}
