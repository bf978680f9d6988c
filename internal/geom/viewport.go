package geom

// Padding is the space reserved around a plot area, in pixels.
type Padding struct {
	Top, Right, Bottom, Left float64
}

// Viewport maps a domain rectangle onto a pixel rectangle. Screen y grows
// downward, domain y grows upward.
type Viewport struct {
	Pad                    Padding
	Width, Height          float64
	XMin, XMax, YMin, YMax float64
}

// NewViewport creates a viewport of the given pixel size over the domain.
func NewViewport(width, height float64, pad Padding, xmin, xmax, ymin, ymax float64) Viewport {
	return Viewport{
		Pad:    pad,
		Width:  width,
		Height: height,
		XMin:   xmin,
		XMax:   xmax,
		YMin:   ymin,
		YMax:   ymax,
	}
}

// PlotWidth is the drawable width inside the padding.
func (v Viewport) PlotWidth() float64 {
	return v.Width - v.Pad.Left - v.Pad.Right
}

// PlotHeight is the drawable height inside the padding.
func (v Viewport) PlotHeight() float64 {
	return v.Height - v.Pad.Top - v.Pad.Bottom
}

// ToScreenX maps a domain x to a pixel column.
func (v Viewport) ToScreenX(x float64) float64 {
	if v.XMax == v.XMin {
		return v.Pad.Left
	}
	return v.Pad.Left + (x-v.XMin)/(v.XMax-v.XMin)*v.PlotWidth()
}

// ToScreenY maps a domain y to a pixel row.
func (v Viewport) ToScreenY(y float64) float64 {
	if v.YMax == v.YMin {
		return v.Pad.Top + v.PlotHeight()
	}
	return v.Pad.Top + (v.YMax-y)/(v.YMax-v.YMin)*v.PlotHeight()
}

// ToScreen maps a domain point to pixels.
func (v Viewport) ToScreen(p Point) Point {
	return Point{X: v.ToScreenX(p.X), Y: v.ToScreenY(p.Y)}
}

// ToDomainX maps a pixel column back to a domain x.
func (v Viewport) ToDomainX(px float64) float64 {
	w := v.PlotWidth()
	if w == 0 {
		return v.XMin
	}
	return v.XMin + (px-v.Pad.Left)/w*(v.XMax-v.XMin)
}

// ToDomainY maps a pixel row back to a domain y.
func (v Viewport) ToDomainY(py float64) float64 {
	h := v.PlotHeight()
	if h == 0 {
		return v.YMin
	}
	return v.YMax - (py-v.Pad.Top)/h*(v.YMax-v.YMin)
}

// Scale maps a value linearly from [min,max] to [pixelMin,pixelMax].
func Scale(val, minVal, maxVal, pixelMin, pixelMax float64) float64 {
	if maxVal == minVal {
		return pixelMin
	}
	return pixelMin + (val-minVal)/(maxVal-minVal)*(pixelMax-pixelMin)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
