// Package canvas draws on a terminal grid using braille characters, giving
// each cell a 2×4 block of dots.
package canvas

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/analysis-viz/internal/geom"
)

const brailleBase = 0x2800

// dotBits maps a dot position inside a cell, indexed [y][x], to its braille
// bit.
var dotBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Canvas is a cols×rows grid of braille cells. Pixel coordinates run from
// (0, 0) at the top left to (PixelWidth()-1, PixelHeight()-1).
type Canvas struct {
	cols, rows int
	dots       []uint8
	colors     []lipgloss.Color
	text       []rune
}

// New returns a blank canvas. Non-positive sizes give an empty canvas.
func New(cols, rows int) *Canvas {
	cols, rows = max(cols, 0), max(rows, 0)
	n := cols * rows
	return &Canvas{
		cols:   cols,
		rows:   rows,
		dots:   make([]uint8, n),
		colors: make([]lipgloss.Color, n),
		text:   make([]rune, n),
	}
}

// Cols is the width in cells.
func (c *Canvas) Cols() int { return c.cols }

// Rows is the height in cells.
func (c *Canvas) Rows() int { return c.rows }

// PixelWidth is the width in dots.
func (c *Canvas) PixelWidth() int { return c.cols * 2 }

// PixelHeight is the height in dots.
func (c *Canvas) PixelHeight() int { return c.rows * 4 }

// Viewport maps the domain rectangle onto the whole canvas.
func (c *Canvas) Viewport(xmin, xmax, ymin, ymax float64) geom.Viewport {
	return geom.NewViewport(float64(c.PixelWidth()), float64(c.PixelHeight()), geom.Padding{}, xmin, xmax, ymin, ymax)
}

// Clear removes every dot and label.
func (c *Canvas) Clear() {
	for i := range c.dots {
		c.dots[i] = 0
		c.colors[i] = ""
		c.text[i] = 0
	}
}

// Set turns on the dot at pixel (x, y). Out-of-range pixels are ignored.
// The cell takes the colour of the last dot drawn into it.
func (c *Canvas) Set(x, y int, color lipgloss.Color) {
	if x < 0 || y < 0 || x >= c.PixelWidth() || y >= c.PixelHeight() {
		return
	}
	i := (y/4)*c.cols + x/2
	c.dots[i] |= dotBits[y%4][x%2]
	if color != "" {
		c.colors[i] = color
	}
}

// IsSet reports whether the dot at pixel (x, y) is on.
func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 || x >= c.PixelWidth() || y >= c.PixelHeight() {
		return false
	}
	return c.dots[(y/4)*c.cols+x/2]&dotBits[y%4][x%2] != 0
}

// Plot sets the dot nearest to p.
func (c *Canvas) Plot(p geom.Point, color lipgloss.Color) {
	c.Set(int(math.Round(p.X)), int(math.Round(p.Y)), color)
}

// Line draws a segment between two pixel positions.
func (c *Canvas) Line(a, b geom.Point, color lipgloss.Color) {
	x0, y0 := int(math.Round(a.X)), int(math.Round(a.Y))
	x1, y1 := int(math.Round(b.X)), int(math.Round(b.Y))
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		c.Set(x0, y0, color)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Polyline joins consecutive points.
func (c *Canvas) Polyline(pts []geom.Point, color lipgloss.Color) {
	if len(pts) == 1 {
		c.Plot(pts[0], color)
	}
	for i := 1; i < len(pts); i++ {
		c.Line(pts[i-1], pts[i], color)
	}
}

// Polygon draws a closed outline.
func (c *Canvas) Polygon(pts []geom.Point, color lipgloss.Color) {
	if len(pts) < 2 {
		c.Polyline(pts, color)
		return
	}
	c.Polyline(pts, color)
	c.Line(pts[len(pts)-1], pts[0], color)
}

// Circle draws the outline of a circle of radius r pixels.
func (c *Canvas) Circle(center geom.Point, r float64, color lipgloss.Color) {
	c.arc(center, r, 0, 1, 0, color)
}

// DashedCircle draws a circle broken into dashes of the given arc length in
// pixels; phase shifts the dashes along the circle so a ticking phase makes
// them march.
func (c *Canvas) DashedCircle(center geom.Point, r, dash float64, phase int, color lipgloss.Color) {
	if dash <= 0 {
		c.Circle(center, r, color)
		return
	}
	c.arc(center, r, dash, 2, phase, color)
}

func (c *Canvas) arc(center geom.Point, r, dash float64, period, phase int, color lipgloss.Color) {
	if r <= 0 {
		c.Plot(center, color)
		return
	}
	steps := max(int(2*math.Pi*r*2), 8)
	for i := 0; i < steps; i++ {
		theta := 2 * math.Pi * float64(i) / float64(steps)
		if dash > 0 {
			length := theta*r + float64(phase)
			if int(math.Floor(length/dash))%period != 0 {
				continue
			}
		}
		c.Plot(center.Add(geom.Polar(r, theta)), color)
	}
}

// Disc fills a circle of radius r pixels.
func (c *Canvas) Disc(center geom.Point, r float64, color lipgloss.Color) {
	c.Fill(func(p geom.Point) bool {
		return geom.Dist(p, center) <= r
	}, color)
}

// Fill sets every dot whose centre satisfies in.
func (c *Canvas) Fill(in func(p geom.Point) bool, color lipgloss.Color) {
	for y := 0; y < c.PixelHeight(); y++ {
		for x := 0; x < c.PixelWidth(); x++ {
			if in(geom.Pt(float64(x), float64(y))) {
				c.Set(x, y, color)
			}
		}
	}
}

// Text writes s starting at cell (col, row), replacing the dots of the
// cells it covers. Text running off the right edge is cut.
func (c *Canvas) Text(col, row int, s string, color lipgloss.Color) {
	if row < 0 || row >= c.rows {
		return
	}
	for _, r := range s {
		if col >= c.cols {
			return
		}
		if col >= 0 {
			i := row*c.cols + col
			c.text[i] = r
			if color != "" {
				c.colors[i] = color
			}
		}
		col++
	}
}

// TextAt writes s at the cell holding pixel p.
func (c *Canvas) TextAt(p geom.Point, s string, color lipgloss.Color) {
	c.Text(int(math.Round(p.X))/2, int(math.Round(p.Y))/4, s, color)
}

// Cell returns the rune shown at (col, row).
func (c *Canvas) Cell(col, row int) rune {
	i := row*c.cols + col
	if c.text[i] != 0 {
		return c.text[i]
	}
	return rune(brailleBase + int(c.dots[i]))
}

// String renders the canvas, one line per row, colouring runs of cells
// that share a colour.
func (c *Canvas) String() string {
	var b strings.Builder
	for row := 0; row < c.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		var (
			run     strings.Builder
			current lipgloss.Color
		)
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if current == "" {
				b.WriteString(run.String())
			} else {
				b.WriteString(lipgloss.NewStyle().Foreground(current).Render(run.String()))
			}
			run.Reset()
		}
		for col := 0; col < c.cols; col++ {
			i := row*c.cols + col
			color := c.colors[i]
			if c.dots[i] == 0 && c.text[i] == 0 {
				color = ""
			}
			if color != current {
				flush()
				current = color
			}
			run.WriteRune(c.Cell(col, row))
		}
		flush()
	}
	return b.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
