package canvas

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/analysis-viz/internal/geom"
)

func TestSetMapsDotsToBraille(t *testing.T) {
	t.Parallel()

	tests := []struct {
		x, y int
		want rune
	}{
		{0, 0, '⠁'},
		{0, 1, '⠂'},
		{0, 2, '⠄'},
		{1, 0, '⠈'},
		{0, 3, '⡀'},
		{1, 3, '⢀'},
	}
	for _, tt := range tests {
		c := New(1, 1)
		c.Set(tt.x, tt.y, "")
		assert.Equal(t, tt.want, c.Cell(0, 0), "dot (%d,%d)", tt.x, tt.y)
		assert.True(t, c.IsSet(tt.x, tt.y))
	}

	c := New(1, 1)
	for y := 0; y < 4; y++ {
		for x := 0; x < 2; x++ {
			c.Set(x, y, "")
		}
	}
	assert.Equal(t, '⣿', c.Cell(0, 0))
}

func TestSetIgnoresOutOfRange(t *testing.T) {
	t.Parallel()

	c := New(2, 2)
	c.Set(-1, 0, "")
	c.Set(0, -1, "")
	c.Set(4, 0, "")
	c.Set(0, 8, "")
	assert.Equal(t, "⠀⠀\n⠀⠀", c.String())
	assert.False(t, c.IsSet(99, 99))

	empty := New(-3, 0)
	assert.Equal(t, "", empty.String())
}

func TestLine(t *testing.T) {
	t.Parallel()

	c := New(4, 1)
	c.Line(geom.Pt(0, 0), geom.Pt(7, 0), "")
	for x := 0; x < 8; x++ {
		assert.True(t, c.IsSet(x, 0), "x=%d", x)
		assert.False(t, c.IsSet(x, 1), "x=%d", x)
	}

	d := New(4, 4)
	d.Line(geom.Pt(7, 15), geom.Pt(0, 0), "")
	assert.True(t, d.IsSet(0, 0))
	assert.True(t, d.IsSet(7, 15))
}

func TestCircleAndDisc(t *testing.T) {
	t.Parallel()

	c := New(20, 10)
	center := geom.Pt(20, 20)
	c.Circle(center, 10, "")
	assert.True(t, c.IsSet(30, 20))
	assert.True(t, c.IsSet(10, 20))
	assert.False(t, c.IsSet(20, 20))

	d := New(20, 10)
	d.Disc(center, 10, "")
	assert.True(t, d.IsSet(20, 20))
	assert.True(t, d.IsSet(25, 25))
	assert.False(t, d.IsSet(35, 35))
}

func TestDashedCircleMarches(t *testing.T) {
	t.Parallel()

	count := func(c *Canvas) int {
		n := 0
		for y := 0; y < c.PixelHeight(); y++ {
			for x := 0; x < c.PixelWidth(); x++ {
				if c.IsSet(x, y) {
					n++
				}
			}
		}
		return n
	}

	full := New(20, 10)
	full.Circle(geom.Pt(20, 20), 15, "")
	a := New(20, 10)
	a.DashedCircle(geom.Pt(20, 20), 15, 4, 0, "")
	b := New(20, 10)
	b.DashedCircle(geom.Pt(20, 20), 15, 4, 4, "")

	assert.Less(t, count(a), count(full))
	assert.NotEqual(t, a.String(), b.String())
}

func TestTextOverridesDots(t *testing.T) {
	t.Parallel()

	c := New(5, 1)
	c.Fill(func(geom.Point) bool { return true }, "")
	c.Text(1, 0, "εδ", "")
	c.Text(4, 0, "cut", "")

	assert.Equal(t, "⣿εδ⣿c", c.String())
	c.Clear()
	assert.Equal(t, strings.Repeat("⠀", 5), c.String())
}

func TestColoredStringKeepsCells(t *testing.T) {
	t.Parallel()

	c := New(3, 1)
	c.Set(0, 0, lipgloss.Color("#ff0000"))
	c.Set(2, 0, lipgloss.Color("#00ff00"))
	out := c.String()
	require.Contains(t, out, "⠁")
	assert.Contains(t, out, "⠀")
}

func TestViewportCoversCanvas(t *testing.T) {
	t.Parallel()

	c := New(10, 5)
	vp := c.Viewport(-1, 1, -1, 1)
	assert.InDelta(t, 0, vp.ToScreenX(-1), 1e-9)
	assert.InDelta(t, 20, vp.ToScreenX(1), 1e-9)
	assert.InDelta(t, 0, vp.ToScreenY(1), 1e-9)
	assert.InDelta(t, 20, vp.ToScreenY(-1), 1e-9)
}
