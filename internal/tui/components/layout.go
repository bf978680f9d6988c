package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/analysis-viz/internal/canvas"
	"github.com/Veraticus/analysis-viz/internal/tui/themes"
)

// Layout breakpoints, in terminal cells.
const (
	panelWidth    = 38
	stackBelow    = 90
	stackedPanel  = 10
	minCanvasCols = 10
	minCanvasRows = 4

	// The canvas starts below the title line and inside the panel border.
	canvasOriginX = 2
	canvasOriginY = 2

	panelText = panelWidth - 2
)

// canvasSize returns the canvas size for a window and whether the panel sits
// beside it.
func canvasSize(width, height int) (cols, rows int, beside bool) {
	if width >= stackBelow {
		cols = width - panelWidth - 6
		rows = height - 5
		beside = true
	} else {
		cols = width - 4
		rows = height - stackedPanel - 7
	}
	return max(cols, minCanvasCols), max(rows, minCanvasRows), beside
}

// newCanvas sizes a canvas for the environment.
func newCanvas(env Env) *canvas.Canvas {
	cols, rows, _ := canvasSize(env.Width, env.Height)
	return canvas.New(cols, rows)
}

// compose lays the title, the canvas and the info panel out for the window.
func compose(env Env, title string, c *canvas.Canvas, panel []string) string {
	t := env.Theme
	_, _, beside := canvasSize(env.Width, env.Height)

	body := t.Panel.Render(c.String())
	w := panelWidth
	if !beside {
		w = max(env.Width-4, 20)
	}
	info := t.Panel.Width(w).Render(strings.Join(panel, "\n"))

	var content string
	if beside {
		content = lipgloss.JoinHorizontal(lipgloss.Top, body, info)
	} else {
		content = lipgloss.JoinVertical(lipgloss.Left, body, info)
	}
	return lipgloss.JoinVertical(lipgloss.Left, t.Title.Render(title), content)
}

// meter renders a labelled slider for a bounded parameter.
func meter(t themes.Theme, label string, value, lo, hi float64, format string) string {
	bar := progress.New(
		progress.WithSolidFill(string(t.Primary)),
		progress.WithoutPercentage(),
		progress.WithWidth(16),
	)
	frac := 0.0
	if hi > lo {
		frac = (value - lo) / (hi - lo)
	}
	return fmt.Sprintf("%s %s %s", t.Bold.Render(label), bar.ViewAs(frac), fmt.Sprintf(format, value))
}

// tabs renders the example names with the current one highlighted.
func tabs(t themes.Theme, names []string, current int) string {
	parts := make([]string, len(names))
	for i, name := range names {
		if i == current {
			parts[i] = t.Selected.Render(" " + name + " ")
		} else {
			parts[i] = t.Faint.Render(" " + name + " ")
		}
	}
	return strings.Join(parts, "")
}

// swatch renders text in a colour.
func swatch(c lipgloss.Color, s string) string {
	return lipgloss.NewStyle().Foreground(c).Bold(true).Render(s)
}

// wrap soft-wraps a paragraph to the panel width.
func wrap(style lipgloss.Style, s string, width int) string {
	return style.Width(width).Render(s)
}

// mouseCell converts a terminal position into the canvas cell under it.
func mouseCell(x, y int) (col, row int) {
	return x - canvasOriginX, y - canvasOriginY
}
