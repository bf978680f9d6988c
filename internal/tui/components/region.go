package components

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/analysis-viz/internal/canvas"
	"github.com/Veraticus/analysis-viz/internal/geom"
	"github.com/Veraticus/analysis-viz/internal/region"
)

const (
	// regionExtent is the half-width, in display units, of the smaller side
	// of the visible plane.
	regionExtent = 200.0
	cursorStep   = 10.0
	rimSamples   = 36
)

// RegionModel classifies a probe against a planar region as interior,
// boundary or exterior.
type RegionModel struct {
	env      Env
	keys     KeyMap
	examples []region.Example
	current  int
	cursor   geom.Point
	probe    geom.Point
	hasProbe bool
	eps      float64
	phase    int
	canvas   *canvas.Canvas
}

// NewRegionModel creates the region widget.
func NewRegionModel(env Env) RegionModel {
	return RegionModel{
		env:      env,
		keys:     DefaultKeyMap(),
		examples: region.Examples(),
		eps:      region.DefaultEpsilon,
		canvas:   newCanvas(env),
	}
}

// Init initializes the model.
func (m RegionModel) Init() tea.Cmd {
	return nil
}

// Title names the diagram.
func (m RegionModel) Title() string {
	return "Interior, Exterior & Boundary Points"
}

// Keys lists the bindings shown in the help line.
func (m RegionModel) Keys() []key.Binding {
	return []key.Binding{
		withHelp(m.keys.Up, "←↑↓→", "move"),
		m.keys.Place,
		withHelp(m.keys.Grow, "+/-", "ε"),
		withHelp(m.keys.Cycle, "tab", "shape"),
		m.keys.Reset,
	}
}

// Shape returns the region being explored.
func (m RegionModel) Shape() region.Example {
	return m.examples[m.current]
}

// Probe returns the placed probe, if any.
func (m RegionModel) Probe() (geom.Point, bool) {
	return m.probe, m.hasProbe
}

// Epsilon returns the radius of the probe ball.
func (m RegionModel) Epsilon() float64 {
	return m.eps
}

// Classification returns the signed distance and class of the probe. ok is
// false when no probe has been placed.
func (m RegionModel) Classification() (dist float64, class region.Classification, ok bool) {
	if !m.hasProbe {
		return 0, 0, false
	}
	dist, class = region.Classify(m.Shape().Shape, m.probe, m.eps)
	return dist, class, true
}

// Update handles messages.
func (m RegionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.env.Width, m.env.Height = msg.Width, msg.Height
		m.canvas = newCanvas(m.env)
		slog.Debug("Region canvas resized", "cols", m.canvas.Cols(), "rows", m.canvas.Rows())

	case TickMsg:
		m.phase = msg.Phase

	case tea.MouseMsg:
		m = m.handleMouse(msg)

	case tea.KeyMsg:
		m = m.handleKey(msg)
	}
	return m, nil
}

func (m RegionModel) handleKey(msg tea.KeyMsg) RegionModel {
	switch {
	case key.Matches(msg, m.keys.Up):
		m = m.moveCursor(0, -cursorStep)
	case key.Matches(msg, m.keys.Down):
		m = m.moveCursor(0, cursorStep)
	case key.Matches(msg, m.keys.Left):
		m = m.moveCursor(-cursorStep, 0)
	case key.Matches(msg, m.keys.Right):
		m = m.moveCursor(cursorStep, 0)
	case key.Matches(msg, m.keys.Place):
		m.probe, m.hasProbe = m.cursor, true
	case key.Matches(msg, m.keys.Grow):
		m.eps = region.ClampEpsilon(m.eps + region.EpsilonStep)
	case key.Matches(msg, m.keys.Shrink):
		m.eps = region.ClampEpsilon(m.eps - region.EpsilonStep)
	case key.Matches(msg, m.keys.Cycle):
		m.current = (m.current + 1) % len(m.examples)
		m.hasProbe = false
		slog.Debug("Region shape changed", "shape", m.Shape().Key)
	case key.Matches(msg, m.keys.Reset):
		m.hasProbe = false
		m.cursor = geom.Point{}
		m.eps = region.DefaultEpsilon
	}
	return m
}

// moveCursor shifts the cursor in display units; a placed probe follows it.
func (m RegionModel) moveCursor(dx, dy float64) RegionModel {
	hw, hh := m.halfExtent()
	m.cursor = geom.Pt(
		geom.Clamp(m.cursor.X+dx, -hw, hw),
		geom.Clamp(m.cursor.Y+dy, -hh, hh),
	)
	if m.hasProbe {
		m.probe = m.cursor
	}
	return m
}

func (m RegionModel) handleMouse(msg tea.MouseMsg) RegionModel {
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.eps = region.ClampEpsilon(m.eps + region.EpsilonStep)
	case msg.Button == tea.MouseButtonWheelDown:
		m.eps = region.ClampEpsilon(m.eps - region.EpsilonStep)
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		col, row := mouseCell(msg.X, msg.Y)
		if col < 0 || row < 0 || col >= m.canvas.Cols() || row >= m.canvas.Rows() {
			return m
		}
		vp := m.viewport()
		p := geom.Pt(vp.ToDomainX(float64(col*2+1)), vp.ToDomainY(float64(row*4+2)))
		m.cursor, m.probe, m.hasProbe = p, p, true
	}
	return m
}

// unitsPerDot is how many display units one braille dot spans.
func (m RegionModel) unitsPerDot() float64 {
	side := min(m.canvas.PixelWidth(), m.canvas.PixelHeight())
	if side <= 0 {
		return 1
	}
	return 2 * regionExtent / float64(side)
}

func (m RegionModel) halfExtent() (float64, float64) {
	u := m.unitsPerDot()
	return float64(m.canvas.PixelWidth()) * u / 2, float64(m.canvas.PixelHeight()) * u / 2
}

// viewport maps display units, origin at the centre and y growing down, onto
// the canvas.
func (m RegionModel) viewport() geom.Viewport {
	hw, hh := m.halfExtent()
	return m.canvas.Viewport(-hw, hw, hh, -hh)
}

// View renders the widget.
func (m RegionModel) View() string {
	m.draw()
	return compose(m.env, m.Title(), m.canvas, m.panel())
}

func (m RegionModel) draw() {
	c := m.canvas
	c.Clear()
	t := m.env.Theme
	vp := m.viewport()
	u := m.unitsPerDot()
	shape := m.Shape().Shape

	c.Fill(func(px geom.Point) bool {
		if (int(px.X)+int(px.Y))%3 != 0 {
			return false
		}
		return region.Contains(shape, geom.Pt(vp.ToDomainX(px.X), vp.ToDomainY(px.Y)))
	}, t.Interior)
	c.Fill(func(px geom.Point) bool {
		d := region.SignedDistance(shape, geom.Pt(vp.ToDomainX(px.X), vp.ToDomainY(px.Y)))
		return d > -u/2 && d <= u/2
	}, t.Boundary)

	if !m.hasProbe {
		c.TextAt(vp.ToScreen(m.cursor), "+", t.Highlight)
		return
	}

	_, class := region.Classify(shape, m.probe, m.eps)
	center := vp.ToScreen(m.probe)
	phase := 0
	if m.env.Animations {
		phase = m.phase
	}
	c.DashedCircle(center, m.eps/u, 3, phase, m.classColor(class))
	if class == region.Boundary {
		for _, s := range region.BoundarySamples(shape, m.probe, m.eps, rimSamples) {
			col := t.Exterior
			if s.InSet {
				col = t.Interior
			}
			c.Plot(vp.ToScreen(s.Point), col)
		}
	}
	c.TextAt(center, "●", m.classColor(class))
}

func (m RegionModel) classColor(c region.Classification) lipgloss.Color {
	t := m.env.Theme
	switch c {
	case region.Interior:
		return t.Interior
	case region.Boundary:
		return t.Boundary
	default:
		return t.Exterior
	}
}

func (m RegionModel) panel() []string {
	t := m.env.Theme
	names := make([]string, len(m.examples))
	for i, ex := range m.examples {
		names[i] = ex.Name
	}
	lines := []string{
		tabs(t, names, m.current),
		"",
		t.Bold.Render(m.Shape().Label),
		meter(t, "ε", m.eps, region.MinEpsilon, region.MaxEpsilon, "%3.0f"),
		"",
	}

	dist, class, ok := m.Classification()
	if !ok {
		return append(lines,
			t.StatusMuted.Render("No probe placed."),
			wrap(t.Normal, "Move the cursor and press space, or click, to drop a probe point x.", panelText),
		)
	}
	return append(lines,
		swatch(m.classColor(class), class.Label()),
		fmt.Sprintf("x = (%.0f, %.0f)", m.probe.X, -m.probe.Y),
		wrap(t.Normal, region.Explanation(class, m.eps), panelText),
		"",
		t.Faint.Render(fmt.Sprintf("signed distance %.1f", dist)),
	)
}
