package components

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/analysis-viz/internal/canvas"
	"github.com/Veraticus/analysis-viz/internal/geom"
	"github.com/Veraticus/analysis-viz/internal/pointset"
)

// PointSetModel classifies a probe against a finite point set as adherent,
// accumulation or isolated.
type PointSetModel struct {
	env      Env
	keys     KeyMap
	examples []pointset.Example
	current  int
	set      pointset.PointSet
	width    float64
	height   float64
	cursor   geom.Point
	probe    geom.Point
	hasProbe bool
	eps      float64
	phase    int
	canvas   *canvas.Canvas
}

// NewPointSetModel creates the point-set widget and generates its first
// example.
func NewPointSetModel(env Env) PointSetModel {
	m := PointSetModel{
		env:      env,
		keys:     DefaultKeyMap(),
		examples: pointset.Examples(),
		eps:      pointset.DefaultEpsilon,
		canvas:   newCanvas(env),
	}
	m = m.regenerate()
	m.cursor = geom.Pt(m.width/2, m.height/2)
	return m
}

// Init initializes the model.
func (m PointSetModel) Init() tea.Cmd {
	return nil
}

// Title names the diagram.
func (m PointSetModel) Title() string {
	return "Adherent, Accumulation & Isolated Points"
}

// Keys lists the bindings shown in the help line.
func (m PointSetModel) Keys() []key.Binding {
	return []key.Binding{
		withHelp(m.keys.Up, "←↑↓→", "move"),
		m.keys.Place,
		withHelp(m.keys.Grow, "+/-", "ε"),
		withHelp(m.keys.Cycle, "tab", "example"),
		m.keys.Reset,
	}
}

// Example returns the current example set description.
func (m PointSetModel) Example() pointset.Example {
	return m.examples[m.current]
}

// Set returns the generated points.
func (m PointSetModel) Set() pointset.PointSet {
	return m.set
}

// Surface returns the display-unit size the set was generated on.
func (m PointSetModel) Surface() (float64, float64) {
	return m.width, m.height
}

// Probe returns the placed probe, if any.
func (m PointSetModel) Probe() (geom.Point, bool) {
	return m.probe, m.hasProbe
}

// Epsilon returns the radius of the probe ball.
func (m PointSetModel) Epsilon() float64 {
	return m.eps
}

// Thresholds returns the tolerances scaled to the current surface.
func (m PointSetModel) Thresholds() pointset.Thresholds {
	return pointset.ScaledThresholds(m.env.Thresholds, m.width, m.height, m.env.ReferenceSize)
}

// Classify returns the exact and ε-ball classifications of the probe.
func (m PointSetModel) Classify() (pointset.Exact, pointset.Approx, bool) {
	if !m.hasProbe {
		return pointset.Exact{}, pointset.Approx{}, false
	}
	th := m.Thresholds()
	return pointset.ClassifyExact(m.set, m.probe, th), pointset.ClassifyApprox(m.set, m.probe, m.eps, th), true
}

// regenerate sizes the surface to the canvas aspect ratio and rebuilds the
// current example. The probe is cleared because its meaning changes with
// the set.
func (m PointSetModel) regenerate() PointSetModel {
	pw, ph := float64(m.canvas.PixelWidth()), float64(m.canvas.PixelHeight())
	side := math.Min(m.env.CanvasWidth, m.env.CanvasHeight)
	if side <= 0 {
		side = 420
	}
	k := side / math.Min(pw, ph)
	m.width, m.height = pw*k, ph*k

	set, err := pointset.Generate(m.Example().Key, m.width, m.height, pointset.NewRandom(m.env.Seed))
	if err != nil {
		slog.Error("Failed to generate point set", "example", m.Example().Key, "error", err)
		set = nil
	}
	m.set = set
	m.hasProbe = false
	m.cursor = geom.Pt(
		geom.Clamp(m.cursor.X, 0, m.width),
		geom.Clamp(m.cursor.Y, 0, m.height),
	)
	slog.Debug("Point set generated", "example", m.Example().Key, "points", len(set))
	return m
}

// Update handles messages.
func (m PointSetModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.env.Width, m.env.Height = msg.Width, msg.Height
		m.canvas = newCanvas(m.env)
		m = m.regenerate()

	case TickMsg:
		m.phase = msg.Phase

	case tea.MouseMsg:
		m = m.handleMouse(msg)

	case tea.KeyMsg:
		m = m.handleKey(msg)
	}
	return m, nil
}

func (m PointSetModel) handleKey(msg tea.KeyMsg) PointSetModel {
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
		m.eps = pointset.ClampEpsilon(m.eps + pointset.EpsilonStep)
	case key.Matches(msg, m.keys.Shrink):
		m.eps = pointset.ClampEpsilon(m.eps - pointset.EpsilonStep)
	case key.Matches(msg, m.keys.Cycle):
		m.current = (m.current + 1) % len(m.examples)
		m = m.regenerate()
	case key.Matches(msg, m.keys.Reset):
		m.hasProbe = false
		m.eps = pointset.DefaultEpsilon
		m.cursor = geom.Pt(m.width/2, m.height/2)
	}
	return m
}

func (m PointSetModel) moveCursor(dx, dy float64) PointSetModel {
	m.cursor = geom.Pt(
		geom.Clamp(m.cursor.X+dx, 0, m.width),
		geom.Clamp(m.cursor.Y+dy, 0, m.height),
	)
	if m.hasProbe {
		m.probe = m.cursor
	}
	return m
}

func (m PointSetModel) handleMouse(msg tea.MouseMsg) PointSetModel {
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.eps = pointset.ClampEpsilon(m.eps + pointset.EpsilonStep)
	case msg.Button == tea.MouseButtonWheelDown:
		m.eps = pointset.ClampEpsilon(m.eps - pointset.EpsilonStep)
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

// viewport maps the surface, y growing down, onto the canvas.
func (m PointSetModel) viewport() geom.Viewport {
	return m.canvas.Viewport(0, m.width, m.height, 0)
}

// View renders the widget.
func (m PointSetModel) View() string {
	m.draw()
	return compose(m.env, m.Title(), m.canvas, m.panel())
}

func (m PointSetModel) draw() {
	c := m.canvas
	c.Clear()
	t := m.env.Theme
	vp := m.viewport()

	exact, approx, ok := m.Classify()
	inBall := map[int]bool{}
	if ok {
		for _, i := range approx.InBall {
			inBall[i] = true
		}
	}
	for i, p := range m.set {
		col := t.Foreground
		if inBall[i] {
			col = t.Accumulation
		}
		c.Plot(vp.ToScreen(p), col)
	}

	if !ok {
		c.TextAt(vp.ToScreen(m.cursor), "+", t.Highlight)
		return
	}

	u := m.width / float64(c.PixelWidth())
	center := vp.ToScreen(m.probe)
	phase := 0
	if m.env.Animations {
		phase = m.phase
	}
	col := m.labelColor(exact.Label())
	c.DashedCircle(center, m.eps/u, 3, phase, col)
	if exact.IsIsolated && exact.NearestOther >= 0 {
		c.Line(center, vp.ToScreen(m.set[exact.NearestOther]), t.Muted)
	}
	c.TextAt(center, "x", col)
}

func (m PointSetModel) labelColor(l pointset.Label) lipgloss.Color {
	t := m.env.Theme
	switch l {
	case pointset.LabelIsolated:
		return t.Isolated
	case pointset.LabelAccumulation:
		return t.Accumulation
	case pointset.LabelAdherent:
		return t.Adherent
	default:
		return t.Muted
	}
}

func check(faint lipgloss.Style, ok bool, c lipgloss.Color, name string) string {
	if ok {
		return swatch(c, "✓ "+name)
	}
	return faint.Render("✗ " + name)
}

func (m PointSetModel) panel() []string {
	t := m.env.Theme
	names := make([]string, len(m.examples))
	for i, ex := range m.examples {
		names[i] = ex.Name
	}
	lines := []string{
		tabs(t, names, m.current),
		wrap(t.Normal, m.Example().Description, panelText),
		"",
		meter(t, "ε", m.eps, pointset.MinEpsilon, pointset.MaxEpsilon, "%3.0f"),
		"",
	}

	exact, approx, ok := m.Classify()
	if !ok {
		return append(lines,
			t.StatusMuted.Render("No probe placed."),
			wrap(t.Normal, "Move the cursor and press space, or click, to test a point x.", panelText),
		)
	}

	lines = append(lines, swatch(m.labelColor(exact.Label()), exactHeadline(exact)), "")

	adherent := "Every ball around x intersects S"
	if !exact.IsAdherent {
		adherent = fmt.Sprintf("Nearest set point is %.0f away, a smaller ball misses S", exact.SelfDistance)
	}
	accumulation := "Every ball catches other set points nearby"
	switch {
	case exact.IsAccumulation:
	case exact.InSet:
		accumulation = fmt.Sprintf("Nearest other point is %.0f away, a smaller ball isolates x", exact.NearestOtherDistance)
	default:
		accumulation = "No cluster of set points converges to x"
	}
	isolated := "Other set points are arbitrarily close"
	switch {
	case exact.IsIsolated:
		isolated = fmt.Sprintf("x ∈ S and nearest other point is %.0f away", exact.NearestOtherDistance)
	case !exact.InSet:
		isolated = "x ∉ S, so it cannot be isolated"
	}

	lines = append(lines,
		check(t.Faint, exact.IsAdherent, t.Adherent, "Adherent"),
		wrap(t.Faint, adherent, panelText),
		check(t.Faint, exact.IsAccumulation, t.Accumulation, "Accumulation"),
		wrap(t.Faint, accumulation, panelText),
		check(t.Faint, exact.IsIsolated, t.Isolated, "Isolated"),
		wrap(t.Faint, isolated, panelText),
		"",
	)

	ball := "is empty of set points"
	switch {
	case approx.HasOtherSetPointInBall:
		ball = fmt.Sprintf("catches %d set points", len(approx.InBall))
	case approx.HasSetPointInBall:
		ball = "catches only x itself"
	}
	return append(lines, wrap(t.Normal, fmt.Sprintf("Current B(x, %.0f) %s.", m.eps, ball), panelText))
}

func exactHeadline(e pointset.Exact) string {
	switch {
	case e.IsIsolated:
		return "ISOLATED"
	case e.IsAccumulation && e.InSet:
		return "ACCUMULATION (in S)"
	case e.IsAccumulation:
		return "ACCUMULATION (not in S)"
	case e.IsAdherent:
		return "ADHERENT"
	default:
		return "NOT ADHERENT"
	}
}
