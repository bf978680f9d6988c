package components

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/analysis-viz/internal/canvas"
	"github.com/Veraticus/analysis-viz/internal/convergence"
	"github.com/Veraticus/analysis-viz/internal/geom"
)

// Keyboard steps for the convergence parameters.
const (
	epsilonKeyStep = 0.05
	deltaKeyStep   = 0.02
)

// axes draws the coordinate axes where they fall inside the viewport.
func axes(c *canvas.Canvas, vp geom.Viewport, col lipgloss.Color) {
	if vp.YMin <= 0 && vp.YMax >= 0 {
		c.Line(vp.ToScreen(geom.Pt(vp.XMin, 0)), vp.ToScreen(geom.Pt(vp.XMax, 0)), col)
	}
	if vp.XMin <= 0 && vp.XMax >= 0 {
		c.Line(vp.ToScreen(geom.Pt(0, vp.YMin)), vp.ToScreen(geom.Pt(0, vp.YMax)), col)
	}
}

// shade sets a sparse pattern of dots inside a domain rectangle.
func shade(c *canvas.Canvas, vp geom.Viewport, x0, x1, y0, y1 float64, col lipgloss.Color) {
	c.Fill(func(px geom.Point) bool {
		if (int(px.X)+2*int(px.Y))%5 != 0 {
			return false
		}
		x, y := vp.ToDomainX(px.X), vp.ToDomainY(px.Y)
		return x >= x0 && x <= x1 && y >= y0 && y <= y1
	}, col)
}

// hline draws a dotted horizontal line at y.
func hline(c *canvas.Canvas, vp geom.Viewport, y float64, col lipgloss.Color) {
	py := vp.ToScreenY(y)
	for x := 0; x < c.PixelWidth(); x += 2 {
		c.Plot(geom.Pt(float64(x), py), col)
	}
}

// vline draws a dotted vertical line at x.
func vline(c *canvas.Canvas, vp geom.Viewport, x float64, col lipgloss.Color) {
	px := vp.ToScreenX(x)
	for y := 0; y < c.PixelHeight(); y += 2 {
		c.Plot(geom.Pt(px, float64(y)), col)
	}
}

func toScreen(vp geom.Viewport, pts []geom.Point) []geom.Point {
	out := make([]geom.Point, len(pts))
	for i, p := range pts {
		out[i] = vp.ToScreen(p)
	}
	return out
}

// EpsDeltaModel explores the ε–δ definition of a limit of a function at a
// point.
type EpsDeltaModel struct {
	env       Env
	keys      KeyMap
	functions []convergence.Function
	current   int
	eps       float64
	delta     float64
	bands     bool
	trace     bool
	canvas    *canvas.Canvas
}

// NewEpsDeltaModel creates the ε–δ widget.
func NewEpsDeltaModel(env Env) EpsDeltaModel {
	return EpsDeltaModel{
		env:       env,
		keys:      DefaultKeyMap(),
		functions: convergence.Functions(),
		eps:       convergence.DefaultEpsilon,
		delta:     convergence.DefaultDelta,
		bands:     true,
		trace:     true,
		canvas:    newCanvas(env),
	}
}

// Init initializes the model.
func (m EpsDeltaModel) Init() tea.Cmd {
	return nil
}

// Title names the diagram.
func (m EpsDeltaModel) Title() string {
	return "Convergence of a Function to a Point"
}

// Keys lists the bindings shown in the help line.
func (m EpsDeltaModel) Keys() []key.Binding {
	return []key.Binding{
		withHelp(m.keys.Cycle, "tab", "function"),
		m.keys.EpsDown,
		m.keys.DeltaDown,
		m.keys.Bands,
		m.keys.Trace,
	}
}

// Function returns the function being explored.
func (m EpsDeltaModel) Function() convergence.Function {
	return m.functions[m.current]
}

// Params returns ε and δ.
func (m EpsDeltaModel) Params() (eps, delta float64) {
	return m.eps, m.delta
}

// Trace returns the probe points of the δ-window.
func (m EpsDeltaModel) Trace() []convergence.TracePoint {
	return convergence.Trace(m.Function(), m.eps, m.delta, convergence.TracePoints)
}

// Update handles messages.
func (m EpsDeltaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.env.Width, m.env.Height = msg.Width, msg.Height
		m.canvas = newCanvas(m.env)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Cycle):
			m.current = (m.current + 1) % len(m.functions)
			slog.Debug("Function changed", "function", m.Function().Key)
		case key.Matches(msg, m.keys.EpsUp):
			m.eps = convergence.ClampEpsilon(m.eps + epsilonKeyStep)
		case key.Matches(msg, m.keys.EpsDown):
			m.eps = convergence.ClampEpsilon(m.eps - epsilonKeyStep)
		case key.Matches(msg, m.keys.DeltaUp):
			m.delta = convergence.ClampDelta(m.delta + deltaKeyStep)
		case key.Matches(msg, m.keys.DeltaDown):
			m.delta = convergence.ClampDelta(m.delta - deltaKeyStep)
		case key.Matches(msg, m.keys.Bands):
			m.bands = !m.bands
		case key.Matches(msg, m.keys.Trace):
			m.trace = !m.trace
		}
	}
	return m, nil
}

// View renders the widget.
func (m EpsDeltaModel) View() string {
	m.draw()
	return compose(m.env, m.Title(), m.canvas, m.panel())
}

func (m EpsDeltaModel) draw() {
	c := m.canvas
	c.Clear()
	t := m.env.Theme
	f := m.Function()
	vp := c.Viewport(f.Domain.Min, f.Domain.Max, f.Range.Min, f.Range.Max)

	axes(c, vp, t.Axis)
	if m.bands {
		shade(c, vp, f.Domain.Min, f.Domain.Max, f.Y0-m.eps, f.Y0+m.eps, t.Good)
		shade(c, vp, f.X0-m.delta, f.X0+m.delta, f.Range.Min, f.Range.Max, t.Secondary)
		hline(c, vp, f.Y0-m.eps, t.Good)
		hline(c, vp, f.Y0+m.eps, t.Good)
		vline(c, vp, f.X0-m.delta, t.Secondary)
		vline(c, vp, f.X0+m.delta, t.Secondary)
	}

	for _, line := range f.Curve(convergence.PlotSteps) {
		c.Polyline(toScreen(vp, line), t.Foreground)
	}

	if m.trace {
		for _, tp := range m.Trace() {
			col := t.Bad
			if tp.InEps {
				col = t.Good
			}
			c.Disc(vp.ToScreen(geom.Pt(tp.X, tp.Y)), 1.5, col)
		}
	}
	c.Circle(vp.ToScreen(geom.Pt(f.X0, f.Y0)), 2, t.Boundary)
	c.TextAt(vp.ToScreen(geom.Pt(f.X0, f.Y0)).Add(geom.Pt(4, -4)), "(x₀, L)", t.Boundary)
}

func (m EpsDeltaModel) panel() []string {
	t := m.env.Theme
	f := m.Function()
	names := make([]string, len(m.functions))
	for i, fn := range m.functions {
		names[i] = fn.Key
	}

	lines := []string{
		tabs(t, names, m.current),
		"",
		t.Bold.Render(f.Name),
		wrap(t.Faint, f.Desc, panelText),
		fmt.Sprintf("x₀ = %g, L = %g", f.X0, f.Y0),
		"",
		meter(t, "ε", m.eps, convergence.MinEpsilon, convergence.MaxEpsilon, "%.2f"),
		meter(t, "δ", m.delta, convergence.MinDelta, convergence.MaxDelta, "%.2f"),
		"",
	}

	trace := m.Trace()
	inside := 0
	for _, tp := range trace {
		if tp.InEps {
			inside++
		}
	}
	if convergence.AllInside(trace) {
		lines = append(lines, swatch(t.Good, "✓ δ works for this ε"),
			wrap(t.Normal, "Every sampled x with 0 < |x - x₀| < δ lands in the ε-band.", panelText))
	} else {
		lines = append(lines, swatch(t.Bad, "✗ δ too large"),
			wrap(t.Normal, fmt.Sprintf("%d of %d sampled points escape the ε-band. Shrink δ.", len(trace)-inside, len(trace)), panelText))
	}
	return lines
}

// PowerConvModel contrasts pointwise and uniform convergence of xⁿ.
type PowerConvModel struct {
	env     Env
	keys    KeyMap
	uniform bool
	n       int
	eps     float64
	canvas  *canvas.Canvas
}

// NewPowerConvModel creates the pointwise-versus-uniform widget.
func NewPowerConvModel(env Env) PowerConvModel {
	return PowerConvModel{
		env:    env,
		keys:   DefaultKeyMap(),
		n:      convergence.DefaultPower,
		eps:    convergence.DefaultPowerEps,
		canvas: newCanvas(env),
	}
}

// Init initializes the model.
func (m PowerConvModel) Init() tea.Cmd {
	return nil
}

// Title names the diagram.
func (m PowerConvModel) Title() string {
	return "Pointwise vs Uniform Convergence"
}

// Keys lists the bindings shown in the help line.
func (m PowerConvModel) Keys() []key.Binding {
	return []key.Binding{
		withHelp(m.keys.Cycle, "tab", "pointwise/uniform"),
		withHelp(m.keys.Grow, "+/-", "n"),
		m.keys.EpsDown,
	}
}

// Uniform reports whether the uniform view is shown.
func (m PowerConvModel) Uniform() bool {
	return m.uniform
}

// Params returns n and ε.
func (m PowerConvModel) Params() (int, float64) {
	return m.n, m.eps
}

// Sup returns the supremum of |fₙ - f| on the current domain.
func (m PowerConvModel) Sup() float64 {
	if m.uniform {
		return convergence.UniformSup(m.n)
	}
	return convergence.PointwiseSupEstimate(m.n)
}

func (m PowerConvModel) window() (domain, rng convergence.Range) {
	if m.uniform {
		return convergence.UniformDomain, convergence.UniformRange
	}
	return convergence.PointwiseDomain, convergence.PointwiseRange
}

// Update handles messages.
func (m PowerConvModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.env.Width, m.env.Height = msg.Width, msg.Height
		m.canvas = newCanvas(m.env)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Cycle):
			m.uniform = !m.uniform
		case key.Matches(msg, m.keys.Grow):
			m.n = convergence.ClampPower(m.n + 1)
		case key.Matches(msg, m.keys.Shrink):
			m.n = convergence.ClampPower(m.n - 1)
		case key.Matches(msg, m.keys.EpsUp):
			m.eps = convergence.ClampPowerEpsilon(m.eps + convergence.PowerEpsilonStep)
		case key.Matches(msg, m.keys.EpsDown):
			m.eps = convergence.ClampPowerEpsilon(m.eps - convergence.PowerEpsilonStep)
		}
	}
	return m, nil
}

// View renders the widget.
func (m PowerConvModel) View() string {
	m.draw()
	return compose(m.env, m.Title(), m.canvas, m.panel())
}

func (m PowerConvModel) draw() {
	c := m.canvas
	c.Clear()
	t := m.env.Theme
	domain, rng := m.window()
	vp := c.Viewport(domain.Min, domain.Max, rng.Min, rng.Max)

	axes(c, vp, t.Axis)
	shade(c, vp, domain.Min, domain.Max, -m.eps, m.eps, t.Accumulation)
	hline(c, vp, m.eps, t.Accumulation)
	hline(c, vp, -m.eps, t.Accumulation)

	if !convergence.InsideBand(m.Sup(), m.eps) {
		x := convergence.EscapeX(m.eps, m.n)
		shade(c, vp, x, domain.Max, rng.Min, rng.Max, t.Bad)
		shade(c, vp, domain.Min, -x, rng.Min, rng.Max, t.Bad)
	}

	pts := convergence.Sample(convergence.Power(m.n), domain.Min, domain.Max, convergence.PowerSampleSteps)
	c.Polyline(toScreen(vp, pts), t.Secondary)
}

func (m PowerConvModel) panel() []string {
	t := m.env.Theme
	domain, _ := m.window()
	names := []string{"pointwise (-1, 1)", "uniform [-½, ½]"}
	current := 0
	if m.uniform {
		current = 1
	}

	lines := []string{
		tabs(t, names, current),
		"",
		t.Bold.Render(fmt.Sprintf("fₙ(x) = x^%d on [%g, %g]", m.n, domain.Min, domain.Max)),
		meter(t, "n", float64(m.n), convergence.MinPower, convergence.MaxPower, "%2.0f"),
		meter(t, "ε", m.eps, convergence.MinPowerEpsilon, convergence.MaxPowerEpsilon, "%.2f"),
		"",
		fmt.Sprintf("sup |fₙ - f| ≈ %.4f", m.Sup()),
	}
	if convergence.InsideBand(m.Sup(), m.eps) {
		lines = append(lines, swatch(t.Good, "✓ inside the ε-band everywhere"))
	} else {
		lines = append(lines, swatch(t.Bad, "✗ escapes the ε-band"),
			t.Faint.Render(fmt.Sprintf("|x| > %.3f leaves the band", convergence.EscapeX(m.eps, m.n))))
	}
	lines = append(lines, "")
	if m.uniform {
		lines = append(lines, wrap(t.Normal, "On [-½, ½] the sup is 0.5ⁿ, which drops below any ε: the convergence is uniform.", panelText))
	} else {
		lines = append(lines, wrap(t.Normal, "On (-1, 1) each x converges, but points near ±1 stay far from 0 for every n: the convergence is only pointwise.", panelText))
	}
	return lines
}
