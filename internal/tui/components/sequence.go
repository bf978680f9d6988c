package components

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/analysis-viz/internal/canvas"
	"github.com/Veraticus/analysis-viz/internal/common"
	"github.com/Veraticus/analysis-viz/internal/geom"
	"github.com/Veraticus/analysis-viz/internal/routes"
	"github.com/Veraticus/analysis-viz/internal/sequence"
)

// Bounds of the shift c in the compatibility view.
const (
	defaultShift = 0.3
	minShift     = -0.5
	maxShift     = 0.5
	shiftStep    = 0.1
)

// param is the adjustable value of a sequence view.
type param struct {
	label        string
	value        float64
	def          float64
	lo, hi, step float64
	format       string
}

func (p param) nudge(dir float64) param {
	if p.step == 0 {
		return p
	}
	p.value = sequence.Step(p.value, dir*p.step, p.lo, p.hi)
	return p
}

// seqView is one tab of a sequence widget.
type seqView struct {
	key  string
	name string
}

// SequenceModel shows the sequence diagrams: limits, approximation from
// below, the √2 grid and the order of the reals.
type SequenceModel struct {
	env     Env
	keys    KeyMap
	id      string
	views   []seqView
	params  []param
	current int
	canvas  *canvas.Canvas
}

// NewSequenceModel creates the widget for one of the sequence routes.
func NewSequenceModel(env Env, id string) (SequenceModel, error) {
	m := SequenceModel{
		env:    env,
		keys:   DefaultKeyMap(),
		id:     id,
		canvas: newCanvas(env),
	}
	switch id {
	case routes.SeqLimits:
		m.add("within", "within r of L", &param{label: "r", def: sequence.DefaultRadius, lo: sequence.MinRadius, hi: sequence.MaxRadius, step: sequence.RadiusStep, format: "%.2f"})
		m.add("above", "eventually ≥ a", &param{label: "a", def: sequence.DefaultLowerBound, lo: sequence.MinLowerBound, hi: sequence.MaxLowerBound, step: sequence.LowerBoundStep, format: "%.2f"})
	case routes.SeqFromBelow:
		m.add("below", "xₖ ↑ x", &param{label: "x", def: sequence.DefaultBelowX, lo: sequence.MinBelowX, hi: sequence.MaxBelowX, step: sequence.BelowXStep, format: "%.1f"})
		m.add("ceiling", "m < a ≤ m+1", &param{label: "a", def: sequence.DefaultCeilingA, lo: sequence.MinCeilingA, hi: sequence.MaxCeilingA, step: sequence.CeilingStep, format: "%.1f"})
	case routes.Root2:
		m.add("grid", "grid k/q", &param{label: "q", def: sequence.DefaultDenominator, lo: sequence.MinDenominator, hi: sequence.MaxDenominator, step: 1, format: "%.0f"})
	case routes.OrderViz:
		for _, v := range sequence.OrderViews() {
			var p *param
			if v.Key == "compatibility" {
				p = &param{label: "c", def: defaultShift, lo: minShift, hi: maxShift, step: shiftStep, format: "%+.1f"}
			}
			m.add(v.Key, v.Key, p)
		}
	default:
		return SequenceModel{}, fmt.Errorf("%w: %q is not a sequence diagram", common.ErrUnknownRoute, id)
	}
	return m, nil
}

// add appends a view; a nil p means the view has nothing to adjust.
func (m *SequenceModel) add(key, name string, p *param) {
	m.views = append(m.views, seqView{key: key, name: name})
	if p == nil {
		m.params = append(m.params, param{})
		return
	}
	p.value = p.def
	m.params = append(m.params, *p)
}

// Init initializes the model.
func (m SequenceModel) Init() tea.Cmd {
	return nil
}

// Title names the diagram.
func (m SequenceModel) Title() string {
	if r, err := routes.Lookup(m.id); err == nil {
		return r.Title
	}
	return m.id
}

// Keys lists the bindings shown in the help line.
func (m SequenceModel) Keys() []key.Binding {
	var keys []key.Binding
	if len(m.views) > 1 {
		keys = append(keys, withHelp(m.keys.Cycle, "tab", "view"))
	}
	if p := m.params[m.current]; p.step != 0 {
		keys = append(keys, withHelp(m.keys.Grow, "+/-", p.label))
	}
	return append(keys, m.keys.Reset)
}

// ViewKey returns the key of the current view.
func (m SequenceModel) ViewKey() string {
	return m.views[m.current].key
}

// Param returns the current view's parameter value.
func (m SequenceModel) Param() float64 {
	return m.params[m.current].value
}

// Update handles messages.
func (m SequenceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.env.Width, m.env.Height = msg.Width, msg.Height
		m.canvas = newCanvas(m.env)

	case tea.KeyMsg:
		params := append([]param(nil), m.params...)
		switch {
		case key.Matches(msg, m.keys.Cycle):
			m.current = (m.current + 1) % len(m.views)
			slog.Debug("Sequence view changed", "id", m.id, "view", m.ViewKey())
		case key.Matches(msg, m.keys.Grow):
			params[m.current] = params[m.current].nudge(1)
		case key.Matches(msg, m.keys.Shrink):
			params[m.current] = params[m.current].nudge(-1)
		case key.Matches(msg, m.keys.Reset):
			for i := range params {
				params[i].value = params[i].def
			}
		}
		m.params = params
	}
	return m, nil
}

// View renders the widget.
func (m SequenceModel) View() string {
	m.canvas.Clear()
	var panel []string
	switch m.ViewKey() {
	case "within":
		panel = m.drawWithin()
	case "above":
		panel = m.drawAbove()
	case "below":
		panel = m.drawBelow()
	case "ceiling":
		panel = m.drawCeiling()
	case "grid":
		panel = m.drawRoot2()
	default:
		panel = m.drawOrder()
	}

	t := m.env.Theme
	names := make([]string, len(m.views))
	for i, v := range m.views {
		names[i] = v.name
	}
	head := []string{}
	if len(m.views) > 1 {
		head = append(head, tabs(t, names, m.current), "")
	}
	if p := m.params[m.current]; p.step != 0 {
		head = append(head, meter(t, p.label, p.value, p.lo, p.hi, p.format), "")
	}
	return compose(m.env, m.Title(), m.canvas, append(head, panel...))
}

// terms draws a sequence as dots at (k, aₖ), coloured by col.
func (m SequenceModel) terms(vp geom.Viewport, seq []float64, col func(k int, v float64) lipgloss.Color) {
	for i, v := range seq {
		m.canvas.Disc(vp.ToScreen(geom.Pt(float64(i+1), v)), 1, col(i+1, v))
	}
}

func (m SequenceModel) drawWithin() []string {
	t := m.env.Theme
	seq := sequence.WithinTerms()
	r := m.Param()
	n := sequence.IndexWithin(seq, sequence.Limit, r)
	vp := m.canvas.Viewport(0, float64(len(seq)+1), 0.6, 2.4)

	shade(m.canvas, vp, 0, float64(len(seq)+1), sequence.Limit-r, sequence.Limit+r, t.Good)
	hline(m.canvas, vp, sequence.Limit, t.Good)
	vline(m.canvas, vp, float64(n), t.Boundary)
	m.canvas.TextAt(vp.ToScreen(geom.Pt(float64(n), 2.35)), fmt.Sprintf("N=%d", n), t.Boundary)
	m.terms(vp, seq, func(k int, v float64) lipgloss.Color {
		switch {
		case math.Abs(v-sequence.Limit) >= r:
			return t.Bad
		case k >= n:
			return t.Good
		default:
			return t.Muted
		}
	})

	return []string{
		t.Bold.Render(fmt.Sprintf("aₖ → L = %g", sequence.Limit)),
		swatch(t.Boundary, fmt.Sprintf("N = %d", n)),
		wrap(t.Normal, fmt.Sprintf("Every term from k = %d on lies in (L - r, L + r). Shrinking r pushes N to the right, but some N always exists.", n), panelText),
	}
}

func (m SequenceModel) drawAbove() []string {
	t := m.env.Theme
	seq := sequence.AboveTerms()
	a := m.Param()
	n := sequence.IndexAbove(seq, a)
	vp := m.canvas.Viewport(0, float64(len(seq)+1), 0.6, 2.4)

	hline(m.canvas, vp, sequence.Limit, t.Muted)
	hline(m.canvas, vp, a, t.Accumulation)
	if n <= len(seq) {
		vline(m.canvas, vp, float64(n), t.Boundary)
	}
	m.terms(vp, seq, func(k int, v float64) lipgloss.Color {
		if v < a {
			return t.Bad
		}
		return t.Good
	})

	verdict := fmt.Sprintf("From k = %d on, aₖ ≥ a.", n)
	if n > len(seq) {
		verdict = "No drawn tail stays above a: a must be below the limit."
	}
	return []string{
		t.Bold.Render(fmt.Sprintf("a < L = %g ⇒ aₖ ≥ a eventually", sequence.Limit)),
		wrap(t.Normal, verdict, panelText),
	}
}

func (m SequenceModel) drawBelow() []string {
	t := m.env.Theme
	x := m.Param()
	seq := sequence.FromBelow(x, sequence.BelowTerms)
	vp := m.canvas.Viewport(0, float64(len(seq)+1), x-1.1, x+0.3)

	hline(m.canvas, vp, x, t.Good)
	m.canvas.TextAt(vp.ToScreen(geom.Pt(float64(len(seq)), x+0.15)), "x", t.Good)
	pts := make([]geom.Point, len(seq))
	for i, v := range seq {
		pts[i] = vp.ToScreen(geom.Pt(float64(i+1), v))
	}
	m.canvas.Polyline(pts, t.Muted)
	m.terms(vp, seq, func(int, float64) lipgloss.Color { return t.Secondary })

	last := seq[len(seq)-1]
	return []string{
		t.Bold.Render("xₖ = (⌈kx⌉ - 1)/k"),
		wrap(t.Normal, fmt.Sprintf("Every term is strictly below x = %.1f and x - xₖ ≤ 1/k. Here x₂₀ = %.4f.", x, last), panelText),
	}
}

func (m SequenceModel) drawCeiling() []string {
	t := m.env.Theme
	a := m.Param()
	mm := sequence.Ceiling(a)
	vp := m.canvas.Viewport(-1.5, 6.5, -1, 1)

	m.canvas.Line(vp.ToScreen(geom.Pt(-1.5, 0)), vp.ToScreen(geom.Pt(6.5, 0)), t.Axis)
	for k := -1; k <= 6; k++ {
		p := vp.ToScreen(geom.Pt(float64(k), 0))
		m.canvas.Disc(p, 1, t.Muted)
		m.canvas.TextAt(p.Add(geom.Pt(0, 6)), fmt.Sprint(k), t.Muted)
	}
	shade(m.canvas, vp, float64(mm), float64(mm+1), -0.2, 0.2, t.Good)
	m.canvas.Disc(vp.ToScreen(geom.Pt(a, 0)), 2, t.Boundary)
	m.canvas.TextAt(vp.ToScreen(geom.Pt(a, 0.5)), "a", t.Boundary)

	return []string{
		t.Bold.Render(fmt.Sprintf("m = %d", mm)),
		wrap(t.Normal, fmt.Sprintf("%d < %.1f ≤ %d: the Archimedean property pins every real between consecutive integers.", mm, a, mm+1), panelText),
	}
}

func (m SequenceModel) drawRoot2() []string {
	t := m.env.Theme
	g := sequence.NewSqrt2Grid(int(math.Round(m.Param())))
	vp := m.canvas.Viewport(-0.1, 2.1, -1, 1)

	m.canvas.Line(vp.ToScreen(geom.Pt(0, 0)), vp.ToScreen(geom.Pt(2, 0)), t.Axis)
	shade(m.canvas, vp, g.X, g.Upper(), -0.25, 0.25, t.Good)
	for _, v := range g.Points {
		col := t.Muted
		switch {
		case math.Abs(v-g.X) < 1e-9:
			col = t.Good
		case math.Abs(v-g.Upper()) < 1e-9:
			col = t.Boundary
		}
		m.canvas.Disc(vp.ToScreen(geom.Pt(v, 0)), 1, col)
	}
	vline(m.canvas, vp, math.Sqrt2, t.Bad)
	m.canvas.TextAt(vp.ToScreen(geom.Pt(math.Sqrt2, 0.7)), "√2", t.Bad)

	verdict := swatch(t.Good, "✓ x < √2 ≤ x + ε")
	if !g.Brackets() {
		verdict = swatch(t.Bad, "✗ grid misses √2")
	}
	return []string{
		t.Bold.Render(fmt.Sprintf("q = %d, ε = 1/q = %.3f", g.Q, g.Epsilon)),
		fmt.Sprintf("x = %.3f, x² = %.3f", g.X, g.X*g.X),
		fmt.Sprintf("x + ε = %.3f, (x + ε)² = %.3f", g.Upper(), g.Upper()*g.Upper()),
		verdict,
	}
}

func (m SequenceModel) drawOrder() []string {
	t := m.env.Theme
	views := sequence.OrderViews()
	view := views[min(m.current, len(views)-1)]
	vp := m.canvas.Viewport(0, sequence.OrderTerms+1, 0.2, 2.4)

	series := func(seq []float64, col lipgloss.Color) {
		pts := make([]geom.Point, len(seq))
		for i, v := range seq {
			pts[i] = vp.ToScreen(geom.Pt(float64(i+1), v))
		}
		m.canvas.Polyline(pts, col)
	}

	var lines []string
	switch view.Key {
	case "wellDefined":
		a, b := sequence.EquivalentPairs()
		series(a.First, t.Good)
		series(a.Second, t.Interior)
		series(b.First, t.Bad)
		series(b.Second, t.Boundary)
		lines = append(lines,
			swatch(t.Good, a.Name), swatch(t.Bad, b.Name),
			fmt.Sprintf("bₖ < aₖ eventually: %v", sequence.EventuallyLess(b.First, a.First)),
			fmt.Sprintf("bₖ' < aₖ' eventually: %v", sequence.EventuallyLess(b.Second, a.Second)),
		)
	case "totality":
		p := sequence.SeparatedPair()
		series(p.First, t.Good)
		series(p.Second, t.Bad)
		lines = append(lines, swatch(t.Good, p.FirstLabel)+" vs "+swatch(t.Bad, p.SecondLabel),
			fmt.Sprintf("qₖ < pₖ eventually: %v", sequence.EventuallyLess(p.Second, p.First)))
	case "difference":
		p := sequence.SeparatedPair()
		diff := sequence.Difference(p.First, p.Second)
		vp = m.canvas.Viewport(0, sequence.OrderTerms+1, -0.2, 1)
		axes(m.canvas, vp, t.Axis)
		const margin = 0.4
		hline(m.canvas, vp, margin, t.Accumulation)
		n, ok := sequence.EventuallyAbove(diff, margin)
		for i, v := range diff {
			col := t.Muted
			if ok && i+1 >= n {
				col = t.Good
			}
			m.canvas.Disc(vp.ToScreen(geom.Pt(float64(i+1), v)), 1, col)
		}
		lines = append(lines, fmt.Sprintf("pₖ - qₖ ≥ %.1f from k = %d", margin, n),
			fmt.Sprintf("eventually positive: %v", sequence.EventuallyPositive(diff, margin)))
	default:
		c := m.Param()
		p := sequence.SeparatedPair()
		shift := func(seq []float64) []float64 {
			out := make([]float64, len(seq))
			for i, v := range seq {
				out[i] = v + c
			}
			return out
		}
		series(p.First, t.Muted)
		series(p.Second, t.Muted)
		series(shift(p.First), t.Good)
		series(shift(p.Second), t.Bad)
		lines = append(lines, fmt.Sprintf("qₖ + c < pₖ + c eventually: %v", sequence.EventuallyLess(shift(p.Second), shift(p.First))))
	}
	return append([]string{t.Bold.Render(view.Title), wrap(t.Normal, view.Text, panelText), ""}, lines...)
}
