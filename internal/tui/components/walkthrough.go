package components

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/analysis-viz/internal/canvas"
	"github.com/Veraticus/analysis-viz/internal/geom"
	"github.com/Veraticus/analysis-viz/internal/pointset"
	"github.com/Veraticus/analysis-viz/internal/walkthrough"
)

// compactTerms is how many sequence terms the compactness diagram draws.
const compactTerms = 24

// WalkthroughModel steps through a proof, redrawing its diagram for each
// step.
type WalkthroughModel struct {
	env      Env
	keys     KeyMap
	info     walkthrough.Info
	stepper  *walkthrough.Stepper
	subcover bool
	terms    []walkthrough.SequenceTerm
	phase    int
	canvas   *canvas.Canvas
}

// NewWalkthroughModel creates a walkthrough widget with its own stepper.
func NewWalkthroughModel(env Env, id string) (WalkthroughModel, error) {
	info, err := walkthrough.Lookup(id)
	if err != nil {
		return WalkthroughModel{}, err
	}
	m := WalkthroughModel{
		env:     env,
		keys:    DefaultKeyMap(),
		info:    info,
		stepper: info.NewStepper(),
		canvas:  newCanvas(env),
	}
	if id == walkthrough.CompactSet {
		m.terms = walkthrough.CompactSequence(compactTerms, pointset.NewRandom(env.Seed))
	}
	return m, nil
}

// Init initializes the model.
func (m WalkthroughModel) Init() tea.Cmd {
	return nil
}

// Title names the diagram.
func (m WalkthroughModel) Title() string {
	return m.info.Title
}

// Keys lists the bindings shown in the help line.
func (m WalkthroughModel) Keys() []key.Binding {
	keys := []key.Binding{
		withHelp(m.keys.Next, "→/n", "next"),
		withHelp(m.keys.Prev, "←/p", "back"),
		m.keys.Jump,
	}
	if m.hasSubcover() {
		keys = append(keys, m.keys.Toggle)
	}
	return keys
}

// Step returns the current step and its index.
func (m WalkthroughModel) Step() (walkthrough.Step, int) {
	return m.stepper.Current(), m.stepper.Index()
}

// Subcover reports whether the finite subcover is highlighted.
func (m WalkthroughModel) Subcover() bool {
	return m.subcover
}

func (m WalkthroughModel) hasSubcover() bool {
	return m.info.ID == walkthrough.OpenCovering || m.info.ID == walkthrough.CompactSet
}

// Update handles messages.
func (m WalkthroughModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.env.Width, m.env.Height = msg.Width, msg.Height
		m.canvas = newCanvas(m.env)

	case TickMsg:
		m.phase = msg.Phase

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Next):
			m.stepper.Next()
		case key.Matches(msg, m.keys.Prev):
			m.stepper.Prev()
		case key.Matches(msg, m.keys.Jump):
			s := msg.String()
			m.stepper.Jump(int(s[0] - '1'))
		case key.Matches(msg, m.keys.Toggle) && m.hasSubcover():
			m.subcover = !m.subcover
		default:
			return m, nil
		}
		slog.Debug("Walkthrough step", "id", m.info.ID, "step", m.stepper.Index(), "subcover", m.subcover)
	}
	return m, nil
}

// View renders the widget.
func (m WalkthroughModel) View() string {
	m.draw()
	return compose(m.env, m.Title(), m.canvas, m.panel())
}

func (m WalkthroughModel) draw() {
	m.canvas.Clear()
	step, index := m.Step()
	switch m.info.ID {
	case walkthrough.HeineBorel:
		m.drawHeineBorel(step, index)
	case walkthrough.ClosedAccumulationPoints:
		m.drawClosedAccumulation(step, 0.65)
	case walkthrough.ClosedAccumulationPointsRev:
		m.drawClosedAccumulation(step, 0.86)
	case walkthrough.OpenCovering:
		m.drawCovering(step, m.subcover)
	case walkthrough.CompactSet:
		if step.Flags.Has(walkthrough.ShowSequence) {
			m.drawSequence()
		} else {
			m.drawCovering(step, m.subcover || step.Flags.Has(walkthrough.HighlightSuccess))
		}
	case walkthrough.OpenClosedSets:
		m.drawOpenClosed(index)
	}
}

func (m WalkthroughModel) segment(vp geom.Viewport, a, b geom.Point, col lipgloss.Color) {
	m.canvas.Line(vp.ToScreen(a), vp.ToScreen(b), col)
}

// endpoint draws a filled dot for a closed end and a ring for an open one.
func (m WalkthroughModel) endpoint(vp geom.Viewport, p geom.Point, closed bool, col lipgloss.Color) {
	if closed {
		m.canvas.Disc(vp.ToScreen(p), 1.5, col)
		return
	}
	m.canvas.Circle(vp.ToScreen(p), 2, col)
}

func (m WalkthroughModel) drawHeineBorel(step walkthrough.Step, index int) {
	t := m.env.Theme
	all := walkthrough.HeineBorelIntervals()
	vp := m.canvas.Viewport(-0.05, 1.05, -float64(len(all)), 1)

	m.segment(vp, geom.Pt(0, 0.5), geom.Pt(1, 0.5), t.Axis)
	m.canvas.TextAt(vp.ToScreen(geom.Pt(0, 0.5)), "0", t.Muted)
	m.canvas.TextAt(vp.ToScreen(geom.Pt(1, 0.5)), "1", t.Muted)

	visible := walkthrough.VisibleIntervals(all, index)
	for _, iv := range visible {
		y := -float64(iv.Level)
		col := t.Secondary
		if iv.Level == len(visible)-1 {
			col = t.Boundary
		}
		m.segment(vp, geom.Pt(iv.A, y), geom.Pt(iv.B, y), col)
		m.endpoint(vp, geom.Pt(iv.A, y), true, col)
		m.endpoint(vp, geom.Pt(iv.B, y), true, col)
		m.canvas.TextAt(vp.ToScreen(geom.Pt(-0.04, y)), fmt.Sprintf("I%d", iv.Level), t.Muted)
	}

	if !step.Flags.Has(walkthrough.ShowLimit) {
		return
	}
	c := walkthrough.HeineBorelLimit
	for y := -float64(len(all)); y <= 0.5; y += 0.05 {
		if int(y*20)%2 == 0 {
			m.canvas.Plot(vp.ToScreen(geom.Pt(c, y)), t.Bad)
		}
	}
	m.canvas.TextAt(vp.ToScreen(geom.Pt(c, 0.9)), "c", t.Bad)

	if step.Flags.Has(walkthrough.ShowNeighborhood) {
		col := t.Accumulation
		switch {
		case step.Flags.Has(walkthrough.HighlightContradiction):
			col = t.Bad
		case step.Flags.Has(walkthrough.HighlightSuccess):
			col = t.Good
		}
		const r = 0.06
		m.segment(vp, geom.Pt(c-r, 0.2), geom.Pt(c+r, 0.2), col)
		m.endpoint(vp, geom.Pt(c-r, 0.2), false, col)
		m.endpoint(vp, geom.Pt(c+r, 0.2), false, col)
		m.canvas.TextAt(vp.ToScreen(geom.Pt(c+r+0.02, 0.2)), "U ∋ c", col)
	}
}

// drawClosedAccumulation draws A = [0.25, 0.65] and the point a under test.
func (m WalkthroughModel) drawClosedAccumulation(step walkthrough.Step, a float64) {
	t := m.env.Theme
	const lo, hi = 0.25, 0.65
	vp := m.canvas.Viewport(0, 1, -1, 1)

	m.segment(vp, geom.Pt(0, 0), geom.Pt(1, 0), t.Axis)
	if step.Flags.Has(walkthrough.ShowComplement) {
		m.canvas.Fill(func(px geom.Point) bool {
			x, y := vp.ToDomainX(px.X), vp.ToDomainY(px.Y)
			return (x < lo || x > hi) && y > -0.15 && y < 0.15 && (int(px.X)+int(px.Y))%4 == 0
		}, t.Exterior)
		m.canvas.TextAt(vp.ToScreen(geom.Pt(0.05, 0.35)), "Aᶜ", t.Exterior)
	}
	if step.Flags.Has(walkthrough.ShowSet) {
		for _, y := range []float64{-0.04, 0, 0.04} {
			m.segment(vp, geom.Pt(lo, y), geom.Pt(hi, y), t.Interior)
		}
		m.canvas.TextAt(vp.ToScreen(geom.Pt((lo+hi)/2, 0.35)), "A", t.Interior)
	}

	if !step.Flags.Has(walkthrough.ShowPoint) {
		return
	}
	const r = 0.08
	if step.Flags.Has(walkthrough.ShowAccumulationTest) {
		// The punctured neighbourhood around a.
		for x := a - r; x <= a+r; x += 0.01 {
			if x < a-0.01 || x > a+0.01 {
				m.canvas.Plot(vp.ToScreen(geom.Pt(x, 0.5)), t.Accumulation)
			}
		}
		m.canvas.TextAt(vp.ToScreen(geom.Pt(a-r, 0.7)), "(a-ε, a+ε) \\ {a}", t.Accumulation)
	}
	if step.Flags.Has(walkthrough.ShowNeighborhood) {
		col := t.Accumulation
		switch {
		case step.Flags.Has(walkthrough.HighlightContradiction):
			col = t.Bad
		case step.Flags.Has(walkthrough.HighlightSuccess):
			col = t.Good
		}
		m.segment(vp, geom.Pt(a-r, 0.5), geom.Pt(a+r, 0.5), col)
		m.endpoint(vp, geom.Pt(a-r, 0.5), false, col)
		m.endpoint(vp, geom.Pt(a+r, 0.5), false, col)
	}

	col := t.Highlight
	label := "a"
	if step.Flags.Has(walkthrough.PointInSet) {
		col, label = t.Good, "a ∈ A"
	}
	m.canvas.Disc(vp.ToScreen(geom.Pt(a, 0)), 2, col)
	m.canvas.TextAt(vp.ToScreen(geom.Pt(a, -0.4)), label, col)
}

// drawCovering draws the open sets of the cover as circles centred on S.
func (m WalkthroughModel) drawCovering(step walkthrough.Step, highlight bool) {
	t := m.env.Theme
	sets := walkthrough.CoveringSets()
	seg := walkthrough.CoveringSegment

	const xmin, xmax = 0.0, 570.0
	unit := float64(m.canvas.PixelWidth()) / (xmax - xmin)
	half := float64(m.canvas.PixelHeight()) / unit / 2
	vp := m.canvas.Viewport(xmin, xmax, -half, half)

	chosen, _ := walkthrough.FiniteSubcover(sets, seg)
	inSub := map[int]bool{}
	for _, i := range chosen {
		inSub[i] = true
	}

	if step.Flags.Has(walkthrough.ShowOpenSets) {
		phase := 0
		if m.env.Animations {
			phase = m.phase
		}
		for i, u := range sets {
			col := t.Secondary
			if highlight {
				col = t.Muted
				if inSub[i] {
					col = t.Good
				}
			}
			center := vp.ToScreen(geom.Pt(u.Center, 0))
			m.canvas.DashedCircle(center, u.Radius*unit, 2, phase, col)
			m.canvas.TextAt(vp.ToScreen(geom.Pt(u.Center, u.Radius*0.75)), u.Label, col)
		}
	}
	if step.Flags.Has(walkthrough.ShowSet) {
		col := t.Foreground
		if step.Flags.Has(walkthrough.ShowCover) {
			col = t.Interior
		}
		m.segment(vp, geom.Pt(seg.A, 0), geom.Pt(seg.B, 0), col)
		m.endpoint(vp, geom.Pt(seg.A, 0), true, col)
		m.endpoint(vp, geom.Pt(seg.B, 0), true, col)
		m.canvas.TextAt(vp.ToScreen(geom.Pt(seg.A, -12)), "S", col)
	}
}

// drawSequence draws the compact-set sequence and its convergent
// subsequence in the unit square.
func (m WalkthroughModel) drawSequence() {
	t := m.env.Theme
	side := float64(min(m.canvas.PixelWidth(), m.canvas.PixelHeight()))
	w := float64(m.canvas.PixelWidth()) / side
	h := float64(m.canvas.PixelHeight()) / side
	vp := m.canvas.Viewport(0.5-w/2, 0.5+w/2, 0.5-h/2, 0.5+h/2)

	m.canvas.Polygon([]geom.Point{
		vp.ToScreen(geom.Pt(0, 0)), vp.ToScreen(geom.Pt(1, 0)),
		vp.ToScreen(geom.Pt(1, 1)), vp.ToScreen(geom.Pt(0, 1)),
	}, t.Axis)

	sub := walkthrough.ConvergentSubsequence(m.terms)
	picked := map[int]bool{}
	var path []geom.Point
	for _, i := range sub {
		picked[i] = true
		path = append(path, vp.ToScreen(m.terms[i].Point))
	}
	for i, term := range m.terms {
		if !picked[i] {
			m.canvas.Disc(vp.ToScreen(term.Point), 1, t.Muted)
		}
	}
	m.canvas.Polyline(path, t.Good)
	for _, p := range path {
		m.canvas.Disc(p, 1.5, t.Good)
	}
	if len(path) > 0 {
		m.canvas.TextAt(path[len(path)-1], "x*", t.Boundary)
	}
}

type openClosedRow struct {
	kind  string
	label string
	ivs   []walkthrough.RealInterval
	dots  []float64
}

// openClosedRows sketches each example of a comparison group on a number
// line over [-1, 4].
func openClosedRows(g walkthrough.SetGroup) []openClosedRow {
	inf := walkthrough.RealInterval{A: -1e9, B: 1e9}
	switch g.Key {
	case "interval":
		return []openClosedRow{
			{kind: "open", label: g.Open.Notation, ivs: []walkthrough.RealInterval{{A: 0.5, B: 2.5}}},
			{kind: "closed", label: g.Closed.Notation, ivs: []walkthrough.RealInterval{{A: 0.5, B: 2.5, LeftClosed: true, RightClosed: true}}},
			{kind: "neither", label: g.Neither.Notation, ivs: []walkthrough.RealInterval{{A: 0.5, B: 2.5, LeftClosed: true}}},
		}
	case "special":
		return []openClosedRow{
			{kind: "open", label: g.Open.Notation, ivs: []walkthrough.RealInterval{inf}},
			{kind: "closed", label: g.Closed.Notation, ivs: []walkthrough.RealInterval{inf}},
			{kind: "neither", label: g.Neither.Notation, ivs: []walkthrough.RealInterval{
				{A: 0, B: 1, RightClosed: true},
				{A: 2, B: 3},
			}},
		}
	default:
		return []openClosedRow{
			{kind: "open", label: g.Open.Notation},
			{kind: "closed", label: g.Closed.Notation, dots: []float64{-1, 0, 1, 2, 3, 4}},
			{kind: "neither", label: g.Neither.Notation},
		}
	}
}

func (m WalkthroughModel) drawOpenClosed(index int) {
	t := m.env.Theme
	groups := walkthrough.OpenClosedGroups()
	g := groups[min(index, len(groups)-1)]
	rows := openClosedRows(g)
	vp := m.canvas.Viewport(-1.5, 4.5, -float64(len(rows)), 0)

	for i, row := range rows {
		y := -float64(i) - 0.6
		col := t.Interior
		switch row.kind {
		case "closed":
			col = t.Good
		case "neither":
			col = t.Boundary
		}
		m.canvas.TextAt(vp.ToScreen(geom.Pt(-1.45, y+0.3)), strings.ToUpper(row.kind[:1])+row.kind[1:]+"  "+row.label, col)
		m.segment(vp, geom.Pt(-1.5, y), geom.Pt(4.5, y), t.Axis)
		for _, iv := range row.ivs {
			a, b := max(iv.A, -1.5), min(iv.B, 4.5)
			for _, dy := range []float64{-0.02, 0.02} {
				m.segment(vp, geom.Pt(a, y+dy), geom.Pt(b, y+dy), col)
			}
			if iv.A > -1.5 {
				m.endpoint(vp, geom.Pt(iv.A, y), iv.LeftClosed, col)
			}
			if iv.B < 4.5 {
				m.endpoint(vp, geom.Pt(iv.B, y), iv.RightClosed, col)
			}
		}
		for _, x := range row.dots {
			m.endpoint(vp, geom.Pt(x, y), true, col)
		}
	}
}

func (m WalkthroughModel) panel() []string {
	t := m.env.Theme
	step, index := m.Step()

	dots := make([]string, m.stepper.Len())
	for i := range dots {
		if i == index {
			dots[i] = swatch(t.Primary, "●")
		} else {
			dots[i] = t.Faint.Render("○")
		}
	}

	lines := []string{
		t.Subtitle.Render(m.info.Subtitle),
		wrap(t.Italic, m.info.Theorem, panelText),
		"",
		strings.Join(dots, " ") + t.Faint.Render(fmt.Sprintf("  %d/%d", index+1, m.stepper.Len())),
		"",
		t.Bold.Render(step.Title),
		wrap(t.Normal, step.Description, panelText),
	}
	if step.Detail != "" {
		lines = append(lines, "", wrap(t.Faint, step.Detail, panelText))
	}

	if m.hasSubcover() {
		chosen, ok := walkthrough.FiniteSubcover(walkthrough.CoveringSets(), walkthrough.CoveringSegment)
		sets := walkthrough.CoveringSets()
		labels := make([]string, len(chosen))
		for i, c := range chosen {
			labels[i] = sets[c].Label
		}
		state := "off"
		if m.subcover {
			state = "on"
		}
		lines = append(lines, "", t.Faint.Render("finite subcover ("+state+")"))
		if ok {
			lines = append(lines, swatch(t.Good, strings.Join(labels, " ∪ ")+" ⊇ S"))
		}
	}
	return lines
}
