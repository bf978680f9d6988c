package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/analysis-viz/internal/common"
	"github.com/Veraticus/analysis-viz/internal/convergence"
	"github.com/Veraticus/analysis-viz/internal/routes"
	"github.com/Veraticus/analysis-viz/internal/sequence"
	tuitest "github.com/Veraticus/analysis-viz/internal/tui/testing"
	"github.com/Veraticus/analysis-viz/internal/walkthrough"
)

func send[M tea.Model](t *testing.T, m M, msgs ...tea.Msg) M {
	t.Helper()
	next := tuitest.NewTestRenderer().Send(m, msgs...)
	out, ok := next.(M)
	require.True(t, ok)
	return out
}

func TestWalkthroughModelNavigation(t *testing.T) {
	m, err := NewWalkthroughModel(DefaultEnv(), walkthrough.HeineBorel)
	require.NoError(t, err)

	m = send(t, m, tuitest.KeyLeft())
	_, i := m.Step()
	assert.Equal(t, 0, i)

	m = send(t, m, tuitest.KeyPress("n"), tuitest.KeyRight())
	_, i = m.Step()
	assert.Equal(t, 2, i)

	m = send(t, m, tuitest.KeyPress("p"))
	_, i = m.Step()
	assert.Equal(t, 1, i)

	m = send(t, m, tuitest.KeyPress("9"))
	step, i := m.Step()
	assert.Equal(t, 6, i)
	assert.Equal(t, "Step 6: Conclusion", step.Title)
	assert.Contains(t, tuitest.StripANSI(m.View()), "7/7")

	m = send(t, m, tuitest.KeyPress("2"))
	_, i = m.Step()
	assert.Equal(t, 1, i)
}

func TestWalkthroughModelSubcoverToggle(t *testing.T) {
	m, err := NewWalkthroughModel(DefaultEnv(), walkthrough.OpenCovering)
	require.NoError(t, err)
	assert.False(t, m.Subcover())

	m = send(t, m, tuitest.KeyPress("f"))
	assert.True(t, m.Subcover())
	assert.Contains(t, tuitest.StripANSI(m.View()), "finite subcover (on)")

	m = send(t, m, tuitest.KeyPress("f"))
	assert.False(t, m.Subcover())

	hb, err := NewWalkthroughModel(DefaultEnv(), walkthrough.HeineBorel)
	require.NoError(t, err)
	hb = send(t, hb, tuitest.KeyPress("f"))
	assert.False(t, hb.Subcover())
}

func TestWalkthroughModelsRenderEveryStep(t *testing.T) {
	for _, info := range walkthrough.All() {
		t.Run(info.ID, func(t *testing.T) {
			m, err := NewWalkthroughModel(DefaultEnv(), info.ID)
			require.NoError(t, err)
			assert.Equal(t, info.Title, m.Title())

			for i, step := range info.Steps() {
				_, idx := m.Step()
				require.Equal(t, i, idx)
				view := tuitest.StripANSI(m.View())
				if len(step.Title) <= panelText {
					assert.Contains(t, view, step.Title)
				}
				m = send(t, m, tuitest.KeyPress("n"))
			}
		})
	}
}

func TestWalkthroughModelUnknown(t *testing.T) {
	_, err := NewWalkthroughModel(DefaultEnv(), "nope")
	assert.ErrorIs(t, err, common.ErrUnknownRoute)
}

func TestEpsDeltaModel(t *testing.T) {
	m := NewEpsDeltaModel(DefaultEnv())
	assert.Equal(t, "square", m.Function().Key)

	eps, delta := m.Params()
	assert.InDelta(t, convergence.DefaultEpsilon, eps, 1e-9)
	assert.InDelta(t, convergence.DefaultDelta, delta, 1e-9)
	assert.False(t, convergence.AllInside(m.Trace()))
	assert.Contains(t, tuitest.StripANSI(m.View()), "δ too large")

	m = send(t, m, tuitest.Repeat(tuitest.KeyPress("d"), 30)...)
	_, delta = m.Params()
	assert.InDelta(t, convergence.MinDelta, delta, 1e-9)
	assert.True(t, convergence.AllInside(m.Trace()))
	assert.Contains(t, tuitest.StripANSI(m.View()), "δ works for this ε")

	m = send(t, m, tuitest.KeyPress("E"))
	eps, _ = m.Params()
	assert.InDelta(t, convergence.DefaultEpsilon+epsilonKeyStep, eps, 1e-9)

	m = send(t, m, tuitest.KeyTab())
	assert.Equal(t, "sinc", m.Function().Key)
	m = send(t, m, tuitest.KeyTab(), tuitest.KeyTab())
	assert.Equal(t, "square", m.Function().Key)
}

func TestEpsDeltaModelToggles(t *testing.T) {
	m := send(t, NewEpsDeltaModel(DefaultEnv()), tuitest.KeyPress("b"), tuitest.KeyPress("t"))
	assert.False(t, m.bands)
	assert.False(t, m.trace)
	assert.NotEmpty(t, m.View())
}

func TestPowerConvModel(t *testing.T) {
	m := NewPowerConvModel(DefaultEnv())
	n, eps := m.Params()
	assert.Equal(t, convergence.DefaultPower, n)
	assert.InDelta(t, convergence.DefaultPowerEps, eps, 1e-9)
	assert.False(t, m.Uniform())
	assert.Contains(t, tuitest.StripANSI(m.View()), "escapes the ε-band")

	m = send(t, m, tuitest.KeyTab())
	assert.True(t, m.Uniform())
	assert.InDelta(t, 0.125, m.Sup(), 1e-12)
	assert.Contains(t, tuitest.StripANSI(m.View()), "inside the ε-band everywhere")

	m = send(t, m, tuitest.KeyPress("+"))
	n, _ = m.Params()
	assert.Equal(t, 4, n)

	m = send(t, m, tuitest.Repeat(tuitest.KeyPress("-"), 10)...)
	n, _ = m.Params()
	assert.Equal(t, convergence.MinPower, n)

	m = send(t, m, tuitest.Repeat(tuitest.KeyPress("E"), 100)...)
	_, eps = m.Params()
	assert.InDelta(t, convergence.MaxPowerEpsilon, eps, 1e-9)
}

func TestSequenceModelViews(t *testing.T) {
	m, err := NewSequenceModel(DefaultEnv(), routes.SeqLimits)
	require.NoError(t, err)
	assert.Equal(t, "within", m.ViewKey())
	assert.InDelta(t, sequence.DefaultRadius, m.Param(), 1e-9)
	assert.Contains(t, tuitest.StripANSI(m.View()), "N = 3")

	m = send(t, m, tuitest.KeyPress("+"))
	assert.InDelta(t, sequence.DefaultRadius+sequence.RadiusStep, m.Param(), 1e-9)

	m = send(t, m, tuitest.KeyTab())
	assert.Equal(t, "above", m.ViewKey())
	assert.InDelta(t, sequence.DefaultLowerBound, m.Param(), 1e-9)

	m = send(t, m, tuitest.KeyTab(), tuitest.KeyPress("r"))
	assert.Equal(t, "within", m.ViewKey())
	assert.InDelta(t, sequence.DefaultRadius, m.Param(), 1e-9)
}

func TestSequenceModelRoot2(t *testing.T) {
	m, err := NewSequenceModel(DefaultEnv(), routes.Root2)
	require.NoError(t, err)

	m = send(t, m, tuitest.Repeat(tuitest.KeyPress("+"), 30)...)
	assert.InDelta(t, sequence.MaxDenominator, m.Param(), 1e-9)

	view := tuitest.StripANSI(m.View())
	assert.Contains(t, view, "q = 20")
	assert.Contains(t, view, "x < √2 ≤ x + ε")
}

func TestSequenceModelOrder(t *testing.T) {
	m, err := NewSequenceModel(DefaultEnv(), routes.OrderViz)
	require.NoError(t, err)

	views := sequence.OrderViews()
	for _, v := range views {
		assert.Equal(t, v.Key, m.ViewKey())
		assert.Contains(t, tuitest.StripANSI(m.View()), v.Title)
		m = send(t, m, tuitest.KeyTab())
	}
	assert.Equal(t, views[0].Key, m.ViewKey())
}

func TestSequenceModelFromBelow(t *testing.T) {
	m, err := NewSequenceModel(DefaultEnv(), routes.SeqFromBelow)
	require.NoError(t, err)
	assert.Equal(t, "below", m.ViewKey())

	m = send(t, m, tuitest.KeyTab())
	assert.Equal(t, "ceiling", m.ViewKey())
	assert.Contains(t, tuitest.StripANSI(m.View()), "m = 2")
}

func TestSequenceModelUnknown(t *testing.T) {
	_, err := NewSequenceModel(DefaultEnv(), routes.HeineBorel)
	assert.ErrorIs(t, err, common.ErrUnknownRoute)
}
