package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/analysis-viz/internal/pointset"
	tuitest "github.com/Veraticus/analysis-viz/internal/tui/testing"
)

func sendPointSet(t *testing.T, m PointSetModel, msgs ...tea.Msg) PointSetModel {
	t.Helper()
	next := tuitest.NewTestRenderer().Send(m, msgs...)
	out, ok := next.(PointSetModel)
	require.True(t, ok)
	return out
}

func TestPointSetModelGeneratesOnSurface(t *testing.T) {
	m := NewPointSetModel(DefaultEnv())

	w, h := m.Surface()
	assert.InDelta(t, 420, min(w, h), 1e-6)
	assert.Len(t, m.Set(), 603)
	for _, p := range m.Set()[:600] {
		assert.True(t, p.X >= 0 && p.X <= w && p.Y >= 0 && p.Y <= h)
	}
}

func TestPointSetModelLatticeCenterIsIsolated(t *testing.T) {
	m := sendPointSet(t, NewPointSetModel(DefaultEnv()),
		tuitest.KeyTab(), tuitest.KeyTab(), tuitest.KeySpace())
	require.Equal(t, "lattice", m.Example().Key)

	exact, approx, ok := m.Classify()
	require.True(t, ok)
	assert.True(t, exact.InSet)
	assert.True(t, exact.IsIsolated)
	assert.False(t, exact.IsAccumulation)
	assert.Equal(t, pointset.LabelIsolated, exact.Label())

	// ε = 50 is below the lattice spacing, so the ball holds only the probe.
	assert.True(t, approx.HasSetPointInBall)
	assert.False(t, approx.HasOtherSetPointInBall)
	assert.Contains(t, tuitest.StripANSI(m.View()), "ISOLATED")
}

func TestPointSetModelSequenceLimit(t *testing.T) {
	m := sendPointSet(t, NewPointSetModel(DefaultEnv()), tuitest.KeyTab(), tuitest.KeySpace())
	require.Equal(t, "sequence", m.Example().Key)

	exact, _, ok := m.Classify()
	require.True(t, ok)
	assert.False(t, exact.InSet)
	assert.True(t, exact.IsAccumulation)
	assert.Contains(t, tuitest.StripANSI(m.View()), "ACCUMULATION (not in S)")
}

func TestPointSetModelSeededRegeneration(t *testing.T) {
	m := NewPointSetModel(DefaultEnv())
	first := append(pointset.PointSet(nil), m.Set()...)

	m = sendPointSet(t, m, tuitest.KeyTab(), tuitest.KeyTab(), tuitest.KeyTab(), tuitest.KeyTab())
	require.Equal(t, "dense_disk", m.Example().Key)
	assert.Equal(t, first, m.Set())
}

func TestPointSetModelResizeRegenerates(t *testing.T) {
	m := sendPointSet(t, NewPointSetModel(DefaultEnv()), tuitest.KeySpace())
	_, ok := m.Probe()
	require.True(t, ok)

	w0, h0 := m.Surface()
	m = sendPointSet(t, m, tuitest.WindowSize(160, 40))
	w1, h1 := m.Surface()

	assert.NotEqual(t, w0/h0, w1/h1)
	assert.NotEmpty(t, m.Set())
	_, ok = m.Probe()
	assert.False(t, ok)
}

func TestPointSetModelEpsilon(t *testing.T) {
	m := sendPointSet(t, NewPointSetModel(DefaultEnv()), tuitest.Repeat(tuitest.KeyPress("+"), 40)...)
	assert.InDelta(t, pointset.MaxEpsilon, m.Epsilon(), 1e-9)

	m = sendPointSet(t, m, tuitest.KeyPress("r"))
	assert.InDelta(t, pointset.DefaultEpsilon, m.Epsilon(), 1e-9)
}

func TestPointSetModelThresholdsScale(t *testing.T) {
	env := DefaultEnv()
	env.CanvasWidth, env.CanvasHeight = 1200, 840
	m := NewPointSetModel(env)

	th := m.Thresholds()
	assert.InDelta(t, 10, th.Self, 1e-6)
	assert.InDelta(t, 16, th.Adherent, 1e-6)
}
