package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/analysis-viz/internal/common"
	"github.com/Veraticus/analysis-viz/internal/routes"
	"github.com/Veraticus/analysis-viz/internal/tui/components"
	tuitest "github.com/Veraticus/analysis-viz/internal/tui/testing"
)

func testConfig(opts ...Option) Config {
	cfg := defaultConfig()
	cfg.Seed = 1
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func TestRegistryCoversEveryRoute(t *testing.T) {
	for _, id := range routes.IDs() {
		t.Run(id, func(t *testing.T) {
			w, err := NewWidget(id, components.DefaultEnv())
			require.NoError(t, err)
			assert.NotEmpty(t, w.Title())
			assert.NotEmpty(t, w.View())
		})
	}

	_, err := NewWidget("nope", components.DefaultEnv())
	assert.ErrorIs(t, err, common.ErrUnknownRoute)
}

func TestIndexOpensSelectedRoute(t *testing.T) {
	m, err := newModel(testConfig(), "")
	require.NoError(t, err)
	assert.Equal(t, StateIndex, m.State())
	assert.Contains(t, tuitest.StripANSI(m.View()), "Real Analysis Visualizations")

	m, _ = update(t, m, tuitest.KeyDown())
	m, cmd := update(t, m, tuitest.KeyEnter())
	require.NotNil(t, cmd)

	msg := cmd()
	require.IsType(t, openRouteMsg{}, msg)
	assert.Equal(t, routes.OpenClosedSets, msg.(openRouteMsg).id)

	m, _ = update(t, m, msg)
	assert.Equal(t, StateWidget, m.State())
	assert.Equal(t, routes.OpenClosedSets, m.Current())
	assert.Contains(t, tuitest.StripANSI(m.View()), "esc: index")

	m, _ = update(t, m, tuitest.KeyEsc())
	assert.Equal(t, StateIndex, m.State())
	assert.Empty(t, m.Current())
}

func TestDirectRouteQuitsOnEsc(t *testing.T) {
	m, err := newModel(testConfig(), routes.Root2)
	require.NoError(t, err)
	assert.Equal(t, StateWidget, m.State())
	assert.Contains(t, tuitest.StripANSI(m.View()), "esc: quit")

	m, cmd := update(t, m, tuitest.KeyEsc())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestUnknownRoute(t *testing.T) {
	_, err := newModel(testConfig(), "not-a-route")
	assert.ErrorIs(t, err, common.ErrUnknownRoute)

	m, err := newModel(testConfig(), "")
	require.NoError(t, err)
	m, cmd := update(t, m, openRouteMsg{id: "not-a-route"})
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())
	assert.Equal(t, StateIndex, m.State())
	assert.Contains(t, tuitest.StripANSI(m.View()), "unknown route")
}

func TestQuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{tuitest.KeyPress("q"), tuitest.KeyCtrlC()} {
		m, err := newModel(testConfig(), routes.HeineBorel)
		require.NoError(t, err)
		_, cmd := update(t, m, msg)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestHelpToggle(t *testing.T) {
	m, err := newModel(testConfig(), routes.IntExtBoundary)
	require.NoError(t, err)
	before := m.help.ShowAll

	m, _ = update(t, m, tuitest.KeyPress("?"))
	assert.Equal(t, !before, m.help.ShowAll)
}

func TestTickAdvancesPhase(t *testing.T) {
	m, err := newModel(testConfig(), routes.CompactSet)
	require.NoError(t, err)

	m, cmd := update(t, m, tickMsg{})
	assert.Equal(t, 1, m.phase)
	assert.NotNil(t, cmd)

	still, err := newModel(testConfig(WithFeatures(false, false)), routes.CompactSet)
	require.NoError(t, err)
	assert.Nil(t, still.tick())
}

func TestResizeReachesWidget(t *testing.T) {
	m, err := newModel(testConfig(), routes.AdherentAccumulation)
	require.NoError(t, err)

	m, _ = update(t, m, tuitest.WindowSize(140, 44))
	assert.Equal(t, 140, m.width)
	assert.Equal(t, 44, m.height)
	assert.Equal(t, StateWidget, m.State())
}
