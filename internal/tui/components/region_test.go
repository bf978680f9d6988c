package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/analysis-viz/internal/region"
	tuitest "github.com/Veraticus/analysis-viz/internal/tui/testing"
)

func sendRegion(t *testing.T, m RegionModel, msgs ...any) RegionModel {
	t.Helper()
	r := tuitest.NewTestRenderer()
	for _, msg := range msgs {
		next, _ := r.Update(m, msg)
		var ok bool
		m, ok = next.(RegionModel)
		require.True(t, ok)
	}
	return m
}

func TestRegionModelStartsWithoutProbe(t *testing.T) {
	m := NewRegionModel(DefaultEnv())

	_, ok := m.Probe()
	assert.False(t, ok)
	assert.InDelta(t, region.DefaultEpsilon, m.Epsilon(), 1e-9)
	assert.Equal(t, "disk", m.Shape().Key)

	err := tuitest.NewStateMatcher().
		ViewContains(m.View(), "No probe placed.").
		ViewContains(m.View(), "Closed Disk").
		Check()
	assert.NoError(t, err)
}

func TestRegionModelPlaceProbe(t *testing.T) {
	m := sendRegion(t, NewRegionModel(DefaultEnv()), tuitest.KeySpace())

	dist, class, ok := m.Classification()
	require.True(t, ok)
	assert.InDelta(t, -140, dist, 1e-9)
	assert.Equal(t, region.Interior, class)
	assert.Contains(t, tuitest.StripANSI(m.View()), "Interior Point")
}

func TestRegionModelProbeFollowsCursor(t *testing.T) {
	msgs := []any{tuitest.KeySpace()}
	for range 14 {
		msgs = append(msgs, tuitest.KeyRight())
	}
	m := sendRegion(t, NewRegionModel(DefaultEnv()), msgs...)

	p, ok := m.Probe()
	require.True(t, ok)
	assert.InDelta(t, 140, p.X, 1e-9)

	dist, class, _ := m.Classification()
	assert.InDelta(t, 0, dist, 1e-9)
	assert.Equal(t, region.Boundary, class)
	assert.Contains(t, tuitest.StripANSI(m.View()), "Boundary Point")
}

func TestRegionModelEpsilonClamps(t *testing.T) {
	m := NewRegionModel(DefaultEnv())

	var grow []any
	for range 30 {
		grow = append(grow, tuitest.KeyPress("+"))
	}
	m = sendRegion(t, m, grow...)
	assert.InDelta(t, region.MaxEpsilon, m.Epsilon(), 1e-9)

	var shrink []any
	for range 30 {
		shrink = append(shrink, tuitest.KeyPress("-"))
	}
	m = sendRegion(t, m, shrink...)
	assert.InDelta(t, region.MinEpsilon, m.Epsilon(), 1e-9)

	m = sendRegion(t, m, tuitest.MouseWheel(true))
	assert.InDelta(t, region.MinEpsilon+region.EpsilonStep, m.Epsilon(), 1e-9)
}

func TestRegionModelTabClearsProbe(t *testing.T) {
	m := sendRegion(t, NewRegionModel(DefaultEnv()), tuitest.KeySpace(), tuitest.KeyTab())

	_, ok := m.Probe()
	assert.False(t, ok)
	assert.Equal(t, "square", m.Shape().Key)

	m = sendRegion(t, m, tuitest.KeyTab(), tuitest.KeyTab(), tuitest.KeyTab())
	assert.Equal(t, "disk", m.Shape().Key)
}

func TestRegionModelReset(t *testing.T) {
	m := sendRegion(t, NewRegionModel(DefaultEnv()),
		tuitest.KeySpace(), tuitest.KeyPress("+"), tuitest.KeyPress("r"))

	_, ok := m.Probe()
	assert.False(t, ok)
	assert.InDelta(t, region.DefaultEpsilon, m.Epsilon(), 1e-9)
}

func TestRegionModelMouse(t *testing.T) {
	m := NewRegionModel(DefaultEnv())

	// Outside the canvas.
	m = sendRegion(t, m, tuitest.MouseClick(0, 0))
	_, ok := m.Probe()
	assert.False(t, ok)

	// The middle of the canvas is near the origin, well inside the disk.
	col, row := m.canvas.Cols()/2, m.canvas.Rows()/2
	m = sendRegion(t, m, tuitest.MouseClick(col+canvasOriginX, row+canvasOriginY))
	p, ok := m.Probe()
	require.True(t, ok)
	assert.Less(t, p.Norm(), 10.0)

	_, class, _ := m.Classification()
	assert.Equal(t, region.Interior, class)
}

func TestRegionModelTickDoesNotClassify(t *testing.T) {
	m := sendRegion(t, NewRegionModel(DefaultEnv()), tuitest.KeySpace())
	before, beforeClass, _ := m.Classification()

	m = sendRegion(t, m, TickMsg{Phase: 7}, TickMsg{Phase: 8})
	after, afterClass, _ := m.Classification()
	assert.Equal(t, before, after)
	assert.Equal(t, beforeClass, afterClass)
}

func TestRegionModelLayout(t *testing.T) {
	m := sendRegion(t, NewRegionModel(DefaultEnv()), tuitest.KeySpace())
	assert.NoError(t, tuitest.NewStateMatcher().MaxWidth(m.View(), 100).Check())

	m = sendRegion(t, m, tuitest.WindowSize(60, 30))
	view := m.View()
	assert.NoError(t, tuitest.NewStateMatcher().
		MaxWidth(view, 60).
		InOrder(view, "Interior, Exterior & Boundary Points", "Interior Point").
		Check())
}
