package render

import (
	"context"
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/analysis-viz/internal/common"
	"github.com/Veraticus/analysis-viz/internal/convergence"
	"github.com/Veraticus/analysis-viz/internal/geom"
	"github.com/Veraticus/analysis-viz/internal/region"
	"github.com/Veraticus/analysis-viz/internal/routes"
)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New(450, 315, WithSeed(7))
	require.NoError(t, err)
	return r
}

func TestNewRejectsTinyImages(t *testing.T) {
	_, err := New(10, 10)
	assert.True(t, errors.Is(err, common.ErrInvalidParameter))
}

func TestEveryRouteHasADrawing(t *testing.T) {
	for _, id := range routes.IDs() {
		_, ok := drawers[id]
		assert.True(t, ok, id)
	}
	assert.Len(t, drawers, len(routes.IDs()))
}

func TestDrawEveryRoute(t *testing.T) {
	r := newRenderer(t)
	for _, id := range routes.IDs() {
		t.Run(id, func(t *testing.T) {
			img, err := r.Draw(id)
			require.NoError(t, err)
			assert.Equal(t, 450, img.Bounds().Dx())
			assert.Equal(t, 315, img.Bounds().Dy())

			got := color.RGBAModel.Convert(img.At(0, 0)).(color.RGBA)
			assert.Equal(t, DefaultPalette.Background, got)
		})
	}
}

func TestDrawUnknownRoute(t *testing.T) {
	_, err := newRenderer(t).Draw("nope")
	assert.True(t, errors.Is(err, common.ErrUnknownRoute))
}

func TestExport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	r := newRenderer(t)

	path, err := r.Export(context.Background(), routes.Root2, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "root2.png"), path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestExportHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newRenderer(t).Export(ctx, routes.Root2, t.TempDir())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#3b82f6")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff}, c)

	c, err = ParseHex("#00000080")
	require.NoError(t, err)
	assert.Equal(t, uint8(0x80), c.A)

	_, err = ParseHex("blue")
	assert.Error(t, err)
}

func TestOuterBoundary(t *testing.T) {
	tests := []struct {
		name string
		ex   string
		dir  geom.Point
		want float64
	}{
		{"disk", "disk", geom.Pt(1, 0), 140},
		{"square", "square", geom.Pt(0, -1), 130},
		{"annulus", "annulus", geom.Pt(-1, 0), 150},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex, err := region.Lookup(tt.ex)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, outerBoundary(ex.Shape, tt.dir), 1e-6)
		})
	}
}

func TestTicks(t *testing.T) {
	assert.Equal(t, []float64{-1, 0, 1}, ticks(convergence.Range{Min: -1, Max: 1}, 1))
	assert.Equal(t, []float64{0, 1}, ticks(convergence.Range{Min: 0, Max: 1}, 0))
}
