package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterruptCancelsOnce(t *testing.T) {
	var out bytes.Buffer
	h := NewInterruptHandler(&out)
	ctx := h.HandleInterrupts(context.Background())
	h.SetNote("3 of 14 diagrams written to ./viz-export")

	assert.False(t, h.WasInterrupted())
	require.NoError(t, ctx.Err())

	h.interrupt()
	h.interrupt()

	assert.True(t, h.WasInterrupted())
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
	assert.Equal(t, 1, strings.Count(out.String(), "Interrupted"))
	assert.Contains(t, out.String(), "3 of 14 diagrams")
}

func TestNewInterruptHandlerDefaultsWriter(t *testing.T) {
	h := NewInterruptHandler(nil)
	assert.NotNil(t, h.writer)
	assert.False(t, h.WasInterrupted())
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(
		[]string{"ID", "TITLE"},
		[][]string{
			{"root2", "Trapping √2 Between Rationals"},
			{"heine-borel", "Heine-Borel Theorem"},
		},
	)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)

	// Second column starts at the same offset on every row.
	col := strings.Index(lines[2], "Heine")
	assert.Equal(t, len("heine-borel")+columnGap, col)
	assert.Equal(t, col, strings.Index(lines[1], "Trapping"))
}

func TestFormatCheck(t *testing.T) {
	assert.Contains(t, FormatCheck(true, "inside"), SuccessIcon)
	assert.Contains(t, FormatCheck(false, "outside"), ErrorIcon)
}
