package routes

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/analysis-viz/internal/common"
)

func TestAllRoutesUnique(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for _, r := range All() {
		assert.False(t, seen[r.ID], "duplicate %s", r.ID)
		seen[r.ID] = true
		assert.NotEmpty(t, r.Title)
		assert.NotEmpty(t, r.Description)
	}
	assert.Len(t, seen, 14)
	assert.Equal(t, len(All()), len(IDs()))
}

func TestLookup(t *testing.T) {
	t.Parallel()

	r, err := Lookup(Root2)
	require.NoError(t, err)
	assert.Equal(t, "Trapping √2 Between Rationals", r.Title)
	assert.Equal(t, Sequence, r.Kind)

	_, err = Lookup("missing")
	assert.True(t, errors.Is(err, common.ErrUnknownRoute))
}
