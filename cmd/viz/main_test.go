package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/analysis-viz/internal/common"
	"github.com/Veraticus/analysis-viz/internal/routes"
	tuitest "github.com/Veraticus/analysis-viz/internal/tui/testing"
)

// execute runs the root command with a fresh viper and an empty config
// file, returning stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	cfgFile = ""

	cfg := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("logging:\n  level: error\n"), 0o600))

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--config", cfg}, args...))
	err := root.Execute()
	return tuitest.StripANSI(out.String()), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "viz version dev")
}

func TestRoutesListsEveryID(t *testing.T) {
	out, err := execute(t, "routes")
	require.NoError(t, err)
	for _, r := range routes.All() {
		assert.Contains(t, out, r.ID)
	}
}

func TestClassifyRegion(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "exterior of disk",
			args: []string{"--shape", "disk", "--x", "150", "--y", "0", "--eps", "5"},
			want: []string{"Exterior Point", "10.00"},
		},
		{
			name: "boundary of disk",
			args: []string{"--shape", "disk", "--x", "140", "--y", "0", "--eps", "5"},
			want: []string{"Boundary Point", "0.00"},
		},
		{
			name: "interior of square",
			args: []string{"--shape", "square", "--eps", "20"},
			want: []string{"Interior Point", "-130.00"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, append([]string{"classify", "region"}, tt.args...)...)
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestClassifyRegionErrors(t *testing.T) {
	_, err := execute(t, "classify", "region", "--shape", "hexagon")
	assert.ErrorIs(t, err, common.ErrUnknownShape)

	_, err = execute(t, "classify", "region", "--eps", "0")
	assert.ErrorIs(t, err, common.ErrInvalidParameter)
}

func TestClassifyPoint(t *testing.T) {
	out, err := execute(t, "classify", "point", "--set", "lattice", "--eps", "20")
	require.NoError(t, err)
	assert.Contains(t, out, "Isolated Point")

	out, err = execute(t, "classify", "point", "--set", "sequence", "--eps", "20")
	require.NoError(t, err)
	assert.Contains(t, out, "Accumulation Point")

	_, err = execute(t, "classify", "point", "--set", "cantor")
	assert.ErrorIs(t, err, common.ErrUnknownExample)
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "export", routes.Root2, routes.IntExtBoundary,
		"--out", dir, "--width", "400", "--height", "300")
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 2 diagrams")

	for _, id := range []string{routes.Root2, routes.IntExtBoundary} {
		info, err := os.Stat(filepath.Join(dir, id+".png"))
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}

func TestExportRejectsUnknownRoute(t *testing.T) {
	_, err := execute(t, "export", "nope", "--out", t.TempDir())
	assert.ErrorIs(t, err, common.ErrUnknownRoute)
}

func TestInvalidConfig(t *testing.T) {
	_, err := execute(t, "--log-level", "loud", "version")
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}
