package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/analysis-viz/internal/common"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("VIZ_TEST_DIR", "/tmp/viz")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"tilde", "~", home},
		{"tilde path", "~/out", filepath.Join(home, "out")},
		{"env", "$VIZ_TEST_DIR/png", "/tmp/viz/png"},
		{"plain", "./viz-export", "./viz-export"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.in))
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	s, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s)

	th := s.Thresholds()
	assert.InDelta(t, 5, th.Self, 1e-12)
	assert.InDelta(t, 8, th.Adherent, 1e-12)
}

func TestLoadFromYAML(t *testing.T) {
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(`
ui:
  theme: nord
  fps: 60
canvas:
  width: 1200
  height: 840
pointset:
  seed: 42
export:
  width: 1800
`)))

	s, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "nord", s.UI.Theme)
	assert.Equal(t, 60, s.UI.FPS)
	assert.True(t, s.UI.Mouse)
	assert.Equal(t, uint32(42), s.PointSet.Seed)
	assert.Equal(t, 1800, s.Export.Width)
	assert.Equal(t, 630, s.Export.Height)

	// Thresholds scale with the smaller canvas side.
	th := s.Thresholds()
	assert.InDelta(t, 10, th.Self, 1e-12)
	assert.InDelta(t, 16, th.Adherent, 1e-12)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("VIZ_UI_THEME", "nord")
	t.Setenv("VIZ_LOGGING_LEVEL", "debug")

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	s, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "nord", s.UI.Theme)
	assert.Equal(t, "debug", s.Logging.Level)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"log level", func(s *Settings) { s.Logging.Level = "loud" }},
		{"log format", func(s *Settings) { s.Logging.Format = "xml" }},
		{"theme", func(s *Settings) { s.UI.Theme = "solarized" }},
		{"fps", func(s *Settings) { s.UI.FPS = 0 }},
		{"canvas", func(s *Settings) { s.Canvas.Width = -1 }},
		{"thresholds", func(s *Settings) { s.PointSet.AdherentThreshold = 0 }},
		{"threshold order", func(s *Settings) { s.PointSet.SelfTolerance = 9 }},
		{"export size", func(s *Settings) { s.Export.Width = 10 }},
		{"export dir", func(s *Settings) { s.Export.Dir = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Defaults()
			tt.mutate(&s)
			err := s.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, common.ErrInvalidConfig))
		})
	}

	assert.NoError(t, Defaults().Validate())
}

func TestLoadRejectsInvalid(t *testing.T) {
	v := viper.New()
	v.Set("ui.fps", 500)
	_, err := Load(v)
	assert.True(t, errors.Is(err, common.ErrInvalidConfig))
}

func TestDefaultPath(t *testing.T) {
	p, err := DefaultPath()
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(p, filepath.Join(".config", "viz", "config.yaml")))
}
