package tui

import (
	"github.com/Veraticus/analysis-viz/internal/pointset"
	"github.com/Veraticus/analysis-viz/internal/tui/components"
	"github.com/Veraticus/analysis-viz/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Theme            themes.Theme
	Thresholds       pointset.Thresholds
	CanvasWidth      float64
	CanvasHeight     float64
	ReferenceSize    float64
	Seed             uint32
	FPS              int
	Width            int
	Height           int
	EnableAnimations bool
	MouseSupport     bool
	ShowHelp         bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:            themes.Default,
		Thresholds:       pointset.DefaultThresholds(),
		CanvasWidth:      600,
		CanvasHeight:     420,
		ReferenceSize:    420,
		Seed:             0,
		FPS:              30,
		Width:            100,
		Height:           32,
		EnableAnimations: true,
		MouseSupport:     true,
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithFPS sets the animation tick rate.
func WithFPS(fps int) Option {
	return func(c *Config) {
		c.FPS = fps
	}
}

// WithFeatures configures UI features.
func WithFeatures(animations, mouse bool) Option {
	return func(c *Config) {
		c.EnableAnimations = animations
		c.MouseSupport = mouse
	}
}

// WithThresholds sets the point-set tolerances and the surface size they
// were tuned for.
func WithThresholds(th pointset.Thresholds, reference float64) Option {
	return func(c *Config) {
		c.Thresholds = th
		c.ReferenceSize = reference
	}
}

// WithCanvas sets the display-unit surface point sets are generated on.
func WithCanvas(width, height float64) Option {
	return func(c *Config) {
		c.CanvasWidth = width
		c.CanvasHeight = height
	}
}

// WithSeed fixes the random seed of generated point sets. Zero seeds from
// the clock.
func WithSeed(seed uint32) Option {
	return func(c *Config) {
		c.Seed = seed
	}
}

// env is what the widgets see of the configuration.
func (c Config) env(width, height int) components.Env {
	return components.Env{
		Theme:         c.Theme,
		Thresholds:    c.Thresholds,
		CanvasWidth:   c.CanvasWidth,
		CanvasHeight:  c.CanvasHeight,
		ReferenceSize: c.ReferenceSize,
		Seed:          c.Seed,
		Animations:    c.EnableAnimations,
		Width:         width,
		Height:        height,
	}
}
