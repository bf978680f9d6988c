package components

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/analysis-viz/internal/pointset"
	"github.com/Veraticus/analysis-viz/internal/tui/themes"
)

// Env is what every widget needs from the application.
type Env struct {
	Theme      themes.Theme
	Thresholds pointset.Thresholds
	// CanvasWidth and CanvasHeight are the display-unit surface that point
	// sets are generated on; ReferenceSize is the side the thresholds assume.
	CanvasWidth   float64
	CanvasHeight  float64
	ReferenceSize float64
	Seed          uint32
	Animations    bool
	Width         int
	Height        int
}

// DefaultEnv is used by tests and by widgets created without options.
func DefaultEnv() Env {
	return Env{
		Theme:         themes.Default,
		Thresholds:    pointset.DefaultThresholds(),
		CanvasWidth:   600,
		CanvasHeight:  420,
		ReferenceSize: 420,
		Seed:          1,
		Animations:    true,
		Width:         100,
		Height:        32,
	}
}

// Widget is an interactive diagram.
type Widget interface {
	tea.Model
	// Title names the diagram for the header.
	Title() string
	// Keys lists the bindings shown in the help line.
	Keys() []key.Binding
}

// TickMsg advances the cosmetic animation phase. Classification never
// depends on it.
type TickMsg struct {
	Phase int
}
