// Package themes holds the colour palettes of the terminal diagrams.
package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the TUI.
type Theme struct {
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Normal      lipgloss.Style
	Bold        lipgloss.Style
	Italic      lipgloss.Style
	Faint       lipgloss.Style
	Code        lipgloss.Style
	Selected    lipgloss.Style
	Panel       lipgloss.Style
	RoundedBox  lipgloss.Style
	StatusBar   lipgloss.Style
	StatusGood  lipgloss.Style
	StatusBad   lipgloss.Style
	StatusInfo  lipgloss.Style
	StatusMuted lipgloss.Style

	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Foreground lipgloss.Color
	Background lipgloss.Color
	Border     lipgloss.Color
	Muted      lipgloss.Color
	Axis       lipgloss.Color

	// Classification colours.
	Interior     lipgloss.Color
	Boundary     lipgloss.Color
	Exterior     lipgloss.Color
	Adherent     lipgloss.Color
	Accumulation lipgloss.Color
	Isolated     lipgloss.Color
	Good         lipgloss.Color
	Bad          lipgloss.Color
	Highlight    lipgloss.Color
}

type palette struct {
	primary, secondary, fg, bg, subtle, border, muted, axis, code lipgloss.Color

	interior, boundary, exterior     lipgloss.Color
	adherent, accumulation, isolated lipgloss.Color
	good, bad, highlight             lipgloss.Color
}

func build(p palette) Theme {
	return Theme{
		Primary:    p.primary,
		Secondary:  p.secondary,
		Foreground: p.fg,
		Background: p.bg,
		Border:     p.border,
		Muted:      p.muted,
		Axis:       p.axis,

		Interior:     p.interior,
		Boundary:     p.boundary,
		Exterior:     p.exterior,
		Adherent:     p.adherent,
		Accumulation: p.accumulation,
		Isolated:     p.isolated,
		Good:         p.good,
		Bad:          p.bad,
		Highlight:    p.highlight,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.fg),
		Subtitle: lipgloss.NewStyle().
			Foreground(p.subtle),
		Normal: lipgloss.NewStyle().
			Foreground(p.fg),
		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.fg),
		Italic: lipgloss.NewStyle().
			Italic(true).
			Foreground(p.subtle),
		Faint: lipgloss.NewStyle().
			Foreground(p.muted),
		Code: lipgloss.NewStyle().
			Background(p.code).
			Foreground(p.fg).
			Padding(0, 1),
		Selected: lipgloss.NewStyle().
			Background(p.primary).
			Foreground(p.fg).
			Bold(true),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.border).
			Padding(0, 1),
		RoundedBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Padding(1, 2),
		StatusBar: lipgloss.NewStyle().
			Foreground(p.muted),
		StatusGood: lipgloss.NewStyle().
			Foreground(p.good).
			Bold(true),
		StatusBad: lipgloss.NewStyle().
			Foreground(p.bad).
			Bold(true),
		StatusInfo: lipgloss.NewStyle().
			Foreground(p.interior).
			Bold(true),
		StatusMuted: lipgloss.NewStyle().
			Foreground(p.muted).
			Italic(true),
	}
}

// Default is the default theme.
var Default = build(palette{
	primary:   lipgloss.Color("#7c3aed"),
	secondary: lipgloss.Color("#a78bfa"),
	fg:        lipgloss.Color("#fafafa"),
	bg:        lipgloss.Color("#1a1a1a"),
	subtle:    lipgloss.Color("#a3a3a3"),
	border:    lipgloss.Color("#404040"),
	muted:     lipgloss.Color("#737373"),
	axis:      lipgloss.Color("#525252"),
	code:      lipgloss.Color("#262626"),

	interior:     lipgloss.Color("#3b82f6"),
	boundary:     lipgloss.Color("#f59e0b"),
	exterior:     lipgloss.Color("#64748b"),
	adherent:     lipgloss.Color("#eab308"),
	accumulation: lipgloss.Color("#06b6d4"),
	isolated:     lipgloss.Color("#a855f7"),
	good:         lipgloss.Color("#10b981"),
	bad:          lipgloss.Color("#ef4444"),
	highlight:    lipgloss.Color("#f472b6"),
})

// Nord is an arctic, north-bluish theme.
var Nord = build(palette{
	primary:   lipgloss.Color("#5e81ac"),
	secondary: lipgloss.Color("#81a1c1"),
	fg:        lipgloss.Color("#eceff4"),
	bg:        lipgloss.Color("#2e3440"),
	subtle:    lipgloss.Color("#d8dee9"),
	border:    lipgloss.Color("#4c566a"),
	muted:     lipgloss.Color("#616e88"),
	axis:      lipgloss.Color("#4c566a"),
	code:      lipgloss.Color("#3b4252"),

	interior:     lipgloss.Color("#81a1c1"),
	boundary:     lipgloss.Color("#d08770"),
	exterior:     lipgloss.Color("#4c566a"),
	adherent:     lipgloss.Color("#ebcb8b"),
	accumulation: lipgloss.Color("#88c0d0"),
	isolated:     lipgloss.Color("#b48ead"),
	good:         lipgloss.Color("#a3be8c"),
	bad:          lipgloss.Color("#bf616a"),
	highlight:    lipgloss.Color("#ebcb8b"),
})

// Names lists the themes GetTheme knows.
var Names = []string{"default", "nord"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	switch name {
	case "nord":
		return Nord
	default:
		return Default
	}
}
