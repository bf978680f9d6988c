package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Veraticus/analysis-viz/internal/config"
	"github.com/Veraticus/analysis-viz/internal/pointset"
	"github.com/Veraticus/analysis-viz/internal/routes"
	"github.com/Veraticus/analysis-viz/internal/tui"
	"github.com/Veraticus/analysis-viz/internal/tui/themes"
)

func openCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open [route]",
		Short: "Open a diagram in the terminal",
		Long: `Open an interactive diagram. Without a route the index is shown and any
diagram can be picked from it. Run 'viz routes' for the ids.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: routes.IDs(),
		RunE: func(cmd *cobra.Command, args []string) error {
			var id string
			if len(args) == 1 {
				r, err := routes.Lookup(args[0])
				if err != nil {
					return err
				}
				id = r.ID
			}
			slog.Debug("Starting TUI", "route", id, "theme", settings.UI.Theme)
			return tui.Run(cmd.Context(), id, tuiOptions(settings)...)
		},
	}
}

// tuiOptions maps the settings onto the TUI configuration.
func tuiOptions(s config.Settings) []tui.Option {
	base := pointset.Thresholds{Self: s.PointSet.SelfTolerance, Adherent: s.PointSet.AdherentThreshold}
	return []tui.Option{
		tui.WithTheme(themes.GetTheme(s.UI.Theme)),
		tui.WithFPS(s.UI.FPS),
		tui.WithFeatures(s.UI.Animations, s.UI.Mouse),
		tui.WithCanvas(s.Canvas.Width, s.Canvas.Height),
		tui.WithThresholds(base, s.PointSet.ReferenceSize),
		tui.WithSeed(s.PointSet.Seed),
	}
}
