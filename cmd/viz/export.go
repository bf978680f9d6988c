package main

import (
	"fmt"
	"log/slog"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/analysis-viz/internal/cli"
	"github.com/Veraticus/analysis-viz/internal/config"
	"github.com/Veraticus/analysis-viz/internal/pointset"
	"github.com/Veraticus/analysis-viz/internal/render"
	"github.com/Veraticus/analysis-viz/internal/routes"
)

func exportCmd() *cobra.Command {
	d := config.Defaults().Export
	cmd := &cobra.Command{
		Use:   "export [route...]",
		Short: "Render diagrams to PNG",
		Long: `Render diagrams to <out>/<route>.png. Without arguments every diagram
is exported.`,
		ValidArgs: routes.IDs(),
		RunE:      runExport,
	}

	// Flags
	cmd.Flags().String("out", d.Dir, "output directory")
	cmd.Flags().Int("width", d.Width, "image width in pixels")
	cmd.Flags().Int("height", d.Height, "image height in pixels")

	// Bind to viper
	_ = viper.BindPFlag("export.dir", cmd.Flags().Lookup("out"))
	_ = viper.BindPFlag("export.width", cmd.Flags().Lookup("width"))
	_ = viper.BindPFlag("export.height", cmd.Flags().Lookup("height"))

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	ids := args
	if len(ids) == 0 {
		ids = routes.IDs()
	}
	for _, id := range ids {
		if _, err := routes.Lookup(id); err != nil {
			return err
		}
	}

	opts := []render.Option{
		render.WithThresholds(pointset.Thresholds{
			Self:     settings.PointSet.SelfTolerance,
			Adherent: settings.PointSet.AdherentThreshold,
		}),
	}
	if settings.PointSet.Seed != 0 {
		opts = append(opts, render.WithSeed(settings.PointSet.Seed))
	}
	r, err := render.New(settings.Export.Width, settings.Export.Height, opts...)
	if err != nil {
		return err
	}

	dir := settings.Export.Dir
	var bar *progressbar.ProgressBar
	if len(ids) > 1 {
		bar = progressbar.NewOptions(len(ids),
			progressbar.OptionSetWriter(cmd.ErrOrStderr()),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionShowCount(),
			progressbar.OptionShowElapsedTimeOnFinish(),
			progressbar.OptionSetWidth(40),
			progressbar.OptionSetDescription("[cyan][bold]Exporting diagrams...[reset]"),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				if _, err := fmt.Fprintln(cmd.ErrOrStderr()); err != nil {
					slog.Warn("Failed to write newline after progress bar", "error", err)
				}
			}),
		)
	}

	var last string
	for i, id := range ids {
		if err := ctx.Err(); err != nil {
			return err
		}
		noteOnInterrupt(fmt.Sprintf("%d of %d diagrams written to %s", i, len(ids), dir))

		path, err := r.Export(ctx, id, dir)
		if err != nil {
			return err
		}
		last = path
		if bar != nil {
			if err := bar.Add(1); err != nil {
				slog.Warn("Failed to update progress bar", "error", err)
			}
		}
	}

	msg := fmt.Sprintf("Exported %d diagrams to %s", len(ids), dir)
	if len(ids) == 1 {
		msg = "Exported " + last
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(msg))
	return err
}
