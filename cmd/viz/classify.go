package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Veraticus/analysis-viz/internal/cli"
	"github.com/Veraticus/analysis-viz/internal/common"
	"github.com/Veraticus/analysis-viz/internal/geom"
	"github.com/Veraticus/analysis-viz/internal/pointset"
	"github.com/Veraticus/analysis-viz/internal/region"
)

func classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify a point without opening a diagram",
		Long: `Run the region and point-set classifiers for a single probe and print
the result.`,
	}
	cmd.AddCommand(classifyRegionCmd())
	cmd.AddCommand(classifyPointCmd())
	return cmd
}

func classifyRegionCmd() *cobra.Command {
	var (
		shape string
		x, y  float64
		eps   float64
	)
	cmd := &cobra.Command{
		Use:   "region",
		Short: "Interior, boundary or exterior of a shape",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ex, err := region.Lookup(shape)
			if err != nil {
				return err
			}
			if !(eps > 0) {
				return fmt.Errorf("%w: --eps %g must be positive", common.ErrInvalidParameter, eps)
			}

			p := geom.Pt(x, y)
			d, c := region.Classify(ex.Shape, p, eps)
			lines := []string{
				field("Shape", ex.Label),
				field("Probe", fmt.Sprintf("(%g, %g)", x, y)),
				field("ε", fmt.Sprintf("%g", eps)),
				field("d(x)", fmt.Sprintf("%.2f", d)),
				"",
				region.Explanation(c, eps),
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.RenderBox(c.Label(), strings.Join(lines, "\n")))
			return err
		},
	}
	cmd.Flags().StringVar(&shape, "shape", "disk", "shape (disk, square, annulus, star)")
	cmd.Flags().Float64Var(&x, "x", 0, "probe x, origin at the shape center")
	cmd.Flags().Float64Var(&y, "y", 0, "probe y, origin at the shape center")
	cmd.Flags().Float64Var(&eps, "eps", region.DefaultEpsilon, "ball radius")
	return cmd
}

func classifyPointCmd() *cobra.Command {
	var (
		set  string
		x, y float64
		eps  float64
		seed uint32
	)
	cmd := &cobra.Command{
		Use:   "point",
		Short: "Adherent, accumulation or isolated point of a set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ex, err := pointset.LookupExample(set)
			if err != nil {
				return err
			}
			if !(eps > 0) {
				return fmt.Errorf("%w: --eps %g must be positive", common.ErrInvalidParameter, eps)
			}
			if seed == 0 {
				seed = settings.PointSet.Seed
			}

			w, h := settings.Canvas.Width, settings.Canvas.Height
			pts, err := pointset.Generate(ex.Key, w, h, pointset.NewRandom(seed))
			if err != nil {
				return err
			}
			th := settings.Thresholds()
			p := geom.Pt(w/2+x, h/2+y)
			exact := pointset.ClassifyExact(pts, p, th)
			approx := pointset.ClassifyApprox(pts, p, eps, th)

			lines := []string{
				field("Set", ex.Name),
				field("Probe", fmt.Sprintf("(%g, %g)", x, y)),
				field("ε", fmt.Sprintf("%g", eps)),
				"",
				cli.FormatCheck(exact.InSet, "x ∈ S"),
				cli.FormatCheck(exact.IsAdherent, "adherent: every ball meets S"),
				cli.FormatCheck(exact.IsAccumulation, "accumulation: every ball meets S \\ {x}"),
				cli.FormatCheck(exact.IsIsolated, "isolated: some ball meets only x"),
				"",
				fmt.Sprintf("B(x, %g) holds %d point(s) of S", eps, len(approx.InBall)),
				cli.FormatCheck(approx.HasOtherSetPointInBall, "B(x, ε) meets S \\ {x}"),
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.RenderBox(exact.Label().String(), strings.Join(lines, "\n")))
			return err
		},
	}
	cmd.Flags().StringVar(&set, "set", "dense_disk", "point set (dense_disk, sequence, lattice, clusters)")
	cmd.Flags().Float64Var(&x, "x", 0, "probe x, origin at the surface center")
	cmd.Flags().Float64Var(&y, "y", 0, "probe y, origin at the surface center")
	cmd.Flags().Float64Var(&eps, "eps", pointset.DefaultEpsilon, "ball radius")
	cmd.Flags().Uint32Var(&seed, "seed", 0, "random seed for generated sets (default: pointset.seed)")
	return cmd
}

func field(name, value string) string {
	return cli.BoldStyle.Render(fmt.Sprintf("%-6s", name)) + " " + value
}
