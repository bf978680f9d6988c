package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/analysis-viz/internal/cli"
	"github.com/Veraticus/analysis-viz/internal/routes"
)

func routesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List every diagram",
		Long:  `List the diagram ids accepted by 'viz open' and 'viz export'.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows := make([][]string, 0, len(routes.All()))
			for _, r := range routes.All() {
				rows = append(rows, []string{r.ID, r.Title, cli.SubtleStyle.Render(r.Description)})
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), cli.RenderTable([]string{"ID", "TITLE", "DESCRIPTION"}, rows))
			return err
		},
	}
}
