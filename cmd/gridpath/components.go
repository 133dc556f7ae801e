package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/dijkstra"
)

func (a *app) componentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "components [file]",
		Short: "List the connected open regions of a grid",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGrid(cmd, args)
			if err != nil {
				return err
			}
			comps := g.ConnectedComponents()
			a.log.Info("components computed", "count", len(comps))

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "components:", len(comps))
			for i, comp := range comps {
				fmt.Fprintf(w, "component %d: %d cells from %v\n", i, len(comp), comp[0])
			}
			start, hasStart := g.Start()
			goal, hasGoal := g.Goal()
			if hasStart {
				dist, err := dijkstra.Distances(g, dijkstra.WithContext(cmd.Context()))
				if err != nil {
					return err
				}
				farthest := 0
				for _, d := range dist {
					farthest = max(farthest, d)
				}
				a.log.Debug("distances computed", "reachable", len(dist), "farthest", farthest)
				fmt.Fprintf(w, "start %v reaches %d cells, farthest %d steps\n", start, len(dist), farthest)
			}
			if hasStart && hasGoal {
				fmt.Fprintf(w, "start %v in component %d, goal %v in component %d\n",
					start, g.ComponentOf(start), goal, g.ComponentOf(goal))
			}

			return nil
		},
	}
}
