package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazebench/pathfinding"
	"github.com/katalvlaran/mazebench/render"
)

func newPathfindingCmd(a *app) *cobra.Command {
	var showVisited bool
	cmd := &cobra.Command{
		Use:     "pathfinding [solver...]",
		Aliases: []string{"pf"},
		Short:   "Search one maze with DFS, BFS or A* and draw the result",
		Long: `Search the configured maze from its start to its end and print the
maze with the path marked. Without arguments every solver runs.

Solvers: dfs, bfs, astar_manhattan, astar_euclid, astar_chebyshev.`,
		ValidArgs: pathfinding.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = pathfinding.Names()
			}
			opts := []pathfinding.Option{
				pathfinding.WithContext(cmd.Context()),
				pathfinding.WithLogger(a.log),
			}
			solvers := make([]pathfinding.Solver, 0, len(args))
			for _, name := range args {
				s, err := pathfinding.ByName(name, opts...)
				if err != nil {
					return err
				}
				solvers = append(solvers, s)
			}

			g, err := a.maze()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, s := range solvers {
				res, err := s.Solve(g, g.Start())
				if err != nil {
					return fmt.Errorf("%s: %w", s.Name(), err)
				}
				a.log.Info("search finished",
					slog.String("solver", s.Name()),
					slog.Bool("found", res.Found()),
					slog.Int("visited", len(res.Visited)),
				)

				fmt.Fprintf(out, "== %s ==\n", s.Name())
				visited := res.Visited
				if !showVisited {
					visited = nil
				}
				if err := render.Path(out, g, visited, res.Path, a.renderOptions()...); err != nil {
					return err
				}
				fmt.Fprintf(out, "path length: %d  visited: %d  max frontier: %d  runtime: %.6fs  memory: %d B\n\n",
					len(res.Path), len(res.Visited), res.MaxFrontierSize, res.RunTimeSeconds(), res.PeakMemoryBytes)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showVisited, "visited", false, "mark visited cells")
	return cmd
}
