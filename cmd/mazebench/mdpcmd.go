package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazebench/mdp"
	"github.com/katalvlaran/mazebench/render"
	"github.com/katalvlaran/mazebench/report"
)

func newMDPCmd(a *app) *cobra.Command {
	var (
		showValues bool
		precision  int
		chart      string
	)
	cmd := &cobra.Command{
		Use:   "mdp [solver...]",
		Short: "Solve one maze as a Markov Decision Process",
		Long: `Treat the configured maze as an MDP with noisy moves, solve it with
Value Iteration and/or Policy Iteration and print the resulting policy.
Without arguments Value Iteration runs.

Solvers: value-iteration, policy-iteration.`,
		ValidArgs: mdp.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{mdp.NameValueIteration}
			}
			opts := append(a.cfg.SolverOptions(cmd.Context(), a.log), mdp.WithSnapshots(chart != ""))
			solvers := make([]mdp.Solver, 0, len(args))
			for _, name := range args {
				s, err := mdp.ByName(name, opts...)
				if err != nil {
					return err
				}
				solvers = append(solvers, s)
			}

			g, err := a.maze()
			if err != nil {
				return err
			}
			base, err := mdp.NewModel(g)
			if err != nil {
				return err
			}
			base.InitStates(a.cfg.MDP.InitialValue, a.cfg.MDP.GoalReward, a.cfg.Maze.Seed)

			out := cmd.OutOrStdout()
			ropts := append(a.renderOptions(), render.WithPrecision(precision))
			var series []report.Series
			for _, s := range solvers {
				m := base.Clone()
				res, err := s.Solve(m)
				switch {
				case errors.Is(err, mdp.ErrNotConverged):
					a.log.Warn("solver did not converge", slog.String("solver", s.Name()), slog.Any("err", err))
				case err != nil:
					return fmt.Errorf("%s: %w", s.Name(), err)
				}

				snap := m.Snapshot(res.Delta, mdp.PhaseSweep, res.EvalIterations, res.ImproveIterations)
				fmt.Fprintf(out, "== %s ==\n", s.Name())
				if err := render.Policy(out, snap, res.Path, ropts...); err != nil {
					return err
				}
				if showValues {
					fmt.Fprintln(out)
					if err := render.Values(out, snap, ropts...); err != nil {
						return err
					}
				}
				fmt.Fprintf(out, "converged: %t  reached goal: %t  path length: %d  iterations: %d",
					res.Converged, res.Reached, len(res.Path), res.Iterations)
				if res.ImproveIterations > 0 {
					fmt.Fprintf(out, " (eval %d, improve %d)", res.EvalIterations, res.ImproveIterations)
				}
				fmt.Fprintf(out, "  runtime: %.6fs  memory: %d B\n\n", res.RunTimeSeconds(), res.PeakMemoryBytes)

				series = append(series, report.Series{Name: s.Name(), Snapshots: res.Snapshots})
			}

			if chart == "" {
				return nil
			}
			return writeFile(chart, func(f *os.File) error {
				return report.ConvergenceChart(f, fmt.Sprintf("Convergence on %dx%d %s maze", a.cfg.Maze.Rows, a.cfg.Maze.Cols, a.cfg.Maze.Generator), series...)
			})
		},
	}
	addMDPFlags(cmd)
	cmd.Flags().BoolVar(&showValues, "values", false, "also print the value of every cell")
	cmd.Flags().IntVar(&precision, "precision", 2, "decimals for --values")
	cmd.Flags().StringVar(&chart, "chart", "", "write a convergence chart to this HTML file")
	return cmd
}

// writeFile creates path and hands it to fn, keeping fn's error first.
func writeFile(path string, fn func(*os.File) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return fn(f)
}
