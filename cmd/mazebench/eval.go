package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazebench/evaluation"
	"github.com/katalvlaran/mazebench/report"
)

func newEvalCmd(a *app) *cobra.Command {
	var (
		sizes       []int
		seeds       []int64
		onlyPF      bool
		onlyMDP     bool
		writeCSV    bool
		summary     bool
		chartMetric string
	)
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Benchmark every solver over maze sizes and seeds",
		Long: `Generate one size×size maze per size and seed, run the five pathfinding
solvers and both MDP solvers on it and print a results table.

With --csv the rows are written to <out_dir>/<run_id>_eval_<generator>.csv.
With --chart METRIC a bar chart of the metric's mean is written next to it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if chartMetric != "" {
				if _, err := report.ParseMetric(chartMetric); err != nil {
					return err
				}
			}

			ec := a.cfg.Evaluation()
			if cmd.Flags().Changed("sizes") {
				ec.Sizes = sizes
			}
			if cmd.Flags().Changed("seeds") {
				ec.Seeds = seeds
			}
			if onlyPF || onlyMDP {
				ec.Pathfinding, ec.MDP = onlyPF, onlyMDP
			}

			rep, err := evaluation.Run(cmd.Context(), ec,
				evaluation.WithLogger(a.log),
				evaluation.WithOnMaze(func(size int, seed int64, rows []evaluation.Row) {
					a.log.Info("maze evaluated", slog.Int("size", size), slog.Int64("seed", seed), slog.Int("rows", len(rows)))
				}),
			)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "run %s, generator %s\n", rep.RunID, rep.Generator)
			if err := report.WriteTable(out, rep.Rows); err != nil {
				return err
			}
			if summary {
				if err := report.WriteSummaryTable(out, report.Summarize(rep.Rows)); err != nil {
					return err
				}
			}

			dir := a.cfg.Eval.OutDir
			if writeCSV {
				path := filepath.Join(dir, report.CSVName(rep.RunID, rep.Generator))
				if err := writeFile(path, func(f *os.File) error { return report.WriteCSV(f, rep.Rows) }); err != nil {
					return err
				}
				fmt.Fprintf(out, "\nresults written to %s\n", path)
			}
			if chartMetric != "" {
				path := filepath.Join(dir, fmt.Sprintf("%s_%s_%s.html", rep.RunID, rep.Generator, chartMetric))
				err := writeFile(path, func(f *os.File) error {
					return report.BenchmarkChart(f, rep.Rows, report.Metric(chartMetric))
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "chart written to %s\n", path)
			}
			return nil
		},
	}
	addMDPFlags(cmd)
	f := cmd.Flags()
	f.IntSliceVar(&sizes, "sizes", nil, "maze sizes in cells, e.g. 5,10,20")
	f.Int64SliceVar(&seeds, "seeds", nil, "maze seeds, e.g. 1,2,3")
	f.BoolVar(&onlyPF, "pathfinding", false, "run only the pathfinding solvers (with --mdp: both)")
	f.BoolVar(&onlyMDP, "mdp", false, "run only the MDP solvers (with --pathfinding: both)")
	f.BoolVar(&writeCSV, "csv", false, "write the rows as CSV into eval.out_dir")
	f.BoolVar(&summary, "summary", false, "print mean and std per algorithm and size")
	f.StringVar(&chartMetric, "chart", "", "write a bar chart of this metric, e.g. runtime_s")
	return cmd
}

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.cfg.WriteYAML(cmd.OutOrStdout())
		},
	}
}
