package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/katalvlaran/mazebench/config"
	"github.com/katalvlaran/mazebench/grid"
	"github.com/katalvlaran/mazebench/mazegen"
	"github.com/katalvlaran/mazebench/render"
)

// app is the state shared by every subcommand after PersistentPreRunE.
type app struct {
	configPath string
	envFile    string
	color      bool
	noColor    bool

	rows, cols int
	generator  string
	seed       int64

	cfg *config.Config
	log *slog.Logger
}

// Execute runs the CLI until completion or SIGINT/SIGTERM.
func Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "mazebench",
		Short: "Maze generation with pathfinding and MDP solver benchmarks",
		Long: `mazebench generates perfect mazes and runs DFS, BFS and A* searches
or Value/Policy Iteration on them, printing the result as text and
optionally writing CSV and HTML reports.

Configuration is read from --config (YAML), a .env file and MAZEBENCH_*
environment variables, in that order; flags win over all of them.`,
		PersistentPreRunE: a.load,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "path to a YAML config file")
	pf.StringVar(&a.envFile, "env-file", ".env", "dotenv file with MAZEBENCH_* variables")
	pf.BoolVar(&a.noColor, "no-color", false, "disable colored output")
	pf.IntVar(&a.rows, "rows", 0, "maze rows in cells")
	pf.IntVar(&a.cols, "cols", 0, "maze columns in cells")
	pf.StringVarP(&a.generator, "generator", "g", "", "maze generator: backtracking, prims, wilson, aldousbroder, binarytree")
	pf.Int64Var(&a.seed, "seed", 0, "maze and policy seed (0 = fixed default)")

	root.AddCommand(
		newPathfindingCmd(a),
		newMDPCmd(a),
		newEvalCmd(a),
		newConfigCmd(a),
	)
	return root
}

// load resolves the configuration, applies flag overrides and installs the
// logger.
func (a *app) load(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath, a.envFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("rows") {
		cfg.Maze.Rows = a.rows
	}
	if flags.Changed("cols") {
		cfg.Maze.Cols = a.cols
	}
	if flags.Changed("generator") {
		cfg.Maze.Generator = a.generator
	}
	if flags.Changed("seed") {
		cfg.Maze.Seed = a.seed
	}
	if err := applyMDPFlags(cmd, cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := cfg.Logging.NewLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	slog.SetDefault(log)

	a.cfg, a.log = cfg, log
	a.color = !a.noColor && isTerminal(cmd)
	return nil
}

func isTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.OutOrStdout().(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (a *app) renderOptions() []render.Option {
	return []render.Option{render.WithColor(a.color)}
}

// maze builds the configured single-run maze.
func (a *app) maze() (*grid.Grid, error) {
	m := a.cfg.Maze
	mz, err := mazegen.Generate(m.Generator, m.Rows, m.Cols, m.Seed)
	if err != nil {
		return nil, err
	}
	g, err := mz.Grid()
	if err != nil {
		return nil, err
	}
	a.log.Debug("maze generated",
		slog.String("generator", m.Generator),
		slog.Int("rows", g.Rows()),
		slog.Int("cols", g.Cols()),
		slog.Int64("seed", m.Seed),
	)
	return g, nil
}
