package evaluation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/mazebench/grid"
	"github.com/katalvlaran/mazebench/mazegen"
	"github.com/katalvlaran/mazebench/mdp"
	"github.com/katalvlaran/mazebench/pathfinding"
)

// NewRunID returns the first 8 hex digits of a random UUID.
func NewRunID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// Validate checks sizes, seeds and the generator name. Solver parameters
// are validated by the mdp options when the run starts.
func (c Config) Validate() error {
	if len(c.Sizes) == 0 {
		return fmt.Errorf("%w: no maze sizes", ErrInvalidConfig)
	}
	for _, s := range c.Sizes {
		if s <= 0 {
			return fmt.Errorf("%w: size %d must be positive", ErrInvalidConfig, s)
		}
	}
	if _, err := mazegen.ByName(c.Generator); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

func (c Config) mdpOptions(ctx context.Context, log *slog.Logger) []mdp.Option {
	return []mdp.Option{
		mdp.WithContext(ctx),
		mdp.WithLogger(log),
		mdp.WithDiscount(c.Discount),
		mdp.WithLivingReward(c.LivingReward),
		mdp.WithNoise(c.Noise),
		mdp.WithTheta(c.Theta),
		mdp.WithMaxIterations(c.MaxIterations),
		mdp.WithSnapshots(false),
	}
}

// Run generates one maze per size × seed, runs the selected solvers on it
// and collects a Row per solver. Every MDP solver gets its own freshly
// initialised model. An MDP solver that hits its iteration guard still
// yields a row, with Converged false.
func Run(ctx context.Context, cfg Config, opts ...Option) (*Report, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if cfg.Generator == "" {
		cfg.Generator = mazegen.DefaultGenerator
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if o.RunID == "" {
		o.RunID = NewRunID()
	}
	if len(cfg.Seeds) == 0 {
		cfg.Seeds = []int64{0}
	}
	if !cfg.Pathfinding && !cfg.MDP {
		cfg.Pathfinding, cfg.MDP = true, true
	}

	rep := &Report{RunID: o.RunID, Generator: cfg.Generator, Started: time.Now()}
	log := o.Logger.With(slog.String("run_id", rep.RunID))
	log.Info("evaluation started",
		slog.Any("sizes", cfg.Sizes),
		slog.Any("seeds", cfg.Seeds),
		slog.String("generator", cfg.Generator),
	)

	for _, size := range cfg.Sizes {
		for _, seed := range cfg.Seeds {
			if err := ctx.Err(); err != nil {
				return rep, err
			}
			rows, err := runMaze(ctx, cfg, size, seed, log)
			if err != nil {
				return rep, fmt.Errorf("evaluation: size %d seed %d: %w", size, seed, err)
			}
			rep.Rows = append(rep.Rows, rows...)
			o.OnMaze(size, seed, rows)
		}
	}

	log.Info("evaluation finished", slog.Int("rows", len(rep.Rows)), slog.Duration("elapsed", time.Since(rep.Started)))
	return rep, nil
}

func runMaze(ctx context.Context, cfg Config, size int, seed int64, log *slog.Logger) ([]Row, error) {
	maze, err := mazegen.Generate(cfg.Generator, size, size, seed)
	if err != nil {
		return nil, err
	}
	g, err := maze.Grid()
	if err != nil {
		return nil, err
	}
	log.Debug("maze generated", slog.Int("size", size), slog.Int64("seed", seed), slog.Int("open_cells", g.OpenCount()))

	var rows []Row
	if cfg.Pathfinding {
		pf, err := runPathfinding(ctx, g, size, seed, log)
		if err != nil {
			return nil, err
		}
		rows = append(rows, pf...)
	}
	if cfg.MDP {
		md, err := runMDP(ctx, cfg, g, size, seed, log)
		if err != nil {
			return nil, err
		}
		rows = append(rows, md...)
	}
	return rows, nil
}

func runPathfinding(ctx context.Context, g *grid.Grid, size int, seed int64, log *slog.Logger) ([]Row, error) {
	solvers := pathfinding.All(pathfinding.WithContext(ctx), pathfinding.WithLogger(log))
	rows := make([]Row, 0, len(solvers))
	for _, s := range solvers {
		res, err := s.Solve(g, g.Start())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.Name(), err)
		}
		rows = append(rows, Row{
			Size:            size,
			Seed:            seed,
			Type:            TypePathfinding,
			Algorithm:       s.Name(),
			PathLength:      len(res.Path),
			Visited:         Count(len(res.Visited)),
			TotalIterations: NA,
			InnerIterations: NA,
			OuterIterations: NA,
			MaxFrontierSize: Count(res.MaxFrontierSize),
			RunTime:         res.RunTime,
			MemoryBytes:     res.PeakMemoryBytes,
			Converged:       true,
		})
	}
	return rows, nil
}

func runMDP(ctx context.Context, cfg Config, g *grid.Grid, size int, seed int64, log *slog.Logger) ([]Row, error) {
	opts := cfg.mdpOptions(ctx, log)
	solvers := []mdp.Solver{mdp.NewValueIteration(opts...), mdp.NewPolicyIteration(opts...)}
	rows := make([]Row, 0, len(solvers))
	for _, s := range solvers {
		m, err := mdp.NewModel(g)
		if err != nil {
			return nil, err
		}
		m.InitStates(cfg.InitialValue, cfg.GoalReward, seed)

		res, err := s.Solve(m)
		switch {
		case errors.Is(err, mdp.ErrNotConverged):
			log.Warn("mdp solver did not converge", slog.String("solver", s.Name()), slog.Int("size", size), slog.Int64("seed", seed))
		case err != nil:
			return nil, fmt.Errorf("%s: %w", s.Name(), err)
		}

		row := Row{
			Size:            size,
			Seed:            seed,
			Type:            TypeMDP,
			Algorithm:       s.Name(),
			PathLength:      len(res.Path),
			Visited:         NA,
			TotalIterations: Count(res.Iterations),
			InnerIterations: NA,
			OuterIterations: NA,
			MaxFrontierSize: NA,
			RunTime:         res.RunTime,
			MemoryBytes:     res.PeakMemoryBytes,
			Converged:       res.Converged,
		}
		if _, ok := s.(*mdp.PolicyIteration); ok {
			row.InnerIterations = Count(res.EvalIterations)
			row.OuterIterations = Count(res.ImproveIterations)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
