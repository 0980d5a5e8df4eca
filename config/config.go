package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"

	"github.com/katalvlaran/mazebench/evaluation"
	"github.com/katalvlaran/mazebench/mazegen"
	"github.com/katalvlaran/mazebench/mdp"
)

// ErrInvalidConfig is returned when a loaded or overridden value is out of
// range or cannot be parsed.
var ErrInvalidConfig = errors.New("config: invalid config")

// Config is the mazebench configuration file.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Maze    MazeConfig    `yaml:"maze"`
	MDP     MDPConfig     `yaml:"mdp"`
	Eval    EvalConfig    `yaml:"eval"`
}

// LoggingConfig selects the slog handler.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// MazeConfig describes the maze used by the single-run commands. Rows and
// Cols count cells; the grid is (2·Rows+1)×(2·Cols+1).
type MazeConfig struct {
	Rows      int    `yaml:"rows"`
	Cols      int    `yaml:"cols"`
	Generator string `yaml:"generator"`
	Seed      int64  `yaml:"seed"`
}

// MDPConfig holds the solver parameters shared by the mdp and eval
// commands.
type MDPConfig struct {
	Discount      float64 `yaml:"discount"`
	LivingReward  float64 `yaml:"living_reward"`
	Noise         float64 `yaml:"noise"`
	Theta         float64 `yaml:"theta"`
	MaxIterations int     `yaml:"max_iterations"`
	InitialValue  float64 `yaml:"initial_value"`
	GoalReward    float64 `yaml:"goal_reward"`
}

// EvalConfig drives the benchmark. Generator and MDP parameters come from
// the maze and mdp sections.
type EvalConfig struct {
	Sizes       []int   `yaml:"sizes"`
	Seeds       []int64 `yaml:"seeds"`
	Pathfinding bool    `yaml:"pathfinding"`
	MDP         bool    `yaml:"mdp"`
	OutDir      string  `yaml:"out_dir"`
}

// Default returns the command-line defaults: a 10×10 backtracking maze,
// γ=0.9, living reward −0.01, noise 0.2, θ=1e-4, goal reward 10, info
// level text logs.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info", Format: "text"},
		Maze: MazeConfig{
			Rows:      10,
			Cols:      10,
			Generator: mazegen.DefaultGenerator,
		},
		MDP: MDPConfig{
			Discount:      mdp.DefaultDiscount,
			LivingReward:  mdp.DefaultLivingReward,
			Noise:         mdp.DefaultNoise,
			Theta:         mdp.DefaultTheta,
			MaxIterations: mdp.DefaultMaxIterations,
			InitialValue:  0,
			GoalReward:    10,
		},
		Eval: EvalConfig{
			Sizes:       []int{10},
			Seeds:       []int64{0},
			Pathfinding: true,
			MDP:         true,
			OutDir:      ".",
		},
	}
}

// Validate reports the first out-of-range value.
func (c *Config) Validate() error {
	if _, err := parseLevel(c.Logging.Level); err != nil {
		return err
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: logging.format %q (want text or json)", ErrInvalidConfig, c.Logging.Format)
	}

	if c.Maze.Rows <= 0 || c.Maze.Cols <= 0 {
		return fmt.Errorf("%w: maze %dx%d must be positive", ErrInvalidConfig, c.Maze.Rows, c.Maze.Cols)
	}
	if _, err := mazegen.ByName(c.Maze.Generator); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	m := c.MDP
	if !unit(m.Discount) || m.Discount == 1 {
		return fmt.Errorf("%w: mdp.discount %v not in [0,1)", ErrInvalidConfig, m.Discount)
	}
	if !unit(m.Noise) {
		return fmt.Errorf("%w: mdp.noise %v not in [0,1]", ErrInvalidConfig, m.Noise)
	}
	if !(m.Theta > 0) || math.IsInf(m.Theta, 1) {
		return fmt.Errorf("%w: mdp.theta %v must be positive", ErrInvalidConfig, m.Theta)
	}
	if m.MaxIterations <= 0 {
		return fmt.Errorf("%w: mdp.max_iterations %d must be positive", ErrInvalidConfig, m.MaxIterations)
	}
	for name, v := range map[string]float64{
		"living_reward": m.LivingReward,
		"initial_value": m.InitialValue,
		"goal_reward":   m.GoalReward,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: mdp.%s %v is not finite", ErrInvalidConfig, name, v)
		}
	}

	if len(c.Eval.Sizes) == 0 {
		return fmt.Errorf("%w: eval.sizes is empty", ErrInvalidConfig)
	}
	for _, s := range c.Eval.Sizes {
		if s <= 0 {
			return fmt.Errorf("%w: eval size %d must be positive", ErrInvalidConfig, s)
		}
	}
	return nil
}

func unit(x float64) bool { return x >= 0 && x <= 1 }

// Evaluation converts the eval, maze and mdp sections to an
// evaluation.Config.
func (c *Config) Evaluation() evaluation.Config {
	return evaluation.Config{
		Sizes:         append([]int(nil), c.Eval.Sizes...),
		Seeds:         append([]int64(nil), c.Eval.Seeds...),
		Generator:     c.Maze.Generator,
		Discount:      c.MDP.Discount,
		LivingReward:  c.MDP.LivingReward,
		Noise:         c.MDP.Noise,
		Theta:         c.MDP.Theta,
		MaxIterations: c.MDP.MaxIterations,
		InitialValue:  c.MDP.InitialValue,
		GoalReward:    c.MDP.GoalReward,
		Pathfinding:   c.Eval.Pathfinding,
		MDP:           c.Eval.MDP,
	}
}

// SolverOptions returns the mdp options for the configured parameters.
func (c *Config) SolverOptions(ctx context.Context, log *slog.Logger) []mdp.Option {
	return []mdp.Option{
		mdp.WithContext(ctx),
		mdp.WithLogger(log),
		mdp.WithDiscount(c.MDP.Discount),
		mdp.WithLivingReward(c.MDP.LivingReward),
		mdp.WithNoise(c.MDP.Noise),
		mdp.WithTheta(c.MDP.Theta),
		mdp.WithMaxIterations(c.MDP.MaxIterations),
	}
}

// NewLogger builds a slog logger writing to w in the configured format
// and level.
func (l LoggingConfig) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := parseLevel(l.Level)
	if err != nil {
		return nil, err
	}
	ho := &slog.HandlerOptions{Level: level}
	switch l.Format {
	case "json":
		return slog.New(slog.NewJSONHandler(w, ho)), nil
	case "text", "":
		return slog.New(slog.NewTextHandler(w, ho)), nil
	default:
		return nil, fmt.Errorf("%w: logging.format %q (want text or json)", ErrInvalidConfig, l.Format)
	}
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("%w: logging.level %q", ErrInvalidConfig, s)
	}
	return level, nil
}
