package evaluation

import (
	"errors"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/katalvlaran/mazebench/mazegen"
	"github.com/katalvlaran/mazebench/mdp"
)

// Sentinel errors for the benchmark runner.
var (
	// ErrInvalidConfig is returned by Config.Validate and Run.
	ErrInvalidConfig = errors.New("evaluation: invalid config")
)

// Row types.
const (
	TypePathfinding = "pathfinding"
	TypeMDP         = "mdp"
)

// Count is a metric that may not apply to a row; NA prints as an empty
// field.
type Count int

// NA marks a metric that does not apply to the row's algorithm.
const NA Count = -1

// Valid reports whether c holds a measurement.
func (c Count) Valid() bool { return c >= 0 }

// String returns the decimal value, or "" for NA.
func (c Count) String() string {
	if !c.Valid() {
		return ""
	}
	return strconv.Itoa(int(c))
}

// Row is one algorithm run on one maze.
type Row struct {
	Size      int
	Seed      int64
	Type      string
	Algorithm string

	PathLength      int
	Visited         Count
	TotalIterations Count
	InnerIterations Count
	OuterIterations Count
	MaxFrontierSize Count

	RunTime     time.Duration
	MemoryBytes uint64

	// Converged is false for an MDP row whose solver hit the iteration
	// guard. Always true for pathfinding rows.
	Converged bool
}

// RunTimeSeconds returns RunTime as fractional seconds.
func (r Row) RunTimeSeconds() float64 { return r.RunTime.Seconds() }

// Report is the outcome of Run.
type Report struct {
	RunID     string
	Generator string
	Started   time.Time
	Rows      []Row
}

// Config selects the mazes and solver parameters of a benchmark.
//
// Each size s yields an s×s-cell maze per seed. Seeds defaults to {0},
// the generator's fixed default seed. When both Pathfinding and MDP are
// false, both run.
type Config struct {
	Sizes     []int
	Seeds     []int64
	Generator string

	Discount      float64
	LivingReward  float64
	Noise         float64
	Theta         float64
	MaxIterations int
	InitialValue  float64
	GoalReward    float64

	Pathfinding bool
	MDP         bool
}

// DefaultConfig mirrors the command-line defaults: one 10×10 backtracking
// maze, γ=0.9, living reward −0.01, noise 0.2, θ=1e-4, goal reward 10.
func DefaultConfig() Config {
	return Config{
		Sizes:         []int{10},
		Seeds:         []int64{0},
		Generator:     mazegen.DefaultGenerator,
		Discount:      mdp.DefaultDiscount,
		LivingReward:  mdp.DefaultLivingReward,
		Noise:         mdp.DefaultNoise,
		Theta:         mdp.DefaultTheta,
		MaxIterations: mdp.DefaultMaxIterations,
		InitialValue:  0,
		GoalReward:    10,
	}
}

// Option configures Run.
type Option func(*Options)

// Options holds Run hooks.
type Options struct {
	Logger *slog.Logger
	RunID  string
	// OnMaze is called after each maze with its rows.
	OnMaze func(size int, seed int64, rows []Row)
}

// DefaultOptions returns a discarding logger, a random run id and a no-op
// OnMaze hook.
func DefaultOptions() Options {
	return Options{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		OnMaze: func(int, int64, []Row) {},
	}
}

// WithLogger sets the logger. nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRunID fixes the run id instead of drawing a random one.
func WithRunID(id string) Option {
	return func(o *Options) { o.RunID = id }
}

// WithOnMaze registers a per-maze hook. nil is ignored.
func WithOnMaze(fn func(size int, seed int64, rows []Row)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnMaze = fn
		}
	}
}
