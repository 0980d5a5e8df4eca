package pathfinding

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/katalvlaran/mazebench/grid"
)

// Sentinel errors for pathfinding.
var (
	// ErrNilGrid is returned when a nil grid is passed to Solve.
	ErrNilGrid = errors.New("pathfinding: grid is nil")

	// ErrStartNotOpen is returned when the start is off the grid or a Wall.
	ErrStartNotOpen = errors.New("pathfinding: start is not an open cell")

	// ErrNilHeuristic is returned by A* when no heuristic was supplied.
	ErrNilHeuristic = errors.New("pathfinding: heuristic is nil")

	// ErrUnknownSolver is returned by ByName for an unregistered name.
	ErrUnknownSolver = errors.New("pathfinding: unknown solver")
)

// Solver is a pathfinding strategy. Implementations carry only their own
// configuration and are safe to reuse for sequential runs.
type Solver interface {
	// Name returns a short human-readable label, e.g. "A* (Manhattan)".
	Name() string
	// Solve searches from start toward g.End().
	Solve(g *grid.Grid, start grid.Pos) (*Result, error)
}

// Result is the outcome of one search.
type Result struct {
	Visited         []grid.Pos
	Path            []grid.Pos
	RunTime         time.Duration
	PeakMemoryBytes uint64
	MaxFrontierSize int
}

// Found reports whether a path to the goal was found.
func (r *Result) Found() bool { return len(r.Path) > 0 }

// RunTimeSeconds returns RunTime as fractional seconds.
func (r *Result) RunTimeSeconds() float64 { return r.RunTime.Seconds() }

// Hops returns the number of moves along Path (len-1), or 0 if none.
func (r *Result) Hops() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}

// Option configures a solver via functional arguments.
type Option func(*Options)

// Options holds run-time hooks shared by all strategies.
type Options struct {
	// Ctx allows cancellation; checked once per expansion.
	Ctx context.Context

	// OnVisit is called each time a cell is appended to Result.Visited.
	OnVisit func(p grid.Pos)

	// Logger receives one Debug record per run.
	Logger *slog.Logger
}

// DefaultOptions returns Options with a background context, a no-op visit
// hook and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(grid.Pos) {},
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithContext sets a context for cancellation. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a visitation hook. nil is ignored.
func WithOnVisit(fn func(p grid.Pos)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
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

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
