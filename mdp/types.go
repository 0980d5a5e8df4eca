package mdp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"time"

	"github.com/katalvlaran/mazebench/grid"
)

// Sentinel errors for the MDP model and solvers.
var (
	// ErrNilGrid is returned by NewModel for a nil grid.
	ErrNilGrid = errors.New("mdp: grid is nil")

	// ErrNilModel is returned when Solve receives a nil model.
	ErrNilModel = errors.New("mdp: model is nil")

	// ErrNotOpen is returned when a position is a Wall or off the grid.
	ErrNotOpen = errors.New("mdp: position is not an open cell")

	// ErrInvalidPolicy is returned by SetPolicy for a direction that does
	// not lead to an open neighbour.
	ErrInvalidPolicy = errors.New("mdp: policy direction is not open")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("mdp: invalid option supplied")

	// ErrNotConverged is returned when the iteration guard trips before
	// the fixed point is reached. The partial Result is returned with it.
	ErrNotConverged = errors.New("mdp: iteration limit reached before convergence")

	// ErrUnknownSolver is returned by ByName for an unregistered name.
	ErrUnknownSolver = errors.New("mdp: unknown solver")
)

// Default solver parameters.
const (
	DefaultDiscount      = 0.9
	DefaultLivingReward  = -0.01
	DefaultNoise         = 0.2
	DefaultTheta         = 1e-4
	DefaultMaxIterations = 10000
)

// Solver is an MDP solution strategy. Solve mutates the model's values
// and policies in place; use Model.Clone to keep the input untouched.
type Solver interface {
	Name() string
	Solve(m *Model) (*Result, error)
}

// Phase tags what produced a Snapshot.
type Phase uint8

const (
	// PhaseSweep is one Value Iteration sweep.
	PhaseSweep Phase = iota
	// PhaseEval is one policy-evaluation sweep.
	PhaseEval
	// PhaseImprove is one policy-improvement pass.
	PhaseImprove
)

// String returns "sweep", "eval" or "improve".
func (p Phase) String() string {
	switch p {
	case PhaseSweep:
		return "sweep"
	case PhaseEval:
		return "eval"
	case PhaseImprove:
		return "improve"
	default:
		return fmt.Sprintf("Phase(%d)", uint8(p))
	}
}

// Result is the outcome of one solver run.
//
// Value Iteration fills Iterations with its sweep count. Policy Iteration
// fills EvalIterations (inner sweeps, all phases) and ImproveIterations
// (outer passes); its Iterations is their sum.
type Result struct {
	Snapshots         []Snapshot
	Path              []grid.Pos
	RunTime           time.Duration
	PeakMemoryBytes   uint64
	Iterations        int
	EvalIterations    int
	ImproveIterations int

	// Delta is the last observed maximum value change.
	Delta float64
	// Converged is false when the run stopped on the iteration guard or
	// on cancellation.
	Converged bool
	// Reached reports whether Path ends at the goal.
	Reached bool
}

// RunTimeSeconds returns RunTime as fractional seconds.
func (r *Result) RunTimeSeconds() float64 { return r.RunTime.Seconds() }

// Option configures a solver via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by Solve.
type Option func(*Options)

// Options holds the solver parameters.
type Options struct {
	// Ctx allows cancellation; checked once per sweep.
	Ctx context.Context

	// Discount γ in [0, 1).
	Discount float64

	// LivingReward is added to every non-goal cell on each update.
	LivingReward float64

	// Noise is the probability mass spread over unintended moves, in [0, 1].
	Noise float64

	// Theta > 0 is the convergence threshold on the per-sweep delta.
	Theta float64

	// MaxIterations bounds every loop (sweeps, evaluation sweeps per
	// phase, improvement passes).
	MaxIterations int

	// Snapshots enables per-sweep snapshots.
	Snapshots bool

	// Logger receives one Debug record per run.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns the defaults: γ=0.9, living reward −0.01,
// noise 0.2, θ=1e-4, 10000 iterations, snapshots on, discarding logger.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Discount:      DefaultDiscount,
		LivingReward:  DefaultLivingReward,
		Noise:         DefaultNoise,
		Theta:         DefaultTheta,
		MaxIterations: DefaultMaxIterations,
		Snapshots:     true,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
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

// WithDiscount sets γ. Values outside [0, 1) are rejected: with γ = 1 the
// values of cells that never reach the goal do not converge.
func WithDiscount(g float64) Option {
	return func(o *Options) {
		if math.IsNaN(g) || g < 0 || g >= 1 {
			o.err = fmt.Errorf("%w: discount must be in [0, 1) (%v)", ErrOptionViolation, g)
			return
		}
		o.Discount = g
	}
}

// WithLivingReward sets the per-step reward. NaN and ±Inf are rejected.
func WithLivingReward(r float64) Option {
	return func(o *Options) {
		if math.IsNaN(r) || math.IsInf(r, 0) {
			o.err = fmt.Errorf("%w: living reward must be finite (%v)", ErrOptionViolation, r)
			return
		}
		o.LivingReward = r
	}
}

// WithNoise sets the action noise. Values outside [0, 1] are rejected.
func WithNoise(n float64) Option {
	return func(o *Options) {
		if math.IsNaN(n) || n < 0 || n > 1 {
			o.err = fmt.Errorf("%w: noise must be in [0, 1] (%v)", ErrOptionViolation, n)
			return
		}
		o.Noise = n
	}
}

// WithTheta sets the convergence threshold; it must be positive.
func WithTheta(t float64) Option {
	return func(o *Options) {
		if math.IsNaN(t) || t <= 0 {
			o.err = fmt.Errorf("%w: theta must be > 0 (%v)", ErrOptionViolation, t)
			return
		}
		o.Theta = t
	}
}

// WithMaxIterations sets the iteration guard; it must be positive.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: max iterations must be > 0 (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithSnapshots toggles per-sweep snapshots. Benchmarks turn them off.
func WithSnapshots(on bool) Option {
	return func(o *Options) {
		o.Snapshots = on
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
