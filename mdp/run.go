package mdp

import (
	"log/slog"

	"github.com/katalvlaran/mazebench/internal/runstats"
)

// run holds the bookkeeping shared by both solvers for one Solve call.
type run struct {
	m     *Model
	opts  Options
	meter *runstats.Meter
	res   Result
}

func newRun(m *Model, opts Options) (*run, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	if opts.err != nil {
		return nil, opts.err
	}
	return &run{m: m, opts: opts, meter: runstats.Start()}, nil
}

// snapshot appends a Snapshot when enabled.
func (r *run) snapshot(delta float64, phase Phase) {
	r.res.Delta = delta
	if !r.opts.Snapshots {
		return
	}
	r.res.Snapshots = append(r.res.Snapshots,
		r.m.Snapshot(delta, phase, r.res.EvalIterations, r.res.ImproveIterations))
}

// cancelled reports a context error, if any.
func (r *run) cancelled() error {
	select {
	case <-r.opts.Ctx.Done():
		return r.opts.Ctx.Err()
	default:
		return nil
	}
}

// finish stops the meter, derives the policy path and logs a summary.
func (r *run) finish(name string, converged bool) *Result {
	st := r.meter.Stop()
	res := &r.res
	res.Path = r.m.PolicyPath()
	res.Reached = res.Path[len(res.Path)-1] == r.m.g.End()
	res.RunTime = st.Elapsed
	res.PeakMemoryBytes = st.PeakMemoryBytes
	res.Converged = converged

	r.opts.Logger.Debug("mdp run finished",
		slog.String("solver", name),
		slog.Bool("converged", res.Converged),
		slog.Bool("reached", res.Reached),
		slog.Int("iterations", res.Iterations),
		slog.Int("eval_iterations", res.EvalIterations),
		slog.Int("improve_iterations", res.ImproveIterations),
		slog.Float64("delta", res.Delta),
		slog.Int("path_length", len(res.Path)),
		slog.Duration("elapsed", res.RunTime),
		slog.Uint64("memory_bytes", res.PeakMemoryBytes),
	)
	return res
}
