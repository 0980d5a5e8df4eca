package mdp

import (
	"fmt"
	"math"
)

// PolicyIteration alternates policy evaluation and policy improvement
// until an improvement pass leaves every policy unchanged.
//
// Improvement points each cell at its open neighbour with the greatest raw
// value, not the greatest noise-weighted action value as in textbook
// policy iteration.
type PolicyIteration struct {
	opts Options
}

// NewPolicyIteration returns a Policy Iteration solver. Invalid options are
// reported by Solve.
func NewPolicyIteration(opts ...Option) *PolicyIteration {
	return &PolicyIteration{opts: buildOptions(opts)}
}

// Name implements Solver.
func (*PolicyIteration) Name() string { return "Policy Iteration" }

// Solve runs evaluate/improve rounds. MaxIterations bounds both the
// evaluation sweeps of a single round and the number of rounds.
//
// Complexity: O((E + I)·H×W) for E evaluation sweeps and I passes.
func (p *PolicyIteration) Solve(m *Model) (*Result, error) {
	r, err := newRun(m, p.opts)
	if err != nil {
		return nil, err
	}

	for {
		if r.res.ImproveIterations >= p.opts.MaxIterations {
			return p.notConverged(r, "improvement passes")
		}

		// evaluation
		for sweeps := 0; ; sweeps++ {
			if err := r.cancelled(); err != nil {
				return p.finish(r, false), err
			}
			if sweeps >= p.opts.MaxIterations {
				return p.notConverged(r, "evaluation sweeps")
			}
			delta := p.evaluate(m)
			r.res.EvalIterations++
			r.snapshot(delta, PhaseEval)
			if delta < p.opts.Theta {
				break
			}
		}

		// improvement
		stable := p.improve(m)
		r.res.ImproveIterations++
		r.snapshot(0, PhaseImprove)
		if stable {
			return p.finish(r, true), nil
		}
	}
}

func (p *PolicyIteration) finish(r *run, converged bool) *Result {
	r.res.Iterations = r.res.EvalIterations + r.res.ImproveIterations
	return r.finish(p.Name(), converged)
}

func (p *PolicyIteration) notConverged(r *run, what string) (*Result, error) {
	res := p.finish(r, false)
	return res, fmt.Errorf("%w: %d %s", ErrNotConverged, p.opts.MaxIterations, what)
}

// evaluate performs one in-place sweep of the current policy's expected
// value and returns the max |Δv|.
func (p *PolicyIteration) evaluate(m *Model) float64 {
	var delta float64
	for _, i := range m.states {
		d := m.policies[i]
		if d < 0 {
			continue
		}
		q := m.actionValues(i, p.opts.Noise)
		nv := p.opts.LivingReward + p.opts.Discount*q[d]
		delta = math.Max(delta, math.Abs(nv-m.values[i]))
		m.values[i] = nv
	}
	return delta
}

// improve points every cell at its highest-valued open neighbour, ties to
// the earliest of N, E, S, W. It reports whether no policy changed.
func (p *PolicyIteration) improve(m *Model) bool {
	stable := true
	for _, i := range m.states {
		steps := m.steps[i]
		if len(steps) == 0 {
			continue
		}
		best := steps[0]
		for _, st := range steps[1:] {
			if m.values[m.g.Index(st.Pos)] > m.values[m.g.Index(best.Pos)] {
				best = st
			}
		}
		if m.policies[i] != best.Dir {
			stable = false
			m.policies[i] = best.Dir
		}
	}
	return stable
}
