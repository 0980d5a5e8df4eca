package mdp

import (
	"fmt"
	"math"
)

// ValueIteration repeats in-place Bellman sweeps over all non-goal open
// cells until the largest per-cell change in a sweep drops below Theta.
type ValueIteration struct {
	opts Options
}

// NewValueIteration returns a Value Iteration solver. Invalid options are
// reported by Solve.
func NewValueIteration(opts ...Option) *ValueIteration {
	return &ValueIteration{opts: buildOptions(opts)}
}

// Name implements Solver.
func (*ValueIteration) Name() string { return "Value Iteration" }

// Solve runs sweeps until convergence, cancellation or MaxIterations.
// Each sweep sets value = LivingReward + Discount·max_D Q(cell, D) and the
// policy to the maximizing D; ties keep the earliest of N, E, S, W.
//
// Complexity: O(S·H·W) for S sweeps.
func (v *ValueIteration) Solve(m *Model) (*Result, error) {
	r, err := newRun(m, v.opts)
	if err != nil {
		return nil, err
	}

	for {
		if err := r.cancelled(); err != nil {
			return r.finish(v.Name(), false), err
		}
		if r.res.Iterations >= v.opts.MaxIterations {
			res := r.finish(v.Name(), false)
			return res, fmt.Errorf("%w: %d sweeps, delta %g", ErrNotConverged, res.Iterations, res.Delta)
		}

		delta := v.sweep(m)
		r.res.Iterations++
		r.snapshot(delta, PhaseSweep)

		if delta < v.opts.Theta {
			return r.finish(v.Name(), true), nil
		}
	}
}

// sweep performs one Gauss-Seidel pass and returns the max |Δv|.
func (v *ValueIteration) sweep(m *Model) float64 {
	var delta float64
	for _, i := range m.states {
		steps := m.steps[i]
		if len(steps) == 0 {
			continue
		}
		q := m.actionValues(i, v.opts.Noise)

		best := steps[0].Dir
		for _, st := range steps[1:] {
			if q[st.Dir] > q[best] {
				best = st.Dir
			}
		}

		nv := v.opts.LivingReward + v.opts.Discount*q[best]
		delta = math.Max(delta, math.Abs(nv-m.values[i]))
		m.values[i] = nv
		m.policies[i] = best
	}
	return delta
}
