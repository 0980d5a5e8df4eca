// Package mdp models a grid.Grid as a Markov Decision Process and solves it
// with Value Iteration and Policy Iteration.
//
// Model:
//
//   - States are the Open cells. Actions are the open directions of a cell.
//   - The goal is absorbing and holds goalReward; every other state starts
//     at initialValue with a random policy among its open directions
//     (InitStates, seedable).
//   - Transition noise: attempting D reaches the D-neighbour with
//     probability 1−noise and each other open neighbour with
//     noise/(k−1). A cell with one open direction moves there with
//     probability 1.
//
// Solvers mutate the Model in place and return a Result with optional
// per-sweep Snapshots (deep copies of values and policies; the grid is
// shared), the greedy policy path from the start, iteration counters,
// run time and allocated bytes.
//
//   - ValueIteration: value = living + γ·max_D Q(s, D), until the max
//     per-sweep change is below θ. Ties pick the first of N, E, S, W.
//   - PolicyIteration: evaluate the current policy until the change is
//     below θ, then point each cell at its highest-valued neighbour; stop
//     when no policy changes.
//
// Both loops are bounded by MaxIterations. When the guard trips, Solve
// returns the partial Result together with ErrNotConverged.
//
// Options:
//
//   - WithDiscount(γ)        γ ∈ [0, 1), default 0.9.
//   - WithLivingReward(r)    default −0.01.
//   - WithNoise(n)           n ∈ [0, 1], default 0.2.
//   - WithTheta(θ)           θ > 0, default 1e-4.
//   - WithMaxIterations(n)   n > 0, default 10000.
//   - WithSnapshots(bool)    default true.
//   - WithContext, WithLogger.
//
// Errors:
//
//   - ErrNilGrid, ErrNilModel      nil inputs.
//   - ErrNotOpen, ErrInvalidPolicy SetValue/SetPolicy misuse.
//   - ErrOptionViolation           an Option received an invalid value.
//   - ErrNotConverged              the iteration guard tripped.
//   - ErrUnknownSolver             ByName received an unknown name.
package mdp
