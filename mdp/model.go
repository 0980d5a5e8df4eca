package mdp

import (
	"fmt"

	"github.com/katalvlaran/mazebench/grid"
)

// Model is a grid MDP: the immutable Grid plus a value and a policy per
// cell. Walls keep value 0 and policy grid.DirNone. The goal is absorbing;
// solvers never update it.
//
// A Model is not safe for concurrent use. Clone it for parallel runs.
type Model struct {
	g *grid.Grid

	// steps[i] lists the open moves from cell i in N, E, S, W order.
	// Derived from g and shared by clones and snapshots.
	steps [][]grid.Step

	// states lists the dense indices of non-goal open cells, row-major.
	states []int

	values   []float64
	policies []grid.Direction
}

// NewModel wraps g with zero values and no policies. Call InitStates
// before solving.
//
// Complexity: O(H×W).
func NewModel(g *grid.Grid) (*Model, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	n := g.Size()
	m := &Model{
		g:        g,
		steps:    make([][]grid.Step, n),
		states:   make([]int, 0, g.OpenCount()),
		values:   make([]float64, n),
		policies: make([]grid.Direction, n),
	}
	goal := g.Index(g.End())
	for _, p := range g.OpenCells() {
		i := g.Index(p)
		m.steps[i] = g.Neighbors(p)
		if i != goal {
			m.states = append(m.states, i)
		}
	}
	for i := range m.policies {
		m.policies[i] = grid.DirNone
	}

	return m, nil
}

// Grid returns the underlying grid.
func (m *Model) Grid() *grid.Grid { return m.g }

// InitStates resets the model: the goal gets goalReward, every other open
// cell gets initialValue and a policy drawn uniformly from its open
// directions. A cell without open directions keeps grid.DirNone.
// seed == 0 selects a fixed default seed.
//
// Complexity: O(H×W).
func (m *Model) InitStates(initialValue, goalReward float64, seed int64) {
	rng := rngFromSeed(seed)
	for i := range m.values {
		m.values[i] = 0
		m.policies[i] = grid.DirNone
	}
	m.values[m.g.Index(m.g.End())] = goalReward
	for _, i := range m.states {
		m.values[i] = initialValue
		if steps := m.steps[i]; len(steps) > 0 {
			m.policies[i] = steps[rng.Intn(len(steps))].Dir
		}
	}
}

// Value returns the value of p, or 0 outside the grid.
func (m *Model) Value(p grid.Pos) float64 {
	if !m.g.InBounds(p) {
		return 0
	}
	return m.values[m.g.Index(p)]
}

// SetValue overwrites the value of an open cell.
func (m *Model) SetValue(p grid.Pos, v float64) error {
	if !m.g.IsOpen(p) {
		return fmt.Errorf("%w: %v", ErrNotOpen, p)
	}
	m.values[m.g.Index(p)] = v
	return nil
}

// Policy returns the policy of p, or grid.DirNone if unset or off-grid.
func (m *Model) Policy(p grid.Pos) grid.Direction {
	if !m.g.InBounds(p) {
		return grid.DirNone
	}
	return m.policies[m.g.Index(p)]
}

// SetPolicy sets the policy of an open cell. d must be one of the cell's
// open directions, or grid.DirNone to clear it.
func (m *Model) SetPolicy(p grid.Pos, d grid.Direction) error {
	if !m.g.IsOpen(p) {
		return fmt.Errorf("%w: %v", ErrNotOpen, p)
	}
	i := m.g.Index(p)
	if d == grid.DirNone {
		m.policies[i] = d
		return nil
	}
	for _, st := range m.steps[i] {
		if st.Dir == d {
			m.policies[i] = d
			return nil
		}
	}
	return fmt.Errorf("%w: %v at %v", ErrInvalidPolicy, d, p)
}

// ValueByAction returns, for every open direction D at p, the expected
// value of attempting D: the D-neighbour with probability 1−noise and each
// of the other k−1 open neighbours with noise/(k−1). With k == 1 the single
// neighbour gets probability 1. Walls and isolated cells give an empty map.
//
// Complexity: O(k²), k ≤ 4.
func (m *Model) ValueByAction(p grid.Pos, noise float64) map[grid.Direction]float64 {
	if !m.g.IsOpen(p) {
		return map[grid.Direction]float64{}
	}
	i := m.g.Index(p)
	q := m.actionValues(i, noise)
	out := make(map[grid.Direction]float64, len(m.steps[i]))
	for _, st := range m.steps[i] {
		out[st.Dir] = q[st.Dir]
	}
	return out
}

// actionValues is ValueByAction over a fixed array indexed by Direction.
// Entries for closed directions are left at 0.
func (m *Model) actionValues(i int, noise float64) (q [4]float64) {
	steps := m.steps[i]
	k := len(steps)
	switch k {
	case 0:
		return q
	case 1:
		q[steps[0].Dir] = m.values[m.g.Index(steps[0].Pos)]
		return q
	}

	var nv [4]float64
	for j, st := range steps {
		nv[j] = m.values[m.g.Index(st.Pos)]
	}
	side := noise / float64(k-1)
	for a, intended := range steps {
		var ev float64
		for j := range steps {
			if j == a {
				ev += (1 - noise) * nv[j]
			} else {
				ev += side * nv[j]
			}
		}
		q[intended.Dir] = ev
	}
	return q
}

// Clone returns an independent copy of values and policies over the same
// grid.
func (m *Model) Clone() *Model {
	c := *m
	c.values = append([]float64(nil), m.values...)
	c.policies = append([]grid.Direction(nil), m.policies...)
	return &c
}

// PolicyPath follows policy pointers from the start. It stops at the goal,
// at a cell without a policy, or just before revisiting a cell, so a
// cyclic policy yields a partial path. The start is always included.
//
// Complexity: O(H×W).
func (m *Model) PolicyPath() []grid.Pos {
	return followPolicy(m.g, m.policies)
}

func followPolicy(g *grid.Grid, policies []grid.Direction) []grid.Pos {
	start, end := g.Start(), g.End()
	seen := make([]bool, g.Size())
	path := []grid.Pos{start}
	seen[g.Index(start)] = true
	for cur := start; cur != end; {
		d := policies[g.Index(cur)]
		if d == grid.DirNone {
			break
		}
		next, err := g.Neighbor(cur, d)
		if err != nil {
			break
		}
		if seen[g.Index(next)] {
			break
		}
		seen[g.Index(next)] = true
		path = append(path, next)
		cur = next
	}
	return path
}

// Snapshot captures the current values and policies.
func (m *Model) Snapshot(delta float64, phase Phase, evalIters, improveIters int) Snapshot {
	return Snapshot{
		Grid:              m.g,
		Values:            append([]float64(nil), m.values...),
		Policies:          append([]grid.Direction(nil), m.policies...),
		Delta:             delta,
		Phase:             phase,
		EvalIterations:    evalIters,
		ImproveIterations: improveIters,
	}
}

// Snapshot is a frozen copy of a Model's values and policies after one
// sweep or pass. Grid is shared, not copied.
type Snapshot struct {
	Grid     *grid.Grid
	Values   []float64
	Policies []grid.Direction

	Delta             float64
	Phase             Phase
	EvalIterations    int
	ImproveIterations int
}

// Value returns the captured value of p, or 0 outside the grid.
func (s Snapshot) Value(p grid.Pos) float64 {
	if !s.Grid.InBounds(p) {
		return 0
	}
	return s.Values[s.Grid.Index(p)]
}

// Policy returns the captured policy of p.
func (s Snapshot) Policy(p grid.Pos) grid.Direction {
	if !s.Grid.InBounds(p) {
		return grid.DirNone
	}
	return s.Policies[s.Grid.Index(p)]
}

// PolicyPath follows the captured policy from the start; see Model.PolicyPath.
func (s Snapshot) PolicyPath() []grid.Pos {
	return followPolicy(s.Grid, s.Policies)
}
