package pathfinding

import (
	"github.com/katalvlaran/mazebench/frontier"
	"github.com/katalvlaran/mazebench/grid"
)

// AStar is best-first search ordered by f = g + h(cell, goal), where g is
// the unit-hop cost from the start.
//
// Cells are marked visited at first discovery and keep the cost and parent
// they were first reached with. On a perfect maze the path is the unique
// one; on grids with loops it can be longer than the BFS path.
type AStar struct {
	name      string
	heuristic Heuristic
	opts      Options
}

// NewAStar returns an A* solver using h. A nil h makes Solve fail with
// ErrNilHeuristic.
func NewAStar(h Heuristic, opts ...Option) *AStar {
	return &AStar{name: "A*", heuristic: h, opts: buildOptions(opts)}
}

// newNamedAStar is used by the registry to label the heuristic.
func newNamedAStar(name string, h Heuristic, opts ...Option) *AStar {
	a := NewAStar(h, opts...)
	a.name = name
	return a
}

// Name implements Solver.
func (a *AStar) Name() string { return a.name }

// Solve runs the search.
func (a *AStar) Solve(g *grid.Grid, start grid.Pos) (*Result, error) {
	if a.heuristic == nil {
		return nil, ErrNilHeuristic
	}
	s, err := newSearch(g, start, a.opts)
	if err != nil {
		return nil, err
	}

	cost := make([]float64, g.Size())
	pq := frontier.New[grid.Pos](g.OpenCount())

	pq.Push(start, a.heuristic(start, s.goal))
	s.mark(start)
	s.observe(pq.Len())

	for pq.Len() > 0 {
		if err := s.cancelled(); err != nil {
			return s.finish(a.Name(), nil), err
		}

		curr, err := pq.Pop()
		if err != nil {
			return s.finish(a.Name(), nil), err
		}
		if curr == s.goal {
			return s.finish(a.Name(), s.pathTo(curr)), nil
		}

		base := cost[g.Index(curr)]
		for _, st := range g.Neighbors(curr) {
			if s.isSeen(st.Pos) {
				continue
			}
			s.mark(st.Pos)
			gc := base + 1
			cost[g.Index(st.Pos)] = gc
			s.setParent(st.Pos, curr)
			pq.Push(st.Pos, gc+a.heuristic(st.Pos, s.goal))
		}
		s.observe(pq.Len())
	}

	return s.finish(a.Name(), nil), nil
}
