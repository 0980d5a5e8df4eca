package pathfinding

import "github.com/katalvlaran/mazebench/grid"

// DFS is depth-first search with an explicit LIFO stack.
type DFS struct {
	opts Options
}

// NewDFS returns a depth-first solver.
func NewDFS(opts ...Option) *DFS {
	return &DFS{opts: buildOptions(opts)}
}

// Name implements Solver.
func (*DFS) Name() string { return "DFS" }

// Solve pops the top of the stack; the goal ends the search, an already
// visited cell is discarded, anything else is marked visited and its
// unvisited neighbours are pushed with the current cell as parent.
// Neighbours are pushed in N, E, S, W order, so West is explored first.
func (d *DFS) Solve(g *grid.Grid, start grid.Pos) (*Result, error) {
	s, err := newSearch(g, start, d.opts)
	if err != nil {
		return nil, err
	}

	stack := []grid.Pos{start}
	s.observe(len(stack))

	for len(stack) > 0 {
		if err := s.cancelled(); err != nil {
			return s.finish(d.Name(), nil), err
		}

		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if curr == s.goal {
			return s.finish(d.Name(), s.pathTo(curr)), nil
		}
		if s.isSeen(curr) {
			continue
		}
		s.mark(curr)

		for _, st := range g.Neighbors(curr) {
			if !s.isSeen(st.Pos) {
				stack = append(stack, st.Pos)
				s.setParent(st.Pos, curr)
			}
		}
		s.observe(len(stack))
	}

	return s.finish(d.Name(), nil), nil
}
