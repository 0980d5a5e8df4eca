package pathfinding

import "github.com/katalvlaran/mazebench/grid"

// BFS is breadth-first search with a FIFO queue. On a unit-cost grid its
// path is a shortest path.
type BFS struct {
	opts Options
}

// NewBFS returns a breadth-first solver.
func NewBFS(opts ...Option) *BFS {
	return &BFS{opts: buildOptions(opts)}
}

// Name implements Solver.
func (*BFS) Name() string { return "BFS" }

// Solve marks cells visited when they are enqueued, so each cell enters the
// queue at most once, and stops when the goal is dequeued.
func (b *BFS) Solve(g *grid.Grid, start grid.Pos) (*Result, error) {
	s, err := newSearch(g, start, b.opts)
	if err != nil {
		return nil, err
	}

	queue := make([]grid.Pos, 0, g.OpenCount())
	queue = append(queue, start)
	s.mark(start)
	s.observe(1)

	// head indexes the next item; the backing slice is never shifted.
	for head := 0; head < len(queue); {
		if err := s.cancelled(); err != nil {
			return s.finish(b.Name(), nil), err
		}

		curr := queue[head]
		head++

		if curr == s.goal {
			return s.finish(b.Name(), s.pathTo(curr)), nil
		}

		for _, st := range g.Neighbors(curr) {
			if !s.isSeen(st.Pos) {
				s.mark(st.Pos)
				s.setParent(st.Pos, curr)
				queue = append(queue, st.Pos)
			}
		}
		s.observe(len(queue) - head)
	}

	return s.finish(b.Name(), nil), nil
}
