package pathfinding

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/mazebench/grid"
	"github.com/katalvlaran/mazebench/internal/runstats"
)

// noParent marks a cell without a recorded predecessor.
const noParent = -1

// search holds the mutable state of one run: the insertion-ordered
// visited set, parent pointers and frontier bookkeeping.
type search struct {
	g           *grid.Grid
	goal        grid.Pos
	opts        Options
	meter       *runstats.Meter
	seen        []bool
	parent      []int
	visited     []grid.Pos
	maxFrontier int
}

// newSearch validates inputs and starts the meter.
func newSearch(g *grid.Grid, start grid.Pos, opts Options) (*search, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.IsOpen(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartNotOpen, start)
	}
	meter := runstats.Start()
	n := g.Size()
	parent := make([]int, n)
	for i := range parent {
		parent[i] = noParent
	}

	return &search{
		g:       g,
		goal:    g.End(),
		opts:    opts,
		meter:   meter,
		seen:    make([]bool, n),
		parent:  parent,
		visited: make([]grid.Pos, 0, g.OpenCount()),
	}, nil
}

func (s *search) isSeen(p grid.Pos) bool { return s.seen[s.g.Index(p)] }

// mark appends p to the visited sequence.
func (s *search) mark(p grid.Pos) {
	s.seen[s.g.Index(p)] = true
	s.visited = append(s.visited, p)
	s.opts.OnVisit(p)
}

func (s *search) setParent(child, parent grid.Pos) {
	s.parent[s.g.Index(child)] = s.g.Index(parent)
}

// observe records the current frontier size.
func (s *search) observe(size int) {
	if size > s.maxFrontier {
		s.maxFrontier = size
	}
}

// cancelled reports a context error, if any.
func (s *search) cancelled() error {
	select {
	case <-s.opts.Ctx.Done():
		return s.opts.Ctx.Err()
	default:
		return nil
	}
}

// pathTo follows parent pointers from p back to a root and returns the
// chain in root → p order.
func (s *search) pathTo(p grid.Pos) []grid.Pos {
	var rev []grid.Pos
	for i := s.g.Index(p); i != noParent; i = s.parent[i] {
		rev = append(rev, s.g.At(i))
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}

// finish stops the meter, logs a summary and builds the Result.
func (s *search) finish(name string, path []grid.Pos) *Result {
	st := s.meter.Stop()
	if path == nil {
		path = []grid.Pos{}
	}
	res := &Result{
		Visited:         s.visited,
		Path:            path,
		RunTime:         st.Elapsed,
		PeakMemoryBytes: st.PeakMemoryBytes,
		MaxFrontierSize: s.maxFrontier,
	}
	s.opts.Logger.Debug("pathfinding run finished",
		slog.String("solver", name),
		slog.Bool("found", res.Found()),
		slog.Int("visited", len(res.Visited)),
		slog.Int("path_length", len(res.Path)),
		slog.Int("max_frontier", res.MaxFrontierSize),
		slog.Duration("elapsed", res.RunTime),
		slog.Uint64("memory_bytes", res.PeakMemoryBytes),
	)
	return res
}
