package pathfinding

import (
	"fmt"
	"strings"
)

// Solver names accepted by ByName.
const (
	NameDFS            = "dfs"
	NameBFS            = "bfs"
	NameAStarManhattan = "astar_manhattan"
	NameAStarEuclidean = "astar_euclid"
	NameAStarChebyshev = "astar_chebyshev"
)

// Names lists every registered solver in benchmark order.
func Names() []string {
	return []string{NameDFS, NameBFS, NameAStarManhattan, NameAStarEuclidean, NameAStarChebyshev}
}

// ByName builds the solver registered under name (case-insensitive).
func ByName(name string, opts ...Option) (Solver, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameDFS:
		return NewDFS(opts...), nil
	case NameBFS:
		return NewBFS(opts...), nil
	case NameAStarManhattan:
		return newNamedAStar("A* (Manhattan)", Manhattan, opts...), nil
	case NameAStarEuclidean:
		return newNamedAStar("A* (Euclidean)", Euclidean, opts...), nil
	case NameAStarChebyshev:
		return newNamedAStar("A* (Chebyshev)", Chebyshev, opts...), nil
	default:
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownSolver, name, strings.Join(Names(), ", "))
	}
}

// All returns one solver per registered name.
func All(opts ...Option) []Solver {
	out := make([]Solver, 0, len(Names()))
	for _, n := range Names() {
		s, _ := ByName(n, opts...)
		out = append(out, s)
	}
	return out
}
