package pathfinding

import (
	"math"

	"github.com/katalvlaran/mazebench/grid"
)

// Heuristic estimates the remaining cost from a to b. It must be
// non-negative; admissible heuristics keep A* paths minimal on this grid.
type Heuristic func(a, b grid.Pos) float64

// Manhattan is |Δrow| + |Δcol|, exact on an open 4-connected grid.
func Manhattan(a, b grid.Pos) float64 {
	return math.Abs(float64(a.Row-b.Row)) + math.Abs(float64(a.Col-b.Col))
}

// Euclidean is the straight-line distance.
func Euclidean(a, b grid.Pos) float64 {
	return math.Hypot(float64(a.Row-b.Row), float64(a.Col-b.Col))
}

// Chebyshev is max(|Δrow|, |Δcol|).
func Chebyshev(a, b grid.Pos) float64 {
	return math.Max(math.Abs(float64(a.Row-b.Row)), math.Abs(float64(a.Col-b.Col)))
}
