package mazegen

import (
	"math/rand"

	"github.com/katalvlaran/mazebench/grid"
)

// Backtracking is the recursive-backtracker (randomized depth-first)
// generator, run with an explicit stack. It yields long, winding corridors.
type Backtracking struct{}

// Name implements Generator.
func (Backtracking) Name() string { return NameBacktracking }

// Generate implements Generator.
func (Backtracking) Generate(rows, cols int, rng *rand.Rand) (*Maze, error) {
	k, err := newCarver(rows, cols)
	if err != nil {
		return nil, err
	}
	notIn := func(p grid.Pos) bool { return !k.contains(p) }

	start := k.randomCell(rng)
	k.add(start)
	stack := []grid.Pos{start}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		next := k.neighbours(cur, notIn)
		if len(next) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		n := next[rng.Intn(len(next))]
		k.link(cur, n)
		stack = append(stack, n)
	}

	return k.finish(rng), nil
}
