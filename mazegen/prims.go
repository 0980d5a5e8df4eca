package mazegen

import (
	"math/rand"

	"github.com/katalvlaran/mazebench/grid"
)

// Prims is randomized Prim's algorithm: repeatedly pick a random frontier
// cell and join it to a random neighbour already in the maze. It yields
// many short dead ends.
type Prims struct{}

// Name implements Generator.
func (Prims) Name() string { return NamePrims }

// Generate implements Generator.
func (Prims) Generate(rows, cols int, rng *rand.Rand) (*Maze, error) {
	k, err := newCarver(rows, cols)
	if err != nil {
		return nil, err
	}
	queued := make([]bool, rows*cols)
	var frontier []grid.Pos
	expand := func(p grid.Pos) {
		for _, n := range k.neighbours(p, nil) {
			if i := k.index(n); !k.in[i] && !queued[i] {
				queued[i] = true
				frontier = append(frontier, n)
			}
		}
	}

	start := k.randomCell(rng)
	k.add(start)
	expand(start)
	for len(frontier) > 0 {
		i := rng.Intn(len(frontier))
		cur := frontier[i]
		frontier[i] = frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		in := k.neighbours(cur, k.contains)
		k.link(cur, in[rng.Intn(len(in))])
		expand(cur)
	}

	return k.finish(rng), nil
}
