package mazegen

import (
	"math/rand"

	"github.com/katalvlaran/mazebench/grid"
)

// BinaryTree links every cell to its North or West neighbour, chosen at
// random where both exist. The top row and left column become straight
// corridors.
type BinaryTree struct{}

// Name implements Generator.
func (BinaryTree) Name() string { return NameBinaryTree }

// Generate implements Generator.
func (BinaryTree) Generate(rows, cols int, rng *rand.Rand) (*Maze, error) {
	k, err := newCarver(rows, cols)
	if err != nil {
		return nil, err
	}

	k.add(grid.Pos{})
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			p := grid.Pos{Row: r, Col: c}
			var options []grid.Pos
			if r > 0 {
				options = append(options, p.Add(-1, 0))
			}
			if c > 0 {
				options = append(options, p.Add(0, -1))
			}
			if len(options) > 0 {
				k.link(p, options[rng.Intn(len(options))])
			}
		}
	}

	return k.finish(rng), nil
}
