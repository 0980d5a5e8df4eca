package mazegen

import (
	"math/rand"

	"github.com/katalvlaran/mazebench/grid"
)

// Wilson builds a uniform spanning tree with loop-erased random walks:
// from a random cell outside the maze, walk until the maze is hit,
// remembering only the last exit from every cell, then carve the
// remembered route.
type Wilson struct{}

// Name implements Generator.
func (Wilson) Name() string { return NameWilson }

// Generate implements Generator.
func (Wilson) Generate(rows, cols int, rng *rand.Rand) (*Maze, error) {
	k, err := newCarver(rows, cols)
	if err != nil {
		return nil, err
	}

	k.add(k.randomCell(rng))
	remaining := rows*cols - 1
	exit := make(map[grid.Pos]grid.Pos)
	var route []grid.Pos

	for remaining > 0 {
		walkStart := k.randomCell(rng)
		for k.contains(walkStart) {
			walkStart = k.randomCell(rng)
		}

		clear(exit)
		for cur := walkStart; !k.contains(cur); {
			nbrs := k.neighbours(cur, nil)
			next := nbrs[rng.Intn(len(nbrs))]
			exit[cur] = next
			cur = next
		}

		// Collect the loop-erased route before carving: link marks both
		// ends as in the maze.
		route = route[:0]
		for cur := walkStart; !k.contains(cur); cur = exit[cur] {
			route = append(route, cur)
		}
		for _, cur := range route {
			k.link(cur, exit[cur])
		}
		remaining -= len(route)
	}

	return k.finish(rng), nil
}
