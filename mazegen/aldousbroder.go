package mazegen

import "math/rand"

// AldousBroder random-walks over the whole grid and carves every step that
// enters an unvisited cell. Uniform like Wilson, but slower to finish.
type AldousBroder struct{}

// Name implements Generator.
func (AldousBroder) Name() string { return NameAldousBroder }

// Generate implements Generator.
func (AldousBroder) Generate(rows, cols int, rng *rand.Rand) (*Maze, error) {
	k, err := newCarver(rows, cols)
	if err != nil {
		return nil, err
	}

	cur := k.randomCell(rng)
	k.add(cur)
	for remaining := rows*cols - 1; remaining > 0; {
		nbrs := k.neighbours(cur, nil)
		next := nbrs[rng.Intn(len(nbrs))]
		if !k.contains(next) {
			k.link(cur, next)
			remaining--
		}
		cur = next
	}

	return k.finish(rng), nil
}
