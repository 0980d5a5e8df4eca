package mazegen

import (
	"math/rand"

	"github.com/katalvlaran/mazebench/grid"
)

// cellOffsets are the four moves between cells, in grid.Directions order.
var cellOffsets = [4]grid.Pos{{Row: -1}, {Col: 1}, {Row: 1}, {Col: -1}}

// carver owns the mask while a generator works in cell coordinates.
type carver struct {
	rows, cols int
	mask       [][]bool
	in         []bool
}

func newCarver(rows, cols int) (*carver, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadDimensions
	}
	mask := make([][]bool, 2*rows+1)
	for r := range mask {
		mask[r] = make([]bool, 2*cols+1)
		for c := range mask[r] {
			mask[r][c] = true
		}
	}
	return &carver{rows: rows, cols: cols, mask: mask, in: make([]bool, rows*cols)}, nil
}

func (k *carver) index(p grid.Pos) int { return p.Row*k.cols + p.Col }

func (k *carver) inBounds(p grid.Pos) bool {
	return p.Row >= 0 && p.Row < k.rows && p.Col >= 0 && p.Col < k.cols
}

func (k *carver) contains(p grid.Pos) bool { return k.in[k.index(p)] }

// add opens cell p without linking it.
func (k *carver) add(p grid.Pos) {
	k.in[k.index(p)] = true
	k.mask[2*p.Row+1][2*p.Col+1] = false
}

// link opens both cells and the wall between adjacent a and b.
func (k *carver) link(a, b grid.Pos) {
	k.add(a)
	k.add(b)
	k.mask[a.Row+b.Row+1][a.Col+b.Col+1] = false
}

// neighbours returns the in-bounds cells adjacent to p, filtered by want.
func (k *carver) neighbours(p grid.Pos, want func(grid.Pos) bool) []grid.Pos {
	out := make([]grid.Pos, 0, 4)
	for _, d := range cellOffsets {
		n := p.Add(d.Row, d.Col)
		if k.inBounds(n) && (want == nil || want(n)) {
			out = append(out, n)
		}
	}
	return out
}

func (k *carver) randomCell(rng *rand.Rand) grid.Pos {
	return grid.Pos{Row: rng.Intn(k.rows), Col: rng.Intn(k.cols)}
}

// finish places the entrances on the top and bottom borders.
func (k *carver) finish(rng *rand.Rand) *Maze {
	return &Maze{
		Mask:  k.mask,
		Start: grid.Pos{Row: 0, Col: 2*rng.Intn(k.cols) + 1},
		End:   grid.Pos{Row: 2 * k.rows, Col: 2*rng.Intn(k.cols) + 1},
	}
}
