package grid

import (
	"fmt"
	"strings"
)

// Grid is an immutable rows×cols array of cells plus designated start and
// end positions. Structural connectivity never changes after New returns,
// so a *Grid may be shared by reference between runs and snapshots.
type Grid struct {
	rows, cols int
	cells      []Cell // row-major
	start, end Pos
	open       int
}

// New builds a Grid from a wall mask (true = blocked) and two endpoints.
// The mask is not retained.
// Returns ErrEmptyMask, ErrNonRectangular, ErrOutOfBounds, ErrStartIsEnd
// or ErrBlockedEndpoint.
// Complexity: O(H×W) time and memory.
func New(mask [][]bool, start, end Pos) (*Grid, error) {
	if len(mask) == 0 || len(mask[0]) == 0 {
		return nil, ErrEmptyMask
	}
	h, w := len(mask), len(mask[0])
	for _, row := range mask {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g := &Grid{rows: h, cols: w, start: start, end: end}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: start %v in %dx%d grid", ErrOutOfBounds, start, h, w)
	}
	if !g.InBounds(end) {
		return nil, fmt.Errorf("%w: end %v in %dx%d grid", ErrOutOfBounds, end, h, w)
	}
	if start == end {
		return nil, fmt.Errorf("%w: both at %v", ErrStartIsEnd, start)
	}

	isWall := func(r, c int) bool {
		p := Pos{Row: r, Col: c}
		return mask[r][c] && p != start && p != end
	}

	g.cells = make([]Cell, h*w)
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			cell := Cell{Pos: Pos{Row: r, Col: c}}
			if !isWall(r, c) {
				cell.Kind = Open
				cell.edges[North] = r > 0 && !isWall(r-1, c)
				cell.edges[East] = c < w-1 && !isWall(r, c+1)
				cell.edges[South] = r < h-1 && !isWall(r+1, c)
				cell.edges[West] = c > 0 && !isWall(r, c-1)
				g.open++
			}
			g.cells[r*w+c] = cell
		}
	}

	if !g.IsOpen(start) || !g.IsOpen(end) {
		return nil, ErrBlockedEndpoint
	}

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Dims returns (rows, cols).
func (g *Grid) Dims() (rows, cols int) { return g.rows, g.cols }

// Size returns rows×cols.
func (g *Grid) Size() int { return g.rows * g.cols }

// Start returns the start position.
func (g *Grid) Start() Pos { return g.start }

// End returns the goal position.
func (g *Grid) End() Pos { return g.end }

// OpenCount returns the number of Open cells.
func (g *Grid) OpenCount() int { return g.open }

// InBounds reports whether p lies within the grid.
func (g *Grid) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// Index maps p to its row-major index. p must be in bounds.
func (g *Grid) Index(p Pos) int {
	return p.Row*g.cols + p.Col
}

// At converts a row-major index back to a position.
func (g *Grid) At(idx int) Pos {
	return Pos{Row: idx / g.cols, Col: idx % g.cols}
}

// Cell returns the cell at p, or ErrOutOfBounds.
func (g *Grid) Cell(p Pos) (Cell, error) {
	if !g.InBounds(p) {
		return Cell{}, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	return g.cells[g.Index(p)], nil
}

// IsOpen reports whether p is in bounds and Open.
func (g *Grid) IsOpen(p Pos) bool {
	return g.InBounds(p) && g.cells[g.Index(p)].Kind == Open
}

// Neighbor returns the neighbour of p in direction d.
// Fails with ErrOutOfBounds if p is off the grid and ErrNoNeighbor if p has
// no open edge toward d.
func (g *Grid) Neighbor(p Pos, d Direction) (Pos, error) {
	if !g.InBounds(p) {
		return Pos{}, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	if !g.cells[g.Index(p)].Has(d) {
		return Pos{}, fmt.Errorf("%w: %v toward %v", ErrNoNeighbor, p, d)
	}
	dr, dc := d.Offset()
	return p.Add(dr, dc), nil
}

// Neighbors returns a (direction, neighbour) step for each open edge of p,
// in N, E, S, W order. Wall and out-of-bounds positions have none.
func (g *Grid) Neighbors(p Pos) []Step {
	if !g.InBounds(p) {
		return nil
	}
	cell := g.cells[g.Index(p)]
	steps := make([]Step, 0, 4)
	for _, d := range Directions {
		if cell.edges[d] {
			dr, dc := d.Offset()
			steps = append(steps, Step{Dir: d, Pos: p.Add(dr, dc)})
		}
	}
	return steps
}

// OpenCells lists every Open cell in row-major order.
func (g *Grid) OpenCells() []Pos {
	out := make([]Pos, 0, g.open)
	for i := range g.cells {
		if g.cells[i].Kind == Open {
			out = append(out, g.cells[i].Pos)
		}
	}
	return out
}

// String renders the grid as text: '#' wall, '.' open, 'S' start, 'E' end.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			p := Pos{Row: r, Col: c}
			switch {
			case p == g.start:
				sb.WriteByte('S')
			case p == g.end:
				sb.WriteByte('E')
			case g.cells[g.Index(p)].Kind == Open:
				sb.WriteByte('.')
			default:
				sb.WriteByte('#')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
