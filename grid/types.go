package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and queries.
var (
	// ErrEmptyMask indicates the wall mask has no rows or no columns.
	ErrEmptyMask = errors.New("grid: mask must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all mask rows must have the same length")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
	// ErrStartIsEnd indicates start and end are the same position.
	ErrStartIsEnd = errors.New("grid: start and end must differ")
	// ErrBlockedEndpoint indicates start or end did not resolve to an Open cell.
	ErrBlockedEndpoint = errors.New("grid: start and end must be open cells")
	// ErrNoNeighbor indicates there is no open edge in the requested direction.
	ErrNoNeighbor = errors.New("grid: no open neighbor in direction")
)

// Pos identifies a cell by row and column.
type Pos struct {
	Row, Col int
}

// String formats the position as "(row, col)".
func (p Pos) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// Add returns p shifted by (dr, dc).
func (p Pos) Add(dr, dc int) Pos {
	return Pos{Row: p.Row + dr, Col: p.Col + dc}
}

// Direction is one of the four compass directions, or DirNone.
type Direction int8

const (
	// DirNone marks an unset policy (goal cell, isolated cell).
	DirNone Direction = iota - 1
	// North decreases the row.
	North
	// East increases the column.
	East
	// South increases the row.
	South
	// West decreases the column.
	West
)

// Directions is the fixed enumeration order used for every tie-break.
var Directions = [4]Direction{North, East, South, West}

// offsets is indexed by Direction: {dRow, dCol}.
var offsets = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Valid reports whether d is one of the four compass directions.
func (d Direction) Valid() bool {
	return d >= North && d <= West
}

// Offset returns the {dRow, dCol} step for d. DirNone yields {0, 0}.
func (d Direction) Offset() (dr, dc int) {
	if !d.Valid() {
		return 0, 0
	}
	return offsets[d][0], offsets[d][1]
}

// Opposite returns the reverse direction. DirNone maps to itself.
func (d Direction) Opposite() Direction {
	if !d.Valid() {
		return DirNone
	}
	return (d + 2) % 4
}

// String returns the single-letter name.
func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	default:
		return "-"
	}
}

// Kind tags a cell as Wall or Open.
type Kind uint8

const (
	// Wall cells are impassable and carry no edges.
	Wall Kind = iota
	// Open cells are passable and carry four edge flags.
	Open
)

// String returns "wall" or "open".
func (k Kind) String() string {
	if k == Open {
		return "open"
	}
	return "wall"
}

// Cell is the tagged Wall/Open variant. For Wall cells the edge flags are
// always false.
type Cell struct {
	Pos   Pos
	Kind  Kind
	edges [4]bool
}

// IsOpen reports whether the cell is passable.
func (c Cell) IsOpen() bool { return c.Kind == Open }

// Has reports whether the cell has an open edge toward d.
func (c Cell) Has(d Direction) bool {
	return d.Valid() && c.edges[d]
}

// OpenDirections lists the open edges in N, E, S, W order.
func (c Cell) OpenDirections() []Direction {
	out := make([]Direction, 0, 4)
	for _, d := range Directions {
		if c.edges[d] {
			out = append(out, d)
		}
	}
	return out
}

// Degree is the number of open edges.
func (c Cell) Degree() int {
	n := 0
	for _, ok := range c.edges {
		if ok {
			n++
		}
	}
	return n
}

// Step pairs an open direction with the neighbour it leads to.
type Step struct {
	Dir Direction
	Pos Pos
}
