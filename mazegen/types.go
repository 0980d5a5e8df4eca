package mazegen

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/mazebench/grid"
)

// Sentinel errors for maze generation.
var (
	// ErrBadDimensions is returned for a non-positive cell count.
	ErrBadDimensions = errors.New("mazegen: rows and cols must be positive")

	// ErrUnknownGenerator is returned by ByName for an unregistered name.
	ErrUnknownGenerator = errors.New("mazegen: unknown generator")
)

// Maze is a generated wall mask with entrances. Mask is (2·rows+1) ×
// (2·cols+1): cells sit at odd coordinates, the walls between them at mixed
// ones. Start lies on the top border and End on the bottom border; both
// are still walls in Mask and are opened by grid.New.
type Maze struct {
	Mask       [][]bool
	Start, End grid.Pos
}

// Grid builds the grid for m.
func (m *Maze) Grid() (*grid.Grid, error) {
	return grid.New(m.Mask, m.Start, m.End)
}

// Generator carves a perfect maze (exactly one path between any two cells)
// of rows × cols cells using rng.
type Generator interface {
	Name() string
	Generate(rows, cols int, rng *rand.Rand) (*Maze, error)
}
