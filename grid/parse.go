package grid

import (
	"errors"
	"fmt"
)

// ErrBadText indicates a malformed textual maze.
var ErrBadText = errors.New("grid: malformed maze text")

// ParseMask converts text rows into a wall mask. '#' and '1' are walls;
// '.', ' ', '0', 'S' and 'E' are open. Any other byte is rejected.
func ParseMask(lines []string) ([][]bool, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyMask
	}
	w := len(lines[0])
	mask := make([][]bool, len(lines))
	for r, line := range lines {
		if len(line) != w {
			return nil, ErrNonRectangular
		}
		mask[r] = make([]bool, w)
		for c := 0; c < w; c++ {
			switch line[c] {
			case '#', '1':
				mask[r][c] = true
			case '.', ' ', '0', 'S', 'E':
			default:
				return nil, fmt.Errorf("%w: unexpected %q at (%d, %d)", ErrBadText, line[c], r, c)
			}
		}
	}
	return mask, nil
}

// Parse builds a Grid from text rows that mark the start with 'S' and the
// end with 'E' (see ParseMask for the other symbols).
func Parse(lines ...string) (*Grid, error) {
	mask, err := ParseMask(lines)
	if err != nil {
		return nil, err
	}
	start, end := Pos{-1, -1}, Pos{-1, -1}
	for r, line := range lines {
		for c := 0; c < len(line); c++ {
			switch line[c] {
			case 'S':
				start = Pos{Row: r, Col: c}
			case 'E':
				end = Pos{Row: r, Col: c}
			}
		}
	}
	if start.Row < 0 || end.Row < 0 {
		return nil, fmt.Errorf("%w: missing 'S' or 'E'", ErrBadText)
	}
	return New(mask, start, end)
}
