package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/katalvlaran/mazebench/grid"
	"github.com/katalvlaran/mazebench/mdp"
)

// Cell glyphs.
const (
	GlyphWall    = '#'
	GlyphOpen    = ' '
	GlyphVisited = '.'
	GlyphPath    = '*'
	GlyphStart   = 'S'
	GlyphEnd     = 'E'
)

// arrows maps a policy direction to its glyph, in grid.Directions order.
var arrows = [4]rune{'^', '>', 'v', '<'}

// Options controls rendering.
type Options struct {
	// Color enables ANSI colors.
	Color bool
	// Precision is the number of decimals printed by Values.
	Precision int
}

// Option configures rendering.
type Option func(*Options)

// DefaultOptions enables color and two decimals.
func DefaultOptions() Options {
	return Options{Color: true, Precision: 2}
}

// WithColor toggles ANSI colors.
func WithColor(on bool) Option {
	return func(o *Options) { o.Color = on }
}

// WithPrecision sets the decimals printed by Values. Negative values are
// ignored.
func WithPrecision(n int) Option {
	return func(o *Options) {
		if n >= 0 {
			o.Precision = n
		}
	}
}

type painter struct {
	au   aurora.Aurora
	opts Options
	b    strings.Builder
}

func newPainter(opts []Option) *painter {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &painter{au: aurora.NewAurora(o.Color), opts: o}
}

func (p *painter) put(v interface{}) { fmt.Fprint(&p.b, v) }

func (p *painter) flush(w io.Writer) error {
	_, err := io.WriteString(w, p.b.String())
	return err
}

func set(g *grid.Grid, cells []grid.Pos) []bool {
	out := make([]bool, g.Size())
	for _, c := range cells {
		if g.InBounds(c) {
			out[g.Index(c)] = true
		}
	}
	return out
}

// Path draws g with the cells of visited and path marked. Path marks take
// precedence over visited marks; start and end are always labelled.
func Path(w io.Writer, g *grid.Grid, visited, path []grid.Pos, opts ...Option) error {
	p := newPainter(opts)
	seen, onPath := set(g, visited), set(g, path)
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			pos := grid.Pos{Row: r, Col: c}
			i := g.Index(pos)
			switch {
			case pos == g.Start():
				p.put(p.au.Yellow(string(GlyphStart)).Bold())
			case pos == g.End():
				p.put(p.au.Yellow(string(GlyphEnd)).Bold())
			case !g.IsOpen(pos):
				p.put(p.au.White(string(GlyphWall)))
			case onPath[i]:
				p.put(p.au.Green(string(GlyphPath)))
			case seen[i]:
				p.put(p.au.Blue(string(GlyphVisited)))
			default:
				p.put(string(GlyphOpen))
			}
		}
		p.put("\n")
	}
	return p.flush(w)
}

// Policy draws an arrow per open cell of the snapshot. Cells on path are
// highlighted; a cell without a policy shows GlyphOpen.
func Policy(w io.Writer, s mdp.Snapshot, path []grid.Pos, opts ...Option) error {
	p := newPainter(opts)
	g := s.Grid
	onPath := set(g, path)
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			pos := grid.Pos{Row: r, Col: c}
			if pos == g.End() {
				p.put(p.au.Yellow(string(GlyphEnd)).Bold())
				continue
			}
			if !g.IsOpen(pos) {
				p.put(p.au.White(string(GlyphWall)))
				continue
			}
			glyph := string(GlyphOpen)
			if d := s.Policy(pos); d.Valid() {
				glyph = string(arrows[d])
			}
			if onPath[g.Index(pos)] {
				p.put(p.au.Green(glyph))
			} else {
				p.put(p.au.Cyan(glyph))
			}
		}
		p.put("\n")
	}
	return p.flush(w)
}

// Values prints one fixed-width column per cell, separated by '|'.
// Walls are filled with GlyphWall; the goal is highlighted.
func Values(w io.Writer, s mdp.Snapshot, opts ...Option) error {
	p := newPainter(opts)
	g := s.Grid
	width := p.opts.Precision + 5
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			pos := grid.Pos{Row: r, Col: c}
			switch {
			case !g.IsOpen(pos):
				p.put(p.au.White(strings.Repeat(string(GlyphWall), width)))
			case pos == g.End():
				p.put(p.au.Green(fmt.Sprintf("%*.*f", width, p.opts.Precision, s.Value(pos))))
			default:
				p.put(p.au.Blue(fmt.Sprintf("%*.*f", width, p.opts.Precision, s.Value(pos))))
			}
			p.put("|")
		}
		p.put("\n")
	}
	return p.flush(w)
}
