package render_test

import (
	"os"

	"github.com/katalvlaran/mazebench/grid"
	"github.com/katalvlaran/mazebench/pathfinding"
	"github.com/katalvlaran/mazebench/render"
)

// ExamplePath renders a BFS result without colors.
func ExamplePath() {
	g, _ := grid.Parse(
		"S..#",
		".#..",
		"...E",
	)
	res, _ := pathfinding.NewBFS().Solve(g, g.Start())
	_ = render.Path(os.Stdout, g, res.Visited, res.Path, render.WithColor(false))

	// Output:
	// S**#
	// .#**
	// ...E
}
