package pathfinding_test

import (
	"fmt"

	"github.com/katalvlaran/mazebench/grid"
	"github.com/katalvlaran/mazebench/pathfinding"
)

// ExampleNewBFS finds a shortest path across an open 3×3 grid.
func ExampleNewBFS() {
	g, _ := grid.Parse(
		"S..",
		"...",
		"..E",
	)
	res, err := pathfinding.NewBFS().Solve(g, g.Start())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Path)
	fmt.Println("hops:", res.Hops(), "visited:", len(res.Visited))

	// Output:
	// [(0, 0) (0, 1) (0, 2) (1, 2) (2, 2)]
	// hops: 4 visited: 9
}

// ExampleAll compares every registered solver on a single corridor.
// DFS does not count the goal as visited; BFS and A* mark it on discovery.
func ExampleAll() {
	g, _ := grid.Parse(
		"S.#",
		"#..",
		"##E",
	)
	for _, s := range pathfinding.All() {
		res, _ := s.Solve(g, g.Start())
		fmt.Printf("%-15s hops=%d visited=%d\n", s.Name(), res.Hops(), len(res.Visited))
	}

	// Output:
	// DFS             hops=4 visited=4
	// BFS             hops=4 visited=5
	// A* (Manhattan)  hops=4 visited=5
	// A* (Euclidean)  hops=4 visited=5
	// A* (Chebyshev)  hops=4 visited=5
}
