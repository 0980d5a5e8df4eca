package mdp_test

import (
	"fmt"

	"github.com/katalvlaran/mazebench/grid"
	"github.com/katalvlaran/mazebench/mdp"
)

// ExampleValueIteration solves a one-row corridor; every cell learns to
// move East toward the goal.
func ExampleValueIteration() {
	g, _ := grid.Parse("S...E")
	m, _ := mdp.NewModel(g)
	m.InitStates(0, 10, 1)

	res, err := mdp.NewValueIteration(mdp.WithSnapshots(false)).Solve(m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	var policy []grid.Direction
	for c := 0; c < 4; c++ {
		policy = append(policy, m.Policy(grid.Pos{Row: 0, Col: c}))
	}
	fmt.Println(policy)
	fmt.Println(res.Converged, res.Reached, res.Path)

	// Output:
	// [E E E E]
	// true true [(0, 0) (0, 1) (0, 2) (0, 3) (0, 4)]
}

// ExampleModel_ValueByAction shows the noise split at a corridor cell.
func ExampleModel_ValueByAction() {
	g, _ := grid.Parse("S...E")
	m, _ := mdp.NewModel(g)
	_ = m.SetValue(grid.Pos{Row: 0, Col: 1}, 1)
	_ = m.SetValue(grid.Pos{Row: 0, Col: 3}, 3)

	q := m.ValueByAction(grid.Pos{Row: 0, Col: 2}, 0.2)
	fmt.Printf("E=%.1f W=%.1f\n", q[grid.East], q[grid.West])

	// Output:
	// E=2.6 W=1.4
}
