package mazegen_test

import (
	"fmt"

	"github.com/katalvlaran/mazebench/mazegen"
)

// ExampleGenerate builds a 3×4 maze and reports its shape.
func ExampleGenerate() {
	m, err := mazegen.Generate(mazegen.NameBacktracking, 3, 4, 7)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	g, _ := m.Grid()
	rows, cols := g.Dims()
	fmt.Println(rows, cols, g.OpenCount(), g.Connected(g.Start(), g.End()))

	// Output:
	// 7 9 25 true
}
