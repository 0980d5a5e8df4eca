package pathfinding_test

import (
	"testing"

	"github.com/katalvlaran/mazebench/pathfinding"
)

// BenchmarkSolvers runs every solver on the same 200×200 random grid.
func BenchmarkSolvers(b *testing.B) {
	g := randomGrid(b, 200, 200, 0.25, 11)
	for _, s := range pathfinding.All() {
		b.Run(s.Name(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = s.Solve(g, g.Start())
			}
		})
	}
}
