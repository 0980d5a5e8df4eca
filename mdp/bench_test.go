package mdp_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/mazebench/grid"
	"github.com/katalvlaran/mazebench/mdp"
)

// openModel returns an n×n open grid model, initialised with seed 1.
func openModel(b *testing.B, n int) *mdp.Model {
	lines := make([]string, n)
	for r := range lines {
		lines[r] = strings.Repeat(".", n)
	}
	lines[0] = "S" + lines[0][1:]
	lines[n-1] = lines[n-1][:n-1] + "E"
	g, err := grid.Parse(lines...)
	if err != nil {
		b.Fatalf("setup failed: %v", err)
	}
	m, err := mdp.NewModel(g)
	if err != nil {
		b.Fatalf("setup failed: %v", err)
	}
	m.InitStates(0, 10, 1)
	return m
}

// BenchmarkSolvers runs both solvers on a 30×30 open grid without snapshots.
func BenchmarkSolvers(b *testing.B) {
	base := openModel(b, 30)
	for _, name := range mdp.Names() {
		s, _ := mdp.ByName(name, mdp.WithSnapshots(false))
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = s.Solve(base.Clone())
			}
		})
	}
}
