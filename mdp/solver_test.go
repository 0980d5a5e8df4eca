package mdp_test

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazebench/grid"
	"github.com/katalvlaran/mazebench/mazegen"
	"github.com/katalvlaran/mazebench/mdp"
)

func corridor(t *testing.T) *mdp.Model {
	m := newModel(t, "S...E")
	m.InitStates(0, 10, 3)
	return m
}

func TestSolvers_Errors(t *testing.T) {
	for _, name := range mdp.Names() {
		s, err := mdp.ByName(name)
		require.NoError(t, err)
		res, err := s.Solve(nil)
		assert.Nil(t, res)
		assert.ErrorIs(t, err, mdp.ErrNilModel)
	}
	_, err := mdp.ByName("q-learning")
	assert.ErrorIs(t, err, mdp.ErrUnknownSolver)
}

func TestSolvers_OptionViolation(t *testing.T) {
	bad := map[string]mdp.Option{
		"discount<0":  mdp.WithDiscount(-0.1),
		"discount>1":  mdp.WithDiscount(1.5),
		"discount=1":  mdp.WithDiscount(1),
		"noise>1":     mdp.WithNoise(2),
		"noise NaN":   mdp.WithNoise(math.NaN()),
		"theta=0":     mdp.WithTheta(0),
		"reward Inf":  mdp.WithLivingReward(math.Inf(-1)),
		"maxIter=0":   mdp.WithMaxIterations(0),
		"maxIter<0":   mdp.WithMaxIterations(-5),
		"theta<0 NaN": mdp.WithTheta(math.NaN()),
	}
	for name, opt := range bad {
		t.Run(name, func(t *testing.T) {
			for _, s := range []mdp.Solver{mdp.NewValueIteration(opt), mdp.NewPolicyIteration(opt)} {
				res, err := s.Solve(corridor(t))
				assert.Nil(t, res)
				assert.ErrorIs(t, err, mdp.ErrOptionViolation)
			}
		})
	}
}

//----------------------------------------------------------------------------//
// Value Iteration
//----------------------------------------------------------------------------//

func TestValueIteration_Corridor(t *testing.T) {
	m := corridor(t)
	res, err := mdp.NewValueIteration().Solve(m)
	require.NoError(t, err)

	for c := 0; c < 4; c++ {
		assert.Equal(t, grid.East, m.Policy(grid.Pos{Row: 0, Col: c}), "col %d", c)
	}
	assert.True(t, res.Converged)
	assert.True(t, res.Reached)
	assert.Len(t, res.Path, 5)
	assert.Greater(t, res.Iterations, 1)
	assert.Less(t, res.Iterations, 1000)
	assert.Zero(t, res.EvalIterations)
	assert.Zero(t, res.ImproveIterations)

	require.Len(t, res.Snapshots, res.Iterations)
	last := res.Snapshots[len(res.Snapshots)-1]
	assert.Less(t, last.Delta, mdp.DefaultTheta)
	assert.Equal(t, last.Delta, res.Delta)
	for _, s := range res.Snapshots[:len(res.Snapshots)-1] {
		assert.GreaterOrEqual(t, s.Delta, mdp.DefaultTheta)
		assert.Equal(t, mdp.PhaseSweep, s.Phase)
	}

	// goal is absorbing; values rise toward it
	assert.Equal(t, 10.0, m.Value(grid.Pos{Row: 0, Col: 4}))
	for c := 1; c < 4; c++ {
		assert.Greater(t, m.Value(grid.Pos{Row: 0, Col: c}), m.Value(grid.Pos{Row: 0, Col: c - 1}))
	}
}

func TestValueIteration_FirstSweep(t *testing.T) {
	m := corridor(t)
	res, err := mdp.NewValueIteration().Solve(m)
	require.NoError(t, err)

	first := res.Snapshots[0]
	// (0,0) has one neighbour whose value is still 0.
	assert.InDelta(t, -0.01, first.Value(grid.Pos{Row: 0, Col: 0}), 1e-12)
	// (0,3): 0.8·10 + 0.2·v(0,2), v(0,2) already updated in place.
	v2 := first.Value(grid.Pos{Row: 0, Col: 2})
	assert.InDelta(t, -0.01+0.9*(0.8*10+0.2*v2), first.Value(grid.Pos{Row: 0, Col: 3}), 1e-12)
}

func TestValueIteration_TieBreakOrder(t *testing.T) {
	m := newModel(t,
		"S..",
		"...",
		"..E",
	)
	m.InitStates(0, 0, 1)
	res, err := mdp.NewValueIteration(mdp.WithLivingReward(0)).Solve(m)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Iterations, "nothing changes, so one sweep converges")
	assert.Equal(t, grid.East, m.Policy(grid.Pos{Row: 0, Col: 0}))
	assert.Equal(t, grid.North, m.Policy(grid.Pos{Row: 1, Col: 1}))
	assert.Equal(t, grid.North, m.Policy(grid.Pos{Row: 2, Col: 0}))
	assert.Equal(t, grid.East, m.Policy(grid.Pos{Row: 0, Col: 1}))
}

func TestValueIteration_IsolatedCell(t *testing.T) {
	m := newModel(t,
		"S.#.",
		".E##",
	)
	m.InitStates(0, 10, 1)
	res, err := mdp.NewValueIteration().Solve(m)
	require.NoError(t, err)

	isolated := grid.Pos{Row: 0, Col: 3}
	assert.Equal(t, grid.DirNone, m.Policy(isolated))
	assert.Equal(t, 0.0, m.Value(isolated))
	assert.True(t, res.Reached)
	assert.Len(t, res.Path, 3)
}

func TestValueIteration_Unreachable(t *testing.T) {
	m := newModel(t,
		"S.#.",
		"..#E",
	)
	m.InitStates(0, 10, 1)
	res, err := mdp.NewValueIteration().Solve(m)
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.False(t, res.Reached)
	assert.NotEmpty(t, res.Path)
	assert.Equal(t, grid.Pos{}, res.Path[0])
}

func TestValueIteration_NotConverged(t *testing.T) {
	m := corridor(t)
	res, err := mdp.NewValueIteration(mdp.WithMaxIterations(2)).Solve(m)
	assert.ErrorIs(t, err, mdp.ErrNotConverged)
	require.NotNil(t, res)
	assert.False(t, res.Converged)
	assert.Equal(t, 2, res.Iterations)
	assert.Len(t, res.Snapshots, 2)
	assert.NotEmpty(t, res.Path)
}

func TestValueIteration_SnapshotsOff(t *testing.T) {
	m := corridor(t)
	res, err := mdp.NewValueIteration(mdp.WithSnapshots(false)).Solve(m)
	require.NoError(t, err)
	assert.Empty(t, res.Snapshots)
	assert.Greater(t, res.Iterations, 0)
	assert.Less(t, res.Delta, mdp.DefaultTheta)
}

//----------------------------------------------------------------------------//
// Policy Iteration
//----------------------------------------------------------------------------//

func TestPolicyIteration_Corridor(t *testing.T) {
	m := corridor(t)
	res, err := mdp.NewPolicyIteration().Solve(m)
	require.NoError(t, err)

	for c := 0; c < 4; c++ {
		assert.Equal(t, grid.East, m.Policy(grid.Pos{Row: 0, Col: c}), "col %d", c)
	}
	assert.True(t, res.Converged)
	assert.True(t, res.Reached)
	assert.Len(t, res.Path, 5)
	assert.GreaterOrEqual(t, res.ImproveIterations, 1)
	assert.GreaterOrEqual(t, res.EvalIterations, res.ImproveIterations)
	assert.Equal(t, res.EvalIterations+res.ImproveIterations, res.Iterations)

	require.Len(t, res.Snapshots, res.Iterations)
	var evals, improves int
	for _, s := range res.Snapshots {
		switch s.Phase {
		case mdp.PhaseEval:
			evals++
		case mdp.PhaseImprove:
			improves++
			assert.Zero(t, s.Delta)
		default:
			t.Fatalf("unexpected phase %v", s.Phase)
		}
	}
	assert.Equal(t, res.EvalIterations, evals)
	assert.Equal(t, res.ImproveIterations, improves)

	last := res.Snapshots[len(res.Snapshots)-1]
	assert.Equal(t, mdp.PhaseImprove, last.Phase)
	assert.Equal(t, res.EvalIterations, last.EvalIterations)
	assert.Equal(t, res.ImproveIterations, last.ImproveIterations)
}

func TestPolicyIteration_Maze(t *testing.T) {
	m := newModel(t,
		"S.#...",
		".##.#.",
		"......",
		"#.##.#",
		"...#.E",
	)
	m.InitStates(0, 10, 42)
	res, err := mdp.NewPolicyIteration().Solve(m)
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.True(t, res.Reached)
	assert.Equal(t, m.PolicyPath(), res.Path)
	assert.Equal(t, m.Grid().End(), res.Path[len(res.Path)-1])
}

func TestPolicyIteration_NotConverged(t *testing.T) {
	m := corridor(t)
	res, err := mdp.NewPolicyIteration(mdp.WithMaxIterations(1)).Solve(m)
	assert.ErrorIs(t, err, mdp.ErrNotConverged)
	require.NotNil(t, res)
	assert.False(t, res.Converged)
	assert.Equal(t, 1, res.EvalIterations)
	assert.Zero(t, res.ImproveIterations)
	assert.Equal(t, 1, res.Iterations)
}

//----------------------------------------------------------------------------//
// Shared behaviour
//----------------------------------------------------------------------------//

func TestSolvers_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, name := range mdp.Names() {
		s, err := mdp.ByName(name, mdp.WithContext(ctx))
		require.NoError(t, err)
		res, err := s.Solve(corridor(t))
		assert.ErrorIs(t, err, context.Canceled, name)
		require.NotNil(t, res, name)
		assert.False(t, res.Converged, name)
	}
}

func TestSolvers_AgreeOnCorridorPath(t *testing.T) {
	vi, err := mdp.NewValueIteration().Solve(corridor(t))
	require.NoError(t, err)
	pi, err := mdp.NewPolicyIteration().Solve(corridor(t))
	require.NoError(t, err)
	assert.Equal(t, vi.Path, pi.Path)
}

func TestSolvers_CloneLeavesInputUntouched(t *testing.T) {
	m := corridor(t)
	before := m.Snapshot(0, mdp.PhaseSweep, 0, 0)
	_, err := mdp.NewValueIteration().Solve(m.Clone())
	require.NoError(t, err)
	after := m.Snapshot(0, mdp.PhaseSweep, 0, 0)
	assert.Equal(t, before.Values, after.Values)
	assert.Equal(t, before.Policies, after.Policies)
}

func TestSolvers_NoiseFreeCorridor(t *testing.T) {
	vi := corridor(t)
	res, err := mdp.NewValueIteration(mdp.WithNoise(0)).Solve(vi)
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.Equal(t, 5, res.Iterations, "the goal value needs four sweeps to reach (0,0), the fifth changes nothing")
	assert.Zero(t, res.Delta)

	// v = −0.01 + 0.9·v(east neighbour), v(goal) = 10
	want := []float64{6.52661, 7.2629, 8.081, 8.99, 10}
	for c, v := range want {
		assert.InDelta(t, v, vi.Value(grid.Pos{Row: 0, Col: c}), 1e-9, "col %d", c)
	}

	pi := corridor(t)
	pres, err := mdp.NewPolicyIteration(mdp.WithNoise(0)).Solve(pi)
	require.NoError(t, err)
	assert.True(t, pres.Reached)
	assert.Equal(t, res.Path, pres.Path)

	for c := 0; c < 4; c++ {
		p := grid.Pos{Row: 0, Col: c}
		assert.Equal(t, grid.East, vi.Policy(p), "VI col %d", c)
		assert.Equal(t, grid.East, pi.Policy(p), "PI col %d", c)
	}
}

// loopyGrid returns a rows×cols grid with random walls (so cycles are
// common), start top-left and end bottom-right.
func loopyGrid(t *testing.T, rows, cols int, wallRate float64, seed int64) *grid.Grid {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	mask := make([][]bool, rows)
	for r := range mask {
		mask[r] = make([]bool, cols)
		for c := range mask[r] {
			mask[r][c] = rng.Float64() < wallRate
		}
	}
	g, err := grid.New(mask, grid.Pos{}, grid.Pos{Row: rows - 1, Col: cols - 1})
	require.NoError(t, err)
	return g
}

func TestSolvers_TerminateOnMazesAndLoops(t *testing.T) {
	var grids []*grid.Grid
	for _, name := range []string{mazegen.NameBacktracking, mazegen.NamePrims, mazegen.NameWilson} {
		for seed := int64(1); seed <= 15; seed++ {
			mz, err := mazegen.Generate(name, 8, 8, seed)
			require.NoError(t, err)
			g, err := mz.Grid()
			require.NoError(t, err)
			grids = append(grids, g)
		}
	}
	for seed := int64(1); seed <= 20; seed++ {
		grids = append(grids, loopyGrid(t, 10, 10, 0.25, seed))
	}

	for i, g := range grids {
		m, err := mdp.NewModel(g)
		require.NoError(t, err)
		m.InitStates(0, 10, int64(i+1))

		vi, err := mdp.NewValueIteration(mdp.WithSnapshots(false)).Solve(m.Clone())
		require.NoError(t, err, "grid %d", i)
		assert.True(t, vi.Converged, "grid %d", i)
		assert.Less(t, vi.Delta, mdp.DefaultTheta, "grid %d", i)

		pi, err := mdp.NewPolicyIteration(mdp.WithSnapshots(false)).Solve(m.Clone())
		require.NoError(t, err, "grid %d", i)
		assert.True(t, pi.Converged, "grid %d", i)
		assert.LessOrEqual(t, pi.ImproveIterations, g.OpenCount(), "grid %d: improvement passes", i)
	}
}
