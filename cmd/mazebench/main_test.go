package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazebench/config"
	"github.com/katalvlaran/mazebench/mdp"
	"github.com/katalvlaran/mazebench/pathfinding"
	"github.com/katalvlaran/mazebench/report"
)

// run executes the CLI with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), "none.env")}, args...))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestPathfindingCmd(t *testing.T) {
	out, _, err := run(t, "pathfinding", "--rows", "3", "--cols", "4", "--seed", "7", "bfs", "dfs")
	require.NoError(t, err)
	assert.Contains(t, out, "== BFS ==")
	assert.Contains(t, out, "== DFS ==")
	assert.NotContains(t, out, "A*")
	assert.Contains(t, out, "path length:")
	assert.NotContains(t, out, "\x1b[", "no color when stdout is not a terminal")

	lines := strings.Split(out, "\n")
	require.Greater(t, len(lines), 8)
	assert.Len(t, lines[1], 2*4+1, "maze rows are 2·cols+1 wide")
	assert.Contains(t, out, "S")
	assert.Contains(t, out, "E")
	assert.Contains(t, out, "*")
}

func TestPathfindingCmd_AllSolvers(t *testing.T) {
	out, _, err := run(t, "pf", "--rows", "2", "--cols", "2", "--visited")
	require.NoError(t, err)
	for _, name := range []string{"DFS", "BFS", "A* (Manhattan)", "A* (Euclidean)", "A* (Chebyshev)"} {
		assert.Contains(t, out, "== "+name+" ==")
	}
}

func TestPathfindingCmd_UnknownSolver(t *testing.T) {
	_, _, err := run(t, "pathfinding", "dijkstra")
	assert.ErrorIs(t, err, pathfinding.ErrUnknownSolver)
}

func TestMDPCmd(t *testing.T) {
	chart := filepath.Join(t.TempDir(), "conv.html")
	out, _, err := run(t, "mdp", "--rows", "3", "--cols", "3",
		"value-iteration", "policy-iteration", "--values", "--chart", chart)
	require.NoError(t, err)
	assert.Contains(t, out, "== Value Iteration ==")
	assert.Contains(t, out, "== Policy Iteration ==")
	assert.Contains(t, out, "converged: true")
	assert.Contains(t, out, "(eval ")
	assert.Contains(t, out, "|")

	html, err := os.ReadFile(chart)
	require.NoError(t, err)
	assert.Contains(t, string(html), "Value Iteration")
}

func TestMDPCmd_NotConverged(t *testing.T) {
	out, logs, err := run(t, "mdp", "--rows", "3", "--cols", "3", "--max-iter", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "converged: false")
	assert.Contains(t, logs, "did not converge")
}

func TestMDPCmd_Errors(t *testing.T) {
	_, _, err := run(t, "mdp", "--noise", "2")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = run(t, "mdp", "sarsa")
	assert.ErrorIs(t, err, mdp.ErrUnknownSolver)
}

func TestEvalCmd(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MAZEBENCH_OUT_DIR", dir)

	out, _, err := run(t, "eval", "--sizes", "3,4", "--seeds", "1", "--csv", "--summary", "--chart", "visited")
	require.NoError(t, err)
	assert.Contains(t, out, "=== Pathfinding ===")
	assert.Contains(t, out, "=== MDP ===")
	assert.Contains(t, out, "=== Summary ===")

	files, err := filepath.Glob(filepath.Join(dir, "*_eval_backtracking.csv"))
	require.NoError(t, err)
	require.Len(t, files, 1)
	f, err := os.Open(files[0])
	require.NoError(t, err)
	defer f.Close()
	recs, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, report.CSVHeader, recs[0])
	assert.Len(t, recs, 1+2*7)

	charts, err := filepath.Glob(filepath.Join(dir, "*_visited.html"))
	require.NoError(t, err)
	assert.Len(t, charts, 1)
}

func TestEvalCmd_OnlyPathfinding(t *testing.T) {
	out, _, err := run(t, "eval", "--sizes", "3", "--pathfinding")
	require.NoError(t, err)
	assert.Contains(t, out, "=== Pathfinding ===")
	assert.NotContains(t, out, "=== MDP ===")
}

func TestEvalCmd_BadMetric(t *testing.T) {
	_, _, err := run(t, "eval", "--sizes", "3", "--chart", "speed")
	assert.ErrorIs(t, err, report.ErrUnknownMetric)
}

func TestConfigCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mazebench.yaml")
	require.NoError(t, os.WriteFile(path, []byte("maze:\n  generator: wilson\n"), 0o600))

	out, _, err := run(t, "--config", path, "config", "--rows", "4")
	require.NoError(t, err)
	c, err := config.Parse(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 4, c.Maze.Rows)
	assert.Equal(t, "wilson", c.Maze.Generator)
}

func TestLoggingFormat(t *testing.T) {
	t.Setenv("MAZEBENCH_LOG_LEVEL", "debug")
	t.Setenv("MAZEBENCH_LOG_FORMAT", "json")
	_, logs, err := run(t, "pathfinding", "--rows", "2", "--cols", "2", "bfs")
	require.NoError(t, err)
	assert.Contains(t, logs, `"msg":"maze generated"`)
	assert.Contains(t, logs, `"msg":"search finished"`)
}
