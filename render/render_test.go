package render_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazebench/grid"
	"github.com/katalvlaran/mazebench/mdp"
	"github.com/katalvlaran/mazebench/render"
)

func parse(t *testing.T, lines ...string) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(lines...)
	require.NoError(t, err)
	return g
}

func TestPath_Plain(t *testing.T) {
	g := parse(t,
		"S.#",
		"..E",
	)
	visited := []grid.Pos{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}}
	path := []grid.Pos{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}}

	var buf bytes.Buffer
	require.NoError(t, render.Path(&buf, g, visited, path, render.WithColor(false)))
	assert.Equal(t, "S.#\n**E\n", buf.String())
}

func TestPath_Color(t *testing.T) {
	g := parse(t, "S.E")
	var buf bytes.Buffer
	require.NoError(t, render.Path(&buf, g, nil, nil))
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "S")
}

func TestPolicy_Plain(t *testing.T) {
	g := parse(t, "S...E")
	m, err := mdp.NewModel(g)
	require.NoError(t, err)
	require.NoError(t, m.SetPolicy(grid.Pos{Row: 0, Col: 0}, grid.East))
	require.NoError(t, m.SetPolicy(grid.Pos{Row: 0, Col: 1}, grid.East))
	require.NoError(t, m.SetPolicy(grid.Pos{Row: 0, Col: 3}, grid.West))

	var buf bytes.Buffer
	snap := m.Snapshot(0, mdp.PhaseSweep, 0, 0)
	require.NoError(t, render.Policy(&buf, snap, m.PolicyPath(), render.WithColor(false)))
	assert.Equal(t, ">> <E\n", buf.String())
}

func TestValues_Plain(t *testing.T) {
	g := parse(t, "S.#E")
	m, err := mdp.NewModel(g)
	require.NoError(t, err)
	m.InitStates(0, 10, 1)
	require.NoError(t, m.SetValue(grid.Pos{Row: 0, Col: 1}, -0.5))

	var buf bytes.Buffer
	snap := m.Snapshot(0, mdp.PhaseSweep, 0, 0)
	require.NoError(t, render.Values(&buf, snap, render.WithColor(false)))
	assert.Equal(t, "   0.00|  -0.50|#######|  10.00|\n", buf.String())

	buf.Reset()
	require.NoError(t, render.Values(&buf, snap, render.WithColor(false), render.WithPrecision(0)))
	assert.Equal(t, "    0|   -0|#####|   10|\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRender_WriteError(t *testing.T) {
	g := parse(t, "SE")
	assert.Error(t, render.Path(failingWriter{}, g, nil, nil))
}
