package grid

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/search"
	"github.com/pdrpinto/search/domain/geom"
)

const maze = `
#######
#S..#G#
#.#.#.#
#.....#
#######
`

func walk(t *testing.T, p *Problem, actions []geom.Direction) geom.Point {
	t.Helper()
	state := p.InitialState()
	for _, a := range actions {
		next, err := p.Successor(state, a)
		require.NoError(t, err)
		state = next
	}
	return state
}

func TestParse(t *testing.T) {
	p, err := Parse(maze)
	require.NoError(t, err)
	assert.Equal(t, 7, p.Width)
	assert.Equal(t, 5, p.Height)
	assert.Equal(t, geom.Point{X: 1, Y: 1}, p.InitialState())
	assert.True(t, p.IsGoal(geom.Point{X: 5, Y: 1}))
	assert.True(t, p.Walkable(geom.Point{X: 3, Y: 2}))
	assert.False(t, p.Walkable(geom.Point{X: 2, Y: 2}))
}

func TestParseErrors(t *testing.T) {
	tests := map[string]struct {
		layout string
		want   error
	}{
		"no start":   {"#.G#", ErrNoStart},
		"two starts": {"#SSG#", ErrManyStarts},
		"no goal":    {"#S.#", ErrNoGoal},
		"bad tile":   {"#S?G#", ErrUnknownTile},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(tt.layout)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.txt")
	require.NoError(t, os.WriteFile(path, []byte(maze), 0o644))

	p, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, geom.Point{X: 1, Y: 1}, p.InitialState())

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestActions(t *testing.T) {
	p, err := Parse(maze)
	require.NoError(t, err)

	actions, err := p.Actions(geom.Point{X: 1, Y: 1})
	require.NoError(t, err)
	assert.Equal(t, []geom.Direction{geom.Right, geom.Down}, actions)

	_, err = p.Actions(geom.Point{X: 0, Y: 0})
	assert.ErrorIs(t, err, ErrOutOfBounds)

	_, err = p.Successor(geom.Point{X: 1, Y: 1}, geom.Up)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestShortestPaths(t *testing.T) {
	p, err := Parse(maze)
	require.NoError(t, err)
	ctx := context.Background()

	bfs, err := search.BreadthFirst[geom.Point, geom.Direction](ctx, p, p.InitialState())
	require.NoError(t, err)
	require.True(t, bfs.Found)
	assert.Len(t, bfs.Actions, 8)
	assert.True(t, p.IsGoal(walk(t, p, bfs.Actions)))

	ucs, err := search.UniformCost[geom.Point, geom.Direction](ctx, p, p.InitialState())
	require.NoError(t, err)
	assert.Equal(t, 8.0, ucs.Cost)

	astar, err := search.AStar(ctx, p, p.InitialState(), Manhattan)
	require.NoError(t, err)
	assert.Equal(t, 8.0, astar.Cost)
	assert.True(t, p.IsGoal(walk(t, p, astar.Actions)))
	assert.LessOrEqual(t, astar.Expanded, ucs.Expanded)
}

func TestAnyPath(t *testing.T) {
	p, err := Parse(maze)
	require.NoError(t, err)
	ctx := context.Background()

	dfs, err := search.DepthFirst[geom.Point, geom.Direction](ctx, p, p.InitialState())
	require.NoError(t, err)
	require.True(t, dfs.Found)
	assert.True(t, p.IsGoal(walk(t, p, dfs.Actions)))

	greedy, err := search.GreedyBestFirst(ctx, p, p.InitialState(), Manhattan)
	require.NoError(t, err)
	require.True(t, greedy.Found)
	assert.True(t, p.IsGoal(walk(t, p, greedy.Actions)))
}

func TestWalledOffGoal(t *testing.T) {
	p, err := Parse("#####\n#S#G#\n#####")
	require.NoError(t, err)

	ctx := context.Background()

	ucs, err := search.UniformCost[geom.Point, geom.Direction](ctx, p, p.InitialState())
	require.NoError(t, err)
	assert.False(t, ucs.Found)
	assert.Equal(t, 1, ucs.Expanded)

	// The start is cut off from the goal, so the heuristic prunes it outright.
	astar, err := search.AStar(ctx, p, p.InitialState(), Manhattan)
	require.NoError(t, err)
	assert.False(t, astar.Found)
	assert.Zero(t, astar.Expanded)
}

func TestManhattanDeadEnd(t *testing.T) {
	p, err := Parse("#S.G#.#")
	require.NoError(t, err)
	assert.Equal(t, 2.0, Manhattan(p, p.InitialState()))
	assert.True(t, math.IsInf(Manhattan(p, geom.Point{X: 5, Y: 0}), 1))
}

func TestManhattanNearestGoal(t *testing.T) {
	p, err := Parse("#G..S.G#")
	require.NoError(t, err)
	assert.Equal(t, 2.0, Manhattan(p, p.InitialState()))
}
