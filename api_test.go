package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		in   string
		want Strategy
	}{
		{"bfs", StrategyBreadthFirst},
		{"breadth-first", StrategyBreadthFirst},
		{"DFS", StrategyDepthFirst},
		{"ucs", StrategyUniformCost},
		{" uniform-cost ", StrategyUniformCost},
		{"greedy", StrategyGreedyBestFirst},
		{"gbfs", StrategyGreedyBestFirst},
		{"astar", StrategyAStar},
		{"A*", StrategyAStar},
	}
	for _, tt := range tests {
		got, err := ParseStrategy(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseStrategy("dijkstra")
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestInformed(t *testing.T) {
	assert.True(t, StrategyAStar.Informed())
	assert.True(t, StrategyGreedyBestFirst.Informed())
	assert.False(t, StrategyUniformCost.Informed())
	assert.False(t, StrategyBreadthFirst.Informed())
}

func TestStrategiesAreParseable(t *testing.T) {
	for _, s := range Strategies() {
		got, err := ParseStrategy(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
}
