package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectionVectors(t *testing.T) {
	origin := Point{2, 2}
	assert.Equal(t, Point{3, 2}, origin.Add(Right.Vector()))
	assert.Equal(t, Point{2, 1}, origin.Add(Up.Vector()))
	assert.Equal(t, Point{1, 2}, origin.Add(Left.Vector()))
	assert.Equal(t, Point{2, 3}, origin.Add(Down.Vector()))
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "right", Right.String())
	assert.Equal(t, "down", Down.String())
	assert.Equal(t, "Direction(9)", Direction(9).String())
}

func TestManhattan(t *testing.T) {
	assert.Equal(t, 0, Manhattan(Point{1, 1}, Point{1, 1}))
	assert.Equal(t, 7, Manhattan(Point{-1, 4}, Point{2, 0}))
}
