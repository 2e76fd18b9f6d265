// Package geom holds the integer grid geometry shared by the grid-based domains.
package geom

import "fmt"

// Point is a cell on a grid. Y grows downward, matching text layouts.
type Point struct {
	X, Y int
}

func (p Point) Add(v Point) Point { return Point{p.X + v.X, p.Y + v.Y} }

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Direction is one of the four orthogonal moves.
type Direction uint8

const (
	Right Direction = iota
	Up
	Left
	Down
)

// Directions lists every direction in the order actions are generated.
var Directions = [...]Direction{Right, Up, Left, Down}

var vectors = [...]Point{
	Right: {1, 0},
	Up:    {0, -1},
	Left:  {-1, 0},
	Down:  {0, 1},
}

var names = [...]string{
	Right: "right",
	Up:    "up",
	Left:  "left",
	Down:  "down",
}

// Vector returns the unit offset of d.
func (d Direction) Vector() Point { return vectors[d] }

func (d Direction) String() string {
	if int(d) < len(names) {
		return names[d]
	}
	return fmt.Sprintf("Direction(%d)", d)
}

// Manhattan returns the L1 distance between a and b.
func Manhattan(a, b Point) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}
