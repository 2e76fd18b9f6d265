// Package grid is a maze domain: an agent walks a walled grid from a start
// cell to any goal cell, one unit-cost step at a time.
//
// Layouts are text:
//
//	#######
//	#S..#G#
//	#.#.#.#
//	#.....#
//	#######
//
// '#' is a wall, '.' floor, 'S' the single start and 'G' a goal (one or more).
package grid

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/pdrpinto/search"
	"github.com/pdrpinto/search/domain/geom"
)

var (
	ErrNoStart       = errors.New("grid: layout has no start")
	ErrManyStarts    = errors.New("grid: layout has more than one start")
	ErrNoGoal        = errors.New("grid: layout has no goal")
	ErrUnknownTile   = errors.New("grid: unknown tile")
	ErrOutOfBounds   = errors.New("grid: move leaves the walkable area")
	ErrInvalidAction = errors.New("grid: invalid action")
)

// Problem is a parsed maze. It is read-only once built.
type Problem struct {
	Width, Height int
	walkable      map[geom.Point]bool
	goals         []geom.Point
	goalSet       map[geom.Point]bool
	live          map[geom.Point]bool
	start         geom.Point
}

var _ search.Problem[geom.Point, geom.Direction] = (*Problem)(nil)

// Parse reads a layout from text.
func Parse(text string) (*Problem, error) {
	p := &Problem{
		walkable: make(map[geom.Point]bool),
		goalSet:  make(map[geom.Point]bool),
	}
	starts := 0
	y := 0
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		for x, tile := range line {
			at := geom.Point{X: x, Y: y}
			switch tile {
			case '#':
				continue
			case '.':
			case 'S':
				p.start = at
				starts++
			case 'G':
				p.goals = append(p.goals, at)
				p.goalSet[at] = true
			default:
				return nil, fmt.Errorf("%w %q at %v", ErrUnknownTile, tile, at)
			}
			p.walkable[at] = true
		}
		if len(line) > p.Width {
			p.Width = len(line)
		}
		y++
	}
	p.Height = y

	switch {
	case starts == 0:
		return nil, ErrNoStart
	case starts > 1:
		return nil, ErrManyStarts
	case len(p.goals) == 0:
		return nil, ErrNoGoal
	}
	p.live = p.connected(p.goals)
	return p, nil
}

// connected flood-fills the floor from the given cells. Moves are symmetric,
// so a cell reaches a goal exactly when it is filled from one.
func (p *Problem) connected(from []geom.Point) map[geom.Point]bool {
	seen := make(map[geom.Point]bool, len(p.walkable))
	stack := append([]geom.Point(nil), from...)
	for _, at := range from {
		seen[at] = true
	}
	for len(stack) > 0 {
		at := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range geom.Directions {
			next := at.Add(d.Vector())
			if p.walkable[next] && !seen[next] {
				seen[next] = true
				stack = append(stack, next)
			}
		}
	}
	return seen
}

// ParseFile reads a layout from a file.
func ParseFile(path string) (*Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read grid layout: %w", err)
	}
	p, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return p, nil
}

func (p *Problem) InitialState() geom.Point { return p.start }

func (p *Problem) IsGoal(state geom.Point) bool { return p.goalSet[state] }

// Walkable reports whether at is a floor cell.
func (p *Problem) Walkable(at geom.Point) bool { return p.walkable[at] }

func (p *Problem) Actions(state geom.Point) ([]geom.Direction, error) {
	if !p.walkable[state] {
		return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, state)
	}
	actions := make([]geom.Direction, 0, len(geom.Directions))
	for _, d := range geom.Directions {
		if p.walkable[state.Add(d.Vector())] {
			actions = append(actions, d)
		}
	}
	return actions, nil
}

func (p *Problem) Successor(state geom.Point, action geom.Direction) (geom.Point, error) {
	if int(action) >= len(geom.Directions) {
		return state, fmt.Errorf("%w: %v", ErrInvalidAction, action)
	}
	next := state.Add(action.Vector())
	if !p.walkable[next] {
		return state, fmt.Errorf("%w: %v from %v", ErrOutOfBounds, action, state)
	}
	return next, nil
}

func (p *Problem) Cost(geom.Point, geom.Direction) float64 { return 1 }

// Manhattan is the distance to the nearest goal ignoring walls, or +Inf for
// cells walled off from every goal. It is admissible and consistent for
// unit-cost moves.
func Manhattan(problem search.Problem[geom.Point, geom.Direction], state geom.Point) float64 {
	p, ok := problem.(*Problem)
	if !ok {
		return 0
	}
	if !p.live[state] {
		return math.Inf(1)
	}
	best := -1
	for _, goal := range p.goals {
		if d := geom.Manhattan(state, goal); best < 0 || d < best {
			best = d
		}
	}
	return float64(best)
}
