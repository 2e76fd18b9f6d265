// Package parking is the parking-lot rearrangement domain: every car must be
// driven, one cell at a time, into the slot carrying its number.
//
// Layouts are text where '#' is a wall, '.' an empty passage, 'A'..'J' the
// cars and '0'..'9' the slots (slot 0 belongs to car A, slot 1 to car B...).
// Moving car i costs 26-i, so A is the most expensive car to move, and
// entering a slot that belongs to another car costs an extra 100.
package parking

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pdrpinto/search"
	"github.com/pdrpinto/search/domain/geom"
)

// MaxCars is the number of car letters a layout may use.
const MaxCars = 10

const (
	baseCost        = 26
	foreignSlotCost = 100
)

var (
	ErrUnknownTile   = errors.New("parking: unknown tile")
	ErrDuplicateCar  = errors.New("parking: car appears twice")
	ErrDuplicateSlot = errors.New("parking: slot appears twice")
	ErrCarGap        = errors.New("parking: cars must be lettered contiguously from A")
	ErrMissingSlot   = errors.New("parking: car has no slot")
	ErrNoCars        = errors.New("parking: layout has no cars")
	ErrIllegalMove   = errors.New("parking: illegal move")
)

// State holds the position of every car. Entries past the problem's car
// count are unused and always zero. State is a value: copying it never
// shares storage, so successors cannot disturb their parent.
type State [MaxCars]geom.Point

// Action moves one car one cell.
type Action struct {
	Car int
	Dir geom.Direction
}

func (a Action) String() string { return fmt.Sprintf("%c:%s", rune('A'+a.Car), a.Dir) }

// Problem is a parsed parking lot. It is read-only once built.
type Problem struct {
	Width, Height int
	NumCars       int
	passages      map[geom.Point]bool
	slotOwner     map[geom.Point]int
	slotOf        [MaxCars]geom.Point
	initial       State
}

var _ search.Problem[State, Action] = (*Problem)(nil)

// Parse reads a layout from text. Blank lines and surrounding whitespace are ignored.
func Parse(text string) (*Problem, error) {
	p := &Problem{
		passages:  make(map[geom.Point]bool),
		slotOwner: make(map[geom.Point]int),
	}
	cars := make(map[int]geom.Point)
	slots := make(map[int]geom.Point)

	y := 0
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		for x, tile := range line {
			at := geom.Point{X: x, Y: y}
			switch {
			case tile == '#':
				continue
			case tile == '.':
			case tile >= 'A' && tile < 'A'+MaxCars:
				car := int(tile - 'A')
				if _, dup := cars[car]; dup {
					return nil, fmt.Errorf("%w: %c", ErrDuplicateCar, tile)
				}
				cars[car] = at
			case tile >= '0' && tile <= '9':
				slot := int(tile - '0')
				if _, dup := slots[slot]; dup {
					return nil, fmt.Errorf("%w: %c", ErrDuplicateSlot, tile)
				}
				slots[slot] = at
				p.slotOwner[at] = slot
			default:
				return nil, fmt.Errorf("%w %q at %v", ErrUnknownTile, tile, at)
			}
			p.passages[at] = true
		}
		if len(line) > p.Width {
			p.Width = len(line)
		}
		y++
	}
	p.Height = y

	if len(cars) == 0 {
		return nil, ErrNoCars
	}
	p.NumCars = len(cars)
	for car := 0; car < p.NumCars; car++ {
		at, ok := cars[car]
		if !ok {
			return nil, fmt.Errorf("%w: missing %c", ErrCarGap, rune('A'+car))
		}
		slot, ok := slots[car]
		if !ok {
			return nil, fmt.Errorf("%w: %c", ErrMissingSlot, rune('A'+car))
		}
		p.initial[car] = at
		p.slotOf[car] = slot
	}
	return p, nil
}

// ParseFile reads a layout from a file.
func ParseFile(path string) (*Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read parking layout: %w", err)
	}
	p, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return p, nil
}

func (p *Problem) InitialState() State { return p.initial }

func (p *Problem) IsGoal(state State) bool {
	for car := 0; car < p.NumCars; car++ {
		if state[car] != p.slotOf[car] {
			return false
		}
	}
	return true
}

// Slot returns the position of the slot that belongs to car.
func (p *Problem) Slot(car int) geom.Point { return p.slotOf[car] }

func (p *Problem) occupied(state State, at geom.Point) bool {
	for car := 0; car < p.NumCars; car++ {
		if state[car] == at {
			return true
		}
	}
	return false
}

func (p *Problem) free(state State, at geom.Point) bool {
	return p.passages[at] && !p.occupied(state, at)
}

func (p *Problem) Actions(state State) ([]Action, error) {
	var actions []Action
	for car := 0; car < p.NumCars; car++ {
		for _, d := range geom.Directions {
			if p.free(state, state[car].Add(d.Vector())) {
				actions = append(actions, Action{Car: car, Dir: d})
			}
		}
	}
	return actions, nil
}

func (p *Problem) Successor(state State, action Action) (State, error) {
	if action.Car < 0 || action.Car >= p.NumCars {
		return state, fmt.Errorf("%w: no car %d", ErrIllegalMove, action.Car)
	}
	next := state[action.Car].Add(action.Dir.Vector())
	if !p.free(state, next) {
		return state, fmt.Errorf("%w: %v blocked", ErrIllegalMove, action)
	}
	state[action.Car] = next
	return state, nil
}

func (p *Problem) Cost(state State, action Action) float64 {
	cost := float64(baseCost - action.Car)
	next := state[action.Car].Add(action.Dir.Vector())
	if owner, ok := p.slotOwner[next]; ok && owner != action.Car {
		cost += foreignSlotCost
	}
	return cost
}

// WeightedDistance sums, over all cars, the distance to the car's slot times
// the car's cheapest move cost. It is admissible and consistent.
func WeightedDistance(problem search.Problem[State, Action], state State) float64 {
	p, ok := problem.(*Problem)
	if !ok {
		return 0
	}
	total := 0
	for car := 0; car < p.NumCars; car++ {
		total += geom.Manhattan(state[car], p.slotOf[car]) * (baseCost - car)
	}
	return float64(total)
}
