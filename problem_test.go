package search

import (
	"errors"
	"fmt"
	"math"
)

// edge is a labelled, weighted arc of graphProblem.
type edge struct {
	action string
	to     string
	cost   float64
}

// graphProblem is a small explicit directed graph used throughout the tests.
type graphProblem struct {
	initial string
	goals   map[string]bool
	edges   map[string][]edge
	failOn  map[string]error
}

func newGraph(initial string, goals ...string) *graphProblem {
	g := &graphProblem{
		initial: initial,
		goals:   make(map[string]bool),
		edges:   make(map[string][]edge),
		failOn:  make(map[string]error),
	}
	for _, goal := range goals {
		g.goals[goal] = true
	}
	return g
}

func (g *graphProblem) arc(from, action, to string, cost float64) *graphProblem {
	g.edges[from] = append(g.edges[from], edge{action: action, to: to, cost: cost})
	return g
}

func (g *graphProblem) InitialState() string     { return g.initial }
func (g *graphProblem) IsGoal(state string) bool { return g.goals[state] }

func (g *graphProblem) Actions(state string) ([]string, error) {
	if err := g.failOn[state]; err != nil {
		return nil, err
	}
	actions := make([]string, 0, len(g.edges[state]))
	for _, e := range g.edges[state] {
		actions = append(actions, e.action)
	}
	return actions, nil
}

func (g *graphProblem) find(state, action string) (edge, error) {
	for _, e := range g.edges[state] {
		if e.action == action {
			return e, nil
		}
	}
	return edge{}, fmt.Errorf("no action %q in state %q", action, state)
}

func (g *graphProblem) Successor(state, action string) (string, error) {
	e, err := g.find(state, action)
	if err != nil {
		return "", err
	}
	return e.to, nil
}

func (g *graphProblem) Cost(state, action string) float64 {
	e, _ := g.find(state, action)
	return e.cost
}

// lineGraph is A-B-C-D with unit costs and the goal at D.
func lineGraph() *graphProblem {
	return newGraph("A", "D").
		arc("A", "right", "B", 1).
		arc("B", "left", "A", 1).arc("B", "right", "C", 1).
		arc("C", "left", "B", 1).arc("C", "right", "D", 1).
		arc("D", "left", "C", 1)
}

// weightedGraph has a two-hop path S-A-G costing 11 and a cheaper
// three-hop path S-A-B-G costing 3.
func weightedGraph() *graphProblem {
	return newGraph("S", "G").
		arc("S", "s-a", "A", 1).
		arc("S", "s-b", "B", 5).
		arc("A", "a-b", "B", 1).
		arc("A", "a-g", "G", 10).
		arc("B", "b-g", "G", 1)
}

// weightedEstimates is admissible and consistent for weightedGraph.
func weightedEstimates(_ Problem[string, string], state string) float64 {
	return map[string]float64{"S": 3, "A": 2, "B": 1, "G": 0}[state]
}

// fieldProblem is an open 3x3 grid of cells 0..8, goal in the far corner.
type fieldProblem struct{}

func (fieldProblem) InitialState() int     { return 0 }
func (fieldProblem) IsGoal(state int) bool { return state == 8 }
func (fieldProblem) Actions(state int) ([]string, error) {
	var actions []string
	if state%3 < 2 {
		actions = append(actions, "east")
	}
	if state%3 > 0 {
		actions = append(actions, "west")
	}
	if state < 6 {
		actions = append(actions, "south")
	}
	if state >= 3 {
		actions = append(actions, "north")
	}
	return actions, nil
}
func (fieldProblem) Successor(state int, action string) (int, error) {
	switch action {
	case "east":
		return state + 1, nil
	case "west":
		return state - 1, nil
	case "south":
		return state + 3, nil
	case "north":
		return state - 3, nil
	}
	return 0, errors.New("bad action")
}
func (fieldProblem) Cost(int, string) float64 { return 1 }

func fieldDistance(_ Problem[int, string], state int) float64 {
	return math.Abs(float64(2-state%3)) + math.Abs(float64(2-state/3))
}

// replay applies actions from the initial state and returns the final state.
func replay[S comparable, A any](problem Problem[S, A], actions []A) (S, float64, error) {
	state := problem.InitialState()
	total := 0.0
	for _, action := range actions {
		total += problem.Cost(state, action)
		next, err := problem.Successor(state, action)
		if err != nil {
			return state, total, err
		}
		state = next
	}
	return state, total, nil
}
