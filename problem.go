package search

// Problem is the contract a domain implements to be searched.
// S must be comparable so states can key the frontier and explored set.
//
// Successor must never mutate its input state: two calls from the same state
// with different actions must not observe each other. Value types (arrays,
// structs of arrays, strings) satisfy this for free.
type Problem[S comparable, A any] interface {
	InitialState() S
	IsGoal(state S) bool
	// Actions returns the actions applicable in state. An empty result is a dead end.
	Actions(state S) ([]A, error)
	Successor(state S, action A) (S, error)
	// Cost must be non-negative. It is only consulted by cost-aware strategies.
	Cost(state S, action A) float64
}

// Node is a search node: a state, the actions that led to it from the
// initial state, and the accumulated cost of those actions.
type Node[S comparable, A any] struct {
	State   S
	Actions []A
	Cost    float64
}
