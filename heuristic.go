package search

import "math"

// Heuristic estimates the remaining cost from state to the nearest goal.
// It returns a non-negative value, or math.Inf(1) to declare the state a dead
// end; such states are never added to the frontier.
//
// AStar returns optimal paths only when the heuristic is admissible and
// consistent. This is not checked.
type Heuristic[S comparable, A any] func(problem Problem[S, A], state S) float64

// ZeroHeuristic returns a heuristic that always estimates 0.
// AStar with it behaves like UniformCost.
func ZeroHeuristic[S comparable, A any]() Heuristic[S, A] {
	return func(Problem[S, A], S) float64 { return 0 }
}

// Memoize caches heuristic values per state. The cache belongs to the
// returned function and is not safe for concurrent use; create one per search.
func Memoize[S comparable, A any](heuristic Heuristic[S, A]) Heuristic[S, A] {
	cache := make(map[S]float64)
	return func(problem Problem[S, A], state S) float64 {
		if h, ok := cache[state]; ok {
			return h
		}
		h := heuristic(problem, state)
		cache[state] = h
		return h
	}
}

// pruned reports whether a priority excludes a node from the frontier.
// NaN is treated like +Inf since it cannot be ordered.
func pruned(priority float64) bool {
	return math.IsInf(priority, 1) || math.IsNaN(priority)
}
