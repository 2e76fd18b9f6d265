// Package search provides generic state-space search over any problem that
// can enumerate actions and successors.
//
// It exposes five strategies, all synchronous and single goroutine:
//
//   - BreadthFirst and DepthFirst: uninformed, no cost tracking.
//   - UniformCost: cheapest path by accumulated action cost.
//   - GreedyBestFirst and AStar: ordered by a caller-supplied Heuristic.
//
// The priority-ordered strategies can also be driven one expansion at a time
// with a Stepper, to feed UIs or debugging tools.
//
// Each call owns its frontier and explored set, so several searches over the
// same read-only Problem may run on separate goroutines without locking.
// A search that reaches no goal is not an error: the returned Result has
// Found set to false.
package search
