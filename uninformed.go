package search

import (
	"context"

	"github.com/pdrpinto/search/internal"
)

// nodeQueue is the frontier of the uninformed strategies: a plain slice used
// as a FIFO or LIFO, with a membership set so duplicates are never queued.
type nodeQueue[S comparable, A any] struct {
	nodes   []Node[S, A]
	head    int
	members map[S]struct{}
}

func newNodeQueue[S comparable, A any]() *nodeQueue[S, A] {
	return &nodeQueue[S, A]{members: make(map[S]struct{})}
}

func (q *nodeQueue[S, A]) Len() int { return len(q.nodes) - q.head }

func (q *nodeQueue[S, A]) contains(state S) bool {
	_, ok := q.members[state]
	return ok
}

func (q *nodeQueue[S, A]) push(node Node[S, A]) {
	q.nodes = append(q.nodes, node)
	q.members[node.State] = struct{}{}
}

func (q *nodeQueue[S, A]) popFront() Node[S, A] {
	node := q.nodes[q.head]
	q.nodes[q.head] = Node[S, A]{}
	q.head++
	if q.head == len(q.nodes) {
		q.nodes, q.head = q.nodes[:0], 0
	}
	delete(q.members, node.State)
	return node
}

func (q *nodeQueue[S, A]) popBack() Node[S, A] {
	n := len(q.nodes) - 1
	node := q.nodes[n]
	q.nodes[n] = Node[S, A]{}
	q.nodes = q.nodes[:n]
	if q.head == len(q.nodes) {
		q.nodes, q.head = q.nodes[:0], 0
	}
	delete(q.members, node.State)
	return node
}

// BreadthFirst returns a path with the fewest actions. Goals are detected as
// soon as they are generated.
func BreadthFirst[S comparable, A any](
	ctx context.Context,
	problem Problem[S, A],
	initial S,
	options ...Option,
) (Result[S, A], error) {
	return uninformed(ctx, StrategyBreadthFirst, problem, initial, options)
}

// DepthFirst explores the most recently discovered state first. It is
// complete on finite state spaces but the returned path need not be shortest.
func DepthFirst[S comparable, A any](
	ctx context.Context,
	problem Problem[S, A],
	initial S,
	options ...Option,
) (Result[S, A], error) {
	return uninformed(ctx, StrategyDepthFirst, problem, initial, options)
}

func uninformed[S comparable, A any](
	ctx context.Context,
	strategy Strategy,
	problem Problem[S, A],
	initial S,
	options []Option,
) (Result[S, A], error) {
	if problem == nil {
		return Result[S, A]{}, ErrNilProblem
	}
	r := newRun[S, A](strategy, options)
	if problem.IsGoal(initial) {
		return r.found(Node[S, A]{State: initial}), nil
	}

	breadthFirst := strategy == StrategyBreadthFirst
	frontier := newNodeQueue[S, A]()
	frontier.push(Node[S, A]{State: initial})
	r.observeFrontier(frontier.Len())

	for frontier.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return Result[S, A]{}, r.fail(err)
		}

		var node Node[S, A]
		if breadthFirst {
			node = frontier.popFront()
		} else {
			node = frontier.popBack()
			if problem.IsGoal(node.State) {
				return r.found(node), nil
			}
		}
		r.expand(node.State)

		actions, err := problem.Actions(node.State)
		if err != nil {
			return Result[S, A]{}, r.fail(err)
		}
		for _, action := range actions {
			child, err := problem.Successor(node.State, action)
			if err != nil {
				return Result[S, A]{}, r.fail(err)
			}
			r.result.Generated++
			if _, done := r.explored[child]; done || frontier.contains(child) {
				continue
			}
			childNode := Node[S, A]{State: child, Actions: internal.ExtendPath(node.Actions, action)}
			if breadthFirst && problem.IsGoal(child) {
				return r.found(childNode), nil
			}
			frontier.push(childNode)
		}
		r.observeFrontier(frontier.Len())
	}
	return r.finish(), nil
}
