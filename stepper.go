package search

import (
	"context"
	"fmt"

	"github.com/pdrpinto/search/internal"
)

// priorityFunc computes the frontier priority of a freshly generated node.
type priorityFunc[S comparable, A any] func(node Node[S, A]) float64

// StepSnapshot exposes the state of a search after one step.
type StepSnapshot[S comparable, A any] struct {
	Current   S
	Frontier  int
	Explored  int
	Done      bool
	Found     bool
	Actions   []A
	StepIndex int
}

// Stepper runs a priority-ordered search (UniformCost, GreedyBestFirst or
// AStar) one frontier pop at a time, for UIs and debugging tools. The
// strategy functions drive the same stepper to completion.
type Stepper[S comparable, A any] struct {
	problem  Problem[S, A]
	priority priorityFunc[S, A]
	frontier *Frontier[S, A]
	run      *run[S, A]

	result    Result[S, A]
	err       error
	current   S
	stepCount int
	done      bool
}

// NewStepper prepares a search without expanding anything. The heuristic is
// required for GreedyBestFirst and AStar and ignored for UniformCost.
// Other strategies return ErrNotSteppable.
func NewStepper[S comparable, A any](
	problem Problem[S, A],
	initial S,
	strategy Strategy,
	heuristic Heuristic[S, A],
	options ...Option,
) (*Stepper[S, A], error) {
	if problem == nil {
		return nil, ErrNilProblem
	}
	var priority priorityFunc[S, A]
	switch strategy {
	case StrategyUniformCost:
		priority = func(node Node[S, A]) float64 { return node.Cost }
	case StrategyGreedyBestFirst:
		if heuristic == nil {
			return nil, ErrNilHeuristic
		}
		priority = func(node Node[S, A]) float64 { return heuristic(problem, node.State) }
	case StrategyAStar:
		if heuristic == nil {
			return nil, ErrNilHeuristic
		}
		priority = func(node Node[S, A]) float64 { return node.Cost + heuristic(problem, node.State) }
	default:
		return nil, fmt.Errorf("%w: %s", ErrNotSteppable, strategy)
	}

	s := &Stepper[S, A]{
		problem:  problem,
		priority: priority,
		frontier: NewFrontier[S, A](),
		run:      newRun[S, A](strategy, options),
		current:  initial,
	}
	start := Node[S, A]{State: initial}
	if problem.IsGoal(initial) {
		s.complete(&start)
		return s, nil
	}
	if p := priority(start); pruned(p) {
		s.run.options.Logger.Debug("initial state pruned by heuristic", "strategy", string(strategy))
	} else {
		s.frontier.Push(start, p)
	}
	s.run.observeFrontier(s.frontier.Len())
	return s, nil
}

// Run steps until the search is done and returns its result.
func (s *Stepper[S, A]) Run(ctx context.Context) (Result[S, A], error) {
	for !s.done {
		if _, err := s.Step(ctx); err != nil {
			return Result[S, A]{}, err
		}
	}
	return s.result, s.err
}

// Result returns the outcome so far. It is final once a snapshot reports Done.
func (s *Stepper[S, A]) Result() Result[S, A] {
	if s.done {
		return s.result
	}
	return s.run.result
}

// Step pops one node from the frontier and, unless it is a goal, expands it.
// Goals are tested on expansion only, since a generated node is not yet known
// to be the cheapest way to its state. Once done, Step keeps returning the
// final snapshot and error.
func (s *Stepper[S, A]) Step(ctx context.Context) (StepSnapshot[S, A], error) {
	if s.done {
		return s.snapshot(), s.err
	}
	if err := ctx.Err(); err != nil {
		return s.abort(err)
	}

	entry, ok := s.frontier.PopMin()
	if !ok {
		s.complete(nil)
		return s.snapshot(), nil
	}
	s.stepCount++
	node := entry.Node
	s.current = node.State

	// Explored states are never queued and popped entries leave the
	// frontier, so every pop is a fresh state.
	if s.problem.IsGoal(node.State) {
		s.complete(&node)
		return s.snapshot(), nil
	}
	s.run.expand(node.State)

	actions, err := s.problem.Actions(node.State)
	if err != nil {
		return s.abort(err)
	}
	for _, action := range actions {
		child, err := s.problem.Successor(node.State, action)
		if err != nil {
			return s.abort(err)
		}
		s.run.result.Generated++
		if _, closed := s.run.explored[child]; closed {
			continue
		}
		childNode := Node[S, A]{
			State:   child,
			Actions: internal.ExtendPath(node.Actions, action),
			Cost:    node.Cost + s.problem.Cost(node.State, action),
		}
		p := s.priority(childNode)
		if pruned(p) {
			s.run.options.Logger.Debug("state pruned by heuristic", "strategy", string(s.run.strategy))
			continue
		}
		if recorded, queued := s.frontier.PeekCost(child); queued && p >= recorded {
			continue
		}
		s.frontier.DecreaseOrInsert(childNode, p)
	}
	s.run.observeFrontier(s.frontier.Len())
	return s.snapshot(), nil
}

func (s *Stepper[S, A]) complete(goal *Node[S, A]) {
	s.done = true
	if goal != nil {
		s.result = s.run.found(*goal)
		return
	}
	s.result = s.run.finish()
}

func (s *Stepper[S, A]) abort(err error) (StepSnapshot[S, A], error) {
	s.done = true
	s.err = s.run.fail(err)
	return s.snapshot(), s.err
}

func (s *Stepper[S, A]) snapshot() StepSnapshot[S, A] {
	return StepSnapshot[S, A]{
		Current:   s.current,
		Frontier:  s.frontier.Len(),
		Explored:  len(s.run.explored),
		Done:      s.done,
		Found:     s.result.Found,
		Actions:   s.result.Actions,
		StepIndex: s.stepCount,
	}
}
