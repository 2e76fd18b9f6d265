package search

import "context"

// UniformCost returns a path of minimal accumulated cost, provided every
// action cost is non-negative.
func UniformCost[S comparable, A any](
	ctx context.Context,
	problem Problem[S, A],
	initial S,
	options ...Option,
) (Result[S, A], error) {
	return runToCompletion(ctx, problem, initial, StrategyUniformCost, nil, options)
}

// GreedyBestFirst always expands the state the heuristic rates closest to a
// goal. It is fast on well-guided problems but not optimal.
func GreedyBestFirst[S comparable, A any](
	ctx context.Context,
	problem Problem[S, A],
	initial S,
	heuristic Heuristic[S, A],
	options ...Option,
) (Result[S, A], error) {
	return runToCompletion(ctx, problem, initial, StrategyGreedyBestFirst, heuristic, options)
}

// AStar orders the frontier by accumulated cost plus heuristic estimate.
// With an admissible and consistent heuristic the first goal expanded is
// reached by an optimal path.
func AStar[S comparable, A any](
	ctx context.Context,
	problem Problem[S, A],
	initial S,
	heuristic Heuristic[S, A],
	options ...Option,
) (Result[S, A], error) {
	return runToCompletion(ctx, problem, initial, StrategyAStar, heuristic, options)
}

func runToCompletion[S comparable, A any](
	ctx context.Context,
	problem Problem[S, A],
	initial S,
	strategy Strategy,
	heuristic Heuristic[S, A],
	options []Option,
) (Result[S, A], error) {
	stepper, err := NewStepper(problem, initial, strategy, heuristic, options...)
	if err != nil {
		return Result[S, A]{}, err
	}
	return stepper.Run(ctx)
}
