package search

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

var (
	// ErrNilProblem is returned when a strategy is called without a problem.
	ErrNilProblem = errors.New("search: nil problem")
	// ErrNilHeuristic is returned by the informed strategies when no heuristic is given.
	ErrNilHeuristic = errors.New("search: nil heuristic")
	// ErrUnknownStrategy is returned by ParseStrategy.
	ErrUnknownStrategy = errors.New("search: unknown strategy")
	// ErrNotSteppable is returned by NewStepper for strategies without a priority frontier.
	ErrNotSteppable = errors.New("search: strategy cannot be stepped")
)

// Strategy names a search algorithm.
type Strategy string

const (
	StrategyBreadthFirst    Strategy = "breadth-first"
	StrategyDepthFirst      Strategy = "depth-first"
	StrategyUniformCost     Strategy = "uniform-cost"
	StrategyGreedyBestFirst Strategy = "greedy-best-first"
	StrategyAStar           Strategy = "astar"
)

// Strategies lists every strategy in a stable order.
func Strategies() []Strategy {
	return []Strategy{
		StrategyBreadthFirst,
		StrategyDepthFirst,
		StrategyUniformCost,
		StrategyGreedyBestFirst,
		StrategyAStar,
	}
}

var strategyAliases = map[string]Strategy{
	"bfs":    StrategyBreadthFirst,
	"dfs":    StrategyDepthFirst,
	"ucs":    StrategyUniformCost,
	"greedy": StrategyGreedyBestFirst,
	"gbfs":   StrategyGreedyBestFirst,
	"a*":     StrategyAStar,
}

// ParseStrategy accepts a strategy name or one of its short aliases (bfs, dfs,
// ucs, greedy, astar), case-insensitively.
func ParseStrategy(name string) (Strategy, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if s, ok := strategyAliases[key]; ok {
		return s, nil
	}
	for _, s := range Strategies() {
		if string(s) == key {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Informed reports whether the strategy needs a heuristic.
func (s Strategy) Informed() bool {
	return s == StrategyGreedyBestFirst || s == StrategyAStar
}

// Result contains the outcome of a search.
//
// Found is false when the frontier was exhausted without reaching a goal.
// When Found is true, Actions leads from the initial state to a goal and is
// empty (but not nil) if the initial state already is one.
type Result[S comparable, A any] struct {
	Actions []A
	// Cost is the accumulated action cost. BreadthFirst and DepthFirst leave it at 0.
	Cost        float64
	Expanded    int
	Generated   int
	MaxFrontier int
	Found       bool
	// Explored lists expanded states in expansion order; only filled with WithExploredTrace.
	Explored []S
}

// Options defines parameters for the search.
type Options struct {
	Logger       *slog.Logger
	TraceExplore bool
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithLogger sets the logger used for debug records. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(options *Options) { options.Logger = logger }
}

// WithExploredTrace records every expanded state in Result.Explored.
func WithExploredTrace() Option {
	return func(options *Options) { options.TraceExplore = true }
}

func applyOptions(options []Option) Options {
	searchOptions := Options{}
	for _, option := range options {
		option(&searchOptions)
	}
	if searchOptions.Logger == nil {
		searchOptions.Logger = slog.Default()
	}
	return searchOptions
}

// run holds the per-call bookkeeping shared by every strategy.
type run[S comparable, A any] struct {
	strategy Strategy
	options  Options
	explored map[S]struct{}
	result   Result[S, A]
}

func newRun[S comparable, A any](strategy Strategy, options []Option) *run[S, A] {
	r := &run[S, A]{
		strategy: strategy,
		options:  applyOptions(options),
		explored: make(map[S]struct{}),
	}
	r.options.Logger.Debug("search started", "strategy", string(strategy))
	return r
}

func (r *run[S, A]) expand(state S) {
	r.explored[state] = struct{}{}
	r.result.Expanded++
	if r.options.TraceExplore {
		r.result.Explored = append(r.result.Explored, state)
	}
}

func (r *run[S, A]) observeFrontier(size int) {
	if size > r.result.MaxFrontier {
		r.result.MaxFrontier = size
	}
}

func (r *run[S, A]) found(node Node[S, A]) Result[S, A] {
	r.result.Found = true
	r.result.Actions = node.Actions
	if r.result.Actions == nil {
		r.result.Actions = []A{}
	}
	r.result.Cost = node.Cost
	return r.finish()
}

// fail reports a domain or context error. The error is passed through unchanged.
func (r *run[S, A]) fail(err error) error {
	r.options.Logger.Debug("search aborted",
		"strategy", string(r.strategy),
		"expanded", r.result.Expanded,
		"error", err,
	)
	return err
}

func (r *run[S, A]) finish() Result[S, A] {
	r.options.Logger.Debug("search finished",
		"strategy", string(r.strategy),
		"found", r.result.Found,
		"expanded", r.result.Expanded,
		"generated", r.result.Generated,
		"max_frontier", r.result.MaxFrontier,
		"cost", r.result.Cost,
	)
	return r.result
}
