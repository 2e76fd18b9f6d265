package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/pdrpinto/search"
	"github.com/pdrpinto/search/domain/geom"
	"github.com/pdrpinto/search/domain/grid"
	"github.com/pdrpinto/search/domain/parking"
	"github.com/pdrpinto/search/internal/config"
)

// report is what solve prints, in text or YAML.
type report struct {
	Domain      string   `yaml:"domain"`
	Layout      string   `yaml:"layout"`
	Strategy    string   `yaml:"strategy"`
	Found       bool     `yaml:"found"`
	Actions     []string `yaml:"actions"`
	Cost        float64  `yaml:"cost"`
	Expanded    int      `yaml:"expanded"`
	Generated   int      `yaml:"generated"`
	MaxFrontier int      `yaml:"max_frontier"`
	Explored    []string `yaml:"explored,omitempty"`
}

func newSolveCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve <layout-file>",
		Short: "Solve a puzzle layout",
		Long: `Parse a layout file for the selected domain and search it.

Domains:
  grid     '#' wall, '.' floor, 'S' start, 'G' goal
  parking  '#' wall, '.' passage, 'A'-'J' cars, '0'-'9' slots

A layout without a solution is reported with found: false.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			logger := cfg.NewLogger(cmd.ErrOrStderr())
			rep, err := solve(cmd.Context(), cfg, args[0], logger)
			if err != nil {
				return err
			}
			return writeReport(cmd.OutOrStdout(), cfg.Search.Output, rep)
		},
	}

	cmd.Flags().String("domain", "grid", "puzzle domain (grid, parking)")
	cmd.Flags().String("strategy", string(search.StrategyAStar), "search strategy (bfs, dfs, ucs, greedy, astar)")
	cmd.Flags().String("heuristic", "default", "heuristic for greedy and astar (default, zero)")
	cmd.Flags().StringP("output", "o", "text", "output format (text, yaml)")
	cmd.Flags().Bool("trace", false, "report every expanded state")
	cmd.Flags().Duration("timeout", 0, "abandon the search after this long (0 = no limit)")

	v.BindPFlag("search.domain", cmd.Flags().Lookup("domain"))
	v.BindPFlag("search.strategy", cmd.Flags().Lookup("strategy"))
	v.BindPFlag("search.heuristic", cmd.Flags().Lookup("heuristic"))
	v.BindPFlag("search.output", cmd.Flags().Lookup("output"))
	v.BindPFlag("search.trace", cmd.Flags().Lookup("trace"))
	v.BindPFlag("search.timeout", cmd.Flags().Lookup("timeout"))

	return cmd
}

func solve(ctx context.Context, cfg *config.Config, path string, logger *slog.Logger) (report, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.Search.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Search.Timeout)
		defer cancel()
	}

	strategy := cfg.Strategy()
	opts := []search.Option{search.WithLogger(logger)}
	if cfg.Search.Trace {
		opts = append(opts, search.WithExploredTrace())
	}
	zero := strings.EqualFold(cfg.Search.Heuristic, "zero")

	logger.Info("solving", "domain", cfg.Search.Domain, "strategy", string(strategy), "layout", path)

	var (
		rep report
		err error
	)
	switch strings.ToLower(cfg.Search.Domain) {
	case "grid":
		var p *grid.Problem
		if p, err = grid.ParseFile(path); err != nil {
			return report{}, err
		}
		heuristic := search.Heuristic[geom.Point, geom.Direction](grid.Manhattan)
		if zero {
			heuristic = search.ZeroHeuristic[geom.Point, geom.Direction]()
		}
		rep, err = runStrategy(ctx, strategy, p, heuristic, opts...)
	case "parking":
		var p *parking.Problem
		if p, err = parking.ParseFile(path); err != nil {
			return report{}, err
		}
		heuristic := search.Heuristic[parking.State, parking.Action](parking.WeightedDistance)
		if zero {
			heuristic = search.ZeroHeuristic[parking.State, parking.Action]()
		}
		rep, err = runStrategy(ctx, strategy, p, heuristic, opts...)
	default:
		return report{}, fmt.Errorf("unknown domain %q", cfg.Search.Domain)
	}
	if err != nil {
		return report{}, fmt.Errorf("search %s: %w", path, err)
	}
	rep.Domain = strings.ToLower(cfg.Search.Domain)
	rep.Layout = path

	logger.Info("solved",
		"found", rep.Found,
		"actions", len(rep.Actions),
		"cost", rep.Cost,
		"expanded", rep.Expanded,
	)
	return rep, nil
}

// runStrategy dispatches to one search function and flattens its result.
func runStrategy[S comparable, A fmt.Stringer](
	ctx context.Context,
	strategy search.Strategy,
	problem search.Problem[S, A],
	heuristic search.Heuristic[S, A],
	opts ...search.Option,
) (report, error) {
	initial := problem.InitialState()

	var (
		result search.Result[S, A]
		err    error
	)
	switch strategy {
	case search.StrategyBreadthFirst:
		result, err = search.BreadthFirst(ctx, problem, initial, opts...)
	case search.StrategyDepthFirst:
		result, err = search.DepthFirst(ctx, problem, initial, opts...)
	case search.StrategyUniformCost:
		result, err = search.UniformCost(ctx, problem, initial, opts...)
	case search.StrategyGreedyBestFirst:
		result, err = search.GreedyBestFirst(ctx, problem, initial, search.Memoize(heuristic), opts...)
	case search.StrategyAStar:
		result, err = search.AStar(ctx, problem, initial, search.Memoize(heuristic), opts...)
	default:
		return report{}, fmt.Errorf("%w: %q", search.ErrUnknownStrategy, strategy)
	}
	if err != nil {
		return report{}, err
	}

	rep := report{
		Strategy:    string(strategy),
		Found:       result.Found,
		Actions:     make([]string, 0, len(result.Actions)),
		Cost:        result.Cost,
		Expanded:    result.Expanded,
		Generated:   result.Generated,
		MaxFrontier: result.MaxFrontier,
	}
	for _, a := range result.Actions {
		rep.Actions = append(rep.Actions, a.String())
	}
	for _, s := range result.Explored {
		rep.Explored = append(rep.Explored, fmt.Sprint(s))
	}
	return rep, nil
}

func writeReport(w io.Writer, format string, rep report) error {
	if strings.EqualFold(format, "yaml") {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		return enc.Close()
	}

	fmt.Fprintf(w, "domain:       %s\n", rep.Domain)
	fmt.Fprintf(w, "layout:       %s\n", rep.Layout)
	fmt.Fprintf(w, "strategy:     %s\n", rep.Strategy)
	if !rep.Found {
		fmt.Fprintln(w, "result:       no solution")
	} else if len(rep.Actions) == 0 {
		fmt.Fprintln(w, "result:       already solved")
	} else {
		fmt.Fprintf(w, "result:       %d actions\n", len(rep.Actions))
		fmt.Fprintf(w, "actions:      %s\n", strings.Join(rep.Actions, " "))
	}
	fmt.Fprintf(w, "cost:         %g\n", rep.Cost)
	fmt.Fprintf(w, "expanded:     %d\n", rep.Expanded)
	fmt.Fprintf(w, "generated:    %d\n", rep.Generated)
	fmt.Fprintf(w, "max frontier: %d\n", rep.MaxFrontier)
	if len(rep.Explored) > 0 {
		fmt.Fprintf(w, "explored:     %s\n", strings.Join(rep.Explored, " "))
	}
	return nil
}
