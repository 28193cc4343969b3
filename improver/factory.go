package improver

import (
	"fmt"

	"github.com/katalvlaran/lvsolve/config"
	"github.com/katalvlaran/lvsolve/neighborhood"
	"github.com/katalvlaran/lvsolve/objective"
)

// FromConfig builds the local improver named by cfg.Kind. An empty kind
// selects fallback. cfg.Workers > 0 is applied before opts.
func FromConfig[S any](cfg config.Improver, fallback string, nb neighborhood.Neighborhood[S], obj *objective.Objective[S], opts ...Option) (LocalImprover[S], error) {
	kind := cfg.Kind
	if kind == "" {
		kind = fallback
	}
	if cfg.Workers > 0 {
		opts = append([]Option{WithWorkers(cfg.Workers)}, opts...)
	}
	if cfg.Depth < 0 || cfg.Width < 0 {
		return nil, fmt.Errorf("improver: depth %d, width %d: %w", cfg.Depth, cfg.Width, config.ErrInvalidConfig)
	}

	switch kind {
	case config.ImproverMinimizer:
		return NewMinimizer(nb, obj, opts...), nil
	case config.ImproverTakeFirst:
		return NewTakeFirst(nb, obj, opts...), nil
	case config.ImproverTakeFirstRecursion:
		if cfg.Width < 1 {
			return nil, fmt.Errorf("improver: %s needs width >= 1: %w", kind, config.ErrInvalidConfig)
		}
		return NewTakeFirstRecursion(cfg.Depth, cfg.Width, nb, obj, opts...), nil
	case config.ImproverParallelMinimizer:
		return NewParallelMinimizer(nb, obj, opts...), nil
	case config.ImproverTakeAnyRecursion:
		return NewTakeAnyParallelRecursion(cfg.Depth, cfg.Width, nb, obj, opts...), nil
	}
	return nil, fmt.Errorf("%w: %q is not a local improver", ErrUnknownImprover, kind)
}

// TabuFromConfig builds the tabu improver named by cfg.Kind. An empty kind
// selects fallback.
func TabuFromConfig[S, T any](cfg config.Improver, fallback string, nb neighborhood.TabuNeighborhood[S, T], obj *objective.Objective[S], opts ...Option) (TabuImprover[S, T], error) {
	kind := cfg.Kind
	if kind == "" {
		kind = fallback
	}
	if cfg.Workers > 0 {
		opts = append([]Option{WithWorkers(cfg.Workers)}, opts...)
	}

	switch kind {
	case config.ImproverTabuMinimizer:
		return NewTabuMinimizer(nb, obj, opts...), nil
	case config.ImproverParallelTabuMinimizer:
		return NewParallelTabuMinimizer(nb, obj, opts...), nil
	}
	return nil, fmt.Errorf("%w: %q is not a tabu improver", ErrUnknownImprover, kind)
}
