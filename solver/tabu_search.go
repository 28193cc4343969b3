package solver

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/lvsolve/improver"
	"github.com/katalvlaran/lvsolve/neighborhood"
	"github.com/katalvlaran/lvsolve/objective"
)

// DefaultTabuListSize is used by DefaultTabuSearchOptions.
const DefaultTabuListSize = 20

// TabuSearchOptions configures TabuSearch. At least one of
// NoImprovementLimit, Limits.TimeLimit and Limits.IterationLimit must be set.
type TabuSearchOptions[S, T any] struct {
	Options[S]
	// Improver defaults to a TabuMinimizer (ParallelTabuMinimizer for the parallel variant).
	Improver improver.TabuImprover[S, T]
	// TabuListSize bounds the FIFO of remembered tokens.
	TabuListSize int
	// NoImprovementLimit stops the search after that many consecutive
	// iterations without a new best solution; zero is unset.
	NoImprovementLimit int
}

// DefaultTabuSearchOptions returns options with DefaultTabuListSize and no
// termination criterion; callers must set one.
func DefaultTabuSearchOptions[S, T any]() TabuSearchOptions[S, T] {
	return TabuSearchOptions[S, T]{TabuListSize: DefaultTabuListSize}
}

// TabuSearch always moves to the best permitted neighbor, even a worse one,
// and returns the best solution seen.
type TabuSearch[S, T any] struct {
	name string
	obj  *objective.Objective[S]
	imp  improver.TabuImprover[S, T]
	opts TabuSearchOptions[S, T]
}

// NewTabuSearch validates opts; it fails with ErrNoTermination when no
// termination criterion is configured.
func NewTabuSearch[S, T any](nb neighborhood.TabuNeighborhood[S, T], obj *objective.Objective[S], opts TabuSearchOptions[S, T]) (*TabuSearch[S, T], error) {
	if opts.Improver == nil {
		opts.Improver = improver.NewTabuMinimizer(nb, obj, opts.ImproverOptions()...)
	}
	return newTabuSearch(nameTabuSearch, obj, opts)
}

// NewParallelTabuSearch is NewTabuSearch with a ParallelTabuMinimizer default.
func NewParallelTabuSearch[S, T any](nb neighborhood.TabuNeighborhood[S, T], obj *objective.Objective[S], opts TabuSearchOptions[S, T]) (*TabuSearch[S, T], error) {
	if opts.Improver == nil {
		opts.Improver = improver.NewParallelTabuMinimizer(nb, obj, opts.ImproverOptions()...)
	}
	return newTabuSearch(nameParallelTabuSearch, obj, opts)
}

func newTabuSearch[S, T any](name string, obj *objective.Objective[S], opts TabuSearchOptions[S, T]) (*TabuSearch[S, T], error) {
	if obj == nil {
		return nil, fmt.Errorf("%s: nil objective: %w", name, ErrInvalidOptions)
	}
	if err := opts.Limits.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if opts.TabuListSize < 0 || opts.NoImprovementLimit < 0 {
		return nil, fmt.Errorf("%s: TabuListSize %d, NoImprovementLimit %d: %w",
			name, opts.TabuListSize, opts.NoImprovementLimit, ErrInvalidOptions)
	}
	if opts.NoImprovementLimit == 0 && !opts.Limits.set() {
		return nil, fmt.Errorf("%s: %w", name, ErrNoTermination)
	}
	return &TabuSearch[S, T]{name: name, obj: obj, imp: opts.Improver, opts: opts}, nil
}

// Solve returns the best solution seen, not the last one visited.
func (t *TabuSearch[S, T]) Solve(ctx context.Context, initial S) objective.EvaluatedSolution[S] {
	var (
		r       = begin(ctx, t.name, &t.opts.Options, t.obj)
		tabus   = neighborhood.NewTabuList[T](t.opts.TabuListSize)
		current = t.obj.Evaluate(initial)
		best    = current
		stale   int
		reason  StopReason
	)
	for {
		if !r.next() {
			reason = StopCancelled
			break
		}
		t0 := time.Now()
		next, tokens, ok := t.imp.Improve(r.ctx, current, tabus.Items())
		r.timed(t0)
		if !ok {
			reason = r.failed(StopNoCandidate)
			if reason == StopNoCandidate {
				// every move forbidden or none exists: treated as convergence
				r.logger.Warn("no permitted move", slog.Int("iteration", r.iteration), slog.Int("tabu_len", tabus.Len()))
			}
			break
		}
		tabus.Push(tokens...)
		prev := current
		current = next
		if current.Less(best) {
			best = current
			stale = 0
		} else {
			stale++
		}
		r.step(Step[S]{Current: current, Previous: &prev})

		if t.opts.NoImprovementLimit > 0 && stale >= t.opts.NoImprovementLimit {
			reason = StopNoImprovementLimit
			break
		}
		if why, stop := r.limitReached(); stop {
			reason = why
			break
		}
	}
	r.end(reason, best)
	return best
}
