package improver

import (
	"context"
	"iter"
	"sync/atomic"

	"github.com/katalvlaran/lvsolve/neighborhood"
	"github.com/katalvlaran/lvsolve/objective"
)

// TabuMinimizer returns the best permitted neighbor together with the tabu
// tokens of its move, even when it is worse than the current solution.
type TabuMinimizer[S, T any] struct {
	nb  neighborhood.TabuNeighborhood[S, T]
	obj *objective.Objective[S]
	settings
}

// NewTabuMinimizer returns the sequential tabu strategy.
func NewTabuMinimizer[S, T any](nb neighborhood.TabuNeighborhood[S, T], obj *objective.Objective[S], opts ...Option) *TabuMinimizer[S, T] {
	return &TabuMinimizer[S, T]{nb: nb, obj: obj, settings: resolve(nameTabuMinimizer, opts)}
}

// Improve implements TabuImprover.
func (m *TabuMinimizer[S, T]) Improve(ctx context.Context, current objective.EvaluatedSolution[S], tabus []T) (objective.EvaluatedSolution[S], []T, bool) {
	var (
		best candidate[S, []T]
		idx  int
	)
	for s, tokens := range m.nb.NeighborsOf(current.Solution(), tabus) {
		if ctx.Err() != nil {
			return objective.EvaluatedSolution[S]{}, nil, false
		}
		best.offer(m.obj.Evaluate(s), idx, tokens)
		idx++
	}
	return finishTabu(m.settings, nameTabuMinimizer, idx, best)
}

// ParallelTabuMinimizer evaluates permitted neighbors on several goroutines
// and returns the same move TabuMinimizer would.
type ParallelTabuMinimizer[S, T any] struct {
	nb  neighborhood.TabuNeighborhood[S, T]
	obj *objective.Objective[S]
	settings
}

// NewParallelTabuMinimizer returns the concurrent tabu strategy.
func NewParallelTabuMinimizer[S, T any](nb neighborhood.TabuNeighborhood[S, T], obj *objective.Objective[S], opts ...Option) *ParallelTabuMinimizer[S, T] {
	return &ParallelTabuMinimizer[S, T]{nb: nb, obj: obj, settings: resolve(nameParallelTabuMinimizer, opts)}
}

type tabuMove[S, T any] struct {
	solution S
	tokens   []T
}

func moves[S, T any](seq iter.Seq2[S, []T]) iter.Seq[tabuMove[S, T]] {
	return func(yield func(tabuMove[S, T]) bool) {
		for s, tokens := range seq {
			if !yield(tabuMove[S, T]{solution: s, tokens: tokens}) {
				return
			}
		}
	}
}

// Improve implements TabuImprover.
func (p *ParallelTabuMinimizer[S, T]) Improve(ctx context.Context, current objective.EvaluatedSolution[S], tabus []T) (objective.EvaluatedSolution[S], []T, bool) {
	var (
		bests = make([]candidate[S, []T], p.workers)
		seen  atomic.Int64
	)
	scanParallel(ctx, moves(p.nb.NeighborsOf(current.Solution(), tabus)), p.workers, func(w, idx int, m tabuMove[S, T]) bool {
		bests[w].offer(p.obj.Evaluate(m.solution), idx, m.tokens)
		seen.Add(1)
		return true
	})
	if ctx.Err() != nil {
		return objective.EvaluatedSolution[S]{}, nil, false
	}
	return finishTabu(p.settings, nameParallelTabuMinimizer, int(seen.Load()), reduce(bests))
}

func finishTabu[S, T any](s settings, name string, n int, best candidate[S, []T]) (objective.EvaluatedSolution[S], []T, bool) {
	recordOutcome(name, n, n > 0, best.ok)
	if !best.ok {
		s.logger.Warn("no permitted neighbor available")
		return objective.EvaluatedSolution[S]{}, nil, false
	}
	return best.ev, best.extra, true
}
