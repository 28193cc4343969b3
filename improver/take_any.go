package improver

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvsolve/neighborhood"
	"github.com/katalvlaran/lvsolve/objective"
)

// TakeAnyParallelRecursion races one worker per frontier solution. Each
// worker scans its neighborhood concurrently and reports any neighbor that is
// strictly better than the original value. The first report cancels every
// other worker; when several arrive, the best one is returned. When no worker
// succeeds, their candidate pools are merged (distinct values)
// into the next frontier, up to depth recursion levels. The width bounds
// each worker's buffer, not the merged frontier.
//
// The result is not deterministic when more than one improving neighbor
// exists.
type TakeAnyParallelRecursion[S any] struct {
	nb    neighborhood.Neighborhood[S]
	obj   *objective.Objective[S]
	depth int
	width int
	settings
}

// TakeAnyRecursion is the racing recursive improver under its short name.
type TakeAnyRecursion[S any] = TakeAnyParallelRecursion[S]

// NewTakeAnyParallelRecursion panics if depth < 0 or width < 0.
// width 0 keeps every distinct candidate between levels.
func NewTakeAnyParallelRecursion[S any](depth, width int, nb neighborhood.Neighborhood[S], obj *objective.Objective[S], opts ...Option) *TakeAnyParallelRecursion[S] {
	if depth < 0 || width < 0 {
		panic(fmt.Sprintf("improver: NewTakeAnyParallelRecursion(depth=%d, width=%d)", depth, width))
	}
	return &TakeAnyParallelRecursion[S]{nb: nb, obj: obj, depth: depth, width: width, settings: resolve(nameTakeAnyRecursion, opts)}
}

// NewTakeAnyRecursion is NewTakeAnyParallelRecursion.
func NewTakeAnyRecursion[S any](depth, width int, nb neighborhood.Neighborhood[S], obj *objective.Objective[S], opts ...Option) *TakeAnyRecursion[S] {
	return NewTakeAnyParallelRecursion(depth, width, nb, obj, opts...)
}

// raceReport is what one worker, or the coordinator for a whole level, hands back.
type raceReport[S any] struct {
	found bool
	best  objective.EvaluatedSolution[S]
	pool  []objective.EvaluatedSolution[S]
}

// Improve implements LocalImprover.
func (t *TakeAnyParallelRecursion[S]) Improve(ctx context.Context, current objective.EvaluatedSolution[S]) (objective.EvaluatedSolution[S], bool) {
	var (
		toBeat   = current.Value()
		frontier = []objective.EvaluatedSolution[S]{current}
		span     = trace.SpanFromContext(ctx)
		seen     atomic.Int64
		level    int
	)
	for level = 0; ; level++ {
		rep := t.race(ctx, frontier, toBeat, level < t.depth, &seen)
		span.AddEvent("take_any.level", trace.WithAttributes(
			attribute.Int("level", level),
			attribute.Int("frontier", len(frontier)),
			attribute.Bool("found", rep.found),
		))
		if rep.found {
			recordOutcome(nameTakeAnyRecursion, int(seen.Load()), true, true)
			return rep.best, true
		}
		if level >= t.depth || ctx.Err() != nil || len(rep.pool) == 0 {
			break
		}
		recursionsTotal.WithLabelValues(nameTakeAnyRecursion).Inc()
		t.logger.Debug("recursing", slog.Int("level", level+1), slog.Int("frontier", len(rep.pool)))
		frontier = rep.pool
	}

	n := int(seen.Load())
	if n == 0 {
		t.logger.Warn("no neighbor available")
	}
	recordOutcome(nameTakeAnyRecursion, n, n > 0, false)
	return objective.EvaluatedSolution[S]{}, false
}

// race runs one level: a worker per frontier member, a private cancel channel
// per worker, a shared report channel. It joins every worker before returning.
func (t *TakeAnyParallelRecursion[S]) race(ctx context.Context, frontier []objective.EvaluatedSolution[S], toBeat objective.ObjectiveValue, keep bool, seen *atomic.Int64) raceReport[S] {
	var (
		n       = len(frontier)
		inner   = max(1, t.workers/n)
		cancels = make([]chan struct{}, n)
		reports = make(chan raceReport[S], n)
		g       errgroup.Group
	)
	for i, f := range frontier {
		cancels[i] = make(chan struct{})
		g.Go(func() error {
			reports <- t.work(ctx, f, toBeat, keep, inner, cancels[i], seen)
			return nil
		})
	}

	var (
		out       raceReport[S]
		merged    = newPool[S](0)
		cancelled bool
		i         int
	)
	for i = 0; i < n; i++ {
		r := <-reports
		if r.found {
			if !cancelled {
				for _, c := range cancels {
					close(c)
				}
				cancelled = true
			}
			if !out.found || r.best.Less(out.best) {
				out.found, out.best = true, r.best
			}
			continue
		}
		if !cancelled {
			merged.merge(r.pool)
		}
	}
	_ = g.Wait()

	if !out.found {
		out.pool = merged.solutions()
	}
	return out
}

// work scans the neighborhood of from until it finds a neighbor better than
// toBeat, the neighborhood is exhausted, or cancel is closed.
func (t *TakeAnyParallelRecursion[S]) work(ctx context.Context, from objective.EvaluatedSolution[S], toBeat objective.ObjectiveValue, keep bool, workers int, cancel <-chan struct{}, seen *atomic.Int64) raceReport[S] {
	var (
		mu  sync.Mutex
		buf = newPool[S](t.width)
		rep raceReport[S]
	)
	scanParallel(ctx, t.nb.NeighborsOf(from.Solution()), workers, func(_, _ int, s S) bool {
		select {
		case <-cancel:
			return false
		default:
		}
		ev := t.obj.Evaluate(s)
		seen.Add(1)
		if ev.Value().Less(toBeat) {
			mu.Lock()
			if !rep.found || ev.Less(rep.best) {
				rep.found, rep.best = true, ev
			}
			mu.Unlock()
			return false
		}
		if keep {
			mu.Lock()
			buf.insert(ev)
			mu.Unlock()
		}
		return true
	})
	if !rep.found {
		rep.pool = buf.solutions()
	}
	return rep
}
