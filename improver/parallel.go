package improver

import (
	"context"
	"errors"
	"iter"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvsolve/neighborhood"
	"github.com/katalvlaran/lvsolve/objective"
)

// errStop ends a parallel scan early; it never escapes the package.
var errStop = errors.New("improver: scan stopped")

type indexed[E any] struct {
	idx  int
	elem E
}

// scanParallel feeds seq to workers goroutines. visit runs on worker w for
// the idx-th element of seq; returning false stops the whole scan. The
// sequence itself is consumed by a single producer goroutine, so it needs no
// internal synchronization. scanParallel returns once every goroutine exited.
func scanParallel[E any](ctx context.Context, seq iter.Seq[E], workers int, visit func(w, idx int, e E) bool) {
	g, gctx := errgroup.WithContext(ctx)
	jobs := make(chan indexed[E], workers)

	g.Go(func() error {
		defer close(jobs)
		var idx int
		for e := range seq {
			select {
			case jobs <- indexed[E]{idx: idx, elem: e}:
			case <-gctx.Done():
				return nil
			}
			idx++
		}
		return nil
	})

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for j := range jobs {
				if gctx.Err() != nil {
					return nil
				}
				if !visit(w, j.idx, j.elem) {
					return errStop
				}
			}
			return nil
		})
	}
	_ = g.Wait() // only errStop can surface
}

// candidate is a per-worker running minimum. Ties resolve to the lowest
// neighborhood index, which makes the parallel reduction match a sequential
// first-minimum scan.
type candidate[S, X any] struct {
	ev    objective.EvaluatedSolution[S]
	idx   int
	extra X
	ok    bool
}

func (c *candidate[S, X]) offer(ev objective.EvaluatedSolution[S], idx int, extra X) {
	if c.ok {
		cmp := ev.Compare(c.ev)
		if cmp > 0 || (cmp == 0 && idx > c.idx) {
			return
		}
	}
	*c = candidate[S, X]{ev: ev, idx: idx, extra: extra, ok: true}
}

func reduce[S, X any](cs []candidate[S, X]) candidate[S, X] {
	var best candidate[S, X]
	for _, c := range cs {
		if c.ok {
			best.offer(c.ev, c.idx, c.extra)
		}
	}
	return best
}

// ParallelMinimizer evaluates the neighborhood on several goroutines and
// returns the same neighbor Minimizer would.
type ParallelMinimizer[S any] struct {
	nb  neighborhood.Neighborhood[S]
	obj *objective.Objective[S]
	settings
}

// NewParallelMinimizer returns a concurrent best-improvement strategy.
func NewParallelMinimizer[S any](nb neighborhood.Neighborhood[S], obj *objective.Objective[S], opts ...Option) *ParallelMinimizer[S] {
	return &ParallelMinimizer[S]{nb: nb, obj: obj, settings: resolve(nameParallelMinimizer, opts)}
}

// Improve implements LocalImprover.
func (p *ParallelMinimizer[S]) Improve(ctx context.Context, current objective.EvaluatedSolution[S]) (objective.EvaluatedSolution[S], bool) {
	var (
		bests = make([]candidate[S, struct{}], p.workers)
		seen  atomic.Int64
	)
	scanParallel(ctx, p.nb.NeighborsOf(current.Solution()), p.workers, func(w, idx int, s S) bool {
		bests[w].offer(p.obj.Evaluate(s), idx, struct{}{})
		seen.Add(1)
		return true
	})

	n := int(seen.Load())
	if n == 0 {
		p.logger.Warn("no neighbor available")
	}
	best := reduce(bests)
	found := ctx.Err() == nil && best.ok && best.ev.Less(current)
	recordOutcome(nameParallelMinimizer, n, n > 0, found)
	if !found {
		return objective.EvaluatedSolution[S]{}, false
	}
	return best.ev, true
}
