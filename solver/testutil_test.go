// Package solver_test holds black-box tests of the solvers. The helpers
// build small problems whose trajectories are known step by step.
package solver_test

import (
	"iter"
	"slices"
	"sync"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/katalvlaran/lvsolve/neighborhood"
	"github.com/katalvlaran/lvsolve/objective"
	"github.com/katalvlaran/lvsolve/solver"
)

// -----------------------------------------------------------------------------
// Vector problem: make a length-10 vector a permutation of 0..9 while keeping
// neighboring entries close.
// -----------------------------------------------------------------------------

type vector []int64

// permutationViolation is Σ_i |count(i) - 1|.
var permutationViolation = objective.IndicatorFunc("PermutationViolation", func(v vector) objective.BaseValue {
	var sum int64
	for i := range v {
		var c int64
		for _, x := range v {
			if x == int64(i) {
				c++
			}
		}
		if c -= 1; c < 0 {
			c = -c
		}
		sum += c
	}
	return objective.Integer(sum)
})

// squaredDifference is Σ_i (v[i] - v[i+1 mod n])².
var squaredDifference = objective.IndicatorFunc("SquaredDifference", func(v vector) objective.BaseValue {
	var sum int64
	for i := range v {
		d := v[i] - v[(i+1)%len(v)]
		sum += d * d
	}
	return objective.Integer(sum)
})

func vectorObjective() *objective.Objective[vector] {
	return objective.NewSingleIndicatorPerLevel(permutationViolation, squaredDifference)
}

// changeThenSwap yields every single-entry change to 0..9, then every swap
// of two positions (including a position with itself).
var changeThenSwap = neighborhood.Func[vector](func(v vector) iter.Seq[vector] {
	return func(yield func(vector) bool) {
		for i := range v {
			for x := int64(0); x < 10; x++ {
				next := slices.Clone(v)
				next[i] = x
				if !yield(next) {
					return
				}
			}
		}
		for i := range v {
			for j := range v {
				next := slices.Clone(v)
				next[i], next[j] = next[j], next[i]
				if !yield(next) {
					return
				}
			}
		}
	}
})

// -----------------------------------------------------------------------------
// Integer line: neighbors {x-1, x+1}, objective |x - 3|.
// -----------------------------------------------------------------------------

var line = neighborhood.Func[int](func(x int) iter.Seq[int] {
	return func(yield func(int) bool) {
		_ = yield(x-1) && yield(x+1)
	}
})

func distTo(target int) *objective.Objective[int] {
	return objective.NewSingleIndicator(objective.IndicatorFunc("dist", func(x int) objective.BaseValue {
		d := x - target
		if d < 0 {
			d = -d
		}
		return objective.Integer(int64(d))
	}))
}

// boundedTabu moves ±1 within [0, 9] and forbids returning to the node the
// move leaves.
var boundedTabu = neighborhood.TabuFunc[int, int](func(x int, tabus []int) iter.Seq2[int, []int] {
	return func(yield func(int, []int) bool) {
		for _, n := range []int{x - 1, x + 1} {
			if n < 0 || n > 9 || slices.Contains(tabus, n) {
				continue
			}
			if !yield(n, []int{x}) {
				return
			}
		}
	}
})

// -----------------------------------------------------------------------------
// Observation helpers
// -----------------------------------------------------------------------------

// steps records every Step an observer receives.
type steps[S any] struct {
	mu  sync.Mutex
	got []solver.Step[S]
}

func (s *steps[S]) observe(st solver.Step[S]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.got = append(s.got, st)
}

func (s *steps[S]) all() []solver.Step[S] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.got)
}

// newRecorder returns a tracer provider whose ended spans land in the recorder.
func newRecorder() (*tracetest.SpanRecorder, *sdktrace.TracerProvider) {
	rec := tracetest.NewSpanRecorder()
	return rec, sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
}

// attr returns the string form of a span attribute, or "" when absent.
func attr(span sdktrace.ReadOnlySpan, key string) string {
	for _, kv := range span.Attributes() {
		if string(kv.Key) == key {
			return kv.Value.Emit()
		}
	}
	return ""
}
