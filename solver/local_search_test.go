package solver_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"

	"github.com/katalvlaran/lvsolve/improver"
	"github.com/katalvlaran/lvsolve/objective"
	"github.com/katalvlaran/lvsolve/solver"
)

func TestLocalSearch_VectorScenario(t *testing.T) {
	obj := vectorObjective()
	for name, build := range map[string]func(solver.LocalSearchOptions[vector]) (*solver.LocalSearch[vector], error){
		"sequential": func(o solver.LocalSearchOptions[vector]) (*solver.LocalSearch[vector], error) {
			return solver.NewLocalSearch(changeThenSwap, obj, o)
		},
		"parallel": func(o solver.LocalSearchOptions[vector]) (*solver.LocalSearch[vector], error) {
			return solver.NewParallelLocalSearch(changeThenSwap, obj, o)
		},
	} {
		t.Run(name, func(t *testing.T) {
			var rec steps[vector]
			s, err := build(solver.LocalSearchOptions[vector]{Options: solver.Options[vector]{Observer: rec.observe}})
			require.NoError(t, err)

			best := s.Solve(context.Background(), make(vector, 10))

			want := objective.NewObjectiveValue(objective.Integer(0), objective.Integer(36))
			assert.True(t, best.Value().Equal(want), "got %v", best.Value())
			if diff := cmp.Diff(vector{1, 0, 2, 4, 5, 7, 9, 8, 6, 3}, best.Solution()); diff != "" {
				t.Fatalf("local optimum mismatch (-want +got):\n%s", diff)
			}

			got := rec.all()
			require.Len(t, got, 13)
			for i, st := range got {
				assert.Equal(t, i+1, st.Iteration)
				require.NotNil(t, st.Previous)
				assert.True(t, st.Current.Less(*st.Previous), "step %d did not improve", st.Iteration)
				assert.Same(t, obj, st.Objective)
				assert.Equal(t, got[0].RunID, st.RunID)
			}
			assert.NotEmpty(t, got[0].RunID)
		})
	}
}

func TestLocalSearch_CustomImprover(t *testing.T) {
	obj := distTo(3)
	s, err := solver.NewLocalSearch(line, obj, solver.LocalSearchOptions[int]{
		Improver: improver.NewTakeFirst(line, obj),
	})
	require.NoError(t, err)

	best := s.Solve(context.Background(), -4)
	assert.Equal(t, 3, best.Solution())
}

func TestLocalSearch_IterationLimit(t *testing.T) {
	var rec steps[int]
	rt, tp := newRecorder()
	s, err := solver.NewLocalSearch(line, distTo(100), solver.LocalSearchOptions[int]{Options: solver.Options[int]{
		Limits:         solver.Limits{IterationLimit: 5},
		Observer:       rec.observe,
		TracerProvider: tp,
	}})
	require.NoError(t, err)

	best := s.Solve(context.Background(), 0)
	assert.Equal(t, 5, best.Solution())
	assert.Len(t, rec.all(), 5)
	assert.Equal(t, 5, rec.all()[4].IterationLimit)

	spans := rt.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "lvsolve.solver.local_search.solve", spans[0].Name())
	assert.Equal(t, string(solver.StopIterationLimit), attr(spans[0], "stop_reason"))
	assert.Equal(t, "5", attr(spans[0], "iterations"))
	assert.Equal(t, rec.all()[0].RunID, attr(spans[0], "run_id"))
}

func TestLocalSearch_TimeLimit(t *testing.T) {
	var rec steps[int]
	s, err := solver.NewLocalSearch(line, distTo(1_000_000), solver.LocalSearchOptions[int]{Options: solver.Options[int]{
		Limits:   solver.Limits{TimeLimit: time.Nanosecond},
		Observer: rec.observe,
	}})
	require.NoError(t, err)

	best := s.Solve(context.Background(), 0)
	assert.Equal(t, 1, best.Solution())
	assert.Len(t, rec.all(), 1)
}

func TestLocalSearch_LocalOptimumSpan(t *testing.T) {
	rt, tp := newRecorder()
	s, err := solver.NewParallelLocalSearch(line, distTo(2), solver.LocalSearchOptions[int]{Options: solver.Options[int]{TracerProvider: tp}})
	require.NoError(t, err)

	best := s.Solve(context.Background(), 0)
	assert.Equal(t, 2, best.Solution())

	spans := rt.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "lvsolve.solver.parallel_local_search.solve", spans[0].Name())
	assert.Equal(t, string(solver.StopLocalOptimum), attr(spans[0], "stop_reason"))
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
}

func TestLocalSearch_CancelledContext(t *testing.T) {
	var rec steps[int]
	rt, tp := newRecorder()
	s, err := solver.NewLocalSearch(line, distTo(3), solver.LocalSearchOptions[int]{Options: solver.Options[int]{
		Observer:       rec.observe,
		TracerProvider: tp,
	}})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	best := s.Solve(ctx, 0)

	assert.Equal(t, 0, best.Solution())
	assert.Equal(t, int64(3), best.Value().At(0).AsInteger())
	assert.Empty(t, rec.all())

	spans := rt.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, string(solver.StopCancelled), attr(spans[0], "stop_reason"))
	assert.Equal(t, codes.Error, spans[0].Status().Code)
}

func TestLocalSearch_NeverWorse(t *testing.T) {
	obj := distTo(3)
	s, err := solver.NewLocalSearch(line, obj, solver.LocalSearchOptions[int]{})
	require.NoError(t, err)

	for start := -5; start <= 10; start++ {
		best := s.Solve(context.Background(), start)
		assert.False(t, obj.Evaluate(start).Less(best), "start %d", start)
		assert.Equal(t, 3, best.Solution())
	}
}

func TestNewLocalSearch_Validation(t *testing.T) {
	_, err := solver.NewLocalSearch(line, nil, solver.LocalSearchOptions[int]{Improver: improver.NewMinimizer(line, distTo(0))})
	assert.ErrorIs(t, err, solver.ErrInvalidOptions)

	_, err = solver.NewLocalSearch(line, distTo(0), solver.LocalSearchOptions[int]{Options: solver.Options[int]{
		Limits: solver.Limits{IterationLimit: -1},
	}})
	assert.ErrorIs(t, err, solver.ErrInvalidOptions)

	_, err = solver.NewLocalSearch(line, distTo(0), solver.LocalSearchOptions[int]{Options: solver.Options[int]{
		Limits: solver.Limits{TimeLimit: -time.Second},
	}})
	assert.ErrorIs(t, err, solver.ErrInvalidOptions)
}
