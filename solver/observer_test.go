package solver_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsolve/objective"
	"github.com/katalvlaran/lvsolve/solver"
)

func TestLogObserver_RecordsLevelsAndDiffs(t *testing.T) {
	var buf bytes.Buffer
	obj := vectorObjective()
	prev := obj.Evaluate(vector{0, 0, 2, 3, 4, 5, 6, 7, 8, 9})
	cur := obj.Evaluate(vector{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})

	observe := solver.LogObserver[vector](slog.New(slog.NewJSONHandler(&buf, nil)))
	observe(solver.Step[vector]{
		RunID:          "run-1",
		Iteration:      4,
		Current:        cur,
		Previous:       &prev,
		Objective:      obj,
		Start:          time.Now(),
		IterationLimit: 10,
	})

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "step", rec["msg"])
	assert.Equal(t, "run-1", rec["run_id"])
	assert.Equal(t, float64(4), rec["iteration"])
	assert.Equal(t, float64(10), rec["iteration_limit"])
	assert.Equal(t, "[0, 90]", rec["value"])
	assert.Contains(t, rec, "elapsed")
	assert.NotContains(t, rec, "time_limit")
	assert.NotContains(t, rec, "temperature")

	levels, ok := rec["levels"].(map[string]any)
	require.True(t, ok, "levels group missing: %s", buf.String())
	assert.Equal(t, map[string]any{"value": "0", "diff": "-2"}, levels["PermutationViolation"])
	assert.Equal(t, map[string]any{"value": "90", "diff": "-2"}, levels["SquaredDifference"])
}

func TestLogObserver_FirstStepAndHeuristicState(t *testing.T) {
	var buf bytes.Buffer
	obj := distTo(3)

	observe := solver.LogObserver[int](slog.New(slog.NewJSONHandler(&buf, nil)))
	observe(solver.Step[int]{
		Iteration:   1,
		Current:     obj.Evaluate(1),
		Objective:   obj,
		Temperature: 2.5,
		Threshold:   objective.NewObjectiveValue(objective.Integer(7)),
	})

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, 2.5, rec["temperature"])
	assert.Equal(t, "[7]", rec["threshold"])
	assert.Equal(t, map[string]any{"dist": map[string]any{"value": "2", "diff": ""}}, rec["levels"])
}

func TestLogObserver_DrivenBySolver(t *testing.T) {
	var buf bytes.Buffer
	s, err := solver.NewLocalSearch(line, distTo(3), solver.LocalSearchOptions[int]{Options: solver.Options[int]{
		Observer: solver.LogObserver[int](slog.New(slog.NewJSONHandler(&buf, nil))),
	}})
	require.NoError(t, err)

	s.Solve(t.Context(), 0)
	assert.Equal(t, 3, bytes.Count(buf.Bytes(), []byte(`"msg":"step"`)))
}

func TestNopObserver_DoesNotChangeResult(t *testing.T) {
	obj := vectorObjective()
	initial := vector{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	quiet, err := solver.NewLocalSearch(changeThenSwap, obj, solver.LocalSearchOptions[vector]{
		Options: solver.Options[vector]{Observer: solver.NopObserver[vector]()},
	})
	require.NoError(t, err)
	plain, err := solver.NewLocalSearch(changeThenSwap, obj, solver.LocalSearchOptions[vector]{})
	require.NoError(t, err)

	assert.Equal(t, plain.Solve(t.Context(), initial).Value(), quiet.Solve(t.Context(), initial).Value())
}
