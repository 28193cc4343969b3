package solver

import (
	"context"
	"iter"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsolve/neighborhood"
	"github.com/katalvlaran/lvsolve/objective"
)

func TestRNGFromSeed(t *testing.T) {
	a, b := uint64(17), uint64(17)
	assert.Equal(t, rngFromSeed(&a).Int63(), rngFromSeed(&b).Int63())

	zero, one := uint64(0), uint64(1)
	assert.NotEqual(t, rngFromSeed(&one).Int63(), rngFromSeed(&zero).Int63())

	assert.NotNil(t, rngFromSeed(nil))
}

func TestSolverMetrics(t *testing.T) {
	up := neighborhood.Func[int](func(x int) iter.Seq[int] {
		return func(yield func(int) bool) { yield(x + 1) }
	})
	obj := objective.NewSingleIndicator(objective.IndicatorFunc("neg", func(x int) objective.BaseValue {
		return objective.Integer(int64(-x))
	}))

	var (
		runs       = runsTotal.WithLabelValues(nameLocalSearch, string(StopIterationLimit))
		iterations = iterationsTotal.WithLabelValues(nameLocalSearch)
		runsBefore = testutil.ToFloat64(runs)
		itBefore   = testutil.ToFloat64(iterations)
	)

	s, err := NewLocalSearch(up, obj, LocalSearchOptions[int]{Options: Options[int]{Limits: Limits{IterationLimit: 4}}})
	require.NoError(t, err)
	assert.Equal(t, 4, s.Solve(context.Background(), 0).Solution())

	assert.Equal(t, runsBefore+1, testutil.ToFloat64(runs))
	assert.Equal(t, itBefore+4, testutil.ToFloat64(iterations))
	assert.Positive(t, testutil.CollectAndCount(improveDuration))
}

func TestLimits(t *testing.T) {
	assert.False(t, Limits{}.set())
	assert.True(t, Limits{IterationLimit: 1}.set())
	assert.NoError(t, Limits{}.validate())
	assert.ErrorIs(t, Limits{IterationLimit: -1}.validate(), ErrInvalidOptions)
}
