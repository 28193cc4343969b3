package improver

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvsolve/objective"
)

func ev(x int) objective.EvaluatedSolution[int] {
	return objective.NewEvaluatedSolution(x, objective.NewObjectiveValue(objective.Integer(int64(x/10))))
}

func TestPool_DedupesBeforeTruncating(t *testing.T) {
	p := newPool[int](2)
	// values: 3,3,1,1,2 -> distinct {1,2} kept, first arrival of each value wins
	for _, x := range []int{30, 31, 10, 11, 20} {
		p.insert(ev(x))
	}
	got := p.solutions()
	assert.Len(t, got, 2)
	assert.Equal(t, 10, got[0].Solution())
	assert.Equal(t, 20, got[1].Solution())
}

func TestPool_Unbounded(t *testing.T) {
	p := newPool[int](0)
	p.merge([]objective.EvaluatedSolution[int]{ev(50), ev(10), ev(40), ev(41), ev(20)})
	var xs []int
	for _, e := range p.solutions() {
		xs = append(xs, e.Solution())
	}
	assert.Equal(t, []int{10, 20, 40, 50}, xs)
}

func TestCandidate_TiesPreferLowerIndex(t *testing.T) {
	var c candidate[int, struct{}]
	c.offer(ev(15), 4, struct{}{})
	c.offer(ev(12), 2, struct{}{})
	c.offer(ev(19), 9, struct{}{})
	assert.Equal(t, 2, c.idx)

	r := reduce([]candidate[int, struct{}]{
		{ev: ev(10), idx: 7, ok: true},
		{},
		{ev: ev(11), idx: 3, ok: true},
	})
	assert.Equal(t, 3, r.idx)
}

func TestMetrics_CountCandidates(t *testing.T) {
	before := testutil.ToFloat64(candidatesTotal.WithLabelValues(nameMinimizer))
	recordOutcome(nameMinimizer, 5, true, false)
	assert.Equal(t, before+5, testutil.ToFloat64(candidatesTotal.WithLabelValues(nameMinimizer)))

	found := testutil.ToFloat64(outcomesTotal.WithLabelValues(nameMinimizer, "found"))
	recordOutcome(nameMinimizer, 1, true, true)
	assert.Equal(t, found+1, testutil.ToFloat64(outcomesTotal.WithLabelValues(nameMinimizer, "found")))
}
