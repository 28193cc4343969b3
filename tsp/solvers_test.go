package tsp_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsolve/improver"
	"github.com/katalvlaran/lvsolve/solver"
	"github.com/katalvlaran/lvsolve/tsp"
)

// optimalFour lists both orientations of the optimal 4-node cycle.
var optimalFour = [][]int{{0, 1, 3, 2}, {0, 2, 3, 1}}

func TestLocalSearch_FourNodes(t *testing.T) {
	in := mustInstance(t, fourNodes())

	builders := map[string]func() (*solver.LocalSearch[tsp.Tour], error){
		"sequential": func() (*solver.LocalSearch[tsp.Tour], error) { return tsp.LocalSearch(solver.Options[tsp.Tour]{}) },
		"parallel": func() (*solver.LocalSearch[tsp.Tour], error) {
			return tsp.ParallelLocalSearch(solver.Options[tsp.Tour]{}, improver.WithWorkers(3))
		},
		"take_first": func() (*solver.LocalSearch[tsp.Tour], error) { return tsp.TakeFirstLocalSearch(solver.Options[tsp.Tour]{}) },
	}
	for name, build := range builders {
		t.Run(name, func(t *testing.T) {
			s, err := build()
			require.NoError(t, err)

			best := s.Solve(context.Background(), mustTour(t, in, 0, 1, 2, 3))
			if diff := cmp.Diff([]int{0, 2, 3, 1}, best.Solution().Nodes()); diff != "" {
				t.Fatalf("local optimum mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, 80.0, best.Solution().Length())
		})
	}
}

func TestTakeAnyLocalSearch_FourNodes(t *testing.T) {
	in := mustInstance(t, fourNodes())
	s, err := tsp.TakeAnyLocalSearch(solver.Options[tsp.Tour]{}, improver.WithWorkers(4))
	require.NoError(t, err)

	best := s.Solve(context.Background(), mustTour(t, in, 0, 1, 2, 3))
	assert.Equal(t, 80.0, best.Solution().Length())
	assert.Contains(t, optimalFour, best.Solution().Nodes())
}

func TestTabuSearch_FourNodes(t *testing.T) {
	in := mustInstance(t, fourNodes())
	for name, build := range map[string]func(solver.Options[tsp.Tour]) (*solver.TabuSearch[tsp.Tour, tsp.Arc], error){
		"sequential": tsp.TabuSearch,
		"parallel":   tsp.ParallelTabuSearch,
	} {
		t.Run(name, func(t *testing.T) {
			s, err := build(solver.Options[tsp.Tour]{})
			require.NoError(t, err)

			best := s.Solve(context.Background(), mustTour(t, in, 0, 1, 2, 3))
			if diff := cmp.Diff([]int{0, 2, 3, 1}, best.Solution().Nodes()); diff != "" {
				t.Fatalf("best tour mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSimulatedAnnealing_FourNodes(t *testing.T) {
	in := mustInstance(t, fourNodes())
	s, err := tsp.SimulatedAnnealing(in, solver.Options[tsp.TourWithInfo]{})
	require.NoError(t, err)

	start := tsp.TourWithInfo{Tour: mustTour(t, in, 0, 1, 2, 3)}
	best := s.Solve(context.Background(), start)
	assert.Equal(t, 80.0, best.Solution().Length())
	assert.Contains(t, optimalFour, best.Solution().Nodes())

	// fixed seed: identical runs
	again := s.Solve(context.Background(), start)
	assert.Equal(t, best.Solution().Nodes(), again.Solution().Nodes())
}

func TestThresholdAccepting_FourNodes(t *testing.T) {
	in := mustInstance(t, fourNodes())
	s, err := tsp.ThresholdAccepting(in, solver.Options[tsp.Tour]{})
	require.NoError(t, err)

	best := s.Solve(context.Background(), mustTour(t, in, 0, 1, 2, 3))
	assert.Equal(t, 80.0, best.Solution().Length())
	assert.Contains(t, optimalFour, best.Solution().Nodes())
}

// TestSolvers_NeverWorseThanStart runs every ready-made solver on a random
// Euclidean instance from the nearest-neighbor tour.
func TestSolvers_NeverWorseThanStart(t *testing.T) {
	const n = 14
	in := mustInstance(t, euclid(n, seedDet))
	start := tsp.NearestNeighborTour(in)
	limits := solver.Options[tsp.Tour]{Limits: solver.Limits{IterationLimit: 500}}

	ls, err := tsp.LocalSearch(limits)
	require.NoError(t, err)
	local := ls.Solve(context.Background(), start)
	assert.LessOrEqual(t, local.Solution().Length(), start.Length()+epsCost)

	// a local optimum has no strictly better 3-opt neighbor
	for nb := range tsp.ThreeOpt().NeighborsOf(local.Solution()) {
		require.False(t, tsp.NewObjective().Evaluate(nb).Less(local), "improving neighbor %v", nb)
	}

	ts, err := tsp.TabuSearch(limits)
	require.NoError(t, err)
	tabu := ts.Solve(context.Background(), start)
	assert.LessOrEqual(t, tabu.Solution().Length(), start.Length()+epsCost)

	ta, err := tsp.ThresholdAccepting(in, limits)
	require.NoError(t, err)
	threshold := ta.Solve(context.Background(), start)
	assert.LessOrEqual(t, threshold.Solution().Length(), start.Length()+epsCost)

	sa, err := tsp.SimulatedAnnealing(in, solver.Options[tsp.TourWithInfo]{Limits: limits.Limits})
	require.NoError(t, err)
	annealed := sa.Solve(context.Background(), tsp.TourWithInfo{Tour: start})
	assert.LessOrEqual(t, annealed.Solution().Length(), start.Length()+epsCost)

	for _, nodes := range [][]int{local.Solution().Nodes(), tabu.Solution().Nodes(), threshold.Solution().Nodes(), annealed.Solution().Nodes()} {
		require.NoError(t, tsp.ValidatePermutation(nodes, n))
	}
}

func TestTakeFirstLocalSearch_DefaultTimeLimit(t *testing.T) {
	var got solver.Step[tsp.Tour]
	s, err := tsp.TakeFirstLocalSearch(solver.Options[tsp.Tour]{
		Observer: func(st solver.Step[tsp.Tour]) { got = st },
	})
	require.NoError(t, err)

	in := mustInstance(t, fourNodes())
	s.Solve(context.Background(), mustTour(t, in, 0, 1, 2, 3))
	assert.Equal(t, tsp.TakeFirstTimeLimit, got.TimeLimit)
	assert.Equal(t, 1, got.Iteration)
}
