package solver_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvsolve/solver"
)

// ExampleLocalSearch drives a best-improvement local search on a two-level
// objective: first make the vector a permutation of 0..9, then keep
// neighboring entries close. The result is a local, not a global, optimum.
func ExampleLocalSearch() {
	s, err := solver.NewLocalSearch(changeThenSwap, vectorObjective(), solver.LocalSearchOptions[vector]{})
	if err != nil {
		fmt.Println(err)
		return
	}
	best := s.Solve(context.Background(), make(vector, 10))

	fmt.Println(best.Value())
	fmt.Println(best.Solution())
	// Output:
	// [0, 36]
	// [1 0 2 4 5 7 9 8 6 3]
}
