package improver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Improver names used as metric labels and log attributes.
const (
	nameMinimizer             = "minimizer"
	nameTakeFirst             = "take_first"
	nameTakeFirstRecursion    = "take_first_recursion"
	nameParallelMinimizer     = "parallel_minimizer"
	nameTakeAnyRecursion      = "take_any_recursion"
	nameTabuMinimizer         = "tabu_minimizer"
	nameParallelTabuMinimizer = "parallel_tabu_minimizer"
)

var (
	// candidatesTotal counts evaluated neighbors.
	//
	// Labels:
	//   - improver: strategy name
	candidatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lvsolve",
			Subsystem: "improver",
			Name:      "candidates_total",
			Help:      "Total neighbors evaluated by improver",
		},
		[]string{"improver"},
	)

	// recursionsTotal counts recursion levels entered after a failed scan.
	recursionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lvsolve",
			Subsystem: "improver",
			Name:      "recursions_total",
			Help:      "Total recursion levels entered by recursive improvers",
		},
		[]string{"improver"},
	)

	// outcomesTotal counts Improve calls by result.
	//
	// Labels:
	//   - improver: strategy name
	//   - outcome: "found", "not_found" or "empty"
	outcomesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lvsolve",
			Subsystem: "improver",
			Name:      "outcomes_total",
			Help:      "Total Improve calls by improver and outcome",
		},
		[]string{"improver", "outcome"},
	)
)

func recordOutcome(name string, evaluated int, nonEmpty, found bool) {
	candidatesTotal.WithLabelValues(name).Add(float64(evaluated))
	switch {
	case found:
		outcomesTotal.WithLabelValues(name, "found").Inc()
	case !nonEmpty:
		outcomesTotal.WithLabelValues(name, "empty").Inc()
	default:
		outcomesTotal.WithLabelValues(name, "not_found").Inc()
	}
}
