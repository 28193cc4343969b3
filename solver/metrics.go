package solver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Solver names used as metric labels, span names and log attributes.
const (
	nameLocalSearch         = "local_search"
	nameParallelLocalSearch = "parallel_local_search"
	nameTabuSearch          = "tabu_search"
	nameParallelTabuSearch  = "parallel_tabu_search"
	nameSimulatedAnnealing  = "simulated_annealing"
	nameThresholdAccepting  = "threshold_accepting"
)

var (
	// runsTotal counts finished Solve calls.
	//
	// Labels:
	//   - solver: solver name
	//   - stop_reason: one of the StopReason constants
	runsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lvsolve",
			Subsystem: "solver",
			Name:      "runs_total",
			Help:      "Total Solve calls by solver and stop reason",
		},
		[]string{"solver", "stop_reason"},
	)

	// iterationsTotal counts started iterations.
	iterationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lvsolve",
			Subsystem: "solver",
			Name:      "iterations_total",
			Help:      "Total solver iterations by solver",
		},
		[]string{"solver"},
	)

	// improveDuration observes the latency of one neighborhood exploration.
	improveDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "lvsolve",
			Subsystem: "solver",
			Name:      "improve_duration_seconds",
			Help:      "Duration of one neighborhood exploration",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		},
		[]string{"solver"},
	)
)
