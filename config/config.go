package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is returned (wrapped) by Validate, Parse and Load.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Solver kinds accepted in Config.Solver.
const (
	SolverLocalSearch         = "local_search"
	SolverParallelLocalSearch = "parallel_local_search"
	SolverTabuSearch          = "tabu_search"
	SolverParallelTabuSearch  = "parallel_tabu_search"
	SolverSimulatedAnnealing  = "simulated_annealing"
	SolverThresholdAccepting  = "threshold_accepting"
)

// Improver kinds accepted in Improver.Kind. An empty kind selects the
// solver's default strategy.
const (
	ImproverMinimizer             = "minimizer"
	ImproverTakeFirst             = "take_first"
	ImproverTakeFirstRecursion    = "take_first_recursion"
	ImproverParallelMinimizer     = "parallel_minimizer"
	ImproverTakeAnyRecursion      = "take_any_recursion"
	ImproverTabuMinimizer         = "tabu_minimizer"
	ImproverParallelTabuMinimizer = "parallel_tabu_minimizer"
)

// Config is the root document.
type Config struct {
	Solver    string    `json:"solver" yaml:"solver" mapstructure:"solver"`
	Limits    Limits    `json:"limits" yaml:"limits" mapstructure:"limits"`
	Improver  Improver  `json:"improver" yaml:"improver" mapstructure:"improver"`
	Tabu      Tabu      `json:"tabu" yaml:"tabu" mapstructure:"tabu"`
	Annealing Annealing `json:"annealing" yaml:"annealing" mapstructure:"annealing"`
	Threshold Threshold `json:"threshold" yaml:"threshold" mapstructure:"threshold"`
}

// Limits are the termination criteria shared by every solver. Zero means unset.
type Limits struct {
	TimeLimit      time.Duration `json:"time_limit" yaml:"time_limit" mapstructure:"time_limit"`
	IterationLimit int           `json:"iteration_limit" yaml:"iteration_limit" mapstructure:"iteration_limit"`
}

// Improver selects and parameterizes the improvement strategy.
type Improver struct {
	Kind string `json:"kind" yaml:"kind" mapstructure:"kind"`
	// Depth is the number of recursion levels for the recursive strategies.
	Depth int `json:"depth" yaml:"depth" mapstructure:"depth"`
	// Width bounds the pool carried between recursion levels; 0 is unbounded
	// for take_any_recursion and invalid for take_first_recursion.
	Width int `json:"width" yaml:"width" mapstructure:"width"`
	// Workers is the goroutine count of parallel strategies; 0 uses GOMAXPROCS.
	Workers int `json:"workers" yaml:"workers" mapstructure:"workers"`
}

// Tabu holds tabu search parameters.
type Tabu struct {
	ListSize           int `json:"list_size" yaml:"list_size" mapstructure:"list_size"`
	NoImprovementLimit int `json:"no_improvement_limit" yaml:"no_improvement_limit" mapstructure:"no_improvement_limit"`
}

// Annealing holds simulated annealing parameters.
type Annealing struct {
	InitialTemperature float64 `json:"initial_temperature" yaml:"initial_temperature" mapstructure:"initial_temperature"`
	CoolingFactor      float64 `json:"cooling_factor" yaml:"cooling_factor" mapstructure:"cooling_factor"`
	// Seed fixes the random stream; nil draws a fresh seed per run.
	Seed *uint64 `json:"seed,omitempty" yaml:"seed,omitempty" mapstructure:"seed"`
}

// Threshold holds threshold accepting parameters.
type Threshold struct {
	Factor float64 `json:"factor" yaml:"factor" mapstructure:"factor"`
}

// Default returns a local search configuration with defaults for every
// heuristic parameter.
func Default() Config {
	return Config{
		Solver: SolverLocalSearch,
		Tabu: Tabu{
			ListSize: 20,
		},
		Annealing: Annealing{
			InitialTemperature: 100,
			CoolingFactor:      0.95,
		},
		Threshold: Threshold{
			Factor: 0.95,
		},
	}
}

// Validate checks ranges and cross-field constraints of the selected solver.
func (c Config) Validate() error {
	if c.Limits.TimeLimit < 0 {
		return fmt.Errorf("%w: limits.time_limit %v < 0", ErrInvalidConfig, c.Limits.TimeLimit)
	}
	if c.Limits.IterationLimit < 0 {
		return fmt.Errorf("%w: limits.iteration_limit %d < 0", ErrInvalidConfig, c.Limits.IterationLimit)
	}
	if err := c.Improver.validate(); err != nil {
		return err
	}

	switch c.Solver {
	case SolverLocalSearch, SolverParallelLocalSearch:
	case SolverTabuSearch, SolverParallelTabuSearch:
		if c.Tabu.ListSize < 0 || c.Tabu.NoImprovementLimit < 0 {
			return fmt.Errorf("%w: tabu parameters must be non-negative", ErrInvalidConfig)
		}
		if c.Tabu.NoImprovementLimit == 0 && c.Limits.TimeLimit == 0 && c.Limits.IterationLimit == 0 {
			return fmt.Errorf("%w: tabu search needs a termination criterion", ErrInvalidConfig)
		}
	case SolverSimulatedAnnealing:
		if c.Annealing.InitialTemperature <= 0 {
			return fmt.Errorf("%w: annealing.initial_temperature must be > 0", ErrInvalidConfig)
		}
		if c.Annealing.CoolingFactor <= 0 || c.Annealing.CoolingFactor >= 1 {
			return fmt.Errorf("%w: annealing.cooling_factor %v not in (0,1)", ErrInvalidConfig, c.Annealing.CoolingFactor)
		}
	case SolverThresholdAccepting:
		if c.Threshold.Factor <= 0 || c.Threshold.Factor >= 1 {
			return fmt.Errorf("%w: threshold.factor %v not in (0,1)", ErrInvalidConfig, c.Threshold.Factor)
		}
	default:
		return fmt.Errorf("%w: unknown solver %q", ErrInvalidConfig, c.Solver)
	}
	return nil
}

func (i Improver) validate() error {
	if i.Depth < 0 || i.Width < 0 || i.Workers < 0 {
		return fmt.Errorf("%w: improver depth, width and workers must be non-negative", ErrInvalidConfig)
	}
	switch i.Kind {
	case "", ImproverMinimizer, ImproverTakeFirst, ImproverParallelMinimizer,
		ImproverTakeAnyRecursion, ImproverTabuMinimizer, ImproverParallelTabuMinimizer:
	case ImproverTakeFirstRecursion:
		if i.Width < 1 {
			return fmt.Errorf("%w: take_first_recursion needs width >= 1", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown improver %q", ErrInvalidConfig, i.Kind)
	}
	return nil
}
