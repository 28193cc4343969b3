package solver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/lvsolve/improver"
	"github.com/katalvlaran/lvsolve/objective"
)

// Sentinel errors returned (wrapped) by constructors.
var (
	// ErrNoTermination indicates a tabu search configured without any
	// termination criterion.
	ErrNoTermination = errors.New("solver: no termination criterion configured")

	// ErrInvalidOptions indicates an out-of-range or missing option.
	ErrInvalidOptions = errors.New("solver: invalid options")
)

// StopReason explains why a Solve call returned.
type StopReason string

// Stop reasons, also used as the stop_reason metric label.
const (
	StopLocalOptimum       StopReason = "local_optimum"
	StopNoCandidate        StopReason = "no_candidate"
	StopTimeLimit          StopReason = "time_limit"
	StopIterationLimit     StopReason = "iteration_limit"
	StopNoImprovementLimit StopReason = "no_improvement_limit"
	StopCancelled          StopReason = "cancelled"
)

// Solver improves an initial solution and returns the best one reached.
type Solver[S any] interface {
	Solve(ctx context.Context, initial S) objective.EvaluatedSolution[S]
}

// Limits are the termination criteria shared by every solver. A zero field is unset.
type Limits struct {
	TimeLimit      time.Duration
	IterationLimit int
}

func (l Limits) validate() error {
	if l.TimeLimit < 0 {
		return fmt.Errorf("%w: TimeLimit %v < 0", ErrInvalidOptions, l.TimeLimit)
	}
	if l.IterationLimit < 0 {
		return fmt.Errorf("%w: IterationLimit %d < 0", ErrInvalidOptions, l.IterationLimit)
	}
	return nil
}

func (l Limits) set() bool { return l.TimeLimit > 0 || l.IterationLimit > 0 }

// Step is what an Observer sees after each accepted iteration.
type Step[S any] struct {
	RunID     string
	Iteration int
	Current   objective.EvaluatedSolution[S]
	// Previous is the solution the step moved away from; nil if none.
	Previous  *objective.EvaluatedSolution[S]
	Objective *objective.Objective[S]
	Start     time.Time
	// TimeLimit and IterationLimit are zero when unset.
	TimeLimit      time.Duration
	IterationLimit int
	// Temperature is set by simulated annealing, after cooling.
	Temperature float64
	// Threshold is set by threshold accepting, after decay.
	Threshold objective.ObjectiveValue
}

// Observer is called between steps. It must not retain or mutate solver
// state; a panicking observer aborts Solve.
type Observer[S any] func(Step[S])

// Options are shared by every solver.
type Options[S any] struct {
	Limits Limits
	// Observer is optional.
	Observer Observer[S]
	// Logger defaults to slog.Default() tagged with component=solver.
	Logger *slog.Logger
	// TracerProvider defaults to the global provider.
	TracerProvider trace.TracerProvider
}

// ImproverOptions routes improver logging through Logger when it is set.
// Builders that construct their own improver prepend these to their options.
func (o Options[S]) ImproverOptions() []improver.Option {
	if o.Logger == nil {
		return nil
	}
	return []improver.Option{improver.WithLogger(o.Logger.With(slog.String("component", "improver")))}
}
