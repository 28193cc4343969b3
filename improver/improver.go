package improver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/katalvlaran/lvsolve/objective"
)

// ErrUnknownImprover is returned by the factories for an unrecognized kind.
var ErrUnknownImprover = errors.New("improver: unknown improver kind")

// LocalImprover proposes a strictly better replacement for current.
// ok is false when no such neighbor was found.
type LocalImprover[S any] interface {
	Improve(ctx context.Context, current objective.EvaluatedSolution[S]) (better objective.EvaluatedSolution[S], ok bool)
}

// TabuImprover proposes the best permitted neighbor of current, whether or
// not it improves on current, together with the tabu tokens its move creates.
// ok is false when every neighbor is forbidden or none exists.
type TabuImprover[S, T any] interface {
	Improve(ctx context.Context, current objective.EvaluatedSolution[S], tabus []T) (next objective.EvaluatedSolution[S], tokens []T, ok bool)
}

// Option customizes an improver.
type Option func(*settings)

type settings struct {
	workers int
	logger  *slog.Logger
}

func resolve(name string, opts []Option) settings {
	s := settings{
		workers: runtime.GOMAXPROCS(0),
		logger:  slog.Default().With(slog.String("component", "improver"), slog.String("improver", name)),
	}
	for _, o := range opts {
		o(&s)
	}
	return s
}

// WithWorkers sets the number of evaluator goroutines of parallel strategies.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("improver: WithWorkers(%d)", n))
	}
	return func(s *settings) { s.workers = n }
}

// WithLogger replaces the component logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("improver: WithLogger(nil)")
	}
	return func(s *settings) { s.logger = l }
}
