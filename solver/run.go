package solver

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/lvsolve/objective"
)

const tracerName = "github.com/katalvlaran/lvsolve/solver"

// run carries the per-Solve bookkeeping shared by all solvers.
type run[S any] struct {
	name      string
	id        string
	opts      *Options[S]
	obj       *objective.Objective[S]
	ctx       context.Context
	span      trace.Span
	logger    *slog.Logger
	start     time.Time
	iteration int
}

func baseLogger(l *slog.Logger, name string) *slog.Logger {
	if l == nil {
		l = slog.Default().With(slog.String("component", "solver"))
	}
	return l.With(slog.String("solver", name))
}

func begin[S any](ctx context.Context, name string, opts *Options[S], obj *objective.Objective[S]) *run[S] {
	tp := opts.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	id := uuid.NewString()
	sctx, span := tp.Tracer(tracerName).Start(ctx, "lvsolve.solver."+name+".solve",
		trace.WithAttributes(
			attribute.String("solver", name),
			attribute.String("run_id", id),
			attribute.Int64("time_limit_ms", opts.Limits.TimeLimit.Milliseconds()),
			attribute.Int("iteration_limit", opts.Limits.IterationLimit),
		))
	r := &run[S]{
		name:   name,
		id:     id,
		opts:   opts,
		obj:    obj,
		ctx:    sctx,
		span:   span,
		logger: baseLogger(opts.Logger, name).With(slog.String("run_id", id)),
		start:  time.Now(),
	}
	r.logger.Debug("solve started")
	return r
}

// next advances the iteration counter unless the context is done.
func (r *run[S]) next() bool {
	if r.ctx.Err() != nil {
		return false
	}
	r.iteration++
	iterationsTotal.WithLabelValues(r.name).Inc()
	return true
}

// timed measures one improve call.
func (r *run[S]) timed(start time.Time) {
	improveDuration.WithLabelValues(r.name).Observe(time.Since(start).Seconds())
}

// limitReached applies the shared limits after an iteration.
func (r *run[S]) limitReached() (StopReason, bool) {
	l := r.opts.Limits
	if l.TimeLimit > 0 && time.Since(r.start) > l.TimeLimit {
		return StopTimeLimit, true
	}
	if l.IterationLimit > 0 && r.iteration >= l.IterationLimit {
		return StopIterationLimit, true
	}
	return "", false
}

// failed maps "nothing found" to cancellation when the context is done.
func (r *run[S]) failed(reason StopReason) StopReason {
	if r.ctx.Err() != nil {
		return StopCancelled
	}
	return reason
}

func (r *run[S]) step(st Step[S]) {
	if r.opts.Observer == nil {
		return
	}
	st.RunID = r.id
	st.Iteration = r.iteration
	st.Objective = r.obj
	st.Start = r.start
	st.TimeLimit = r.opts.Limits.TimeLimit
	st.IterationLimit = r.opts.Limits.IterationLimit
	r.opts.Observer(st)
}

func (r *run[S]) end(reason StopReason, best objective.EvaluatedSolution[S]) {
	runsTotal.WithLabelValues(r.name, string(reason)).Inc()
	r.span.SetAttributes(
		attribute.String("stop_reason", string(reason)),
		attribute.Int("iterations", r.iteration),
		attribute.String("best_value", best.Value().String()),
	)
	if reason == StopCancelled {
		r.span.SetStatus(codes.Error, context.Cause(r.ctx).Error())
	}
	r.span.End()
	r.logger.Info("solve finished",
		slog.String("stop_reason", string(reason)),
		slog.Int("iterations", r.iteration),
		slog.String("best", best.Value().String()),
		slog.Duration("elapsed", time.Since(r.start)),
	)
}
