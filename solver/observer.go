package solver

import (
	"log/slog"
	"time"

	"github.com/katalvlaran/lvsolve/objective"
)

// LogObserver logs every step at info level: the new value, the per-level
// change from the previous value and the progress against the limits.
func LogObserver[S any](logger *slog.Logger) Observer[S] {
	if logger == nil {
		logger = slog.Default().With(slog.String("component", "solver"))
	}
	return func(st Step[S]) {
		var prev *objective.ObjectiveValue
		if st.Previous != nil {
			v := st.Previous.Value()
			prev = &v
		}
		levels := make([]any, 0, st.Current.Value().Len())
		for _, lv := range st.Objective.Describe(st.Current.Value(), prev) {
			levels = append(levels, slog.Group(lv.Name,
				slog.String("value", lv.Value.String()),
				slog.String("diff", lv.Diff),
			))
		}

		attrs := []any{
			slog.String("run_id", st.RunID),
			slog.Int("iteration", st.Iteration),
			slog.String("value", st.Current.Value().String()),
			slog.Group("levels", levels...),
		}
		if !st.Start.IsZero() {
			attrs = append(attrs, slog.Duration("elapsed", time.Since(st.Start)))
		}
		if st.TimeLimit > 0 {
			attrs = append(attrs, slog.Duration("time_limit", st.TimeLimit))
		}
		if st.IterationLimit > 0 {
			attrs = append(attrs, slog.Int("iteration_limit", st.IterationLimit))
		}
		if st.Temperature > 0 {
			attrs = append(attrs, slog.Float64("temperature", st.Temperature))
		}
		if st.Threshold.Len() > 0 {
			attrs = append(attrs, slog.String("threshold", st.Threshold.String()))
		}
		logger.Info("step", attrs...)
	}
}

// NopObserver discards every step.
func NopObserver[S any]() Observer[S] {
	return func(Step[S]) {}
}
