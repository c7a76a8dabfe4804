package dataprocessing

import (
	"context"
	"log/slog"

	"datawash/internal/errors"
	"datawash/internal/frame"
)

// Summarizer computes per-column validation summaries: value ranges for
// numeric columns and distinct value sets for text columns. Absent cells
// never contribute to a summary.
type Summarizer struct {
	logger *slog.Logger
}

// NewSummarizer creates a new summarizer.
func NewSummarizer(logger *slog.Logger) *Summarizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Summarizer{logger: logger}
}

// IntRange returns the minimum and maximum present value of an integer
// column. A column with no present values is an error.
func (s *Summarizer) IntRange(ctx context.Context, t *frame.Table, column string) (int64, int64, error) {
	view, err := t.IntColumn(column)
	if err != nil {
		return 0, 0, err
	}

	present := view.Present()
	if len(present) == 0 {
		return 0, 0, errors.NewEmptyColumnError(column)
	}

	lo, hi := present[0], present[0]
	for _, v := range present[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	s.logger.DebugContext(ctx, "computed integer range",
		slog.String("column", column),
		slog.Int64("min", lo),
		slog.Int64("max", hi))

	return lo, hi, nil
}

// FloatRange returns the minimum and maximum present value of a
// floating-point column. A column with no present values is an error.
func (s *Summarizer) FloatRange(ctx context.Context, t *frame.Table, column string) (float64, float64, error) {
	view, err := t.FloatColumn(column)
	if err != nil {
		return 0, 0, err
	}

	present := view.Present()
	if len(present) == 0 {
		return 0, 0, errors.NewEmptyColumnError(column)
	}

	lo, hi := present[0], present[0]
	for _, v := range present[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	s.logger.DebugContext(ctx, "computed float range",
		slog.String("column", column),
		slog.Float64("min", lo),
		slog.Float64("max", hi))

	return lo, hi, nil
}

// Distinct returns the distinct present values of a text column in
// first-appearance order. A column with no present values is an error.
func (s *Summarizer) Distinct(ctx context.Context, t *frame.Table, column string) ([]string, error) {
	view, err := t.TextColumn(column)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	distinct := make([]string, 0)
	for _, v := range view.Present() {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		distinct = append(distinct, v)
	}

	if len(distinct) == 0 {
		return nil, errors.NewEmptyColumnError(column)
	}

	s.logger.DebugContext(ctx, "computed distinct values",
		slog.String("column", column),
		slog.Int("distinct_count", len(distinct)))

	return distinct, nil
}
