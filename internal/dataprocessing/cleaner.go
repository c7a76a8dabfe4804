package dataprocessing

import (
	"context"
	"log/slog"
	"strconv"

	"datawash/internal/errors"
	"datawash/internal/frame"
)

// fillStrategy identifies how a fill rule computes its replacement value.
type fillStrategy int

const (
	fillConstantText fillStrategy = iota
	fillMedian
	fillMean
)

// String returns the strategy name used in reports and logs.
func (s fillStrategy) String() string {
	switch s {
	case fillConstantText:
		return "constant"
	case fillMedian:
		return "median"
	case fillMean:
		return "mean"
	default:
		return "unknown"
	}
}

// FillRule describes how absent cells of one column are replaced. Rules
// are created through the constructors below and hold no table state, so
// a rule set can be reused across cleans.
type FillRule struct {
	column   string
	strategy fillStrategy
	text     string // fillConstantText only
}

// FillConstantText replaces absent cells of a text column with value.
func FillConstantText(column, value string) FillRule {
	return FillRule{column: column, strategy: fillConstantText, text: value}
}

// FillMedian replaces absent cells of a numeric column with the median
// of its present values. On integer columns the median is rounded to the
// nearest integer, halves away from zero.
func FillMedian(column string) FillRule {
	return FillRule{column: column, strategy: fillMedian}
}

// FillMean replaces absent cells of a numeric column with the mean of
// its present values. On integer columns the mean is rounded to the
// nearest integer, halves away from zero.
func FillMean(column string) FillRule {
	return FillRule{column: column, strategy: fillMean}
}

// Column returns the column the rule targets.
func (r FillRule) Column() string {
	return r.column
}

// Strategy returns the strategy name used in reports and logs.
func (r FillRule) Strategy() string {
	return r.strategy.String()
}

// Cleaner applies an ordered set of fill rules to a table. Replacement
// statistics are always computed from the input table, never from
// partially cleaned intermediates, so the outcome does not depend on
// rule order.
type Cleaner struct {
	logger *slog.Logger
	rules  []FillRule
}

// NewCleaner creates a cleaner for the given rules. Each column may be
// targeted by at most one rule.
func NewCleaner(logger *slog.Logger, rules ...FillRule) (*Cleaner, error) {
	if logger == nil {
		logger = slog.Default()
	}

	seen := make(map[string]struct{}, len(rules))
	for _, rule := range rules {
		if rule.column == "" {
			return nil, errors.NewValidationError("fill rule has an empty column name")
		}
		if _, dup := seen[rule.column]; dup {
			return nil, errors.NewValidationError(
				"column " + strconv.Quote(rule.column) + " has more than one fill rule")
		}
		seen[rule.column] = struct{}{}
	}

	return &Cleaner{logger: logger, rules: rules}, nil
}

// ColumnFill records the outcome of one fill rule.
type ColumnFill struct {
	Column   string
	Strategy string
	Filled   int
}

// CleaningReport summarizes a Clean run, one entry per rule in rule
// order.
type CleaningReport struct {
	Rows    int
	Columns []ColumnFill
}

// TotalFilled returns the number of cells replaced across all columns.
func (r *CleaningReport) TotalFilled() int {
	total := 0
	for _, c := range r.Columns {
		total += c.Filled
	}
	return total
}

// Clean returns a copy of the table with every rule applied, together
// with a report of how many cells each rule replaced. The input table is
// never modified, and cleaning an already complete table returns an
// equal copy.
func (c *Cleaner) Clean(ctx context.Context, t *frame.Table) (*frame.Table, *CleaningReport, error) {
	c.logger.InfoContext(ctx, "cleaning table",
		slog.Int("rows", t.NumRows()),
		slog.Int("rule_count", len(c.rules)))

	report := &CleaningReport{
		Rows:    t.NumRows(),
		Columns: make([]ColumnFill, 0, len(c.rules)),
	}

	cleaned := t.Clone()
	for _, rule := range c.rules {
		filled, err := c.applyRule(t, cleaned, rule)
		if err != nil {
			c.logger.ErrorContext(ctx, "fill rule failed",
				slog.String("column", rule.column),
				slog.String("strategy", rule.strategy.String()),
				slog.String("error", err.Error()))
			return nil, nil, err
		}

		before, err := absentCount(t, rule.column)
		if err != nil {
			return nil, nil, err
		}
		report.Columns = append(report.Columns, ColumnFill{
			Column:   rule.column,
			Strategy: rule.strategy.String(),
			Filled:   before,
		})
		cleaned = filled

		c.logger.InfoContext(ctx, "filled missing values",
			slog.String("column", rule.column),
			slog.String("strategy", rule.strategy.String()),
			slog.Int("filled", before))
	}

	c.logger.InfoContext(ctx, "cleaning complete",
		slog.Int("rows", cleaned.NumRows()),
		slog.Int("total_filled", report.TotalFilled()))

	return cleaned, report, nil
}

// applyRule fills one column of cur. Statistics come from the original
// input table.
func (c *Cleaner) applyRule(input, cur *frame.Table, rule FillRule) (*frame.Table, error) {
	if rule.strategy == fillConstantText {
		return cur.FillText(rule.column, rule.text)
	}

	kind, err := input.ColumnKind(rule.column)
	if err != nil {
		return nil, err
	}

	switch kind {
	case frame.KindInt:
		view, err := input.IntColumn(rule.column)
		if err != nil {
			return nil, err
		}
		present := view.Present()
		if len(present) == 0 {
			return nil, errors.NewEmptyColumnError(rule.column)
		}
		stat := c.computeStat(rule.strategy, intsToFloats(present))
		return cur.FillInt(rule.column, roundToInt(stat))

	case frame.KindFloat:
		view, err := input.FloatColumn(rule.column)
		if err != nil {
			return nil, err
		}
		present := view.Present()
		if len(present) == 0 {
			return nil, errors.NewEmptyColumnError(rule.column)
		}
		stat := c.computeStat(rule.strategy, present)
		return cur.FillFloat(rule.column, stat)

	default:
		return nil, errors.NewKindMismatchError(rule.column, kind.String(), "int or float")
	}
}

func (c *Cleaner) computeStat(strategy fillStrategy, values []float64) float64 {
	if strategy == fillMedian {
		return calculateMedian(values)
	}
	return calculateMean(values)
}

func absentCount(t *frame.Table, column string) (int, error) {
	for _, ac := range t.AbsentCounts() {
		if ac.Column == column {
			return ac.Count, nil
		}
	}
	return 0, errors.NewUnknownColumnError(column)
}
