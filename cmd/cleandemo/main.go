// Command cleandemo runs the staff data cleaning demonstration. It
// builds the sample staff table, fills the missing values, validates the
// cleaned columns, derives age groups, and prints the whole report to
// stdout. Logs go to stderr so the report stays clean.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"datawash/internal/config"
	"datawash/internal/dataprocessing"
	"datawash/internal/frame"
	"datawash/internal/infrastructure"
	"datawash/internal/report"
)

// Age group intervals: a value lands in a bin when it is above the lower
// edge and at or below the upper edge.
var (
	ageBinEdges  = []float64{0, 25, 35, 50, 100}
	ageBinLabels = []string{"Young", "Adult", "Senior", "Elder"}
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}

	ctx := infrastructure.ContextWithTraceID(context.Background())

	if err := run(ctx, os.Stdout, logger); err != nil {
		infrastructure.WithError(logger, err).ErrorContext(ctx, "data cleaning run failed")
		os.Exit(1)
	}
}

// run executes the full cleaning pipeline and writes the report to out.
func run(ctx context.Context, out io.Writer, logger *slog.Logger) error {
	logger.InfoContext(ctx, "starting data cleaning run")

	table, err := buildStaffTable()
	if err != nil {
		return err
	}

	w := report.NewSectionWriter(out)
	w.Banner("Data Cleaning Example")
	w.Blank()
	w.Println("Original Data:")
	if err := printTable(w, table); err != nil {
		return err
	}

	w.Section("Handling Missing Values")
	w.Println("Missing values before cleaning:")
	w.Printf("%s", report.FormatAbsentCounts(table.AbsentCounts()))

	cleaner, err := dataprocessing.NewCleaner(
		infrastructure.WithComponent(logger, "cleaner"),
		dataprocessing.FillConstantText("name", "Unknown"),
		dataprocessing.FillMedian("age"),
		dataprocessing.FillMean("salary"),
		dataprocessing.FillConstantText("department", "Unknown"),
	)
	if err != nil {
		return err
	}

	cleaned, cleanReport, err := cleaner.Clean(ctx, table)
	if err != nil {
		return err
	}

	w.Blank()
	w.Println("Missing values after cleaning:")
	w.Printf("%s", report.FormatAbsentCounts(cleaned.AbsentCounts()))
	w.Blank()
	w.Println("Cleaned data:")
	if err := printTable(w, cleaned); err != nil {
		return err
	}

	w.Section("Data Validation")
	summarizer := dataprocessing.NewSummarizer(infrastructure.WithComponent(logger, "summarizer"))

	ageLo, ageHi, err := summarizer.IntRange(ctx, cleaned, "age")
	if err != nil {
		return err
	}
	w.Printf("Age range: %d - %d\n", ageLo, ageHi)

	salaryLo, salaryHi, err := summarizer.FloatRange(ctx, cleaned, "salary")
	if err != nil {
		return err
	}
	w.Printf("Salary range: %s - %s\n", report.Currency(salaryLo), report.Currency(salaryHi))

	departments, err := summarizer.Distinct(ctx, cleaned, "department")
	if err != nil {
		return err
	}
	w.Printf("Unique departments: %s\n", report.FormatValues(departments))

	w.Section("Data Transformation")
	bins, err := dataprocessing.NewBinSpec(ageBinEdges, ageBinLabels)
	if err != nil {
		return err
	}
	binned, err := bins.Cut(cleaned, "age", "age_group")
	if err != nil {
		return err
	}
	groups, err := binned.Select("name", "age", "age_group")
	if err != nil {
		return err
	}
	w.Println("Added age groups:")
	if err := printTable(w, groups); err != nil {
		return err
	}

	w.Blank()
	w.Banner("Data Cleaning Complete!")

	if err := w.Err(); err != nil {
		return err
	}

	logger.InfoContext(ctx, "data cleaning run finished",
		slog.Int("rows", cleaned.NumRows()),
		slog.Int("cells_filled", cleanReport.TotalFilled()))

	return nil
}

// buildStaffTable assembles the sample staff records, including the
// missing cells the pipeline cleans up.
func buildStaffTable() (*frame.Table, error) {
	b, err := frame.NewBuilder(
		frame.ColumnSpec{Name: "name", Kind: frame.KindText},
		frame.ColumnSpec{Name: "age", Kind: frame.KindInt},
		frame.ColumnSpec{Name: "salary", Kind: frame.KindFloat},
		frame.ColumnSpec{Name: "department", Kind: frame.KindText},
	)
	if err != nil {
		return nil, err
	}

	rows := [][]frame.Cell{
		{frame.Text("Alice"), frame.Int(25), frame.Float(50000), frame.Text("IT")},
		{frame.Text("Bob"), frame.Int(30), frame.Float(60000), frame.Text("HR")},
		{frame.Text("Charlie"), frame.Absent(), frame.Float(55000), frame.Text("IT")},
		{frame.Text("David"), frame.Int(35), frame.Absent(), frame.Text("Finance")},
		{frame.Text("Eve"), frame.Int(28), frame.Float(65000), frame.Absent()},
		{frame.Absent(), frame.Int(40), frame.Float(70000), frame.Text("IT")},
	}
	for _, row := range rows {
		if err := b.Append(row...); err != nil {
			return nil, err
		}
	}

	return b.Build(), nil
}

// printTable renders a table with exactly one trailing newline.
func printTable(w *report.SectionWriter, t *frame.Table) error {
	rendered, err := report.RenderTable(t)
	if err != nil {
		return err
	}
	w.Println(strings.TrimRight(rendered, "\n"))
	return nil
}
