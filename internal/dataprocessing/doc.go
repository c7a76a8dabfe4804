// Package dataprocessing provides the cleaning, validation, and
// transformation stages for tabular staff data. It consolidates the
// rule-driven missing value handling, column summarization, and numeric
// binning that make up the data cleaning pipeline.
//
// # Architecture
//
// The package is organized into three main components:
//
// 1. Cleaner: Applies fill rules to replace absent cells
// 2. Summarizer: Computes column ranges and distinct value sets
// 3. BinSpec: Maps numeric columns into labeled category columns
//
// # Usage
//
// Cleaning with fill rules:
//
//	cleaner, err := dataprocessing.NewCleaner(logger,
//	    dataprocessing.FillConstantText("name", "Unknown"),
//	    dataprocessing.FillMedian("age"),
//	    dataprocessing.FillMean("salary"),
//	)
//	cleaned, report, err := cleaner.Clean(ctx, table)
//
// Summarizing columns:
//
//	summarizer := dataprocessing.NewSummarizer(logger)
//	lo, hi, err := summarizer.IntRange(ctx, cleaned, "age")
//
// Binning into categories:
//
//	bins, err := dataprocessing.NewBinSpec(
//	    []float64{0, 25, 35, 50, 100},
//	    []string{"Young", "Adult", "Senior", "Elder"},
//	)
//	binned, err := bins.Cut(cleaned, "age", "age_group")
//
// # Data Flow
//
// The typical data flow through this package:
//
//	Raw Table → Cleaner → Complete Table → Summarizer / BinSpec → Report
//
// # Error Handling
//
// All functions return detailed errors that include context about what
// failed:
//
//	- Fill errors name the column and the rule that rejected it
//	- Statistics over columns with no present values fail explicitly
//	- Binning errors identify the offending source column
//
// # Testing
//
// The package includes comprehensive tests for all components.
// Use table-driven tests when adding new functionality.
package dataprocessing
