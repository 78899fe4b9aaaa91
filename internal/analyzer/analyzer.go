// =============================================================================
// Automated Data Analysis - Analyzer Module
// =============================================================================
//
// This module contains the pipeline orchestration. It runs every stage for a
// single file, from loading to the printed report.
//
// ANALYSIS PIPELINE:
//   1. Load the file into a table (prints a preview)
//   2. Remove duplicate rows
//   3. Drop sparse rows and fill missing values
//   4. Check numeric columns for non-numeric values
//   5. Compute summary statistics
//   6. Check numeric columns for zero values
//   7. Print the report
//
// Only step 1 can fail. Once the file is loaded every later step runs exactly
// once, in order, and the cleaned table is returned.
//
// =============================================================================

package analyzer

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/ginjaninja78/automated-data-analysis/internal/cleaning"
	"github.com/ginjaninja78/automated-data-analysis/internal/loader"
	"github.com/ginjaninja78/automated-data-analysis/internal/logging"
	"github.com/ginjaninja78/automated-data-analysis/internal/report"
	"github.com/ginjaninja78/automated-data-analysis/internal/statistics"
	"github.com/ginjaninja78/automated-data-analysis/internal/table"
	"github.com/ginjaninja78/automated-data-analysis/internal/validation"
)

// =============================================================================
// OPTIONS
// =============================================================================

// Options configures one analysis run. The zero value analyzes with the
// defaults and prints to stdout.
type Options struct {
	// FillStrategy maps column names to "mean", "median", "mode" or a
	// literal fill value. Columns not listed use the automatic strategy.
	FillStrategy map[string]string

	// StatsColumns selects the columns to summarize.
	// Default: every numeric column
	StatsColumns []string

	// Stats selects the statistics to compute.
	// Default: mean, median, std, min, max
	Stats []string

	// MissingThreshold is the largest tolerated fraction of missing cells
	// in a row. Nil means 0.7; a pointer to 0 drops every row with a gap.
	MissingThreshold *float64

	// ColumnTypes forces the kind of the named columns at load time.
	ColumnTypes map[string]table.Kind

	// MissingValues are extra cell values read as missing.
	MissingValues []string

	// Delimiter is the CSV field separator. Default: ","
	Delimiter string

	// Encoding is the CSV source encoding. Default: "UTF-8"
	Encoding string

	// Output receives the load preview and the report. Nil means stdout.
	Output io.Writer

	// Logger receives diagnostics. Nil uses slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns the defaults spelled out.
func DefaultOptions() Options {
	threshold := cleaning.DefaultThreshold
	return Options{
		MissingThreshold: &threshold,
		Delimiter:        ",",
		Encoding:         "UTF-8",
		Output:           os.Stdout,
	}
}

// threshold returns the configured missing threshold or the default.
func (o Options) threshold() float64 {
	if o.MissingThreshold == nil {
		return cleaning.DefaultThreshold
	}
	return *o.MissingThreshold
}

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result holds the cleaned table and every stage report of one run.
type Result struct {
	// RunID identifies the run in logs.
	RunID string

	// FilePath is the analyzed file.
	FilePath string

	// Table is the cleaned table.
	Table *table.Table

	// RowsLoaded is the row count right after loading.
	RowsLoaded int

	DuplicatesRemoved  int
	MissingRowsRemoved int
	FillReport         cleaning.FillReport
	FormatIssues       validation.Issues
	Statistics         statistics.Result
	AccuracyIssues     validation.Issues

	// ProcessingTime is the wall time of the run.
	ProcessingTime time.Duration
}

// Summary returns the report view of the result.
func (r *Result) Summary(threshold float64) report.Summary {
	return report.Summary{
		DuplicatesRemoved:  r.DuplicatesRemoved,
		MissingRowsRemoved: r.MissingRowsRemoved,
		Threshold:          threshold,
		FillReport:         r.FillReport,
		FormatIssues:       r.FormatIssues,
		Statistics:         r.Statistics,
		AccuracyIssues:     r.AccuracyIssues,
	}
}

// =============================================================================
// ANALYZER STRUCTURE
// =============================================================================

// Analyzer runs the pipeline for a single file.
type Analyzer struct {
	path   string
	opts   Options
	logger *slog.Logger
}

// New creates an Analyzer for the file at path.
func New(path string, opts Options) *Analyzer {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	return &Analyzer{
		path:   path,
		opts:   opts,
		logger: logging.Component(opts.Logger, "analyzer"),
	}
}

// AnalyzeData runs the whole pipeline on the file at path and returns the
// cleaned table. The report is written to opts.Output.
func AnalyzeData(path string, opts Options) (*table.Table, error) {
	result, err := New(path, opts).Run()
	if err != nil {
		return nil, err
	}
	return result.Table, nil
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run executes the analysis pipeline.
//
// RETURNS:
//   - The run result.
//   - An error only if the file could not be loaded; no partial result is
//     returned in that case.
func (a *Analyzer) Run() (*Result, error) {
	startTime := time.Now()
	result := &Result{
		RunID:    uuid.New().String(),
		FilePath: a.path,
	}
	logger := a.logger.With(slog.String("run_id", result.RunID))

	logger.Info("starting analysis", slog.String("path", a.path))

	// =========================================================================
	// STEP 1: LOAD
	// =========================================================================
	// Unsupported extensions and unreadable files abort the run here.

	t, err := loader.Load(a.path, loader.Options{
		Delimiter:     a.opts.Delimiter,
		Encoding:      a.opts.Encoding,
		MissingValues: a.opts.MissingValues,
		ColumnTypes:   a.opts.ColumnTypes,
		Output:        a.opts.Output,
		Logger:        a.opts.Logger,
	})
	if err != nil {
		logger.Error("failed to load data", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to load data: %w", err)
	}
	result.RowsLoaded = t.NumRows()

	// =========================================================================
	// STEP 2: REMOVE DUPLICATES
	// =========================================================================

	t, result.DuplicatesRemoved = cleaning.RemoveDuplicates(t)
	logger.Debug("removed duplicates", slog.Int("removed", result.DuplicatesRemoved))

	// =========================================================================
	// STEP 3: HANDLE MISSING VALUES
	// =========================================================================
	// Rows above the threshold go first, so fill values are computed from
	// the surviving rows only.

	t, result.MissingRowsRemoved, result.FillReport = cleaning.HandleMissingValues(
		t, a.opts.threshold(), a.opts.FillStrategy)
	logger.Debug("handled missing values",
		slog.Int("rows_removed", result.MissingRowsRemoved),
		slog.Int("columns_filled", len(result.FillReport)))

	for _, entry := range result.FillReport {
		if entry.Filled == 0 {
			logger.Warn("could not resolve fill value, cells left missing",
				slog.String("column", entry.Column),
				slog.String("method", entry.Method))
		}
	}

	// =========================================================================
	// STEP 4: CHECK DATA FORMAT
	// =========================================================================

	result.FormatIssues = validation.CheckDataFormat(t)
	for _, issue := range result.FormatIssues {
		logger.Warn("format issue", slog.String("column", issue.Column), slog.Int("count", issue.Count))
	}

	// =========================================================================
	// STEP 5: CALCULATE STATISTICS
	// =========================================================================

	result.Statistics = statistics.GetStatistics(t, a.opts.StatsColumns, a.opts.Stats)
	for _, name := range a.opts.Stats {
		if !statistics.IsKnown(name) {
			logger.Debug("skipping unknown statistic", slog.String("stat", name))
		}
	}

	// =========================================================================
	// STEP 6: CHECK ACCURACY
	// =========================================================================

	result.AccuracyIssues = validation.CheckAccuracy(t)

	// =========================================================================
	// STEP 7: GENERATE REPORT
	// =========================================================================

	if err := report.Generate(a.opts.Output, result.Summary(a.opts.threshold())); err != nil {
		// The analysis itself succeeded; a broken output stream is not fatal.
		logger.Warn("failed to print report", slog.String("error", err.Error()))
	}

	// =========================================================================
	// COMPLETE
	// =========================================================================

	result.Table = t
	result.ProcessingTime = time.Since(startTime)

	logger.Info("analysis complete",
		slog.Int("rows", t.NumRows()),
		slog.Int("columns", t.NumCols()),
		slog.Duration("duration", result.ProcessingTime))

	return result, nil
}
