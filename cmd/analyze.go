// =============================================================================
// Automated Data Analysis - Analyze Command
// =============================================================================
//
// This file defines the 'analyze' command, which runs the full pipeline on
// one or more files.
//
// COMMAND USAGE:
//   analyzer analyze <file|dir>... [flags]
//
// FLAGS:
//   --fill       : Fill strategy per column, e.g. Age=median,City=Unknown
//   --columns    : Columns to summarize (default: every numeric column)
//   --stats      : Statistics to compute (default: mean,median,std,min,max)
//   --threshold  : Max missing fraction per row before it is dropped
//   --type       : Force a column type, e.g. ZipCode=text
//   --na         : Extra cell values treated as missing
//   --delimiter  : CSV field delimiter
//   --encoding   : CSV source encoding
//
// Flags override the configuration file and environment. Files are analyzed
// one after another; a failing file does not stop the remaining ones.
//
// =============================================================================

package cmd

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/automated-data-analysis/internal/analyzer"
	"github.com/ginjaninja78/automated-data-analysis/internal/config"
	"github.com/ginjaninja78/automated-data-analysis/internal/loader"
	"github.com/ginjaninja78/automated-data-analysis/internal/table"
	"github.com/ginjaninja78/automated-data-analysis/pkg/utils"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

var (
	fillFlag          map[string]string
	columnsFlag       []string
	statsFlag         []string
	thresholdFlag     float64
	typeFlag          map[string]string
	missingValuesFlag []string
	delimiterFlag     string
	encodingFlag      string
)

// =============================================================================
// ANALYZE COMMAND DEFINITION
// =============================================================================

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file|dir>...",
	Short: "Clean, check and summarize CSV and Excel files",
	Long: `The analyze command loads each file, removes duplicate rows, drops rows with
too many missing values, fills the remaining gaps, checks numeric columns for
non-numeric and zero values, computes statistics and prints a report.

Directory arguments expand to the .csv, .xls and .xlsx files directly inside
them.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := applyAnalyzeFlags(cmd, cfg); err != nil {
			return err
		}
		return runAnalyze(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	flags := analyzeCmd.Flags()
	flags.StringToStringVar(&fillFlag, "fill", nil, "Fill strategy per column (mean, median, mode or a literal), e.g. Age=median")
	flags.StringSliceVar(&columnsFlag, "columns", nil, "Columns to summarize (default: all numeric columns)")
	flags.StringSliceVar(&statsFlag, "stats", nil, "Statistics to compute: mean, median, std, min, max")
	flags.Float64Var(&thresholdFlag, "threshold", config.DefaultMissingThreshold, "Drop rows whose missing fraction exceeds this value")
	flags.StringToStringVar(&typeFlag, "type", nil, "Force a column type (numeric or text), e.g. ZipCode=text")
	flags.StringSliceVar(&missingValuesFlag, "na", nil, "Extra cell values treated as missing")
	flags.StringVar(&delimiterFlag, "delimiter", "", "CSV delimiter: a character, or tab, pipe, semicolon")
	flags.StringVar(&encodingFlag, "encoding", "", "CSV encoding: UTF-8, ISO-8859-1, WINDOWS-1252, UTF-16")
}

// applyAnalyzeFlags layers the explicitly set flags over c and validates the
// result.
func applyAnalyzeFlags(cmd *cobra.Command, c *config.Config) error {
	flags := cmd.Flags()

	if flags.Changed("fill") {
		if c.FillStrategy == nil {
			c.FillStrategy = make(map[string]string, len(fillFlag))
		}
		for column, strategy := range fillFlag {
			c.FillStrategy[column] = strategy
		}
	}
	if flags.Changed("columns") {
		c.StatsColumns = columnsFlag
	}
	if flags.Changed("stats") {
		c.Stats = statsFlag
	}
	if flags.Changed("threshold") {
		c.MissingThreshold = thresholdFlag
	}
	if flags.Changed("type") {
		if c.ColumnTypes == nil {
			c.ColumnTypes = make(map[string]string, len(typeFlag))
		}
		for column, kind := range typeFlag {
			c.ColumnTypes[column] = kind
		}
	}
	if flags.Changed("na") {
		c.MissingValues = append(c.MissingValues, missingValuesFlag...)
	}
	if flags.Changed("delimiter") {
		c.CSV.Delimiter = delimiterFlag
	}
	if flags.Changed("encoding") {
		c.CSV.Encoding = encodingFlag
	}

	c.Normalize()
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// analyzerOptions converts the configuration into pipeline options.
func analyzerOptions(c *config.Config) (analyzer.Options, error) {
	kinds := make(map[string]table.Kind, len(c.ColumnTypes))
	for column, name := range c.ColumnTypes {
		kind, err := table.ParseKind(name)
		if err != nil {
			return analyzer.Options{}, fmt.Errorf("column %s: %w", column, err)
		}
		kinds[column] = kind
	}

	threshold := c.MissingThreshold

	return analyzer.Options{
		FillStrategy:     c.FillStrategy,
		StatsColumns:     c.StatsColumns,
		Stats:            c.Stats,
		MissingThreshold: &threshold,
		ColumnTypes:      kinds,
		MissingValues:    c.MissingValues,
		Delimiter:        c.CSV.Delimiter,
		Encoding:         c.CSV.Encoding,
	}, nil
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// runAnalyze analyzes every input file in order.
func runAnalyze(cmd *cobra.Command, args []string) error {
	startTime := time.Now()
	out := cmd.OutOrStdout()

	// =========================================================================
	// STEP 1: RESOLVE INPUT FILES
	// =========================================================================

	files, err := utils.ExpandInputs(args, loader.SupportedExtensions)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintln(out, "No CSV or Excel files found.")
		return nil
	}

	opts, err := analyzerOptions(cfg)
	if err != nil {
		return err
	}
	opts.Output = out
	opts.Logger = logger

	logger.Debug("resolved input files", slog.Int("count", len(files)))

	// =========================================================================
	// STEP 2: ANALYZE FILES
	// =========================================================================

	var failures []error
	for _, file := range files {
		if len(files) > 1 {
			fmt.Fprintf(out, "\n>>> %s\n", file)
		}

		if _, err := analyzer.New(file, opts).Run(); err != nil {
			failures = append(failures, fmt.Errorf("%s: %w", filepath.Base(file), err))
			if len(files) > 1 {
				fmt.Fprintf(out, "  ✗ %s: %v\n", filepath.Base(file), err)
			}
		}
	}

	// =========================================================================
	// STEP 3: PRINT SUMMARY
	// =========================================================================

	if len(files) == 1 {
		if len(failures) > 0 {
			return failures[0]
		}
		return nil
	}

	fmt.Fprintln(out, "\n=== Processing Complete ===")
	fmt.Fprintf(out, "Total files:     %d\n", len(files))
	fmt.Fprintf(out, "Successful:      %d\n", len(files)-len(failures))
	fmt.Fprintf(out, "Errors:          %d\n", len(failures))
	fmt.Fprintf(out, "Time elapsed:    %s\n", time.Since(startTime).Round(time.Millisecond))

	if len(failures) > 0 {
		return fmt.Errorf("%d of %d file(s) failed", len(failures), len(files))
	}
	return nil
}
