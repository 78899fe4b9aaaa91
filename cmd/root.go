// =============================================================================
// Automated Data Analysis - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands are attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (analyzer)
//   ├── analyzeCmd  (analyzer analyze)
//   ├── validateCmd (analyzer validate)
//   └── versionCmd  (analyzer version)
//
// CONFIGURATION:
//   Before any subcommand runs, the root command:
//   1. Loads the configuration (defaults, --config file, ANALYZER_* env)
//   2. Applies the global logging flags
//   3. Builds the logger (stderr, so the report on stdout stays clean)
//
// =============================================================================

package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/automated-data-analysis/internal/config"
	"github.com/ginjaninja78/automated-data-analysis/internal/logging"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the optional YAML configuration file.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// logFormat overrides the configured log format when set.
var logFormat string

// cfg is the configuration loaded before the subcommand runs.
var cfg *config.Config

// logger is the CLI logger built from cfg.
var logger *slog.Logger

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "analyzer",

	Short: "Automated Data Analysis - clean and summarize CSV and Excel files",

	Long: `Automated Data Analysis loads a CSV or Excel file, removes duplicate rows,
handles missing values, checks numeric columns for format and accuracy issues,
computes summary statistics and prints a report.

Key Features:
  - CSV (any delimiter, several encodings) and XLSX input
  - Per-column fill strategies: mean, median, mode or a literal value
  - Configurable missing-value threshold for dropping sparse rows
  - Configuration via YAML file, ANALYZER_* environment variables or flags

Example Usage:
  analyzer analyze data.csv                       # Analyze a single file
  analyzer analyze data.csv --fill Age=median     # Fill Age gaps with the median
  analyzer analyze ./exports --stats mean,max     # Analyze every file in a directory
  analyzer validate --config ./analyzer.yaml      # Check a configuration file`,

	SilenceUsage:  true,
	SilenceErrors: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"",
		"Path to a YAML configuration file (optional)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable debug logging",
	)

	rootCmd.PersistentFlags().StringVar(
		&logFormat,
		"log-format",
		"",
		"Log format: text or json (overrides the configuration)",
	)
}

// initConfig loads the configuration and builds the logger.
func initConfig() error {
	loaded, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if verbose {
		loaded.Logging.Level = "debug"
	}
	if logFormat != "" {
		loaded.Logging.Format = logFormat
	}

	loaded.Normalize()
	if err := loaded.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	cfg = loaded
	logger = logging.New(os.Stderr, cfg.Logging)
	slog.SetDefault(logger)

	if cfgFile != "" {
		logger.Debug("using config file", slog.String("path", cfgFile))
	}

	return nil
}
