// =============================================================================
// Automated Data Analysis - Configuration Module
// =============================================================================
//
// This module is responsible for loading the analysis configuration. Settings
// are layered, later sources overriding earlier ones:
//
//   1. Built-in defaults (Default)
//   2. The YAML configuration file (--config)
//   3. Environment variables prefixed with ANALYZER_
//   4. Command-line flags (applied by the cmd package)
//
// EXAMPLE FILE:
//   missing_threshold: 0.7
//   fill_strategy:
//     Age: median
//     Salary: mean
//     City: Unknown
//   stats_columns: [Age, Salary]
//   stats: [mean, median, min, max]
//   column_types:
//     ZipCode: text
//   csv:
//     delimiter: ","
//     encoding: UTF-8
//   logging:
//     level: info
//     format: text
//
// ENVIRONMENT:
//   ANALYZER_MISSING_THRESHOLD=0.5
//   ANALYZER_FILL_STRATEGY=Age:median,Salary:mean
//   ANALYZER_STATS_COLUMNS=Age,Salary
//   ANALYZER_CSV_DELIMITER=;
//   ANALYZER_LOGGING_LEVEL=debug
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of every environment override.
const EnvPrefix = "ANALYZER"

// DefaultMissingThreshold is the default maximum share of missing cells a row
// may have before it is dropped.
const DefaultMissingThreshold = 0.7

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the settings of one analysis run.
type Config struct {
	// MissingThreshold is the maximum tolerated share of missing cells in a
	// row. Rows above it are dropped before filling.
	// Default: 0.7
	MissingThreshold float64 `yaml:"missing_threshold" envconfig:"MISSING_THRESHOLD" validate:"gte=0,lte=1"`

	// FillStrategy maps a column name to "mean", "median", "mode" or a
	// literal replacement value. Columns not listed use the automatic
	// strategy.
	FillStrategy map[string]string `yaml:"fill_strategy,omitempty" envconfig:"FILL_STRATEGY" validate:"dive,keys,required,endkeys,required"`

	// StatsColumns lists the columns to summarize.
	// Default: every numeric column.
	StatsColumns []string `yaml:"stats_columns,omitempty" envconfig:"STATS_COLUMNS" validate:"dive,required"`

	// Stats lists the statistics to compute. Unknown names are skipped.
	// Default: mean, median, std, min, max.
	Stats []string `yaml:"stats,omitempty" envconfig:"STATS"`

	// ColumnTypes forces the declared type of a column ("numeric" or
	// "text") instead of inferring it from the data.
	ColumnTypes map[string]string `yaml:"column_types,omitempty" envconfig:"COLUMN_TYPES" validate:"dive,keys,required,endkeys,oneof=numeric text"`

	// MissingValues lists extra cell values treated as missing in addition
	// to the built-in markers (empty, NA, NaN, null, ...).
	MissingValues []string `yaml:"missing_values,omitempty" envconfig:"MISSING_VALUES"`

	// CSV contains settings for reading CSV files.
	CSV CSVSettings `yaml:"csv" envconfig:"CSV"`

	// Logging controls diagnostic output on stderr.
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
}

// CSVSettings contains settings for parsing CSV files.
type CSVSettings struct {
	// Delimiter separates fields. Accepts a single character or one of the
	// names "tab", "pipe", "semicolon".
	// Default: ","
	Delimiter string `yaml:"delimiter" envconfig:"DELIMITER" validate:"required"`

	// Encoding is the character encoding of the file.
	// Valid values: "UTF-8", "ISO-8859-1", "WINDOWS-1252", "UTF-16"
	// Default: "UTF-8"
	Encoding string `yaml:"encoding" envconfig:"ENCODING" validate:"oneof=UTF-8 ISO-8859-1 WINDOWS-1252 UTF-16"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	// Level is one of "debug", "info", "warn", "error".
	// Default: "info"
	Level string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`

	// Format is "text" or "json".
	// Default: "text"
	Format string `yaml:"format" envconfig:"FORMAT" validate:"oneof=text json"`
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		MissingThreshold: DefaultMissingThreshold,
		CSV: CSVSettings{
			Delimiter: ",",
			Encoding:  "UTF-8",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load builds the configuration from defaults, the optional YAML file at
// configPath and the environment.
//
// PARAMETERS:
//   - configPath: Path to a YAML file. Empty means defaults and environment
//     only; a non-empty path must exist.
//
// RETURNS:
//   - The validated configuration.
//   - An error if the file cannot be read or parsed, or validation fails.
func Load(configPath string) (*Config, error) {
	cfg := Default()

	if configPath != "" {
		if err := cfg.loadFile(configPath); err != nil {
			return nil, err
		}
	}

	// Environment variables only override what they set; fields without a
	// matching variable keep their file or default value.
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	cfg.Normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// loadFile overlays the YAML file onto the configuration.
func (c *Config) loadFile(configPath string) error {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}

// Normalize canonicalizes case-insensitive settings. Load calls it; callers
// that modify a loaded configuration call it again before Validate.
func (c *Config) Normalize() {
	c.CSV.Encoding = strings.ToUpper(strings.TrimSpace(c.CSV.Encoding))
	switch c.CSV.Encoding {
	case "UTF8":
		c.CSV.Encoding = "UTF-8"
	case "LATIN1", "LATIN-1", "ISO8859-1":
		c.CSV.Encoding = "ISO-8859-1"
	case "CP1252":
		c.CSV.Encoding = "WINDOWS-1252"
	case "UTF16":
		c.CSV.Encoding = "UTF-16"
	}

	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "warning" {
		c.Logging.Level = "warn"
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))

	for column, kind := range c.ColumnTypes {
		c.ColumnTypes[column] = strings.ToLower(strings.TrimSpace(kind))
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

var validate = validator.New()

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, describeFieldError(fe))
	}
	return errors.New(strings.Join(messages, "; "))
}

// describeFieldError turns a validator error into a readable sentence.
func describeFieldError(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Config.")

	switch fe.Tag() {
	case "gte", "lte":
		return fmt.Sprintf("%s must be between 0 and 1 (got %v)", field, fe.Value())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s] (got %q)", field, fe.Param(), fe.Value())
	case "required":
		return fmt.Sprintf("%s must not be empty", field)
	default:
		return fmt.Sprintf("%s failed %q validation", field, fe.Tag())
	}
}
