package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "analyzer.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultMissingThreshold, cfg.MissingThreshold)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
	assert.Equal(t, "UTF-8", cfg.CSV.Encoding)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Nil(t, cfg.FillStrategy)
	assert.Nil(t, cfg.Stats)
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
missing_threshold: 0.5
fill_strategy:
  Age: median
  City: Unknown
stats_columns: [Age, Salary]
stats: [mean, max]
column_types:
  ZipCode: Text
csv:
  delimiter: ";"
  encoding: latin1
logging:
  level: WARNING
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0.5, cfg.MissingThreshold)
	assert.Equal(t, map[string]string{"Age": "median", "City": "Unknown"}, cfg.FillStrategy)
	assert.Equal(t, []string{"Age", "Salary"}, cfg.StatsColumns)
	assert.Equal(t, []string{"mean", "max"}, cfg.Stats)
	assert.Equal(t, map[string]string{"ZipCode": "text"}, cfg.ColumnTypes)
	assert.Equal(t, ";", cfg.CSV.Delimiter)
	assert.Equal(t, "ISO-8859-1", cfg.CSV.Encoding)
	assert.Equal(t, "warn", cfg.Logging.Level)
	// Unset keys keep their defaults.
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoadZeroThresholdIsKept(t *testing.T) {
	cfg, err := Load(writeConfig(t, "missing_threshold: 0\n"))
	require.NoError(t, err)
	assert.Equal(t, 0.0, cfg.MissingThreshold)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, "missing_threshold: 0.5\nstats: [mean]\n")

	t.Setenv("ANALYZER_MISSING_THRESHOLD", "0.25")
	t.Setenv("ANALYZER_FILL_STRATEGY", "Age:mean,Salary:mode")
	t.Setenv("ANALYZER_CSV_DELIMITER", "tab")
	t.Setenv("ANALYZER_LOGGING_FORMAT", "json")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0.25, cfg.MissingThreshold)
	assert.Equal(t, map[string]string{"Age": "mean", "Salary": "mode"}, cfg.FillStrategy)
	assert.Equal(t, "tab", cfg.CSV.Delimiter)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, []string{"mean"}, cfg.Stats)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"threshold out of range", "missing_threshold: 1.5\n", "MissingThreshold"},
		{"bad column type", "column_types:\n  Age: date\n", "ColumnTypes"},
		{"bad encoding", "csv:\n  encoding: EBCDIC\n", "Encoding"},
		{"bad log level", "logging:\n  level: loud\n", "Level"},
		{"malformed yaml", "fill_strategy: [\n", "failed to parse config file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}
