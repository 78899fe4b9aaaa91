// =============================================================================
// Automated Data Analysis - Loader Module
// =============================================================================
//
// This module turns a CSV or spreadsheet file into a table.Table.
//
// SUPPORTED FORMATS:
//   .csv         : delimited text, first row is the header
//   .xls / .xlsx : first sheet of the workbook, first row is the header
//
// Any other extension fails with ErrUnsupportedFormat before the file is
// touched.
//
// LOADING PROCESS:
//   1. Check the extension
//   2. Read the raw header and records (csv.go / xlsx.go)
//   3. Clean the header (blank and duplicate names, widened to the longest
//      record so no data column is lost)
//   4. Detect missing cells
//   5. Decide each column's kind (numeric when every present cell parses)
//   6. Convert the cells into typed values
//
// =============================================================================

package loader

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/ginjaninja78/automated-data-analysis/internal/logging"
	"github.com/ginjaninja78/automated-data-analysis/internal/table"
)

// =============================================================================
// ERRORS
// =============================================================================

// ErrUnsupportedFormat is matched by every UnsupportedFormatError.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// UnsupportedFormatError is returned when the file extension is not one of
// SupportedExtensions.
type UnsupportedFormatError struct {
	// Path is the rejected file.
	Path string

	// Extension is the extension found on Path (may be empty).
	Extension string
}

// Error implements the error interface.
func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format %q for %s: only CSV and Excel files are supported",
		e.Extension, filepath.Base(e.Path))
}

// Is lets errors.Is match ErrUnsupportedFormat.
func (e *UnsupportedFormatError) Is(target error) bool {
	return target == ErrUnsupportedFormat
}

// =============================================================================
// OPTIONS
// =============================================================================

// SupportedExtensions lists the accepted file extensions.
var SupportedExtensions = []string{".csv", ".xls", ".xlsx"}

// PreviewRows is the number of rows printed after loading.
const PreviewRows = 5

// defaultMissingValues are the cell values read as missing, matching what
// spreadsheet and dataframe tools conventionally treat as "not available".
var defaultMissingValues = []string{
	"", "#N/A", "#N/A N/A", "#NA", "-1.#IND", "-1.#QNAN", "-NaN", "-nan",
	"1.#IND", "1.#QNAN", "<NA>", "N/A", "NA", "NULL", "NaN", "None",
	"n/a", "nan", "null",
}

// Options controls how a file is read.
type Options struct {
	// Delimiter is the CSV field separator. See CSVSettings in the config
	// package for accepted names. Default: ","
	Delimiter string

	// Encoding is the CSV source encoding. Default: "UTF-8"
	Encoding string

	// MissingValues are extra cell values read as missing.
	MissingValues []string

	// ColumnTypes forces the kind of the named columns.
	ColumnTypes map[string]table.Kind

	// Output receives the load summary and preview. Nil disables them.
	Output io.Writer

	// Logger receives diagnostics. Nil uses slog.Default().
	Logger *slog.Logger
}

// =============================================================================
// LOAD
// =============================================================================

// Load reads the file at path into a table.
//
// RETURNS:
//   - The loaded table.
//   - An *UnsupportedFormatError for unknown extensions, or a wrapped read
//     error if the file cannot be opened or parsed.
func Load(path string, opts Options) (*table.Table, error) {
	logger := logging.Component(opts.Logger, "loader")

	ext := strings.ToLower(filepath.Ext(path))

	var (
		header  []string
		records [][]string
		err     error
	)

	switch ext {
	case ".csv":
		header, records, err = readCSV(path, opts)
	case ".xls", ".xlsx":
		header, records, err = readSpreadsheet(path)
	default:
		return nil, &UnsupportedFormatError{Path: path, Extension: ext}
	}
	if err != nil {
		return nil, err
	}

	t, err := buildTable(header, records, opts, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build table from %s: %w", filepath.Base(path), err)
	}

	logger.Info("loaded file",
		slog.String("path", path),
		slog.Int("rows", t.NumRows()),
		slog.Int("columns", t.NumCols()))

	if opts.Output != nil {
		if err := PrintSummary(opts.Output, t); err != nil {
			logger.Warn("failed to print preview", slog.String("error", err.Error()))
		}
	}

	return t, nil
}

// PrintSummary writes the load banner and a preview of the first rows.
func PrintSummary(w io.Writer, t *table.Table) error {
	fmt.Fprintf(w, "✅ Successfully loaded data with %d rows and %d columns\n", t.NumRows(), t.NumCols())
	fmt.Fprintln(w, "=== DATASET PREVIEW ===")
	return t.WriteHead(w, PreviewRows)
}

// =============================================================================
// TABLE CONSTRUCTION
// =============================================================================

// buildTable converts the raw header and records into typed columns.
func buildTable(header []string, records [][]string, opts Options, logger *slog.Logger) (*table.Table, error) {
	names := cleanHeaders(widenHeader(header, records))
	missing := missingSet(opts.MissingValues)

	for column := range opts.ColumnTypes {
		if !contains(names, column) {
			logger.Warn("column type override for unknown column", slog.String("column", column))
		}
	}

	columns := make([]*table.Column, len(names))
	for j, name := range names {
		raw := make([]string, len(records))
		for i, record := range records {
			if j < len(record) {
				raw[i] = strings.TrimSpace(record[j])
			}
		}

		kind, forced := opts.ColumnTypes[name]
		if !forced {
			kind = inferKind(raw, missing)
		}

		columns[j] = table.NewColumn(name, kind, convert(raw, kind, missing))

		logger.Debug("column loaded",
			slog.String("column", name),
			slog.String("kind", kind.String()),
			slog.Bool("forced", forced))
	}

	return table.New(columns...)
}

// widenHeader pads the header with blank names up to the widest record, so
// data under a blank trailing header cell (trimmed by spreadsheet readers)
// becomes an "Unnamed: <index>" column instead of being dropped.
func widenHeader(header []string, records [][]string) []string {
	width := len(header)
	for _, record := range records {
		if len(record) > width {
			width = len(record)
		}
	}
	if width == len(header) {
		return header
	}

	widened := make([]string, width)
	copy(widened, header)
	return widened
}

// cleanHeaders names blank headers "Unnamed: <index>" and suffixes repeated
// names with ".1", ".2", ...
func cleanHeaders(header []string) []string {
	cleaned := make([]string, len(header))
	used := make(map[string]bool, len(header))
	repeats := make(map[string]int)

	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}

		candidate := name
		for used[candidate] {
			repeats[name]++
			candidate = fmt.Sprintf("%s.%d", name, repeats[name])
		}

		used[candidate] = true
		cleaned[i] = candidate
	}

	return cleaned
}

// missingSet merges the default and configured missing markers.
func missingSet(extra []string) map[string]struct{} {
	set := make(map[string]struct{}, len(defaultMissingValues)+len(extra))
	for _, v := range defaultMissingValues {
		set[v] = struct{}{}
	}
	for _, v := range extra {
		set[strings.TrimSpace(v)] = struct{}{}
	}
	return set
}

// inferKind returns KindNumeric when every present cell parses as a number.
// A column without any present cell is numeric.
func inferKind(raw []string, missing map[string]struct{}) table.Kind {
	for _, cell := range raw {
		if _, isMissing := missing[cell]; isMissing {
			continue
		}
		if _, ok := table.ParseFloat(cell); !ok {
			return table.KindText
		}
	}
	return table.KindNumeric
}

// convert turns raw cells into values. Cells of a numeric column that fail
// coercion are kept as text so the format check can report them.
func convert(raw []string, kind table.Kind, missing map[string]struct{}) []table.Value {
	values := make([]table.Value, len(raw))
	for i, cell := range raw {
		if _, isMissing := missing[cell]; isMissing {
			values[i] = table.Missing()
			continue
		}
		if kind == table.KindNumeric {
			values[i] = table.Coerce(cell)
		} else {
			values[i] = table.Text(cell)
		}
	}
	return values
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}
