// =============================================================================
// Automated Data Analysis - Report Module
// =============================================================================
//
// This module renders the results of one pipeline run as console text.
//
// REPORT LAYOUT:
//
//   ==================================================
//                  DATA ANALYSIS REPORT
//   ==================================================
//
//   === Data Cleaning Summary ===
//   Removed duplicates: 1 rows
//   Removed rows with >70% missing values: 0 rows
//
//   Missing values filled:
//   - Age: 1 values filled using median
//
//   No data format issues found
//
//   === Statistical Summary ===
//
//   Age:
//     mean: 2.50
//
//   No accuracy issues found
//
//   ==================================================
//                   ANALYSIS COMPLETE
//   ==================================================
//
// Sections with nothing to report print a one-line "No ... found" message
// instead, except the statistical summary which is omitted.
//
// =============================================================================

package report

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/ginjaninja78/automated-data-analysis/internal/cleaning"
	"github.com/ginjaninja78/automated-data-analysis/internal/statistics"
	"github.com/ginjaninja78/automated-data-analysis/internal/validation"
)

// Width is the width of the report banners.
const Width = 50

// Summary collects the stage results rendered by Generate.
type Summary struct {
	// DuplicatesRemoved is the number of duplicate rows dropped.
	DuplicatesRemoved int

	// MissingRowsRemoved is the number of rows dropped by the threshold.
	MissingRowsRemoved int

	// Threshold is the missing-fraction threshold that was applied.
	Threshold float64

	FillReport     cleaning.FillReport
	FormatIssues   validation.Issues
	Statistics     statistics.Result
	AccuracyIssues validation.Issues
}

// Generate writes the report for s to w.
func Generate(w io.Writer, s Summary) error {
	var buf bytes.Buffer

	writeBanner(&buf, "DATA ANALYSIS REPORT")

	// Cleaning
	buf.WriteString("\n=== Data Cleaning Summary ===\n")
	fmt.Fprintf(&buf, "Removed duplicates: %d rows\n", s.DuplicatesRemoved)
	fmt.Fprintf(&buf, "Removed rows with >%s%% missing values: %d rows\n",
		FormatPercent(s.Threshold), s.MissingRowsRemoved)

	if len(s.FillReport) > 0 {
		buf.WriteString("\nMissing values filled:\n")
		for _, e := range s.FillReport {
			fmt.Fprintf(&buf, "- %s: %d values filled using %s\n", e.Column, e.Filled, e.Method)
		}
	} else {
		buf.WriteString("\nNo missing values found\n")
	}

	// Format
	if len(s.FormatIssues) > 0 {
		buf.WriteString("\n=== Format Issues ===\n")
		writeIssues(&buf, s.FormatIssues)
	} else {
		buf.WriteString("\nNo data format issues found\n")
	}

	// Statistics
	if len(s.Statistics) > 0 {
		buf.WriteString("\n=== Statistical Summary ===\n")
		for _, cs := range s.Statistics {
			fmt.Fprintf(&buf, "\n%s:\n", cs.Column)
			for _, st := range cs.Stats {
				fmt.Fprintf(&buf, "  %s: %s\n", st.Name, FormatValue(st.Value))
			}
		}
	}

	// Accuracy
	if len(s.AccuracyIssues) > 0 {
		buf.WriteString("\n=== Accuracy Issues ===\n")
		writeIssues(&buf, s.AccuracyIssues)
	} else {
		buf.WriteString("\nNo accuracy issues found\n")
	}

	buf.WriteString("\n")
	writeBanner(&buf, "ANALYSIS COMPLETE")

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func writeIssues(buf *bytes.Buffer, issues validation.Issues) {
	for _, i := range issues {
		fmt.Fprintf(buf, "- %s\n", i)
	}
}

func writeBanner(buf *bytes.Buffer, title string) {
	rule := strings.Repeat("=", Width)
	buf.WriteString(rule + "\n")
	buf.WriteString(center(title, Width) + "\n")
	buf.WriteString(rule + "\n")
}

// center left-pads s so it sits in the middle of width columns.
func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad/2) + s
}

// FormatValue renders a statistic with two decimals. Non-finite values
// render as "nan", "inf" or "-inf".
func FormatValue(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	default:
		return strconv.FormatFloat(f, 'f', 2, 64)
	}
}

// FormatPercent renders a fraction as a percentage with at most two
// decimals, e.g. 0.7 -> "70", 0.125 -> "12.5".
func FormatPercent(fraction float64) string {
	return strconv.FormatFloat(math.Round(fraction*10000)/100, 'f', -1, 64)
}
