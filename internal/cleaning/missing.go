// =============================================================================
// Automated Data Analysis - Missing Value Handling
// =============================================================================
//
// Rows with too many gaps are dropped first; the remaining gaps are filled
// column by column from the surviving rows.
//
// FILL STRATEGIES:
//   mean    : mean of the column's numeric cells
//   median  : median of the column's numeric cells
//   mode    : most frequent value
//   <other> : the strategy text itself, used as a literal
//   auto    : mean for numeric columns, mode for text columns
//
// =============================================================================

package cleaning

import (
	"sort"

	"github.com/ginjaninja78/automated-data-analysis/internal/statistics"
	"github.com/ginjaninja78/automated-data-analysis/internal/table"
)

// DefaultThreshold is the missing fraction above which a row is dropped.
const DefaultThreshold = 0.7

// Fill strategy keywords. Any other strategy value is a literal fill.
const (
	StrategyMean   = "mean"
	StrategyMedian = "median"
	StrategyMode   = "mode"

	// MethodAuto is reported for columns without a configured strategy.
	MethodAuto = "auto"
)

// =============================================================================
// FILL REPORT
// =============================================================================

// FillEntry records how the gaps of one column were handled.
type FillEntry struct {
	// Column is the column name.
	Column string

	// Filled is the number of cells that received a value. Zero when the
	// fill value could not be resolved.
	Filled int

	// Method is the configured strategy (keyword or literal) or "auto".
	Method string
}

// FillReport lists the columns that had missing cells, in column order.
type FillReport []FillEntry

// Lookup returns the entry for a column.
func (r FillReport) Lookup(column string) (FillEntry, bool) {
	for _, e := range r {
		if e.Column == column {
			return e, true
		}
	}
	return FillEntry{}, false
}

// =============================================================================
// MISSING VALUE HANDLING
// =============================================================================

// HandleMissingValues drops rows whose missing fraction exceeds threshold,
// then fills the remaining missing cells column by column.
//
// Fill resolution per column:
//   - strategy "mean" / "median": aggregate of the column's numeric cells
//   - strategy "mode": most frequent value
//   - any other strategy value: used as a literal
//   - no strategy: mean for numeric columns, mode for text columns
//
// A fill value that cannot be resolved (nothing to aggregate) leaves the
// column's cells missing and is reported with Filled = 0.
//
// RETURNS:
//   - The cleaned table (same pointer as t).
//   - The number of rows dropped.
//   - The fill report.
func HandleMissingValues(t *table.Table, threshold float64, strategy map[string]string) (*table.Table, int, FillReport) {
	keep := make([]int, 0, t.NumRows())
	for i := 0; i < t.NumRows(); i++ {
		if t.MissingFraction(i) <= threshold {
			keep = append(keep, i)
		}
	}

	dropped := t.NumRows() - len(keep)
	if dropped > 0 {
		t.KeepRows(keep)
	}

	var report FillReport
	for _, col := range t.Columns() {
		if col.MissingCount() == 0 {
			continue
		}

		method, configured := strategy[col.Name]
		if !configured {
			method = MethodAuto
		}

		fill, ok := resolveFill(col, method, configured)
		filled := 0
		if ok {
			filled = fillColumn(col, fill)
		}

		report = append(report, FillEntry{Column: col.Name, Filled: filled, Method: method})
	}

	return t, dropped, report
}

// resolveFill returns the value used to fill the gaps of col.
func resolveFill(col *table.Column, method string, configured bool) (table.Value, bool) {
	if !configured {
		if col.IsNumeric() {
			return numberOrMissing(statistics.Mean(col.Numbers()))
		}
		return Mode(col.Values)
	}

	switch method {
	case StrategyMean:
		return numberOrMissing(statistics.Mean(col.Numbers()))
	case StrategyMedian:
		return numberOrMissing(statistics.Median(col.Numbers()))
	case StrategyMode:
		return Mode(col.Values)
	default:
		return literal(col, method), true
	}
}

// literal converts a literal strategy into a cell. Numeric columns take the
// literal as a number when it parses.
func literal(col *table.Column, s string) table.Value {
	if col.IsNumeric() {
		if v, ok := table.ParseNumber(s); ok && !v.IsMissing() {
			return v
		}
	}
	return table.Text(s)
}

func numberOrMissing(f float64) (table.Value, bool) {
	v := table.Number(f)
	return v, !v.IsMissing()
}

// fillColumn replaces the missing cells of col with fill and returns how
// many were replaced. A text fill demotes a numeric column to text.
func fillColumn(col *table.Column, fill table.Value) int {
	filled := 0
	for i, v := range col.Values {
		if v.IsMissing() {
			col.Values[i] = fill
			filled++
		}
	}
	if filled > 0 && fill.IsText() {
		col.Kind = table.KindText
	}
	return filled
}

// Mode returns the most frequent present value. Ties go to the smallest
// value, numbers ordering before text. Reports false when every value is
// missing.
func Mode(values []table.Value) (table.Value, bool) {
	counts := make(map[string]int)
	firsts := make(map[string]table.Value)

	for _, v := range values {
		if v.IsMissing() {
			continue
		}
		k := v.Key()
		if _, seen := firsts[k]; !seen {
			firsts[k] = v
		}
		counts[k]++
	}

	if len(counts) == 0 {
		return table.Missing(), false
	}

	candidates := make([]table.Value, 0, len(firsts))
	for _, v := range firsts {
		candidates = append(candidates, v)
	}
	sort.Slice(candidates, func(i, j int) bool {
		ci, cj := counts[candidates[i].Key()], counts[candidates[j].Key()]
		if ci != cj {
			return ci > cj
		}
		return candidates[i].Less(candidates[j])
	})

	return candidates[0], true
}
