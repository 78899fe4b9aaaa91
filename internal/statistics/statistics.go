// =============================================================================
// Automated Data Analysis - Statistics Module
// =============================================================================
//
// Computes summary statistics over the numeric cells of selected columns.
//
// SUPPORTED STATISTICS:
//   mean   : arithmetic mean
//   median : middle value (average of the middle pair for even counts)
//   std    : sample standard deviation (n-1 denominator)
//   min    : smallest value
//   max    : largest value
//
// Unknown statistic names are skipped without error. A statistic over a
// column with no numeric cells is NaN (std also needs at least two cells).
//
// =============================================================================

package statistics

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/ginjaninja78/automated-data-analysis/internal/table"
)

// DefaultStats are computed when no statistic list is given.
var DefaultStats = []string{"mean", "median", "std", "min", "max"}

// aggregates maps statistic names to their implementation.
var aggregates = map[string]func([]float64) float64{
	"mean":   Mean,
	"median": Median,
	"std":    StdDev,
	"min":    Min,
	"max":    Max,
}

// IsKnown reports whether name is a supported statistic.
func IsKnown(name string) bool {
	_, ok := aggregates[name]
	return ok
}

// =============================================================================
// RESULT
// =============================================================================

// Stat is one computed statistic.
type Stat struct {
	Name  string
	Value float64
}

// ColumnStats holds the statistics of one column in request order.
type ColumnStats struct {
	Column string
	Stats  []Stat
}

// Result holds the statistics of every selected column in request order.
type Result []ColumnStats

// Lookup returns a single statistic of a column.
func (r Result) Lookup(column, name string) (float64, bool) {
	for _, cs := range r {
		if cs.Column != column {
			continue
		}
		for _, s := range cs.Stats {
			if s.Name == name {
				return s.Value, true
			}
		}
	}
	return 0, false
}

// AsMap returns the result as a nested column -> statistic -> value map.
func (r Result) AsMap() map[string]map[string]float64 {
	out := make(map[string]map[string]float64, len(r))
	for _, cs := range r {
		m := make(map[string]float64, len(cs.Stats))
		for _, s := range cs.Stats {
			m[s.Name] = s.Value
		}
		out[cs.Column] = m
	}
	return out
}

// =============================================================================
// CALCULATION
// =============================================================================

// GetStatistics computes the requested statistics for the requested columns.
//
// PARAMETERS:
//   - t: The table.
//   - columns: Columns to summarize. Empty means every numeric column.
//     Names not in the table are skipped.
//   - stats: Statistic names. Empty means DefaultStats.
//
// RETURNS:
//   - The ordered result. Repeated column or statistic names appear once.
func GetStatistics(t *table.Table, columns, stats []string) Result {
	if len(columns) == 0 {
		columns = t.NumericColumns()
	}
	if len(stats) == 0 {
		stats = DefaultStats
	}

	var result Result
	doneColumns := make(map[string]bool, len(columns))

	for _, name := range columns {
		col, ok := t.Column(name)
		if !ok || doneColumns[name] {
			continue
		}
		doneColumns[name] = true

		values := col.Numbers()
		cs := ColumnStats{Column: name}
		doneStats := make(map[string]bool, len(stats))

		for _, s := range stats {
			fn, known := aggregates[s]
			if !known || doneStats[s] {
				continue
			}
			doneStats[s] = true
			cs.Stats = append(cs.Stats, Stat{Name: s, Value: fn(values)})
		}

		result = append(result, cs)
	}

	return result
}

// =============================================================================
// AGGREGATES
// =============================================================================

// Mean returns the arithmetic mean of xs, or NaN when xs is empty.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	return stat.Mean(xs, nil)
}

// Median returns the middle value of xs, or NaN when xs is empty.
func Median(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// StdDev returns the sample standard deviation of xs, or NaN when xs has
// fewer than two values.
func StdDev(xs []float64) float64 {
	if len(xs) < 2 {
		return math.NaN()
	}
	return stat.StdDev(xs, nil)
}

// Min returns the smallest value of xs, or NaN when xs is empty.
func Min(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	return floats.Min(xs)
}

// Max returns the largest value of xs, or NaN when xs is empty.
func Max(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	return floats.Max(xs)
}
