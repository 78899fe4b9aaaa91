// =============================================================================
// Automated Data Analysis - Validation Engine
// =============================================================================
//
// This module runs the two data-quality checks of the pipeline:
//   - Format check   : numeric columns holding values that are not numbers,
//                      including cells that are still missing
//   - Accuracy check : numeric columns holding zero values
//
// Both checks only look at columns declared numeric. Text columns are never
// inspected, so a stray number in a text column is not reported.
//
// ERROR HANDLING:
//   - Checks never fail; an empty Issues list means nothing was found
//   - Each issue is a column name plus a human-readable message
//
// =============================================================================

package validation

import (
	"fmt"

	"github.com/ginjaninja78/automated-data-analysis/internal/table"
)

// =============================================================================
// ISSUE TYPES
// =============================================================================

// Issue is a single data-quality finding for one column.
type Issue struct {
	// Column is the name of the affected column.
	Column string

	// Count is the number of offending cells.
	Count int

	// Message is a human-readable description.
	Message string
}

// String renders the issue as "Column: Message".
func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Column, i.Message)
}

// Issues lists findings in column order.
type Issues []Issue

// Lookup returns the issue reported for a column.
func (is Issues) Lookup(column string) (Issue, bool) {
	for _, i := range is {
		if i.Column == column {
			return i, true
		}
	}
	return Issue{}, false
}

// AsMap returns the issues as a column -> message map.
func (is Issues) AsMap() map[string]string {
	out := make(map[string]string, len(is))
	for _, i := range is {
		out[i.Column] = i.Message
	}
	return out
}

// =============================================================================
// FORMAT CHECK
// =============================================================================

// CheckDataFormat reports numeric columns containing cells that do not
// coerce to a number. Cells still missing at this point (an unresolved fill)
// fail coercion too and are counted.
func CheckDataFormat(t *table.Table) Issues {
	var issues Issues

	for _, col := range t.Columns() {
		if !col.IsNumeric() {
			continue
		}

		count := 0
		for _, v := range col.Values {
			if !validateNumeric(v) {
				count++
			}
		}

		if count > 0 {
			issues = append(issues, Issue{
				Column:  col.Name,
				Count:   count,
				Message: fmt.Sprintf("%d non-numeric values found in numeric column", count),
			})
		}
	}

	return issues
}

// validateNumeric checks if a cell holds or coerces to a number. Missing
// cells never do.
func validateNumeric(v table.Value) bool {
	switch {
	case v.IsNumber():
		return true
	case v.IsMissing():
		return false
	}
	_, ok := table.ParseFloat(v.String())
	return ok
}

// =============================================================================
// ACCURACY CHECK
// =============================================================================

// CheckAccuracy reports numeric columns containing cells equal to zero.
// Zero can be legitimate data; the check is a signal, not a verdict.
func CheckAccuracy(t *table.Table) Issues {
	var issues Issues

	for _, col := range t.Columns() {
		if !col.IsNumeric() {
			continue
		}

		zeros := 0
		for _, v := range col.Values {
			if f, ok := v.Float(); ok && f == 0 {
				zeros++
			}
		}

		if zeros > 0 {
			issues = append(issues, Issue{
				Column:  col.Name,
				Count:   zeros,
				Message: fmt.Sprintf("%d zero values found", zeros),
			})
		}
	}

	return issues
}
