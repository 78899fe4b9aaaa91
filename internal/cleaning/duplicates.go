// =============================================================================
// Automated Data Analysis - Cleaning Module
// =============================================================================
//
// This package holds the two cleaning stages of the pipeline:
//   1. RemoveDuplicates    : drop exact-duplicate rows
//   2. HandleMissingValues : drop sparse rows, then fill remaining gaps
//
// Both stages work on the table in place and return it, so the caller can
// chain them. Neither stage fails: degenerate input (no rows, no columns,
// columns without values) simply produces empty reports.
//
// =============================================================================

package cleaning

import (
	"strconv"
	"strings"

	"github.com/ginjaninja78/automated-data-analysis/internal/table"
)

// RemoveDuplicates drops rows that exactly repeat an earlier row. The first
// occurrence is kept and survivor order is preserved.
//
// RETURNS:
//   - The table with duplicates removed (same pointer as t).
//   - The number of rows removed.
func RemoveDuplicates(t *table.Table) (*table.Table, int) {
	seen := make(map[string]struct{}, t.NumRows())
	keep := make([]int, 0, t.NumRows())

	for i := 0; i < t.NumRows(); i++ {
		key := rowKey(t.Row(i))
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		keep = append(keep, i)
	}

	removed := t.NumRows() - len(keep)
	if removed > 0 {
		t.KeepRows(keep)
	}
	return t, removed
}

// rowKey builds a map key identical for rows whose cells are all Equal.
// Each cell key is length-prefixed so text containing separators stays
// unambiguous.
func rowKey(row []table.Value) string {
	var b strings.Builder
	for _, v := range row {
		k := v.Key()
		b.WriteString(strconv.Itoa(len(k)))
		b.WriteByte(':')
		b.WriteString(k)
	}
	return b.String()
}
