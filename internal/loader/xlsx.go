// =============================================================================
// Automated Data Analysis - Spreadsheet Reader
// =============================================================================
//
// Reads the first sheet of an Excel workbook. The first non-empty row is the
// header; every later row is a record. Cells are read as their raw stored
// values so number formats ("1,234.00", "12%") do not leak into the data.
//
// =============================================================================

package loader

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// readSpreadsheet returns the header row and the data records of the first
// sheet in the workbook at path.
func readSpreadsheet(path string) ([]string, [][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read rows: %w", err)
	}

	// Skip leading blank rows.
	start := 0
	for start < len(rows) && isRowEmpty(rows[start]) {
		start++
	}
	if start == len(rows) {
		return nil, nil, fmt.Errorf("sheet %q is empty", sheets[0])
	}

	return rows[start], rows[start+1:], nil
}

// isRowEmpty checks if a row contains only empty cells.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
