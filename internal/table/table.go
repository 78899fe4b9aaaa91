// =============================================================================
// Automated Data Analysis - Table Model
// =============================================================================
//
// This package holds the in-memory table every pipeline stage works on.
//
// STRUCTURE:
//   Table
//   ├── Column "Name"   (Kind: text)     [Value, Value, ...]
//   ├── Column "Age"    (Kind: numeric)  [Value, Value, ...]
//   └── Column "Salary" (Kind: numeric)  [Value, Value, ...]
//
// All columns are aligned by row index. The column set is fixed once the
// table is built; stages only ever drop rows or replace cell values.
//
// =============================================================================

package table

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
)

// =============================================================================
// COLUMN KINDS
// =============================================================================

// Kind is the declared type of a column.
type Kind int

const (
	// KindText columns hold arbitrary values.
	KindText Kind = iota

	// KindNumeric columns are expected to hold numbers only.
	KindNumeric
)

// String returns the configuration name of the kind.
func (k Kind) String() string {
	if k == KindNumeric {
		return "numeric"
	}
	return "text"
}

// ParseKind converts a configuration name into a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "numeric", "number", "float", "int", "integer", "decimal":
		return KindNumeric, nil
	case "text", "string", "object", "str":
		return KindText, nil
	default:
		return KindText, fmt.Errorf("unknown column type %q", s)
	}
}

// =============================================================================
// COLUMN
// =============================================================================

// Column is a named, typed sequence of cells.
type Column struct {
	// Name is the header of the column.
	Name string

	// Kind is the declared type of the column.
	Kind Kind

	// Values holds one cell per row.
	Values []Value
}

// NewColumn creates a column.
func NewColumn(name string, kind Kind, values []Value) *Column {
	return &Column{Name: name, Kind: kind, Values: values}
}

// Len returns the number of cells in the column.
func (c *Column) Len() int {
	return len(c.Values)
}

// MissingCount returns the number of missing cells.
func (c *Column) MissingCount() int {
	n := 0
	for _, v := range c.Values {
		if v.IsMissing() {
			n++
		}
	}
	return n
}

// Numbers returns the numeric cells of the column in row order.
func (c *Column) Numbers() []float64 {
	nums := make([]float64, 0, len(c.Values))
	for _, v := range c.Values {
		if f, ok := v.Float(); ok {
			nums = append(nums, f)
		}
	}
	return nums
}

// Present returns the non-missing cells of the column in row order.
func (c *Column) Present() []Value {
	present := make([]Value, 0, len(c.Values))
	for _, v := range c.Values {
		if !v.IsMissing() {
			present = append(present, v)
		}
	}
	return present
}

// IsNumeric reports whether the column is declared numeric.
func (c *Column) IsNumeric() bool {
	return c.Kind == KindNumeric
}

// =============================================================================
// TABLE
// =============================================================================

// Table is an ordered collection of equally long columns.
type Table struct {
	columns []*Column
	index   map[string]int
	rows    int
}

// New builds a table from columns. Column names must be unique and all
// columns must have the same length.
func New(columns ...*Column) (*Table, error) {
	t := &Table{
		columns: make([]*Column, 0, len(columns)),
		index:   make(map[string]int, len(columns)),
	}

	for i, col := range columns {
		if _, exists := t.index[col.Name]; exists {
			return nil, fmt.Errorf("duplicate column name %q", col.Name)
		}
		if i == 0 {
			t.rows = col.Len()
		} else if col.Len() != t.rows {
			return nil, fmt.Errorf("column %q has %d rows, expected %d", col.Name, col.Len(), t.rows)
		}
		t.index[col.Name] = i
		t.columns = append(t.columns, col)
	}

	return t, nil
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int {
	return t.rows
}

// NumCols returns the number of columns.
func (t *Table) NumCols() int {
	return len(t.columns)
}

// Names returns the column names in order.
func (t *Table) Names() []string {
	names := make([]string, len(t.columns))
	for i, col := range t.columns {
		names[i] = col.Name
	}
	return names
}

// Columns returns the columns in order.
func (t *Table) Columns() []*Column {
	return t.columns
}

// Column returns the column with the given name.
func (t *Table) Column(name string) (*Column, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return t.columns[i], true
}

// NumericColumns returns the names of all numeric columns in order.
func (t *Table) NumericColumns() []string {
	var names []string
	for _, col := range t.columns {
		if col.IsNumeric() {
			names = append(names, col.Name)
		}
	}
	return names
}

// Row returns a copy of the cells of row i.
func (t *Table) Row(i int) []Value {
	row := make([]Value, len(t.columns))
	for j, col := range t.columns {
		row[j] = col.Values[i]
	}
	return row
}

// MissingFraction returns the share of missing cells in row i.
func (t *Table) MissingFraction(i int) float64 {
	if len(t.columns) == 0 {
		return 0
	}
	missing := 0
	for _, col := range t.columns {
		if col.Values[i].IsMissing() {
			missing++
		}
	}
	return float64(missing) / float64(len(t.columns))
}

// KeepRows retains only the given rows, in the given order. The resulting
// row index is contiguous.
func (t *Table) KeepRows(rows []int) {
	for _, col := range t.columns {
		kept := make([]Value, len(rows))
		for i, r := range rows {
			kept[i] = col.Values[r]
		}
		col.Values = kept
	}
	t.rows = len(rows)
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	columns := make([]*Column, len(t.columns))
	for i, col := range t.columns {
		values := make([]Value, len(col.Values))
		copy(values, col.Values)
		columns[i] = NewColumn(col.Name, col.Kind, values)
	}
	clone, _ := New(columns...)
	return clone
}

// =============================================================================
// PREVIEW
// =============================================================================

// WriteHead writes the first n rows as an aligned text grid with a leading
// row index.
func (t *Table) WriteHead(w io.Writer, n int) error {
	if n > t.rows {
		n = t.rows
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprint(tw, "\t")
	for _, col := range t.columns {
		fmt.Fprintf(tw, "%s\t", col.Name)
	}
	fmt.Fprintln(tw)

	for i := 0; i < n; i++ {
		fmt.Fprintf(tw, "%s\t", strconv.Itoa(i))
		for _, col := range t.columns {
			fmt.Fprintf(tw, "%s\t", col.Values[i].String())
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}
