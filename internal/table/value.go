// =============================================================================
// Automated Data Analysis - Cell Values
// =============================================================================
//
// A cell is a small tagged value: it is either missing, a number, or a piece
// of text. Numeric cells remember the text they were parsed from so previews
// show the source representation ("4" stays "4", not "4.000000").
//
// =============================================================================

package table

import (
	"math"
	"strconv"
	"strings"
)

// valueKind tags the content of a Value. The zero value is missing.
type valueKind uint8

const (
	missingValue valueKind = iota
	numberValue
	textValue
)

// Value is a single table cell.
type Value struct {
	kind valueKind
	num  float64
	text string
}

// Missing returns a missing cell.
func Missing() Value {
	return Value{}
}

// Number returns a numeric cell. NaN is stored as missing.
func Number(f float64) Value {
	if math.IsNaN(f) {
		return Missing()
	}
	return Value{kind: numberValue, num: f, text: FormatFloat(f)}
}

// Text returns a text cell.
func Text(s string) Value {
	return Value{kind: textValue, text: s}
}

// ParseNumber parses raw as a number, keeping raw as the display text.
func ParseNumber(raw string) (Value, bool) {
	f, ok := ParseFloat(raw)
	if !ok {
		return Value{}, false
	}
	if math.IsNaN(f) {
		return Missing(), true
	}
	return Value{kind: numberValue, num: f, text: strings.TrimSpace(raw)}, true
}

// Coerce returns a numeric cell when raw parses as a number and a text cell
// otherwise.
func Coerce(raw string) Value {
	if v, ok := ParseNumber(raw); ok {
		return v
	}
	return Text(raw)
}

// IsMissing reports whether the cell is missing.
func (v Value) IsMissing() bool { return v.kind == missingValue }

// IsNumber reports whether the cell holds a number.
func (v Value) IsNumber() bool { return v.kind == numberValue }

// IsText reports whether the cell holds text.
func (v Value) IsText() bool { return v.kind == textValue }

// Float returns the numeric content of the cell.
func (v Value) Float() (float64, bool) {
	if v.kind != numberValue {
		return 0, false
	}
	return v.num, true
}

// String renders the cell for display. Missing cells render as NaN.
func (v Value) String() string {
	if v.kind == missingValue {
		return "NaN"
	}
	return v.text
}

// Equal reports whether two cells hold the same content. Missing equals
// missing, numbers compare by value and text compares byte-wise.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case numberValue:
		return v.num == o.num
	case textValue:
		return v.text == o.text
	default:
		return true
	}
}

// Less orders cells: numbers before text, missing last.
func (v Value) Less(o Value) bool {
	if v.kind != o.kind {
		return v.rank() < o.rank()
	}
	switch v.kind {
	case numberValue:
		return v.num < o.num
	case textValue:
		return v.text < o.text
	default:
		return false
	}
}

func (v Value) rank() int {
	switch v.kind {
	case numberValue:
		return 0
	case textValue:
		return 1
	default:
		return 2
	}
}

// Key returns a string that is identical for Equal cells.
func (v Value) Key() string {
	switch v.kind {
	case numberValue:
		f := v.num
		if f == 0 {
			// -0 and 0 are Equal.
			f = 0
		}
		return "n:" + strconv.FormatFloat(f, 'g', -1, 64)
	case textValue:
		return "t:" + v.text
	default:
		return "m:"
	}
}

// =============================================================================
// NUMERIC COERCION
// =============================================================================

// ParseFloat coerces a string to a float the way a spreadsheet user expects:
// surrounding whitespace is ignored, hexadecimal and underscore forms are
// rejected.
func ParseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.Contains(s, "_") {
		return 0, false
	}
	unsigned := strings.TrimLeft(s, "+-")
	if len(unsigned) > 1 && unsigned[0] == '0' && (unsigned[1] == 'x' || unsigned[1] == 'X') {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// FormatFloat renders f with the minimum digits needed to round-trip.
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
