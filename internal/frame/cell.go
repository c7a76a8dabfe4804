package frame

import "fmt"

// Kind identifies the value kind of a column. It is a closed enumeration:
// every column is declared with exactly one kind at construction time and
// keeps it for the lifetime of the table.
type Kind uint8

const (
	// KindText holds free-form text values.
	KindText Kind = iota
	// KindInt holds signed integer values.
	KindInt
	// KindFloat holds floating-point values.
	KindFloat
	// KindCategory holds values drawn from a fixed label set declared on
	// the column spec.
	KindCategory
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindCategory:
		return "category"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ColumnSpec declares a column: its name, kind, and for category columns
// the fixed set of labels its cells may hold.
type ColumnSpec struct {
	Name   string
	Kind   Kind
	Labels []string // KindCategory only; nil otherwise
}

// Cell is a single tagged value destined for a table cell. Cells are
// created through the constructors below; the zero Cell is the absent
// marker.
type Cell struct {
	kind    Kind
	present bool
	text    string
	num     int64
	real    float64
}

// Text returns a present text cell.
func Text(v string) Cell {
	return Cell{kind: KindText, present: true, text: v}
}

// Int returns a present integer cell.
func Int(v int64) Cell {
	return Cell{kind: KindInt, present: true, num: v}
}

// Float returns a present floating-point cell.
func Float(v float64) Cell {
	return Cell{kind: KindFloat, present: true, real: v}
}

// Category returns a present category cell carrying the given label. The
// label is validated against the column's declared set when the cell is
// placed into a table.
func Category(label string) Cell {
	return Cell{kind: KindCategory, present: true, text: label}
}

// Absent returns the absent marker. It fits a column of any kind.
func Absent() Cell {
	return Cell{}
}

// IsAbsent reports whether the cell is the absent marker.
func (c Cell) IsAbsent() bool {
	return !c.present
}
