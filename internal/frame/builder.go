package frame

import (
	"strconv"

	"datawash/internal/errors"
)

// Builder assembles a Table row by row. Specs are validated up front and
// every appended cell is checked against its column, so a successful
// Build always yields a well-formed table.
type Builder struct {
	cols   []column
	byName map[string]int
	rows   int
}

// NewBuilder returns a builder for a table with the given columns.
func NewBuilder(specs ...ColumnSpec) (*Builder, error) {
	if len(specs) == 0 {
		return nil, errors.NewSchemaError("at least one column is required")
	}
	b := &Builder{
		cols:   make([]column, 0, len(specs)),
		byName: make(map[string]int, len(specs)),
	}
	for _, spec := range specs {
		if err := validateSpec(spec); err != nil {
			return nil, err
		}
		if _, dup := b.byName[spec.Name]; dup {
			return nil, errors.NewSchemaError("duplicate column " + strconv.Quote(spec.Name))
		}
		b.cols = append(b.cols, newColumn(spec))
		b.byName[spec.Name] = len(b.cols) - 1
	}
	return b, nil
}

// Append adds one row. It takes exactly one cell per column, in
// declaration order, and rejects the whole row on any mismatch.
func (b *Builder) Append(cells ...Cell) error {
	if len(cells) != len(b.cols) {
		return errors.NewSchemaError("row has " + strconv.Itoa(len(cells)) +
			" cells, table has " + strconv.Itoa(len(b.cols)) + " columns")
	}
	for i, cell := range cells {
		if err := b.cols[i].append(cell); err != nil {
			// Roll back the columns already extended for this row.
			for j := 0; j < i; j++ {
				b.cols[j].truncate(b.rows)
			}
			return withRow(err, b.rows)
		}
	}
	b.rows++
	return nil
}

// Build returns the assembled table. The builder stays usable; the
// returned table is an independent copy.
func (b *Builder) Build() *Table {
	t := &Table{
		cols:   make([]column, len(b.cols)),
		byName: make(map[string]int, len(b.byName)),
		rows:   b.rows,
	}
	for i := range b.cols {
		t.cols[i] = b.cols[i].clone()
	}
	for name, idx := range b.byName {
		t.byName[name] = idx
	}
	return t
}

// validateSpec checks a single column spec for structural soundness.
func validateSpec(spec ColumnSpec) error {
	if spec.Name == "" {
		return errors.NewSchemaError("column name must not be empty")
	}
	switch spec.Kind {
	case KindText, KindInt, KindFloat:
		if len(spec.Labels) > 0 {
			return errors.NewSchemaError("column " + strconv.Quote(spec.Name) +
				" is " + spec.Kind.String() + " and must not declare labels")
		}
	case KindCategory:
		if len(spec.Labels) == 0 {
			return errors.NewSchemaError("category column " + strconv.Quote(spec.Name) +
				" must declare at least one label")
		}
		seen := make(map[string]struct{}, len(spec.Labels))
		for _, label := range spec.Labels {
			if label == "" {
				return errors.NewSchemaError("category column " + strconv.Quote(spec.Name) +
					" has an empty label")
			}
			if _, dup := seen[label]; dup {
				return errors.NewSchemaError("category column " + strconv.Quote(spec.Name) +
					" declares label " + strconv.Quote(label) + " twice")
			}
			seen[label] = struct{}{}
		}
	default:
		return errors.NewSchemaError("column " + strconv.Quote(spec.Name) + " has unknown kind")
	}
	return nil
}
