package dataprocessing

import (
	"math"
	"sort"
	"strconv"

	"datawash/internal/errors"
	"datawash/internal/frame"
)

// BinSpec maps numeric values into labeled intervals. With edges
// e0 < e1 < ... < en and labels l1 ... ln, a value v gets label li when
// e(i-1) < v <= ei. Values at or below the first edge, or above the
// last, fall outside every bin.
type BinSpec struct {
	edges  []float64
	labels []string
}

// NewBinSpec creates a bin spec from interval edges and one label per
// interval. Edges must be strictly ascending and labels unique.
func NewBinSpec(edges []float64, labels []string) (*BinSpec, error) {
	if len(edges) < 2 {
		return nil, errors.NewValidationError("binning needs at least two edges")
	}
	if len(labels) != len(edges)-1 {
		return nil, errors.NewValidationError(
			strconv.Itoa(len(edges)) + " edges need " + strconv.Itoa(len(edges)-1) +
				" labels, got " + strconv.Itoa(len(labels)))
	}
	if !sort.Float64sAreSorted(edges) {
		return nil, errors.NewValidationError("bin edges must be ascending")
	}
	for i := 1; i < len(edges); i++ {
		if edges[i] == edges[i-1] {
			return nil, errors.NewValidationError("bin edges must be strictly ascending")
		}
	}
	seen := make(map[string]struct{}, len(labels))
	for _, label := range labels {
		if label == "" {
			return nil, errors.NewValidationError("bin labels must not be empty")
		}
		if _, dup := seen[label]; dup {
			return nil, errors.NewValidationError("bin label " + strconv.Quote(label) + " used twice")
		}
		seen[label] = struct{}{}
	}

	return &BinSpec{
		edges:  append([]float64(nil), edges...),
		labels: append([]string(nil), labels...),
	}, nil
}

// Labels returns a copy of the bin labels in interval order.
func (b *BinSpec) Labels() []string {
	return append([]string(nil), b.labels...)
}

// Assign returns the label of the interval containing v. The second
// return is false when v falls outside every interval or is NaN.
func (b *BinSpec) Assign(v float64) (string, bool) {
	if math.IsNaN(v) {
		return "", false
	}
	for i, label := range b.labels {
		if v > b.edges[i] && v <= b.edges[i+1] {
			return label, true
		}
	}
	return "", false
}

// Cut returns a copy of the table extended with a category column named
// dst holding the bin label of each value in the numeric column src.
// Absent source cells and values outside every interval produce absent
// cells rather than errors.
func (b *BinSpec) Cut(t *frame.Table, src, dst string) (*frame.Table, error) {
	kind, err := t.ColumnKind(src)
	if err != nil {
		return nil, err
	}

	values := make([]float64, t.NumRows())
	present := make([]bool, t.NumRows())

	switch kind {
	case frame.KindInt:
		view, err := t.IntColumn(src)
		if err != nil {
			return nil, err
		}
		for i := 0; i < view.Len(); i++ {
			if v, ok := view.Value(i); ok {
				values[i] = float64(v)
				present[i] = true
			}
		}
	case frame.KindFloat:
		view, err := t.FloatColumn(src)
		if err != nil {
			return nil, err
		}
		for i := 0; i < view.Len(); i++ {
			if v, ok := view.Value(i); ok {
				values[i] = v
				present[i] = true
			}
		}
	default:
		return nil, errors.NewKindMismatchError(src, kind.String(), "int or float")
	}

	cells := make([]frame.Cell, t.NumRows())
	for i := range cells {
		cells[i] = frame.Absent()
		if !present[i] {
			continue
		}
		if label, ok := b.Assign(values[i]); ok {
			cells[i] = frame.Category(label)
		}
	}

	spec := frame.ColumnSpec{Name: dst, Kind: frame.KindCategory, Labels: b.Labels()}
	return t.WithColumn(spec, cells)
}
