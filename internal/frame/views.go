package frame

// TextView is a read-only view of a text column.
type TextView struct {
	col *column
}

// Len returns the number of rows.
func (v *TextView) Len() int { return len(v.col.valid) }

// IsAbsent reports whether row i holds no value.
func (v *TextView) IsAbsent(i int) bool { return !v.col.valid[i] }

// Value returns the value at row i and whether it is present.
func (v *TextView) Value(i int) (string, bool) {
	if !v.col.valid[i] {
		return "", false
	}
	return v.col.text[i], true
}

// Present returns the present values in row order.
func (v *TextView) Present() []string {
	out := make([]string, 0, len(v.col.valid))
	for i, ok := range v.col.valid {
		if ok {
			out = append(out, v.col.text[i])
		}
	}
	return out
}

// AbsentCount returns the number of absent cells.
func (v *TextView) AbsentCount() int { return v.col.absentCount() }

// IntView is a read-only view of an integer column.
type IntView struct {
	col *column
}

// Len returns the number of rows.
func (v *IntView) Len() int { return len(v.col.valid) }

// IsAbsent reports whether row i holds no value.
func (v *IntView) IsAbsent(i int) bool { return !v.col.valid[i] }

// Value returns the value at row i and whether it is present.
func (v *IntView) Value(i int) (int64, bool) {
	if !v.col.valid[i] {
		return 0, false
	}
	return v.col.nums[i], true
}

// Present returns the present values in row order.
func (v *IntView) Present() []int64 {
	out := make([]int64, 0, len(v.col.valid))
	for i, ok := range v.col.valid {
		if ok {
			out = append(out, v.col.nums[i])
		}
	}
	return out
}

// AbsentCount returns the number of absent cells.
func (v *IntView) AbsentCount() int { return v.col.absentCount() }

// FloatView is a read-only view of a floating-point column.
type FloatView struct {
	col *column
}

// Len returns the number of rows.
func (v *FloatView) Len() int { return len(v.col.valid) }

// IsAbsent reports whether row i holds no value.
func (v *FloatView) IsAbsent(i int) bool { return !v.col.valid[i] }

// Value returns the value at row i and whether it is present.
func (v *FloatView) Value(i int) (float64, bool) {
	if !v.col.valid[i] {
		return 0, false
	}
	return v.col.reals[i], true
}

// Present returns the present values in row order.
func (v *FloatView) Present() []float64 {
	out := make([]float64, 0, len(v.col.valid))
	for i, ok := range v.col.valid {
		if ok {
			out = append(out, v.col.reals[i])
		}
	}
	return out
}

// AbsentCount returns the number of absent cells.
func (v *FloatView) AbsentCount() int { return v.col.absentCount() }

// CategoryView is a read-only view of a category column.
type CategoryView struct {
	col *column
}

// Len returns the number of rows.
func (v *CategoryView) Len() int { return len(v.col.valid) }

// IsAbsent reports whether row i holds no value.
func (v *CategoryView) IsAbsent(i int) bool { return !v.col.valid[i] }

// Value returns the label at row i and whether it is present.
func (v *CategoryView) Value(i int) (string, bool) {
	if !v.col.valid[i] {
		return "", false
	}
	return v.col.labels[v.col.codes[i]], true
}

// Present returns the present labels in row order.
func (v *CategoryView) Present() []string {
	out := make([]string, 0, len(v.col.valid))
	for i, ok := range v.col.valid {
		if ok {
			out = append(out, v.col.labels[v.col.codes[i]])
		}
	}
	return out
}

// Labels returns a copy of the declared label set.
func (v *CategoryView) Labels() []string { return copyLabels(v.col.labels) }

// AbsentCount returns the number of absent cells.
func (v *CategoryView) AbsentCount() int { return v.col.absentCount() }
