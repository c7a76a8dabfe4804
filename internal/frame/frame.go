package frame

import (
	"strconv"

	"datawash/internal/errors"
)

// column is the storage for one table column. Exactly one of the value
// slices is populated, selected by kind; valid marks which rows hold a
// present value. Absent rows keep the zero value in the value slice.
type column struct {
	name   string
	kind   Kind
	labels []string       // KindCategory only
	index  map[string]int // label -> code, KindCategory only
	text   []string       // KindText
	nums   []int64        // KindInt
	reals  []float64      // KindFloat
	codes  []int          // KindCategory
	valid  []bool
}

// Table is an immutable column-oriented table of tagged cells. All
// operations that change data return a new Table and leave the receiver
// untouched.
type Table struct {
	cols   []column
	byName map[string]int
	rows   int
}

// AbsentCount pairs a column name with its number of absent cells.
type AbsentCount struct {
	Column string
	Count  int
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int {
	return t.rows
}

// NumCols returns the number of columns.
func (t *Table) NumCols() int {
	return len(t.cols)
}

// ColumnNames returns the column names in declaration order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.name
	}
	return names
}

// HasColumn reports whether a column with the given name exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.byName[name]
	return ok
}

// ColumnKind returns the declared kind of the named column.
func (t *Table) ColumnKind(name string) (Kind, error) {
	idx, ok := t.byName[name]
	if !ok {
		return 0, errors.NewUnknownColumnError(name)
	}
	return t.cols[idx].kind, nil
}

// Specs returns the column specs in declaration order. Label slices are
// copied so callers cannot mutate the table through them.
func (t *Table) Specs() []ColumnSpec {
	specs := make([]ColumnSpec, len(t.cols))
	for i, c := range t.cols {
		specs[i] = ColumnSpec{Name: c.name, Kind: c.kind, Labels: copyLabels(c.labels)}
	}
	return specs
}

// AbsentCounts returns the per-column absent cell counts in declaration
// order, including columns with zero absent cells.
func (t *Table) AbsentCounts() []AbsentCount {
	counts := make([]AbsentCount, len(t.cols))
	for i := range t.cols {
		counts[i] = AbsentCount{Column: t.cols[i].name, Count: t.cols[i].absentCount()}
	}
	return counts
}

// TextColumn returns a read-only view of a text column.
func (t *Table) TextColumn(name string) (*TextView, error) {
	c, err := t.lookup(name, KindText)
	if err != nil {
		return nil, err
	}
	return &TextView{col: c}, nil
}

// IntColumn returns a read-only view of an integer column.
func (t *Table) IntColumn(name string) (*IntView, error) {
	c, err := t.lookup(name, KindInt)
	if err != nil {
		return nil, err
	}
	return &IntView{col: c}, nil
}

// FloatColumn returns a read-only view of a floating-point column.
func (t *Table) FloatColumn(name string) (*FloatView, error) {
	c, err := t.lookup(name, KindFloat)
	if err != nil {
		return nil, err
	}
	return &FloatView{col: c}, nil
}

// CategoryColumn returns a read-only view of a category column.
func (t *Table) CategoryColumn(name string) (*CategoryView, error) {
	c, err := t.lookup(name, KindCategory)
	if err != nil {
		return nil, err
	}
	return &CategoryView{col: c}, nil
}

// FillText returns a copy of the table with every absent cell of the
// named text column replaced by v.
func (t *Table) FillText(name, v string) (*Table, error) {
	if _, err := t.lookup(name, KindText); err != nil {
		return nil, err
	}
	nt := t.Clone()
	c := &nt.cols[nt.byName[name]]
	for i := range c.valid {
		if !c.valid[i] {
			c.text[i] = v
			c.valid[i] = true
		}
	}
	return nt, nil
}

// FillInt returns a copy of the table with every absent cell of the
// named integer column replaced by v.
func (t *Table) FillInt(name string, v int64) (*Table, error) {
	if _, err := t.lookup(name, KindInt); err != nil {
		return nil, err
	}
	nt := t.Clone()
	c := &nt.cols[nt.byName[name]]
	for i := range c.valid {
		if !c.valid[i] {
			c.nums[i] = v
			c.valid[i] = true
		}
	}
	return nt, nil
}

// FillFloat returns a copy of the table with every absent cell of the
// named floating-point column replaced by v.
func (t *Table) FillFloat(name string, v float64) (*Table, error) {
	if _, err := t.lookup(name, KindFloat); err != nil {
		return nil, err
	}
	nt := t.Clone()
	c := &nt.cols[nt.byName[name]]
	for i := range c.valid {
		if !c.valid[i] {
			c.reals[i] = v
			c.valid[i] = true
		}
	}
	return nt, nil
}

// WithColumn returns a copy of the table extended with one new column
// built from the given cells. The cell count must match the row count,
// the name must be unused, and every present cell must match the spec.
func (t *Table) WithColumn(spec ColumnSpec, cells []Cell) (*Table, error) {
	if err := validateSpec(spec); err != nil {
		return nil, err
	}
	if t.HasColumn(spec.Name) {
		return nil, errors.NewSchemaError("column " + strconv.Quote(spec.Name) + " already exists")
	}
	if len(cells) != t.rows {
		return nil, errors.NewSchemaError("column " + strconv.Quote(spec.Name) + " has " +
			strconv.Itoa(len(cells)) + " cells, table has " + strconv.Itoa(t.rows) + " rows")
	}
	col := newColumn(spec)
	for i, cell := range cells {
		if err := col.append(cell); err != nil {
			return nil, withRow(err, i)
		}
	}
	nt := t.Clone()
	nt.cols = append(nt.cols, col)
	nt.byName[spec.Name] = len(nt.cols) - 1
	return nt, nil
}

// Select returns a copy of the table holding only the named columns, in
// the order given.
func (t *Table) Select(names ...string) (*Table, error) {
	nt := &Table{
		cols:   make([]column, 0, len(names)),
		byName: make(map[string]int, len(names)),
		rows:   t.rows,
	}
	for _, name := range names {
		idx, ok := t.byName[name]
		if !ok {
			return nil, errors.NewUnknownColumnError(name)
		}
		if _, dup := nt.byName[name]; dup {
			return nil, errors.NewSchemaError("column " + strconv.Quote(name) + " selected twice")
		}
		nt.cols = append(nt.cols, t.cols[idx].clone())
		nt.byName[name] = len(nt.cols) - 1
	}
	return nt, nil
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	nt := &Table{
		cols:   make([]column, len(t.cols)),
		byName: make(map[string]int, len(t.byName)),
		rows:   t.rows,
	}
	for i := range t.cols {
		nt.cols[i] = t.cols[i].clone()
	}
	for name, idx := range t.byName {
		nt.byName[name] = idx
	}
	return nt
}

// Equal reports whether two tables hold the same columns, in the same
// order, with the same cells. Floating-point cells compare exactly.
func (t *Table) Equal(o *Table) bool {
	if t.rows != o.rows || len(t.cols) != len(o.cols) {
		return false
	}
	for i := range t.cols {
		if !t.cols[i].equal(&o.cols[i]) {
			return false
		}
	}
	return true
}

// Records renders the table as string records: a header row of column
// names followed by one row per table row. Absent cells render as "NaN".
func (t *Table) Records() [][]string {
	records := make([][]string, 0, t.rows+1)
	records = append(records, t.ColumnNames())
	for r := 0; r < t.rows; r++ {
		row := make([]string, len(t.cols))
		for i := range t.cols {
			row[i] = t.cols[i].cellString(r)
		}
		records = append(records, row)
	}
	return records
}

// lookup resolves a column by name and checks its kind.
func (t *Table) lookup(name string, kind Kind) (*column, error) {
	idx, ok := t.byName[name]
	if !ok {
		return nil, errors.NewUnknownColumnError(name)
	}
	c := &t.cols[idx]
	if c.kind != kind {
		return nil, errors.NewKindMismatchError(name, c.kind.String(), kind.String())
	}
	return c, nil
}

func newColumn(spec ColumnSpec) column {
	c := column{name: spec.Name, kind: spec.Kind}
	if spec.Kind == KindCategory {
		c.labels = copyLabels(spec.Labels)
		c.index = make(map[string]int, len(c.labels))
		for i, label := range c.labels {
			c.index[label] = i
		}
	}
	return c
}

// append places one cell at the end of the column, validating kind and,
// for category columns, label membership. On error the column is left
// untouched.
func (c *column) append(cell Cell) error {
	if cell.present && cell.kind != c.kind {
		return errors.NewKindMismatchError(c.name, c.kind.String(), cell.kind.String())
	}
	code := 0
	if c.kind == KindCategory && cell.present {
		idx, ok := c.index[cell.text]
		if !ok {
			return errors.NewValidationError("label " + strconv.Quote(cell.text) +
				" is not declared for column " + strconv.Quote(c.name))
		}
		code = idx
	}
	c.valid = append(c.valid, cell.present)
	switch c.kind {
	case KindText:
		c.text = append(c.text, cell.text)
	case KindInt:
		c.nums = append(c.nums, cell.num)
	case KindFloat:
		c.reals = append(c.reals, cell.real)
	case KindCategory:
		c.codes = append(c.codes, code)
	}
	return nil
}

// truncate drops any rows beyond n, undoing a partially appended row.
func (c *column) truncate(n int) {
	c.valid = c.valid[:n]
	switch c.kind {
	case KindText:
		c.text = c.text[:n]
	case KindInt:
		c.nums = c.nums[:n]
	case KindFloat:
		c.reals = c.reals[:n]
	case KindCategory:
		c.codes = c.codes[:n]
	}
}

func (c *column) clone() column {
	nc := column{name: c.name, kind: c.kind}
	nc.labels = copyLabels(c.labels)
	if c.index != nil {
		nc.index = make(map[string]int, len(c.index))
		for label, code := range c.index {
			nc.index[label] = code
		}
	}
	nc.text = append([]string(nil), c.text...)
	nc.nums = append([]int64(nil), c.nums...)
	nc.reals = append([]float64(nil), c.reals...)
	nc.codes = append([]int(nil), c.codes...)
	nc.valid = append([]bool(nil), c.valid...)
	return nc
}

func (c *column) equal(o *column) bool {
	if c.name != o.name || c.kind != o.kind || len(c.valid) != len(o.valid) {
		return false
	}
	if len(c.labels) != len(o.labels) {
		return false
	}
	for i := range c.labels {
		if c.labels[i] != o.labels[i] {
			return false
		}
	}
	for i := range c.valid {
		if c.valid[i] != o.valid[i] {
			return false
		}
		if !c.valid[i] {
			continue
		}
		switch c.kind {
		case KindText:
			if c.text[i] != o.text[i] {
				return false
			}
		case KindInt:
			if c.nums[i] != o.nums[i] {
				return false
			}
		case KindFloat:
			if c.reals[i] != o.reals[i] {
				return false
			}
		case KindCategory:
			if c.codes[i] != o.codes[i] {
				return false
			}
		}
	}
	return true
}

func (c *column) absentCount() int {
	n := 0
	for _, v := range c.valid {
		if !v {
			n++
		}
	}
	return n
}

// cellString renders one cell for Records. The "NaN" marker for absent
// cells matches what downstream table rendering expects.
func (c *column) cellString(i int) string {
	if !c.valid[i] {
		return "NaN"
	}
	switch c.kind {
	case KindText:
		return c.text[i]
	case KindInt:
		return strconv.FormatInt(c.nums[i], 10)
	case KindFloat:
		return strconv.FormatFloat(c.reals[i], 'f', -1, 64)
	case KindCategory:
		return c.labels[c.codes[i]]
	default:
		return ""
	}
}

func copyLabels(labels []string) []string {
	if labels == nil {
		return nil
	}
	return append([]string(nil), labels...)
}

func withRow(err error, row int) error {
	if appErr, ok := err.(*errors.AppError); ok {
		return appErr.WithContext("row", row)
	}
	return err
}
