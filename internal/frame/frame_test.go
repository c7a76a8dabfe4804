package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datawash/internal/errors"
)

// buildStaffTable assembles the four-column staff table used across the
// table operation tests, with one absent cell per column.
func buildStaffTable(t *testing.T) *Table {
	t.Helper()
	b, err := NewBuilder(
		ColumnSpec{Name: "name", Kind: KindText},
		ColumnSpec{Name: "age", Kind: KindInt},
		ColumnSpec{Name: "salary", Kind: KindFloat},
		ColumnSpec{Name: "department", Kind: KindText},
	)
	require.NoError(t, err)
	require.NoError(t, b.Append(Text("Alice"), Int(25), Float(50000), Text("IT")))
	require.NoError(t, b.Append(Text("Bob"), Int(30), Float(60000), Text("HR")))
	require.NoError(t, b.Append(Text("Charlie"), Absent(), Float(55000), Text("IT")))
	require.NoError(t, b.Append(Text("David"), Int(35), Absent(), Text("Finance")))
	require.NoError(t, b.Append(Text("Eve"), Int(28), Float(65000), Absent()))
	require.NoError(t, b.Append(Absent(), Int(40), Float(70000), Text("IT")))
	return b.Build()
}

func TestTable_Shape(t *testing.T) {
	table := buildStaffTable(t)

	assert.Equal(t, 6, table.NumRows())
	assert.Equal(t, 4, table.NumCols())
	assert.Equal(t, []string{"name", "age", "salary", "department"}, table.ColumnNames())
	assert.True(t, table.HasColumn("salary"))
	assert.False(t, table.HasColumn("bonus"))
}

func TestTable_AbsentCounts(t *testing.T) {
	table := buildStaffTable(t)

	want := []AbsentCount{
		{Column: "name", Count: 1},
		{Column: "age", Count: 1},
		{Column: "salary", Count: 1},
		{Column: "department", Count: 1},
	}
	assert.Equal(t, want, table.AbsentCounts())

	filled, err := table.FillText("name", "Unknown")
	require.NoError(t, err)
	assert.Equal(t, AbsentCount{Column: "name", Count: 0}, filled.AbsentCounts()[0])
}

func TestTable_TypedViews(t *testing.T) {
	table := buildStaffTable(t)

	t.Run("text view", func(t *testing.T) {
		names, err := table.TextColumn("name")
		require.NoError(t, err)
		assert.Equal(t, 6, names.Len())
		v, ok := names.Value(0)
		assert.True(t, ok)
		assert.Equal(t, "Alice", v)
		assert.True(t, names.IsAbsent(5))
		assert.Equal(t, []string{"Alice", "Bob", "Charlie", "David", "Eve"}, names.Present())
		assert.Equal(t, 1, names.AbsentCount())
	})

	t.Run("int view", func(t *testing.T) {
		ages, err := table.IntColumn("age")
		require.NoError(t, err)
		_, ok := ages.Value(2)
		assert.False(t, ok)
		assert.Equal(t, []int64{25, 30, 35, 28, 40}, ages.Present())
	})

	t.Run("float view", func(t *testing.T) {
		salaries, err := table.FloatColumn("salary")
		require.NoError(t, err)
		assert.Equal(t, []float64{50000, 60000, 55000, 65000, 70000}, salaries.Present())
	})

	t.Run("unknown column", func(t *testing.T) {
		_, err := table.TextColumn("bonus")
		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ErrTypeUnknownColumn))
	})

	t.Run("kind mismatch", func(t *testing.T) {
		_, err := table.IntColumn("salary")
		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ErrTypeKindMismatch))
		assert.Contains(t, err.Error(), "salary")
	})
}

func TestTable_Fill(t *testing.T) {
	table := buildStaffTable(t)

	t.Run("fill text replaces only absent cells", func(t *testing.T) {
		filled, err := table.FillText("name", "Unknown")
		require.NoError(t, err)

		names, err := filled.TextColumn("name")
		require.NoError(t, err)
		assert.Equal(t, []string{"Alice", "Bob", "Charlie", "David", "Eve", "Unknown"}, names.Present())

		// The receiver keeps its absent cell.
		orig, err := table.TextColumn("name")
		require.NoError(t, err)
		assert.Equal(t, 1, orig.AbsentCount())
	})

	t.Run("fill int", func(t *testing.T) {
		filled, err := table.FillInt("age", 30)
		require.NoError(t, err)

		ages, err := filled.IntColumn("age")
		require.NoError(t, err)
		assert.Equal(t, []int64{25, 30, 30, 35, 28, 40}, ages.Present())
		assert.Equal(t, 0, ages.AbsentCount())
	})

	t.Run("fill float", func(t *testing.T) {
		filled, err := table.FillFloat("salary", 60000)
		require.NoError(t, err)

		salaries, err := filled.FloatColumn("salary")
		require.NoError(t, err)
		assert.Equal(t, []float64{50000, 60000, 55000, 60000, 65000, 70000}, salaries.Present())
	})

	t.Run("fill on a complete column is a no-op copy", func(t *testing.T) {
		filled, err := table.FillInt("age", 30)
		require.NoError(t, err)
		again, err := filled.FillInt("age", 99)
		require.NoError(t, err)
		assert.True(t, filled.Equal(again))
	})

	t.Run("unknown column", func(t *testing.T) {
		_, err := table.FillText("bonus", "x")
		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ErrTypeUnknownColumn))
	})

	t.Run("kind mismatch", func(t *testing.T) {
		_, err := table.FillText("age", "x")
		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ErrTypeKindMismatch))
	})
}

func TestTable_WithColumn(t *testing.T) {
	table := buildStaffTable(t)
	spec := ColumnSpec{Name: "age_group", Kind: KindCategory, Labels: []string{"Young", "Adult"}}

	t.Run("appends a category column", func(t *testing.T) {
		cells := []Cell{
			Category("Young"), Category("Adult"), Absent(),
			Category("Adult"), Category("Adult"), Category("Adult"),
		}
		extended, err := table.WithColumn(spec, cells)
		require.NoError(t, err)

		assert.Equal(t, 5, extended.NumCols())
		assert.Equal(t, "age_group", extended.ColumnNames()[4])

		groups, err := extended.CategoryColumn("age_group")
		require.NoError(t, err)
		assert.Equal(t, []string{"Young", "Adult"}, groups.Labels())
		assert.True(t, groups.IsAbsent(2))

		// The receiver is unchanged.
		assert.Equal(t, 4, table.NumCols())
		assert.False(t, table.HasColumn("age_group"))
	})

	t.Run("rejects cell count mismatch", func(t *testing.T) {
		_, err := table.WithColumn(spec, []Cell{Category("Young")})
		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ErrTypeSchema))
	})

	t.Run("rejects existing name", func(t *testing.T) {
		cells := make([]Cell, table.NumRows())
		for i := range cells {
			cells[i] = Absent()
		}
		_, err := table.WithColumn(ColumnSpec{Name: "age", Kind: KindCategory, Labels: []string{"x"}}, cells)
		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ErrTypeSchema))
	})

	t.Run("rejects undeclared label with row context", func(t *testing.T) {
		cells := []Cell{
			Category("Young"), Category("Elder"), Absent(),
			Absent(), Absent(), Absent(),
		}
		_, err := table.WithColumn(spec, cells)
		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ErrTypeValidation))

		var appErr *errors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 1, appErr.Context["row"])
	})
}

func TestTable_Select(t *testing.T) {
	table := buildStaffTable(t)

	t.Run("projects columns in given order", func(t *testing.T) {
		sub, err := table.Select("salary", "name")
		require.NoError(t, err)
		assert.Equal(t, []string{"salary", "name"}, sub.ColumnNames())
		assert.Equal(t, 6, sub.NumRows())
	})

	t.Run("unknown column", func(t *testing.T) {
		_, err := table.Select("name", "bonus")
		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ErrTypeUnknownColumn))
	})

	t.Run("duplicate selection", func(t *testing.T) {
		_, err := table.Select("name", "name")
		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ErrTypeSchema))
	})
}

func TestTable_Records(t *testing.T) {
	table := buildStaffTable(t)

	records := table.Records()
	require.Len(t, records, 7)
	assert.Equal(t, []string{"name", "age", "salary", "department"}, records[0])
	assert.Equal(t, []string{"Alice", "25", "50000", "IT"}, records[1])
	assert.Equal(t, []string{"Charlie", "NaN", "55000", "IT"}, records[3])
	assert.Equal(t, []string{"David", "35", "NaN", "Finance"}, records[4])
	assert.Equal(t, []string{"NaN", "40", "70000", "IT"}, records[6])
}

func TestTable_Equal(t *testing.T) {
	table := buildStaffTable(t)

	t.Run("equal to an identical build", func(t *testing.T) {
		assert.True(t, table.Equal(buildStaffTable(t)))
	})

	t.Run("equal to its clone", func(t *testing.T) {
		assert.True(t, table.Equal(table.Clone()))
	})

	t.Run("differs after a fill", func(t *testing.T) {
		filled, err := table.FillInt("age", 30)
		require.NoError(t, err)
		assert.False(t, table.Equal(filled))
	})

	t.Run("differs on column order", func(t *testing.T) {
		reordered, err := table.Select("age", "name", "salary", "department")
		require.NoError(t, err)
		assert.False(t, table.Equal(reordered))
	})
}

func TestTable_CloneIsDeep(t *testing.T) {
	table := buildStaffTable(t)
	clone := table.Clone()

	filled, err := clone.FillText("department", "Unknown")
	require.NoError(t, err)
	require.False(t, filled.Equal(table))

	// Neither the clone nor the original saw the fill.
	assert.True(t, clone.Equal(table))
	orig, err := table.TextColumn("department")
	require.NoError(t, err)
	assert.Equal(t, 1, orig.AbsentCount())
}

func TestTable_SpecsCopiesLabels(t *testing.T) {
	b, err := NewBuilder(ColumnSpec{Name: "grade", Kind: KindCategory, Labels: []string{"A", "B"}})
	require.NoError(t, err)
	require.NoError(t, b.Append(Category("A")))
	table := b.Build()

	specs := table.Specs()
	require.Len(t, specs, 1)
	specs[0].Labels[0] = "mutated"

	groups, err := table.CategoryColumn("grade")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, groups.Labels())
}
