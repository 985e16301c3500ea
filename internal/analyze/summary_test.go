package analyze

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edalab/edakit/internal/dataset"
)

func sampleDataset() *dataset.Dataset {
	return &dataset.Dataset{
		NRows: 4,
		Columns: []dataset.Column{
			dataset.NewNumericColumn("age",
				[]float64{10, 20, 30, 0},
				[]bool{true, true, true, false}),
			dataset.NewNumericColumn("height",
				[]float64{140, 150, 160, 170},
				[]bool{true, true, true, true}),
			dataset.NewCategoricalColumn("city",
				[]string{"A", "B", "A", ""},
				[]bool{true, true, true, false}),
		},
	}
}

func TestSummarizeBasic(t *testing.T) {
	sum := Summarize(sampleDataset())

	assert.Equal(t, 4, sum.NRows)
	assert.Equal(t, 3, sum.NCols)
	assert.Len(t, sum.Columns, sum.NCols)

	age := sum.Columns[0]
	assert.Equal(t, "age", age.Name)
	assert.True(t, age.IsNumeric)
	assert.Equal(t, 3, age.NonNull)
	assert.Equal(t, 1, age.Missing)
	assert.InDelta(t, 0.25, age.MissingShare, 1e-12)
	assert.Equal(t, 3, age.Unique)
	assert.Equal(t, 10.0, age.Min)
	assert.Equal(t, 30.0, age.Max)
	assert.InDelta(t, 20.0, age.Mean, 1e-12)
	assert.InDelta(t, 10.0, age.Std, 1e-12) // sample std of 10,20,30

	city := sum.Columns[2]
	assert.False(t, city.IsNumeric)
	assert.Equal(t, "categorical", city.DType)
	assert.Equal(t, 2, city.Unique)
	assert.True(t, math.IsNaN(city.Min))
	assert.True(t, math.IsNaN(city.Mean))
	assert.True(t, math.IsNaN(city.Std))
}

func TestSummarizeDegenerateColumns(t *testing.T) {
	ds := &dataset.Dataset{
		NRows: 3,
		Columns: []dataset.Column{
			dataset.NewNumericColumn("empty", []float64{0, 0, 0}, []bool{false, false, false}),
			dataset.NewNumericColumn("single", []float64{7, 0, 0}, []bool{true, false, false}),
		},
	}
	sum := Summarize(ds)

	empty := sum.Columns[0]
	assert.Equal(t, 0, empty.NonNull)
	assert.Equal(t, 0, empty.Unique)
	assert.InDelta(t, 1.0, empty.MissingShare, 1e-12)
	assert.True(t, math.IsNaN(empty.Min))
	assert.True(t, math.IsNaN(empty.Mean))

	// min/max/mean defined from one value, std needs two
	single := sum.Columns[1]
	assert.Equal(t, 7.0, single.Min)
	assert.Equal(t, 7.0, single.Max)
	assert.Equal(t, 7.0, single.Mean)
	assert.True(t, math.IsNaN(single.Std))
}

func TestSummarizeEmptyDataset(t *testing.T) {
	sum := Summarize(&dataset.Dataset{})
	assert.Equal(t, 0, sum.NRows)
	assert.Equal(t, 0, sum.NCols)
	assert.Empty(t, sum.Columns)
}

// Missing counts and non-null counts must tile the dataset exactly.
func TestMissingPlusNonNullCoversAllCells(t *testing.T) {
	ds := sampleDataset()
	sum := Summarize(ds)
	miss := ComputeMissingTable(ds)

	totalMissing := 0
	for _, name := range miss.Order {
		info := miss.Cells[name]
		assert.GreaterOrEqual(t, info.Share, 0.0)
		assert.LessOrEqual(t, info.Share, 1.0)
		assert.Equal(t, info.Count == 0, info.Share == 0)
		totalMissing += info.Count
	}
	totalNonNull := 0
	for _, col := range sum.Columns {
		totalNonNull += col.NonNull
	}
	assert.Equal(t, ds.NRows*ds.NCols(), totalMissing+totalNonNull)
}

func TestMissingTable(t *testing.T) {
	miss := ComputeMissingTable(sampleDataset())

	assert.Equal(t, []string{"age", "height", "city"}, miss.Order)
	assert.Equal(t, 1, miss.Cells["age"].Count)
	assert.InDelta(t, 0.25, miss.Cells["age"].Share, 1e-12)
	assert.Equal(t, 0, miss.Cells["height"].Count)
	assert.True(t, miss.HasMissing())
}

func TestMissingTableNoMissingness(t *testing.T) {
	ds := &dataset.Dataset{
		NRows: 2,
		Columns: []dataset.Column{
			dataset.NewNumericColumn("a", []float64{1, 2}, []bool{true, true}),
		},
	}
	miss := ComputeMissingTable(ds)
	assert.False(t, miss.HasMissing())

	empty := ComputeMissingTable(&dataset.Dataset{})
	assert.False(t, empty.HasMissing())
	assert.Empty(t, empty.Order)
}
