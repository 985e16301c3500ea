package analyze

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edalab/edakit/internal/dataset"
)

func TestCorrelationPairwiseComplete(t *testing.T) {
	// age is missing in the last row; the age/height pair must be computed
	// over the three complete rows only, where the columns move in lockstep.
	m := ComputeCorrelationMatrix(sampleDataset())

	assert.Equal(t, []string{"age", "height"}, m.Columns)
	assert.InDelta(t, 1.0, m.Values[0][1], 1e-12)
	assert.Equal(t, m.Values[0][1], m.Values[1][0])
	assert.Equal(t, 1.0, m.Values[0][0])
	assert.Equal(t, 1.0, m.Values[1][1])
}

func TestCorrelationSymmetryAndDiagonal(t *testing.T) {
	ds := &dataset.Dataset{
		NRows: 5,
		Columns: []dataset.Column{
			dataset.NewNumericColumn("a", []float64{1, 2, 3, 4, 5}, []bool{true, true, true, true, true}),
			dataset.NewNumericColumn("b", []float64{2, 1, 4, 3, 6}, []bool{true, true, true, true, true}),
			dataset.NewNumericColumn("c", []float64{5, 3, 1, 0, -2}, []bool{true, true, true, true, true}),
		},
	}
	m := ComputeCorrelationMatrix(ds)

	for i := range m.Columns {
		assert.Equal(t, 1.0, m.Values[i][i])
		for j := range m.Columns {
			assert.Equal(t, m.Values[i][j], m.Values[j][i])
			if !math.IsNaN(m.Values[i][j]) {
				assert.GreaterOrEqual(t, m.Values[i][j], -1.0)
				assert.LessOrEqual(t, m.Values[i][j], 1.0)
			}
		}
	}
	assert.Negative(t, m.Values[0][2]) // a rises while c falls
}

func TestCorrelationTooFewNumericColumns(t *testing.T) {
	ds := &dataset.Dataset{
		NRows: 3,
		Columns: []dataset.Column{
			dataset.NewNumericColumn("a", []float64{1, 2, 3}, []bool{true, true, true}),
			dataset.NewCategoricalColumn("s", []string{"x", "y", "z"}, []bool{true, true, true}),
		},
	}
	assert.True(t, ComputeCorrelationMatrix(ds).Empty())
	assert.True(t, ComputeCorrelationMatrix(&dataset.Dataset{}).Empty())
}

func TestCorrelationUndefinedCells(t *testing.T) {
	ds := &dataset.Dataset{
		NRows: 4,
		Columns: []dataset.Column{
			// only one complete pair with the others
			dataset.NewNumericColumn("sparse", []float64{1, 0, 0, 0}, []bool{true, false, false, false}),
			dataset.NewNumericColumn("full", []float64{1, 2, 3, 4}, []bool{true, true, true, true}),
			dataset.NewNumericColumn("flat", []float64{5, 5, 5, 5}, []bool{true, true, true, true}),
		},
	}
	m := ComputeCorrelationMatrix(ds)

	assert.True(t, math.IsNaN(m.Values[0][1]), "fewer than 2 complete pairs")
	assert.True(t, math.IsNaN(m.Values[1][2]), "constant column has no defined correlation")
	assert.True(t, math.IsNaN(m.Values[0][0]), "diagonal undefined below 2 non-missing values")
	assert.Equal(t, 1.0, m.Values[1][1])
	assert.Equal(t, 1.0, m.Values[2][2])
}
