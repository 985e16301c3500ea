package charts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edalab/edakit/internal/analyze"
	"github.com/edalab/edakit/internal/dataset"
)

func chartDataset() *dataset.Dataset {
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

func TestMatrixGrid(t *testing.T) {
	g := matrixGrid{vals: [][]float64{{1, 2, 3}, {4, 5, 6}}}
	c, r := g.Dims()
	assert.Equal(t, 3, c)
	assert.Equal(t, 2, r)
	assert.Equal(t, 6.0, g.Z(2, 1))
	assert.Equal(t, 2.0, g.X(2))
	assert.Equal(t, 1.0, g.Y(1))
}

func TestHistograms(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Histograms(chartDataset(), dir, 1))

	_, err := os.Stat(filepath.Join(dir, "hist_age.png"))
	assert.NoError(t, err)
	// column budget of 1 leaves height undrawn
	_, err = os.Stat(filepath.Join(dir, "hist_height.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestMissingMatrix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing_matrix.png")
	require.NoError(t, MissingMatrix(chartDataset(), path))
	_, err := os.Stat(path)
	assert.NoError(t, err)

	// degenerate dataset writes nothing
	empty := filepath.Join(t.TempDir(), "empty.png")
	require.NoError(t, MissingMatrix(&dataset.Dataset{}, empty))
	_, err = os.Stat(empty)
	assert.True(t, os.IsNotExist(err))
}

func TestCorrelationHeatmap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "correlation_heatmap.png")
	m := analyze.ComputeCorrelationMatrix(chartDataset())
	require.NoError(t, CorrelationHeatmap(m, path))
	_, err := os.Stat(path)
	assert.NoError(t, err)

	require.NoError(t, CorrelationHeatmap(analyze.CorrMatrix{}, path+".none"))
	_, err = os.Stat(path + ".none")
	assert.True(t, os.IsNotExist(err))
}
