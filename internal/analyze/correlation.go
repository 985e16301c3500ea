package analyze

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/edalab/edakit/internal/dataset"
)

// CorrMatrix is a square symmetric Pearson correlation matrix over the
// numeric columns of a dataset, in dataset column order. Cells with fewer
// than two complete observation pairs are NaN. The matrix is empty when the
// dataset has fewer than two numeric columns.
type CorrMatrix struct {
	Columns []string
	Values  [][]float64
}

func (m CorrMatrix) Empty() bool { return len(m.Columns) == 0 }

// ComputeCorrelationMatrix computes pairwise Pearson correlation using
// pairwise-complete observations: each pair is evaluated over the rows where
// both columns are non-missing, not over full-case deletion. The diagonal is
// exactly 1.0 for columns with at least two non-missing values.
func ComputeCorrelationMatrix(ds *dataset.Dataset) CorrMatrix {
	numeric := ds.NumericColumns()
	if len(numeric) < 2 {
		return CorrMatrix{}
	}

	m := CorrMatrix{
		Columns: make([]string, len(numeric)),
		Values:  make([][]float64, len(numeric)),
	}
	for i, col := range numeric {
		m.Columns[i] = col.Name
		m.Values[i] = make([]float64, len(numeric))
	}

	for i := range numeric {
		if numeric[i].NonNull() >= 2 {
			m.Values[i][i] = 1.0
		} else {
			m.Values[i][i] = math.NaN()
		}
		for j := i + 1; j < len(numeric); j++ {
			r := pairwiseCorrelation(numeric[i], numeric[j])
			m.Values[i][j] = r
			m.Values[j][i] = r
		}
	}
	return m
}

func pairwiseCorrelation(a, b *dataset.Column) float64 {
	var xs, ys []float64
	for row := 0; row < a.Len() && row < b.Len(); row++ {
		if a.Present[row] && b.Present[row] {
			xs = append(xs, a.Numbers[row])
			ys = append(ys, b.Numbers[row])
		}
	}
	if len(xs) < 2 {
		return math.NaN()
	}
	// NaN when either column is constant over the complete pairs.
	return stat.Correlation(xs, ys, nil)
}
