// Package analyze is the EDA engine: pure functions turning a loaded Dataset
// into per-column summaries, missingness statistics, correlation structure,
// categorical breakdowns and data-quality flags. Every function here is total
// over structurally valid datasets; degenerate inputs (zero rows, zero
// columns, all-missing columns) produce well-formed degenerate outputs
// rather than errors. Undefined statistics are NaN.
package analyze

import (
	"math"

	"github.com/montanaflynn/stats"

	"github.com/edalab/edakit/internal/dataset"
)

// ColumnSummary holds the descriptive statistics of one column.
// Min/Max/Mean are NaN unless the column is numeric with at least one
// non-missing value; Std additionally needs two.
type ColumnSummary struct {
	Name         string
	DType        string
	NonNull      int
	Missing      int
	MissingShare float64
	Unique       int
	IsNumeric    bool

	Min  float64
	Max  float64
	Mean float64
	Std  float64
}

// DatasetSummary is the dataset-level summary: shape plus one ColumnSummary
// per column, in dataset column order.
type DatasetSummary struct {
	NRows   int
	NCols   int
	Columns []ColumnSummary
}

// Summarize profiles every column of ds in order.
func Summarize(ds *dataset.Dataset) DatasetSummary {
	sum := DatasetSummary{
		NRows:   ds.NRows,
		NCols:   ds.NCols(),
		Columns: make([]ColumnSummary, 0, ds.NCols()),
	}
	for i := range ds.Columns {
		sum.Columns = append(sum.Columns, profileColumn(&ds.Columns[i], ds.NRows))
	}
	return sum
}

func profileColumn(col *dataset.Column, nRows int) ColumnSummary {
	nonNull := col.NonNull()
	missing := nRows - nonNull

	cs := ColumnSummary{
		Name:      col.Name,
		DType:     col.Kind.String(),
		NonNull:   nonNull,
		Missing:   missing,
		Unique:    col.Unique(),
		IsNumeric: col.IsNumeric(),
		Min:       math.NaN(),
		Max:       math.NaN(),
		Mean:      math.NaN(),
		Std:       math.NaN(),
	}
	if nRows > 0 {
		cs.MissingShare = float64(missing) / float64(nRows)
	}

	if col.IsNumeric() && nonNull >= 1 {
		vals := col.Floats()
		cs.Min, _ = stats.Min(vals)
		cs.Max, _ = stats.Max(vals)
		cs.Mean, _ = stats.Mean(vals)
		if nonNull >= 2 {
			// Sample (n-1) standard deviation.
			cs.Std, _ = stats.StandardDeviationSample(vals)
		}
	}
	return cs
}
