package analyze

import "github.com/edalab/edakit/internal/dataset"

// MissingInfo is the missing-cell count and share of one column.
type MissingInfo struct {
	Count int
	Share float64
}

// MissingTable maps every column (including columns without missing cells)
// to its missingness. Order preserves dataset column order.
type MissingTable struct {
	Order []string
	Cells map[string]MissingInfo
}

// HasMissing reports whether any column has at least one missing cell.
func (t MissingTable) HasMissing() bool {
	for _, info := range t.Cells {
		if info.Count > 0 {
			return true
		}
	}
	return false
}

// ComputeMissingTable counts missing cells per column. Shares are 0 for an
// empty dataset, never a division error.
func ComputeMissingTable(ds *dataset.Dataset) MissingTable {
	t := MissingTable{
		Order: make([]string, 0, ds.NCols()),
		Cells: make(map[string]MissingInfo, ds.NCols()),
	}
	for i := range ds.Columns {
		col := &ds.Columns[i]
		missing := ds.NRows - col.NonNull()
		info := MissingInfo{Count: missing}
		if ds.NRows > 0 {
			info.Share = float64(missing) / float64(ds.NRows)
		}
		t.Order = append(t.Order, col.Name)
		t.Cells[col.Name] = info
	}
	return t
}
