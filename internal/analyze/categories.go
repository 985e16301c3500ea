package analyze

import (
	"sort"

	"github.com/edalab/edakit/internal/dataset"
)

// CategoryCount is one (value, occurrences) pair of a categorical column.
type CategoryCount struct {
	Value string
	Count int
}

// TopCategoriesTable maps categorical column names to their most frequent
// values, count-descending. Order preserves dataset column order.
type TopCategoriesTable struct {
	Order   []string
	Columns map[string][]CategoryCount
}

func (t TopCategoriesTable) Empty() bool { return len(t.Order) == 0 }

// TopCategoriesOptions bounds the category ranking. Non-positive values
// disable the respective limit.
type TopCategoriesOptions struct {
	// MaxColumns caps how many eligible columns are processed, in dataset
	// column order.
	MaxColumns int
	// TopK caps the entries kept per column.
	TopK int
	// MaxUnique excludes columns with more distinct values than this;
	// such columns are free text rather than categories.
	MaxUnique int
}

// TopCategories ranks the distinct non-missing values of every eligible
// categorical column by frequency. Ties are broken by first occurrence in
// the source column, so the result is deterministic.
func TopCategories(ds *dataset.Dataset, opts TopCategoriesOptions) TopCategoriesTable {
	t := TopCategoriesTable{Columns: make(map[string][]CategoryCount)}

	for i := range ds.Columns {
		col := &ds.Columns[i]
		if col.IsNumeric() {
			continue
		}
		if opts.MaxUnique > 0 && col.Unique() > opts.MaxUnique {
			continue
		}
		if opts.MaxColumns > 0 && len(t.Order) >= opts.MaxColumns {
			break
		}
		t.Order = append(t.Order, col.Name)
		t.Columns[col.Name] = rankValues(col, opts.TopK)
	}
	return t
}

func rankValues(col *dataset.Column, topK int) []CategoryCount {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	for row, p := range col.Present {
		if !p {
			continue
		}
		v := col.Values[row]
		if _, ok := counts[v]; !ok {
			firstSeen[v] = row
		}
		counts[v]++
	}

	ranked := make([]CategoryCount, 0, len(counts))
	for v, n := range counts {
		ranked = append(ranked, CategoryCount{Value: v, Count: n})
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		if ranked[a].Count != ranked[b].Count {
			return ranked[a].Count > ranked[b].Count
		}
		return firstSeen[ranked[a].Value] < firstSeen[ranked[b].Value]
	})
	if topK > 0 && len(ranked) > topK {
		ranked = ranked[:topK]
	}
	return ranked
}
