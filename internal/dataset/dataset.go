package dataset

// Kind tags how a column stores its cells. It is decided once at load time
// and carried on the column; analyzers never re-inspect cell contents.
type Kind int

const (
	KindNumeric Kind = iota
	KindCategorical
)

func (k Kind) String() string {
	if k == KindNumeric {
		return "numeric"
	}
	return "categorical"
}

// Column is one named, typed column. Cells are indexed by row; a cell is
// missing when Present[row] is false, which is distinct from any valid value
// (including an empty string or zero). Numeric columns fill Numbers,
// categorical columns fill Values; the other slice is nil.
type Column struct {
	Name    string
	Kind    Kind
	Numbers []float64
	Values  []string
	Present []bool
}

func (c *Column) Len() int { return len(c.Present) }

func (c *Column) IsNumeric() bool { return c.Kind == KindNumeric }

// NonNull returns the number of non-missing cells.
func (c *Column) NonNull() int {
	n := 0
	for _, p := range c.Present {
		if p {
			n++
		}
	}
	return n
}

// Floats returns the non-missing numeric values in row order.
// It returns nil for categorical columns.
func (c *Column) Floats() []float64 {
	if c.Kind != KindNumeric {
		return nil
	}
	out := make([]float64, 0, len(c.Numbers))
	for i, p := range c.Present {
		if p {
			out = append(out, c.Numbers[i])
		}
	}
	return out
}

// Unique counts distinct non-missing values.
func (c *Column) Unique() int {
	if c.Kind == KindNumeric {
		seen := make(map[float64]struct{})
		for i, p := range c.Present {
			if p {
				seen[c.Numbers[i]] = struct{}{}
			}
		}
		return len(seen)
	}
	seen := make(map[string]struct{})
	for i, p := range c.Present {
		if p {
			seen[c.Values[i]] = struct{}{}
		}
	}
	return len(seen)
}

// NewNumericColumn builds a numeric column. numbers and present must have
// equal length.
func NewNumericColumn(name string, numbers []float64, present []bool) Column {
	return Column{Name: name, Kind: KindNumeric, Numbers: numbers, Present: present}
}

// NewCategoricalColumn builds a categorical column. values and present must
// have equal length.
func NewCategoricalColumn(name string, values []string, present []bool) Column {
	return Column{Name: name, Kind: KindCategorical, Values: values, Present: present}
}

// Dataset is an in-memory table: an ordered sequence of named columns sharing
// the same row count. Row and column order are significant and preserved.
type Dataset struct {
	Columns []Column
	NRows   int
}

func (d *Dataset) NCols() int { return len(d.Columns) }

// NumericColumns returns the numeric columns in dataset order.
func (d *Dataset) NumericColumns() []*Column {
	var out []*Column
	for i := range d.Columns {
		if d.Columns[i].IsNumeric() {
			out = append(out, &d.Columns[i])
		}
	}
	return out
}
