package analyze

import (
	"fmt"
	"regexp"
)

// Thresholds configures the quality heuristics. Passing thresholds in
// explicitly keeps runs reproducible and testable with varied limits.
type Thresholds struct {
	// MinRows: below this row count the dataset is flagged too small.
	MinRows int
	// MaxCols: above this column count the dataset is flagged too wide.
	MaxCols int
	// MaxMissingShare: flag when the worst per-column missing share
	// exceeds this.
	MaxMissingShare float64
	// HighCardinality: a categorical column with strictly more distinct
	// values than this is flagged.
	HighCardinality int
	// IDPattern is a regexp marking identifier-like column names.
	// Invalid or empty patterns fall back to the default.
	IDPattern string
}

// DefaultThresholds returns the thresholds used when no configuration is
// supplied.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinRows:         10,
		MaxCols:         100,
		MaxMissingShare: 0.3,
		HighCardinality: 50,
		IDPattern:       `(?i)id`,
	}
}

var defaultIDPattern = regexp.MustCompile(`(?i)id`)

// IDColumnFlag describes one identifier-like column with duplicate values.
type IDColumnFlag struct {
	Column         string
	Description    string
	DuplicateRatio float64
}

// QualityFlags combines dataset-level flags with the targeted heuristics.
type QualityFlags struct {
	QualityScore    float64
	MaxMissingShare float64
	TooFewRows      bool
	TooManyColumns  bool
	TooManyMissing  bool

	HasConstantColumns bool
	ConstantColumns    []string
	NConstantColumns   int

	HasHighCardinalityCategoricals bool
	HighCardinalityColumns         []string
	NHighCardinalityColumns        int

	HasSuspiciousIDDuplicates bool
	SuspiciousIDColumns       []IDColumnFlag
}

// ComputeQualityFlags derives quality heuristics from a dataset summary and
// its missing table.
//
// The score is 1 minus 0.2 per raised dataset flag minus 0.4 times the
// maximum per-column missing share, clamped to [0,1]: bounded and
// monotonically non-increasing in every flag and in the missing share.
func ComputeQualityFlags(sum DatasetSummary, miss MissingTable, th Thresholds) QualityFlags {
	flags := QualityFlags{}

	for _, name := range miss.Order {
		if s := miss.Cells[name].Share; s > flags.MaxMissingShare {
			flags.MaxMissingShare = s
		}
	}

	flags.TooFewRows = sum.NRows < th.MinRows
	flags.TooManyColumns = sum.NCols > th.MaxCols
	flags.TooManyMissing = flags.MaxMissingShare > th.MaxMissingShare

	score := 1.0
	for _, raised := range []bool{flags.TooFewRows, flags.TooManyColumns, flags.TooManyMissing} {
		if raised {
			score -= 0.2
		}
	}
	score -= 0.4 * flags.MaxMissingShare
	if score < 0 {
		score = 0
	}
	flags.QualityScore = score

	idPattern := defaultIDPattern
	if th.IDPattern != "" {
		if re, err := regexp.Compile(th.IDPattern); err == nil {
			idPattern = re
		}
	}

	for _, col := range sum.Columns {
		// An all-missing column carries no information and is not constant.
		if col.NonNull >= 1 && col.Unique == 1 {
			flags.ConstantColumns = append(flags.ConstantColumns, col.Name)
		}
		if !col.IsNumeric && col.Unique > th.HighCardinality {
			flags.HighCardinalityColumns = append(flags.HighCardinalityColumns, col.Name)
		}
		if idPattern.MatchString(col.Name) && col.NonNull >= 1 && col.Unique < col.NonNull {
			ratio := 1 - float64(col.Unique)/float64(col.NonNull)
			flags.SuspiciousIDColumns = append(flags.SuspiciousIDColumns, IDColumnFlag{
				Column:         col.Name,
				Description:    fmt.Sprintf("identifier-like column %q contains duplicate values", col.Name),
				DuplicateRatio: ratio,
			})
		}
	}

	flags.NConstantColumns = len(flags.ConstantColumns)
	flags.HasConstantColumns = flags.NConstantColumns > 0
	flags.NHighCardinalityColumns = len(flags.HighCardinalityColumns)
	flags.HasHighCardinalityCategoricals = flags.NHighCardinalityColumns > 0
	flags.HasSuspiciousIDDuplicates = len(flags.SuspiciousIDColumns) > 0

	return flags
}
