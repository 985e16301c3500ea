package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/edalab/edakit/internal/analyze"
)

// ReportData bundles everything the Markdown report needs.
type ReportData struct {
	SourceFile      string
	Summary         analyze.DatasetSummary
	Missing         analyze.MissingTable
	Corr            analyze.CorrMatrix
	TopCats         analyze.TopCategoriesTable
	Flags           analyze.QualityFlags
	MinMissingShare float64
	TopK            int
	MaxHistColumns  int
}

// WriteMarkdown assembles the narrative report pointing at the table and
// chart artifacts written alongside it.
func WriteMarkdown(path string, d ReportData) error {
	var b strings.Builder

	b.WriteString("# EDA report\n\n")
	b.WriteString(fmt.Sprintf("Source file: `%s`\n\n", d.SourceFile))
	b.WriteString(fmt.Sprintf("Rows: **%s**, columns: **%d**\n\n",
		humanize.Comma(int64(d.Summary.NRows)), d.Summary.NCols))

	b.WriteString("## Data quality (heuristics)\n\n")
	b.WriteString(fmt.Sprintf("- Quality score: **%.2f**\n", d.Flags.QualityScore))
	b.WriteString(fmt.Sprintf("- Max missing share per column: **%.2f%%**\n", d.Flags.MaxMissingShare*100))
	b.WriteString(fmt.Sprintf("- Too few rows: **%v**\n", d.Flags.TooFewRows))
	b.WriteString(fmt.Sprintf("- Too many columns: **%v**\n", d.Flags.TooManyColumns))
	b.WriteString(fmt.Sprintf("- Too many missing values: **%v**\n\n", d.Flags.TooManyMissing))

	b.WriteString("### Targeted heuristics\n\n")
	b.WriteString(fmt.Sprintf("1. **Constant columns**: %v\n", d.Flags.HasConstantColumns))
	if d.Flags.HasConstantColumns {
		b.WriteString(fmt.Sprintf("   - Columns: %s\n", strings.Join(d.Flags.ConstantColumns, ", ")))
		b.WriteString(fmt.Sprintf("   - Count: %d\n", d.Flags.NConstantColumns))
	}
	b.WriteString(fmt.Sprintf("\n2. **High-cardinality categoricals**: %v\n", d.Flags.HasHighCardinalityCategoricals))
	if d.Flags.HasHighCardinalityCategoricals {
		b.WriteString(fmt.Sprintf("   - Columns: %s\n", strings.Join(d.Flags.HighCardinalityColumns, ", ")))
		b.WriteString(fmt.Sprintf("   - Count: %d\n", d.Flags.NHighCardinalityColumns))
	}
	b.WriteString(fmt.Sprintf("\n3. **Suspicious ID duplicates**: %v\n", d.Flags.HasSuspiciousIDDuplicates))
	for _, rec := range d.Flags.SuspiciousIDColumns {
		b.WriteString(fmt.Sprintf("   - %s (duplicates: %.1f%%)\n", rec.Description, rec.DuplicateRatio*100))
	}

	var problematic []analyze.ColumnSummary
	for _, col := range d.Summary.Columns {
		if col.MissingShare > d.MinMissingShare {
			problematic = append(problematic, col)
		}
	}
	if len(problematic) > 0 {
		b.WriteString(fmt.Sprintf("\n## Columns with missing share over %.0f%%\n\n", d.MinMissingShare*100))
		b.WriteString("| Column | Missing | Missing share |\n")
		b.WriteString("|--------|---------|---------------|\n")
		for _, col := range problematic {
			b.WriteString(fmt.Sprintf("| %s | %d | %.2f%% |\n", col.Name, col.Missing, col.MissingShare*100))
		}
	}

	b.WriteString("\n## Columns\n\n")
	b.WriteString("See `summary.csv`.\n\n")

	b.WriteString("## Missing values\n\n")
	if !d.Missing.HasMissing() {
		b.WriteString("No missing values, or the dataset is empty.\n\n")
	} else {
		b.WriteString("See `missing.csv` and `missing_matrix.png`.\n\n")
	}

	b.WriteString("## Correlation of numeric columns\n\n")
	if d.Corr.Empty() {
		b.WriteString("Not enough numeric columns for correlation.\n\n")
	} else {
		b.WriteString("See `correlation.csv` and `correlation_heatmap.png`.\n\n")
	}

	b.WriteString("## Categorical columns\n\n")
	if d.TopCats.Empty() {
		b.WriteString("No categorical/text columns found.\n\n")
	} else {
		b.WriteString(fmt.Sprintf("Top-%d values per categorical column are in `top_categories/`.\n\n", d.TopK))
	}

	b.WriteString("## Histograms of numeric columns\n\n")
	b.WriteString(fmt.Sprintf("Histograms cover the first %d numeric columns.\n", d.MaxHistColumns))
	b.WriteString("See the `hist_*.png` files.\n")

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
