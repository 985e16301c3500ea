package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/edalab/edakit/internal/analyze"
	"github.com/edalab/edakit/internal/dataset"
	"github.com/edalab/edakit/internal/render"
)

var overviewSep string

var overviewCmd = &cobra.Command{
	Use:   "overview [file]",
	Short: "Print a per-column summary of a CSV file",
	Long: `Print the dataset shape and a per-column summary table:
type, non-null/missing counts, distinct values and, for numeric
columns, min/max/mean/std.

Examples:
  edakit overview users.csv
  edakit overview users.csv --sep ";"`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ds, err := dataset.Load(args[0], dataset.LoadOptions{Delimiter: sepRune(overviewSep)})
		if err != nil {
			log.Fatalf("%v", err)
		}

		sum := analyze.Summarize(ds)
		fmt.Printf("Rows: %d\n", sum.NRows)
		fmt.Printf("Columns: %d\n\n", sum.NCols)
		printSummaryTable(os.Stdout, sum)
	},
}

func init() {
	rootCmd.AddCommand(overviewCmd)

	overviewCmd.Flags().StringVar(&overviewSep, "sep", "",
		"CSV delimiter (default: auto-detect)")
}

// sepRune converts a --sep flag value to a delimiter rune; empty means
// auto-detect. "\t" is accepted for tabs.
func sepRune(s string) rune {
	if s == "" {
		return 0
	}
	if s == `\t` {
		return '\t'
	}
	return []rune(s)[0]
}

func printSummaryTable(w io.Writer, sum analyze.DatasetSummary) {
	nameWidth := len("name")
	for _, c := range sum.Columns {
		if len(c.Name) > nameWidth {
			nameWidth = len(c.Name)
		}
	}

	fmt.Fprintf(w, "%-*s %-12s %9s %8s %14s %7s %11s %11s %11s %11s %11s\n",
		nameWidth, "name", "dtype", "non_null", "missing", "missing_share",
		"unique", "min", "max", "mean", "std", "is_numeric")
	fmt.Fprintln(w, strings.Repeat("-", nameWidth+122))
	for _, c := range sum.Columns {
		fmt.Fprintf(w, "%-*s %-12s %9d %8d %14.6f %7d %11s %11s %11s %11s %11v\n",
			nameWidth, c.Name, c.DType, c.NonNull, c.Missing, c.MissingShare,
			c.Unique,
			render.FormatFloat(c.Min), render.FormatFloat(c.Max),
			render.FormatFloat(c.Mean), render.FormatFloat(c.Std),
			c.IsNumeric)
	}
}
