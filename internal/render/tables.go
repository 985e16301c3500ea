// Package render serializes analysis results into delimited tables, a
// Markdown report and an optional xlsx workbook. It holds no analytical
// logic; everything here formats what the engine already computed.
package render

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/edalab/edakit/internal/analyze"
)

// FormatFloat renders a statistic for tables; NaN (undefined) becomes the
// empty string.
func FormatFloat(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}

func writeCSVFile(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// WriteSummaryCSV writes the per-column summary table.
func WriteSummaryCSV(sum analyze.DatasetSummary, path string) error {
	rows := [][]string{{
		"name", "dtype", "non_null", "missing", "missing_share",
		"unique", "is_numeric", "min", "max", "mean", "std",
	}}
	for _, c := range sum.Columns {
		rows = append(rows, []string{
			c.Name,
			c.DType,
			strconv.Itoa(c.NonNull),
			strconv.Itoa(c.Missing),
			strconv.FormatFloat(c.MissingShare, 'g', 6, 64),
			strconv.Itoa(c.Unique),
			strconv.FormatBool(c.IsNumeric),
			FormatFloat(c.Min),
			FormatFloat(c.Max),
			FormatFloat(c.Mean),
			FormatFloat(c.Std),
		})
	}
	return writeCSVFile(path, rows)
}

// WriteMissingCSV writes the per-column missingness table.
func WriteMissingCSV(miss analyze.MissingTable, path string) error {
	rows := [][]string{{"column", "missing_count", "missing_share"}}
	for _, name := range miss.Order {
		info := miss.Cells[name]
		rows = append(rows, []string{
			name,
			strconv.Itoa(info.Count),
			strconv.FormatFloat(info.Share, 'g', 6, 64),
		})
	}
	return writeCSVFile(path, rows)
}

// WriteCorrelationCSV writes the correlation matrix with row and column
// labels. Undefined cells are empty.
func WriteCorrelationCSV(m analyze.CorrMatrix, path string) error {
	header := append([]string{""}, m.Columns...)
	rows := [][]string{header}
	for i, name := range m.Columns {
		row := make([]string, 0, len(m.Columns)+1)
		row = append(row, name)
		for j := range m.Columns {
			row = append(row, FormatFloat(m.Values[i][j]))
		}
		rows = append(rows, row)
	}
	return writeCSVFile(path, rows)
}

// WriteTopCategories writes one value/count table per categorical column
// into dir.
func WriteTopCategories(top analyze.TopCategoriesTable, dir string) error {
	if top.Empty() {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	for _, name := range top.Order {
		rows := [][]string{{"value", "count"}}
		for _, cc := range top.Columns[name] {
			rows = append(rows, []string{cc.Value, strconv.Itoa(cc.Count)})
		}
		path := filepath.Join(dir, SanitizeName(name)+".csv")
		if err := writeCSVFile(path, rows); err != nil {
			return err
		}
	}
	return nil
}

// SanitizeName makes a column name safe for use in a file name.
func SanitizeName(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_' || r == '.':
			return r
		default:
			return '_'
		}
	}, name)
}
