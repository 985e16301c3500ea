package render

import (
	"fmt"
	"math"

	"github.com/xuri/excelize/v2"

	"github.com/edalab/edakit/internal/analyze"
)

// WriteWorkbook exports the summary, missing, correlation and top-category
// tables into one xlsx workbook.
func WriteWorkbook(path string, d ReportData) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Summary"); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := writeSummarySheet(f, d.Summary); err != nil {
		return err
	}
	if err := writeMissingSheet(f, d.Missing); err != nil {
		return err
	}
	if !d.Corr.Empty() {
		if err := writeCorrelationSheet(f, d.Corr); err != nil {
			return err
		}
	}
	if !d.TopCats.Empty() {
		if err := writeTopCategoriesSheet(f, d.TopCats); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

// cellValue keeps NaN out of the workbook; Excel has no representation for it.
func cellValue(v float64) interface{} {
	if math.IsNaN(v) {
		return ""
	}
	return v
}

func writeSummarySheet(f *excelize.File, sum analyze.DatasetSummary) error {
	if err := setRow(f, "Summary", 1, []interface{}{
		"name", "dtype", "non_null", "missing", "missing_share",
		"unique", "is_numeric", "min", "max", "mean", "std",
	}); err != nil {
		return err
	}
	for i, c := range sum.Columns {
		err := setRow(f, "Summary", i+2, []interface{}{
			c.Name, c.DType, c.NonNull, c.Missing, c.MissingShare,
			c.Unique, c.IsNumeric,
			cellValue(c.Min), cellValue(c.Max), cellValue(c.Mean), cellValue(c.Std),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func writeMissingSheet(f *excelize.File, miss analyze.MissingTable) error {
	if _, err := f.NewSheet("Missing"); err != nil {
		return err
	}
	if err := setRow(f, "Missing", 1, []interface{}{"column", "missing_count", "missing_share"}); err != nil {
		return err
	}
	for i, name := range miss.Order {
		info := miss.Cells[name]
		if err := setRow(f, "Missing", i+2, []interface{}{name, info.Count, info.Share}); err != nil {
			return err
		}
	}
	return nil
}

func writeCorrelationSheet(f *excelize.File, m analyze.CorrMatrix) error {
	if _, err := f.NewSheet("Correlation"); err != nil {
		return err
	}
	header := make([]interface{}, 0, len(m.Columns)+1)
	header = append(header, "")
	for _, name := range m.Columns {
		header = append(header, name)
	}
	if err := setRow(f, "Correlation", 1, header); err != nil {
		return err
	}
	for i, name := range m.Columns {
		row := make([]interface{}, 0, len(m.Columns)+1)
		row = append(row, name)
		for j := range m.Columns {
			row = append(row, cellValue(m.Values[i][j]))
		}
		if err := setRow(f, "Correlation", i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeTopCategoriesSheet(f *excelize.File, top analyze.TopCategoriesTable) error {
	if _, err := f.NewSheet("TopCategories"); err != nil {
		return err
	}
	if err := setRow(f, "TopCategories", 1, []interface{}{"column", "value", "count"}); err != nil {
		return err
	}
	row := 2
	for _, name := range top.Order {
		for _, cc := range top.Columns[name] {
			if err := setRow(f, "TopCategories", row, []interface{}{name, cc.Value, cc.Count}); err != nil {
				return err
			}
			row++
		}
	}
	return nil
}
