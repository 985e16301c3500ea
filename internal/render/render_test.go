package render

import (
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edalab/edakit/internal/analyze"
	"github.com/edalab/edakit/internal/dataset"
)

func testData() ReportData {
	ds := &dataset.Dataset{
		NRows: 4,
		Columns: []dataset.Column{
			dataset.NewNumericColumn("age",
				[]float64{10, 20, 30, 0},
				[]bool{true, true, true, false}),
			dataset.NewNumericColumn("height",
				[]float64{140, 150, 160, 170},
				[]bool{true, true, true, true}),
			dataset.NewCategoricalColumn("city",
				[]string{"A", "B", "A", ""},
				[]bool{true, true, true, false}),
		},
	}
	sum := analyze.Summarize(ds)
	miss := analyze.ComputeMissingTable(ds)
	return ReportData{
		SourceFile:      "users.csv",
		Summary:         sum,
		Missing:         miss,
		Corr:            analyze.ComputeCorrelationMatrix(ds),
		TopCats:         analyze.TopCategories(ds, analyze.TopCategoriesOptions{MaxColumns: 5, TopK: 5}),
		Flags:           analyze.ComputeQualityFlags(sum, miss, analyze.DefaultThresholds()),
		MinMissingShare: 0.3,
		TopK:            5,
		MaxHistColumns:  6,
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteSummaryCSV(t *testing.T) {
	d := testData()
	path := filepath.Join(t.TempDir(), "summary.csv")
	require.NoError(t, WriteSummaryCSV(d.Summary, path))

	rows := readCSV(t, path)
	require.Len(t, rows, 4) // header + 3 columns
	assert.Equal(t, "name", rows[0][0])
	assert.Equal(t, "age", rows[1][0])
	assert.Equal(t, "3", rows[1][2])
	// undefined stats render empty for the categorical column
	assert.Equal(t, "", rows[3][7])
}

func TestWriteMissingCSV(t *testing.T) {
	d := testData()
	path := filepath.Join(t.TempDir(), "missing.csv")
	require.NoError(t, WriteMissingCSV(d.Missing, path))

	rows := readCSV(t, path)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"age", "1", "0.25"}, rows[1])
}

func TestWriteCorrelationCSV(t *testing.T) {
	d := testData()
	path := filepath.Join(t.TempDir(), "correlation.csv")
	require.NoError(t, WriteCorrelationCSV(d.Corr, path))

	rows := readCSV(t, path)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"", "age", "height"}, rows[0])
	assert.Equal(t, "1", rows[1][1])
}

func TestWriteTopCategories(t *testing.T) {
	d := testData()
	dir := filepath.Join(t.TempDir(), "top_categories")
	require.NoError(t, WriteTopCategories(d.TopCats, dir))

	rows := readCSV(t, filepath.Join(dir, "city.csv"))
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"A", "2"}, rows[1])
	assert.Equal(t, []string{"B", "1"}, rows[2])
}

func TestWriteMarkdown(t *testing.T) {
	d := testData()
	path := filepath.Join(t.TempDir(), "report.md")
	require.NoError(t, WriteMarkdown(path, d))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	report := string(b)
	assert.Contains(t, report, "# EDA report")
	assert.Contains(t, report, "`users.csv`")
	assert.Contains(t, report, "Quality score")
	assert.Contains(t, report, "Constant columns")
	assert.Contains(t, report, "summary.csv")
}

func TestWriteWorkbook(t *testing.T) {
	d := testData()
	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, WriteWorkbook(path, d))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "", FormatFloat(math.NaN()))
	assert.Equal(t, "0.25", FormatFloat(0.25))
}

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "avg_session_min", SanitizeName("avg session/min"))
	assert.Equal(t, "user_id", SanitizeName("user_id"))
}
