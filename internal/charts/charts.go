// Package charts renders the image artifacts of a report: per-column
// histograms, a missingness matrix and a correlation heatmap. It consumes
// the raw dataset and the engine's correlation matrix; no analytical logic
// lives here.
package charts

import (
	"fmt"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/edalab/edakit/internal/analyze"
	"github.com/edalab/edakit/internal/dataset"
	"github.com/edalab/edakit/internal/render"
)

const histogramBins = 16

// Histograms renders one hist_<column>.png per numeric column into dir,
// covering the first maxColumns numeric columns in dataset order. Columns
// without non-missing values are skipped.
func Histograms(ds *dataset.Dataset, dir string, maxColumns int) error {
	drawn := 0
	for _, col := range ds.NumericColumns() {
		if maxColumns > 0 && drawn >= maxColumns {
			break
		}
		vals := col.Floats()
		if len(vals) == 0 {
			continue
		}

		p := plot.New()
		p.Title.Text = col.Name
		p.Y.Label.Text = "count"

		h, err := plotter.NewHist(plotter.Values(vals), histogramBins)
		if err != nil {
			return fmt.Errorf("histogram for %s: %w", col.Name, err)
		}
		p.Add(h)

		path := filepath.Join(dir, "hist_"+render.SanitizeName(col.Name)+".png")
		if err := p.Save(5*vg.Inch, 4*vg.Inch, path); err != nil {
			return fmt.Errorf("save %s: %w", path, err)
		}
		drawn++
	}
	return nil
}

// matrixGrid adapts a row-major matrix to plotter.GridXYZ.
type matrixGrid struct {
	vals [][]float64
}

func (g matrixGrid) Dims() (c, r int) {
	r = len(g.vals)
	if r > 0 {
		c = len(g.vals[0])
	}
	return c, r
}

func (g matrixGrid) Z(c, r int) float64 { return g.vals[r][c] }
func (g matrixGrid) X(c int) float64    { return float64(c) }
func (g matrixGrid) Y(r int) float64    { return float64(r) }

// MissingMatrix renders the rows-by-columns presence grid: missing cells
// light up. A dataset without rows or columns produces no file.
func MissingMatrix(ds *dataset.Dataset, path string) error {
	if ds.NRows == 0 || ds.NCols() == 0 {
		return nil
	}

	vals := make([][]float64, ds.NRows)
	for row := range vals {
		vals[row] = make([]float64, ds.NCols())
		for j := range ds.Columns {
			if !ds.Columns[j].Present[row] {
				vals[row][j] = 1
			}
		}
	}

	p := plot.New()
	p.Title.Text = "Missing values"
	p.Y.Label.Text = "row"
	p.Add(plotter.NewHeatMap(matrixGrid{vals}, palette.Heat(12, 1)))

	names := make([]string, ds.NCols())
	for j := range ds.Columns {
		names[j] = ds.Columns[j].Name
	}
	p.NominalX(names...)

	if err := p.Save(6*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// CorrelationHeatmap renders the pairwise correlation matrix with a
// diverging palette over [-1, 1]. An empty matrix produces no file.
func CorrelationHeatmap(m analyze.CorrMatrix, path string) error {
	if m.Empty() {
		return nil
	}

	cm := moreland.SmoothBlueRed()
	cm.SetMin(-1)
	cm.SetMax(1)

	p := plot.New()
	p.Title.Text = "Correlation"
	p.Add(plotter.NewHeatMap(matrixGrid{m.Values}, cm.Palette(256)))
	p.NominalX(m.Columns...)
	p.NominalY(m.Columns...)

	if err := p.Save(6*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
