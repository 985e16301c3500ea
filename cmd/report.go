package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/edalab/edakit/internal/analyze"
	"github.com/edalab/edakit/internal/charts"
	"github.com/edalab/edakit/internal/config"
	"github.com/edalab/edakit/internal/dataset"
	"github.com/edalab/edakit/internal/render"
)

var (
	reportOutDir          string
	reportSep             string
	reportTopK            int
	reportMaxHistColumns  int
	reportMinMissingShare float64
	reportXLSX            bool
)

var reportCmd = &cobra.Command{
	Use:   "report [file]",
	Short: "Generate a full EDA report for a CSV file",
	Long: `Generate a full EDA report:
- per-column summary and missingness tables (CSV);
- correlation matrix of the numeric columns;
- top-k values per categorical column;
- quality heuristics in a Markdown report;
- charts: histograms, missingness matrix, correlation heatmap.

Examples:
  edakit report users.csv
  edakit report users.csv --out reports/users --top-k 10 --xlsx`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		// flags win over the config file
		if !cmd.Flags().Changed("out") {
			reportOutDir = cfg.Report.OutDir
		}
		if !cmd.Flags().Changed("top-k") {
			reportTopK = cfg.Report.TopK
		}
		if !cmd.Flags().Changed("max-hist-columns") {
			reportMaxHistColumns = cfg.Report.MaxHistColumns
		}
		if !cmd.Flags().Changed("min-missing-share") {
			reportMinMissingShare = cfg.Report.MinMissingShare
		}

		if err := runReport(args[0], cfg); err != nil {
			log.Fatalf("%v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVar(&reportOutDir, "out", "reports",
		"Output directory for the report")
	reportCmd.Flags().StringVar(&reportSep, "sep", "",
		"CSV delimiter (default: auto-detect)")
	reportCmd.Flags().IntVar(&reportTopK, "top-k", 5,
		"How many top values to keep per categorical column")
	reportCmd.Flags().IntVar(&reportMaxHistColumns, "max-hist-columns", 6,
		"Maximum numeric columns to draw histograms for")
	reportCmd.Flags().Float64Var(&reportMinMissingShare, "min-missing-share", 0.3,
		"Missing share above which a column is reported as problematic")
	reportCmd.Flags().BoolVar(&reportXLSX, "xlsx", false,
		"Also export the tables as an xlsx workbook")
}

func runReport(path string, cfg *config.Config) error {
	if err := os.MkdirAll(reportOutDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	ds, err := dataset.Load(path, dataset.LoadOptions{Delimiter: sepRune(reportSep)})
	if err != nil {
		return err
	}

	sum := analyze.Summarize(ds)
	miss := analyze.ComputeMissingTable(ds)
	corr := analyze.ComputeCorrelationMatrix(ds)
	topCats := analyze.TopCategories(ds, analyze.TopCategoriesOptions{
		MaxColumns: cfg.TopCategories.MaxColumns,
		TopK:       reportTopK,
		MaxUnique:  cfg.TopCategories.MaxUnique,
	})
	flags := analyze.ComputeQualityFlags(sum, miss, cfg.Thresholds())

	if err := render.WriteSummaryCSV(sum, filepath.Join(reportOutDir, "summary.csv")); err != nil {
		return err
	}
	if miss.HasMissing() {
		if err := render.WriteMissingCSV(miss, filepath.Join(reportOutDir, "missing.csv")); err != nil {
			return err
		}
	}
	if !corr.Empty() {
		if err := render.WriteCorrelationCSV(corr, filepath.Join(reportOutDir, "correlation.csv")); err != nil {
			return err
		}
	}
	if err := render.WriteTopCategories(topCats, filepath.Join(reportOutDir, "top_categories")); err != nil {
		return err
	}

	data := render.ReportData{
		SourceFile:      filepath.Base(path),
		Summary:         sum,
		Missing:         miss,
		Corr:            corr,
		TopCats:         topCats,
		Flags:           flags,
		MinMissingShare: reportMinMissingShare,
		TopK:            reportTopK,
		MaxHistColumns:  reportMaxHistColumns,
	}
	mdPath := filepath.Join(reportOutDir, "report.md")
	if err := render.WriteMarkdown(mdPath, data); err != nil {
		return err
	}
	if reportXLSX {
		if err := render.WriteWorkbook(filepath.Join(reportOutDir, "report.xlsx"), data); err != nil {
			return err
		}
	}

	if err := charts.Histograms(ds, reportOutDir, reportMaxHistColumns); err != nil {
		return err
	}
	if err := charts.MissingMatrix(ds, filepath.Join(reportOutDir, "missing_matrix.png")); err != nil {
		return err
	}
	if err := charts.CorrelationHeatmap(corr, filepath.Join(reportOutDir, "correlation_heatmap.png")); err != nil {
		return err
	}

	fmt.Printf("Report generated in: %s\n", reportOutDir)
	fmt.Printf("- Markdown report: %s\n", mdPath)
	fmt.Println("- Tables: summary.csv, missing.csv, correlation.csv, top_categories/*.csv")
	fmt.Println("- Charts: hist_*.png, missing_matrix.png, correlation_heatmap.png")
	fmt.Println("\nQuality heuristics:")
	fmt.Printf("- Quality score: %.2f\n", flags.QualityScore)
	fmt.Printf("- Constant columns: %v\n", flags.HasConstantColumns)
	fmt.Printf("- High-cardinality categoricals: %v\n", flags.HasHighCardinalityCategoricals)
	fmt.Printf("- Suspicious ID duplicates: %v\n", flags.HasSuspiciousIDDuplicates)
	return nil
}
