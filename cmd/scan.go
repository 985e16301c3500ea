package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/edalab/edakit/internal/analyze"
	"github.com/edalab/edakit/internal/config"
	"github.com/edalab/edakit/internal/connectors"
	"github.com/edalab/edakit/internal/dataset"
)

var (
	scanDir       string
	scanRecursive bool
	scanMinSize   int64
	scanMaxSize   int64
	scanWorkers   int
)

type scanResult struct {
	Path            string
	Size            int64
	Rows            int
	Cols            int
	MaxMissingShare float64
	QualityScore    float64
	Err             error
}

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan a directory and score CSV files for quality",
	Long: `Scan a directory for CSV files and print a quality table per
file: shape, worst per-column missing share and aggregate quality score.

Examples:
  edakit scan --dir ./data
  edakit scan --dir ./data --recursive --workers 4`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		options := connectors.DiscoveryOptions{
			Recursive: scanRecursive,
			MinSize:   scanMinSize,
			MaxSize:   scanMaxSize,
		}
		files, fileCount, err := connectors.DiscoverFiles(scanDir, "csv", options)
		if err != nil {
			log.Fatalf("Scan failed: %v", err)
		}
		if fileCount == 0 {
			fmt.Printf("No CSV files found in %s\n", scanDir)
			return
		}
		fmt.Printf("Found %d CSV files\n", fileCount)

		bar := progressbar.NewOptions(fileCount,
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSetDescription("[cyan][reset] Profiling files..."),
			progressbar.OptionSetWidth(20),
			progressbar.OptionShowCount(),
			progressbar.OptionOnCompletion(func() {
				fmt.Println()
			}),
		)

		results := scanFiles(files, cfg.Thresholds(), bar)
		bar.Finish()
		printScanTable(results)
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringVarP(&scanDir, "dir", "d", "",
		"Directory to scan (required)")
	scanCmd.Flags().BoolVarP(&scanRecursive, "recursive", "r", false,
		"Search directories recursively")
	scanCmd.Flags().Int64Var(&scanMinSize, "min-size", 0,
		"Minimum file size in bytes")
	scanCmd.Flags().Int64Var(&scanMaxSize, "max-size", 0,
		"Maximum file size in bytes")
	scanCmd.Flags().IntVar(&scanWorkers, "workers", 0,
		"Parallel workers (default: number of CPUs)")

	scanCmd.MarkFlagRequired("dir")
}

func scanFiles(files []connectors.FileMeta, th analyze.Thresholds, bar *progressbar.ProgressBar) []scanResult {
	workers := scanWorkers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	semaphore := make(chan struct{}, workers)
	out := make(chan scanResult, len(files))

	var wg sync.WaitGroup
	for _, file := range files {
		wg.Add(1)
		go func(f connectors.FileMeta) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			out <- scanFile(f, th)
			bar.Add(1)
		}(file)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	var results []scanResult
	for r := range out {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })
	return results
}

func scanFile(f connectors.FileMeta, th analyze.Thresholds) scanResult {
	res := scanResult{Path: f.Path, Size: f.Size}

	ds, err := dataset.Load(f.Path, dataset.LoadOptions{})
	if err != nil {
		res.Err = err
		return res
	}

	sum := analyze.Summarize(ds)
	miss := analyze.ComputeMissingTable(ds)
	flags := analyze.ComputeQualityFlags(sum, miss, th)

	res.Rows = sum.NRows
	res.Cols = sum.NCols
	res.MaxMissingShare = flags.MaxMissingShare
	res.QualityScore = flags.QualityScore
	return res
}

func printScanTable(results []scanResult) {
	fmt.Printf("\n%-40s %10s %8s %12s %8s %10s\n",
		"File", "Rows", "Columns", "Max Missing", "Score", "Size")
	fmt.Println(strings.Repeat("-", 94))

	for _, r := range results {
		name := filepath.Base(r.Path)
		if len(name) > 37 {
			name = name[:34] + "..."
		}
		if r.Err != nil {
			fmt.Printf("%-40s failed: %v\n", name, r.Err)
			continue
		}
		fmt.Printf("%-40s %10s %8d %11.1f%% %8.2f %10s\n",
			name, humanize.Comma(int64(r.Rows)), r.Cols,
			r.MaxMissingShare*100, r.QualityScore,
			humanize.Bytes(uint64(r.Size)))
	}
}
