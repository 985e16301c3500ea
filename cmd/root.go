package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "edakit",
	Short: "Exploratory data analysis for CSV files",
	Long: `edakit computes per-column summaries, missingness statistics,
correlation structure and data-quality heuristics for CSV datasets,
and renders them as tables, charts and a Markdown report`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.edakit/config.yaml)")
}
