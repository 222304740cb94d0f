package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tamadalab/wasm-wat-trimming/internal/report"
	"github.com/tamadalab/wasm-wat-trimming/internal/stats"
)

// correlateCmd measures how well trimming preserves similarity structure
var correlateCmd = &cobra.Command{
	Use:   "correlate",
	Short: "Correlate full-corpus matrices with trial-averaged ones",
	Long: `Compute, per metric, the Pearson correlation between the upper triangle
of the full-corpus matrix under --before and the trial-averaged matrix under
--after. A correlation near 1.0 means trimming preserved the relative
similarity structure for that metric.

Metrics missing a matrix on either side are reported with a status instead
of a coefficient.`,
	RunE: runCorrelate,
}

func init() {
	correlateCmd.Flags().String("before", "", "directory with full-corpus matrices")
	correlateCmd.Flags().String("after", "", "directory with trial-averaged matrices")
	correlateCmd.Flags().String("lcs-method", "", "lcs normalization named in the matrix files (default from config)")
	correlateCmd.Flags().String("out", "results", "output directory for correlation_stats.csv")
	_ = correlateCmd.MarkFlagRequired("before")
	_ = correlateCmd.MarkFlagRequired("after")
	rootCmd.AddCommand(correlateCmd)
}

func runCorrelate(cmd *cobra.Command, args []string) error {
	before, _ := cmd.Flags().GetString("before")
	after, _ := cmd.Flags().GetString("after")
	lcsMethod := flagOrConfigString(cmd, "lcs-method", cfg.LCS.Method)
	out, _ := cmd.Flags().GetString("out")

	rows := stats.CorrelateMatrices(before, after, lcsMethod)
	report.PrintCorrelationTable(rows)
	report.PrintCorrelationSummary(stats.SummarizeCorrelations(rows))

	outPath := filepath.Join(out, "correlation_stats.csv")
	if err := stats.WriteCorrelationCSV(outPath, rows); err != nil {
		return err
	}
	report.PrintSaved(outPath)
	return nil
}
