package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tamadalab/wasm-wat-trimming/internal/matrix"
	"github.com/tamadalab/wasm-wat-trimming/internal/metric"
	"github.com/tamadalab/wasm-wat-trimming/internal/report"
	"github.com/tamadalab/wasm-wat-trimming/internal/stats"
)

// reportCmd renders the collected matrices as a styled study report
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render a markdown report from similarity matrices",
	Long: `Collect the matrices under --matrices into one markdown report, render
it in the terminal, and optionally write the markdown to a file.

Each metric is looked up by its conventional file name first and by its
trial-averaged name second, so the command works on both full-corpus and
averaged matrix directories. --correlation folds a correlation CSV from the
correlate command into the report; --heatmap adds a colored grid per matrix.`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().String("matrices", "", "directory with matrix CSVs")
	reportCmd.Flags().String("correlation", "", "correlation CSV to include")
	reportCmd.Flags().String("lcs-method", "", "lcs normalization named in the matrix files (default from config)")
	reportCmd.Flags().Int("limit", 0, "lcs instruction cap named in the matrix files")
	reportCmd.Flags().String("out", "", "write the markdown to this file")
	reportCmd.Flags().Bool("heatmap", false, "print a colored heatmap per matrix")
	_ = reportCmd.MarkFlagRequired("matrices")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	dir, _ := cmd.Flags().GetString("matrices")
	correlationPath, _ := cmd.Flags().GetString("correlation")
	lcsMethod := flagOrConfigString(cmd, "lcs-method", cfg.LCS.Method)
	limit, _ := cmd.Flags().GetInt("limit")
	out, _ := cmd.Flags().GetString("out")
	heatmap, _ := cmd.Flags().GetBool("heatmap")

	matrices := make(map[string]*matrix.Matrix)
	for _, name := range metric.Names() {
		m, err := readMatrixByConvention(dir, name, lcsMethod, limit)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return err
		}
		matrices[name] = m
	}
	if len(matrices) == 0 {
		return fmt.Errorf("no matrix CSVs under %s", dir)
	}

	var correlations []stats.Correlation
	if correlationPath != "" {
		var err error
		correlations, err = stats.ReadCorrelationCSV(correlationPath)
		if err != nil {
			return fmt.Errorf("reading correlation csv: %w", err)
		}
	}

	md := report.MarkdownReport("WAT similarity report", matrices, correlations)
	if out != "" {
		if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
			return fmt.Errorf("creating report directory: %w", err)
		}
		if err := os.WriteFile(out, []byte(md), 0o644); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		report.PrintSaved(out)
	}
	report.Render(md)

	if heatmap {
		for _, name := range metric.Names() {
			if m, ok := matrices[name]; ok {
				report.PrintHeatmap(name, m)
			}
		}
	}
	return nil
}

// readMatrixByConvention tries a metric's per-build file name, then its
// trial-averaged name.
func readMatrixByConvention(dir, name, lcsMethod string, limit int) (*matrix.Matrix, error) {
	m, err := matrix.ReadCSV(filepath.Join(dir, matrix.FileName(name, lcsMethod, limit)))
	if err == nil || !os.IsNotExist(err) {
		return m, err
	}
	return matrix.ReadCSV(filepath.Join(dir, matrix.AvgFileName(name, lcsMethod)))
}
