package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tamadalab/wasm-wat-trimming/internal/matrix"
	"github.com/tamadalab/wasm-wat-trimming/internal/metric"
	"github.com/tamadalab/wasm-wat-trimming/internal/report"
	"github.com/tamadalab/wasm-wat-trimming/internal/trim"
)

// averageCmd folds per-trial matrices into one mean matrix per metric
var averageCmd = &cobra.Command{
	Use:   "average",
	Short: "Average per-trial similarity matrices",
	Long: `Fold the matrices produced for each random trim trial into one mean
matrix per metric.

The command expects --dir to hold trial_1..trial_N subdirectories, each
containing matrices written by the matrix command. Metrics whose matrix is
missing from every trial are skipped with a warning; a metric present in only
some trials is averaged over the trials that have it.`,
	RunE: runAverage,
}

func init() {
	averageCmd.Flags().String("dir", "", "directory holding trial_<i> matrix subdirectories")
	averageCmd.Flags().Int("trials", 0, "trial count (default from config)")
	averageCmd.Flags().String("metrics", "", "comma-separated metric subset (default all)")
	averageCmd.Flags().String("lcs-method", "", "lcs normalization named in the trial files (default from config)")
	averageCmd.Flags().Int("limit", 0, "lcs instruction cap named in the trial files")
	averageCmd.Flags().String("out", "", "output directory (default <dir>/average)")
	_ = averageCmd.MarkFlagRequired("dir")
	rootCmd.AddCommand(averageCmd)
}

func runAverage(cmd *cobra.Command, args []string) error {
	dir, _ := cmd.Flags().GetString("dir")
	trials := flagOrConfigInt(cmd, "trials", cfg.Trim.Trials)
	lcsMethod := flagOrConfigString(cmd, "lcs-method", cfg.LCS.Method)
	limit, _ := cmd.Flags().GetInt("limit")
	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		out = filepath.Join(dir, "average")
	}
	metricsFlag, _ := cmd.Flags().GetString("metrics")
	wanted := csvSet(metricsFlag)

	averaged := 0
	for _, name := range metric.Names() {
		if len(wanted) > 0 && !wanted[name] {
			continue
		}
		fileName := matrix.FileName(name, lcsMethod, limit)
		var found []*matrix.Matrix
		for trial := 1; trial <= trials; trial++ {
			path := filepath.Join(dir, trim.TrialDir(trial), fileName)
			m, err := matrix.ReadCSV(path)
			if err != nil {
				if os.IsNotExist(err) {
					slog.Warn("trial matrix missing", "metric", name, "trial", trial, "path", path)
					continue
				}
				return fmt.Errorf("reading trial %d matrix for %s: %w", trial, name, err)
			}
			found = append(found, m)
		}
		if len(found) == 0 {
			report.PrintWarning(fmt.Sprintf("no %s matrices under %s, skipping", name, dir))
			continue
		}
		avg, err := matrix.Average(found)
		if err != nil {
			return fmt.Errorf("averaging %s matrices: %w", name, err)
		}
		outPath := filepath.Join(out, matrix.AvgFileName(name, lcsMethod))
		if err := matrix.WriteCSV(outPath, avg); err != nil {
			return err
		}
		report.PrintAveraged(name, len(found), outPath)
		averaged++
	}
	if averaged == 0 {
		return fmt.Errorf("no matrices averaged under %s", dir)
	}
	return nil
}
