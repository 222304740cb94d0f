package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tamadalab/wasm-wat-trimming/internal/report"
	"github.com/tamadalab/wasm-wat-trimming/internal/stats"
)

// speedupCmd compares matrix build times before and after trimming
var speedupCmd = &cobra.Command{
	Use:   "speedup",
	Short: "Compare matrix build timings before and after trimming",
	Long: `Read two timing CSVs written by the matrix command's --timing-out flag
and report, per metric, the ratio of mean build time before trimming to mean
build time after. Metrics present in only one file are skipped.`,
	RunE: runSpeedup,
}

func init() {
	speedupCmd.Flags().String("before", "", "timing CSV from full-corpus builds")
	speedupCmd.Flags().String("after", "", "timing CSV from trimmed builds")
	speedupCmd.Flags().String("out", "", "write the speedup table to this CSV")
	_ = speedupCmd.MarkFlagRequired("before")
	_ = speedupCmd.MarkFlagRequired("after")
	rootCmd.AddCommand(speedupCmd)
}

func runSpeedup(cmd *cobra.Command, args []string) error {
	beforePath, _ := cmd.Flags().GetString("before")
	afterPath, _ := cmd.Flags().GetString("after")
	out, _ := cmd.Flags().GetString("out")

	before, err := stats.ReadTimings(beforePath)
	if err != nil {
		return fmt.Errorf("reading baseline timings: %w", err)
	}
	after, err := stats.ReadTimings(afterPath)
	if err != nil {
		return fmt.Errorf("reading trimmed timings: %w", err)
	}

	rows := stats.ComputeSpeedups(before, after)
	if len(rows) == 0 {
		return fmt.Errorf("no metric appears in both %s and %s", beforePath, afterPath)
	}
	report.PrintSpeedupTable(rows)
	if out != "" {
		if err := stats.WriteSpeedupCSV(out, rows); err != nil {
			return err
		}
		report.PrintSaved(out)
	}
	return nil
}
