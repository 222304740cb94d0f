package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tamadalab/wasm-wat-trimming/internal/report"
	"github.com/tamadalab/wasm-wat-trimming/internal/stats"
	"github.com/tamadalab/wasm-wat-trimming/internal/trim"
)

// statsCmd reports corpus sizes and, when asked, trim compression
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Report corpus dump sizes and trim compression",
	Long: `Print a per-target line and byte inventory for the corpus under --root.

With --trimmed and --method, also compare each dump against its trimmed
counterpart and report line and byte reduction. Deterministic methods read
one variant directory named after the method; random reads trial_1..trial_N
and averages the after sizes per target.`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().String("root", "", "corpus root (default from config)")
	statsCmd.Flags().String("trimmed", "", "trimmed output base directory")
	statsCmd.Flags().String("method", "", "trim method whose variants to measure")
	statsCmd.Flags().Int("trials", 0, "random trial count (default from config)")
	statsCmd.Flags().String("out", "", "write the compression table to this CSV")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	root := flagOrConfigString(cmd, "root", cfg.Corpus.Root)
	trimmed, _ := cmd.Flags().GetString("trimmed")
	methodName, _ := cmd.Flags().GetString("method")
	trials := flagOrConfigInt(cmd, "trials", cfg.Trim.Trials)
	out, _ := cmd.Flags().GetString("out")
	targets := cfg.Targets()

	invs := stats.Measure(root, targets)
	report.PrintInventoryTable(invs, stats.SummarizeLines(invs))
	if trimmed == "" {
		return nil
	}

	method, err := trim.ParseMethod(methodName)
	if err != nil {
		return fmt.Errorf("--trimmed needs a method: %w", err)
	}
	var variants []string
	if method == trim.Random {
		for trial := 1; trial <= trials; trial++ {
			variants = append(variants, filepath.Join(trimmed, trim.TrialDir(trial)))
		}
	} else {
		variants = []string{filepath.Join(trimmed, string(method))}
	}

	rows := stats.MeasureCompression(root, variants, targets)
	for i := range rows {
		rows[i].Method = string(method)
	}
	report.PrintCompressionTable(rows)
	if out != "" && len(rows) > 0 {
		if err := stats.WriteCompressionCSV(out, rows); err != nil {
			return err
		}
		report.PrintSaved(out)
	}
	return nil
}
