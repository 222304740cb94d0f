package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/tamadalab/wasm-wat-trimming/internal/report"
	"github.com/tamadalab/wasm-wat-trimming/internal/trim"
)

// trimCmd cuts corpus dumps down to a fixed line count
var trimCmd = &cobra.Command{
	Use:   "trim",
	Short: "Trim corpus WAT dumps to a fixed line count",
	Long: `Copy the corpus into variant trees whose dumps keep only a contiguous
window of lines.

head, middle, and tail keep one deterministic window and write a single
variant named after the method. random keeps a uniformly placed window and
repeats for --trials, writing trial_1..trial_N; every trial draws its own
sub-seed from the master seed, so a recorded seed reproduces the whole run.
Each variant carries a trim_log.csv audit file.`,
	RunE: runTrim,
}

func init() {
	trimCmd.Flags().String("root", "", "corpus root (default from config)")
	trimCmd.Flags().String("out", "output/trimmed", "output base directory")
	trimCmd.Flags().String("method", "", "trim method: "+strings.Join(trim.Methods(), ", "))
	trimCmd.Flags().Int("lines", 0, "lines to keep (default from config)")
	trimCmd.Flags().Int("trials", 0, "random trials (default from config)")
	trimCmd.Flags().Int64("seed", 0, "master seed for random trims, 0 derives one from the clock")
	trimCmd.Flags().String("algos", "", "comma-separated algorithm filter")
	trimCmd.Flags().String("langs", "", "comma-separated language filter")
	_ = trimCmd.MarkFlagRequired("method")
	rootCmd.AddCommand(trimCmd)
}

func runTrim(cmd *cobra.Command, args []string) error {
	methodName, _ := cmd.Flags().GetString("method")
	method, err := trim.ParseMethod(methodName)
	if err != nil {
		return err
	}
	root := flagOrConfigString(cmd, "root", cfg.Corpus.Root)
	out, _ := cmd.Flags().GetString("out")
	lines := flagOrConfigInt(cmd, "lines", cfg.Trim.Lines)
	trials := flagOrConfigInt(cmd, "trials", cfg.Trim.Trials)
	seed, _ := cmd.Flags().GetInt64("seed")
	if seed == 0 {
		seed = cfg.Trim.Seed
	}
	algos, _ := cmd.Flags().GetString("algos")
	langs, _ := cmd.Flags().GetString("langs")

	runner := &trim.Runner{
		Root:   root,
		Out:    out,
		Target: lines,
		Algos:  csvSet(algos),
		Langs:  csvSet(langs),
	}
	report.PrintTrimStart(string(method), lines, root, out)

	var records []trim.Record
	if method == trim.Random {
		records, err = runner.RunRandom(trials, seed)
	} else {
		records, err = runner.RunDeterministic(method)
	}
	if err != nil {
		return err
	}

	if method != trim.Random {
		for _, rec := range records {
			report.PrintTrimFile(rec)
		}
	}
	report.PrintTrimSummary(records)
	return nil
}
