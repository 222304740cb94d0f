package main

import (
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/tamadalab/wasm-wat-trimming/internal/corpus"
	"github.com/tamadalab/wasm-wat-trimming/internal/matrix"
	"github.com/tamadalab/wasm-wat-trimming/internal/metric"
	"github.com/tamadalab/wasm-wat-trimming/internal/report"
	"github.com/tamadalab/wasm-wat-trimming/internal/stats"
)

// matrixCmd builds one pairwise similarity matrix over the corpus
var matrixCmd = &cobra.Command{
	Use:   "matrix",
	Short: "Build a pairwise similarity matrix for one metric",
	Long: `Load every corpus entry, score all distinct pairs with the chosen
metric, and write the symmetric matrix as a labeled CSV.

Serialized gram files are preferred when present; otherwise tables derive
from the WAT dump on the fly. Missing artifacts degrade to empty
representations that score 0 against everything.`,
	RunE: runMatrix,
}

func init() {
	matrixCmd.Flags().String("root", "", "corpus root (default from config)")
	matrixCmd.Flags().String("out", "matrices", "output directory for the matrix CSV")
	matrixCmd.Flags().String("metric", "", "similarity metric: "+strings.Join(metric.Names(), ", "))
	matrixCmd.Flags().String("lcs-method", "", "lcs normalization: min, avg, max (default from config)")
	matrixCmd.Flags().Int("limit", 0, "cap instruction sequences at this many tokens (default from config)")
	matrixCmd.Flags().Bool("parallel", false, "score pairs on all CPUs")
	matrixCmd.Flags().Bool("no-progress", false, "disable the progress bar")
	matrixCmd.Flags().String("timing-out", "", "append the build's wall-clock seconds to this CSV")
	_ = matrixCmd.MarkFlagRequired("metric")
	rootCmd.AddCommand(matrixCmd)
}

func runMatrix(cmd *cobra.Command, args []string) error {
	root := flagOrConfigString(cmd, "root", cfg.Corpus.Root)
	outDir, _ := cmd.Flags().GetString("out")
	metricName, _ := cmd.Flags().GetString("metric")
	lcsMethod := flagOrConfigString(cmd, "lcs-method", cfg.LCS.Method)
	limit := flagOrConfigInt(cmd, "limit", cfg.LCS.Limit)
	parallel, _ := cmd.Flags().GetBool("parallel")
	noProgress, _ := cmd.Flags().GetBool("no-progress")
	timingOut, _ := cmd.Flags().GetString("timing-out")

	me, err := metric.New(metricName, metric.Options{NRange: cfg.NRange(), LCSMethod: lcsMethod})
	if err != nil {
		return err
	}

	targets := cfg.Targets()
	loader := &corpus.Loader{Root: root, NRange: cfg.NRange(), Limit: limit}
	profiles := loader.LoadAll(targets)

	builder := &matrix.Builder{
		Labels:   corpus.Labels(targets),
		Metric:   me,
		Parallel: parallel,
	}
	report.PrintBuildStart(me.Name(), builder.TotalPairs(), root)

	var bar *progressbar.ProgressBar
	if !noProgress {
		bar = progressbar.Default(int64(builder.TotalPairs()), me.Name())
	}
	builder.Observer = func(p matrix.Pair) {
		if bar != nil {
			_ = bar.Add(1)
		}
		slog.Debug("pair scored",
			"a", p.A, "b", p.B,
			"score", p.Score,
			"elapsed", p.Elapsed,
			"done", p.Done, "total", p.Total)
	}

	start := time.Now()
	m := builder.Build(profiles)
	elapsed := time.Since(start)
	if bar != nil {
		_ = bar.Finish()
	}

	outPath := filepath.Join(outDir, matrix.FileName(me.Name(), lcsMethod, limit))
	if err := matrix.WriteCSV(outPath, m); err != nil {
		return err
	}
	report.PrintBuildComplete(me.Name(), builder.TotalPairs(), elapsed, outPath)

	if timingOut != "" {
		rec := stats.TimingRecord{Method: me.Name(), Seconds: elapsed.Seconds()}
		if err := stats.AppendTiming(timingOut, rec); err != nil {
			return err
		}
		report.PrintSaved(timingOut)
	}
	return nil
}
