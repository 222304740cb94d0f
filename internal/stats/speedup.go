package stats

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gonum.org/v1/gonum/stat"

	"github.com/tamadalab/wasm-wat-trimming/internal/metric"
)

// Speedup is the before/after timing ratio for one metric.
type Speedup struct {
	Method      string
	BaselineSec float64
	TrimmedSec  float64 // mean across measured runs
	Factor      float64
	Trials      int
}

// ComputeSpeedups joins baseline and trimmed timings by metric name, in
// report order. Metrics missing from either side are skipped; multiple
// measurements per side are averaged first.
func ComputeSpeedups(baseline, trimmed map[string][]float64) []Speedup {
	var out []Speedup
	for _, name := range metric.Names() {
		base := baseline[name]
		after := trimmed[name]
		if len(base) == 0 || len(after) == 0 {
			continue
		}
		baseMean := stat.Mean(base, nil)
		afterMean := stat.Mean(after, nil)
		if afterMean <= 0 {
			continue
		}
		out = append(out, Speedup{
			Method:      name,
			BaselineSec: baseMean,
			TrimmedSec:  afterMean,
			Factor:      baseMean / afterMean,
			Trials:      len(after),
		})
	}
	return out
}

var speedupHeader = []string{
	"method", "baseline_time_sec", "trimmed_time_avg_sec", "speedup", "trials_measured",
}

// WriteSpeedupCSV writes the speed comparison table.
func WriteSpeedupCSV(path string, rows []Speedup) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating results directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating speedup csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(speedupHeader); err != nil {
		return fmt.Errorf("writing speedup header: %w", err)
	}
	for _, s := range rows {
		record := []string{
			s.Method,
			strconv.FormatFloat(s.BaselineSec, 'f', 6, 64),
			strconv.FormatFloat(s.TrimmedSec, 'f', 6, 64),
			strconv.FormatFloat(s.Factor, 'f', 4, 64),
			strconv.Itoa(s.Trials),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("writing speedup row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing speedup csv: %w", err)
	}
	return nil
}
