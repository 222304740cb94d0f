// Package stats derives study bookkeeping from corpus trees and matrix
// files: size inventories, trim compression rates, before/after matrix
// correlation, and timing speedups.
package stats

import (
	"bytes"
	"os"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/tamadalab/wasm-wat-trimming/internal/corpus"
)

// Inventory is one target's size measurement.
type Inventory struct {
	Target corpus.Target
	Lines  int
	Bytes  int64
	Found  bool
}

// KB reports the size in kibibytes.
func (v Inventory) KB() float64 { return float64(v.Bytes) / 1024 }

// MB reports the size in mebibytes.
func (v Inventory) MB() float64 { return v.KB() / 1024 }

// Measure counts lines and bytes of every target's WAT dump below root.
// Missing dumps stay in the result with Found unset.
func Measure(root string, targets []corpus.Target) []Inventory {
	out := make([]Inventory, 0, len(targets))
	for _, t := range targets {
		inv := Inventory{Target: t}
		if data, err := os.ReadFile(corpus.WATPath(root, t)); err == nil {
			inv.Found = true
			inv.Lines = countLines(data)
			inv.Bytes = int64(len(data))
		}
		out = append(out, inv)
	}
	return out
}

// countLines counts one line per newline plus a final unterminated line.
func countLines(data []byte) int {
	if len(data) == 0 {
		return 0
	}
	n := bytes.Count(data, []byte("\n"))
	if data[len(data)-1] != '\n' {
		n++
	}
	return n
}

// LineStats summarizes the line counts of the dumps that were found.
type LineStats struct {
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	Q1     float64
	Q3     float64
}

// SummarizeLines computes distribution statistics over found inventories.
func SummarizeLines(invs []Inventory) LineStats {
	var lines []float64
	for _, v := range invs {
		if v.Found {
			lines = append(lines, float64(v.Lines))
		}
	}
	if len(lines) == 0 {
		return LineStats{}
	}
	sort.Float64s(lines)
	return LineStats{
		Count:  len(lines),
		Min:    lines[0],
		Max:    lines[len(lines)-1],
		Mean:   stat.Mean(lines, nil),
		Median: stat.Quantile(0.5, stat.Empirical, lines, nil),
		Q1:     stat.Quantile(0.25, stat.Empirical, lines, nil),
		Q3:     stat.Quantile(0.75, stat.Empirical, lines, nil),
	}
}
