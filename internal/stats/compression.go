package stats

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/tamadalab/wasm-wat-trimming/internal/corpus"
)

// Compression compares one target's dump before and after trimming. After
// sizes are means across the supplied variant trees, so random runs report
// per-trial averages.
type Compression struct {
	Method      string
	Target      corpus.Target
	LinesBefore int
	LinesAfter  float64
	BytesBefore int64
	BytesAfter  float64
	Trials      int
}

// LineReduction reports the fraction of lines removed.
func (c Compression) LineReduction() float64 {
	if c.LinesBefore == 0 {
		return 0
	}
	return 1 - c.LinesAfter/float64(c.LinesBefore)
}

// ByteReduction reports the fraction of bytes removed.
func (c Compression) ByteReduction() float64 {
	if c.BytesBefore == 0 {
		return 0
	}
	return 1 - c.BytesAfter/float64(c.BytesBefore)
}

// MeasureCompression compares each target's WAT below root against its
// counterparts below the variant roots. Targets missing from the baseline
// or from every variant are dropped.
func MeasureCompression(root string, variantRoots []string, targets []corpus.Target) []Compression {
	out := make([]Compression, 0, len(targets))
	for _, t := range targets {
		before, err := os.ReadFile(corpus.WATPath(root, t))
		if err != nil {
			continue
		}
		c := Compression{
			Target:      t,
			LinesBefore: countLines(before),
			BytesBefore: int64(len(before)),
		}
		var linesSum, bytesSum float64
		for _, vroot := range variantRoots {
			after, err := os.ReadFile(corpus.WATPath(vroot, t))
			if err != nil {
				continue
			}
			c.Trials++
			linesSum += float64(countLines(after))
			bytesSum += float64(len(after))
		}
		if c.Trials == 0 {
			continue
		}
		c.LinesAfter = linesSum / float64(c.Trials)
		c.BytesAfter = bytesSum / float64(c.Trials)
		out = append(out, c)
	}
	return out
}

var compressionHeader = []string{
	"method", "length", "program", "language",
	"lines_before", "lines_after", "bytes_before", "bytes_after",
	"reduction_rate_lines", "reduction_rate_bytes", "trials_count",
}

// WriteCompressionCSV writes the compression table. The length column holds
// the kept line count rounded down, which is the nominal trim target for
// full-length rows and below it for short dumps.
func WriteCompressionCSV(path string, rows []Compression) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating results directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating compression csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(compressionHeader); err != nil {
		return fmt.Errorf("writing compression header: %w", err)
	}
	for _, c := range rows {
		record := []string{
			c.Method,
			strconv.Itoa(int(c.LinesAfter)),
			c.Target.Algo,
			c.Target.Lang,
			strconv.Itoa(c.LinesBefore),
			strconv.FormatFloat(c.LinesAfter, 'g', -1, 64),
			strconv.FormatInt(c.BytesBefore, 10),
			strconv.FormatFloat(c.BytesAfter, 'g', -1, 64),
			strconv.FormatFloat(c.LineReduction(), 'g', -1, 64),
			strconv.FormatFloat(c.ByteReduction(), 'g', -1, 64),
			strconv.Itoa(c.Trials),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("writing compression row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing compression csv: %w", err)
	}
	return nil
}
