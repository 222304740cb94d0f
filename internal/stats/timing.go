package stats

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// TimingRecord is one matrix build's wall-clock measurement.
type TimingRecord struct {
	Method  string
	Seconds float64
}

// AppendTiming appends a method,time_seconds row, creating the file with a
// header when it does not exist yet. Appending keeps one file per tree, so
// successive builds accumulate rows for averaging.
func AppendTiming(path string, rec TimingRecord) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating timing directory: %w", err)
	}
	needHeader := false
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		needHeader = true
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening timing csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if needHeader {
		if err := w.Write([]string{"method", "time_seconds"}); err != nil {
			return fmt.Errorf("writing timing header: %w", err)
		}
	}
	if err := w.Write([]string{rec.Method, strconv.FormatFloat(rec.Seconds, 'f', 6, 64)}); err != nil {
		return fmt.Errorf("writing timing row: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing timing csv: %w", err)
	}
	return nil
}

// ReadTimings loads measurements grouped by lower-cased method name.
// Repeated methods accumulate so callers can average them. Header rows and
// malformed rows are skipped.
func ReadTimings(path string) (map[string][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	out := make(map[string][]float64)
	for _, rec := range records {
		if len(rec) < 2 {
			continue
		}
		seconds, err := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if err != nil {
			continue
		}
		method := strings.ToLower(strings.TrimSpace(rec[0]))
		if method == "" {
			continue
		}
		out[method] = append(out[method], seconds)
	}
	return out, nil
}
