package stats

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"gonum.org/v1/gonum/stat"

	"github.com/tamadalab/wasm-wat-trimming/internal/matrix"
	"github.com/tamadalab/wasm-wat-trimming/internal/metric"
)

// Correlation is the before/after Pearson result for one metric.
type Correlation struct {
	Metric string
	R      float64
	Points int
	Status string
}

// Pearson correlates two equal-length vectors, dropping positions where
// either side is NaN. Fewer than two clean points or a zero-variance side
// yields NaN.
func Pearson(before, after []float64) (float64, int) {
	var x, y []float64
	for i := range before {
		if math.IsNaN(before[i]) || math.IsNaN(after[i]) {
			continue
		}
		x = append(x, before[i])
		y = append(y, after[i])
	}
	if len(x) < 2 {
		return math.NaN(), len(x)
	}
	if stat.StdDev(x, nil) == 0 || stat.StdDev(y, nil) == 0 {
		return math.NaN(), len(x)
	}
	return stat.Correlation(x, y, nil), len(x)
}

// CorrelateMatrices compares the strict upper triangles of every metric's
// before matrix and trial-averaged after matrix. Unreadable inputs degrade
// to an undefined correlation with a status explaining why.
func CorrelateMatrices(beforeDir, afterDir, lcsMethod string) []Correlation {
	out := make([]Correlation, 0, len(metric.Names()))
	for _, name := range metric.Names() {
		c := Correlation{Metric: name, R: math.NaN()}

		beforePath := filepath.Join(beforeDir, matrix.FileName(name, lcsMethod, 0))
		mb, err := matrix.ReadCSV(beforePath)
		if err != nil {
			c.Status = "before matrix unavailable"
			slog.Warn("correlation input unavailable", "path", beforePath, "error", err)
			out = append(out, c)
			continue
		}

		afterPath := filepath.Join(afterDir, matrix.AvgFileName(name, lcsMethod))
		ma, err := matrix.ReadCSV(afterPath)
		if err != nil {
			c.Status = "after matrix unavailable"
			slog.Warn("correlation input unavailable", "path", afterPath, "error", err)
			out = append(out, c)
			continue
		}

		if !matrix.SameLabels(mb, ma) {
			c.Status = "label mismatch"
			out = append(out, c)
			continue
		}

		c.R, c.Points = Pearson(mb.UpperTriangle(), ma.UpperTriangle())
		if math.IsNaN(c.R) {
			c.Status = "undefined (constant values or too few points)"
		} else {
			c.Status = "ok"
		}
		out = append(out, c)
	}
	return out
}

// CorrelationSummary aggregates the defined correlations.
type CorrelationSummary struct {
	Valid int
	Total int
	Mean  float64
	Min   float64
	Max   float64
}

// SummarizeCorrelations reduces the rows to count, mean, min, and max of
// the defined correlation coefficients.
func SummarizeCorrelations(rows []Correlation) CorrelationSummary {
	s := CorrelationSummary{Total: len(rows), Mean: math.NaN(), Min: math.NaN(), Max: math.NaN()}
	var rs []float64
	for _, c := range rows {
		if !math.IsNaN(c.R) {
			rs = append(rs, c.R)
		}
	}
	s.Valid = len(rs)
	if len(rs) == 0 {
		return s
	}
	s.Mean = stat.Mean(rs, nil)
	s.Min, s.Max = rs[0], rs[0]
	for _, r := range rs[1:] {
		s.Min = math.Min(s.Min, r)
		s.Max = math.Max(s.Max, r)
	}
	return s
}

var correlationHeader = []string{"method", "pearson_r", "points", "status"}

// WriteCorrelationCSV writes the correlation summary table. Undefined
// coefficients serialize as NaN.
func WriteCorrelationCSV(path string, rows []Correlation) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating results directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating correlation csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(correlationHeader); err != nil {
		return fmt.Errorf("writing correlation header: %w", err)
	}
	for _, c := range rows {
		record := []string{
			c.Metric,
			strconv.FormatFloat(c.R, 'g', -1, 64),
			strconv.Itoa(c.Points),
			c.Status,
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("writing correlation row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing correlation csv: %w", err)
	}
	return nil
}

// ReadCorrelationCSV loads rows written by WriteCorrelationCSV.
func ReadCorrelationCSV(path string) ([]Correlation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	var out []Correlation
	for i, rec := range records {
		if i == 0 && len(rec) > 0 && rec[0] == "method" {
			continue
		}
		if len(rec) < 4 {
			continue
		}
		r, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			r = math.NaN()
		}
		points, _ := strconv.Atoi(rec[2])
		out = append(out, Correlation{Metric: rec[0], R: r, Points: points, Status: rec[3]})
	}
	return out, nil
}
