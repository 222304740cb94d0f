package matrix

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tamadalab/wasm-wat-trimming/internal/metric"
)

// FileName returns the conventional CSV name for a metric's matrix. The LCS
// name carries its normalization method and, when one applies, the
// instruction sequence cap.
func FileName(metricName, lcsMethod string, limit int) string {
	if metricName == metric.LCS {
		name := "lcs_instruction_similarity_matrix_" + lcsMethod
		if limit > 0 {
			name += fmt.Sprintf("_limit%d", limit)
		}
		return name + ".csv"
	}
	return metricName + "_similarity_matrix.csv"
}

// AvgFileName returns the conventional CSV name for a trial-averaged matrix.
func AvgFileName(metricName, lcsMethod string) string {
	return strings.TrimSuffix(FileName(metricName, lcsMethod, 0), ".csv") + "_avg.csv"
}

// WriteCSV serializes the matrix with a label header row and label-prefixed
// data rows; the top-left cell is empty. Values use the shortest exact
// float form, so reading the file back reproduces them bit for bit.
func WriteCSV(path string, m *Matrix) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating matrix directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating matrix csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(append([]string{""}, m.Labels...)); err != nil {
		return fmt.Errorf("writing matrix header: %w", err)
	}
	row := make([]string, m.Size()+1)
	for i, label := range m.Labels {
		row[0] = label
		for j, v := range m.Values[i] {
			row[j+1] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing matrix row %s: %w", label, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing matrix csv: %w", err)
	}
	return nil
}

// ReadCSV loads a labeled square matrix in the layout WriteCSV produces.
// Row labels must match the column labels position by position.
func ReadCSV(path string) (*Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%s: matrix csv needs a header and at least one row", path)
	}
	labels := records[0][1:]
	n := len(labels)
	if len(records)-1 != n {
		return nil, fmt.Errorf("%s: %d labels but %d data rows", path, n, len(records)-1)
	}
	m := New(labels)
	for i, rec := range records[1:] {
		if rec[0] != labels[i] {
			return nil, fmt.Errorf("%s: row label %q does not match column label %q", path, rec[0], labels[i])
		}
		for j, cell := range rec[1:] {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("%s: cell (%s, %s): %w", path, labels[i], labels[j], err)
			}
			m.Values[i][j] = v
		}
	}
	return m, nil
}
