package trim

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// auditHeader is the trim_log.csv column set.
var auditHeader = []string{
	"trial", "algo", "lang", "relpath_after_lang",
	"total_lines", "kept_lines", "start_index", "method", "seed",
}

// WriteAuditCSV writes one audit row per trimmed file. Together with the
// master seed the log pins down every produced variant exactly.
func WriteAuditCSV(path string, records []Record) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating audit directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating audit log: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(auditHeader); err != nil {
		return fmt.Errorf("writing audit header: %w", err)
	}
	for _, rec := range records {
		seed := ""
		if rec.Method == Random {
			seed = strconv.FormatInt(rec.Seed, 10)
		}
		row := []string{
			strconv.Itoa(rec.Trial),
			rec.Algo,
			rec.Lang,
			rec.RelPath,
			strconv.Itoa(rec.Total),
			strconv.Itoa(rec.Kept),
			strconv.Itoa(rec.Start),
			string(rec.Method),
			seed,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing audit row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing audit log: %w", err)
	}
	return nil
}
