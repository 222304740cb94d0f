package ngram

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// ReadFile loads a table from a gram file holding one "<ngram>\t<count>"
// line per entry. Blank lines, lines without exactly one tab, and lines
// with a non-integer count are skipped; counts for a repeated key
// accumulate.
func ReadFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t := make(Table)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		parts := strings.Split(strings.TrimSpace(scanner.Text()), "\t")
		if len(parts) != 2 {
			continue
		}
		count, err := strconv.Atoi(parts[1])
		if err != nil {
			continue
		}
		t[parts[0]] += count
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return t, nil
}

// WriteFile serializes the table in count-descending order, ties broken by
// key, creating parent directories as needed.
func WriteFile(path string, t Table) error {
	type entry struct {
		gram  string
		count int
	}
	entries := make([]entry, 0, len(t))
	for g, c := range t {
		entries = append(entries, entry{g, c})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].gram < entries[j].gram
	})

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating gram directory: %w", err)
	}
	var sb strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&sb, "%s\t%d\n", e.gram, e.count)
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("writing gram file: %w", err)
	}
	return nil
}
