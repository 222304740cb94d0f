// Package ngram builds and serializes n-gram frequency tables over
// instruction token sequences.
package ngram

import (
	"fmt"
	"strings"
)

// Table maps an n-gram, its tokens joined by single spaces, to an
// occurrence count.
type Table map[string]int

// Build counts every n-token window of tokens with stride one. Sequences
// shorter than n produce an empty table.
func Build(tokens []string, n int) Table {
	t := make(Table)
	if n < 1 {
		return t
	}
	for i := 0; i+n <= len(tokens); i++ {
		t[strings.Join(tokens[i:i+n], " ")]++
	}
	return t
}

// Total returns the sum of all counts in the table.
func (t Table) Total() int {
	total := 0
	for _, c := range t {
		total += c
	}
	return total
}

// NRange is an inclusive range of n-gram sizes.
type NRange struct {
	Min int
	Max int
}

// DefaultNRange covers sizes 1 through 6, the window similarity scores are
// averaged over.
var DefaultNRange = NRange{Min: 1, Max: 6}

// Len returns the number of sizes in the range.
func (r NRange) Len() int { return r.Max - r.Min + 1 }

// Validate checks that the range is well formed.
func (r NRange) Validate() error {
	if r.Min < 1 {
		return fmt.Errorf("n-gram range: min must be at least 1, got %d", r.Min)
	}
	if r.Max < r.Min {
		return fmt.Errorf("n-gram range: max %d is smaller than min %d", r.Max, r.Min)
	}
	return nil
}
