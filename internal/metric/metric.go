// Package metric implements the six similarity measures applied to WAT
// instruction representations. Four compare n-gram count tables (cosine,
// jaccard, overlap, manhattan), one compares n-gram probability
// distributions (kl), and one compares the raw instruction sequences (lcs).
// Table-based scores are averaged over every size in the configured n-gram
// range.
package metric

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tamadalab/wasm-wat-trimming/internal/corpus"
	"github.com/tamadalab/wasm-wat-trimming/internal/ngram"
)

// Metric names, in report order.
const (
	Cosine    = "cosine"
	Jaccard   = "jaccard"
	Overlap   = "overlap"
	Manhattan = "manhattan"
	KL        = "kl"
	LCS       = "lcs"
)

// Names returns all metric names in report order.
func Names() []string {
	return []string{Cosine, Jaccard, Overlap, Manhattan, KL, LCS}
}

// Metric scores the similarity of two corpus profiles in [0, 1].
type Metric interface {
	Name() string
	Score(a, b *corpus.Profile) float64
}

// Options configure metric construction. A zero NRange selects the default
// 1..6 window; an empty LCSMethod selects min normalization.
type Options struct {
	NRange    ngram.NRange
	LCSMethod string
}

// New builds the named metric. The name set is closed; anything else is a
// configuration error.
func New(name string, opts Options) (Metric, error) {
	if opts.NRange == (ngram.NRange{}) {
		opts.NRange = ngram.DefaultNRange
	}
	if err := opts.NRange.Validate(); err != nil {
		return nil, err
	}
	switch name {
	case Cosine:
		return cosineMetric{nrange: opts.NRange}, nil
	case Jaccard:
		return jaccardMetric{nrange: opts.NRange}, nil
	case Overlap:
		return overlapMetric{nrange: opts.NRange}, nil
	case Manhattan:
		return manhattanMetric{nrange: opts.NRange}, nil
	case KL:
		return klMetric{nrange: opts.NRange}, nil
	case LCS:
		method, err := ParseLCSMethod(opts.LCSMethod)
		if err != nil {
			return nil, err
		}
		return lcsMetric{method: method}, nil
	default:
		return nil, fmt.Errorf("unknown metric %q (valid: %s)", name, strings.Join(Names(), ", "))
	}
}

// meanOverRange averages a per-size table score across the whole n-gram
// range. Every size divides into the mean, so sizes with an empty table
// pull the average toward zero.
func meanOverRange(a, b *corpus.Profile, nr ngram.NRange, score func(x, y ngram.Table) float64) float64 {
	total := 0.0
	for n := nr.Min; n <= nr.Max; n++ {
		total += score(a.Grams[n], b.Grams[n])
	}
	return total / float64(nr.Len())
}

// unionKeys returns the union of both tables' keys, sorted so float
// accumulation over them is reproducible across runs.
func unionKeys(a, b ngram.Table) []string {
	keys := make([]string, 0, len(a)+len(b))
	for k := range a {
		keys = append(keys, k)
	}
	for k := range b {
		if _, ok := a[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// intersectionSize counts keys present in both tables.
func intersectionSize(a, b ngram.Table) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	n := 0
	for k := range a {
		if _, ok := b[k]; ok {
			n++
		}
	}
	return n
}
