package metric

import (
	"github.com/tamadalab/wasm-wat-trimming/internal/corpus"
	"github.com/tamadalab/wasm-wat-trimming/internal/ngram"
)

type overlapMetric struct {
	nrange ngram.NRange
}

func (m overlapMetric) Name() string { return Overlap }

func (m overlapMetric) Score(a, b *corpus.Profile) float64 {
	return meanOverRange(a, b, m.nrange, overlapTables)
}

// overlapTables compares the distinct key sets: intersection over the
// smaller set, the Szymkiewicz-Simpson coefficient.
func overlapTables(a, b ngram.Table) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}
	smaller := len(a)
	if len(b) < smaller {
		smaller = len(b)
	}
	return float64(intersectionSize(a, b)) / float64(smaller)
}
