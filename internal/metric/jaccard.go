package metric

import (
	"github.com/tamadalab/wasm-wat-trimming/internal/corpus"
	"github.com/tamadalab/wasm-wat-trimming/internal/ngram"
)

type jaccardMetric struct {
	nrange ngram.NRange
}

func (m jaccardMetric) Name() string { return Jaccard }

func (m jaccardMetric) Score(a, b *corpus.Profile) float64 {
	return meanOverRange(a, b, m.nrange, jaccardTables)
}

// jaccardTables compares the distinct key sets: intersection over union.
// Counts do not matter, only membership.
func jaccardTables(a, b ngram.Table) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}
	inter := intersectionSize(a, b)
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0.0
	}
	return float64(inter) / float64(union)
}
