package metric

import (
	"github.com/tamadalab/wasm-wat-trimming/internal/corpus"
	"github.com/tamadalab/wasm-wat-trimming/internal/ngram"
)

type manhattanMetric struct {
	nrange ngram.NRange
}

func (m manhattanMetric) Name() string { return Manhattan }

func (m manhattanMetric) Score(a, b *corpus.Profile) float64 {
	return meanOverRange(a, b, m.nrange, manhattanTables)
}

// manhattanTables turns the L1 distance between the count vectors into a
// similarity: 1 - dist / (totalA + totalB). Disjoint tables score exactly 0
// because the distance then equals the combined mass.
func manhattanTables(a, b ngram.Table) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}
	dist := 0
	for _, k := range unionKeys(a, b) {
		d := a[k] - b[k]
		if d < 0 {
			d = -d
		}
		dist += d
	}
	total := a.Total() + b.Total()
	if total == 0 {
		return 0.0
	}
	return 1 - float64(dist)/float64(total)
}
