package metric

import (
	"math"

	"github.com/tamadalab/wasm-wat-trimming/internal/corpus"
	"github.com/tamadalab/wasm-wat-trimming/internal/ngram"
)

// klEpsilon keeps log ratios finite for keys absent from one side.
const klEpsilon = 1e-10

type klMetric struct {
	nrange ngram.NRange
}

func (m klMetric) Name() string { return KL }

func (m klMetric) Score(a, b *corpus.Profile) float64 {
	return meanOverRange(a, b, m.nrange, klTables)
}

// klTables normalizes both tables to probability distributions, symmetrizes
// the Kullback-Leibler divergence, and maps it into (0, 1] via 1/(1+D).
func klTables(a, b ngram.Table) float64 {
	totalA, totalB := a.Total(), b.Total()
	if totalA == 0 || totalB == 0 {
		return 0.0
	}
	var d float64
	for _, k := range unionKeys(a, b) {
		p := float64(a[k])/float64(totalA) + klEpsilon
		q := float64(b[k])/float64(totalB) + klEpsilon
		d += p*math.Log(p/q) + q*math.Log(q/p)
	}
	return 1 / (1 + d)
}
