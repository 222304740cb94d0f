package metric

import (
	"math"

	"github.com/tamadalab/wasm-wat-trimming/internal/corpus"
	"github.com/tamadalab/wasm-wat-trimming/internal/ngram"
)

type cosineMetric struct {
	nrange ngram.NRange
}

func (m cosineMetric) Name() string { return Cosine }

func (m cosineMetric) Score(a, b *corpus.Profile) float64 {
	return meanOverRange(a, b, m.nrange, cosineTables)
}

// cosineTables computes the cosine of the angle between the two count
// vectors over the union of their keys.
func cosineTables(a, b ngram.Table) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}
	var dot, normA, normB float64
	for _, k := range unionKeys(a, b) {
		x := float64(a[k])
		y := float64(b[k])
		dot += x * y
		normA += x * x
		normB += y * y
	}
	if normA == 0 || normB == 0 {
		return 0.0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
