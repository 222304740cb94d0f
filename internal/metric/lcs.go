package metric

import (
	"fmt"
	"math"

	"github.com/tamadalab/wasm-wat-trimming/internal/corpus"
)

// LCSMethod selects the normalization denominator for LCS similarity.
type LCSMethod string

const (
	LCSMin LCSMethod = "min" // LCS length over the shorter sequence
	LCSAvg LCSMethod = "avg" // LCS length over the mean length
	LCSMax LCSMethod = "max" // LCS length over the longer sequence
)

// DefaultLCSMethod is the study's primary normalization.
const DefaultLCSMethod = LCSMin

// ParseLCSMethod validates a normalization name. The empty string selects
// the default; any other unknown name is a configuration error.
func ParseLCSMethod(s string) (LCSMethod, error) {
	switch LCSMethod(s) {
	case "":
		return DefaultLCSMethod, nil
	case LCSMin, LCSAvg, LCSMax:
		return LCSMethod(s), nil
	default:
		return "", fmt.Errorf("unknown lcs method %q (valid: min, avg, max)", s)
	}
}

type lcsMetric struct {
	method LCSMethod
}

func (m lcsMetric) Name() string { return LCS }

func (m lcsMetric) Score(a, b *corpus.Profile) float64 {
	return lcsSimilarity(a.Tokens, b.Tokens, m.method)
}

// lcsSimilarity normalizes the longest common subsequence length of the
// two instruction sequences by the denominator the method selects.
func lcsSimilarity(s1, s2 []string, method LCSMethod) float64 {
	if len(s1) == 0 || len(s2) == 0 {
		return 0.0
	}
	l := float64(lcsLength(s1, s2))
	len1, len2 := float64(len(s1)), float64(len(s2))
	switch method {
	case LCSAvg:
		return 2 * l / (len1 + len2)
	case LCSMax:
		return l / math.Max(len1, len2)
	default:
		return l / math.Min(len1, len2)
	}
}

// lcsLength computes the LCS length with two rolling rows, keeping the
// shorter sequence on the inner dimension so memory stays O(min(m, n)).
func lcsLength(s1, s2 []string) int {
	if len(s1) < len(s2) {
		s1, s2 = s2, s1
	}
	m, n := len(s1), len(s2)
	prev := make([]int, n+1)
	curr := make([]int, n+1)
	for i := 1; i <= m; i++ {
		x := s1[i-1]
		for j := 1; j <= n; j++ {
			switch {
			case x == s2[j-1]:
				curr[j] = prev[j-1] + 1
			case prev[j] >= curr[j-1]:
				curr[j] = prev[j]
			default:
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[n]
}
