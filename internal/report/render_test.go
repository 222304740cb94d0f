package report

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamadalab/wasm-wat-trimming/internal/matrix"
	"github.com/tamadalab/wasm-wat-trimming/internal/stats"
)

func reportMatrix() *matrix.Matrix {
	m := matrix.New([]string{"bubsort_go", "collatz_go"})
	m.SetSym(0, 1, 0.4321)
	return m
}

func TestMarkdownReportOrdersSections(t *testing.T) {
	matrices := map[string]*matrix.Matrix{
		"lcs":    reportMatrix(),
		"cosine": reportMatrix(),
	}
	md := MarkdownReport("WAT Similarity Report", matrices, nil)

	assert.True(t, strings.HasPrefix(md, "# WAT Similarity Report\n"))
	cosineAt := strings.Index(md, "## cosine")
	lcsAt := strings.Index(md, "## lcs")
	require.GreaterOrEqual(t, cosineAt, 0)
	require.GreaterOrEqual(t, lcsAt, 0)
	assert.Less(t, cosineAt, lcsAt, "sections follow metric report order")
	assert.Contains(t, md, "| bubsort_go | 1.0000 | 0.4321 |")
}

func TestMarkdownReportCorrelationSection(t *testing.T) {
	rows := []stats.Correlation{
		{Metric: "cosine", R: 0.9876, Points: 105, Status: "ok"},
		{Metric: "lcs", R: math.NaN(), Status: "after matrix unavailable"},
	}
	md := MarkdownReport("r", nil, rows)

	assert.Contains(t, md, "## similarity preservation")
	assert.Contains(t, md, "| cosine | 0.9876 | 105 | ok |")
	assert.Contains(t, md, "| lcs | n/a | 0 | after matrix unavailable |")
}

func TestHeatmapShape(t *testing.T) {
	out := Heatmap(reportMatrix())

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3, "one header line plus one line per row")
	assert.Contains(t, out, "bubsort_go")
	assert.Contains(t, out, "collatz_go")
	assert.Contains(t, out, "1.00")
	assert.Contains(t, out, "0.43")
}
