package stats

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamadalab/wasm-wat-trimming/internal/corpus"
)

func writeDump(t *testing.T, root string, target corpus.Target, content string) {
	t.Helper()
	path := corpus.WATPath(root, target)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestMeasureCountsLinesAndBytes(t *testing.T) {
	root := t.TempDir()
	targets := []corpus.Target{
		{Algo: "bubsort", Lang: "go"},
		{Algo: "collatz", Lang: "c"},
		{Algo: "fizzbuzz", Lang: "c"},
	}
	writeDump(t, root, targets[0], "a\nb\nc\n")
	writeDump(t, root, targets[1], "a\nb\nc") // no trailing newline

	invs := Measure(root, targets)
	require.Len(t, invs, 3)

	assert.True(t, invs[0].Found)
	assert.Equal(t, 3, invs[0].Lines)
	assert.Equal(t, int64(6), invs[0].Bytes)

	assert.True(t, invs[1].Found)
	assert.Equal(t, 3, invs[1].Lines, "final unterminated line still counts")
	assert.Equal(t, int64(5), invs[1].Bytes)

	assert.False(t, invs[2].Found)
	assert.Zero(t, invs[2].Lines)
}

func TestMeasureEmptyFile(t *testing.T) {
	root := t.TempDir()
	target := corpus.Target{Algo: "helloworld", Lang: "ts"}
	writeDump(t, root, target, "")

	invs := Measure(root, []corpus.Target{target})
	assert.True(t, invs[0].Found)
	assert.Zero(t, invs[0].Lines)
}

func TestInventoryUnits(t *testing.T) {
	inv := Inventory{Bytes: 2048}
	assert.InDelta(t, 2.0, inv.KB(), 1e-12)
	assert.InDelta(t, 2.0/1024, inv.MB(), 1e-12)
}

func TestSummarizeLines(t *testing.T) {
	invs := []Inventory{
		{Found: true, Lines: 10},
		{Found: true, Lines: 30},
		{Found: true, Lines: 20},
		{Found: false, Lines: 999},
	}
	s := SummarizeLines(invs)
	assert.Equal(t, 3, s.Count)
	assert.Equal(t, 10.0, s.Min)
	assert.Equal(t, 30.0, s.Max)
	assert.InDelta(t, 20.0, s.Mean, 1e-12)
	assert.InDelta(t, 20.0, s.Median, 1e-12)
}

func TestSummarizeLinesEmpty(t *testing.T) {
	s := SummarizeLines(nil)
	assert.Zero(t, s.Count)
	assert.Zero(t, s.Mean)
}
