package stats

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendTimingAccumulates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results", "timing_before.csv")

	require.NoError(t, AppendTiming(path, TimingRecord{Method: "cosine", Seconds: 1.5}))
	require.NoError(t, AppendTiming(path, TimingRecord{Method: "lcs", Seconds: 120.25}))
	require.NoError(t, AppendTiming(path, TimingRecord{Method: "cosine", Seconds: 2.5}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "method,time_seconds", lines[0], "header written only once")

	timings, err := ReadTimings(path)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 2.5}, timings["cosine"])
	assert.Equal(t, []float64{120.25}, timings["lcs"])
}

func TestReadTimingsTolerantOfNoise(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timing.csv")
	content := "method,time_seconds\n" +
		"Cosine,1.5\n" +
		"broken-row\n" +
		"jaccard,not-a-number\n" +
		"KL, 3.25\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	timings, err := ReadTimings(path)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5}, timings["cosine"], "method names match case-insensitively")
	assert.Equal(t, []float64{3.25}, timings["kl"])
	assert.NotContains(t, timings, "jaccard")
}

func TestReadTimingsMissingFile(t *testing.T) {
	_, err := ReadTimings(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
}

func TestComputeSpeedups(t *testing.T) {
	baseline := map[string][]float64{
		"cosine": {10.0},
		"lcs":    {120.0, 130.0},
	}
	trimmed := map[string][]float64{
		"cosine":  {2.0, 3.0},
		"lcs":     {25.0},
		"jaccard": {1.0}, // no baseline, must be skipped
	}

	rows := ComputeSpeedups(baseline, trimmed)
	require.Len(t, rows, 2)

	cosine := rows[0]
	assert.Equal(t, "cosine", cosine.Method)
	assert.InDelta(t, 10.0, cosine.BaselineSec, 1e-12)
	assert.InDelta(t, 2.5, cosine.TrimmedSec, 1e-12)
	assert.InDelta(t, 4.0, cosine.Factor, 1e-12)
	assert.Equal(t, 2, cosine.Trials)

	lcs := rows[1]
	assert.Equal(t, "lcs", lcs.Method)
	assert.InDelta(t, 125.0, lcs.BaselineSec, 1e-12)
	assert.InDelta(t, 5.0, lcs.Factor, 1e-12)
}

func TestWriteSpeedupCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results", "speed_stats.csv")
	rows := []Speedup{{
		Method:      "cosine",
		BaselineSec: 10,
		TrimmedSec:  2.5,
		Factor:      4,
		Trials:      2,
	}}
	require.NoError(t, WriteSpeedupCSV(path, rows))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "method,baseline_time_sec,trimmed_time_avg_sec,speedup,trials_measured", lines[0])
	assert.Equal(t, "cosine,10.000000,2.500000,4.0000,2", lines[1])
}
