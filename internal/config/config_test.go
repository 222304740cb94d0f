package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamadalab/wasm-wat-trimming/internal/corpus"
	"github.com/tamadalab/wasm-wat-trimming/internal/ngram"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "output/not_trimmed", cfg.Corpus.Root)
	assert.Equal(t, ngram.NRange{Min: 1, Max: 6}, cfg.NRange())
	assert.Equal(t, "min", cfg.LCS.Method)
	assert.Zero(t, cfg.LCS.Limit)
	assert.Equal(t, 500, cfg.Trim.Lines)
	assert.Equal(t, 10, cfg.Trim.Trials)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, corpus.DefaultTargets, cfg.Targets())
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wattrim.yaml")
	content := `corpus:
  root: data/wat
  targets:
    - algo: bubsort
      lang: go
    - algo: collatz
      lang: c
ngrams:
  min: 2
  max: 4
lcs:
  method: avg
  limit: 2000
trim:
  lines: 1000
  trials: 5
  seed: 42
logging:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "data/wat", cfg.Corpus.Root)
	assert.Equal(t, ngram.NRange{Min: 2, Max: 4}, cfg.NRange())
	assert.Equal(t, "avg", cfg.LCS.Method)
	assert.Equal(t, 2000, cfg.LCS.Limit)
	assert.Equal(t, 1000, cfg.Trim.Lines)
	assert.Equal(t, 5, cfg.Trim.Trials)
	assert.Equal(t, int64(42), cfg.Trim.Seed)
	assert.Equal(t, "debug", cfg.Logging.Level)

	targets := cfg.Targets()
	require.Len(t, targets, 2)
	assert.Equal(t, corpus.Target{Algo: "bubsort", Lang: "go"}, targets[0])
}

func TestLoadPartialYAMLKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wattrim.yaml")
	require.NoError(t, os.WriteFile(path, []byte("corpus:\n  root: elsewhere\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "elsewhere", cfg.Corpus.Root)
	assert.Equal(t, 500, cfg.Trim.Lines, "unset sections keep their defaults")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("corpus: [unclosed"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("WT_CORPUS_ROOT", "/env/corpus")
	t.Setenv("WT_NGRAM_MAX", "3")
	t.Setenv("WT_LCS_METHOD", "max")
	t.Setenv("WT_TRIM_SEED", "1234")
	t.Setenv("WT_LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/env/corpus", cfg.Corpus.Root)
	assert.Equal(t, 3, cfg.NGrams.Max)
	assert.Equal(t, "max", cfg.LCS.Method)
	assert.Equal(t, int64(1234), cfg.Trim.Seed)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestEnvOverridesBeatFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wattrim.yaml")
	require.NoError(t, os.WriteFile(path, []byte("corpus:\n  root: from_file\n"), 0o644))
	t.Setenv("WT_CORPUS_ROOT", "from_env")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from_env", cfg.Corpus.Root)
}

func TestEnvIgnoresGarbageInts(t *testing.T) {
	t.Setenv("WT_NGRAM_MAX", "six")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.NGrams.Max)
}
