// Package config loads tool configuration from an optional YAML file with
// WT_-prefixed environment overrides on top.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/tamadalab/wasm-wat-trimming/internal/corpus"
	"github.com/tamadalab/wasm-wat-trimming/internal/ngram"
)

// DefaultFile is the config file picked up from the working directory when
// no path is given.
const DefaultFile = "wattrim.yaml"

// Config is the top-level tool configuration.
type Config struct {
	Corpus  CorpusConfig  `yaml:"corpus"`
	NGrams  NGramConfig   `yaml:"ngrams"`
	LCS     LCSConfig     `yaml:"lcs"`
	Trim    TrimConfig    `yaml:"trim"`
	Logging LoggingConfig `yaml:"logging"`
}

// CorpusConfig points at the corpus tree and selects its entries.
type CorpusConfig struct {
	Root    string         `yaml:"root"`
	Targets []TargetConfig `yaml:"targets"`
}

// TargetConfig is one (algorithm, language) corpus entry.
type TargetConfig struct {
	Algo string `yaml:"algo"`
	Lang string `yaml:"lang"`
}

// NGramConfig sets the n-gram averaging window.
type NGramConfig struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// LCSConfig sets LCS normalization and the optional sequence cap.
type LCSConfig struct {
	Method string `yaml:"method"`
	Limit  int    `yaml:"limit"`
}

// TrimConfig sets trimming defaults.
type TrimConfig struct {
	Lines  int   `yaml:"lines"`
	Trials int   `yaml:"trials"`
	Seed   int64 `yaml:"seed"`
}

// LoggingConfig controls diagnostic log level and format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads the YAML file at path (when non-empty) over the defaults and
// applies environment overrides last.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Corpus: CorpusConfig{Root: "output/not_trimmed"},
		NGrams: NGramConfig{Min: 1, Max: 6},
		LCS:    LCSConfig{Method: "min"},
		Trim:   TrimConfig{Lines: 500, Trials: 10},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Targets resolves the configured corpus entries, falling back to the fixed
// study selection when none are listed.
func (c *Config) Targets() []corpus.Target {
	if len(c.Corpus.Targets) == 0 {
		return corpus.DefaultTargets
	}
	targets := make([]corpus.Target, len(c.Corpus.Targets))
	for i, t := range c.Corpus.Targets {
		targets[i] = corpus.Target{Algo: t.Algo, Lang: t.Lang}
	}
	return targets
}

// NRange returns the configured n-gram range.
func (c *Config) NRange() ngram.NRange {
	return ngram.NRange{Min: c.NGrams.Min, Max: c.NGrams.Max}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("WT_CORPUS_ROOT"); v != "" {
		cfg.Corpus.Root = v
	}
	if v, ok := envInt("WT_NGRAM_MIN"); ok {
		cfg.NGrams.Min = v
	}
	if v, ok := envInt("WT_NGRAM_MAX"); ok {
		cfg.NGrams.Max = v
	}
	if v := os.Getenv("WT_LCS_METHOD"); v != "" {
		cfg.LCS.Method = v
	}
	if v, ok := envInt("WT_LCS_LIMIT"); ok {
		cfg.LCS.Limit = v
	}
	if v, ok := envInt("WT_TRIM_LINES"); ok {
		cfg.Trim.Lines = v
	}
	if v, ok := envInt("WT_TRIM_TRIALS"); ok {
		cfg.Trim.Trials = v
	}
	if v := os.Getenv("WT_TRIM_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Trim.Seed = seed
		}
	}
	if v := os.Getenv("WT_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("WT_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}

func envInt(name string) (int, bool) {
	v := os.Getenv(name)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}
