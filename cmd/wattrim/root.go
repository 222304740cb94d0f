package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tamadalab/wasm-wat-trimming/internal/config"
	"github.com/tamadalab/wasm-wat-trimming/internal/logging"
)

var (
	cfgFile   string
	logLevel  string
	logFormat string

	// cfg is loaded before any subcommand runs.
	cfg *config.Config
)

// rootCmd is the wattrim entry point; subcommands do the actual work.
var rootCmd = &cobra.Command{
	Use:   "wattrim",
	Short: "Measure how trimming WebAssembly text dumps affects their similarity",
	Long: `wattrim studies how much of a WebAssembly text (WAT) dump can be cut
away while its similarity structure survives.

It extracts instruction n-grams from each corpus dump, scores every pair of
entries with six similarity metrics (cosine, jaccard, overlap, manhattan,
kl, lcs), trims dumps down to a fixed line count from the head, middle,
tail, or a random window, and reports how faithfully the trimmed matrices
preserve the full ones.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			if _, err := os.Stat(config.DefaultFile); err == nil {
				path = config.DefaultFile
			}
		}
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return err
		}
		if logLevel != "" {
			cfg.Logging.Level = logLevel
		}
		if logFormat != "" {
			cfg.Logging.Format = logFormat
		}
		logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default "+config.DefaultFile+" if present)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text or json")
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// flagOrConfigString prefers a non-empty flag value over the config value.
func flagOrConfigString(cmd *cobra.Command, name, fallback string) string {
	if v, _ := cmd.Flags().GetString(name); v != "" {
		return v
	}
	return fallback
}

// flagOrConfigInt prefers a positive flag value over the config value.
func flagOrConfigInt(cmd *cobra.Command, name string, fallback int) int {
	if v, _ := cmd.Flags().GetInt(name); v > 0 {
		return v
	}
	return fallback
}

// csvSet parses a comma-separated list into a membership set; empty input
// yields an empty set, which filters nothing.
func csvSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			set[part] = true
		}
	}
	return set
}
