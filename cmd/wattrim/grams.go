package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tamadalab/wasm-wat-trimming/internal/corpus"
	"github.com/tamadalab/wasm-wat-trimming/internal/ngram"
	"github.com/tamadalab/wasm-wat-trimming/internal/report"
	"github.com/tamadalab/wasm-wat-trimming/internal/wat"
)

// gramsCmd extracts n-gram tables for every corpus entry
var gramsCmd = &cobra.Command{
	Use:   "grams",
	Short: "Extract instruction n-gram tables from corpus WAT dumps",
	Long: `Tokenize every target's WAT dump and write one frequency table per
n-gram size next to it, as <algo>/<lang>/grams/<algo>_bg_<n>gram.txt.

Only instruction opcodes enter the token stream; numeric immediates,
identifiers, and declaration keywords are discarded. Targets whose dump is
missing are skipped with a warning.`,
	RunE: runGrams,
}

func init() {
	gramsCmd.Flags().String("root", "", "corpus root (default from config)")
	gramsCmd.Flags().Int("min", 0, "smallest n-gram size (default from config)")
	gramsCmd.Flags().Int("max", 0, "largest n-gram size (default from config)")
	rootCmd.AddCommand(gramsCmd)
}

func runGrams(cmd *cobra.Command, args []string) error {
	root := flagOrConfigString(cmd, "root", cfg.Corpus.Root)
	nr := cfg.NRange()
	nr.Min = flagOrConfigInt(cmd, "min", nr.Min)
	nr.Max = flagOrConfigInt(cmd, "max", nr.Max)
	if err := nr.Validate(); err != nil {
		return err
	}

	files, tables, missing := 0, 0, 0
	for _, t := range cfg.Targets() {
		tokens, err := wat.Instructions(corpus.WATPath(root, t), 0)
		if err != nil {
			report.PrintGramsSkipped(t.Label(), err)
			missing++
			continue
		}
		for n := nr.Min; n <= nr.Max; n++ {
			path := corpus.GramPath(root, t, n)
			if err := ngram.WriteFile(path, ngram.Build(tokens, n)); err != nil {
				return fmt.Errorf("target %s: %w", t.Label(), err)
			}
			tables++
		}
		files++
		report.PrintGramsFile(t.Label(), len(tokens), nr.Len())
	}
	if files == 0 {
		return fmt.Errorf("no readable WAT dumps under %s", root)
	}
	report.PrintGramsSummary(files, tables, missing)
	return nil
}
