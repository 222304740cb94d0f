// Package report renders study output for the terminal: styled progress
// and summary lines, matrix heatmaps, and a markdown report.
package report

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/tamadalab/wasm-wat-trimming/internal/stats"
	"github.com/tamadalab/wasm-wat-trimming/internal/trim"
)

// Theme defines the color scheme for console output
type Theme struct {
	Title   lipgloss.Style
	Score   lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Summary lipgloss.Style
	Warn    lipgloss.Style
	Dim     lipgloss.Style
}

// DefaultTheme is the default color scheme
var DefaultTheme = Theme{
	Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
	Score:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
	Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	Value:   lipgloss.NewStyle().Foreground(lipgloss.Color("221")),
	Summary: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82")),
	Warn:    lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// Current theme (can be changed at runtime)
var theme = DefaultTheme

// PrintGramsFile prints one extracted target
func PrintGramsFile(label string, tokens, tables int) {
	fmt.Printf("  %s %s %s\n",
		theme.Label.Render(label),
		theme.Value.Render(fmt.Sprintf("%d instructions", tokens)),
		theme.Dim.Render(fmt.Sprintf("(%d gram files)", tables)))
}

// PrintGramsSkipped prints a target whose dump could not be read
func PrintGramsSkipped(label string, err error) {
	fmt.Printf("  %s %s\n",
		theme.Label.Render(label),
		theme.Warn.Render(fmt.Sprintf("skipped: %v", err)))
}

// PrintGramsSummary prints extraction totals
func PrintGramsSummary(files, tables, missing int) {
	fmt.Printf("\nExtracted %s gram files from %s dumps",
		theme.Summary.Render(fmt.Sprintf("%d", tables)),
		theme.Summary.Render(fmt.Sprintf("%d", files)))
	if missing > 0 {
		fmt.Printf(" %s", theme.Warn.Render(fmt.Sprintf("(%d dumps missing)", missing)))
	}
	fmt.Printf("\n")
}

// PrintBuildStart prints the matrix build banner
func PrintBuildStart(metricName string, pairs int, root string) {
	fmt.Printf("Scoring %s pairs with %s over %s\n",
		theme.Summary.Render(fmt.Sprintf("%d", pairs)),
		theme.Score.Render(metricName),
		theme.Label.Render(root))
}

// PrintBuildComplete prints matrix build completion
func PrintBuildComplete(metricName string, pairs int, elapsed time.Duration, outPath string) {
	fmt.Printf("Scored %d %s pairs in %s\n",
		pairs, metricName, theme.Summary.Render(elapsed.Round(time.Millisecond).String()))
	PrintSaved(outPath)
}

// PrintSaved prints an output file notice
func PrintSaved(path string) {
	fmt.Printf("Saved %s\n", theme.Label.Render(path))
}

// PrintWarning prints a styled warning line
func PrintWarning(msg string) {
	fmt.Printf("%s\n", theme.Warn.Render(msg))
}

// PrintTrimStart prints the trim run banner
func PrintTrimStart(method string, lines int, root, out string) {
	fmt.Printf("Trimming %s to %s lines: %s -> %s\n",
		theme.Score.Render(method),
		theme.Value.Render(fmt.Sprintf("%d", lines)),
		theme.Label.Render(root),
		theme.Label.Render(out))
}

// PrintTrimFile prints one trimmed file
func PrintTrimFile(rec trim.Record) {
	fmt.Printf("  %s %s\n",
		theme.Label.Render(fmt.Sprintf("%s/%s/%s", rec.Algo, rec.Lang, rec.RelPath)),
		theme.Dim.Render(fmt.Sprintf("%d -> %d lines (start %d)", rec.Total, rec.Kept, rec.Start)))
}

// PrintTrimSummary prints trim run totals with the average reduction
func PrintTrimSummary(records []trim.Record) {
	if len(records) == 0 {
		return
	}
	var before, after float64
	for _, rec := range records {
		before += float64(rec.Total)
		after += float64(rec.Kept)
	}
	n := float64(len(records))
	reduction := 0.0
	if before > 0 {
		reduction = 1 - after/before
	}
	fmt.Printf("\nTrimmed %s files: avg %.1f -> %.1f lines (%s reduction)\n",
		theme.Summary.Render(fmt.Sprintf("%d", len(records))),
		before/n, after/n,
		theme.Summary.Render(fmt.Sprintf("%.1f%%", reduction*100)))
}

// PrintAveraged prints one averaged matrix result
func PrintAveraged(metricName string, trials int, outPath string) {
	fmt.Printf("Averaged %s over %d trials -> %s\n",
		theme.Score.Render(metricName), trials, theme.Label.Render(outPath))
}

// PrintCorrelationTable prints the before/after correlation per metric
func PrintCorrelationTable(rows []stats.Correlation) {
	fmt.Printf("\n%s\n", theme.Title.Render("Similarity preservation (Pearson r, upper triangle)"))
	for _, c := range rows {
		r := "n/a"
		if !math.IsNaN(c.R) {
			r = fmt.Sprintf("%+.4f", c.R)
		}
		fmt.Printf("  %s %s %s\n",
			theme.Label.Render(fmt.Sprintf("%-9s", c.Metric)),
			theme.Score.Render(fmt.Sprintf("%8s", r)),
			theme.Dim.Render(fmt.Sprintf("%d points, %s", c.Points, c.Status)))
	}
}

// PrintCorrelationSummary prints the aggregate over defined correlations
func PrintCorrelationSummary(s stats.CorrelationSummary) {
	if s.Valid == 0 {
		fmt.Printf("\n%s\n", theme.Warn.Render("No defined correlations"))
		return
	}
	fmt.Printf("\n%d of %d metrics defined: mean r %s (min %.4f, max %.4f)\n",
		s.Valid, s.Total,
		theme.Summary.Render(fmt.Sprintf("%.4f", s.Mean)),
		s.Min, s.Max)
}

// PrintInventoryTable prints dump sizes, largest first
func PrintInventoryTable(invs []stats.Inventory, ls stats.LineStats) {
	fmt.Printf("%s\n", theme.Title.Render("Corpus dump sizes"))

	sorted := append([]stats.Inventory(nil), invs...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Lines > sorted[j].Lines })
	for i, inv := range sorted {
		if !inv.Found {
			fmt.Printf("  %s %s\n",
				theme.Label.Render(fmt.Sprintf("%-14s", inv.Target.Label())),
				theme.Warn.Render("missing"))
			continue
		}
		fmt.Printf("  %s %s %s %s\n",
			theme.Dim.Render(fmt.Sprintf("%2d.", i+1)),
			theme.Label.Render(fmt.Sprintf("%-14s", inv.Target.Label())),
			theme.Value.Render(fmt.Sprintf("%8d lines", inv.Lines)),
			theme.Dim.Render(fmt.Sprintf("%10.2f KB", inv.KB())))
	}
	if ls.Count > 0 {
		fmt.Printf("\n%d dumps: %.0f..%.0f lines, mean %.1f, median %.1f (Q1 %.1f, Q3 %.1f)\n",
			ls.Count, ls.Min, ls.Max, ls.Mean, ls.Median, ls.Q1, ls.Q3)
	}
}

// PrintCompressionTable prints before/after sizes per target
func PrintCompressionTable(rows []stats.Compression) {
	if len(rows) == 0 {
		fmt.Printf("%s\n", theme.Warn.Render("No compression rows (no overlapping dumps found)"))
		return
	}
	fmt.Printf("\n%s\n", theme.Title.Render("Compression after trimming"))
	for _, c := range rows {
		fmt.Printf("  %s %s %s\n",
			theme.Label.Render(fmt.Sprintf("%-14s", c.Target.Label())),
			theme.Value.Render(fmt.Sprintf("%7d -> %9.1f lines", c.LinesBefore, c.LinesAfter)),
			theme.Summary.Render(fmt.Sprintf("-%.1f%%", c.LineReduction()*100)))
	}
}

// PrintSpeedupTable prints timing ratios per metric
func PrintSpeedupTable(rows []stats.Speedup) {
	fmt.Printf("\n%s\n", theme.Title.Render("Matrix build speedup"))
	for _, s := range rows {
		fmt.Printf("  %s %s %s\n",
			theme.Label.Render(fmt.Sprintf("%-9s", s.Method)),
			theme.Value.Render(fmt.Sprintf("%9.3fs -> %9.3fs", s.BaselineSec, s.TrimmedSec)),
			theme.Score.Render(fmt.Sprintf("%.2fx", s.Factor)))
	}
}
