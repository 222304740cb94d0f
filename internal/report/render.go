package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/tamadalab/wasm-wat-trimming/internal/matrix"
	"github.com/tamadalab/wasm-wat-trimming/internal/metric"
	"github.com/tamadalab/wasm-wat-trimming/internal/stats"
)

// MarkdownReport assembles one markdown document from the available
// matrices, in metric report order, plus an optional correlation section.
func MarkdownReport(title string, matrices map[string]*matrix.Matrix, correlations []stats.Correlation) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", title)

	for _, name := range metric.Names() {
		m, ok := matrices[name]
		if !ok {
			continue
		}
		fmt.Fprintf(&sb, "## %s\n\n", name)
		sb.WriteString(matrixTable(m))
		sb.WriteString("\n")
	}

	if len(correlations) > 0 {
		sb.WriteString("## similarity preservation\n\n")
		sb.WriteString("| metric | pearson r | points | status |\n")
		sb.WriteString("|---|---|---|---|\n")
		for _, c := range correlations {
			r := "n/a"
			if !math.IsNaN(c.R) {
				r = fmt.Sprintf("%.4f", c.R)
			}
			fmt.Fprintf(&sb, "| %s | %s | %d | %s |\n", c.Metric, r, c.Points, c.Status)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// matrixTable renders a matrix as a markdown table with row labels.
func matrixTable(m *matrix.Matrix) string {
	var sb strings.Builder
	sb.WriteString("| |")
	for _, l := range m.Labels {
		fmt.Fprintf(&sb, " %s |", l)
	}
	sb.WriteString("\n|---|")
	for range m.Labels {
		sb.WriteString("---|")
	}
	sb.WriteString("\n")
	for i, l := range m.Labels {
		fmt.Fprintf(&sb, "| %s |", l)
		for j := range m.Labels {
			fmt.Fprintf(&sb, " %.4f |", m.At(i, j))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Render displays markdown in the terminal with glamour styling; when no
// renderer is available the raw markdown prints unchanged.
func Render(markdown string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		fmt.Print(markdown)
		return
	}
	out, err := r.Render(markdown)
	if err != nil {
		fmt.Print(markdown)
		return
	}
	fmt.Print(out)
}
