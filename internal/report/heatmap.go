package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tamadalab/wasm-wat-trimming/internal/matrix"
)

// Heatmap renders a similarity matrix as a colored grid. Columns are
// numbered and rows carry the label plus its column number, so the full
// axis stays readable without rotated text.
func Heatmap(m *matrix.Matrix) string {
	width := 0
	for _, l := range m.Labels {
		if len(l) > width {
			width = len(l)
		}
	}

	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", width+1))
	for j := range m.Labels {
		sb.WriteString(theme.Dim.Render(fmt.Sprintf("%5d ", j+1)))
	}
	sb.WriteString("\n")
	for i, label := range m.Labels {
		sb.WriteString(theme.Label.Render(fmt.Sprintf("%*s", width, label)))
		sb.WriteString(" ")
		for j := range m.Labels {
			v := m.At(i, j)
			sb.WriteString(cellStyle(v).Render(fmt.Sprintf("%5.2f", v)))
			sb.WriteString(" ")
		}
		sb.WriteString(theme.Dim.Render(fmt.Sprintf("%d", i+1)))
		sb.WriteString("\n")
	}
	return sb.String()
}

// PrintHeatmap prints a titled heatmap grid
func PrintHeatmap(title string, m *matrix.Matrix) {
	fmt.Printf("\n%s\n%s", theme.Title.Render(title), Heatmap(m))
}

// cellStyle maps a similarity in [0, 1] onto a yellow-to-red background
// ramp with a foreground picked for contrast.
func cellStyle(v float64) lipgloss.Style {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	// Linear ramp from light yellow (255, 255, 204) to deep red (189, 0, 38).
	r := int(255 + v*(189-255))
	g := int(255 + v*(0-255))
	b := int(204 + v*(38-204))
	fg := "0"
	if v > 0.55 {
		fg = "15"
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))).
		Foreground(lipgloss.Color(fg))
}
