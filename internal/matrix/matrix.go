// Package matrix builds, serializes, and aggregates labeled similarity
// matrices.
package matrix

// Matrix is a square similarity matrix with one label per axis position.
type Matrix struct {
	Labels []string
	Values [][]float64
}

// New returns a zeroed matrix for the given labels with the diagonal fixed
// at 1.0: every entry is identical to itself by definition, never computed.
func New(labels []string) *Matrix {
	values := make([][]float64, len(labels))
	for i := range values {
		values[i] = make([]float64, len(labels))
		values[i][i] = 1.0
	}
	return &Matrix{Labels: append([]string(nil), labels...), Values: values}
}

// Size returns the axis length.
func (m *Matrix) Size() int { return len(m.Labels) }

// At returns the value at row i, column j.
func (m *Matrix) At(i, j int) float64 { return m.Values[i][j] }

// SetSym assigns v to both (i, j) and (j, i).
func (m *Matrix) SetSym(i, j int, v float64) {
	m.Values[i][j] = v
	m.Values[j][i] = v
}

// UpperTriangle flattens the strict upper triangle row by row. The layout
// is positionally stable across matrices of the same size, which is what
// correlation compares.
func (m *Matrix) UpperTriangle() []float64 {
	n := m.Size()
	out := make([]float64, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, m.Values[i][j])
		}
	}
	return out
}

// SameLabels reports whether both matrices carry identical axis labels in
// identical order.
func SameLabels(a, b *Matrix) bool {
	if a.Size() != b.Size() {
		return false
	}
	for i := range a.Labels {
		if a.Labels[i] != b.Labels[i] {
			return false
		}
	}
	return true
}
