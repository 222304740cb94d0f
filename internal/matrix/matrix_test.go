package matrix

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFixesDiagonal(t *testing.T) {
	m := New([]string{"bubsort_go", "collatz_go", "collatz_js"})
	require.Equal(t, 3, m.Size())
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i == j {
				assert.Equal(t, 1.0, m.At(i, j))
			} else {
				assert.Zero(t, m.At(i, j))
			}
		}
	}
}

func TestSetSymMirrors(t *testing.T) {
	m := New([]string{"a", "b", "c"})
	m.SetSym(0, 2, 0.75)
	assert.Equal(t, 0.75, m.At(0, 2))
	assert.Equal(t, 0.75, m.At(2, 0))
}

func TestUpperTriangleLayout(t *testing.T) {
	m := New([]string{"a", "b", "c"})
	m.SetSym(0, 1, 0.1)
	m.SetSym(0, 2, 0.2)
	m.SetSym(1, 2, 0.3)
	assert.Equal(t, []float64{0.1, 0.2, 0.3}, m.UpperTriangle())
}

func TestAverage(t *testing.T) {
	a := New([]string{"x", "y"})
	a.SetSym(0, 1, 0.2)
	b := New([]string{"x", "y"})
	b.SetSym(0, 1, 0.6)

	avg, err := Average([]*Matrix{a, b})
	require.NoError(t, err)
	assert.InDelta(t, 0.4, avg.At(0, 1), 1e-12)
	assert.Equal(t, 1.0, avg.At(0, 0))
}

func TestAverageRejectsLabelMismatch(t *testing.T) {
	a := New([]string{"x", "y"})
	b := New([]string{"x", "z"})
	_, err := Average([]*Matrix{a, b})
	require.Error(t, err)

	_, err = Average(nil)
	require.Error(t, err)
}

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matrices", "cosine_similarity_matrix.csv")
	m := New([]string{"bubsort_go", "collatz_go", "collatz_js"})
	m.SetSym(0, 1, 0.123456789012345)
	m.SetSym(0, 2, 0.5)
	m.SetSym(1, 2, 1.0/3.0)

	require.NoError(t, WriteCSV(path, m))
	got, err := ReadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, m.Labels, got.Labels)
	assert.Equal(t, m.Values, got.Values)
}

func TestReadRejectsRowLabelMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	content := ",a,b\na,1.0,0.5\nwrong,0.5,1.0\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := ReadCSV(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row label")
}

func TestReadRejectsRaggedRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ragged.csv")
	content := ",a,b\na,1.0,0.5\nb,0.5\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := ReadCSV(path)
	require.Error(t, err)
}

func TestReadRejectsNonNumericCell(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nan.csv")
	content := ",a,b\na,1.0,oops\nb,0.5,1.0\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := ReadCSV(path)
	require.Error(t, err)
}

func TestFileNames(t *testing.T) {
	assert.Equal(t, "cosine_similarity_matrix.csv", FileName("cosine", "min", 0))
	assert.Equal(t, "manhattan_similarity_matrix.csv", FileName("manhattan", "", 2000))
	assert.Equal(t, "lcs_instruction_similarity_matrix_min.csv", FileName("lcs", "min", 0))
	assert.Equal(t, "lcs_instruction_similarity_matrix_avg_limit2000.csv", FileName("lcs", "avg", 2000))
	assert.Equal(t, "cosine_similarity_matrix_avg.csv", AvgFileName("cosine", "min"))
	assert.Equal(t, "lcs_instruction_similarity_matrix_min_avg.csv", AvgFileName("lcs", "min"))
}
