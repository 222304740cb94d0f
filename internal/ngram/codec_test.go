package ngram

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grams", "bubsort_bg_2gram.txt")
	table := Build([]string{"local.get", "i32.add", "local.get", "i32.add"}, 2)

	require.NoError(t, WriteFile(path, table))
	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, table, got)
}

func TestWriteOrdersByCountThenKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ordered.txt")
	require.NoError(t, WriteFile(path, Table{
		"i32.add":   2,
		"local.get": 5,
		"drop":      2,
		"end":       1,
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "local.get\t5\ndrop\t2\ni32.add\t2\nend\t1\n", string(data))
}

func TestReadSkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messy.txt")
	content := "i32.add\t3\n" +
		"\n" +
		"no tab here\n" +
		"local.get\tnot-a-number\n" +
		"drop\t1\textra\n" +
		"i32.add\t2\n" +
		"end\t1\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Table{"i32.add": 5, "end": 1}, got)
}

func TestReadMissingFile(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestReadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, got)
}
