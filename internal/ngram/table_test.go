package ngram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCountsSlidingWindows(t *testing.T) {
	tokens := []string{"local.get", "i32.add", "local.get", "i32.add", "local.get"}

	unigrams := Build(tokens, 1)
	assert.Equal(t, Table{"local.get": 3, "i32.add": 2}, unigrams)

	bigrams := Build(tokens, 2)
	assert.Equal(t, Table{
		"local.get i32.add": 2,
		"i32.add local.get": 2,
	}, bigrams)

	fivegrams := Build(tokens, 5)
	assert.Equal(t, Table{"local.get i32.add local.get i32.add local.get": 1}, fivegrams)
}

func TestBuildShortSequence(t *testing.T) {
	assert.Empty(t, Build([]string{"i32.add"}, 2))
	assert.Empty(t, Build(nil, 1))
	assert.Empty(t, Build([]string{"i32.add"}, 0))
}

func TestTotal(t *testing.T) {
	tokens := []string{"a", "b", "a", "b", "a"}
	assert.Equal(t, 5, Build(tokens, 1).Total())
	assert.Equal(t, 4, Build(tokens, 2).Total())
	assert.Equal(t, 0, Table{}.Total())
}

func TestNRangeLen(t *testing.T) {
	assert.Equal(t, 6, DefaultNRange.Len())
	assert.Equal(t, 1, NRange{Min: 3, Max: 3}.Len())
}

func TestNRangeValidate(t *testing.T) {
	require.NoError(t, DefaultNRange.Validate())
	require.NoError(t, NRange{Min: 2, Max: 2}.Validate())
	assert.Error(t, NRange{Min: 0, Max: 6}.Validate())
	assert.Error(t, NRange{Min: 4, Max: 2}.Validate())
}
