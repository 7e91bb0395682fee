package hashsplit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/hashsplit/filter"
)

func TestExactFilter(t *testing.T) {
	sp, err := New(WithChunkLength(4), WithPrefixes("abcd"), WithFixedSize(12))
	require.NoError(t, err)

	assert.Equal(t, filter.NewAnd(
		filter.NewTerm("h", "a0000"),
		filter.NewTerm("h", "b1111"),
		filter.NewTerm("h", "c2222"),
	), sp.ExactFilter("h", "000011112222"))

	assert.Equal(t, filter.None{}, sp.ExactFilter("h", ""))
}

func TestPrefixFilter(t *testing.T) {
	t.Run("variable size", func(t *testing.T) {
		sp, err := New(WithChunkLength(4), WithPrefixes("abcd"))
		require.NoError(t, err)

		assert.Equal(t, filter.NewAnd(
			filter.NewTerm("h", "a0000"),
			filter.NewPrefix("h", "b11", 3, 5),
		), sp.PrefixFilter("h", "000011"))
	})

	t.Run("fixed size pins full chunk", func(t *testing.T) {
		sp, err := New(WithChunkLength(4), WithPrefixes("abcd"), WithFixedSize(12))
		require.NoError(t, err)

		assert.Equal(t, filter.NewAnd(
			filter.NewTerm("h", "a0000"),
			filter.NewPrefix("h", "b11", 5, 5),
		), sp.PrefixFilter("h", "000011"))
	})

	t.Run("fixed size pins short final chunk", func(t *testing.T) {
		sp, err := New(WithChunkLength(4), WithPrefixes("ab"), WithFixedSize(6))
		require.NoError(t, err)

		assert.Equal(t, filter.NewAnd(
			filter.NewTerm("h", "a0000"),
			filter.NewPrefix("h", "b1", 3, 3),
		), sp.PrefixFilter("h", "00001"))
	})

	t.Run("chunk aligned value has no prefix leaf", func(t *testing.T) {
		sp, err := New(WithChunkLength(4), WithPrefixes("abcd"))
		require.NoError(t, err)

		assert.Equal(t, filter.NewAnd(
			filter.NewTerm("h", "a0000"),
			filter.NewTerm("h", "b1111"),
		), sp.PrefixFilter("h", "00001111"))
	})

	t.Run("empty value", func(t *testing.T) {
		sp, err := New(WithChunkLength(4), WithPrefixes("abcd"))
		require.NoError(t, err)

		assert.Equal(t, filter.None{}, sp.PrefixFilter("h", ""))
	})
}

func TestWildcardFilter(t *testing.T) {
	sp, err := New(WithChunkLength(4), WithPrefixes("abcd"), WithFixedSize(12))
	require.NoError(t, err)

	t.Run("mixed tokens", func(t *testing.T) {
		assert.Equal(t, filter.NewAnd(
			filter.NewTerm("h", "a0000"),
			filter.NewPattern("h", "b1??1", '?'),
			filter.NewTerm("h", "c2222"),
		), sp.WildcardFilter("h", "00001??12222"))
	})

	t.Run("anchored suffix", func(t *testing.T) {
		assert.Equal(t, filter.NewAnd(
			filter.NewPattern("h", "a0???", '?'),
			filter.NewPattern("h", "b???1", '?'),
			filter.NewTerm("h", "c2222"),
		), sp.WildcardFilter("h", "0*12222"))
	})

	t.Run("unconstrained pattern", func(t *testing.T) {
		assert.Equal(t, filter.None{}, sp.WildcardFilter("h", "????????????"))
	})
}
