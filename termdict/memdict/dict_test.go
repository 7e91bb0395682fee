package memdict

import (
	"context"
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDictAdd(t *testing.T) {
	d := New()
	d.Add("hash", "b11", 1)
	d.Add("hash", "a00", 1)
	d.Add("hash", "a00", 2)
	d.Add("hash", "a00", 2) // duplicate pair
	d.Add("other", "a99", 7)

	assert.Equal(t, []string{"hash", "other"}, d.Fields())
	assert.Equal(t, []string{"a00", "b11"}, d.Terms("hash"))
	assert.Nil(t, d.Terms("missing"))

	bm, err := d.Postings(context.Background(), "hash", "a00")
	require.NoError(t, err)
	assert.Equal(t, []uint32{1, 2}, bm.ToArray())
}

func TestDictPostingsMissing(t *testing.T) {
	d := New()
	d.Add("hash", "a00", 1)

	bm, err := d.Postings(context.Background(), "hash", "zzz")
	require.NoError(t, err)
	assert.Nil(t, bm)

	bm, err = d.Postings(context.Background(), "missing", "a00")
	require.NoError(t, err)
	assert.Nil(t, bm)
}

func TestDictPostingsIsolated(t *testing.T) {
	d := New()
	d.Add("hash", "a00", 1)

	bm, err := d.Postings(context.Background(), "hash", "a00")
	require.NoError(t, err)
	bm.Add(99)

	again, err := d.Postings(context.Background(), "hash", "a00")
	require.NoError(t, err)
	assert.Equal(t, []uint32{1}, again.ToArray())
}

func TestDictAscendRange(t *testing.T) {
	d := New()
	for i, term := range []string{"a00", "a01", "a02", "b10", "b11"} {
		d.Add("hash", term, uint32(i))
	}

	collect := func(low, high string, includeLow, includeHigh bool) []string {
		var terms []string
		err := d.AscendRange(context.Background(), "hash", low, high, includeLow, includeHigh,
			func(term string, postings *roaring.Bitmap) error {
				require.NotNil(t, postings)
				terms = append(terms, term)
				return nil
			})
		require.NoError(t, err)
		return terms
	}

	assert.Equal(t, []string{"a01", "a02"}, collect("a01", "b10", true, false))
	assert.Equal(t, []string{"a02", "b10"}, collect("a01", "b10", false, true))
	assert.Equal(t, []string{"b10", "b11"}, collect("b", "", true, false))
	assert.Equal(t, []string{"a00", "a01", "a02", "b10", "b11"}, collect("", "", true, false))
	assert.Empty(t, collect("c", "", true, false))
	assert.Empty(t, collect("a01", "a01", false, false))
}

func TestDictAscendRangeStops(t *testing.T) {
	d := New()
	d.Add("hash", "a00", 1)
	d.Add("hash", "a01", 2)

	sentinel := assert.AnError
	var seen int
	err := d.AscendRange(context.Background(), "hash", "", "", true, false,
		func(string, *roaring.Bitmap) error {
			seen++
			return sentinel
		})
	require.ErrorIs(t, err, sentinel)
	assert.Equal(t, 1, seen)
}

func TestDictAscendRangeCancelled(t *testing.T) {
	d := New()
	d.Add("hash", "a00", 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := d.AscendRange(ctx, "hash", "", "", true, false,
		func(string, *roaring.Bitmap) error { return nil })
	require.ErrorIs(t, err, context.Canceled)
}
