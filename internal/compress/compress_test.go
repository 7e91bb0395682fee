package compress

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	compressible := bytes.Repeat([]byte("0123456789abcdef"), 1024)

	incompressible := make([]byte, 4096)
	_, err := rand.Read(incompressible)
	require.NoError(t, err)

	for _, typ := range []Type{None, LZ4, ZSTD} {
		t.Run(typ.String(), func(t *testing.T) {
			for _, data := range [][]byte{compressible, incompressible, []byte("x"), {}} {
				block, err := Compress(data, typ)
				require.NoError(t, err)

				got, err := Decompress(block, typ)
				require.NoError(t, err)
				assert.Equal(t, data, got)
			}
		})
	}
}

func TestCompressionHelps(t *testing.T) {
	data := bytes.Repeat([]byte("aaaa"), 4096)

	for _, typ := range []Type{LZ4, ZSTD} {
		block, err := Compress(data, typ)
		require.NoError(t, err)
		assert.Less(t, len(block), len(data), typ.String())
	}
}

func TestDecompressCorrupt(t *testing.T) {
	_, err := Decompress([]byte{1, 2, 3}, LZ4)
	require.ErrorContains(t, err, "too small")

	// Header promises more data than the block holds.
	_, err = Decompress([]byte{0xFF, 0, 0, 0, 0, 0, 0, 0}, LZ4)
	require.Error(t, err)
}

func TestParseType(t *testing.T) {
	for _, typ := range []Type{None, LZ4, ZSTD} {
		got, err := ParseType(typ.String())
		require.NoError(t, err)
		assert.Equal(t, typ, got)
	}

	_, err := ParseType("snappy")
	require.Error(t, err)
}

func TestCompressUnknownType(t *testing.T) {
	_, err := Compress([]byte("x"), Type(42))
	require.Error(t, err)
}
