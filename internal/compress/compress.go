// Package compress provides block compression for persisted snapshot
// payloads. Each block is self-describing: an 8-byte header carries the
// uncompressed and compressed sizes, with a compressed size of zero marking
// a stored (uncompressed) block. Incompressible payloads are stored as-is
// so decompression never loses data to a bad ratio.
package compress

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Type defines the compression algorithm used for a payload.
type Type uint8

const (
	// None stores payloads uncompressed.
	None Type = 0
	// LZ4 uses LZ4 block compression (fast, good for hot data).
	LZ4 Type = 1
	// ZSTD uses ZSTD block compression (better ratio, good for cold data).
	ZSTD Type = 2
)

func (t Type) String() string {
	switch t {
	case None:
		return "none"
	case LZ4:
		return "lz4"
	case ZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

// ParseType maps a stable name back to its Type. Persisted headers store the
// name, not the numeric value.
func ParseType(name string) (Type, error) {
	switch name {
	case "none":
		return None, nil
	case "lz4":
		return LZ4, nil
	case "zstd":
		return ZSTD, nil
	default:
		return None, fmt.Errorf("compress: unknown type %q", name)
	}
}

// ZSTD encoder/decoder pools for efficiency
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func putZstdEncoder(enc *zstd.Encoder) {
	zstdEncoderPool.Put(enc)
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

const headerSize = 8

// Compress compresses data using the given algorithm and prepends the block
// header. If compression doesn't help (ratio > 0.9) the payload is stored
// uncompressed behind the same header.
func Compress(data []byte, t Type) ([]byte, error) {
	var compressed []byte
	var err error

	switch t {
	case None:
	case LZ4:
		compressed, err = compressLZ4(data)
	case ZSTD:
		compressed, err = compressZSTD(data)
	default:
		return nil, fmt.Errorf("compress: unknown type %s", t)
	}
	if err != nil {
		return nil, err
	}

	if len(compressed) == 0 || float64(len(compressed)) > float64(len(data))*0.9 {
		result := make([]byte, headerSize+len(data))
		binary.LittleEndian.PutUint32(result[0:], uint32(len(data)))
		binary.LittleEndian.PutUint32(result[4:], 0) // 0 = uncompressed
		copy(result[headerSize:], data)
		return result, nil
	}

	result := make([]byte, headerSize+len(compressed))
	binary.LittleEndian.PutUint32(result[0:], uint32(len(data)))
	binary.LittleEndian.PutUint32(result[4:], uint32(len(compressed)))
	copy(result[headerSize:], compressed)
	return result, nil
}

func compressLZ4(data []byte) ([]byte, error) {
	compressed := make([]byte, lz4.CompressBlockBound(len(data)))
	n, err := lz4.CompressBlock(data, compressed, nil)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil // Incompressible
	}
	return compressed[:n], nil
}

func compressZSTD(data []byte) ([]byte, error) {
	enc := getZstdEncoder()
	defer putZstdEncoder(enc)

	return enc.EncodeAll(data, nil), nil
}

// Decompress reverses Compress. The stored-vs-compressed decision is read
// from the header; t selects the algorithm for compressed blocks.
func Decompress(data []byte, t Type) ([]byte, error) {
	if len(data) < headerSize {
		return nil, errors.New("compress: block too small for header")
	}

	uncompressedSize := binary.LittleEndian.Uint32(data[0:])
	compressedSize := binary.LittleEndian.Uint32(data[4:])

	if compressedSize == 0 {
		if uint32(len(data)) < headerSize+uncompressedSize {
			return nil, errors.New("compress: block data too small")
		}
		return data[headerSize : headerSize+uncompressedSize], nil
	}

	if uint32(len(data)) < headerSize+compressedSize {
		return nil, errors.New("compress: compressed block data too small")
	}

	compressedData := data[headerSize : headerSize+compressedSize]
	result := make([]byte, uncompressedSize)

	switch t {
	case ZSTD:
		dec := getZstdDecoder()
		defer putZstdDecoder(dec)

		decoded, err := dec.DecodeAll(compressedData, result[:0])
		if err != nil {
			return nil, err
		}
		if uint32(len(decoded)) != uncompressedSize {
			return nil, errors.New("compress: decompressed size mismatch")
		}
		return decoded, nil

	default: // LZ4 or fallback
		n, err := lz4.UncompressBlock(compressedData, result)
		if err != nil {
			return nil, err
		}
		if uint32(n) != uncompressedSize {
			return nil, errors.New("compress: decompressed size mismatch")
		}
		return result, nil
	}
}
