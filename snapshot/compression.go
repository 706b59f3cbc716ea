package snapshot

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// CompressionType identifies the payload compression algorithm.
type CompressionType uint8

const (
	// CompressionNone stores the word array uncompressed.
	CompressionNone CompressionType = 0
	// CompressionLZ4 uses LZ4 block compression (fast).
	CompressionLZ4 CompressionType = 1
	// CompressionZSTD uses ZSTD compression (better ratio).
	CompressionZSTD CompressionType = 2
)

// ZSTD encoder/decoder pools; both are expensive to construct.
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

// compress returns the compressed payload, or nil if the data is
// incompressible and should be stored raw.
func compress(data []byte, compressionType CompressionType) ([]byte, error) {
	switch compressionType {
	case CompressionNone:
		return data, nil

	case CompressionLZ4:
		compressed := make([]byte, lz4.CompressBlockBound(len(data)))
		n, err := lz4.CompressBlock(data, compressed, nil)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, nil // incompressible
		}
		return compressed[:n], nil

	case CompressionZSTD:
		enc := getZstdEncoder()
		defer putZstdEncoder(enc)
		return enc.EncodeAll(data, nil), nil

	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedCompression, compressionType)
	}
}

// decompress expands payload into a buffer of exactly rawSize bytes.
func decompress(payload []byte, compressionType CompressionType, rawSize int) ([]byte, error) {
	switch compressionType {
	case CompressionLZ4:
		raw := make([]byte, rawSize)
		n, err := lz4.UncompressBlock(payload, raw)
		if err != nil {
			return nil, err
		}
		if n != rawSize {
			return nil, fmt.Errorf("%w: decompressed %d bytes, want %d", ErrCorrupted, n, rawSize)
		}
		return raw, nil

	case CompressionZSTD:
		dec := getZstdDecoder()
		defer putZstdDecoder(dec)
		raw, err := dec.DecodeAll(payload, make([]byte, 0, rawSize))
		if err != nil {
			return nil, err
		}
		if len(raw) != rawSize {
			return nil, fmt.Errorf("%w: decompressed %d bytes, want %d", ErrCorrupted, len(raw), rawSize)
		}
		return raw, nil

	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedCompression, compressionType)
	}
}
