package snapshot

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	bitlongvec "github.com/eihwaz/bit-long-vec"
)

var (
	// ErrInvalidMagic is returned when the stream does not start with a
	// snapshot header.
	ErrInvalidMagic = errors.New("invalid snapshot magic")
	// ErrUnsupportedVersion is returned for format versions newer than this
	// package understands.
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")
	// ErrUnsupportedCompression is returned for unknown compression types.
	ErrUnsupportedCompression = errors.New("unsupported compression type")
	// ErrCorrupted is returned when header and payload disagree.
	ErrCorrupted = errors.New("corrupted snapshot")
)

// formatVersion is bumped on breaking changes to the on-stream layout.
const formatVersion = 1

var magic = [4]byte{'B', 'L', 'V', '1'}

// Header layout (little-endian):
//
//	[0:4]   magic "BLV1"
//	[4]     format version
//	[5]     compression type
//	[6]     bit width
//	[7]     reserved
//	[8:16]  length (number of values)
//	[16:24] payload size in bytes
const headerSize = 24

// Options configures snapshot writing.
type Options struct {
	// Compression selects the payload compression algorithm.
	Compression CompressionType
}

// DefaultOptions are the options used when none are passed to Write.
var DefaultOptions = Options{
	Compression: CompressionNone,
}

// Write serializes v to w.
//
// If the configured compression does not shrink the payload, the snapshot
// is stored uncompressed and its header says so; Read needs no knowledge of
// the writer's options.
func Write(w io.Writer, v *bitlongvec.Vector, optFns ...func(o *Options)) error {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	raw := wordsToBytes(v.Words())

	compression := opts.Compression
	payload, err := compress(raw, compression)
	if err != nil {
		return fmt.Errorf("compress payload: %w", err)
	}
	if payload == nil || len(payload) >= len(raw) {
		compression = CompressionNone
		payload = raw
	}

	var header [headerSize]byte
	copy(header[0:4], magic[:])
	header[4] = formatVersion
	header[5] = byte(compression)
	header[6] = byte(v.BitWidth())
	binary.LittleEndian.PutUint64(header[8:16], uint64(v.Len()))
	binary.LittleEndian.PutUint64(header[16:24], uint64(len(payload)))

	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("write payload: %w", err)
	}
	return nil
}

// Read deserializes a Vector from r.
func Read(r io.Reader) (*bitlongvec.Vector, error) {
	var header [headerSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	if [4]byte(header[0:4]) != magic {
		return nil, ErrInvalidMagic
	}
	if version := header[4]; version != formatVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}

	compression := CompressionType(header[5])
	bitWidth := uint(header[6])
	length64 := binary.LittleEndian.Uint64(header[8:16])
	payloadSize := binary.LittleEndian.Uint64(header[16:24])

	if length64 > uint64(math.MaxInt) {
		return nil, fmt.Errorf("%w: length %d", ErrCorrupted, length64)
	}
	if bitWidth != 0 && length64 > (math.MaxUint64-63)/uint64(bitWidth) {
		// The total bit count would wrap uint64 and undersize the storage.
		return nil, fmt.Errorf("%w: length %d at %d bits per value", ErrCorrupted, length64, bitWidth)
	}
	length := int(length64)

	// Storage size implied by the header. Invalid bit widths surface below
	// via FromWords; guard the arithmetic hazards here only.
	rawBytes := (length64*uint64(bitWidth) + 63) / 64 * 8
	if rawBytes > uint64(math.MaxInt) {
		return nil, fmt.Errorf("%w: payload of %d bytes", ErrCorrupted, rawBytes)
	}
	rawSize := int(rawBytes)

	switch {
	case compression == CompressionNone && payloadSize != uint64(rawSize):
		return nil, fmt.Errorf("%w: payload size %d, want %d", ErrCorrupted, payloadSize, rawSize)
	case compression != CompressionNone && payloadSize >= uint64(rawSize):
		// The writer always falls back to raw storage when compression
		// does not shrink the payload.
		return nil, fmt.Errorf("%w: compressed payload size %d exceeds raw size %d", ErrCorrupted, payloadSize, rawSize)
	}

	payload := make([]byte, payloadSize)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}

	raw := payload
	if compression != CompressionNone {
		var err error
		raw, err = decompress(payload, compression, rawSize)
		if err != nil {
			return nil, fmt.Errorf("decompress payload: %w", err)
		}
	}

	v, err := bitlongvec.FromWords(bytesToWords(raw), length, bitWidth)
	if err != nil {
		return nil, fmt.Errorf("reconstruct vector: %w", err)
	}
	return v, nil
}

func wordsToBytes(words []uint64) []byte {
	buf := make([]byte, len(words)*8)
	for i, word := range words {
		binary.LittleEndian.PutUint64(buf[i*8:], word)
	}
	return buf
}

func bytesToWords(buf []byte) []uint64 {
	words := make([]uint64, len(buf)/8)
	for i := range words {
		words[i] = binary.LittleEndian.Uint64(buf[i*8:])
	}
	return words
}
