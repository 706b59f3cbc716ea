package bitlongvec

// Stats describes the memory footprint of a Vector.
type Stats struct {
	Length   int  // number of values
	BitWidth uint // bits per value

	Words       int    // uint64 storage words
	PackedBytes int    // bytes of packed storage (Words * 8)
	PackedBits  uint64 // bits actually occupied by values (Length * BitWidth)
	WastedBits  uint64 // allocated bits past the last value's slot

	// UnpackedBytes is the storage a plain slice of the narrowest standard
	// unsigned integer type (uint8/uint16/uint32/uint64) would need for the
	// same values.
	UnpackedBytes int
}

// Stats returns the vector's memory footprint, including the packed size
// versus what an unpacked slice of machine integers would cost.
func (v *Vector) Stats() Stats {
	packedBits := uint64(v.length) * uint64(v.bitWidth)

	var unpackedWidth int
	switch {
	case v.bitWidth <= 8:
		unpackedWidth = 1
	case v.bitWidth <= 16:
		unpackedWidth = 2
	case v.bitWidth <= 32:
		unpackedWidth = 4
	default:
		unpackedWidth = 8
	}

	return Stats{
		Length:        v.length,
		BitWidth:      v.bitWidth,
		Words:         len(v.words),
		PackedBytes:   len(v.words) * 8,
		PackedBits:    packedBits,
		WastedBits:    uint64(len(v.words))*wordBits - packedBits,
		UnpackedBytes: v.length * unpackedWidth,
	}
}
