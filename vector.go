package bitlongvec

import (
	"fmt"
	"math"
)

// wordBits is the width of a storage word. The bit-order convention is
// fixed: bit 0 is the least-significant bit of word 0, and value i occupies
// absolute bits [i*B, i*B+B).
const wordBits = 64

// wordsFor returns the number of uint64 words needed to hold length values
// of bitWidth bits each: ceil(length * bitWidth / 64).
func wordsFor(length int, bitWidth uint) int {
	return int((uint64(length)*uint64(bitWidth) + wordBits - 1) / wordBits)
}

// fieldMask returns the mask with the low bitWidth bits set.
func fieldMask(bitWidth uint) uint64 {
	if bitWidth == wordBits {
		return ^uint64(0)
	}
	return (uint64(1) << bitWidth) - 1
}

// checkDimensions validates a (length, bitWidth) pair. Beyond range checks,
// it guards the ceil(length*bitWidth/64) arithmetic itself: the total bit
// count must not wrap uint64 and the word count must fit in int, otherwise
// wordsFor would size the storage short of invariant storage.len() ==
// ceil(length*bitWidth/64) and later accesses would run off the array.
func checkDimensions(length int, bitWidth uint) error {
	if bitWidth == 0 || bitWidth > wordBits {
		return &ErrInvalidBitWidth{BitWidth: bitWidth}
	}
	if length < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}
	if uint64(length) > (math.MaxUint64-(wordBits-1))/uint64(bitWidth) ||
		(uint64(length)*uint64(bitWidth)+wordBits-1)/wordBits > uint64(math.MaxInt) {
		return fmt.Errorf("%w: %d values of %d bits exceed addressable storage", ErrInvalidLength, length, bitWidth)
	}
	return nil
}

// Vector is a fixed-capacity sequence of unsigned integer values, each
// exactly BitWidth bits wide, packed contiguously into uint64 words.
//
// Length and bit width are fixed at construction. The zero value is not
// usable; construct via New, FromWords or FromValues.
type Vector struct {
	words    []uint64
	length   int
	bitWidth uint
	maxValue uint64
}

// New creates a Vector holding length values of bitWidth bits each, all
// initialized to zero.
//
// bitWidth must be in [1, 64]; a value can be at most one storage word
// wide. length must be non-negative.
func New(length int, bitWidth uint) (*Vector, error) {
	if err := checkDimensions(length, bitWidth); err != nil {
		return nil, err
	}

	return &Vector{
		words:    make([]uint64, wordsFor(length, bitWidth)),
		length:   length,
		bitWidth: bitWidth,
		maxValue: fieldMask(bitWidth),
	}, nil
}

// FromWords creates a Vector that adopts an existing word array, laid out
// in this package's packing convention. The array length must be exactly
// ceil(length * bitWidth / 64).
//
// The Vector takes ownership of words; the caller must not retain it.
func FromWords(words []uint64, length int, bitWidth uint) (*Vector, error) {
	if err := checkDimensions(length, bitWidth); err != nil {
		return nil, err
	}
	if expected := wordsFor(length, bitWidth); len(words) != expected {
		return nil, &ErrWordCountMismatch{Expected: expected, Actual: len(words)}
	}

	return &Vector{
		words:    words,
		length:   length,
		bitWidth: bitWidth,
		maxValue: fieldMask(bitWidth),
	}, nil
}

// FromValues creates a Vector of bitWidth-bit values packed from the given
// slice. It fails with *ErrValueOverflow if any value does not fit.
func FromValues(values []uint64, bitWidth uint) (*Vector, error) {
	v, err := New(len(values), bitWidth)
	if err != nil {
		return nil, err
	}
	for i, value := range values {
		if value > v.maxValue {
			return nil, &ErrValueOverflow{Value: value, Max: v.maxValue, BitWidth: bitWidth}
		}
		v.uncheckedSet(i, value)
	}
	return v, nil
}

// Len returns the number of values the vector holds.
func (v *Vector) Len() int { return v.length }

// BitWidth returns the fixed per-value bit width.
func (v *Vector) BitWidth() uint { return v.bitWidth }

// MaxValue returns the largest value representable in BitWidth bits.
func (v *Vector) MaxValue() uint64 { return v.maxValue }

// WordCount returns the number of uint64 storage words.
func (v *Vector) WordCount() int { return len(v.words) }

// Words returns a copy of the backing word array. The internal storage is
// never aliased out.
func (v *Vector) Words() []uint64 {
	words := make([]uint64, len(v.words))
	copy(words, v.words)
	return words
}

// slot maps a logical index to its starting word and the bit offset within
// that word.
func (v *Vector) slot(index int) (word int, offset uint) {
	bit := uint64(index) * uint64(v.bitWidth)
	return int(bit / wordBits), uint(bit % wordBits)
}

// Get returns the value at index.
func (v *Vector) Get(index int) (uint64, error) {
	if index < 0 || index >= v.length {
		return 0, &ErrIndexOutOfBounds{Index: index, Length: v.length}
	}
	return v.uncheckedGet(index), nil
}

func (v *Vector) uncheckedGet(index int) uint64 {
	word, offset := v.slot(index)

	value := v.words[word] >> offset
	if offset+v.bitWidth > wordBits {
		// Remaining high bits live in the next word.
		value |= v.words[word+1] << (wordBits - offset)
	}

	return value & v.maxValue
}

// Set stores value at index. It fails with *ErrValueOverflow if value does
// not fit in BitWidth bits; a failing call never mutates storage.
func (v *Vector) Set(index int, value uint64) error {
	if index < 0 || index >= v.length {
		return &ErrIndexOutOfBounds{Index: index, Length: v.length}
	}
	if value > v.maxValue {
		return &ErrValueOverflow{Value: value, Max: v.maxValue, BitWidth: v.bitWidth}
	}
	v.uncheckedSet(index, value)
	return nil
}

func (v *Vector) uncheckedSet(index int, value uint64) {
	word, offset := v.slot(index)

	v.words[word] &^= v.maxValue << offset
	v.words[word] |= value << offset

	if offset+v.bitWidth > wordBits {
		written := wordBits - offset
		v.words[word+1] &^= fieldMask(v.bitWidth - written)
		v.words[word+1] |= value >> written
	}
}

// Resize returns a new Vector with the same length and values but a
// different per-value bit width. It fails with *ErrValueOverflow if any
// stored value does not fit in the new width; the receiver is never
// modified.
func (v *Vector) Resize(bitWidth uint) (*Vector, error) {
	out, err := New(v.length, bitWidth)
	if err != nil {
		return nil, err
	}
	for i := 0; i < v.length; i++ {
		value := v.uncheckedGet(i)
		if value > out.maxValue {
			return nil, &ErrValueOverflow{Value: value, Max: out.maxValue, BitWidth: bitWidth}
		}
		out.uncheckedSet(i, value)
	}
	return out, nil
}

// Equal reports whether two vectors have the same length, bit width and
// values. Bits past the last value's slot are ignored, so vectors built via
// FromWords compare by content rather than by raw storage.
func (v *Vector) Equal(other *Vector) bool {
	if v.length != other.length || v.bitWidth != other.bitWidth {
		return false
	}
	if v.length == 0 {
		return true
	}

	full := len(v.words)
	tailBits := (uint64(v.length) * uint64(v.bitWidth)) % wordBits
	if tailBits != 0 {
		full--
	}

	for i := 0; i < full; i++ {
		if v.words[i] != other.words[i] {
			return false
		}
	}
	if tailBits != 0 {
		mask := fieldMask(uint(tailBits))
		return v.words[full]&mask == other.words[full]&mask
	}
	return true
}

// Clone returns a deep copy of the vector.
func (v *Vector) Clone() *Vector {
	return &Vector{
		words:    v.Words(),
		length:   v.length,
		bitWidth: v.bitWidth,
		maxValue: v.maxValue,
	}
}

// String returns a compact debug representation.
func (v *Vector) String() string {
	return fmt.Sprintf("bitlongvec.Vector{len: %d, bits: %d, words: %d}", v.length, v.bitWidth, len(v.words))
}
