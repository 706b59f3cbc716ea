package bitlongvec

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLength is returned when a constructor is given a negative
	// length, or one whose packed bit size cannot be addressed.
	ErrInvalidLength = errors.New("invalid length")

	// ErrBitmapIndexRange is returned by Nonzero when the vector is longer
	// than a 32-bit bitmap can index.
	ErrBitmapIndexRange = errors.New("vector too long for 32-bit bitmap indices")
)

// ErrInvalidBitWidth indicates a per-value bit width outside [1, 64].
type ErrInvalidBitWidth struct {
	BitWidth uint
}

func (e *ErrInvalidBitWidth) Error() string {
	return fmt.Sprintf("invalid bit width: %d (must be between 1 and %d)", e.BitWidth, wordBits)
}

// ErrIndexOutOfBounds indicates an access past the vector's declared length.
type ErrIndexOutOfBounds struct {
	Index  int
	Length int
}

func (e *ErrIndexOutOfBounds) Error() string {
	return fmt.Sprintf("index out of bounds: %d (length %d)", e.Index, e.Length)
}

// ErrValueOverflow indicates a value that does not fit in the vector's
// per-value bit width. The failing call leaves the vector unchanged.
type ErrValueOverflow struct {
	Value    uint64
	Max      uint64
	BitWidth uint
}

func (e *ErrValueOverflow) Error() string {
	return fmt.Sprintf("value overflow: %d does not fit in %d bits (max %d)", e.Value, e.BitWidth, e.Max)
}

// ErrWordCountMismatch indicates a word array whose length does not match
// the storage size implied by (length, bit width).
type ErrWordCountMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrWordCountMismatch) Error() string {
	return fmt.Sprintf("word count mismatch: expected %d words, got %d", e.Expected, e.Actual)
}
