package bitlongvec

import (
	"fmt"
	"iter"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

// Values returns an iterator over the stored values in index order.
func (v *Vector) Values() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for i := 0; i < v.length; i++ {
			if !yield(v.uncheckedGet(i)) {
				return
			}
		}
	}
}

// All returns an iterator over (index, value) pairs in index order.
func (v *Vector) All() iter.Seq2[int, uint64] {
	return func(yield func(int, uint64) bool) {
		for i := 0; i < v.length; i++ {
			if !yield(i, v.uncheckedGet(i)) {
				return
			}
		}
	}
}

// Nonzero returns the indices of all nonzero values as a Roaring bitmap,
// for sparse scans over mostly-empty vectors. Bitmap indices are 32-bit;
// vectors longer than 2^32-1 fail with ErrBitmapIndexRange.
func (v *Vector) Nonzero() (*roaring.Bitmap, error) {
	if uint64(v.length) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: length %d", ErrBitmapIndexRange, v.length)
	}

	rb := roaring.New()
	for i := 0; i < v.length; i++ {
		if v.uncheckedGet(i) != 0 {
			rb.Add(uint32(i))
		}
	}
	return rb, nil
}
