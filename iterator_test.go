package bitlongvec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValues(t *testing.T) {
	want := []uint64{3, 0, 1023, 512, 7}

	v, err := FromValues(want, 10)
	require.NoError(t, err)

	var got []uint64
	for value := range v.Values() {
		got = append(got, value)
	}
	assert.Equal(t, want, got)

	t.Run("EarlyStop", func(t *testing.T) {
		var count int
		for range v.Values() {
			count++
			if count == 2 {
				break
			}
		}
		assert.Equal(t, 2, count)
	})
}

func TestAll(t *testing.T) {
	values := []uint64{9, 0, 4}

	v, err := FromValues(values, 4)
	require.NoError(t, err)

	for index, value := range v.All() {
		assert.Equal(t, values[index], value)
	}
}

func TestNonzero(t *testing.T) {
	v, err := New(1000, 10)
	require.NoError(t, err)

	indices := []int{0, 6, 7, 63, 64, 500, 999}
	for _, index := range indices {
		require.NoError(t, v.Set(index, 42))
	}

	rb, err := v.Nonzero()
	require.NoError(t, err)
	require.EqualValues(t, len(indices), rb.GetCardinality())
	for _, index := range indices {
		assert.True(t, rb.Contains(uint32(index)), "index=%d", index)
	}

	t.Run("Empty", func(t *testing.T) {
		v, err := New(100, 10)
		require.NoError(t, err)

		rb, err := v.Nonzero()
		require.NoError(t, err)
		assert.True(t, rb.IsEmpty())
	})

	t.Run("IndexRange", func(t *testing.T) {
		// Built by hand: allocating 2^32 one-bit slots just to hit the
		// bound would cost half a gigabyte. The range check fires before
		// any storage access.
		v := &Vector{length: math.MaxUint32 + 1, bitWidth: 1, maxValue: 1}

		_, err := v.Nonzero()
		require.ErrorIs(t, err, ErrBitmapIndexRange)
	})
}
