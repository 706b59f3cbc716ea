// Package bitlongvec implements a fixed-capacity vector of fixed-width
// unsigned integer values packed contiguously into uint64 words.
//
// It is effective at reducing the memory needed to store values whose bit
// width is not a power of two. The trade-off is that every read and write
// spends a few extra CPU cycles on shifts and masks.
//
// # Quick Start
//
//	vec, err := bitlongvec.New(100, 10) // 100 values, 10 bits each
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for i := 0; i < vec.Len(); i++ {
//	    _ = vec.Set(i, 1023)
//	}
//	v, _ := vec.Get(42) // 1023
//
// # Memory Layout
//
// Values occupy consecutive bit ranges with no padding: value i lives in
// absolute bits [i*B, i*B+B) of the word array, where bit 0 is the
// least-significant bit of word 0. A value whose range crosses a word
// boundary is split across exactly two adjacent words (B never exceeds 64,
// so a value can never touch three words). Storing 100 ten-bit values takes
// ceil(1000/64) = 16 words (128 bytes) instead of the 200 bytes required by
// a []uint16.
//
// # Concurrency
//
// A Vector performs no internal synchronization. Callers that share one
// across goroutines must provide their own locking.
//
// # Persistence
//
// The snapshot subpackage serializes a Vector to an io.Writer with optional
// LZ4 or ZSTD payload compression.
package bitlongvec
