package bitlongvec_test

import (
	"fmt"
	"log"

	bitlongvec "github.com/eihwaz/bit-long-vec"
)

// Example demonstrates packing 100 ten-bit values. A []uint16 would need
// 200 bytes for the same data; the packed vector needs 128.
func Example() {
	vec, err := bitlongvec.New(100, 10)
	if err != nil {
		log.Fatal(err)
	}

	for i := 0; i < vec.Len(); i++ {
		if err := vec.Set(i, 1023); err != nil {
			log.Fatal(err)
		}
	}

	v, _ := vec.Get(42)
	fmt.Println(v)
	fmt.Println(vec.Stats().PackedBytes, "bytes packed")
	// Output:
	// 1023
	// 128 bytes packed
}

// ExampleVector_Resize re-packs values into a narrower width once their
// range is known.
func ExampleVector_Resize() {
	vec, _ := bitlongvec.New(4, 16)
	for i := 0; i < vec.Len(); i++ {
		_ = vec.Set(i, uint64(i))
	}

	narrow, err := vec.Resize(2)
	if err != nil {
		log.Fatal(err)
	}

	for _, value := range narrow.All() {
		fmt.Print(value, " ")
	}
	fmt.Println()
	// Output: 0 1 2 3
}
