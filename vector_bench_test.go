package bitlongvec

import (
	"fmt"
	"math/rand"
	"testing"
)

// benchWidths covers an aligned width, two straddling widths and the full
// word width.
var benchWidths = []uint{4, 10, 14, 63, 64}

func BenchmarkSet(b *testing.B) {
	for _, bitWidth := range benchWidths {
		b.Run(fmt.Sprintf("bits=%d", bitWidth), func(b *testing.B) {
			v, err := New(4096, bitWidth)
			if err != nil {
				b.Fatal(err)
			}
			max := v.MaxValue()

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				index := i & 4095
				if err := v.Set(index, uint64(i)&max); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkGet(b *testing.B) {
	for _, bitWidth := range benchWidths {
		b.Run(fmt.Sprintf("bits=%d", bitWidth), func(b *testing.B) {
			v, err := New(4096, bitWidth)
			if err != nil {
				b.Fatal(err)
			}

			rng := rand.New(rand.NewSource(1))
			for i := 0; i < v.Len(); i++ {
				if err := v.Set(i, rng.Uint64()&v.MaxValue()); err != nil {
					b.Fatal(err)
				}
			}

			var sink uint64
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				value, err := v.Get(i & 4095)
				if err != nil {
					b.Fatal(err)
				}
				sink += value
			}
			_ = sink
		})
	}
}

func BenchmarkResize(b *testing.B) {
	v, err := New(4096, 14)
	if err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < v.Len(); i++ {
		if err := v.Set(i, rng.Uint64()&1023); err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := v.Resize(10); err != nil {
			b.Fatal(err)
		}
	}
}
