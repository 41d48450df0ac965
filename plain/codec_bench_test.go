package plain

import (
	"fmt"
	"io"
	"testing"

	"github.com/arloliu/colenc/physical"
)

// Benchmark page building across the four distinct encode paths: the bulk
// fixed-width copy, the per-word Int96 loop, the length-prefixed loop, and
// the bit stream.
func BenchmarkEncoder_Put(b *testing.B) {
	for _, size := range []int{1024, 16384} {
		int64s := makeInt64Batch(size)
		b.Run(fmt.Sprintf("int64_%dvalues", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				enc := NewEncoder[int64]()
				if err := enc.Put(int64s); err != nil {
					b.Fatal(err)
				}
				if _, err := enc.WriteTo(io.Discard); err != nil {
					b.Fatal(err)
				}
				enc.Close()
			}
		})

		int96s := makeInt96Batch(size)
		b.Run(fmt.Sprintf("int96_%dvalues", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				enc := NewEncoder[physical.Int96]()
				if err := enc.Put(int96s); err != nil {
					b.Fatal(err)
				}
				if _, err := enc.WriteTo(io.Discard); err != nil {
					b.Fatal(err)
				}
				enc.Close()
			}
		})

		arrays := makeByteArrayBatch(size)
		b.Run(fmt.Sprintf("bytearray_%dvalues", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				enc := NewEncoder[physical.ByteArray]()
				if err := enc.Put(arrays); err != nil {
					b.Fatal(err)
				}
				if _, err := enc.WriteTo(io.Discard); err != nil {
					b.Fatal(err)
				}
				enc.Close()
			}
		})

		bools := makeBoolBatch(size)
		b.Run(fmt.Sprintf("boolean_%dvalues", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				enc := NewEncoder[bool]()
				if err := enc.Put(bools); err != nil {
					b.Fatal(err)
				}
				if _, err := enc.WriteTo(io.Discard); err != nil {
					b.Fatal(err)
				}
				enc.Close()
			}
		})
	}
}

func BenchmarkDecoder_Decode(b *testing.B) {
	const size = 16384

	b.Run("int64", func(b *testing.B) {
		page := encodePage(b, makeInt64Batch(size))
		out := make([]int64, size)
		dec := NewDecoder[int64](0)

		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			dec.SetData(page, size)
			if _, err := dec.Decode(out); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("int96", func(b *testing.B) {
		page := encodePage(b, makeInt96Batch(size))
		out := make([]physical.Int96, size)
		dec := NewDecoder[physical.Int96](0)

		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			dec.SetData(page, size)
			if _, err := dec.Decode(out); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("bytearray", func(b *testing.B) {
		page := encodePage(b, makeByteArrayBatch(size))
		out := make([]physical.ByteArray, size)
		dec := NewDecoder[physical.ByteArray](0)

		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			dec.SetData(page, size)
			if _, err := dec.Decode(out); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("boolean", func(b *testing.B) {
		page := encodePage(b, makeBoolBatch(size))
		out := make([]bool, size)
		dec := NewDecoder[bool](0)

		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			dec.SetData(page, size)
			if _, err := dec.Decode(out); err != nil {
				b.Fatal(err)
			}
		}
	})
}

// Benchmark skipping a full page: a single cursor add for fixed-width
// kinds versus a walk over every length prefix for byte arrays.
func BenchmarkDecoder_Skip(b *testing.B) {
	const size = 16384

	b.Run("int64", func(b *testing.B) {
		page := encodePage(b, makeInt64Batch(size))
		dec := NewDecoder[int64](0)

		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			dec.SetData(page, size)
			if _, err := dec.Skip(size); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("bytearray", func(b *testing.B) {
		page := encodePage(b, makeByteArrayBatch(size))
		dec := NewDecoder[physical.ByteArray](0)

		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			dec.SetData(page, size)
			if _, err := dec.Skip(size); err != nil {
				b.Fatal(err)
			}
		}
	})
}

// Benchmark the single-value image append feeding dictionary hashing,
// bloom keys, and statistics bounds.
func BenchmarkAppendRaw(b *testing.B) {
	b.Run("int64", func(b *testing.B) {
		buf := make([]byte, 0, 16)
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			buf = AppendRaw(buf[:0], int64(1_726_486_400_000))
		}
	})

	b.Run("int96", func(b *testing.B) {
		v := physical.NewInt96([3]uint32{0x1532_0000, 0x0000_A0C4, 0x0025_9DDF})
		buf := make([]byte, 0, 16)
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			buf = AppendRaw(buf[:0], v)
		}
	})

	b.Run("bytearray", func(b *testing.B) {
		v := physical.ByteArrayFromString("region=us-east-1,host=web-042")
		buf := make([]byte, 0, 64)
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			buf = AppendRaw(buf[:0], v)
		}
	})
}

// =============================================================================
// Helper Functions
// =============================================================================

func encodePage[T physical.Value](b *testing.B, values []T) []byte {
	b.Helper()

	enc := NewEncoder[T]()
	defer enc.Close()
	if err := enc.Put(values); err != nil {
		b.Fatal(err)
	}
	page, err := enc.FlushBuffer()
	if err != nil {
		b.Fatal(err)
	}

	return page
}

func makeInt64Batch(n int) []int64 {
	vals := make([]int64, n)
	for i := range vals {
		vals[i] = int64(i)*1_000_003 - 500
	}

	return vals
}

func makeInt96Batch(n int) []physical.Int96 {
	vals := make([]physical.Int96, n)
	for i := range vals {
		vals[i] = physical.NewInt96([3]uint32{uint32(i) * 1_000_000, uint32(i >> 8), 2_440_588 + uint32(i%365)})
	}

	return vals
}

func makeByteArrayBatch(n int) []physical.ByteArray {
	vals := make([]physical.ByteArray, n)
	for i := range vals {
		vals[i] = physical.ByteArrayFromString(fmt.Sprintf("series-%d", i%512))
	}

	return vals
}

func makeBoolBatch(n int) []bool {
	vals := make([]bool, n)
	for i := range vals {
		vals[i] = i%3 == 0
	}

	return vals
}
