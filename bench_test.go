package unordered

import (
	"flag"
	"fmt"
	"testing"

	cockroach "github.com/cockroachdb/swiss"
	dolthub "github.com/dolthub/swiss"
)

var longTestFlag = flag.Bool("long", false, "run long benchmarks")

var (
	sinkInt  int64
	sinkBool bool
)

type benchmark struct {
	name        string
	mapElements int
}

func benchSizes() []benchmark {
	if !*longTestFlag {
		return []benchmark{{"map size 1000", 1_000}}
	}
	return []benchmark{
		{"map size 1000", 1_000},
		{"map size 100000", 100_000},
		{"map size 1000000", 1_000_000},
	}
}

func BenchmarkMatchByte(b *testing.B) {
	buffer := make([]byte, groupSize)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkMask, _ = MatchByte(42, buffer)
	}
}

var sinkMask uint32

func BenchmarkSet_Int64_Std(b *testing.B) {
	for _, bm := range benchSizes() {
		b.Run(bm.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				m := make(map[int64]int64, bm.mapElements)
				for k := 0; k < bm.mapElements; k++ {
					m[int64(k)] = int64(k)
				}
			}
		})
	}
}

func BenchmarkSet_Int64_Unordered(b *testing.B) {
	for _, bm := range benchSizes() {
		b.Run(bm.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				m := NewMap[int64, int64](bm.mapElements)
				for k := 0; k < bm.mapElements; k++ {
					m.Set(int64(k), int64(k))
				}
			}
		})
	}
}

func BenchmarkSet_Int64_Dolthub(b *testing.B) {
	for _, bm := range benchSizes() {
		b.Run(bm.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				m := dolthub.NewMap[int64, int64](uint32(bm.mapElements))
				for k := 0; k < bm.mapElements; k++ {
					m.Put(int64(k), int64(k))
				}
			}
		})
	}
}

func BenchmarkSet_Int64_Cockroach(b *testing.B) {
	for _, bm := range benchSizes() {
		b.Run(bm.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				m := cockroach.New[int64, int64](bm.mapElements)
				for k := 0; k < bm.mapElements; k++ {
					m.Put(int64(k), int64(k))
				}
			}
		})
	}
}

func BenchmarkGet_Hit_Int64_Std(b *testing.B) {
	for _, bm := range benchSizes() {
		b.Run(bm.name, func(b *testing.B) {
			m := make(map[int64]int64, bm.mapElements)
			for k := 0; k < bm.mapElements; k++ {
				m[int64(k)] = int64(k)
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkInt, sinkBool = m[int64(i%bm.mapElements)]
			}
		})
	}
}

func BenchmarkGet_Hit_Int64_Unordered(b *testing.B) {
	for _, bm := range benchSizes() {
		b.Run(bm.name, func(b *testing.B) {
			m := NewMap[int64, int64](bm.mapElements)
			for k := 0; k < bm.mapElements; k++ {
				m.Set(int64(k), int64(k))
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkInt, sinkBool = m.Get(int64(i % bm.mapElements))
			}
		})
	}
}

func BenchmarkGet_Hit_Int64_Dolthub(b *testing.B) {
	for _, bm := range benchSizes() {
		b.Run(bm.name, func(b *testing.B) {
			m := dolthub.NewMap[int64, int64](uint32(bm.mapElements))
			for k := 0; k < bm.mapElements; k++ {
				m.Put(int64(k), int64(k))
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkInt, sinkBool = m.Get(int64(i % bm.mapElements))
			}
		})
	}
}

func BenchmarkGet_Hit_Int64_Cockroach(b *testing.B) {
	for _, bm := range benchSizes() {
		b.Run(bm.name, func(b *testing.B) {
			m := cockroach.New[int64, int64](bm.mapElements)
			for k := 0; k < bm.mapElements; k++ {
				m.Put(int64(k), int64(k))
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkInt, sinkBool = m.Get(int64(i % bm.mapElements))
			}
		})
	}
}

// Misses exercise the overflow early exit: most probes should stop at the
// home group.
func BenchmarkGet_Miss_Int64_Unordered(b *testing.B) {
	for _, bm := range benchSizes() {
		b.Run(bm.name, func(b *testing.B) {
			m := NewMap[int64, int64](bm.mapElements)
			for k := 0; k < bm.mapElements; k++ {
				m.Set(int64(k), int64(k))
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkInt, sinkBool = m.Get(int64(bm.mapElements + i))
			}
		})
	}
}

func BenchmarkRange_Int64_Unordered(b *testing.B) {
	for _, bm := range benchSizes() {
		b.Run(bm.name, func(b *testing.B) {
			m := NewMap[int64, int64](bm.mapElements)
			for k := 0; k < bm.mapElements; k++ {
				m.Set(int64(k), int64(k))
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				var total int64
				m.Range(func(_, v int64) bool {
					total += v
					return true
				})
				sinkInt = total
			}
		})
	}
}

func BenchmarkRehash_Int64_Unordered(b *testing.B) {
	const elements = 100_000
	m := NewMap[int64, int64](elements)
	for k := 0; k < elements; k++ {
		m.Set(int64(k), int64(k))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// Alternate between two sizes to force a full rebuild each time.
		if i%2 == 0 {
			m.Rehash(4 * elements)
		} else {
			m.Rehash(0)
		}
	}
	if m.Len() != elements {
		b.Fatal("rehash lost elements")
	}
}

func ExampleMap() {
	m := NewMap[string, int](0)
	m.Set("one", 1)
	m.Set("two", 2)
	v, ok := m.Get("two")
	fmt.Println(v, ok, m.Len())
	// Output: 2 true 2
}
