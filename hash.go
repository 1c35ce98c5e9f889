package unordered

import (
	"github.com/cespare/xxhash/v2"
	"github.com/dolthub/maphash"
)

// Hasher hashes keys to 64-bit words. Equal keys must hash equal under the
// table's equality predicate.
//
// A hasher whose output bits are already well mixed can declare so by also
// providing an Avalanching marker method; the table then skips its own bit
// mixing step. Hashers without the marker get mixed with xmx before use.
type Hasher[K any] interface {
	Hash(key K) uint64
}

type avalanching interface {
	Avalanching()
}

// hasherIsAvalanching reports whether h carries the avalanching marker.
func hasherIsAvalanching[K any](h Hasher[K]) bool {
	_, ok := h.(avalanching)
	return ok
}

// runtimeHasher hashes comparable keys with the runtime's seeded memory
// hash via dolthub/maphash. The runtime hash avalanches, so no extra
// mixing is applied on top.
type runtimeHasher[K comparable] struct {
	maphash.Hasher[K]
}

func (runtimeHasher[K]) Avalanching() {}

func defaultHasher[K comparable]() Hasher[K] {
	return runtimeHasher[K]{maphash.NewHasher[K]()}
}

// StringHasher hashes strings with xxhash. Deterministic across processes,
// unlike the default runtime-seeded hasher.
type StringHasher struct{}

func (StringHasher) Hash(s string) uint64 { return xxhash.Sum64String(s) }

func (StringHasher) Avalanching() {}
