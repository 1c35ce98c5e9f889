package unordered

// Entry is the element a Map stores: a key together with its value.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Map is a hash map on the open-addressed engine. The zero capacity map
// allocates nothing until the first insert. Not safe for concurrent
// mutation.
type Map[K comparable, V any] struct {
	t table[K, Entry[K, V]]
}

// NewMap returns a map with room for at least capacity elements, hashing
// with the runtime-seeded default hasher.
func NewMap[K comparable, V any](capacity int) *Map[K, V] {
	return NewMapWithHasher[K, V](capacity, nil, nil)
}

// NewMapWithHasher is NewMap with a caller-supplied hasher and equality
// predicate. A nil hasher selects the default; a nil eq selects ==. eq must
// be an equivalence relation consistent with the hasher: equal keys hash
// equal.
func NewMapWithHasher[K comparable, V any](
	capacity int, hasher Hasher[K], eq func(K, K) bool,
) *Map[K, V] {
	m := &Map[K, V]{}
	initTable(&m.t, capacity, hasher, eq, func(e *Entry[K, V]) K { return e.Key })
	return m
}

// Get returns the value stored under k.
func (m *Map[K, V]) Get(k K) (V, bool) {
	if pos, slot, ok := m.t.find(k); ok {
		return m.t.arrays.elements[pos*groupSlots+slot].Value, true
	}
	var zero V
	return zero, false
}

// Has reports whether k is present.
func (m *Map[K, V]) Has(k K) bool {
	_, _, ok := m.t.find(k)
	return ok
}

// Set inserts k with value v, replacing the value if k is already present.
func (m *Map[K, V]) Set(k K, v V) {
	pos, slot, inserted := m.t.insert(k, Entry[K, V]{Key: k, Value: v})
	if !inserted {
		m.t.arrays.elements[pos*groupSlots+slot].Value = v
	}
}

// GetOrSet returns the value under k, first inserting v if k is absent.
// loaded is true when the key was already present, in which case the
// resident value wins and v is dropped.
func (m *Map[K, V]) GetOrSet(k K, v V) (value V, loaded bool) {
	pos, slot, inserted := m.t.insert(k, Entry[K, V]{Key: k, Value: v})
	return m.t.arrays.elements[pos*groupSlots+slot].Value, !inserted
}

// Delete removes k, reporting whether it was present.
func (m *Map[K, V]) Delete(k K) bool {
	return m.t.erase(k)
}

// Len returns the number of stored entries.
func (m *Map[K, V]) Len() int { return m.t.size }

// Empty reports whether the map holds no entries.
func (m *Map[K, V]) Empty() bool { return m.t.size == 0 }

// Cap returns the element capacity of the current arrays.
func (m *Map[K, V]) Cap() int { return m.t.capacity() }

// LoadFactor returns the current occupancy ratio.
func (m *Map[K, V]) LoadFactor() float64 {
	if c := m.t.capacity(); c != 0 {
		return float64(m.t.size) / float64(c)
	}
	return 0
}

// MaxLoadFactor returns the fixed occupancy ceiling.
func (m *Map[K, V]) MaxLoadFactor() float64 { return maxLoadFactor }

// Rehash rebuilds the map with capacity for at least n elements. All
// entries are retained; iteration order may change.
func (m *Map[K, V]) Rehash(n int) { m.t.rehash(n) }

// Reserve prepares the map for n entries without intermediate growth.
func (m *Map[K, V]) Reserve(n int) { m.t.reserve(n) }

// Clear removes every entry, keeping capacity.
func (m *Map[K, V]) Clear() { m.t.clear() }

// Range calls f for every entry until f returns false. The order is
// unspecified but stable while the map is not mutated. f may delete the
// entry it was called with; it must not insert.
func (m *Map[K, V]) Range(f func(K, V) bool) {
	for it := m.t.iter(); it.e != nil; it.advance() {
		if !f(it.e.Key, it.e.Value) {
			return
		}
	}
}

// Clone returns a copy of the map sized to its live count.
func (m *Map[K, V]) Clone() *Map[K, V] {
	c := &Map[K, V]{}
	m.t.cloneInto(&c.t)
	return c
}

// Swap exchanges contents with o, hasher and all. Swapping with a fresh
// zero-capacity map is how ownership of a map's storage moves.
func (m *Map[K, V]) Swap(o *Map[K, V]) {
	m.t.swapWith(&o.t)
}
