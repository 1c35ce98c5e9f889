package unordered

// Set is a hash set on the same engine as Map: the stored element is the
// key itself and extraction is identity. Not safe for concurrent mutation.
type Set[K comparable] struct {
	t table[K, K]
}

// NewSet returns a set with room for at least capacity keys.
func NewSet[K comparable](capacity int) *Set[K] {
	return NewSetWithHasher[K](capacity, nil, nil)
}

// NewSetWithHasher is NewSet with a caller-supplied hasher and equality
// predicate; nil selects the defaults.
func NewSetWithHasher[K comparable](
	capacity int, hasher Hasher[K], eq func(K, K) bool,
) *Set[K] {
	s := &Set[K]{}
	initTable(&s.t, capacity, hasher, eq, func(k *K) K { return *k })
	return s
}

// Add inserts k, reporting whether it was newly added.
func (s *Set[K]) Add(k K) bool {
	_, _, inserted := s.t.insert(k, k)
	return inserted
}

// Has reports whether k is present.
func (s *Set[K]) Has(k K) bool {
	_, _, ok := s.t.find(k)
	return ok
}

// Delete removes k, reporting whether it was present.
func (s *Set[K]) Delete(k K) bool {
	return s.t.erase(k)
}

// Len returns the number of stored keys.
func (s *Set[K]) Len() int { return s.t.size }

// Empty reports whether the set holds no keys.
func (s *Set[K]) Empty() bool { return s.t.size == 0 }

// Cap returns the element capacity of the current arrays.
func (s *Set[K]) Cap() int { return s.t.capacity() }

// LoadFactor returns the current occupancy ratio.
func (s *Set[K]) LoadFactor() float64 {
	if c := s.t.capacity(); c != 0 {
		return float64(s.t.size) / float64(c)
	}
	return 0
}

// MaxLoadFactor returns the fixed occupancy ceiling.
func (s *Set[K]) MaxLoadFactor() float64 { return maxLoadFactor }

// Rehash rebuilds the set with capacity for at least n keys.
func (s *Set[K]) Rehash(n int) { s.t.rehash(n) }

// Reserve prepares the set for n keys without intermediate growth.
func (s *Set[K]) Reserve(n int) { s.t.reserve(n) }

// Clear removes every key, keeping capacity.
func (s *Set[K]) Clear() { s.t.clear() }

// Range calls f for every key until f returns false. f may delete the key
// it was called with; it must not insert.
func (s *Set[K]) Range(f func(K) bool) {
	for it := s.t.iter(); it.e != nil; it.advance() {
		if !f(*it.e) {
			return
		}
	}
}

// Clone returns a copy of the set sized to its live count.
func (s *Set[K]) Clone() *Set[K] {
	c := &Set[K]{}
	s.t.cloneInto(&c.t)
	return c
}

// Swap exchanges contents with o.
func (s *Set[K]) Swap(o *Set[K]) {
	s.t.swapWith(&o.t)
}
