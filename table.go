// Package unordered provides fast in-memory hash containers built on a
// single-table, open-addressed engine. Metadata lives in 16-byte groups of
// 15 slot bytes plus an overflow byte; lookups scan a whole group at a time
// with a byte-broadcast match kernel and prune probe chains through the
// overflow bits. Set and Map are thin instantiations of the same engine.
//
// Containers are single-writer structures: concurrent readers of an
// unmodified container are safe, any mutation requires external
// synchronization.
package unordered

import (
	"fmt"
	"math"
	"math/bits"
)

// maxLoadFactor is the occupancy ceiling; an insert that would cross it
// rebuilds the table first.
const maxLoadFactor = 0.875

// tableArrays bundles the two parallel allocations with their sizing. The
// element array holds one slot per metadata byte except the sentinel, hence
// the -1. elements == nil means the table is backed by the shared read-only
// dummy groups and owns no storage.
type tableArrays[E any] struct {
	sizeIndex uint
	sizeMask  int
	groups    []group
	elements  []E
}

// table is the engine shared by Set and Map. E is the stored element type;
// extract projects the key out of an element, which is the only layout
// assumption the engine ever makes.
type table[K comparable, E any] struct {
	hasher  Hasher[K]
	eq      func(K, K) bool
	extract func(*E) K
	mix     bool
	galloc  allocator[group]
	ealloc  allocator[E]
	size    int
	arrays  tableArrays[E]
	maxLoad int
}

func initTable[K comparable, E any](
	t *table[K, E], capacity int,
	hasher Hasher[K], eq func(K, K) bool, extract func(*E) K,
) {
	if hasher == nil {
		hasher = defaultHasher[K]()
	}
	if eq == nil {
		eq = func(a, b K) bool { return a == b }
	}
	t.hasher = hasher
	t.eq = eq
	t.extract = extract
	t.mix = !hasherIsAvalanching(hasher)
	t.galloc = heapAllocator[group]{}
	t.ealloc = heapAllocator[E]{}
	t.arrays = t.newArrays(capacity)
	t.maxLoad = t.computeMaxLoad()
}

// hashFor is the one place hashes enter the engine; every consumer
// (group selection, slot fragment, overflow class) sees the mixed value.
func (t *table[K, E]) hashFor(k K) uint64 {
	h := t.hasher.Hash(k)
	if t.mix {
		h = xmx(h)
	}
	return h
}

func (t *table[K, E]) capacity() int {
	if t.arrays.elements == nil {
		return 0
	}
	return (t.arrays.sizeMask+1)*groupSlots - 1
}

func (t *table[K, E]) computeMaxLoad() int {
	return int(maxLoadFactor * float64(t.capacity()))
}

// growCapacity returns the smallest capacity that keeps n elements under
// the load ceiling.
func growCapacity(n int) int {
	return int(math.Ceil(float64(n) / maxLoadFactor))
}

func (t *table[K, E]) find(k K) (pos, slot int, ok bool) {
	h := t.hashFor(k)
	return t.findImpl(k, positionFor(h, t.arrays.sizeIndex), h)
}

func (t *table[K, E]) findImpl(k K, pos0 int, h uint64) (int, int, bool) {
	pb := newProber(pos0)
	for {
		pos := pb.pos
		g := &t.arrays.groups[pos]
		mask := g.match(h)
		for mask != 0 {
			n := nextMatch(&mask)
			if t.eq(k, t.extract(&t.arrays.elements[pos*groupSlots+n])) {
				return pos, n, true
			}
		}
		if g.isNotOverflowed(h) {
			// No key of this class ever overflowed the group: the probe
			// chain ends here, absence is definitive.
			return 0, 0, false
		}
		if !pb.next(t.arrays.sizeMask) {
			// A full cycle without an available slot cannot happen below
			// the load ceiling; treat as absent rather than spinning.
			return 0, 0, false
		}
	}
}

// insert adds e under key k unless the key is already resident. It returns
// the element's position either way; inserted reports which case ran.
func (t *table[K, E]) insert(k K, e E) (pos, slot int, inserted bool) {
	h := t.hashFor(k)
	pos0 := positionFor(h, t.arrays.sizeIndex)
	if pos, slot, ok := t.findImpl(k, pos0, h); ok {
		return pos, slot, false
	}
	if t.size >= t.maxLoad {
		t.uncheckedRehash(growCapacity(t.size + 1))
		pos0 = positionFor(h, t.arrays.sizeIndex)
	}
	pos, slot = uncheckedEmplaceAt(&t.arrays, pos0, h, e)
	t.size++
	return pos, slot, true
}

// uncheckedInsert places an element known to be absent, growing nothing.
// Callers guarantee room below the load ceiling.
func (t *table[K, E]) uncheckedInsert(e E) {
	h := t.hashFor(t.extract(&e))
	uncheckedEmplaceAt(&t.arrays, positionFor(h, t.arrays.sizeIndex), h, e)
	t.size++
}

// uncheckedEmplaceAt walks the probe sequence to the first group with an
// available slot and writes the element there. Every full group passed
// over gets an overflow mark for h's class; that mark is what later lets
// lookups stop early on misses.
func uncheckedEmplaceAt[E any](a *tableArrays[E], pos0 int, h uint64, e E) (int, int) {
	for pb := newProber(pos0); ; pb.next(a.sizeMask) {
		g := &a.groups[pb.pos]
		if mask := g.matchAvailable(); mask != 0 {
			n := bits.TrailingZeros32(mask)
			a.elements[pb.pos*groupSlots+n] = e
			g.set(n, h)
			return pb.pos, n
		}
		g.markOverflow(h)
	}
}

// eraseAt empties a slot in place. Overflow bits stay: the slot becomes
// available to future inserts, and lookups that pass through keep probing
// until the next full rebuild clears the marks.
func (t *table[K, E]) eraseAt(pos, slot int) {
	var zero E
	t.arrays.elements[pos*groupSlots+slot] = zero
	t.arrays.groups[pos].reset(slot)
	t.size--
}

func (t *table[K, E]) erase(k K) bool {
	pos, slot, ok := t.find(k)
	if !ok {
		return false
	}
	t.eraseAt(pos, slot)
	return true
}

// forEach visits every live element. f must not mutate the table.
func (t *table[K, E]) forEach(f func(*E)) {
	forEachIn(&t.arrays, f)
}

func forEachIn[E any](a *tableArrays[E], f func(*E)) {
	if a.elements == nil {
		return
	}
	for pos := range a.groups {
		mask := a.groups[pos].matchReallyOccupied()
		for mask != 0 {
			n := nextMatch(&mask)
			f(&a.elements[pos*groupSlots+n])
		}
	}
}

// clear empties the table but keeps its capacity. Elements are zeroed so
// the collector can reclaim what they referenced, and metadata is reset
// wholesale, which also grants amnesty to accumulated overflow marks.
func (t *table[K, E]) clear() {
	if t.arrays.elements == nil {
		t.size = 0
		return
	}
	var zero E
	t.forEach(func(p *E) { *p = zero })
	for i := range t.arrays.groups {
		t.arrays.groups[i] = group{}
	}
	t.arrays.groups[len(t.arrays.groups)-1].setSentinel()
	t.size = 0
}

// newArrays sizes and allocates storage for a capacity request of n
// elements. n == 0 yields the shared dummy-backed state.
func (t *table[K, E]) newArrays(n int) (a tableArrays[E]) {
	a.sizeIndex = sizeIndexFor(n/groupSlots + 1)
	groups := groupsFor(a.sizeIndex)
	a.sizeMask = groups - 1
	if n == 0 {
		a.groups = dummyGroups[:]
		return a
	}
	if debug {
		fmt.Println("newArrays: capacity request", n, "-> groups", groups)
	}
	a.groups = t.galloc.allocate(groups)
	a.groups[groups-1].setSentinel()
	defer func() {
		// Element allocation failed: give the group storage back before
		// the panic leaves the function.
		if a.elements == nil {
			t.galloc.deallocate(a.groups)
		}
	}()
	a.elements = t.ealloc.allocate(groups*groupSlots - 1)
	return a
}

func (t *table[K, E]) deleteArrays(a tableArrays[E]) {
	if a.elements == nil {
		return
	}
	t.ealloc.deallocate(a.elements)
	t.galloc.deallocate(a.groups)
}

// uncheckedRehash rebuilds the table at capacity >= n, transferring every
// live element into fresh arrays. Source metadata is reset slot by slot as
// elements move, so liveness and metadata never drift apart; if a user
// hasher panics mid-transfer the deferred rollback dismantles the new
// arrays, the already-moved elements are lost, and size drops by exactly the
// transferred count. An allocator panic happens in newArrays before any
// element moves and leaves the table unchanged.
func (t *table[K, E]) uncheckedRehash(n int) {
	if debug {
		fmt.Println("uncheckedRehash: capacity", t.capacity(), "->", n, "size", t.size)
	}
	dst := t.newArrays(n)
	transferred := 0
	done := false
	defer func() {
		if done {
			return
		}
		t.size -= transferred
		var zero E
		forEachIn(&dst, func(p *E) { *p = zero })
		t.deleteArrays(dst)
	}()
	var zero E
	for pos := range t.arrays.groups {
		g := &t.arrays.groups[pos]
		mask := g.matchReallyOccupied()
		for mask != 0 {
			n := nextMatch(&mask)
			p := &t.arrays.elements[pos*groupSlots+n]
			h := t.hashFor(t.extract(p))
			uncheckedEmplaceAt(&dst, positionFor(h, dst.sizeIndex), h, *p)
			g.reset(n)
			*p = zero
			transferred++
		}
	}
	done = true
	t.deleteArrays(t.arrays)
	t.arrays = dst
	t.maxLoad = t.computeMaxLoad()
}

// rehash guarantees capacity for n elements, never dropping below what the
// current size needs. rehash(0) shrinks to the smallest fitting capacity.
func (t *table[K, E]) rehash(n int) {
	c := growCapacity(t.size)
	if n > 0 {
		idx := sizeIndexFor(n/groupSlots + 1)
		if c2 := groupsFor(idx)*groupSlots - 1; c2 > c {
			c = c2
		}
	}
	if c != t.capacity() {
		t.uncheckedRehash(c)
	}
}

// reserve prepares the table for n elements without crossing the load
// ceiling on the way there.
func (t *table[K, E]) reserve(n int) {
	t.rehash(growCapacity(n))
}

// cloneInto rebuilds t's contents in dst, sized to the live count.
func (t *table[K, E]) cloneInto(dst *table[K, E]) {
	dst.hasher = t.hasher
	dst.eq = t.eq
	dst.extract = t.extract
	dst.mix = t.mix
	dst.galloc = t.galloc
	dst.ealloc = t.ealloc
	dst.arrays = dst.newArrays(growCapacity(t.size))
	dst.maxLoad = dst.computeMaxLoad()
	t.forEach(func(p *E) { dst.uncheckedInsert(*p) })
}

func (t *table[K, E]) swapWith(o *table[K, E]) {
	*t, *o = *o, *t
}

const debug = false
