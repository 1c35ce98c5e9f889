package unordered

import "math/bits"

// The group count is always a power of two, at least minGroups. Capacities
// map to a size index counted from the top of the 64-bit hash: a table of
// 2^k groups has size index 64-k, and the home group of a hash is its top
// k bits. Keeping group selection in the top bits and the slot fragment in
// the low byte minimizes aliasing between the two projections.

const (
	hashBits  = 64
	minGroups = 2
)

// sizeIndexFor returns the size index for a request of n groups.
func sizeIndexFor(n int) uint {
	if n <= minGroups {
		return hashBits - 1
	}
	return hashBits - uint(bits.Len64(uint64(n-1)))
}

// groupsFor returns the group count for a size index.
func groupsFor(sizeIndex uint) int {
	return 1 << (hashBits - sizeIndex)
}

// positionFor returns the home group of a hash.
func positionFor(h uint64, sizeIndex uint) int {
	return int(h >> sizeIndex)
}

// prober walks group indices quadratically: 0, 1, 3, 6, ... offsets from
// the home group. Over a power-of-two group count the triangular sequence
// visits every group exactly once per cycle; next returning false means a
// full cycle elapsed, which the load factor rules out for any reachable
// table state.
type prober struct {
	pos, step int
}

func newProber(pos int) prober {
	return prober{pos: pos}
}

func (p *prober) next(mask int) bool {
	p.step++
	p.pos = (p.pos + p.step) & mask
	return p.step <= mask
}
