package unordered

// xmx improves the statistical properties of hashes that are not already
// avalanching before they feed both group selection (top bits) and the
// reduced slot fragment (low byte). It is the xmx construction from
// http://jonkagstrom.com/bit-mixer-construction/index.html.
func xmx(x uint64) uint64 {
	x ^= x >> 23
	x *= 0xff51afd7ed558ccd
	x ^= x >> 23
	return x
}

// xmx2 is xmx with the golden-ratio multiplier, kept as an alternative
// constant set for experimentation.
func xmx2(x uint64) uint64 {
	x ^= x >> 23
	x *= 0x9e3779b97f4a7c15
	x ^= x >> 23
	return x
}

// xmx32 is the sub-word variant for 32-bit hashes, with a multiplier found
// by Hash Prospector. Callers with 32-bit hash sources can mix with it
// before widening.
func xmx32(x uint32) uint32 {
	x ^= x >> 18
	x *= 0x56b5aaad
	x ^= x >> 16
	return x
}

// xmx232 is xmx32 with the 32-bit golden-ratio multiplier.
func xmx232(x uint32) uint32 {
	x ^= x >> 18
	x *= 0x9e3779b9
	x ^= x >> 16
	return x
}
