package procgen

// Stable hashing for procedural placement. Nothing here may depend on the
// runtime's per-process map seed: the same coordinate must hash identically
// in every run of every build.

const golden64 = 0x9e3779b97f4a7c15

// Mix64 is the SplitMix64 finalizer: a bijective avalanche over 64 bits.
func Mix64(z uint64) uint64 {
	z ^= z >> 30
	z *= 0xbf58476d1ce4e5b9
	z ^= z >> 27
	z *= 0x94d049bb133111eb
	z ^= z >> 31
	return z
}

// Hash2 returns a stable hash for 2D integer coordinates + seed.
func Hash2(seed uint64, x, y int32) uint64 {
	key := uint64(uint32(x))<<32 | uint64(uint32(y))
	return Mix64(Mix64(seed+golden64) ^ key)
}
