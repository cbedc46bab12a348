// Package mix provides low-level 64-bit mixing primitives.
package mix

// Phi is the 64-bit golden ratio constant. Being odd, multiplication by
// this constant is a bijection on uint64, so mixing a level index through
// it preserves entropy from the key hash it is combined with.
const Phi = 0x9E3779B97F4A7C15

// Mix64 applies the SplitMix64 finalizer to x. It is a bijection on uint64
// with strong avalanche behavior: flipping any input bit flips each output
// bit with probability close to 1/2. Used to derive independent per-level
// probe bases from a single key hash.
func Mix64(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xBF58476D1CE4E5B9
	x ^= x >> 27
	x *= 0x94D049BB133111EB
	x ^= x >> 31
	return x
}
